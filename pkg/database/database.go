package database

import (
	"fmt"
	"log"

	"sped_lesson_backend/internal/config"
	"sped_lesson_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.LessonPlan{},
		&model.EvaluationRun{},
		&model.LessonPlanTemplate{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedTemplates(db)

	return db, nil
}

// seedTemplates 기본 예시 지도안 템플릿. 비어 있을 때만 넣는다.
func seedTemplates(db *gorm.DB) {
	var count int64
	db.Model(&model.LessonPlanTemplate{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.LessonPlanTemplate{
		{
			Name:        "수학: 10까지의 덧셈",
			Description: "구체물 조작 중심의 기초 덧셈 예시 지도안",
			Subject:     "수학",
			Grade:       "초등 3학년",
			Duration:    40,
			LearningObjectives: model.StringList{
				"학생은 물건의 개수를 세어 말할 수 있다",
				"학생은 구체물을 이용해 더하기를 할 수 있다",
			},
			TeachingMethods: model.StringList{"개별화 교수 전략 적용", "구체물 활용 수업", "단계적 촉진 제공"},
			Materials:       model.StringList{"수 세기 구체물 바구니", "숫자 카드", "덧셈 활동지"},
			AssessmentMethods: model.StringList{
				"관찰평가",
				"학습 목표 도달 체크리스트",
			},
			Accommodations: model.StringList{"개별 학습 속도에 맞춘 과제 제공", "시각적 단서와 구체물 지원"},
			Activities: model.ActivityList{
				{Phase: "도입", Time: 5, Activity: "지난 시간 복습과 동기 유발 노래 활동", Materials: "그림 자료"},
				{Phase: "전개", Time: 25, Activity: "구체물을 조작하며 덧셈 원리 탐색하기", Materials: "수 세기 구체물"},
				{Phase: "정리", Time: 10, Activity: "배운 내용 정리하고 스스로 평가하기", Materials: "체크리스트"},
			},
			Notes:   "안전에 유의하며 구체물을 다룬다. 배운 내용은 가정에서 일반화하도록 안내한다.",
			Enabled: true,
		},
		{
			Name:        "국어: 낱말 읽기",
			Description: "다감각 접근 낱말 읽기 예시 지도안",
			Subject:     "국어",
			Grade:       "초등 2학년",
			Duration:    40,
			LearningObjectives: model.StringList{
				"학생은 받침 없는 낱말을 소리 내어 읽을 수 있다",
				"학생은 그림과 낱말 카드를 짝지을 수 있다",
			},
			TeachingMethods: model.StringList{"다감각 읽기 지도", "반복 연습 중심 수업"},
			Materials:       model.StringList{"낱말 카드", "그림 카드", "모래 글자판 교구"},
			AssessmentMethods: model.StringList{
				"관찰평가",
				"수행평가",
			},
			Accommodations: model.StringList{"개별 속도에 맞춘 반복 기회 제공", "촉각 교구를 통한 다감각 지원"},
			Activities: model.ActivityList{
				{Phase: "도입", Time: 5, Activity: "낱말 노래로 주의 집중하고 참여 유도하기", Materials: "노래 음원"},
				{Phase: "전개", Time: 25, Activity: "모래 글자판을 조작하며 낱말 읽기 연습하기", Materials: "모래 글자판 교구"},
				{Phase: "정리", Time: 10, Activity: "낱말 카드 게임으로 배운 내용 정리하기", Materials: "낱말 카드"},
			},
			Notes:   "교구 사용 시 안전에 유의한다. 가정에서 낱말 카드로 일반화 연습을 하도록 부모에게 안내한다.",
			Enabled: true,
		},
	}
	for _, t := range defaults {
		db.Create(&t)
	}
}
