package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// TargetStudent 대상 학생 정보. 지도안 작성 시 첫 번째 학생이 주 대상이다.
type TargetStudent struct {
	Name           string `json:"name"`
	Disability     string `json:"disability"`
	CurrentLevel   string `json:"currentLevel"`
	Goals          string `json:"goals"`
	Accommodations string `json:"accommodations"`
}

// Activity 수업 활동 한 단계. Phase는 도입/전개/정리 중 하나를 기대하지만 강제하지 않는다.
type Activity struct {
	Phase     string `json:"phase"`
	Time      int    `json:"time"`
	Activity  string `json:"activity"`
	Materials string `json:"materials"`
	Notes     string `json:"notes,omitempty"`
}

// StringList JSON 컬럼에 저장되는 문자열 목록
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

type TargetStudentList []TargetStudent

func (l TargetStudentList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *TargetStudentList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

type ActivityList []Activity

func (l ActivityList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *ActivityList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported column type for JSON scan")
	}
}

// swagger:model LessonPlan
type LessonPlan struct {
	UUIDBase
	AuthorID           uint              `gorm:"index;type:bigint unsigned" json:"authorId"`
	Title              string            `gorm:"size:255;not null" json:"title"`
	Subject            string            `gorm:"size:50" json:"subject"`
	Grade              string            `gorm:"size:50" json:"grade"`
	Duration           int               `gorm:"default:0" json:"duration"` // 분 단위
	LearningObjectives StringList        `gorm:"type:json" json:"learningObjectives"`
	TargetStudents     TargetStudentList `gorm:"type:json" json:"targetStudents"`
	TeachingMethods    StringList        `gorm:"type:json" json:"teachingMethods"`
	Materials          StringList        `gorm:"type:json" json:"materials"`
	AssessmentMethods  StringList        `gorm:"type:json" json:"assessmentMethods"`
	Accommodations     StringList        `gorm:"type:json" json:"accommodations"`
	Activities         ActivityList      `gorm:"type:json" json:"activities"`
	Notes              string            `gorm:"type:text" json:"notes"`
	Attachments        StringList        `gorm:"type:json" json:"attachments"`
}

func (LessonPlan) TableName() string {
	return "lesson_plans"
}

// TotalActivityTime 활동 시간 합계(분)
func (p *LessonPlan) TotalActivityTime() int {
	total := 0
	for _, a := range p.Activities {
		total += a.Time
	}
	return total
}
