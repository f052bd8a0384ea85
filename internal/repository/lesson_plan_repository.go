package repository

import (
	"sped_lesson_backend/internal/model"

	"gorm.io/gorm"
)

type LessonPlanRepository struct {
	DB *gorm.DB
}

func NewLessonPlanRepository(db *gorm.DB) *LessonPlanRepository {
	return &LessonPlanRepository{DB: db}
}

func (r *LessonPlanRepository) Create(plan *model.LessonPlan) error {
	return r.DB.Create(plan).Error
}

func (r *LessonPlanRepository) FindByID(id string) (*model.LessonPlan, error) {
	var plan model.LessonPlan
	err := r.DB.Where("id = ?", id).First(&plan).Error
	return &plan, err
}

func (r *LessonPlanRepository) Update(plan *model.LessonPlan) error {
	return r.DB.Save(plan).Error
}

func (r *LessonPlanRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.LessonPlan{}).Error
}

// List 작성자별 목록. keyword는 제목 부분 일치, subject/grade는 완전 일치 필터.
func (r *LessonPlanRepository) List(authorID uint, page, limit int, keyword, subject, grade string) ([]model.LessonPlan, int64, error) {
	var plans []model.LessonPlan
	var total int64

	query := r.DB.Model(&model.LessonPlan{})
	if authorID > 0 {
		query = query.Where("author_id = ?", authorID)
	}
	if keyword != "" {
		query = query.Where("title LIKE ?", "%"+keyword+"%")
	}
	if subject != "" {
		query = query.Where("subject = ?", subject)
	}
	if grade != "" {
		query = query.Where("grade = ?", grade)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("updated_at desc").Offset(offset).Limit(limit).Find(&plans).Error
	return plans, total, err
}

func (r *LessonPlanRepository) CountByAuthor(authorID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&model.LessonPlan{}).Where("author_id = ?", authorID).Count(&total).Error
	return total, err
}
