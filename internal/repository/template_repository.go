package repository

import (
	"sped_lesson_backend/internal/model"

	"gorm.io/gorm"
)

type TemplateRepository struct {
	DB *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{DB: db}
}

func (r *TemplateRepository) Create(t *model.LessonPlanTemplate) error {
	return r.DB.Create(t).Error
}

func (r *TemplateRepository) FindByID(id uint) (*model.LessonPlanTemplate, error) {
	var t model.LessonPlanTemplate
	err := r.DB.First(&t, id).Error
	return &t, err
}

func (r *TemplateRepository) List(page, limit int, subject string, enabledOnly bool) ([]model.LessonPlanTemplate, int64, error) {
	var ts []model.LessonPlanTemplate
	var total int64

	query := r.DB.Model(&model.LessonPlanTemplate{})
	if subject != "" {
		query = query.Where("subject = ?", subject)
	}
	if enabledOnly {
		query = query.Where("enabled = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&ts).Error
	return ts, total, err
}

func (r *TemplateRepository) Update(t *model.LessonPlanTemplate) error {
	return r.DB.Save(t).Error
}

func (r *TemplateRepository) Delete(id uint) error {
	return r.DB.Delete(&model.LessonPlanTemplate{}, id).Error
}
