package repository

import (
	"sped_lesson_backend/internal/model"

	"gorm.io/gorm"
)

type EvaluationRunRepository struct {
	DB *gorm.DB
}

func NewEvaluationRunRepository(db *gorm.DB) *EvaluationRunRepository {
	return &EvaluationRunRepository{DB: db}
}

func (r *EvaluationRunRepository) Create(run *model.EvaluationRun) error {
	return r.DB.Create(run).Error
}

func (r *EvaluationRunRepository) FindByID(id uint) (*model.EvaluationRun, error) {
	var run model.EvaluationRun
	err := r.DB.First(&run, id).Error
	return &run, err
}

func (r *EvaluationRunRepository) ListByPlan(lessonPlanID string, kind model.RunKind, page, limit int) ([]model.EvaluationRun, int64, error) {
	var runs []model.EvaluationRun
	var total int64

	query := r.DB.Model(&model.EvaluationRun{}).Where("lesson_plan_id = ?", lessonPlanID)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&runs).Error
	return runs, total, err
}

// LatestByPlan 지도안의 가장 최근 실행 기록
func (r *EvaluationRunRepository) LatestByPlan(lessonPlanID string, kind model.RunKind) (*model.EvaluationRun, error) {
	var run model.EvaluationRun
	err := r.DB.Where("lesson_plan_id = ? AND kind = ?", lessonPlanID, kind).
		Order("created_at desc").
		First(&run).Error
	return &run, err
}

func (r *EvaluationRunRepository) DeleteByPlan(lessonPlanID string) error {
	return r.DB.Where("lesson_plan_id = ?", lessonPlanID).Delete(&model.EvaluationRun{}).Error
}
