package service

import (
	"sped_lesson_backend/internal/model"
	"sped_lesson_backend/internal/repository"
	"sped_lesson_backend/internal/util"

	"gorm.io/gorm"
)

type TemplateService struct {
	TemplateRepo *repository.TemplateRepository
	PlanRepo     *repository.LessonPlanRepository
}

func NewTemplateService(templateRepo *repository.TemplateRepository, planRepo *repository.LessonPlanRepository) *TemplateService {
	return &TemplateService{
		TemplateRepo: templateRepo,
		PlanRepo:     planRepo,
	}
}

func (s *TemplateService) List(page, limit int, subject string, includeDisabled bool) ([]model.LessonPlanTemplate, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.TemplateRepo.List(page, limit, subject, !includeDisabled)
}

func (s *TemplateService) Get(id uint) (*model.LessonPlanTemplate, error) {
	t, err := s.TemplateRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTemplateNotFound
		}
		return nil, err
	}
	return t, nil
}

// Instantiate 템플릿을 복사해 작성자 명의의 새 지도안 초안을 만든다
func (s *TemplateService) Instantiate(id uint, authorID uint, title string) (*model.LessonPlan, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !t.Enabled {
		return nil, util.ErrTemplateDisabled
	}

	if title == "" {
		title = t.Name
	}

	plan := &model.LessonPlan{
		AuthorID:           authorID,
		Title:              title,
		Subject:            t.Subject,
		Grade:              t.Grade,
		Duration:           t.Duration,
		LearningObjectives: t.LearningObjectives,
		TargetStudents:     t.TargetStudents,
		TeachingMethods:    t.TeachingMethods,
		Materials:          t.Materials,
		AssessmentMethods:  t.AssessmentMethods,
		Accommodations:     t.Accommodations,
		Activities:         t.Activities,
		Notes:              t.Notes,
	}

	if err := s.PlanRepo.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *TemplateService) Create(t *model.LessonPlanTemplate) error {
	return s.TemplateRepo.Create(t)
}

func (s *TemplateService) Update(t *model.LessonPlanTemplate) error {
	if _, err := s.Get(t.ID); err != nil {
		return err
	}
	return s.TemplateRepo.Update(t)
}

func (s *TemplateService) SetEnabled(id uint, enabled bool) error {
	t, err := s.Get(id)
	if err != nil {
		return err
	}
	t.Enabled = enabled
	return s.TemplateRepo.Update(t)
}

func (s *TemplateService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.TemplateRepo.Delete(id)
}
