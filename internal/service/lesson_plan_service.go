package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"sped_lesson_backend/internal/model"
	"sped_lesson_backend/internal/repository"
	"sped_lesson_backend/internal/util"

	"gorm.io/gorm"
)

type LessonPlanService struct {
	PlanRepo *repository.LessonPlanRepository
	RunRepo  *repository.EvaluationRunRepository
	Storage  *StorageService
	Scoring  *ScoringService
}

func NewLessonPlanService(
	planRepo *repository.LessonPlanRepository,
	runRepo *repository.EvaluationRunRepository,
	storage *StorageService,
	scoring *ScoringService,
) *LessonPlanService {
	return &LessonPlanService{
		PlanRepo: planRepo,
		RunRepo:  runRepo,
		Storage:  storage,
		Scoring:  scoring,
	}
}

// LessonPlanInput 지도안 작성/수정 입력
type LessonPlanInput struct {
	Title              string                  `json:"title" binding:"required"`
	Subject            string                  `json:"subject"`
	Grade              string                  `json:"grade"`
	Duration           int                     `json:"duration"`
	LearningObjectives model.StringList        `json:"learningObjectives"`
	TargetStudents     model.TargetStudentList `json:"targetStudents"`
	TeachingMethods    model.StringList        `json:"teachingMethods"`
	Materials          model.StringList        `json:"materials"`
	AssessmentMethods  model.StringList        `json:"assessmentMethods"`
	Accommodations     model.StringList        `json:"accommodations"`
	Activities         model.ActivityList      `json:"activities"`
	Notes              string                  `json:"notes"`
}

func (in *LessonPlanInput) apply(plan *model.LessonPlan) {
	plan.Title = in.Title
	plan.Subject = in.Subject
	plan.Grade = in.Grade
	plan.Duration = in.Duration
	plan.LearningObjectives = in.LearningObjectives
	plan.TargetStudents = in.TargetStudents
	plan.TeachingMethods = in.TeachingMethods
	plan.Materials = in.Materials
	plan.AssessmentMethods = in.AssessmentMethods
	plan.Accommodations = in.Accommodations
	plan.Activities = in.Activities
	plan.Notes = in.Notes
}

func (s *LessonPlanService) Create(authorID uint, input LessonPlanInput) (*model.LessonPlan, error) {
	plan := &model.LessonPlan{AuthorID: authorID}
	input.apply(plan)

	if err := s.PlanRepo.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *LessonPlanService) Get(id string, userID uint, isAdmin bool) (*model.LessonPlan, error) {
	plan, err := s.PlanRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrLessonPlanNotFound
		}
		return nil, err
	}
	if plan.AuthorID != userID && !isAdmin {
		return nil, util.ErrPermissionDenied
	}
	return plan, nil
}

func (s *LessonPlanService) Update(id string, userID uint, isAdmin bool, input LessonPlanInput) (*model.LessonPlan, error) {
	plan, err := s.Get(id, userID, isAdmin)
	if err != nil {
		return nil, err
	}

	input.apply(plan)
	if err := s.PlanRepo.Update(plan); err != nil {
		return nil, err
	}

	// 내용이 바뀌면 캐시된 점검/평가 결과는 무효
	if s.Scoring != nil {
		s.Scoring.InvalidateCache(context.Background(), plan.ID)
	}
	return plan, nil
}

func (s *LessonPlanService) Delete(id string, userID uint, isAdmin bool) error {
	plan, err := s.Get(id, userID, isAdmin)
	if err != nil {
		return err
	}

	if err := s.PlanRepo.Delete(plan.ID); err != nil {
		return err
	}
	if err := s.RunRepo.DeleteByPlan(plan.ID); err != nil {
		return err
	}
	if s.Scoring != nil {
		s.Scoring.InvalidateCache(context.Background(), plan.ID)
	}
	return nil
}

func (s *LessonPlanService) List(authorID uint, page, limit int, keyword, subject, grade string) ([]model.LessonPlan, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.PlanRepo.List(authorID, page, limit, keyword, subject, grade)
}

// AddAttachment 첨부파일을 저장소에 올리고 지도안에 연결한다
func (s *LessonPlanService) AddAttachment(ctx context.Context, id string, userID uint, isAdmin bool, file *multipart.FileHeader) (string, error) {
	plan, err := s.Get(id, userID, isAdmin)
	if err != nil {
		return "", err
	}

	if !util.AllowedAttachmentExtension(file.Filename) {
		return "", util.ErrUnsupportedFileType
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	objectName := fmt.Sprintf("lesson-plans/%s/%d%s", plan.ID, time.Now().UnixNano(), filepath.Ext(file.Filename))
	url, err := s.Storage.Upload(ctx, objectName, src, file.Size, contentType)
	if err != nil {
		return "", err
	}

	plan.Attachments = append(plan.Attachments, url)
	if err := s.PlanRepo.Update(plan); err != nil {
		return "", err
	}
	return url, nil
}

func (s *LessonPlanService) RemoveAttachment(ctx context.Context, id string, userID uint, isAdmin bool, url string) error {
	plan, err := s.Get(id, userID, isAdmin)
	if err != nil {
		return err
	}

	found := false
	kept := make(model.StringList, 0, len(plan.Attachments))
	for _, a := range plan.Attachments {
		if a == url {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return util.ErrAttachmentNotFound
	}

	plan.Attachments = kept
	return s.PlanRepo.Update(plan)
}
