package service

import (
	"context"
	"encoding/json"
	"time"

	"sped_lesson_backend/internal/config"
	"sped_lesson_backend/internal/model"
	"sped_lesson_backend/internal/repository"
	"sped_lesson_backend/internal/scoring"
	"sped_lesson_backend/internal/util"
	"sped_lesson_backend/pkg/logger"
	"sped_lesson_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	checklistCacheKeyPrefix  = "scoring:checklist:"
	evaluationCacheKeyPrefix = "scoring:evaluation:"
)

// ScoringService 점검/평가 엔진을 지도안 저장소와 묶는다.
// 엔진 자체는 순수 함수이므로 결과를 Redis에 캐시하고 실행 이력을 남긴다.
type ScoringService struct {
	PlanRepo  *repository.LessonPlanRepository
	RunRepo   *repository.EvaluationRunRepository
	Checker   *scoring.Checker
	Evaluator *scoring.Evaluator
	Redis     *redis.Client
	CacheTTL  time.Duration
}

func NewScoringService(
	planRepo *repository.LessonPlanRepository,
	runRepo *repository.EvaluationRunRepository,
	cfg *config.Config,
	rdb *redis.Client,
) *ScoringService {
	return &ScoringService{
		PlanRepo:  planRepo,
		RunRepo:   runRepo,
		Checker:   scoring.NewChecker(),
		Evaluator: scoring.NewEvaluator(),
		Redis:     rdb,
		CacheTTL:  time.Duration(cfg.Scoring.CacheTTLMinutes) * time.Minute,
	}
}

// ChecklistItems 점검 항목 카탈로그
func (s *ScoringService) ChecklistItems() []scoring.ChecklistItem {
	return s.Checker.Items()
}

// ChecklistCategories 카테고리별 점검 항목
func (s *ScoringService) ChecklistCategories() []scoring.CategoryGroup {
	return s.Checker.ItemsByCategory()
}

// EvaluationCriteria 평가 기준 카탈로그
func (s *ScoringService) EvaluationCriteria() []scoring.EvaluationCriterion {
	return s.Evaluator.Criteria()
}

func (s *ScoringService) loadPlan(id string, userID uint, isAdmin bool) (*model.LessonPlan, error) {
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

// CheckLessonPlan 지도안 점검. 캐시가 있으면 그대로 반환하고,
// 아니면 점검을 실행해 이력을 남기고 캐시한다.
func (s *ScoringService) CheckLessonPlan(ctx context.Context, id string, userID uint, isAdmin bool) (*scoring.LessonPlanChecklist, error) {
	plan, err := s.loadPlan(id, userID, isAdmin)
	if err != nil {
		return nil, err
	}

	cacheKey := checklistCacheKeyPrefix + plan.ID
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		var result scoring.LessonPlanChecklist
		if json.Unmarshal(cached, &result) == nil {
			return &result, nil
		}
	}

	result := s.Checker.Check(plan)

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	run := &model.EvaluationRun{
		LessonPlanID: plan.ID,
		UserID:       userID,
		Kind:         model.RunChecklist,
		Score:        result.CompletionRate,
		Payload:      payload,
	}
	if err := s.RunRepo.Create(run); err != nil {
		logger.Log.Error("Failed to record checklist run", zap.String("lessonPlanId", plan.ID), zap.Error(err))
	}

	monitoring.ScoringRunCounter.WithLabelValues(string(model.RunChecklist), "-").Inc()
	s.toCache(ctx, cacheKey, payload)

	return result, nil
}

// EvaluateLessonPlan 지도안 가중 평가
func (s *ScoringService) EvaluateLessonPlan(ctx context.Context, id string, userID uint, isAdmin bool) (*scoring.LessonPlanEvaluation, error) {
	plan, err := s.loadPlan(id, userID, isAdmin)
	if err != nil {
		return nil, err
	}

	cacheKey := evaluationCacheKeyPrefix + plan.ID
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		var result scoring.LessonPlanEvaluation
		if json.Unmarshal(cached, &result) == nil {
			return &result, nil
		}
	}

	result := s.Evaluator.Evaluate(plan)

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	run := &model.EvaluationRun{
		LessonPlanID: plan.ID,
		UserID:       userID,
		Kind:         model.RunEvaluation,
		Score:        result.Percentage,
		Grade:        result.Grade,
		Payload:      payload,
	}
	if err := s.RunRepo.Create(run); err != nil {
		logger.Log.Error("Failed to record evaluation run", zap.String("lessonPlanId", plan.ID), zap.Error(err))
	}

	monitoring.ScoringRunCounter.WithLabelValues(string(model.RunEvaluation), result.Grade).Inc()
	s.toCache(ctx, cacheKey, payload)

	return result, nil
}

// ListRuns 지도안의 점검/평가 이력
func (s *ScoringService) ListRuns(id string, userID uint, isAdmin bool, kind model.RunKind, page, limit int) ([]model.EvaluationRun, int64, error) {
	if _, err := s.loadPlan(id, userID, isAdmin); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.RunRepo.ListByPlan(id, kind, page, limit)
}

// InvalidateCache 지도안 수정/삭제 시 캐시 무효화
func (s *ScoringService) InvalidateCache(ctx context.Context, lessonPlanID string) {
	if s.Redis == nil {
		return
	}
	keys := []string{
		checklistCacheKeyPrefix + lessonPlanID,
		evaluationCacheKeyPrefix + lessonPlanID,
	}
	if err := s.Redis.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate scoring cache",
			zap.String("lessonPlanId", lessonPlanID), zap.Error(err))
	}
}

func (s *ScoringService) fromCache(ctx context.Context, key string) []byte {
	if s.Redis == nil || s.CacheTTL <= 0 {
		return nil
	}
	val, err := s.Redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("Scoring cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	return val
}

func (s *ScoringService) toCache(ctx context.Context, key string, payload []byte) {
	if s.Redis == nil || s.CacheTTL <= 0 {
		return
	}
	if err := s.Redis.Set(ctx, key, payload, s.CacheTTL).Err(); err != nil {
		logger.Log.Warn("Scoring cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// RunSummary 이력 목록 표시용 요약
type RunSummary struct {
	ID        uint          `json:"id"`
	Kind      model.RunKind `json:"kind"`
	Score     int           `json:"score"`
	Grade     string        `json:"grade,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

func SummarizeRuns(runs []model.EvaluationRun) []RunSummary {
	summaries := make([]RunSummary, 0, len(runs))
	for _, r := range runs {
		summaries = append(summaries, RunSummary{
			ID:        r.ID,
			Kind:      r.Kind,
			Score:     r.Score,
			Grade:     r.Grade,
			CreatedAt: r.CreatedAt,
		})
	}
	return summaries
}

// GetRun 실행 이력 1건의 전체 payload
func (s *ScoringService) GetRun(runID uint, userID uint, isAdmin bool) (*model.EvaluationRun, error) {
	run, err := s.RunRepo.FindByID(runID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrRunNotFound
		}
		return nil, err
	}
	if _, err := s.loadPlan(run.LessonPlanID, userID, isAdmin); err != nil {
		return nil, err
	}
	return run, nil
}
