package controller

import (
	"errors"

	"sped_lesson_backend/internal/model"
	"sped_lesson_backend/internal/service"
	"sped_lesson_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ScoringController struct {
	ScoringService *service.ScoringService
}

func NewScoringController(scoringService *service.ScoringService) *ScoringController {
	return &ScoringController{ScoringService: scoringService}
}

func respondScoringError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrLessonPlanNotFound), errors.Is(err, util.ErrRunNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// GetChecklistItems godoc
// @Summary 점검 항목 카탈로그
// @Description 지도안 점검에 쓰이는 전체 항목 목록
// @Tags 점검·평가
// @Produce  json
// @Success 200 {object} util.Response{data=[]scoring.ChecklistItem} "성공"
// @Router /api/checklist [get]
func (c *ScoringController) GetChecklistItems(ctx *gin.Context) {
	util.Success(ctx, c.ScoringService.ChecklistItems())
}

// GetChecklistCategories godoc
// @Summary 카테고리별 점검 항목
// @Description 점검 항목을 카테고리 순서대로 묶어 반환한다
// @Tags 점검·평가
// @Produce  json
// @Success 200 {object} util.Response{data=[]scoring.CategoryGroup} "성공"
// @Router /api/checklist/categories [get]
func (c *ScoringController) GetChecklistCategories(ctx *gin.Context) {
	util.Success(ctx, c.ScoringService.ChecklistCategories())
}

// GetEvaluationCriteria godoc
// @Summary 평가 기준 카탈로그
// @Description 가중 평가에 쓰이는 7개 기준과 가중치
// @Tags 점검·평가
// @Produce  json
// @Success 200 {object} util.Response{data=[]scoring.EvaluationCriterion} "성공"
// @Router /api/evaluation/criteria [get]
func (c *ScoringController) GetEvaluationCriteria(ctx *gin.Context) {
	util.Success(ctx, c.ScoringService.EvaluationCriteria())
}

// CheckLessonPlan godoc
// @Summary 지도안 점검 실행
// @Description 지도안을 점검 항목에 따라 검사하고 완성도를 계산한다
// @Tags 점검·평가
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "지도안 ID"
// @Success 200 {object} util.Response{data=scoring.LessonPlanChecklist} "성공"
// @Failure 403 {object} util.Response "권한 없음"
// @Failure 404 {object} util.Response "지도안 없음"
// @Router /api/lesson-plans/{id}/check [post]
func (c *ScoringController) CheckLessonPlan(ctx *gin.Context) {
	userID, isAdmin, ok := planAccess(ctx)
	if !ok {
		return
	}

	result, err := c.ScoringService.CheckLessonPlan(ctx.Request.Context(), ctx.Param("id"), userID, isAdmin)
	if err != nil {
		respondScoringError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// EvaluateLessonPlan godoc
// @Summary 지도안 평가 실행
// @Description 7개 기준 가중 평가를 실행하고 등급을 매긴다
// @Tags 점검·평가
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "지도안 ID"
// @Success 200 {object} util.Response{data=scoring.LessonPlanEvaluation} "성공"
// @Failure 403 {object} util.Response "권한 없음"
// @Failure 404 {object} util.Response "지도안 없음"
// @Router /api/lesson-plans/{id}/evaluate [post]
func (c *ScoringController) EvaluateLessonPlan(ctx *gin.Context) {
	userID, isAdmin, ok := planAccess(ctx)
	if !ok {
		return
	}

	result, err := c.ScoringService.EvaluateLessonPlan(ctx.Request.Context(), ctx.Param("id"), userID, isAdmin)
	if err != nil {
		respondScoringError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// ListRuns godoc
// @Summary 점검·평가 이력
// @Description 지도안의 실행 이력 요약을 페이지로 조회한다
// @Tags 점검·평가
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "지도안 ID"
// @Param   kind query string false "checklist 또는 evaluation"
// @Param   page query int false "페이지 (기본 1)"
// @Param   limit query int false "페이지 크기 (기본 20)"
// @Success 200 {object} util.Response{data=util.PageResponse} "성공"
// @Router /api/lesson-plans/{id}/runs [get]
func (c *ScoringController) ListRuns(ctx *gin.Context) {
	userID, isAdmin, ok := planAccess(ctx)
	if !ok {
		return
	}

	kind := model.RunKind(ctx.Query("kind"))
	if kind != "" && kind != model.RunChecklist && kind != model.RunEvaluation {
		util.BadRequest(ctx, "kind must be checklist or evaluation")
		return
	}

	page := int(util.MustParseUint(ctx.DefaultQuery("page", "1")))
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "20")))

	runs, total, err := c.ScoringService.ListRuns(ctx.Param("id"), userID, isAdmin, kind, page, limit)
	if err != nil {
		respondScoringError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  service.SummarizeRuns(runs),
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetRun godoc
// @Summary 실행 이력 상세
// @Description 점검·평가 실행 1건의 전체 결과를 조회한다
// @Tags 점검·평가
// @Produce  json
// @Security BearerAuth
// @Param   runId path int true "실행 ID"
// @Success 200 {object} util.Response{data=model.EvaluationRun} "성공"
// @Failure 404 {object} util.Response "이력 없음"
// @Router /api/runs/{runId} [get]
func (c *ScoringController) GetRun(ctx *gin.Context) {
	userID, isAdmin, ok := planAccess(ctx)
	if !ok {
		return
	}

	run, err := c.ScoringService.GetRun(util.MustParseUint(ctx.Param("runId")), userID, isAdmin)
	if err != nil {
		respondScoringError(ctx, err)
		return
	}

	util.Success(ctx, run)
}
