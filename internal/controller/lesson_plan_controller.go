package controller

import (
	"errors"

	"sped_lesson_backend/internal/model"
	"sped_lesson_backend/internal/service"
	"sped_lesson_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonPlanController struct {
	PlanService *service.LessonPlanService
}

func NewLessonPlanController(planService *service.LessonPlanService) *LessonPlanController {
	return &LessonPlanController{PlanService: planService}
}

func planAccess(ctx *gin.Context) (uint, bool, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false, false
	}
	return claims.UserID, claims.Role == model.Admin, true
}

func respondPlanError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrLessonPlanNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrUnsupportedFileType):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrAttachmentNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// Create godoc
// @Summary 지도안 작성
// @Description 새 수업 지도안을 작성한다
// @Tags 지도안
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.LessonPlanInput true "지도안 내용"
// @Success 201 {object} util.Response{data=model.LessonPlan} "작성 완료"
// @Failure 400 {object} util.Response "요청 형식 오류"
// @Router /api/lesson-plans [post]
func (c *LessonPlanController) Create(ctx *gin.Context) {
	userID, _, ok := planAccess(ctx)
	if !ok {
		return
	}

	var input service.LessonPlanInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan, err := c.PlanService.Create(userID, input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, plan)
}

// Get godoc
// @Summary 지도안 조회
// @Tags 지도안
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "지도안 ID"
// @Success 200 {object} util.Response{data=model.LessonPlan} "성공"
// @Failure 403 {object} util.Response "권한 없음"
// @Failure 404 {object} util.Response "지도안 없음"
// @Router /api/lesson-plans/{id} [get]
func (c *LessonPlanController) Get(ctx *gin.Context) {
	userID, isAdmin, ok := planAccess(ctx)
	if !ok {
		return
	}

	plan, err := c.PlanService.Get(ctx.Param("id"), userID, isAdmin)
	if err != nil {
		respondPlanError(ctx, err)
		return
	}

	util.Success(ctx, plan)
}

// List godoc
// @Summary 내 지도안 목록
// @Description 제목/과목/학년으로 필터링 가능한 페이지 목록
// @Tags 지도안
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "페이지 (기본 1)"
// @Param   limit query int false "페이지 크기 (기본 20)"
// @Param   keyword query string false "제목 검색어"
// @Param   subject query string false "과목"
// @Param   grade query string false "학년"
// @Success 200 {object} util.Response{data=util.PageResponse} "성공"
// @Router /api/lesson-plans [get]
func (c *LessonPlanController) List(ctx *gin.Context) {
	userID, _, ok := planAccess(ctx)
	if !ok {
		return
	}

	page := int(util.MustParseUint(ctx.DefaultQuery("page", "1")))
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "20")))

	plans, total, err := c.PlanService.List(userID, page, limit,
		ctx.Query("keyword"), ctx.Query("subject"), ctx.Query("grade"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  plans,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Update godoc
// @Summary 지도안 수정
// @Tags 지도안
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "지도안 ID"
// @Param   body body service.LessonPlanInput true "지도안 내용"
// @Success 200 {object} util.Response{data=model.LessonPlan} "성공"
// @Failure 403 {object} util.Response "권한 없음"
// @Failure 404 {object} util.Response "지도안 없음"
// @Router /api/lesson-plans/{id} [put]
func (c *LessonPlanController) Update(ctx *gin.Context) {
	userID, isAdmin, ok := planAccess(ctx)
	if !ok {
		return
	}

	var input service.LessonPlanInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan, err := c.PlanService.Update(ctx.Param("id"), userID, isAdmin, input)
	if err != nil {
		respondPlanError(ctx, err)
		return
	}

	util.Success(ctx, plan)
}

// Delete godoc
// @Summary 지도안 삭제
// @Tags 지도안
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "지도안 ID"
// @Success 200 {object} util.Response "성공"
// @Failure 403 {object} util.Response "권한 없음"
// @Failure 404 {object} util.Response "지도안 없음"
// @Router /api/lesson-plans/{id} [delete]
func (c *LessonPlanController) Delete(ctx *gin.Context) {
	userID, isAdmin, ok := planAccess(ctx)
	if !ok {
		return
	}

	if err := c.PlanService.Delete(ctx.Param("id"), userID, isAdmin); err != nil {
		respondPlanError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// UploadAttachment godoc
// @Summary 첨부파일 업로드
// @Description 지도안에 첨부파일(문서, 이미지)을 올린다
// @Tags 지도안
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "지도안 ID"
// @Param   file formData file true "첨부파일"
// @Success 200 {object} util.Response{data=object} "성공"
// @Failure 400 {object} util.Response "허용되지 않는 파일 형식"
// @Router /api/lesson-plans/{id}/attachments [post]
func (c *LessonPlanController) UploadAttachment(ctx *gin.Context) {
	userID, isAdmin, ok := planAccess(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	url, err := c.PlanService.AddAttachment(ctx.Request.Context(), ctx.Param("id"), userID, isAdmin, file)
	if err != nil {
		respondPlanError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}

// RemoveAttachment godoc
// @Summary 첨부파일 삭제
// @Tags 지도안
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "지도안 ID"
// @Param   url query string true "첨부파일 URL"
// @Success 200 {object} util.Response "성공"
// @Failure 404 {object} util.Response "첨부파일 없음"
// @Router /api/lesson-plans/{id}/attachments [delete]
func (c *LessonPlanController) RemoveAttachment(ctx *gin.Context) {
	userID, isAdmin, ok := planAccess(ctx)
	if !ok {
		return
	}

	url := ctx.Query("url")
	if url == "" {
		util.BadRequest(ctx, "url is required")
		return
	}

	if err := c.PlanService.RemoveAttachment(ctx.Request.Context(), ctx.Param("id"), userID, isAdmin, url); err != nil {
		respondPlanError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"removed": true})
}
