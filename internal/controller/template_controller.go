package controller

import (
	"errors"

	"sped_lesson_backend/internal/model"
	"sped_lesson_backend/internal/service"
	"sped_lesson_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TemplateController struct {
	TemplateService *service.TemplateService
}

func NewTemplateController(templateService *service.TemplateService) *TemplateController {
	return &TemplateController{TemplateService: templateService}
}

func respondTemplateError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTemplateNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrTemplateDisabled):
		util.Error(ctx, 409, util.ErrTemplateDisabled.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// List godoc
// @Summary 템플릿 목록
// @Description 사용 가능한 지도안 템플릿 목록
// @Tags 템플릿
// @Produce  json
// @Param   page query int false "페이지 (기본 1)"
// @Param   limit query int false "페이지 크기 (기본 20)"
// @Param   subject query string false "과목"
// @Success 200 {object} util.Response{data=util.PageResponse} "성공"
// @Router /api/templates [get]
func (c *TemplateController) List(ctx *gin.Context) {
	page := int(util.MustParseUint(ctx.DefaultQuery("page", "1")))
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "20")))

	claims := util.GetUserFromContext(ctx)
	includeDisabled := claims != nil && claims.Role == model.Admin

	templates, total, err := c.TemplateService.List(page, limit, ctx.Query("subject"), includeDisabled)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  templates,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Get godoc
// @Summary 템플릿 조회
// @Tags 템플릿
// @Produce  json
// @Param   id path int true "템플릿 ID"
// @Success 200 {object} util.Response{data=model.LessonPlanTemplate} "성공"
// @Failure 404 {object} util.Response "템플릿 없음"
// @Router /api/templates/{id} [get]
func (c *TemplateController) Get(ctx *gin.Context) {
	t, err := c.TemplateService.Get(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondTemplateError(ctx, err)
		return
	}

	util.Success(ctx, t)
}

// InstantiateRequest 템플릿 기반 지도안 생성 요청
type InstantiateRequest struct {
	Title string `json:"title"`
}

// Instantiate godoc
// @Summary 템플릿으로 지도안 만들기
// @Description 템플릿을 복사해 내 지도안 초안을 만든다
// @Tags 템플릿
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "템플릿 ID"
// @Param   body body InstantiateRequest false "초안 제목 (생략하면 템플릿 이름)"
// @Success 201 {object} util.Response{data=model.LessonPlan} "생성 완료"
// @Failure 404 {object} util.Response "템플릿 없음"
// @Failure 409 {object} util.Response "비활성 템플릿"
// @Router /api/templates/{id}/instantiate [post]
func (c *TemplateController) Instantiate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req InstantiateRequest
	_ = ctx.ShouldBindJSON(&req)

	plan, err := c.TemplateService.Instantiate(util.MustParseUint(ctx.Param("id")), claims.UserID, req.Title)
	if err != nil {
		respondTemplateError(ctx, err)
		return
	}

	util.Created(ctx, plan)
}

// Create godoc
// @Summary 템플릿 등록 (관리자)
// @Tags 템플릿
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body model.LessonPlanTemplate true "템플릿 내용"
// @Success 201 {object} util.Response{data=model.LessonPlanTemplate} "등록 완료"
// @Router /api/admin/templates [post]
func (c *TemplateController) Create(ctx *gin.Context) {
	var t model.LessonPlanTemplate
	if err := ctx.ShouldBindJSON(&t); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TemplateService.Create(&t); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, t)
}

// Update godoc
// @Summary 템플릿 수정 (관리자)
// @Tags 템플릿
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "템플릿 ID"
// @Param   body body model.LessonPlanTemplate true "템플릿 내용"
// @Success 200 {object} util.Response{data=model.LessonPlanTemplate} "성공"
// @Failure 404 {object} util.Response "템플릿 없음"
// @Router /api/admin/templates/{id} [put]
func (c *TemplateController) Update(ctx *gin.Context) {
	var t model.LessonPlanTemplate
	if err := ctx.ShouldBindJSON(&t); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	t.ID = util.MustParseUint(ctx.Param("id"))

	if err := c.TemplateService.Update(&t); err != nil {
		respondTemplateError(ctx, err)
		return
	}

	util.Success(ctx, t)
}

// SetEnabledRequest 템플릿 활성/비활성 전환 요청
type SetEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

// SetEnabled godoc
// @Summary 템플릿 활성/비활성 (관리자)
// @Tags 템플릿
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "템플릿 ID"
// @Param   body body SetEnabledRequest true "활성 여부"
// @Success 200 {object} util.Response "성공"
// @Failure 404 {object} util.Response "템플릿 없음"
// @Router /api/admin/templates/{id}/enabled [put]
func (c *TemplateController) SetEnabled(ctx *gin.Context) {
	var req SetEnabledRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TemplateService.SetEnabled(util.MustParseUint(ctx.Param("id")), req.Enabled); err != nil {
		respondTemplateError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"enabled": req.Enabled})
}

// Delete godoc
// @Summary 템플릿 삭제 (관리자)
// @Tags 템플릿
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "템플릿 ID"
// @Success 200 {object} util.Response "성공"
// @Failure 404 {object} util.Response "템플릿 없음"
// @Router /api/admin/templates/{id} [delete]
func (c *TemplateController) Delete(ctx *gin.Context) {
	if err := c.TemplateService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		respondTemplateError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}
