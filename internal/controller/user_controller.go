package controller

import (
	"errors"

	"sped_lesson_backend/internal/service"
	"sped_lesson_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetUsers godoc
// @Summary 사용자 목록 (관리자)
// @Tags 관리자
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "페이지 (기본 1)"
// @Param   limit query int false "페이지 크기 (기본 20)"
// @Success 200 {object} util.Response{data=util.PageResponse} "성공"
// @Router /api/admin/users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	page := int(util.MustParseUint(ctx.DefaultQuery("page", "1")))
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "20")))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := c.UserService.ListUsers(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  users,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetUser godoc
// @Summary 사용자 프로필 (관리자)
// @Tags 관리자
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "사용자 ID"
// @Success 200 {object} util.Response{data=service.Profile} "성공"
// @Failure 404 {object} util.Response "사용자 없음"
// @Router /api/admin/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	profile, err := c.UserService.GetProfile(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, profile)
}

// DisableRequest 계정 사용 정지/해제 요청
type DisableRequest struct {
	Disabled bool `json:"disabled"`
}

// DisableUser godoc
// @Summary 계정 정지/해제 (관리자)
// @Tags 관리자
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "사용자 ID"
// @Param   body body DisableRequest true "정지 여부"
// @Success 200 {object} util.Response "성공"
// @Failure 404 {object} util.Response "사용자 없음"
// @Router /api/admin/users/{id}/disable [post]
func (c *UserController) DisableUser(ctx *gin.Context) {
	var req DisableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.SetDisabled(util.MustParseUint(ctx.Param("id")), req.Disabled); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"disabled": req.Disabled})
}
