package controller

import (
	"errors"

	"sped_lesson_backend/internal/model"
	"sped_lesson_backend/internal/service"
	"sped_lesson_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewAuthController(authService *service.AuthService, userService *service.UserService) *AuthController {
	return &AuthController{
		AuthService: authService,
		UserService: userService,
	}
}

// RegisterRequest 회원 가입 요청
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	School   string `json:"school"`
}

// Register godoc
// @Summary 회원 가입
// @Description 교사 계정을 새로 등록한다
// @Tags 인증
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "가입 정보"
// @Success 201 {object} util.Response{data=object} "가입 완료"
// @Failure 400 {object} util.Response "요청 형식 오류"
// @Failure 409 {object} util.Response "이미 등록된 이메일"
// @Failure 500 {object} util.Response "서버 오류"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.Teacher,
		School:   req.School,
	}

	if err := c.AuthService.Register(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, 409, util.ErrEmailRegistered.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

// LoginRequest 로그인 요청
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 로그인
// @Description 자격 증명을 확인하고 JWT를 발급한다
// @Tags 인증
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "로그인 정보"
// @Success 200 {object} util.Response{data=object} "성공"
// @Failure 400 {object} util.Response "요청 형식 오류"
// @Failure 401 {object} util.Response "인증 실패"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// GetProfile godoc
// @Summary 내 프로필 조회
// @Description 로그인한 사용자의 프로필과 작성 현황을 조회한다
// @Tags 인증
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.Profile} "성공"
// @Failure 401 {object} util.Response "미인증"
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.UserService.GetProfile(claims.UserID)
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

// UpdateProfile godoc
// @Summary 내 프로필 수정
// @Description 이름과 소속 학교를 수정한다
// @Tags 인증
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.UpdateProfileInput true "수정 내용"
// @Success 200 {object} util.Response{data=model.User} "성공"
// @Failure 401 {object} util.Response "미인증"
// @Router /api/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.UpdateProfileInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, input)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}
