package app

import (
	"sped_lesson_backend/docs"
	"sped_lesson_backend/internal/config"
	"sped_lesson_backend/internal/middleware"
	"sped_lesson_backend/internal/model"
	"sped_lesson_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 공개 라우트(로그인 불필요)
	a.registerPublicRoutes(router, c)

	// 2. 로그인 필요한 라우트
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerTeacherRoutes(authGroup, c)
	}

	// 3. 관리자 라우트
	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	router.GET("/health", c.health.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/register", c.auth.Register)
		api.POST("/login", c.auth.Login)

		// 점검 항목과 평가 기준 카탈로그는 로그인 없이도 열람 가능
		api.GET("/checklist", c.scoring.GetChecklistItems)
		api.GET("/checklist/categories", c.scoring.GetChecklistCategories)
		api.GET("/evaluation/criteria", c.scoring.GetEvaluationCriteria)

		// 템플릿 열람도 공개. 관리자가 로그인한 경우 비활성 템플릿까지 보인다
		api.GET("/templates", middleware.TryAuthMiddleware(a.Config), c.template.List)
		api.GET("/templates/:id", c.template.Get)
	}
}

func (a *App) registerTeacherRoutes(authGroup *gin.RouterGroup, c *controllers) {
	authGroup.Use(middleware.RoleMiddleware(model.Teacher, model.Admin))

	authGroup.GET("/profile", c.auth.GetProfile)
	authGroup.PUT("/profile", c.auth.UpdateProfile)

	authGroup.POST("/lesson-plans", c.plan.Create)
	authGroup.GET("/lesson-plans", c.plan.List)
	authGroup.GET("/lesson-plans/:id", c.plan.Get)
	authGroup.PUT("/lesson-plans/:id", c.plan.Update)
	authGroup.DELETE("/lesson-plans/:id", c.plan.Delete)

	authGroup.POST("/lesson-plans/:id/attachments", c.plan.UploadAttachment)
	authGroup.DELETE("/lesson-plans/:id/attachments", c.plan.RemoveAttachment)

	authGroup.POST("/lesson-plans/:id/check", c.scoring.CheckLessonPlan)
	authGroup.POST("/lesson-plans/:id/evaluate", c.scoring.EvaluateLessonPlan)
	authGroup.GET("/lesson-plans/:id/runs", c.scoring.ListRuns)
	authGroup.GET("/runs/:runId", c.scoring.GetRun)

	authGroup.POST("/templates/:id/instantiate", c.template.Instantiate)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.GetUsers)
		admin.GET("/users/:id", c.user.GetUser)
		admin.POST("/users/:id/disable", c.user.DisableUser)

		admin.POST("/templates", c.template.Create)
		admin.PUT("/templates/:id", c.template.Update)
		admin.PUT("/templates/:id/enabled", c.template.SetEnabled)
		admin.DELETE("/templates/:id", c.template.Delete)
	}
}
