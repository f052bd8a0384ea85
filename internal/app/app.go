package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sped_lesson_backend/internal/config"
	"sped_lesson_backend/internal/controller"
	"sped_lesson_backend/internal/repository"
	"sped_lesson_backend/internal/service"
	"sped_lesson_backend/pkg/database"
	"sped_lesson_backend/pkg/logger"
	"sped_lesson_backend/pkg/monitoring"
	"sped_lesson_backend/pkg/security"
	"sped_lesson_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config      *config.Config
	Router      *gin.Engine
	DB          *gorm.DB
	Redis       *redis.Client
	services    *services
	rateLimiter *security.RateLimiter
	tracer      *sdktrace.TracerProvider
}

type repositories struct {
	user     *repository.UserRepository
	plan     *repository.LessonPlanRepository
	run      *repository.EvaluationRunRepository
	template *repository.TemplateRepository
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	storage  *service.StorageService
	scoring  *service.ScoringService
	plan     *service.LessonPlanService
	template *service.TemplateService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	plan     *controller.LessonPlanController
	scoring  *controller.ScoringController
	template *controller.TemplateController
	health   *controller.HealthController
}

// OnConfigReload 설정 파일 변경 시 호출된다. 재시작 없이 반영 가능한 값만 갱신한다.
func (a *App) OnConfigReload(cfg interface{}) {
	newCfg, ok := cfg.(*config.Config)
	if !ok {
		return
	}

	a.Config.Scoring = newCfg.Scoring
	a.Config.RateLimit = newCfg.RateLimit
	if a.services != nil && a.services.scoring != nil {
		a.services.scoring.CacheTTL = time.Duration(newCfg.Scoring.CacheTTLMinutes) * time.Minute
	}
	if a.rateLimiter != nil {
		a.rateLimiter.Update(newCfg.RateLimit.MaxRequests,
			time.Duration(newCfg.RateLimit.WindowMinutes)*time.Minute)
	}

	logger.Log.Info("Config reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		plan:     repository.NewLessonPlanRepository(db),
		run:      repository.NewEvaluationRunRepository(db),
		template: repository.NewTemplateRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, repos.plan)
	s.scoring = service.NewScoringService(repos.plan, repos.run, cfg, rdb)
	s.plan = service.NewLessonPlanService(repos.plan, repos.run, s.storage, s.scoring)
	s.template = service.NewTemplateService(repos.template, repos.plan)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth, s.user),
		user:     controller.NewUserController(s.user),
		plan:     controller.NewLessonPlanController(s.plan),
		scoring:  controller.NewScoringController(s.scoring),
		template: controller.NewTemplateController(s.template),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	a.rateLimiter = security.NewRateLimiter(maxRequests, window)
	router.Use(a.rateLimiter.Middleware())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// initTracing 트레이서 프로바이더를 만들어 App에 보관한다.
// 프로바이더는 서버가 내려갈 때 Run()에서 정리한다.
func (a *App) initTracing(cfg *config.Config) error {
	tp, err := tracing.InitTracer("lessonplan-backend", cfg.Tracing.CollectorEndpoint)
	if err != nil {
		return err
	}
	a.tracer = tp
	return nil
}

func (a *App) shutdownTracing(ctx context.Context) {
	if a.tracer == nil {
		return
	}
	if err := a.tracer.Shutdown(ctx); err != nil {
		logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
	}
	a.tracer = nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if err := app.initTracing(cfg); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
		router.Static("/api/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 인터럽트 신호를 받으면 5초 안에 정리하고 내려간다
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	// 남은 스팬을 비우고 트레이서를 내린다
	a.shutdownTracing(ctx)

	log.Println("Server exiting")
}
