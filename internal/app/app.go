package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/controller"
	"interview_prep_backend/internal/middleware"
	"interview_prep_backend/internal/repository"
	"interview_prep_backend/internal/service"
	"interview_prep_backend/pkg/configwatcher"
	"interview_prep_backend/pkg/logger"
	"interview_prep_backend/pkg/monitoring"
	"interview_prep_backend/pkg/security"
	"interview_prep_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	services *services
}

type repositories struct {
	session  *repository.SessionRepository
	feedback *repository.FeedbackRepository
}

type services struct {
	usage     *service.UsageService
	ai        *service.AIService
	interview *service.InterviewService
	resume    *service.ResumeService
	pitch     *service.PitchService
	roleplay  *service.RoleplayService
	softSkill *service.SoftSkillService
	feedback  *service.FeedbackService
}

type controllers struct {
	interview *controller.InterviewController
	resume    *controller.ResumeController
	pitch     *controller.PitchController
	roleplay  *controller.RoleplayController
	softSkill *controller.SoftSkillController
	usage     *controller.UsageController
	feedback  *controller.FeedbackController
	health    *controller.HealthController
}

func (a *App) initRepositories() *repositories {
	return &repositories{
		session:  repository.NewSessionRepository(),
		feedback: repository.NewFeedbackRepository(),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	usage := service.NewUsageService(cfg.Quota)
	ai := service.NewAIService(cfg.AI)

	return &services{
		usage:     usage,
		ai:        ai,
		interview: service.NewInterviewService(repos.session, usage, ai),
		resume:    service.NewResumeService(usage, ai),
		pitch:     service.NewPitchService(usage, ai),
		roleplay:  service.NewRoleplayService(usage, ai),
		softSkill: service.NewSoftSkillService(usage, ai),
		feedback:  service.NewFeedbackService(repos.feedback),
	}
}

func (a *App) initControllers(s *services, repos *repositories, cfg *config.Config) *controllers {
	return &controllers{
		interview: controller.NewInterviewController(s.interview),
		resume:    controller.NewResumeController(s.resume),
		pitch:     controller.NewPitchController(s.pitch),
		roleplay:  controller.NewRoleplayController(s.roleplay),
		softSkill: controller.NewSoftSkillController(s.softSkill),
		usage:     controller.NewUsageController(s.usage),
		feedback:  controller.NewFeedbackController(s.feedback),
		health:    controller.NewHealthController(repos.session, cfg.AI.APIKey != ""),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(middleware.RequestID())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	// 定期清理隔日未活跃的配额记录
	go func() {
		ticker := time.NewTicker(time.Hour)
		for range ticker.C {
			if purged := s.usage.PurgeStale(); purged > 0 {
				logger.Log.Info("purged stale usage entries", zap.Int("count", purged))
			}
		}
	}()

	// 配置热更新：运行时调整配额上限
	go configwatcher.WatchConfig("configs/config.yaml", func(cfg *config.Config) {
		s.usage.SetLimits(cfg.Quota)
		logger.Log.Info("quota limits reloaded",
			zap.Int("interviews", cfg.Quota.InterviewsPerDay),
			zap.Int("resumeChecks", cfg.Quota.ResumeChecksPerDay))
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config: cfg,
	}

	repos := app.initRepositories()
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, repos, cfg)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("interview-prep", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
