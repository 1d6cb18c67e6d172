package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ap_study_backend/internal/config"
	"ap_study_backend/internal/controller"
	"ap_study_backend/internal/engine"
	"ap_study_backend/internal/repository"
	"ap_study_backend/internal/service"
	"ap_study_backend/pkg/database"
	"ap_study_backend/pkg/logger"
	"ap_study_backend/pkg/monitoring"
	"ap_study_backend/pkg/security"
	"ap_study_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracerProvider  *trace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	plan     *repository.PlanRepository
	session  *repository.SessionRepository
	material *repository.MaterialRepository
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	plan     *service.PlanService
	content  *service.ContentService
	progress *service.ProgressService
	storage  *service.StorageService
	material *service.MaterialService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	plan     *controller.PlanController
	content  *controller.ContentController
	progress *controller.ProgressController
	material *controller.MaterialController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig applies a freshly loaded configuration. Only settings read
// per request, currently the JWT section, pick up the change; everything
// else needs a restart.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config.JWT = cfg.JWT
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		plan:     repository.NewPlanRepository(db),
		session:  repository.NewSessionRepository(db),
		material: repository.NewMaterialRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	tracker := engine.NewProgressTracker()
	generator := engine.NewContentGenerator()

	// The remote strategy is active only when an API key is configured;
	// the local engine covers everything either way.
	remoteEnabled := cfg.AI.APIKey != ""
	remoteTimeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, tracker)
	s.material = service.NewMaterialService(repos.material, s.storage)
	s.progress = service.NewProgressService(repos.session, repos.user, tracker)

	if remoteEnabled {
		remote := service.NewAIService(cfg.AI)
		s.plan = service.NewPlanService(repos.plan, repos.material, remote, true, remoteTimeout, rdb)
		s.content = service.NewContentService(generator, remote, true, remoteTimeout)
	} else {
		s.plan = service.NewPlanService(repos.plan, repos.material, nil, false, remoteTimeout, rdb)
		s.content = service.NewContentService(generator, nil, false, remoteTimeout)
	}

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		user:     controller.NewUserController(s.user),
		plan:     controller.NewPlanController(s.plan, s.user),
		content:  controller.NewContentController(s.content, s.user),
		progress: controller.NewProgressController(s.progress),
		material: controller.NewMaterialController(s.material),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("ap-study-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	logger.Log.Sync()

	log.Println("Server exiting")
}
