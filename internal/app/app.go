package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"taskforge_backend/internal/config"
	"taskforge_backend/internal/controller"
	"taskforge_backend/internal/repository"
	"taskforge_backend/internal/service"
	"taskforge_backend/internal/taskgen"
	"taskforge_backend/pkg/configwatcher"
	"taskforge_backend/pkg/database"
	"taskforge_backend/pkg/logger"
	"taskforge_backend/pkg/monitoring"
	"taskforge_backend/pkg/security"
	"taskforge_backend/pkg/tracing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	Catalog         *taskgen.Catalog
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	activity   *repository.ActivityRepository
	withdrawal *repository.WithdrawalRepository
	document   *repository.DocumentRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	project      *service.ProjectService
	task         *service.TaskService
	dashboard    *service.DashboardService
	withdrawal   *service.WithdrawalService
	email        *service.EmailService
	storage      *service.StorageService
	verification *service.VerificationService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	project      *controller.ProjectController
	task         *controller.TaskController
	dashboard    *controller.DashboardController
	earnings     *controller.EarningsController
	verification *controller.VerificationController
	admin        *controller.AdminController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		activity:   repository.NewActivityRepository(db),
		withdrawal: repository.NewWithdrawalRepository(db),
		document:   repository.NewDocumentRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	email := service.NewEmailService(cfg, logger.Log)

	return &services{
		auth:         service.NewAuthService(repos.user, cfg),
		user:         service.NewUserService(repos.user),
		project:      service.NewProjectService(a.Catalog),
		task:         service.NewTaskService(repos.user, repos.activity, a.Catalog, db),
		dashboard:    service.NewDashboardService(repos.user, repos.activity),
		withdrawal:   service.NewWithdrawalService(repos.user, repos.withdrawal, cfg, db),
		email:        email,
		storage:      storage,
		verification: service.NewVerificationService(repos.user, repos.document, email, storage, rdb),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		project:      controller.NewProjectController(s.project),
		task:         controller.NewTaskController(s.task),
		dashboard:    controller.NewDashboardController(s.dashboard),
		earnings:     controller.NewEarningsController(s.withdrawal),
		verification: controller.NewVerificationController(s.verification, s.auth),
		admin:        controller.NewAdminController(s.verification, s.withdrawal),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

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
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Catalog: taskgen.DefaultCatalog(),
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("taskforge", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		go func() {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// 非结构性配置支持热更新：邮件密钥与提现限额在请求时读取
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		cfg.Email = newCfg.Email
		cfg.Payout = newCfg.Payout
	})

	// 配置热更新：文件变更后重载并通知回调
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("Config reloaded")
		for _, cb := range app.configCallbacks {
			cb(newCfg)
		}
	})

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
