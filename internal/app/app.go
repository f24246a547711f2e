package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"studyhub_backend/internal/config"
	"studyhub_backend/internal/controller"
	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/service"
	"studyhub_backend/pkg/logger"
	"studyhub_backend/pkg/monitoring"
	"studyhub_backend/pkg/security"
	"studyhub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// 演示用户在种子数据中始终是第一条记录
const defaultUserID = 1

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *repository.DB

	demoUserID      int
	tracerProvider  *sdktrace.TracerProvider
	rateLimiter     *security.RateLimiter
	configMu        sync.RWMutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user             *repository.UserRepository
	course           *repository.CourseRepository
	enrollment       *repository.EnrollmentRepository
	session          *repository.SessionRepository
	note             *repository.NoteRepository
	material         *repository.MaterialRepository
	materialProgress *repository.MaterialProgressRepository
	subject          *repository.SubjectRepository
	subjectProgress  *repository.SubjectProgressRepository
	notification     *repository.NotificationRepository
}

type services struct {
	user         *service.UserService
	dashboard    *service.DashboardService
	study        *service.StudyService
	note         *service.NoteService
	material     *service.MaterialService
	notification *service.NotificationService
}

type controllers struct {
	user         *controller.UserController
	dashboard    *controller.DashboardController
	study        *controller.StudyController
	note         *controller.NoteController
	material     *controller.MaterialController
	notification *controller.NotificationController
	health       *controller.HealthController
}

// RegisterConfigCallback 配置热加载后依次调用
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configMu.Lock()
	defer a.configMu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 接收热加载后的新配置。watcher协程调用，
// 配置交换在锁内完成，回调在锁外执行
func (a *App) ApplyConfig(cfg *config.Config) {
	a.configMu.Lock()
	a.Config = cfg
	callbacks := make([]func(*config.Config), len(a.configCallbacks))
	copy(callbacks, a.configCallbacks)
	a.configMu.Unlock()

	for _, callback := range callbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *repository.DB) *repositories {
	return &repositories{
		user:             repository.NewUserRepository(db),
		course:           repository.NewCourseRepository(db),
		enrollment:       repository.NewEnrollmentRepository(db),
		session:          repository.NewSessionRepository(db),
		note:             repository.NewNoteRepository(db),
		material:         repository.NewMaterialRepository(db),
		materialProgress: repository.NewMaterialProgressRepository(db),
		subject:          repository.NewSubjectRepository(db),
		subjectProgress:  repository.NewSubjectProgressRepository(db),
		notification:     repository.NewNotificationRepository(db),
	}
}

func (a *App) initServices(repos *repositories) *services {
	s := &services{}

	s.user = service.NewUserService(repos.user)
	s.study = service.NewStudyService(repos.session)
	s.note = service.NewNoteService(repos.note)
	s.material = service.NewMaterialService(repos.material, repos.materialProgress)
	s.notification = service.NewNotificationService(repos.notification)

	s.dashboard = service.NewDashboardService(
		repos.user,
		repos.course,
		repos.enrollment,
		repos.subject,
		repos.subjectProgress,
		s.study,
		s.note,
		s.material,
		s.notification,
	)

	return s
}

func (a *App) initControllers(s *services, db *repository.DB) *controllers {
	return &controllers{
		user:         controller.NewUserController(s.user),
		dashboard:    controller.NewDashboardController(s.dashboard),
		study:        controller.NewStudyController(s.study),
		note:         controller.NewNoteController(s.note),
		material:     controller.NewMaterialController(s.material),
		notification: controller.NewNotificationController(s.notification),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	a.rateLimiter = security.NewRateLimiter(rateLimitParams(cfg))
	router.Use(a.rateLimiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func rateLimitParams(cfg *config.Config) (int, time.Duration) {
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	return maxRequests, time.Duration(windowMinutes) * time.Minute
}

// startBackgroundTasks 定期上报各内存表记录数
func (a *App) startBackgroundTasks() {
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			for table, size := range a.DB.TableSizes() {
				monitoring.StoreRecords.WithLabelValues(table).Set(float64(size))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	db := repository.NewDB()

	app := &App{
		Config:     cfg,
		DB:         db,
		demoUserID: defaultUserID,
	}

	if cfg.Seed.Demo && !cfg.SkipSeed {
		user, err := repository.SeedDemo(db)
		if err != nil {
			logger.Log.Fatal("Failed to seed demo data", zap.Error(err))
		}
		app.demoUserID = user.ID
		logger.Log.Info("Demo dataset seeded", zap.Int("userId", user.ID))
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("studyhub", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)
	app.startBackgroundTasks()

	// 限流速率跟随配置热加载
	app.RegisterConfigCallback(func(cfg *config.Config) {
		maxRequests, window := rateLimitParams(cfg)
		app.rateLimiter.SetRate(maxRequests, window)
		logger.Log.Info("Rate limit updated",
			zap.Int("maxRequests", maxRequests),
			zap.Duration("window", window))
	})

	return app
}

func (a *App) Run() {
	a.configMu.RLock()
	port := a.Config.Server.Port
	a.configMu.RUnlock()

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", port)
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

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
