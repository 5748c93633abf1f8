package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"influence_survey/internal/config"
	"influence_survey/internal/controller"
	"influence_survey/internal/ingest"
	"influence_survey/internal/service"
	"influence_survey/internal/web"
	"influence_survey/pkg/filewatcher"
	"influence_survey/pkg/logger"
	"influence_survey/pkg/monitoring"
	"influence_survey/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	Config          *config.Config
	ConfigDir       string
	Router          *gin.Engine
	services        *services
	configCallbacks []func(*config.Config)
	tracer          *sdktrace.TracerProvider
}

type services struct {
	source    service.SourceProvider
	questions *service.QuestionService
	survey    *service.SurveyService
}

type controllers struct {
	survey     *controller.SurveyController
	question   *controller.QuestionController
	submission *controller.SubmissionController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// IngestOptions 由配置得到题库解析策略
func IngestOptions(cfg *config.Config) ingest.Options {
	opts := ingest.DefaultOptions()
	opts.MinQuestionLength = cfg.Survey.MinQuestionLength
	opts.ShortfallPolicy = cfg.Survey.ShortfallPolicy
	return opts
}

func (a *App) initServices(cfg *config.Config, source service.SourceProvider) *services {
	questions := service.NewQuestionService(source, IngestOptions(cfg))
	survey := service.NewSurveyService(questions, cfg.Survey.IncludePlaceholders, cfg.Survey.DefaultName)

	a.RegisterConfigCallback(func(c *config.Config) {
		// 解析策略未变时保留缓存
		if opts := IngestOptions(c); opts != questions.Options() {
			questions.SetOptions(opts)
		}
		survey.SetPolicy(c.Survey.IncludePlaceholders, c.Survey.DefaultName)
	})

	return &services{source: source, questions: questions, survey: survey}
}

func (a *App) initControllers(s *services, cfg *config.Config) *controllers {
	return &controllers{
		survey:     controller.NewSurveyController(s.survey, cfg.Survey.Title),
		question:   controller.NewQuestionController(s.questions, s.survey),
		submission: controller.NewSubmissionController(s.survey),
		health:     controller.NewHealthController(s.questions),
	}
}

// New 组装应用；source 为空时按配置创建题库来源
func New(cfg *config.Config, source service.SourceProvider) (*App, error) {
	if source == nil {
		var err error
		source, err = service.NewSourceProvider(cfg)
		if err != nil {
			return nil, fmt.Errorf("init question source: %w", err)
		}
	}

	app := &App{Config: cfg, ConfigDir: "configs"}
	app.services = app.initServices(cfg, source)
	controllers := app.initControllers(app.services, cfg)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.SetHTMLTemplate(web.Templates())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app, nil
}

// NewApp 初始化日志、追踪并组装应用，失败时退出进程
func NewApp(cfg *config.Config, configDir string) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	app, err := New(cfg, nil)
	if err != nil {
		logger.Log.Fatal("Failed to initialize application", zap.Error(err))
	}
	app.ConfigDir = configDir

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("influence-survey", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

// Check 加载一次题库并输出摘要
func (a *App) Check(ctx context.Context) error {
	set, err := a.services.questions.Questions(ctx)
	if err != nil {
		return err
	}
	logger.Log.Info("question set ok",
		zap.String("source", set.Source.Name),
		zap.String("hash", set.Source.Hash),
		zap.Int("questions", len(set.Questions)),
		zap.Int("column", set.QuestionColumn),
		zap.Int("placeholders", set.Placeholders),
	)
	return nil
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	a.Config = cfg
	logger.Log.Info("Configuration reloaded",
		zap.String("shortfall_policy", cfg.Survey.ShortfallPolicy),
		zap.Bool("include_placeholders", cfg.Survey.IncludePlaceholders),
		zap.Int("min_question_length", cfg.Survey.MinQuestionLength),
	)
}

func (a *App) startBackgroundTasks(ctx context.Context) {
	configFile := filepath.Join(a.ConfigDir, "config.yaml")
	if _, err := os.Stat(configFile); err == nil {
		err := filewatcher.Watch(ctx, configFile, filewatcher.DefaultDebounce, func() {
			newCfg, err := config.LoadConfig(a.ConfigDir)
			if err != nil {
				logger.Log.Error("Failed to reload config", zap.Error(err))
				return
			}
			a.applyConfig(newCfg)
		})
		if err != nil {
			logger.Log.Warn("config watcher disabled", zap.Error(err))
		}
	}

	path := a.services.source.LocalPath()
	if !a.Config.Survey.WatchSource || path == "" {
		return
	}
	err := filewatcher.Watch(ctx, path, filewatcher.DefaultDebounce, func() {
		if _, err := a.services.questions.Questions(ctx); err != nil {
			logger.Log.Warn("question source changed but could not be loaded", zap.Error(err))
		}
	})
	if err != nil {
		logger.Log.Warn("question source watcher disabled", zap.String("path", path), zap.Error(err))
	}
}

func (a *App) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 预热题库，失败不影响启动
	if err := a.Check(ctx); err != nil {
		logger.Log.Warn("question set not available at startup", zap.Error(err))
	}
	a.startBackgroundTasks(ctx)

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
}
