package bootstrap

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/attendly/attendly/internal/app/controllers"
	appRoutes "github.com/attendly/attendly/internal/app/routes"
	appServices "github.com/attendly/attendly/internal/app/services"
	"github.com/attendly/attendly/internal/app/store"
	"github.com/attendly/attendly/internal/config"
	appMiddleware "github.com/attendly/attendly/internal/middleware"
	pkgAuth "github.com/attendly/attendly/internal/pkg/auth"
	"github.com/attendly/attendly/internal/pkg/genai"
	"github.com/attendly/attendly/internal/pkg/helpers"
	"github.com/attendly/attendly/internal/pkg/logger"
	appValidation "github.com/attendly/attendly/internal/pkg/validation"
	"github.com/attendly/attendly/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store                *store.Store
	AuthService          appServices.AuthService
	ScopeService         appServices.ScopeService
	DashboardService     appServices.DashboardService
	AttendanceService    appServices.AttendanceService
	UserService          appServices.UserService
	InsightService       appServices.InsightService
	AuthController       *appControllers.AuthController
	DashboardController  *appControllers.DashboardController
	UserController       *appControllers.UserController
	AttendanceController *appControllers.AttendanceController
	InsightController    *appControllers.InsightController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore seeds the in-memory session store with the mock dataset.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*store.Store, error) {
	opts := seed.Options{
		Seed: cfg.Seed.Seed,
		Days: cfg.Seed.Days,
	}
	if cfg.Seed.Today != "" {
		today, err := time.Parse("2006-01-02", cfg.Seed.Today)
		if err != nil {
			lgr.Error().Err(err).Str("today", cfg.Seed.Today).Msg("Invalid seed date")
			return nil, err
		}
		opts.Today = today
	}

	return seed.CreateDefaultData(opts, lgr), nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, st *store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Store: st, Logger: lgr}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	generator := genai.New(cfg.GenAI.BaseURL, cfg.GenAI.APIKey, cfg.GenAI.Model, cfg.GenAI.APIKey == "")
	if cfg.GenAI.APIKey == "" {
		lgr.Warn().Msg("GenAI API key not configured, insight endpoints will answer with a fallback message")
	}

	deps.AuthService = appServices.NewAuthService(st, deps.JWTService, lgr)
	deps.ScopeService = appServices.NewScopeService(st)
	deps.DashboardService = appServices.NewDashboardService(st)
	deps.AttendanceService = appServices.NewAttendanceService(st)
	deps.UserService = appServices.NewUserService(st)
	deps.InsightService = appServices.NewInsightService(st, generator, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService, deps.ScopeService, lgr)
	deps.InsightController = appControllers.NewInsightController(deps.InsightService, deps.AuthService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	// Install the custom binding validators (attdate, attrole, attstatus)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := appValidation.Register(v); err != nil {
			lgr.Error().Err(err).Msg("Failed to register custom validators")
		}
	}

	router := gin.Default()
	router.Use(appMiddleware.Metrics())

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.DashboardController,
		deps.UserController,
		deps.AttendanceController,
		deps.InsightController,
		deps.AuthMiddleware,
	)

	return router
}
