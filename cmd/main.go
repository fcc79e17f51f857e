package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quizzy/config"
	"github.com/lshigami/Quizzy/database"
	_ "github.com/lshigami/Quizzy/docs"
	"github.com/lshigami/Quizzy/internal/controller"
	"github.com/lshigami/Quizzy/internal/logger"
	"github.com/lshigami/Quizzy/internal/repository"
	"github.com/lshigami/Quizzy/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Quizzy API
// @version 1.0
// @description Multiple-choice quiz API: browse questions by category and difficulty, submit answers and get a scored review.
// @host localhost:5000
// @BasePath /api
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			NewStore,
			NewGinEngine,
		),

		fx.Provide(
			func(store *database.Store) repository.QuestionRepository {
				return store.Questions
			},
		),

		fx.Provide(
			service.NewQuestionService,
			service.NewScoreConverterService,
			service.NewScoringService,
			service.NewSeedService,
		),

		fx.Provide(controller.NewController),

		fx.Invoke(ConfigureLogger),
		fx.Invoke(SeedOnStart),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application did not stop cleanly")
	}
}

func ConfigureLogger(cfg *config.Config) {
	logger.Configure(cfg.AppEnv, cfg.LogLevel)
}

// NewStore opens the configured question store and closes it when the app stops.
func NewStore(lc fx.Lifecycle, cfg *config.Config) (*database.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Closing question store...")
			return store.Close(ctx)
		},
	})
	return store, nil
}

// SeedOnStart loads the default (or SEED_FILE) question set into an empty store.
func SeedOnStart(cfg *config.Config, seedSvc service.SeedService) error {
	if !cfg.Seed.OnStart {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summary, seeded, err := seedSvc.SeedIfEmpty(ctx, cfg.Seed.File)
	if err != nil {
		log.Error().Err(err).Msg("Seeding on start failed")
		return err
	}
	if seeded {
		log.Info().Int("inserted", summary.Inserted).Int("warnings", len(summary.Warnings)).Msg("Seeded empty question store")
	}
	return nil
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.CustomRecovery(controller.RecoveryHandler))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.Server.AllowedOrigins) == 0 || (len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	ctrl *controller.Controller,
) {
	ctrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}
