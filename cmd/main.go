package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ndthien/vexam/config"
	"github.com/ndthien/vexam/database"
	"github.com/ndthien/vexam/internal/controller"
	"github.com/ndthien/vexam/internal/logger"
	"github.com/ndthien/vexam/internal/middleware"
	"github.com/ndthien/vexam/internal/model"
	"github.com/ndthien/vexam/internal/repository"
	"github.com/ndthien/vexam/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Exam Attempt Engine API
// @version 1.0
// @description Timed multi-skill exam sessions: content selection, skill progression, scoring and result review.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()
	middleware.InitMetrics()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			repository.NewRepositories,
			repository.NewAtomic,
		),

		fx.Provide(
			service.NewQuestionSelector,
			service.NewSkillProgression,
			service.NewExamSessionService,
			service.NewScoringService,
			service.NewResultService,
		),

		fx.Provide(
			controller.NewExamController,
		),

		fx.Invoke(MigrateAndSeed),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", middleware.PrometheusHandler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle through fx hooks.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	examCtrl *controller.ExamController,
) {
	apiGroup := router.Group("/api/v1")
	examCtrl.RegisterRoutes(apiGroup)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam engine server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// MigrateAndSeed migrates the schema and seeds the fixed skill catalog.
// Seeding uses FirstOrCreate so re-running it is a no-op.
func MigrateAndSeed(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Skill{},
		&model.Level{},
		&model.Question{},
		&model.SubQuestion{},
		&model.Answer{},
		&model.Exam{},
		&model.ExamSkillStatus{},
		&model.ExamQuestion{},
		&model.ExamAnswer{},
		&model.ExamSubmission{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	for _, skill := range model.DefaultSkills() {
		if err := db.Where("id = ?", skill.ID).FirstOrCreate(&skill).Error; err != nil {
			log.Error().Err(err).Str("skillID", skill.ID).Msg("Skill catalog seeding failed")
			return err
		}
	}

	log.Info().Msg("Database migration completed successfully.")
	return nil
}
