package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/afslabs/assessor/config"
	"github.com/afslabs/assessor/database"
	_ "github.com/afslabs/assessor/docs" // Swagger docs - auto-generated
	"github.com/afslabs/assessor/internal/controller"
	"github.com/afslabs/assessor/internal/i18n"
	"github.com/afslabs/assessor/internal/logger"
	"github.com/afslabs/assessor/internal/model"
	"github.com/afslabs/assessor/internal/repository"
	"github.com/afslabs/assessor/internal/service"
)

// @title Maturity Assessment API
// @version 2.0
// @description API for organizational maturity assessments: binary checklists, SSE-CMM scoring and maturity reports.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			NewTranslator,
			NewAreaDetails,
		),

		fx.Provide(
			repository.NewCatalogRepository,
			repository.NewAssessmentRepository,
			repository.NewResponseRepository,
			repository.NewDefinitionRepository,
		),

		fx.Provide(
			service.NewCatalogService,
			service.NewScoringService,
			service.NewAssessmentService,
			service.NewReportService,
			service.NewRecommendationService,
		),

		fx.Provide(
			controller.NewCatalogController,
			controller.NewAssessmentController,
			controller.NewReportController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
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

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func NewTranslator(cfg *config.Config) *i18n.Translator {
	return i18n.NewTranslator(cfg.QuestionsI18nFile)
}

func NewAreaDetails(cfg *config.Config) *i18n.AreaDetails {
	return i18n.NewAreaDetails(cfg.AreaDetailsFile)
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	catalogCtrl *controller.CatalogController,
	assessmentCtrl *controller.AssessmentController,
	reportCtrl *controller.ReportController,
) {
	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/sections", catalogCtrl.GetSections)

		assessments := apiV1.Group("/assessments")
		assessments.POST("", assessmentCtrl.CreateAssessment)
		assessments.GET("", assessmentCtrl.GetAllAssessments)
		assessments.GET("/:id", assessmentCtrl.GetAssessment)
		assessments.DELETE("/:id", assessmentCtrl.DeleteAssessment)
		assessments.POST("/:id/responses", assessmentCtrl.SubmitResponse)
		assessments.GET("/:id/progress", assessmentCtrl.GetProgress)
		assessments.GET("/:id/score", assessmentCtrl.GetScore)
		assessments.POST("/:id/finalize", assessmentCtrl.FinalizeAssessment)
		assessments.GET("/:id/report", reportCtrl.GetReport)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Maturity Assessment API server starting on port %s", cfg.Server.Port)
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
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Section{},
		&model.Area{},
		&model.Question{},
		&model.Assessment{},
		&model.Response{},
		&model.MaturityDefinition{},
		&model.MaturityProgression{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
