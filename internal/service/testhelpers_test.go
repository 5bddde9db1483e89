package service

import (
	"fmt"
	"testing"

	"github.com/afslabs/assessor/config"
	"github.com/afslabs/assessor/internal/i18n"
	"github.com/afslabs/assessor/internal/model"
	"github.com/afslabs/assessor/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	// An in-memory database exists per connection; pin the pool to one so
	// every query sees the same schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.Section{},
		&model.Area{},
		&model.Question{},
		&model.Assessment{},
		&model.Response{},
		&model.MaturityDefinition{},
		&model.MaturityProgression{},
	))
	return db
}

type testEnv struct {
	db             *gorm.DB
	cfg            *config.Config
	catalogRepo    repository.CatalogRepository
	assessmentRepo repository.AssessmentRepository
	responseRepo   repository.ResponseRepository
	definitionRepo repository.DefinitionRepository
	catalogSvc     CatalogService
	scoringSvc     ScoringService
	assessmentSvc  AssessmentService
	reportSvc      ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}
	translator := i18n.NewTranslator("testdata/missing_i18n.json")
	areaDetails := i18n.NewAreaDetails("testdata/missing_area_details.json")

	catalogRepo := repository.NewCatalogRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	definitionRepo := repository.NewDefinitionRepository(db)

	catalogSvc := NewCatalogService(catalogRepo, translator, cfg)
	scoringSvc := NewScoringService(catalogSvc, catalogRepo, assessmentRepo, responseRepo)
	assessmentSvc := NewAssessmentService(assessmentRepo, responseRepo, catalogRepo, catalogSvc, scoringSvc)
	reportSvc := NewReportService(assessmentRepo, responseRepo, catalogRepo, definitionRepo, catalogSvc, translator, areaDetails)

	return &testEnv{
		db:             db,
		cfg:            cfg,
		catalogRepo:    catalogRepo,
		assessmentRepo: assessmentRepo,
		responseRepo:   responseRepo,
		definitionRepo: definitionRepo,
		catalogSvc:     catalogSvc,
		scoringSvc:     scoringSvc,
		assessmentSvc:  assessmentSvc,
		reportSvc:      reportSvc,
	}
}

// seedSection creates a section with one area per entry in areaQuestions,
// where each entry is the number of grouped binary questions ("<area>-01A"
// onward) to create in that area.
func seedSection(t *testing.T, db *gorm.DB, sectionID string, areaQuestions ...int) {
	t.Helper()
	section := model.Section{ID: sectionID, Name: "Section " + sectionID}
	require.NoError(t, db.Create(&section).Error)

	for i, count := range areaQuestions {
		areaID := fmt.Sprintf("%s-A%d", sectionID, i+1)
		area := model.Area{ID: areaID, SectionID: sectionID, Name: "Area " + areaID}
		require.NoError(t, db.Create(&area).Error)
		for j := 0; j < count; j++ {
			q := model.Question{
				ID:           fmt.Sprintf("%s-01%c", areaID, rune('A'+j)),
				AreaID:       areaID,
				Text:         "Question " + areaID,
				IsActive:     true,
				DisplayOrder: j,
			}
			require.NoError(t, db.Create(&q).Error)
		}
	}
}

func seedAssessment(t *testing.T, db *gorm.DB, org string) *model.Assessment {
	t.Helper()
	assessment := model.Assessment{OrganizationName: org, Status: model.StatusInProgress}
	require.NoError(t, db.Create(&assessment).Error)
	return &assessment
}

func answer(t *testing.T, repo repository.ResponseRepository, assessmentID uint, questionID string, score int) {
	t.Helper()
	require.NoError(t, repo.Upsert(&model.Response{
		AssessmentID: assessmentID,
		QuestionID:   questionID,
		Score:        score,
	}))
}
