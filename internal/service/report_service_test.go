package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/afslabs/assessor/internal/i18n"
	"github.com/afslabs/assessor/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finalizedAssessment(t *testing.T, env *testEnv) *model.Assessment {
	t.Helper()
	assessment := seedAssessment(t, env.db, "Acme")
	// ETSI all Yes, GSA one Yes five No: a wide spread for insight checks.
	for _, suffix := range []string{"A", "B", "C", "D", "E", "F"} {
		answer(t, env.responseRepo, assessment.ID, "ETSI-A1-01"+suffix, model.ScoreYes)
	}
	answer(t, env.responseRepo, assessment.ID, "GSA-A1-01A", model.ScoreYes)
	for _, suffix := range []string{"B", "C", "D", "E", "F"} {
		answer(t, env.responseRepo, assessment.ID, "GSA-A1-01"+suffix, model.ScoreNo)
	}
	_, err := env.assessmentSvc.Finalize(assessment.ID, false)
	require.NoError(t, err)
	return assessment
}

func TestBuildReportRequiresFinalized(t *testing.T) {
	env := newTestEnv(t)
	seedSection(t, env.db, "ETSI", 6)
	assessment := seedAssessment(t, env.db, "Acme")

	_, err := env.reportSvc.BuildReport(assessment.ID, "en")
	assert.ErrorIs(t, err, ErrReportUnavailable)
}

func TestBuildReportBreakdownAndInsights(t *testing.T) {
	env := newTestEnv(t)
	seedSection(t, env.db, "ETSI", 6)
	seedSection(t, env.db, "GSA", 6)
	assessment := finalizedAssessment(t, env)

	report, err := env.reportSvc.BuildReport(assessment.ID, "en")
	require.NoError(t, err)

	assert.Equal(t, "Acme", report.OrganizationName)
	require.Len(t, report.SectionScores, 2)

	byID := map[string]float64{}
	for _, sec := range report.SectionScores {
		byID[sec.ID] = sec.Percentage
		assert.NotEmpty(t, sec.Color)
	}
	assert.Equal(t, 1.0, byID["ETSI"])
	assert.InDelta(t, 1.0/6.0, byID["GSA"], 0.001)

	// 100% vs ~17%: strongest, priority and a variance warning.
	require.Len(t, report.Insights, 3)
	assert.Equal(t, "strength", report.Insights[0].Type)
	assert.Contains(t, report.Insights[0].Description, "Section ETSI")
	assert.Equal(t, "priority", report.Insights[1].Type)
	assert.Contains(t, report.Insights[1].Description, "Section GSA")
	assert.Equal(t, "warning", report.Insights[2].Type)

	require.NotEmpty(t, report.PriorityAreas)
	assert.Equal(t, 1, report.PriorityAreas[0].Rank)
	assert.Equal(t, "Section GSA", report.PriorityAreas[0].Name)
}

func TestBuildReportMaturityDistribution(t *testing.T) {
	env := newTestEnv(t)
	seedSection(t, env.db, "ETSI", 6)
	seedSection(t, env.db, "GSA", 6)
	assessment := finalizedAssessment(t, env)

	report, err := env.reportSvc.BuildReport(assessment.ID, "en")
	require.NoError(t, err)

	dist := report.ChartData.MaturityDistribution
	require.Len(t, dist, 5)
	assert.Equal(t, 1, dist["Optimized"]) // ETSI area at 100%
	assert.Equal(t, 1, dist["Informal"])  // GSA area at ~17%
	assert.Equal(t, 0, dist["Systematic"])
	assert.Len(t, report.ChartData.AreaComparison, 2)
}

func TestBuildReportRoadmaps(t *testing.T) {
	env := newTestEnv(t)
	seedSection(t, env.db, "ETSI", 6)
	seedSection(t, env.db, "GSA", 6)

	require.NoError(t, env.db.Create(&model.MaturityDefinition{
		EntityType:    model.EntityArea,
		EntityID:      "GSA-A1",
		MaturityLevel: 1,
		Title:         "Informal governance",
		Summary:       "Governance practices are ad hoc.",
	}).Error)
	require.NoError(t, env.db.Create(&model.MaturityProgression{
		AreaID:      "GSA-A1",
		TargetLevel: 2,
		ActionItems: "Define a governance charter.",
	}).Error)

	assessment := finalizedAssessment(t, env)
	report, err := env.reportSvc.BuildReport(assessment.ID, "en")
	require.NoError(t, err)

	roadmap, ok := report.AreaRoadmaps["GSA-A1"]
	require.True(t, ok)
	assert.Equal(t, 1, roadmap.CurrentLevel)
	assert.Equal(t, "Informal", roadmap.CurrentLevelName)
	assert.Len(t, roadmap.Strengths, 1)
	assert.Len(t, roadmap.Gaps, 5)
	require.NotNil(t, roadmap.LevelCard)
	assert.Equal(t, "Informal governance", roadmap.LevelCard.Title)
	require.Len(t, roadmap.Progressions, 1)
	assert.Equal(t, 2, roadmap.Progressions[0].TargetLevel)

	// The fully confirmed area has no gaps and no next level to reach.
	etsi := report.AreaRoadmaps["ETSI-A1"]
	assert.Empty(t, etsi.Gaps)
	assert.Len(t, etsi.Strengths, 6)
	assert.Equal(t, 5, etsi.CurrentLevel)
}

func TestBuildReportRoadmapDomainDetails(t *testing.T) {
	env := newTestEnv(t)
	seedSection(t, env.db, "ETSI", 6)
	seedSection(t, env.db, "GSA", 6)

	detailsPath := filepath.Join(t.TempDir(), "area_domain_details.json")
	require.NoError(t, os.WriteFile(detailsPath, []byte(`{
	  "GSA-A1": {
	    "risk_description": {
	      "en": "Weak governance exposes regulatory risk.",
	      "pt": "Governança fraca expõe risco regulatório."
	    },
	    "references": {
	      "mitre": ["ATLAS: Governance patterns"],
	      "nist": {"en": ["AI RMF: Govern"]}
	    }
	  }
	}`), 0o644))
	translator := i18n.NewTranslator("testdata/missing_i18n.json")
	areaDetails := i18n.NewAreaDetails(detailsPath)
	reportSvc := NewReportService(env.assessmentRepo, env.responseRepo, env.catalogRepo,
		env.definitionRepo, env.catalogSvc, translator, areaDetails)

	assessment := finalizedAssessment(t, env)

	report, err := reportSvc.BuildReport(assessment.ID, "pt")
	require.NoError(t, err)

	roadmap, ok := report.AreaRoadmaps["GSA-A1"]
	require.True(t, ok)
	require.NotNil(t, roadmap.DomainDetail)
	assert.Equal(t, "Governança fraca expõe risco regulatório.", roadmap.DomainDetail.RiskDescription)
	assert.Equal(t, []string{"ATLAS: Governance patterns"}, roadmap.DomainDetail.References.Mitre)
	assert.Equal(t, []string{"AI RMF: Govern"}, roadmap.DomainDetail.References.Nist)

	// Areas without an entry carry no card.
	assert.Nil(t, report.AreaRoadmaps["ETSI-A1"].DomainDetail)
}
