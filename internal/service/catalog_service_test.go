package service

import (
	"testing"

	"github.com/afslabs/assessor/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveSectionIDsFromConfig(t *testing.T) {
	env := newTestEnv(t)
	seedSection(t, env.db, "ETSI", 6)
	seedSection(t, env.db, "GSA", 6)
	env.cfg.ActiveSectionIDs = "GSA, ETSI"

	ids, err := env.catalogSvc.ActiveSectionIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"GSA", "ETSI"}, ids)
}

func TestActiveSectionIDsCatalogFallback(t *testing.T) {
	env := newTestEnv(t)
	seedSection(t, env.db, "ETSI", 6)
	seedSection(t, env.db, "GSA", 6)

	// Empty config at every tier falls back to the whole catalog.
	ids, err := env.catalogSvc.ActiveSectionIDs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ETSI", "GSA"}, ids)
}

func TestActiveSectionIDsBlankListMeansNoRestriction(t *testing.T) {
	env := newTestEnv(t)
	seedSection(t, env.db, "ETSI", 6)
	env.cfg.ActiveSectionIDs = " , ,"

	ids, err := env.catalogSvc.ActiveSectionIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"ETSI"}, ids)
}

func TestResolveAllowedQuestionsFiltersScope(t *testing.T) {
	env := newTestEnv(t)
	seedSection(t, env.db, "ETSI", 6)
	seedSection(t, env.db, "GSA", 6)
	env.cfg.ActiveSectionIDs = "ETSI"

	// Deactivate one member and add a non-binary question; neither may
	// participate.
	require.NoError(t, env.db.Model(&model.Question{}).
		Where("id = ?", "ETSI-A1-01F").
		Update("is_active", false).Error)
	require.NoError(t, env.db.Create(&model.Question{
		ID:         "ETSI-A1-SCALE",
		AreaID:     "ETSI-A1",
		Text:       "Four-level question",
		IsActive:   true,
		Level1Desc: "l1", Level2Desc: "l2", Level3Desc: "l3", Level4Desc: "l4",
	}).Error)

	allowed, err := env.catalogSvc.ResolveAllowedQuestions()
	require.NoError(t, err)

	assert.True(t, allowed.Contains("ETSI-A1-01A"))
	assert.False(t, allowed.Contains("ETSI-A1-01F"), "inactive question must be excluded")
	assert.False(t, allowed.Contains("ETSI-A1-SCALE"), "non-binary question must be excluded")
	assert.False(t, allowed.Contains("GSA-A1-01A"), "inactive section must be excluded")

	members := allowed.Groups["ETSI-A1-01"]
	assert.Equal(t, []string{"ETSI-A1-01A", "ETSI-A1-01B", "ETSI-A1-01C", "ETSI-A1-01D", "ETSI-A1-01E"}, members)
}

func TestLogicalGroupsIncludeSingletons(t *testing.T) {
	env := newTestEnv(t)
	seedSection(t, env.db, "ETSI", 6)
	// A binary question without the A-F suffix is its own logical group.
	require.NoError(t, env.db.Create(&model.Question{
		ID:         "ETSI-A1-STANDALONE",
		AreaID:     "ETSI-A1",
		Text:       "Standalone binary question",
		IsActive:   true,
		Level1Desc: "No", Level2Desc: "Yes",
	}).Error)

	allowed, err := env.catalogSvc.ResolveAllowedQuestions()
	require.NoError(t, err)

	groups := allowed.LogicalGroups()
	require.Len(t, groups, 2)
	assert.Len(t, groups["ETSI-A1-01"], 6)
	assert.Equal(t, []string{"ETSI-A1-STANDALONE"}, groups["ETSI-A1-STANDALONE"])
}

func TestGetCatalogShape(t *testing.T) {
	env := newTestEnv(t)
	seedSection(t, env.db, "ETSI", 6, 3)

	catalog, err := env.catalogSvc.GetCatalog("en")
	require.NoError(t, err)

	assert.Equal(t, "en", catalog.Language)
	assert.Equal(t, "No", catalog.BinaryLabels.Level1)
	assert.Equal(t, "Yes", catalog.BinaryLabels.Level2)
	require.Len(t, catalog.Sections, 1)
	require.Len(t, catalog.Sections[0].Areas, 2)

	q := catalog.Sections[0].Areas[0].Questions[0]
	assert.Equal(t, "ETSI-A1-01A", q.ID)
	assert.True(t, q.IsBinary)
	assert.Equal(t, "ETSI-A1-01", q.BaseID)
	assert.Equal(t, 1, q.BinarySubLevel)
}
