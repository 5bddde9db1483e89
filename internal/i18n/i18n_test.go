package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions_i18n.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleOverlay = `{
  "questions": {
    "GSA-GSC-01A": {"en": "Is there a governance policy?", "pt": "Existe uma política de governança?"},
    "GSA-GSC-01B": {"pt": "Somente em português"}
  },
  "level_descriptions": {
    "binary": {
      "en": {"level_1": "No", "level_2": "Yes"},
      "pt": {"level_1": "Não", "level_2": "Sim"}
    }
  }
}`

func TestQuestionTextFallbackOrdering(t *testing.T) {
	tr := NewTranslator(writeOverlay(t, sampleOverlay))

	text, ok := tr.QuestionText("GSA-GSC-01A", "en")
	require.True(t, ok)
	assert.Equal(t, "Is there a governance policy?", text)

	text, ok = tr.QuestionText("GSA-GSC-01A", "pt")
	require.True(t, ok)
	assert.Equal(t, "Existe uma política de governança?", text)

	// Unknown language falls back to en.
	text, ok = tr.QuestionText("GSA-GSC-01A", "fr")
	require.True(t, ok)
	assert.Equal(t, "Is there a governance policy?", text)

	// No en entry: falls through to pt.
	text, ok = tr.QuestionText("GSA-GSC-01B", "en")
	require.True(t, ok)
	assert.Equal(t, "Somente em português", text)

	// Unknown question: caller keeps the database text.
	_, ok = tr.QuestionText("UNKNOWN-01A", "en")
	assert.False(t, ok)
}

func TestBinaryLabels(t *testing.T) {
	tr := NewTranslator(writeOverlay(t, sampleOverlay))

	no, yes := tr.BinaryLabels("pt")
	assert.Equal(t, "Não", no)
	assert.Equal(t, "Sim", yes)

	no, yes = tr.BinaryLabels("fr")
	assert.Equal(t, "No", no)
	assert.Equal(t, "Yes", yes)
}

func TestMissingFileServesEmptyOverlay(t *testing.T) {
	tr := NewTranslator(filepath.Join(t.TempDir(), "does_not_exist.json"))

	_, ok := tr.QuestionText("GSA-GSC-01A", "en")
	assert.False(t, ok)

	no, yes := tr.BinaryLabels("en")
	assert.Equal(t, "No", no)
	assert.Equal(t, "Yes", yes)
}

func TestInvalidateForcesReload(t *testing.T) {
	path := writeOverlay(t, sampleOverlay)
	tr := NewTranslator(path)

	_, ok := tr.QuestionText("GSA-GSC-01A", "en")
	require.True(t, ok)

	// Rewrite the file; mtime granularity can hide the change, so Invalidate
	// must force the reload regardless.
	require.NoError(t, os.WriteFile(path, []byte(`{"questions": {}}`), 0o644))
	tr.Invalidate()

	_, ok = tr.QuestionText("GSA-GSC-01A", "en")
	assert.False(t, ok)
}

func TestMalformedFileKeepsPreviousOverlay(t *testing.T) {
	path := writeOverlay(t, `{not json`)
	tr := NewTranslator(path)

	_, ok := tr.QuestionText("GSA-GSC-01A", "en")
	assert.False(t, ok)
}
