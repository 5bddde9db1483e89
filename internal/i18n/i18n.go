// Package i18n overlays translated question text at render time. The
// database stores the Portuguese originals; a JSON file supplies English (or
// any supported language) keyed by question ID. Lookups fall back en -> pt.
package i18n

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultLang = "en"

type overlayFile struct {
	Questions         map[string]map[string]string            `json:"questions"`
	LevelDescriptions map[string]map[string]map[string]string `json:"level_descriptions"`
}

// Translator loads the overlay file lazily and reloads it when its
// modification time changes, so translation edits land without a restart.
type Translator struct {
	path string

	mu         sync.RWMutex
	questions  map[string]map[string]string
	levelDescs map[string]map[string]map[string]string
	mtime      time.Time
	loaded     bool
}

func NewTranslator(path string) *Translator {
	return &Translator{path: path}
}

func (t *Translator) ensureLoaded() {
	info, err := os.Stat(t.path)
	if err != nil {
		// Missing file: serve the empty overlay, DB text wins.
		t.mu.Lock()
		if !t.loaded {
			t.questions = map[string]map[string]string{}
			t.levelDescs = map[string]map[string]map[string]string{}
			t.loaded = true
		}
		t.mu.Unlock()
		return
	}

	t.mu.RLock()
	fresh := t.loaded && info.ModTime().Equal(t.mtime)
	t.mu.RUnlock()
	if fresh {
		return
	}

	data, err := os.ReadFile(t.path)
	if err != nil {
		log.Warn().Err(err).Str("path", t.path).Msg("Failed to read questions i18n file")
		return
	}
	var parsed overlayFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		log.Warn().Err(err).Str("path", t.path).Msg("Failed to parse questions i18n file")
		return
	}

	t.mu.Lock()
	t.questions = parsed.Questions
	t.levelDescs = parsed.LevelDescriptions
	t.mtime = info.ModTime()
	t.loaded = true
	t.mu.Unlock()
	log.Debug().Int("questions", len(parsed.Questions)).Msg("Question translations loaded")
}

// QuestionText returns the translated text for questionID in lang, falling
// back en -> pt. The second return is false when no translation exists and
// the caller should use the database value.
func (t *Translator) QuestionText(questionID, lang string) (string, bool) {
	t.ensureLoaded()
	t.mu.RLock()
	defer t.mu.RUnlock()

	entry, ok := t.questions[questionID]
	if !ok {
		return "", false
	}
	for _, l := range []string{lang, "en", "pt"} {
		if text := entry[l]; text != "" {
			return text, true
		}
	}
	return "", false
}

// BinaryLabels returns the localized No/Yes labels for binary questions.
func (t *Translator) BinaryLabels(lang string) (level1, level2 string) {
	t.ensureLoaded()
	t.mu.RLock()
	defer t.mu.RUnlock()

	binary := t.levelDescs["binary"]
	for _, l := range []string{lang, "en"} {
		if descs, ok := binary[l]; ok {
			if descs["level_1"] != "" && descs["level_2"] != "" {
				return descs["level_1"], descs["level_2"]
			}
		}
	}
	return "No", "Yes"
}

// Invalidate forces a reload on next access.
func (t *Translator) Invalidate() {
	t.mu.Lock()
	t.loaded = false
	t.mtime = time.Time{}
	t.mu.Unlock()
}
