package i18n

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// AreaDomainDetail is the risk context for one area: why the area matters and
// where the supporting frameworks discuss it.
type AreaDomainDetail struct {
	AreaID          string
	RiskDescription string
	MitreReferences []string
	NistReferences  []string
}

// rawAreaDetail preserves bilingual values as raw JSON until a language is
// requested. A value may be a plain string/list (legacy format) or an object
// keyed "en"/"pt".
type rawAreaDetail struct {
	RiskDescription json.RawMessage            `json:"risk_description"`
	References      map[string]json.RawMessage `json:"references"`
}

// AreaDetails serves per-area risk descriptions and MITRE/NIST references
// from a JSON file keyed by area ID, reloading when the file's modification
// time changes. An absent file means no cards, the same way the question
// overlay degrades.
type AreaDetails struct {
	path string

	mu      sync.RWMutex
	entries map[string]rawAreaDetail
	mtime   time.Time
	loaded  bool
}

func NewAreaDetails(path string) *AreaDetails {
	return &AreaDetails{path: path}
}

func (d *AreaDetails) ensureLoaded() {
	info, err := os.Stat(d.path)
	if err != nil {
		d.mu.Lock()
		if !d.loaded {
			d.entries = map[string]rawAreaDetail{}
			d.loaded = true
		}
		d.mu.Unlock()
		return
	}

	d.mu.RLock()
	fresh := d.loaded && info.ModTime().Equal(d.mtime)
	d.mu.RUnlock()
	if fresh {
		return
	}

	data, err := os.ReadFile(d.path)
	if err != nil {
		log.Warn().Err(err).Str("path", d.path).Msg("Failed to read area details file")
		return
	}
	var parsed map[string]rawAreaDetail
	if err := json.Unmarshal(data, &parsed); err != nil {
		log.Warn().Err(err).Str("path", d.path).Msg("Failed to parse area details file")
		return
	}

	d.mu.Lock()
	d.entries = parsed
	d.mtime = info.ModTime()
	d.loaded = true
	d.mu.Unlock()
	log.Debug().Int("areas", len(parsed)).Msg("Area domain details loaded")
}

// resolveLangString resolves a raw value that is either a plain JSON string
// or an object keyed by language, falling back lang -> en -> pt.
func resolveLangString(raw json.RawMessage, lang string) string {
	if len(raw) == 0 {
		return ""
	}
	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return plain
	}
	var bilingual map[string]string
	if err := json.Unmarshal(raw, &bilingual); err != nil {
		return ""
	}
	for _, l := range []string{lang, "en", "pt"} {
		if v := bilingual[l]; v != "" {
			return v
		}
	}
	return ""
}

// resolveLangList resolves a raw value that is either a plain JSON string
// list or an object of per-language lists, with the same fallback chain.
func resolveLangList(raw json.RawMessage, lang string) []string {
	if len(raw) == 0 {
		return nil
	}
	var plain []string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return plain
	}
	var bilingual map[string][]string
	if err := json.Unmarshal(raw, &bilingual); err != nil {
		return nil
	}
	for _, l := range []string{lang, "en", "pt"} {
		if v, ok := bilingual[l]; ok && len(v) > 0 {
			return v
		}
	}
	return nil
}

// Detail returns the resolved risk card for areaID in lang. The second return
// is false when the area has no entry.
func (d *AreaDetails) Detail(areaID, lang string) (*AreaDomainDetail, bool) {
	d.ensureLoaded()
	d.mu.RLock()
	raw, ok := d.entries[areaID]
	d.mu.RUnlock()
	if !ok {
		return nil, false
	}

	return &AreaDomainDetail{
		AreaID:          areaID,
		RiskDescription: resolveLangString(raw.RiskDescription, lang),
		MitreReferences: resolveLangList(raw.References["mitre"], lang),
		NistReferences:  resolveLangList(raw.References["nist"], lang),
	}, true
}

// Invalidate forces a reload on next access.
func (d *AreaDetails) Invalidate() {
	d.mu.Lock()
	d.loaded = false
	d.mtime = time.Time{}
	d.mu.Unlock()
}
