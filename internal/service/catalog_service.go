package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/afslabs/assessor/config"
	"github.com/afslabs/assessor/internal/dto"
	"github.com/afslabs/assessor/internal/i18n"
	"github.com/afslabs/assessor/internal/repository"
	"github.com/rs/zerolog/log"
)

// AllowedQuestions is the resolver output: the set of question IDs that
// participate in scoring (active, binary, inside an active section) and the
// logical grouping of suffixed IDs under their base ID.
type AllowedQuestions struct {
	IDs    map[string]struct{}
	Groups map[string][]string // base ID -> sorted member IDs
}

// Contains reports whether questionID is in scope for scoring.
func (a *AllowedQuestions) Contains(questionID string) bool {
	_, ok := a.IDs[questionID]
	return ok
}

// LogicalGroups collapses the allowed set to logical questions: each suffixed
// group is one entry under its base ID, every non-suffixed ID is its own
// group of one.
func (a *AllowedQuestions) LogicalGroups() map[string][]string {
	groups := make(map[string][]string, len(a.Groups))
	grouped := make(map[string]struct{})
	for base, members := range a.Groups {
		groups[base] = members
		for _, id := range members {
			grouped[id] = struct{}{}
		}
	}
	for id := range a.IDs {
		if _, ok := grouped[id]; !ok {
			groups[id] = []string{id}
		}
	}
	return groups
}

// CatalogService exposes the question catalog and resolves the active-section
// configuration into the allowed-question set every scoring path consumes.
type CatalogService interface {
	ActiveSectionIDs() ([]string, error)
	ResolveAllowedQuestions() (*AllowedQuestions, error)
	GetCatalog(lang string) (*dto.CatalogDTO, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
	translator  *i18n.Translator
	cfg         *config.Config
}

func NewCatalogService(catalogRepo repository.CatalogRepository, translator *i18n.Translator, cfg *config.Config) CatalogService {
	return &catalogService{catalogRepo: catalogRepo, translator: translator, cfg: cfg}
}

// parseSectionList splits a comma-separated section ID list, dropping blanks.
func parseSectionList(value string) []string {
	var ids []string
	for _, part := range strings.Split(value, ",") {
		if s := strings.TrimSpace(part); s != "" {
			ids = append(ids, s)
		}
	}
	return ids
}

// ActiveSectionIDs resolves the active-section configuration: the explicit
// comma-separated list from config (viper reads the same key from the .env
// file and the process environment), else every section in the catalog by
// display order. An empty result at every tier means "no restriction".
func (s *catalogService) ActiveSectionIDs() ([]string, error) {
	if ids := parseSectionList(s.cfg.ActiveSectionIDs); len(ids) > 0 {
		return ids, nil
	}
	sections, err := s.catalogRepo.FindSections(nil)
	if err != nil {
		return nil, fmt.Errorf("error loading sections for active-section fallback: %w", err)
	}
	ids := make([]string, 0, len(sections))
	for _, section := range sections {
		ids = append(ids, section.ID)
	}
	return ids, nil
}

// ResolveAllowedQuestions walks the active catalog once and collects every
// active binary question, grouping suffixed IDs under their base ID.
func (s *catalogService) ResolveAllowedQuestions() (*AllowedQuestions, error) {
	activeIDs, err := s.ActiveSectionIDs()
	if err != nil {
		return nil, err
	}
	sections, err := s.catalogRepo.FindSectionsWithQuestions(activeIDs)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog for allowed questions: %w", err)
	}

	allowed := &AllowedQuestions{
		IDs:    make(map[string]struct{}),
		Groups: make(map[string][]string),
	}
	for _, section := range sections {
		for _, area := range section.Areas {
			for _, q := range area.Questions {
				if !q.IsActive || !q.IsBinary() {
					continue
				}
				allowed.IDs[q.ID] = struct{}{}
				if base := q.BaseID(); base != q.ID {
					allowed.Groups[base] = append(allowed.Groups[base], q.ID)
				}
			}
		}
	}
	for base := range allowed.Groups {
		sort.Strings(allowed.Groups[base])
	}
	return allowed, nil
}

// GetCatalog returns the full active catalog with the translation overlay
// applied for lang.
func (s *catalogService) GetCatalog(lang string) (*dto.CatalogDTO, error) {
	if lang == "" {
		lang = i18n.DefaultLang
	}
	activeIDs, err := s.ActiveSectionIDs()
	if err != nil {
		return nil, err
	}
	sections, err := s.catalogRepo.FindSectionsWithQuestions(activeIDs)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load catalog sections")
		return nil, fmt.Errorf("error fetching catalog: %w", err)
	}

	out := &dto.CatalogDTO{Language: lang}
	out.BinaryLabels.Level1, out.BinaryLabels.Level2 = s.translator.BinaryLabels(lang)

	for _, section := range sections {
		secDTO := dto.SectionDTO{
			ID:           section.ID,
			Name:         section.Name,
			Description:  section.Description,
			DisplayOrder: section.DisplayOrder,
			Color:        section.Color,
			Icon:         section.Icon,
		}
		for _, area := range section.Areas {
			areaDTO := dto.AreaDTO{
				ID:           area.ID,
				SectionID:    area.SectionID,
				Name:         area.Name,
				Description:  area.Description,
				DisplayOrder: area.DisplayOrder,
			}
			for _, q := range area.Questions {
				text := q.Text
				if translated, ok := s.translator.QuestionText(q.ID, lang); ok {
					text = translated
				}
				areaDTO.Questions = append(areaDTO.Questions, dto.QuestionDTO{
					ID:             q.ID,
					AreaID:         q.AreaID,
					Text:           text,
					DisplayOrder:   q.DisplayOrder,
					IsActive:       q.IsActive,
					IsBinary:       q.IsBinary(),
					BaseID:         q.BaseID(),
					BinarySubLevel: q.BinarySubLevel(),
					Level1Desc:     q.Level1Desc,
					Level2Desc:     q.Level2Desc,
					Level3Desc:     q.Level3Desc,
					Level4Desc:     q.Level4Desc,
				})
			}
			secDTO.Areas = append(secDTO.Areas, areaDTO)
		}
		out.Sections = append(out.Sections, secDTO)
	}
	return out, nil
}
