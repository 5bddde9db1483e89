package repository

import (
	"errors"

	"github.com/afslabs/assessor/internal/model"
	"gorm.io/gorm"
)

// DefinitionRepository serves the report-enrichment tables: maturity-level
// definition cards and per-area progression roadmaps. These tables are
// optional seed data, so a missing row is returned as nil rather than an
// error.
type DefinitionRepository interface {
	FindAreaDefinition(areaID string, level int) (*model.MaturityDefinition, error)
	FindProgressionsForArea(areaID string) ([]model.MaturityProgression, error)
}

type definitionRepository struct {
	db *gorm.DB
}

func NewDefinitionRepository(db *gorm.DB) DefinitionRepository {
	return &definitionRepository{db: db}
}

func (r *definitionRepository) FindAreaDefinition(areaID string, level int) (*model.MaturityDefinition, error) {
	var def model.MaturityDefinition
	err := r.db.Where(
		"entity_type = ? AND entity_id = ? AND maturity_level = ?",
		model.EntityArea, areaID, level,
	).First(&def).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &def, nil
}

func (r *definitionRepository) FindProgressionsForArea(areaID string) ([]model.MaturityProgression, error) {
	var progressions []model.MaturityProgression
	err := r.db.Where("area_id = ?", areaID).
		Order("target_level ASC").
		Find(&progressions).Error
	if err != nil {
		return nil, err
	}
	return progressions, nil
}
