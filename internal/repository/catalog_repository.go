package repository

import (
	"github.com/afslabs/assessor/internal/model"
	"gorm.io/gorm"
)

// CatalogRepository reads the section/area/question catalog. Scoring paths
// restrict results to an explicit active-section ID list; an empty list means
// no restriction.
type CatalogRepository interface {
	FindSections(activeIDs []string) ([]model.Section, error)
	FindSectionsWithQuestions(activeIDs []string) ([]model.Section, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) sectionsQuery(activeIDs []string) *gorm.DB {
	q := r.db.Model(&model.Section{})
	if len(activeIDs) > 0 {
		q = q.Where("id IN ?", activeIDs)
	}
	return q.Order("display_order ASC")
}

func (r *catalogRepository) FindSections(activeIDs []string) ([]model.Section, error) {
	var sections []model.Section
	if err := r.sectionsQuery(activeIDs).Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *catalogRepository) FindSectionsWithQuestions(activeIDs []string) ([]model.Section, error) {
	var sections []model.Section
	err := r.sectionsQuery(activeIDs).
		Preload("Areas", func(db *gorm.DB) *gorm.DB {
			return db.Order("areas.display_order ASC")
		}).
		Preload("Areas.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.display_order ASC")
		}).
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}
