package repository

import (
	"github.com/afslabs/assessor/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResponseRepository interface {
	Upsert(response *model.Response) error
	FindByAssessment(assessmentID uint) ([]model.Response, error)
	FindByAssessmentAndQuestion(assessmentID uint, questionID string) (*model.Response, error)
	CountByAssessment(assessmentID uint) (int64, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

// Upsert inserts the response or, when a row already exists for the
// (assessment, question) pair, updates its score, notes and timestamp in a
// single statement. Riding on the unique index keeps concurrent submissions
// for the same question from racing a lookup-then-insert.
func (r *responseRepository) Upsert(response *model.Response) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "assessment_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "notes", "timestamp"}),
	}).Create(response).Error
}

func (r *responseRepository) FindByAssessment(assessmentID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Where("assessment_id = ?", assessmentID).Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepository) FindByAssessmentAndQuestion(assessmentID uint, questionID string) (*model.Response, error) {
	var response model.Response
	err := r.db.Where("assessment_id = ? AND question_id = ?", assessmentID, questionID).
		First(&response).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) CountByAssessment(assessmentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Response{}).
		Where("assessment_id = ?", assessmentID).
		Count(&count).Error
	return count, err
}
