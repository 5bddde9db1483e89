package service

import "errors"

// Sentinel errors controllers translate into HTTP statuses.
var (
	// ErrAssessmentLocked is returned when a write is attempted against a
	// COMPLETED or LOCKED assessment.
	ErrAssessmentLocked = errors.New("assessment is finalized and no longer accepts responses")

	// ErrQuestionNotAllowed is returned for a response whose question is
	// inactive, non-binary, or outside the active sections.
	ErrQuestionNotAllowed = errors.New("question is not part of the active assessment scope")

	// ErrIncompleteAssessment is returned when finalization is requested below
	// the 80% logical completion threshold without force_complete.
	ErrIncompleteAssessment = errors.New("assessment has not reached the 80% completion threshold")

	// ErrReportUnavailable is returned when a report is requested for an
	// assessment that has not been finalized.
	ErrReportUnavailable = errors.New("assessment has no finalized results to report on")
)
