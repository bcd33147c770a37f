package services

import (
	"github.com/campushub/registra/internal/app/models"
)

// ClassificationMode selects which measure a classification reads.
type ClassificationMode string

// Supported classification modes.
const (
	ClassifyByGPA     ClassificationMode = "gpa"
	ClassifyByCredits ClassificationMode = "credits"
)

// ClassificationUnknown is returned for modes with no registered strategy.
const ClassificationUnknown = "Unknown"

// ClassificationStrategy maps one measure of a student to a label.
type ClassificationStrategy interface {
	Classify(student *models.Student) string
}

// gpaClassification buckets students by grade point average.
type gpaClassification struct{}

func (gpaClassification) Classify(student *models.Student) string {
	switch gpa := student.GPA; {
	case gpa >= 3.7:
		return "Outstanding"
	case gpa >= 3.2:
		return "Good"
	case gpa >= 2.5:
		return "Fair"
	case gpa >= 2.0:
		return "Average"
	default:
		return "Weak"
	}
}

// creditClassification buckets students by accumulated credits.
type creditClassification struct{}

func (creditClassification) Classify(student *models.Student) string {
	switch credits := student.TotalCredits; {
	case credits >= 100:
		return "Completed >100 credits"
	case credits >= 80:
		return "Good progress"
	case credits >= 60:
		return "Needs to accelerate"
	default:
		return "New enrollee"
	}
}

// ClassificationService classifies students through a fixed strategy table.
type ClassificationService struct {
	strategies map[ClassificationMode]ClassificationStrategy
}

// NewClassificationService creates the service with both built-in strategies.
func NewClassificationService() *ClassificationService {
	return &ClassificationService{
		strategies: map[ClassificationMode]ClassificationStrategy{
			ClassifyByGPA:     gpaClassification{},
			ClassifyByCredits: creditClassification{},
		},
	}
}

// Classify returns the label for a student under the given mode.
// Unrecognized modes yield ClassificationUnknown rather than an error so
// callers can render the label directly.
func (s *ClassificationService) Classify(student *models.Student, mode ClassificationMode) string {
	strategy, ok := s.strategies[mode]
	if !ok {
		return ClassificationUnknown
	}
	return strategy.Classify(student)
}
