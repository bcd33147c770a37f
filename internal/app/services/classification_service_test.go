package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushub/registra/internal/app/models"
)

func TestClassifyByGPA(t *testing.T) {
	svc := NewClassificationService()

	tests := []struct {
		gpa      float64
		expected string
	}{
		{4.0, "Outstanding"},
		{3.7, "Outstanding"},
		{3.69, "Good"},
		{3.2, "Good"},
		{3.19, "Fair"},
		{2.5, "Fair"},
		{2.49, "Average"},
		{2.0, "Average"},
		{1.99, "Weak"},
		{0, "Weak"},
	}

	for _, tt := range tests {
		student := &models.Student{GPA: tt.gpa}
		assert.Equal(t, tt.expected, svc.Classify(student, ClassifyByGPA), "gpa %.2f", tt.gpa)
	}
}

func TestClassifyByCredits(t *testing.T) {
	svc := NewClassificationService()

	tests := []struct {
		credits  int
		expected string
	}{
		{140, "Completed >100 credits"},
		{100, "Completed >100 credits"},
		{99, "Good progress"},
		{80, "Good progress"},
		{79, "Needs to accelerate"},
		{60, "Needs to accelerate"},
		{59, "New enrollee"},
		{0, "New enrollee"},
	}

	for _, tt := range tests {
		student := &models.Student{TotalCredits: tt.credits}
		assert.Equal(t, tt.expected, svc.Classify(student, ClassifyByCredits), "credits %d", tt.credits)
	}
}

func TestClassifyUnknownMode(t *testing.T) {
	svc := NewClassificationService()
	student := &models.Student{GPA: 3.9, TotalCredits: 110}

	assert.Equal(t, ClassificationUnknown, svc.Classify(student, ClassificationMode("attendance")))
}
