package jobspec

import (
	"strings"

	"github.com/Abraxas-365/sift/pkg/errx"
)

// ============================================================================
// Request DTOs
// ============================================================================

// CreateSpecRequest - Create a new job spec (starts as draft)
type CreateSpecRequest struct {
	Title           string   `json:"title" validate:"required"`
	Company         string   `json:"company,omitempty"`
	Description     string   `json:"description,omitempty"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	Education       string   `json:"education,omitempty"`
	Location        string   `json:"location,omitempty"`
}

func (r CreateSpecRequest) Validate() *errx.Error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrInvalidSpecData().WithDetail("field", "title")
	}
	if r.ExperienceLevel != "" && !validExperienceLevel(r.ExperienceLevel) {
		return ErrInvalidSpecData().
			WithDetail("field", "experience_level").
			WithDetail("allowed", []string{"entry", "junior", "mid", "intermediate", "senior", "lead"})
	}
	return nil
}

// UpdateSpecRequest - Partial update of a draft or published spec
type UpdateSpecRequest struct {
	Title           *string   `json:"title,omitempty"`
	Company         *string   `json:"company,omitempty"`
	Description     *string   `json:"description,omitempty"`
	RequiredSkills  *[]string `json:"required_skills,omitempty"`
	ExperienceLevel *string   `json:"experience_level,omitempty"`
	Education       *string   `json:"education,omitempty"`
	Location        *string   `json:"location,omitempty"`
}

func (r UpdateSpecRequest) Validate() *errx.Error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return ErrInvalidSpecData().WithDetail("field", "title")
	}
	if r.ExperienceLevel != nil && *r.ExperienceLevel != "" && !validExperienceLevel(*r.ExperienceLevel) {
		return ErrInvalidSpecData().WithDetail("field", "experience_level")
	}
	return nil
}

func validExperienceLevel(level string) bool {
	switch strings.ToLower(level) {
	case "entry", "junior", "mid", "intermediate", "senior", "lead":
		return true
	}
	return false
}
