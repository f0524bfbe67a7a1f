package profile

import (
	"strings"

	"github.com/Abraxas-365/sift/pkg/errx"
)

// ============================================================================
// Request DTOs
// ============================================================================

// CreateProfileRequest - Create the requester's profile (one per user)
type CreateProfileRequest struct {
	FullName            string            `json:"full_name" validate:"required"`
	Email               string            `json:"email,omitempty"`
	Phone               string            `json:"phone,omitempty"`
	Location            string            `json:"location,omitempty"`
	LinkedIn            string            `json:"linkedin,omitempty"`
	GitHub              string            `json:"github,omitempty"`
	CareerObjective     string            `json:"career_objective,omitempty"`
	ProfessionalSummary string            `json:"professional_summary,omitempty"`
	TechnicalSkills     []string          `json:"technical_skills,omitempty"`
	SoftSkills          []string          `json:"soft_skills,omitempty"`
	Education           []EducationEntry  `json:"education,omitempty"`
	Experience          []ExperienceEntry `json:"experience,omitempty"`
	Projects            []ProjectEntry    `json:"projects,omitempty"`
}

func (r CreateProfileRequest) Validate() *errx.Error {
	if strings.TrimSpace(r.FullName) == "" {
		return ErrInvalidProfileData().WithDetail("field", "full_name")
	}
	return nil
}

// UpdateProfileRequest - Partial profile update
type UpdateProfileRequest struct {
	FullName            *string            `json:"full_name,omitempty"`
	Email               *string            `json:"email,omitempty"`
	Phone               *string            `json:"phone,omitempty"`
	Location            *string            `json:"location,omitempty"`
	LinkedIn            *string            `json:"linkedin,omitempty"`
	GitHub              *string            `json:"github,omitempty"`
	CareerObjective     *string            `json:"career_objective,omitempty"`
	ProfessionalSummary *string            `json:"professional_summary,omitempty"`
	TechnicalSkills     *[]string          `json:"technical_skills,omitempty"`
	SoftSkills          *[]string          `json:"soft_skills,omitempty"`
	Education           *[]EducationEntry  `json:"education,omitempty"`
	Experience          *[]ExperienceEntry `json:"experience,omitempty"`
	Projects            *[]ProjectEntry    `json:"projects,omitempty"`
}

func (r UpdateProfileRequest) Validate() *errx.Error {
	if r.FullName != nil && strings.TrimSpace(*r.FullName) == "" {
		return ErrInvalidProfileData().WithDetail("field", "full_name")
	}
	return nil
}

// GenerateObjectiveRequest - Run the career objective generator,
// optionally steered toward a target job
type GenerateObjectiveRequest struct {
	JobTitle       string `json:"job_title,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
	Save           bool   `json:"save,omitempty"` // persist onto the profile
}

// ============================================================================
// Response DTOs
// ============================================================================

// GenerateObjectiveResponse - Generated objective text plus the
// detected field it was templated from
type GenerateObjectiveResponse struct {
	Objective string `json:"objective"`
	Field     string `json:"field"`
	Saved     bool   `json:"saved"`
}
