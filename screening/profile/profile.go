package profile

import (
	"time"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/screening/objective"
)

// Profile is a candidate profile maintained by its owner, the input
// for career objective generation
type Profile struct {
	ID      kernel.ProfileID `db:"id" json:"id"`
	OwnerID kernel.UserID    `db:"owner_id" json:"owner_id"`

	FullName string `db:"full_name" json:"full_name"`
	Email    string `db:"email" json:"email,omitempty"`
	Phone    string `db:"phone" json:"phone,omitempty"`
	Location string `db:"location" json:"location,omitempty"`
	LinkedIn string `db:"linkedin" json:"linkedin,omitempty"`
	GitHub   string `db:"github" json:"github,omitempty"`

	CareerObjective     string `db:"career_objective" json:"career_objective,omitempty"`
	ProfessionalSummary string `db:"professional_summary" json:"professional_summary,omitempty"`

	// Stored as JSONB
	TechnicalSkills []string          `db:"technical_skills" json:"technical_skills,omitempty"`
	SoftSkills      []string          `db:"soft_skills" json:"soft_skills,omitempty"`
	Education       []EducationEntry  `db:"education" json:"education,omitempty"`
	Experience      []ExperienceEntry `db:"experience" json:"experience,omitempty"`
	Projects        []ProjectEntry    `db:"projects" json:"projects,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// EducationEntry is one degree or program on the profile
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// ExperienceEntry is one past role on the profile
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectEntry is one project on the profile
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// BelongsTo checks owner
func (p *Profile) BelongsTo(userID kernel.UserID) bool {
	return p.OwnerID == userID
}

// GeneratorInput maps the profile onto the objective generator's view
func (p *Profile) GeneratorInput() objective.ProfileInput {
	input := objective.ProfileInput{
		FullName:            p.FullName,
		CareerObjective:     p.CareerObjective,
		ProfessionalSummary: p.ProfessionalSummary,
		TechnicalSkills:     p.TechnicalSkills,
		SoftSkills:          p.SoftSkills,
	}
	for _, e := range p.Experience {
		input.Experience = append(input.Experience, objective.RoleSummary{
			Title:       e.Title,
			Description: e.Description,
		})
	}
	for _, pr := range p.Projects {
		input.Projects = append(input.Projects, objective.ProjectSummary{
			Name:        pr.Name,
			Description: pr.Description,
		})
	}
	return input
}
