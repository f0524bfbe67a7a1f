package jobspec

import (
	"time"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/screening/scoring"
)

// SpecStatus represents the lifecycle state of a job spec
type SpecStatus string

const (
	StatusDraft     SpecStatus = "DRAFT"     // Created but not published
	StatusPublished SpecStatus = "PUBLISHED" // Usable for screenings by other users
	StatusArchived  SpecStatus = "ARCHIVED"  // Retired
)

// JobSpec is a reusable set of job requirements resumes are screened
// against
type JobSpec struct {
	ID              kernel.JobSpecID `db:"id" json:"id"`
	OwnerID         kernel.UserID    `db:"owner_id" json:"owner_id"`
	Title           string           `db:"title" json:"title"`
	Company         string           `db:"company" json:"company"`
	Description     string           `db:"description" json:"description"`
	RequiredSkills  []string         `db:"required_skills" json:"required_skills"`
	ExperienceLevel string           `db:"experience_level" json:"experience_level"`
	Education       string           `db:"education" json:"education"`
	Location        string           `db:"location" json:"location"`
	Status          SpecStatus       `db:"status" json:"status"`
	PublishedAt     *time.Time       `db:"published_at" json:"published_at,omitempty"`
	ArchivedAt      *time.Time       `db:"archived_at" json:"archived_at,omitempty"`
	CreatedAt       time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsPublished checks if the spec is currently published
func (j *JobSpec) IsPublished() bool {
	return j.Status == StatusPublished
}

// IsArchived checks if the spec is archived
func (j *JobSpec) IsArchived() bool {
	return j.Status == StatusArchived
}

// IsDraft checks if the spec is in draft status
func (j *JobSpec) IsDraft() bool {
	return j.Status == StatusDraft
}

// CanBePublished checks if a spec can be published
func (j *JobSpec) CanBePublished() bool {
	return j.Status == StatusDraft
}

// CanBeEdited checks if a spec can be edited
func (j *JobSpec) CanBeEdited() bool {
	return !j.IsArchived()
}

// BelongsTo checks owner
func (j *JobSpec) BelongsTo(userID kernel.UserID) bool {
	return j.OwnerID == userID
}

// Publish marks the spec as published
func (j *JobSpec) Publish() error {
	if !j.CanBePublished() {
		return ErrCannotPublish().WithDetail("current_status", j.Status)
	}

	now := time.Now()
	j.Status = StatusPublished
	j.PublishedAt = &now
	j.UpdatedAt = now
	return nil
}

// Unpublish reverts the spec to draft
func (j *JobSpec) Unpublish() {
	j.Status = StatusDraft
	j.UpdatedAt = time.Now()
}

// Archive retires the spec
func (j *JobSpec) Archive() error {
	if j.IsArchived() {
		return ErrSpecAlreadyArchived()
	}

	now := time.Now()
	j.Status = StatusArchived
	j.ArchivedAt = &now
	j.UpdatedAt = now
	return nil
}

// Unarchive returns an archived spec to draft
func (j *JobSpec) Unarchive() error {
	if !j.IsArchived() {
		return ErrSpecNotArchived()
	}

	j.Status = StatusDraft
	j.ArchivedAt = nil
	j.UpdatedAt = time.Now()
	return nil
}

// Requirements converts the spec into the scoring engine's input
func (j *JobSpec) Requirements() scoring.JobRequirements {
	return scoring.JobRequirements{
		Title:           j.Title,
		Company:         j.Company,
		Description:     j.Description,
		RequiredSkills:  j.RequiredSkills,
		ExperienceLevel: j.ExperienceLevel,
		Education:       j.Education,
		Location:        j.Location,
	}
}
