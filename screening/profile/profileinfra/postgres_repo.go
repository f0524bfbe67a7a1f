package profileinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/screening/profile"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type PostgresProfileRepository struct {
	db *sqlx.DB
}

func NewPostgresProfileRepository(db *sqlx.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// profileRow mirrors the profiles table, JSONB columns as raw bytes
type profileRow struct {
	ID                  string         `db:"id"`
	OwnerID             string         `db:"owner_id"`
	FullName            string         `db:"full_name"`
	Email               sql.NullString `db:"email"`
	Phone               sql.NullString `db:"phone"`
	Location            sql.NullString `db:"location"`
	LinkedIn            sql.NullString `db:"linkedin"`
	GitHub              sql.NullString `db:"github"`
	CareerObjective     sql.NullString `db:"career_objective"`
	ProfessionalSummary sql.NullString `db:"professional_summary"`
	TechnicalSkills     pq.StringArray `db:"technical_skills"`
	SoftSkills          pq.StringArray `db:"soft_skills"`
	Education           []byte         `db:"education"`
	Experience          []byte         `db:"experience"`
	Projects            []byte         `db:"projects"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

// Create inserts a new profile
func (r *PostgresProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (
			id, owner_id, full_name, email, phone, location, linkedin, github,
			career_objective, professional_summary,
			technical_skills, soft_skills, education, experience, projects,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10,
			$11, $12, $13, $14, $15,
			$16, $17
		)`

	education, experience, projects, err := marshalComposites(p)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		p.ID.String(), p.OwnerID.String(), p.FullName, p.Email, p.Phone, p.Location, p.LinkedIn, p.GitHub,
		p.CareerObjective, p.ProfessionalSummary,
		pq.StringArray(p.TechnicalSkills), pq.StringArray(p.SoftSkills), education, experience, projects,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return profile.ErrProfileAlreadyExists().
				WithDetail("owner_id", p.OwnerID)
		}
		return profile.ErrProfileCreateFailed().
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}
	return nil
}

// GetByID fetches one profile
func (r *PostgresProfileRepository) GetByID(ctx context.Context, id kernel.ProfileID) (*profile.Profile, error) {
	var row profileRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM profiles WHERE id = $1`, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrProfileNotFound().
				WithDetail("profile_id", id)
		}
		return nil, profile.ErrRegistry.NewWithCause(profile.CodeProfileNotFound, err).
			WithDetail("profile_id", id)
	}
	return fromRow(&row)
}

// GetByOwner fetches a user's profile
func (r *PostgresProfileRepository) GetByOwner(ctx context.Context, ownerID kernel.UserID) (*profile.Profile, error) {
	var row profileRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM profiles WHERE owner_id = $1`, ownerID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrProfileNotFound().
				WithDetail("owner_id", ownerID)
		}
		return nil, profile.ErrRegistry.NewWithCause(profile.CodeProfileNotFound, err).
			WithDetail("owner_id", ownerID)
	}
	return fromRow(&row)
}

// Update overwrites the mutable profile fields
func (r *PostgresProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	query := `
		UPDATE profiles SET
			full_name = $2,
			email = $3,
			phone = $4,
			location = $5,
			linkedin = $6,
			github = $7,
			career_objective = $8,
			professional_summary = $9,
			technical_skills = $10,
			soft_skills = $11,
			education = $12,
			experience = $13,
			projects = $14,
			updated_at = $15
		WHERE id = $1`

	education, experience, projects, err := marshalComposites(p)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query,
		p.ID.String(), p.FullName, p.Email, p.Phone, p.Location, p.LinkedIn, p.GitHub,
		p.CareerObjective, p.ProfessionalSummary,
		pq.StringArray(p.TechnicalSkills), pq.StringArray(p.SoftSkills), education, experience, projects,
		p.UpdatedAt,
	)
	if err != nil {
		return profile.ErrProfileUpdateFailed().
			WithDetail("profile_id", p.ID).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return profile.ErrProfileNotFound().
			WithDetail("profile_id", p.ID)
	}
	return nil
}

// Delete removes a profile
func (r *PostgresProfileRepository) Delete(ctx context.Context, id kernel.ProfileID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id.String())
	if err != nil {
		return profile.ErrProfileUpdateFailed().
			WithDetail("profile_id", id).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return profile.ErrProfileNotFound().
			WithDetail("profile_id", id)
	}
	return nil
}

// ============================================================================
// Mapping
// ============================================================================

func marshalComposites(p *profile.Profile) (education, experience, projects []byte, err error) {
	if education, err = json.Marshal(p.Education); err != nil {
		return nil, nil, nil, profile.ErrInvalidProfileData().
			WithDetail("field", "education").
			WithDetails(map[string]any{"error": err.Error()})
	}
	if experience, err = json.Marshal(p.Experience); err != nil {
		return nil, nil, nil, profile.ErrInvalidProfileData().
			WithDetail("field", "experience").
			WithDetails(map[string]any{"error": err.Error()})
	}
	if projects, err = json.Marshal(p.Projects); err != nil {
		return nil, nil, nil, profile.ErrInvalidProfileData().
			WithDetail("field", "projects").
			WithDetails(map[string]any{"error": err.Error()})
	}
	return education, experience, projects, nil
}

func fromRow(row *profileRow) (*profile.Profile, error) {
	p := &profile.Profile{
		ID:                  kernel.NewProfileID(row.ID),
		OwnerID:             kernel.NewUserID(row.OwnerID),
		FullName:            row.FullName,
		Email:               row.Email.String,
		Phone:               row.Phone.String,
		Location:            row.Location.String,
		LinkedIn:            row.LinkedIn.String,
		GitHub:              row.GitHub.String,
		CareerObjective:     row.CareerObjective.String,
		ProfessionalSummary: row.ProfessionalSummary.String,
		TechnicalSkills:     []string(row.TechnicalSkills),
		SoftSkills:          []string(row.SoftSkills),
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}

	if len(row.Education) > 0 {
		if err := json.Unmarshal(row.Education, &p.Education); err != nil {
			return nil, profile.ErrInvalidProfileData().
				WithDetail("field", "education").
				WithDetails(map[string]any{"error": err.Error()})
		}
	}
	if len(row.Experience) > 0 {
		if err := json.Unmarshal(row.Experience, &p.Experience); err != nil {
			return nil, profile.ErrInvalidProfileData().
				WithDetail("field", "experience").
				WithDetails(map[string]any{"error": err.Error()})
		}
	}
	if len(row.Projects) > 0 {
		if err := json.Unmarshal(row.Projects, &p.Projects); err != nil {
			return nil, profile.ErrInvalidProfileData().
				WithDetail("field", "projects").
				WithDetails(map[string]any{"error": err.Error()})
		}
	}

	return p, nil
}
