package jobspecinfra

import (
	"context"
	"database/sql"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/screening/jobspec"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type PostgresJobSpecRepository struct {
	db *sqlx.DB
}

func NewPostgresJobSpecRepository(db *sqlx.DB) *PostgresJobSpecRepository {
	return &PostgresJobSpecRepository{db: db}
}

// specRow mirrors the job_specs table
type specRow struct {
	ID              string         `db:"id"`
	OwnerID         string         `db:"owner_id"`
	Title           string         `db:"title"`
	Company         sql.NullString `db:"company"`
	Description     sql.NullString `db:"description"`
	RequiredSkills  pq.StringArray `db:"required_skills"`
	ExperienceLevel sql.NullString `db:"experience_level"`
	Education       sql.NullString `db:"education"`
	Location        sql.NullString `db:"location"`
	Status          string         `db:"status"`
	PublishedAt     sql.NullTime   `db:"published_at"`
	ArchivedAt      sql.NullTime   `db:"archived_at"`
	CreatedAt       sql.NullTime   `db:"created_at"`
	UpdatedAt       sql.NullTime   `db:"updated_at"`
}

// Create inserts a new job spec
func (r *PostgresJobSpecRepository) Create(ctx context.Context, spec *jobspec.JobSpec) error {
	query := `
		INSERT INTO job_specs (
			id, owner_id, title, company, description,
			required_skills, experience_level, education, location,
			status, published_at, archived_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12, $13, $14
		)`

	_, err := r.db.ExecContext(ctx, query,
		spec.ID.String(), spec.OwnerID.String(), spec.Title, spec.Company, spec.Description,
		pq.StringArray(spec.RequiredSkills), spec.ExperienceLevel, spec.Education, spec.Location,
		string(spec.Status), spec.PublishedAt, spec.ArchivedAt, spec.CreatedAt, spec.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return jobspec.ErrInvalidSpecData().
				WithDetail("spec_id", spec.ID).
				WithDetail("reason", "duplicate id")
		}
		return jobspec.ErrSpecCreateFailed().
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}
	return nil
}

// GetByID fetches one job spec
func (r *PostgresJobSpecRepository) GetByID(ctx context.Context, id kernel.JobSpecID) (*jobspec.JobSpec, error) {
	var row specRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM job_specs WHERE id = $1`, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, jobspec.ErrSpecNotFound().
				WithDetail("spec_id", id)
		}
		return nil, jobspec.ErrRegistry.NewWithCause(jobspec.CodeSpecNotFound, err).
			WithDetail("spec_id", id)
	}
	return fromRow(&row), nil
}

// Update overwrites the mutable spec fields
func (r *PostgresJobSpecRepository) Update(ctx context.Context, spec *jobspec.JobSpec) error {
	query := `
		UPDATE job_specs SET
			title = $2,
			company = $3,
			description = $4,
			required_skills = $5,
			experience_level = $6,
			education = $7,
			location = $8,
			status = $9,
			published_at = $10,
			archived_at = $11,
			updated_at = $12
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		spec.ID.String(), spec.Title, spec.Company, spec.Description,
		pq.StringArray(spec.RequiredSkills), spec.ExperienceLevel, spec.Education, spec.Location,
		string(spec.Status), spec.PublishedAt, spec.ArchivedAt, spec.UpdatedAt,
	)
	if err != nil {
		return jobspec.ErrSpecUpdateFailed().
			WithDetail("spec_id", spec.ID).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return jobspec.ErrSpecNotFound().
			WithDetail("spec_id", spec.ID)
	}
	return nil
}

// Delete removes a job spec
func (r *PostgresJobSpecRepository) Delete(ctx context.Context, id kernel.JobSpecID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM job_specs WHERE id = $1`, id.String())
	if err != nil {
		return jobspec.ErrSpecUpdateFailed().
			WithDetail("spec_id", id).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return jobspec.ErrSpecNotFound().
			WithDetail("spec_id", id)
	}
	return nil
}

// ListByOwner pages the owner's specs, newest first
func (r *PostgresJobSpecRepository) ListByOwner(ctx context.Context, ownerID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[jobspec.JobSpec], error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM job_specs WHERE owner_id = $1`, ownerID.String()); err != nil {
		return nil, err
	}

	var rows []specRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM job_specs
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		ownerID.String(), pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, err
	}

	return paginate(rows, pagination, total), nil
}

// ListPublished pages published specs, newest first
func (r *PostgresJobSpecRepository) ListPublished(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[jobspec.JobSpec], error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM job_specs WHERE status = $1`, string(jobspec.StatusPublished)); err != nil {
		return nil, err
	}

	var rows []specRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM job_specs
		WHERE status = $1
		ORDER BY published_at DESC
		LIMIT $2 OFFSET $3`,
		string(jobspec.StatusPublished), pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, err
	}

	return paginate(rows, pagination, total), nil
}

func paginate(rows []specRow, pagination kernel.PaginationOptions, total int) *kernel.Paginated[jobspec.JobSpec] {
	items := make([]jobspec.JobSpec, 0, len(rows))
	for i := range rows {
		items = append(items, *fromRow(&rows[i]))
	}
	norm := pagination.Normalize()
	return &kernel.Paginated[jobspec.JobSpec]{
		Items: items,
		Page: kernel.PageInfo{
			Number: norm.Page,
			Size:   norm.PageSize,
			Total:  total,
		},
	}
}

func fromRow(row *specRow) *jobspec.JobSpec {
	spec := &jobspec.JobSpec{
		ID:              kernel.NewJobSpecID(row.ID),
		OwnerID:         kernel.NewUserID(row.OwnerID),
		Title:           row.Title,
		Company:         row.Company.String,
		Description:     row.Description.String,
		RequiredSkills:  []string(row.RequiredSkills),
		ExperienceLevel: row.ExperienceLevel.String,
		Education:       row.Education.String,
		Location:        row.Location.String,
		Status:          jobspec.SpecStatus(row.Status),
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
	if row.PublishedAt.Valid {
		t := row.PublishedAt.Time
		spec.PublishedAt = &t
	}
	if row.ArchivedAt.Valid {
		t := row.ArchivedAt.Time
		spec.ArchivedAt = &t
	}
	return spec
}
