package screenerinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/screening/screener"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type PostgresScreeningRepository struct {
	db *sqlx.DB
}

func NewPostgresScreeningRepository(db *sqlx.DB) *PostgresScreeningRepository {
	return &PostgresScreeningRepository{db: db}
}

// screeningRow mirrors the screenings table, JSONB columns as raw bytes
type screeningRow struct {
	ID           string         `db:"id"`
	RequesterID  string         `db:"requester_id"`
	BatchID      sql.NullString `db:"batch_id"`
	Status       string         `db:"status"`
	FilePath     sql.NullString `db:"file_path"`
	FileName     sql.NullString `db:"file_name"`
	ContentType  sql.NullString `db:"content_type"`
	Requirements []byte         `db:"requirements"`
	Parsed       []byte         `db:"parsed"`
	Analysis     []byte         `db:"analysis"`
	AttemptCount int            `db:"attempt_count"`
	MaxAttempts  int            `db:"max_attempts"`
	ErrorMessage sql.NullString `db:"error_message"`
	ErrorDetails []byte         `db:"error_details"`
	NextRetryAt  *time.Time     `db:"next_retry_at"`
	CreatedAt    time.Time      `db:"created_at"`
	StartedAt    *time.Time     `db:"started_at"`
	CompletedAt  *time.Time     `db:"completed_at"`
	FailedAt     *time.Time     `db:"failed_at"`
}

// ============================================================================
// CRUD Operations
// ============================================================================

// Create inserts a new screening record
func (r *PostgresScreeningRepository) Create(ctx context.Context, screening *screener.Screening) error {
	query := `
		INSERT INTO screenings (
			id, requester_id, batch_id, status,
			file_path, file_name, content_type,
			requirements, parsed, analysis,
			attempt_count, max_attempts, error_message, error_details, next_retry_at,
			created_at, started_at, completed_at, failed_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10,
			$11, $12, $13, $14, $15,
			$16, $17, $18, $19
		)`

	row, err := toRow(screening)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query,
		row.ID, row.RequesterID, row.BatchID, row.Status,
		row.FilePath, row.FileName, row.ContentType,
		row.Requirements, row.Parsed, row.Analysis,
		row.AttemptCount, row.MaxAttempts, row.ErrorMessage, row.ErrorDetails, row.NextRetryAt,
		row.CreatedAt, row.StartedAt, row.CompletedAt, row.FailedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return screener.ErrInvalidScreeningData().
				WithDetail("screening_id", screening.ID).
				WithDetail("reason", "duplicate id")
		}
		return screener.ErrScreeningCreateFailed().
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	return nil
}

// GetByID fetches one screening
func (r *PostgresScreeningRepository) GetByID(ctx context.Context, id kernel.ScreeningID) (*screener.Screening, error) {
	query := `SELECT * FROM screenings WHERE id = $1`

	var row screeningRow
	if err := r.db.GetContext(ctx, &row, query, id.String()); err != nil {
		if err == sql.ErrNoRows {
			return nil, screener.ErrScreeningNotFound().
				WithDetail("screening_id", id)
		}
		return nil, screener.ErrRegistry.NewWithCause(screener.CodeScreeningNotFound, err).
			WithDetail("screening_id", id)
	}

	return fromRow(&row)
}

// Update overwrites the mutable screening fields
func (r *PostgresScreeningRepository) Update(ctx context.Context, screening *screener.Screening) error {
	query := `
		UPDATE screenings SET
			status = $2,
			parsed = $3,
			analysis = $4,
			attempt_count = $5,
			error_message = $6,
			error_details = $7,
			next_retry_at = $8,
			started_at = $9,
			completed_at = $10,
			failed_at = $11
		WHERE id = $1`

	row, err := toRow(screening)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query,
		row.ID, row.Status, row.Parsed, row.Analysis,
		row.AttemptCount, row.ErrorMessage, row.ErrorDetails, row.NextRetryAt,
		row.StartedAt, row.CompletedAt, row.FailedAt,
	)
	if err != nil {
		return screener.ErrScreeningUpdateFailed().
			WithDetail("screening_id", screening.ID).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return screener.ErrScreeningNotFound().
			WithDetail("screening_id", screening.ID)
	}

	return nil
}

// Delete removes a screening
func (r *PostgresScreeningRepository) Delete(ctx context.Context, id kernel.ScreeningID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM screenings WHERE id = $1`, id.String())
	if err != nil {
		return screener.ErrScreeningUpdateFailed().
			WithDetail("screening_id", id).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return screener.ErrScreeningNotFound().
			WithDetail("screening_id", id)
	}

	return nil
}

// ============================================================================
// Queries
// ============================================================================

// ListByRequester pages the requester's screenings, newest first
func (r *PostgresScreeningRepository) ListByRequester(ctx context.Context, requesterID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[screener.Screening], error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM screenings WHERE requester_id = $1`, requesterID.String()); err != nil {
		return nil, err
	}

	query := `
		SELECT * FROM screenings
		WHERE requester_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var rows []screeningRow
	if err := r.db.SelectContext(ctx, &rows, query,
		requesterID.String(), pagination.Limit(), pagination.Offset()); err != nil {
		return nil, err
	}

	items := make([]screener.Screening, 0, len(rows))
	for i := range rows {
		s, err := fromRow(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}

	norm := pagination.Normalize()
	return &kernel.Paginated[screener.Screening]{
		Items: items,
		Page: kernel.PageInfo{
			Number: norm.Page,
			Size:   norm.PageSize,
			Total:  total,
		},
	}, nil
}

// ListByBatch fetches every screening in a batch
func (r *PostgresScreeningRepository) ListByBatch(ctx context.Context, batchID kernel.BatchID) ([]screener.Screening, error) {
	query := `SELECT * FROM screenings WHERE batch_id = $1 ORDER BY created_at`

	var rows []screeningRow
	if err := r.db.SelectContext(ctx, &rows, query, batchID.String()); err != nil {
		return nil, err
	}

	items := make([]screener.Screening, 0, len(rows))
	for i := range rows {
		s, err := fromRow(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	return items, nil
}

// ============================================================================
// Mapping
// ============================================================================

func toRow(s *screener.Screening) (*screeningRow, error) {
	requirements, err := json.Marshal(s.Requirements)
	if err != nil {
		return nil, screener.ErrInvalidScreeningData().
			WithDetail("field", "requirements").
			WithDetails(map[string]any{"error": err.Error()})
	}

	var parsed, analysis, errorDetails []byte
	if s.Parsed != nil {
		if parsed, err = json.Marshal(s.Parsed); err != nil {
			return nil, screener.ErrInvalidScreeningData().
				WithDetail("field", "parsed").
				WithDetails(map[string]any{"error": err.Error()})
		}
	}
	if s.Analysis != nil {
		if analysis, err = json.Marshal(s.Analysis); err != nil {
			return nil, screener.ErrInvalidScreeningData().
				WithDetail("field", "analysis").
				WithDetails(map[string]any{"error": err.Error()})
		}
	}
	if s.ErrorDetails != nil {
		if errorDetails, err = json.Marshal(s.ErrorDetails); err != nil {
			return nil, screener.ErrInvalidScreeningData().
				WithDetail("field", "error_details").
				WithDetails(map[string]any{"error": err.Error()})
		}
	}

	row := &screeningRow{
		ID:           s.ID.String(),
		RequesterID:  s.RequesterID.String(),
		Status:       string(s.Status),
		Requirements: requirements,
		Parsed:       parsed,
		Analysis:     analysis,
		AttemptCount: s.AttemptCount,
		MaxAttempts:  s.MaxAttempts,
		ErrorDetails: errorDetails,
		NextRetryAt:  s.NextRetryAt,
		CreatedAt:    s.CreatedAt,
		StartedAt:    s.StartedAt,
		CompletedAt:  s.CompletedAt,
		FailedAt:     s.FailedAt,
	}
	if s.BatchID != nil {
		row.BatchID = sql.NullString{String: s.BatchID.String(), Valid: true}
	}
	if s.FilePath != "" {
		row.FilePath = sql.NullString{String: s.FilePath, Valid: true}
	}
	if s.FileName != "" {
		row.FileName = sql.NullString{String: s.FileName, Valid: true}
	}
	if s.ContentType != "" {
		row.ContentType = sql.NullString{String: s.ContentType, Valid: true}
	}
	if s.ErrorMessage != "" {
		row.ErrorMessage = sql.NullString{String: s.ErrorMessage, Valid: true}
	}
	return row, nil
}

func fromRow(row *screeningRow) (*screener.Screening, error) {
	s := &screener.Screening{
		ID:           kernel.NewScreeningID(row.ID),
		RequesterID:  kernel.NewUserID(row.RequesterID),
		Status:       screener.ScreeningStatus(row.Status),
		FilePath:     row.FilePath.String,
		FileName:     row.FileName.String,
		ContentType:  row.ContentType.String,
		AttemptCount: row.AttemptCount,
		MaxAttempts:  row.MaxAttempts,
		ErrorMessage: row.ErrorMessage.String,
		NextRetryAt:  row.NextRetryAt,
		CreatedAt:    row.CreatedAt,
		StartedAt:    row.StartedAt,
		CompletedAt:  row.CompletedAt,
		FailedAt:     row.FailedAt,
	}

	if row.BatchID.Valid {
		batchID := kernel.NewBatchID(row.BatchID.String)
		s.BatchID = &batchID
	}

	if len(row.Requirements) > 0 {
		if err := json.Unmarshal(row.Requirements, &s.Requirements); err != nil {
			return nil, screener.ErrInvalidScreeningData().
				WithDetail("field", "requirements").
				WithDetails(map[string]any{"error": err.Error()})
		}
	}
	if len(row.Parsed) > 0 {
		if err := json.Unmarshal(row.Parsed, &s.Parsed); err != nil {
			return nil, screener.ErrInvalidScreeningData().
				WithDetail("field", "parsed").
				WithDetails(map[string]any{"error": err.Error()})
		}
	}
	if len(row.Analysis) > 0 {
		if err := json.Unmarshal(row.Analysis, &s.Analysis); err != nil {
			return nil, screener.ErrInvalidScreeningData().
				WithDetail("field", "analysis").
				WithDetails(map[string]any{"error": err.Error()})
		}
	}
	if len(row.ErrorDetails) > 0 {
		if err := json.Unmarshal(row.ErrorDetails, &s.ErrorDetails); err != nil {
			return nil, screener.ErrInvalidScreeningData().
				WithDetail("field", "error_details").
				WithDetails(map[string]any{"error": err.Error()})
		}
	}

	return s, nil
}
