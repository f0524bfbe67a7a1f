package screener

import (
	"time"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/screening/parser"
	"github.com/Abraxas-365/sift/screening/scoring"
)

// ScreeningStatus represents the lifecycle state of a screening
type ScreeningStatus string

const (
	StatusPending    ScreeningStatus = "pending"
	StatusProcessing ScreeningStatus = "processing"
	StatusCompleted  ScreeningStatus = "completed"
	StatusFailed     ScreeningStatus = "failed"
)

// ============================================================================
// Screening Entity
// ============================================================================

// Screening is one resume evaluated against one set of job
// requirements. Synchronous analyses complete in a single call;
// file-based screenings go through the pending → processing →
// completed/failed lifecycle driven by the worker pool.
type Screening struct {
	ID          kernel.ScreeningID `db:"id" json:"id"`
	RequesterID kernel.UserID      `db:"requester_id" json:"requester_id"`
	BatchID     *kernel.BatchID    `db:"batch_id" json:"batch_id,omitempty"`
	Status      ScreeningStatus    `db:"status" json:"status"`

	// Source document (empty for text-only screenings)
	FilePath    string `db:"file_path" json:"file_path,omitempty"`
	FileName    string `db:"file_name" json:"file_name,omitempty"`
	ContentType string `db:"content_type" json:"content_type,omitempty"`

	// Stored as JSONB
	Requirements scoring.JobRequirements `db:"requirements" json:"requirements"`
	Parsed       *parser.ParsedResume    `db:"parsed" json:"parsed,omitempty"`
	Analysis     *scoring.ResumeAnalysis `db:"analysis" json:"analysis,omitempty"`

	// Retry bookkeeping for async processing
	AttemptCount int            `db:"attempt_count" json:"attempt_count"`
	MaxAttempts  int            `db:"max_attempts" json:"max_attempts"`
	ErrorMessage string         `db:"error_message" json:"error_message,omitempty"`
	ErrorDetails map[string]any `db:"error_details" json:"error_details,omitempty"`
	NextRetryAt  *time.Time     `db:"next_retry_at" json:"next_retry_at,omitempty"`

	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	StartedAt   *time.Time `db:"started_at" json:"started_at,omitempty"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	FailedAt    *time.Time `db:"failed_at" json:"failed_at,omitempty"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// MarkProcessing transitions the screening into the processing state
func (s *Screening) MarkProcessing() {
	now := time.Now()
	s.Status = StatusProcessing
	s.StartedAt = &now
	s.ErrorMessage = ""
	s.ErrorDetails = nil
	s.NextRetryAt = nil
}

// MarkCompleted records the parse and analysis results
func (s *Screening) MarkCompleted(parsed *parser.ParsedResume, analysis *scoring.ResumeAnalysis) {
	now := time.Now()
	s.Status = StatusCompleted
	s.Parsed = parsed
	s.Analysis = analysis
	s.CompletedAt = &now
	s.ErrorMessage = ""
	s.ErrorDetails = nil
	s.NextRetryAt = nil
}

// MarkFailed records a terminal failure
func (s *Screening) MarkFailed(message string, details map[string]any) {
	now := time.Now()
	s.Status = StatusFailed
	s.FailedAt = &now
	s.ErrorMessage = message
	s.ErrorDetails = details
	s.NextRetryAt = nil
}

// ScheduleRetry resets the screening to pending with a retry time
func (s *Screening) ScheduleRetry(message string, details map[string]any, at time.Time) {
	s.Status = StatusPending
	s.ErrorMessage = message
	s.ErrorDetails = details
	s.NextRetryAt = &at
}

// CanRetry reports whether another processing attempt is allowed
func (s *Screening) CanRetry() bool {
	return s.AttemptCount < s.MaxAttempts
}

// IsTerminal reports whether the screening reached a final state
func (s *Screening) IsTerminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusFailed
}

// BelongsTo checks requester ownership
func (s *Screening) BelongsTo(userID kernel.UserID) bool {
	return s.RequesterID == userID
}

// ============================================================================
// Queue Job
// ============================================================================

// ScreeningJob is the message enqueued for the worker pool. The
// screening record itself is the source of truth; the job only
// carries what the worker needs to pick it up.
type ScreeningJob struct {
	ScreeningID  kernel.ScreeningID `json:"screening_id"`
	AttemptCount int                `json:"attempt_count"`
	EnqueuedAt   time.Time          `json:"enqueued_at"`
}
