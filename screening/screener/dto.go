package screener

import (
	"strings"
	"time"

	"github.com/Abraxas-365/sift/pkg/errx"
	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/screening/parser"
	"github.com/Abraxas-365/sift/screening/scoring"
)

const (
	// MaxBatchSize bounds one batch request
	MaxBatchSize = 50

	// MaxResumeTextLength bounds raw text payloads (1MB of text)
	MaxResumeTextLength = 1 << 20
)

// ============================================================================
// Request DTOs
// ============================================================================

// ParseTextRequest - Parse raw resume text into structured data
type ParseTextRequest struct {
	Text string `json:"text" validate:"required"`
}

func (r ParseTextRequest) Validate() *errx.Error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyResumeText()
	}
	if len(r.Text) > MaxResumeTextLength {
		return ErrInvalidScreeningData().
			WithDetail("field", "text").
			WithDetail("max_length", MaxResumeTextLength)
	}
	return nil
}

// AnalyzeTextRequest - Parse and score resume text against requirements
type AnalyzeTextRequest struct {
	Text         string                  `json:"text" validate:"required"`
	Requirements scoring.JobRequirements `json:"requirements" validate:"required"`
}

func (r AnalyzeTextRequest) Validate() *errx.Error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyResumeText()
	}
	if len(r.Text) > MaxResumeTextLength {
		return ErrInvalidScreeningData().
			WithDetail("field", "text").
			WithDetail("max_length", MaxResumeTextLength)
	}
	return nil
}

// ScreenFileRequest - Queue an uploaded resume document for screening
type ScreenFileRequest struct {
	RequesterID  kernel.UserID           `json:"requester_id" validate:"required"`
	FilePath     string                  `json:"file_path" validate:"required"`
	FileName     string                  `json:"file_name" validate:"required"`
	ContentType  string                  `json:"content_type" validate:"required"`
	Requirements scoring.JobRequirements `json:"requirements" validate:"required"`
}

func (r ScreenFileRequest) Validate() *errx.Error {
	if r.RequesterID.IsEmpty() {
		return ErrInvalidScreeningData().WithDetail("field", "requester_id")
	}
	if r.FilePath == "" {
		return ErrInvalidScreeningData().WithDetail("field", "file_path")
	}
	return nil
}

// BatchItem - One resume within a batch request
type BatchItem struct {
	Label string `json:"label,omitempty"` // caller-supplied identifier, e.g. file name
	Text  string `json:"text" validate:"required"`
}

// BatchScreenRequest - Score many resumes against one set of requirements
type BatchScreenRequest struct {
	Items        []BatchItem             `json:"items" validate:"required"`
	Requirements scoring.JobRequirements `json:"requirements" validate:"required"`
}

func (r BatchScreenRequest) Validate() *errx.Error {
	if len(r.Items) == 0 {
		return ErrBatchEmpty()
	}
	if len(r.Items) > MaxBatchSize {
		return ErrBatchTooLarge().
			WithDetail("size", len(r.Items)).
			WithDetail("max_size", MaxBatchSize)
	}
	return nil
}

// ============================================================================
// Response DTOs
// ============================================================================

// ParseTextResponse - Result of a synchronous parse
type ParseTextResponse struct {
	Parsed parser.ParsedResume `json:"parsed"`
}

// AnalyzeTextResponse - Result of a synchronous analysis
type AnalyzeTextResponse struct {
	Parsed   parser.ParsedResume    `json:"parsed"`
	Analysis scoring.ResumeAnalysis `json:"analysis"`
}

// ScreeningStatusResponse - Lifecycle view of an async screening
type ScreeningStatusResponse struct {
	ScreeningID  kernel.ScreeningID      `json:"screening_id"`
	Status       ScreeningStatus         `json:"status"`
	Message      string                  `json:"message"`
	AttemptCount int                     `json:"attempt_count,omitempty"`
	NextRetryAt  *time.Time              `json:"next_retry_at,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	StartedAt    *time.Time              `json:"started_at,omitempty"`
	CompletedAt  *time.Time              `json:"completed_at,omitempty"`
	FailedAt     *time.Time              `json:"failed_at,omitempty"`
	Analysis     *scoring.ResumeAnalysis `json:"analysis,omitempty"`
}

// BatchResult - One scored resume within a batch response, positioned
// by its request index regardless of completion order
type BatchResult struct {
	Index       int                     `json:"index"`
	Label       string                  `json:"label,omitempty"`
	ScreeningID kernel.ScreeningID      `json:"screening_id,omitempty"`
	Parsed      *parser.ParsedResume    `json:"parsed,omitempty"`
	Analysis    *scoring.ResumeAnalysis `json:"analysis,omitempty"`
	Error       string                  `json:"error,omitempty"`
}

// BatchScreenResponse - Results for a whole batch, request order
type BatchScreenResponse struct {
	BatchID kernel.BatchID `json:"batch_id"`
	Results []BatchResult  `json:"results"`
}

// QueueStatsResponse - Queue depth for operational visibility
type QueueStatsResponse struct {
	ReadyJobs   int64 `json:"ready_jobs"`
	DelayedJobs int64 `json:"delayed_jobs"`
}
