package screenersrv

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Abraxas-365/sift/internal/textextract"
	"github.com/Abraxas-365/sift/pkg/fsx"
	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/pkg/logx"
	"github.com/Abraxas-365/sift/screening/parser"
	"github.com/Abraxas-365/sift/screening/screener"
	"github.com/Abraxas-365/sift/screening/scoring"
	"github.com/google/uuid"
)

const (
	// DefaultMaxAttempts bounds async retries per screening
	DefaultMaxAttempts = 3
)

// Service implements the screening use cases: synchronous parse and
// analyze, asynchronous file screening, and batch scoring.
type Service struct {
	repo   screener.Repository
	queue  screener.JobQueue
	files  fsx.FileSystem
	parser *parser.Parser
	engine *scoring.Engine
}

func New(
	repo screener.Repository,
	queue screener.JobQueue,
	files fsx.FileSystem,
	p *parser.Parser,
	engine *scoring.Engine,
) *Service {
	return &Service{
		repo:   repo,
		queue:  queue,
		files:  files,
		parser: p,
		engine: engine,
	}
}

// ============================================================================
// Synchronous Operations
// ============================================================================

// ParseText parses raw resume text into structured data
func (s *Service) ParseText(ctx context.Context, req screener.ParseTextRequest) (*screener.ParseTextResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	parsed := s.parser.Parse(req.Text)
	return &screener.ParseTextResponse{Parsed: parsed}, nil
}

// AnalyzeText parses resume text and scores it against requirements
func (s *Service) AnalyzeText(ctx context.Context, req screener.AnalyzeTextRequest) (*screener.AnalyzeTextResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	parsed := s.parser.Parse(req.Text)
	analysis := s.engine.Score(parsed, req.Requirements)

	return &screener.AnalyzeTextResponse{
		Parsed:   parsed,
		Analysis: analysis,
	}, nil
}

// BatchScreen scores every resume in the batch against one set of
// requirements. Items are processed concurrently; results land at
// their request index, so output order never depends on completion
// order. Each item is also persisted as a screening record under
// the shared batch ID.
func (s *Service) BatchScreen(ctx context.Context, requesterID kernel.UserID, req screener.BatchScreenRequest) (*screener.BatchScreenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	batchID := kernel.NewBatchID(uuid.NewString())
	results := make([]screener.BatchResult, len(req.Items))

	var wg sync.WaitGroup
	for i, item := range req.Items {
		wg.Add(1)
		go func(idx int, it screener.BatchItem) {
			defer wg.Done()
			results[idx] = s.screenBatchItem(ctx, requesterID, batchID, idx, it, req.Requirements)
		}(i, item)
	}
	wg.Wait()

	logx.Infof("Batch screening completed: BatchID=%s, Items=%d", batchID, len(req.Items))

	return &screener.BatchScreenResponse{
		BatchID: batchID,
		Results: results,
	}, nil
}

func (s *Service) screenBatchItem(ctx context.Context, requesterID kernel.UserID, batchID kernel.BatchID, idx int, item screener.BatchItem, req scoring.JobRequirements) screener.BatchResult {
	result := screener.BatchResult{Index: idx, Label: item.Label}

	screening := &screener.Screening{
		ID:           kernel.NewScreeningID(uuid.NewString()),
		RequesterID:  requesterID,
		BatchID:      &batchID,
		FileName:     item.Label,
		Requirements: req,
		MaxAttempts:  DefaultMaxAttempts,
		CreatedAt:    time.Now(),
	}

	if len(item.Text) == 0 || len(item.Text) > screener.MaxResumeTextLength {
		result.Error = "resume text empty or too large"
		screening.MarkFailed(result.Error, nil)
	} else {
		parsed := s.parser.Parse(item.Text)
		analysis := s.engine.Score(parsed, req)
		result.Parsed = &parsed
		result.Analysis = &analysis
		screening.MarkCompleted(&parsed, &analysis)
	}

	if err := s.repo.Create(ctx, screening); err != nil {
		logx.Warnf("Failed to persist batch screening: BatchID=%s, Index=%d: %v", batchID, idx, err)
		return result
	}
	result.ScreeningID = screening.ID
	return result
}

// ListBatch returns the stored screenings of one batch, enforcing
// ownership
func (s *Service) ListBatch(ctx context.Context, batchID kernel.BatchID, requesterID kernel.UserID) ([]screener.Screening, error) {
	items, err := s.repo.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, screener.ErrScreeningNotFound().
			WithDetail("batch_id", batchID)
	}
	for i := range items {
		if !items[i].BelongsTo(requesterID) {
			return nil, screener.ErrRequesterMismatch().
				WithDetail("batch_id", batchID)
		}
	}
	return items, nil
}

// ============================================================================
// Asynchronous Operations
// ============================================================================

// ScreenFile creates a pending screening for an uploaded document and
// queues it for background processing
func (s *Service) ScreenFile(ctx context.Context, req screener.ScreenFileRequest) (*screener.ScreeningStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	logx.Infof("Queueing screening: Requester=%s, File=%s", req.RequesterID, req.FileName)

	screening := &screener.Screening{
		ID:           kernel.NewScreeningID(uuid.NewString()),
		RequesterID:  req.RequesterID,
		Status:       screener.StatusPending,
		FilePath:     req.FilePath,
		FileName:     req.FileName,
		ContentType:  req.ContentType,
		Requirements: req.Requirements,
		MaxAttempts:  DefaultMaxAttempts,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, screening); err != nil {
		return nil, screener.ErrScreeningCreateFailed().
			WithDetail("requester_id", req.RequesterID).
			WithDetail("file_name", req.FileName).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	job := &screener.ScreeningJob{
		ScreeningID: screening.ID,
		EnqueuedAt:  time.Now(),
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		screening.MarkFailed("failed to enqueue", map[string]any{
			"error": err.Error(),
		})
		_ = s.repo.Update(ctx, screening)

		return nil, screener.ErrQueueEnqueueFailed().
			WithDetail("screening_id", screening.ID).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	logx.Infof("Screening queued: ScreeningID=%s", screening.ID)

	return statusResponse(screening), nil
}

// ProcessScreeningJob runs one queued screening end to end: read the
// stored file, extract text, parse, score, persist
func (s *Service) ProcessScreeningJob(ctx context.Context, job *screener.ScreeningJob) error {
	screening, err := s.repo.GetByID(ctx, job.ScreeningID)
	if err != nil {
		return screener.ErrScreeningNotFound().
			WithDetail("screening_id", job.ScreeningID)
	}
	if screening.IsTerminal() {
		logx.Warnf("Skipping screening in terminal state: ScreeningID=%s, Status=%s", screening.ID, screening.Status)
		return nil
	}

	logx.Infof("Processing screening: ScreeningID=%s, Attempt=%d/%d",
		screening.ID, screening.AttemptCount+1, screening.MaxAttempts)

	screening.MarkProcessing()
	if err := s.repo.Update(ctx, screening); err != nil {
		return screener.ErrScreeningUpdateFailed().
			WithDetail("screening_id", screening.ID).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	fileData, err := s.files.ReadFile(ctx, screening.FilePath)
	if err != nil {
		return s.handleProcessingError(ctx, screening, "file_read_failed", err)
	}

	text, err := textextract.ExtractText(fileData, screening.ContentType)
	if err != nil {
		return s.handleProcessingError(ctx, screening, "text_extraction_failed", err)
	}

	parsed := s.parser.Parse(text)
	analysis := s.engine.Score(parsed, screening.Requirements)

	screening.MarkCompleted(&parsed, &analysis)
	if err := s.repo.Update(ctx, screening); err != nil {
		return s.handleProcessingError(ctx, screening, "save_failed", err)
	}

	logx.Infof("Screening completed: ScreeningID=%s, Score=%d, Category=%s",
		screening.ID, analysis.MatchScore.Int(), analysis.Category)
	return nil
}

// handleProcessingError applies retry with exponential backoff, or
// marks the screening permanently failed once attempts run out
func (s *Service) handleProcessingError(ctx context.Context, screening *screener.Screening, errorType string, err error) error {
	screening.AttemptCount++

	errorDetails := map[string]any{
		"error":        err.Error(),
		"error_type":   errorType,
		"attempt":      screening.AttemptCount,
		"max_attempts": screening.MaxAttempts,
		"file_path":    screening.FilePath,
	}

	if screening.CanRetry() {
		// Exponential backoff: 2^attempt minutes
		retryDelay := time.Duration(1<<uint(screening.AttemptCount)) * time.Minute
		nextRetry := time.Now().Add(retryDelay)

		logx.Warnf("Screening failed, will retry: ScreeningID=%s, Attempt=%d/%d, NextRetry=%v, Error=%s",
			screening.ID, screening.AttemptCount, screening.MaxAttempts, nextRetry, errorType)

		job := &screener.ScreeningJob{
			ScreeningID:  screening.ID,
			AttemptCount: screening.AttemptCount,
			EnqueuedAt:   time.Now(),
		}
		if queueErr := s.queue.EnqueueDelayed(ctx, job, retryDelay); queueErr != nil {
			logx.Errorf("Failed to enqueue retry: %v", queueErr)

			screening.MarkFailed(fmt.Sprintf("%s (retry enqueue failed)", errorType), errorDetails)
			_ = s.repo.Update(ctx, screening)

			return screener.ErrRetryScheduleFailed().
				WithDetail("screening_id", screening.ID).
				WithDetail("error_type", errorType).
				WithDetails(errorDetails)
		}

		screening.ScheduleRetry(fmt.Sprintf("%s (will retry)", errorType), errorDetails, nextRetry)
		if updateErr := s.repo.Update(ctx, screening); updateErr != nil {
			logx.Errorf("Failed to update screening for retry: %v", updateErr)
		}

		return screener.ErrRegistry.NewWithCause(screener.CodeTextExtractionFailed, err).
			WithDetail("screening_id", screening.ID).
			WithDetail("will_retry", true).
			WithDetail("next_retry_at", nextRetry)
	}

	logx.Errorf("Screening permanently failed: ScreeningID=%s, Error=%s, Attempts=%d/%d",
		screening.ID, errorType, screening.AttemptCount, screening.MaxAttempts)

	screening.MarkFailed(errorType, errorDetails)
	_ = s.repo.Update(ctx, screening)

	return screener.ErrMaxRetriesReached().
		WithDetail("screening_id", screening.ID).
		WithDetail("error_type", errorType).
		WithDetail("final_attempt", screening.AttemptCount).
		WithDetails(errorDetails)
}

// ============================================================================
// Queries
// ============================================================================

// GetScreening returns the full screening record, enforcing ownership
func (s *Service) GetScreening(ctx context.Context, id kernel.ScreeningID, requesterID kernel.UserID) (*screener.Screening, error) {
	screening, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, screener.ErrScreeningNotFound().
			WithDetail("screening_id", id)
	}
	if !screening.BelongsTo(requesterID) {
		return nil, screener.ErrRequesterMismatch().
			WithDetail("screening_id", id)
	}
	return screening, nil
}

// GetStatus returns the lifecycle view of a screening
func (s *Service) GetStatus(ctx context.Context, id kernel.ScreeningID, requesterID kernel.UserID) (*screener.ScreeningStatusResponse, error) {
	screening, err := s.GetScreening(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	return statusResponse(screening), nil
}

// ListScreenings pages through the requester's screenings
func (s *Service) ListScreenings(ctx context.Context, requesterID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[screener.Screening], error) {
	page, err := s.repo.ListByRequester(ctx, requesterID, pagination)
	if err != nil {
		return nil, screener.ErrRegistry.NewWithCause(screener.CodeScreeningNotFound, err).
			WithDetail("requester_id", requesterID)
	}
	return page, nil
}

// DeleteScreening removes a screening record and its stored document
func (s *Service) DeleteScreening(ctx context.Context, id kernel.ScreeningID, requesterID kernel.UserID) error {
	screening, err := s.GetScreening(ctx, id, requesterID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return screener.ErrScreeningUpdateFailed().
			WithDetail("screening_id", id).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}
	if screening.FilePath != "" {
		if err := s.files.DeleteFile(ctx, screening.FilePath); err != nil {
			logx.Warnf("Failed to delete stored document: ScreeningID=%s, Path=%s: %v", id, screening.FilePath, err)
		}
	}
	logx.Infof("Screening deleted: ScreeningID=%s", id)
	return nil
}

// QueueStats reports queue depth
func (s *Service) QueueStats(ctx context.Context) (*screener.QueueStatsResponse, error) {
	ready, err := s.queue.QueueSize(ctx)
	if err != nil {
		return nil, screener.ErrQueueConnectionError().
			WithDetails(map[string]any{"error": err.Error()})
	}
	delayed, err := s.queue.DelayedSize(ctx)
	if err != nil {
		return nil, screener.ErrQueueConnectionError().
			WithDetails(map[string]any{"error": err.Error()})
	}
	return &screener.QueueStatsResponse{
		ReadyJobs:   ready,
		DelayedJobs: delayed,
	}, nil
}

func statusResponse(s *screener.Screening) *screener.ScreeningStatusResponse {
	resp := &screener.ScreeningStatusResponse{
		ScreeningID:  s.ID,
		Status:       s.Status,
		AttemptCount: s.AttemptCount,
		NextRetryAt:  s.NextRetryAt,
		CreatedAt:    s.CreatedAt,
		StartedAt:    s.StartedAt,
		CompletedAt:  s.CompletedAt,
		FailedAt:     s.FailedAt,
	}

	switch s.Status {
	case screener.StatusPending:
		if s.AttemptCount > 0 {
			resp.Message = fmt.Sprintf("Screening pending retry (attempt %d/%d)", s.AttemptCount, s.MaxAttempts)
		} else {
			resp.Message = "Screening queued and waiting to be processed"
		}
	case screener.StatusProcessing:
		resp.Message = "Screening in progress"
	case screener.StatusCompleted:
		resp.Message = "Screening completed"
		resp.Analysis = s.Analysis
	case screener.StatusFailed:
		resp.Message = s.ErrorMessage
	}

	return resp
}
