package screener

import (
	"net/http"

	"github.com/Abraxas-365/sift/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("SCREENING")

// Error codes - Screening Operations
var (
	CodeScreeningNotFound    = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Screening not found")
	CodeInvalidScreeningData = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid screening data")
	CodeEmptyResumeText      = ErrRegistry.Register("EMPTY_TEXT", errx.TypeValidation, http.StatusBadRequest, "Resume text is empty")
	CodeInvalidFileFormat    = ErrRegistry.Register("INVALID_FILE_FORMAT", errx.TypeValidation, http.StatusBadRequest, "Invalid file format")
	CodeFileTooLarge         = ErrRegistry.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusBadRequest, "File exceeds maximum allowed size")
	CodeFileReadFailed       = ErrRegistry.Register("FILE_READ_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to read file")
	CodeTextExtractionFailed = ErrRegistry.Register("TEXT_EXTRACTION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to extract text from document")
	CodeRequesterMismatch    = ErrRegistry.Register("REQUESTER_MISMATCH", errx.TypeAuthorization, http.StatusForbidden, "Screening does not belong to this user")
	CodeScreeningIncomplete  = ErrRegistry.Register("INCOMPLETE", errx.TypeBusiness, http.StatusUnprocessableEntity, "Screening has not completed yet")
	CodeBatchEmpty           = ErrRegistry.Register("BATCH_EMPTY", errx.TypeValidation, http.StatusBadRequest, "Batch contains no resumes")
	CodeBatchTooLarge        = ErrRegistry.Register("BATCH_TOO_LARGE", errx.TypeValidation, http.StatusBadRequest, "Batch exceeds maximum allowed size")
)

// Error codes - Queue Operations
var (
	CodeQueueEnqueueFailed     = ErrRegistry.Register("QUEUE_ENQUEUE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to enqueue screening")
	CodeQueueDequeueFailed     = ErrRegistry.Register("QUEUE_DEQUEUE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to dequeue screening")
	CodeQueueConnectionError   = ErrRegistry.Register("QUEUE_CONNECTION_ERROR", errx.TypeInternal, http.StatusServiceUnavailable, "Queue service unavailable")
	CodeScreeningCreateFailed  = ErrRegistry.Register("CREATE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to create screening record")
	CodeScreeningUpdateFailed  = ErrRegistry.Register("UPDATE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to update screening")
	CodeMaxRetriesReached      = ErrRegistry.Register("MAX_RETRIES", errx.TypeInternal, http.StatusInternalServerError, "Screening exceeded maximum retry attempts")
	CodeRetryScheduleFailed    = ErrRegistry.Register("RETRY_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to schedule screening retry")
	CodeInvalidScreeningStatus = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Invalid screening status")
)

// Helper functions - Screening Operations
func ErrScreeningNotFound() *errx.Error {
	return ErrRegistry.New(CodeScreeningNotFound)
}

func ErrInvalidScreeningData() *errx.Error {
	return ErrRegistry.New(CodeInvalidScreeningData)
}

func ErrEmptyResumeText() *errx.Error {
	return ErrRegistry.New(CodeEmptyResumeText)
}

func ErrInvalidFileFormat() *errx.Error {
	return ErrRegistry.New(CodeInvalidFileFormat)
}

func ErrFileTooLarge() *errx.Error {
	return ErrRegistry.New(CodeFileTooLarge)
}

func ErrFileReadFailed() *errx.Error {
	return ErrRegistry.New(CodeFileReadFailed)
}

func ErrTextExtractionFailed() *errx.Error {
	return ErrRegistry.New(CodeTextExtractionFailed)
}

func ErrRequesterMismatch() *errx.Error {
	return ErrRegistry.New(CodeRequesterMismatch)
}

func ErrScreeningIncomplete() *errx.Error {
	return ErrRegistry.New(CodeScreeningIncomplete)
}

func ErrBatchEmpty() *errx.Error {
	return ErrRegistry.New(CodeBatchEmpty)
}

func ErrBatchTooLarge() *errx.Error {
	return ErrRegistry.New(CodeBatchTooLarge)
}

// Helper functions - Queue Operations
func ErrQueueEnqueueFailed() *errx.Error {
	return ErrRegistry.New(CodeQueueEnqueueFailed)
}

func ErrQueueDequeueFailed() *errx.Error {
	return ErrRegistry.New(CodeQueueDequeueFailed)
}

func ErrQueueConnectionError() *errx.Error {
	return ErrRegistry.New(CodeQueueConnectionError)
}

func ErrScreeningCreateFailed() *errx.Error {
	return ErrRegistry.New(CodeScreeningCreateFailed)
}

func ErrScreeningUpdateFailed() *errx.Error {
	return ErrRegistry.New(CodeScreeningUpdateFailed)
}

func ErrMaxRetriesReached() *errx.Error {
	return ErrRegistry.New(CodeMaxRetriesReached)
}

func ErrRetryScheduleFailed() *errx.Error {
	return ErrRegistry.New(CodeRetryScheduleFailed)
}

func ErrInvalidScreeningStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidScreeningStatus)
}
