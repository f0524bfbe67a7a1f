package jobspec

import (
	"net/http"

	"github.com/Abraxas-365/sift/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("JOBSPEC")

var (
	CodeSpecNotFound        = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job spec not found")
	CodeInvalidSpecData     = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid job spec data")
	CodeOwnerMismatch       = ErrRegistry.Register("OWNER_MISMATCH", errx.TypeAuthorization, http.StatusForbidden, "Job spec does not belong to this user")
	CodeCannotPublish       = ErrRegistry.Register("CANNOT_PUBLISH", errx.TypeBusiness, http.StatusUnprocessableEntity, "Job spec cannot be published in its current state")
	CodeSpecAlreadyArchived = ErrRegistry.Register("ALREADY_ARCHIVED", errx.TypeBusiness, http.StatusUnprocessableEntity, "Job spec is already archived")
	CodeSpecNotArchived     = ErrRegistry.Register("NOT_ARCHIVED", errx.TypeBusiness, http.StatusUnprocessableEntity, "Job spec is not archived")
	CodeSpecNotEditable     = ErrRegistry.Register("NOT_EDITABLE", errx.TypeBusiness, http.StatusUnprocessableEntity, "Archived job specs cannot be edited")
	CodeSpecCreateFailed    = ErrRegistry.Register("CREATE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to create job spec")
	CodeSpecUpdateFailed    = ErrRegistry.Register("UPDATE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to update job spec")
)

func ErrSpecNotFound() *errx.Error {
	return ErrRegistry.New(CodeSpecNotFound)
}

func ErrInvalidSpecData() *errx.Error {
	return ErrRegistry.New(CodeInvalidSpecData)
}

func ErrOwnerMismatch() *errx.Error {
	return ErrRegistry.New(CodeOwnerMismatch)
}

func ErrCannotPublish() *errx.Error {
	return ErrRegistry.New(CodeCannotPublish)
}

func ErrSpecAlreadyArchived() *errx.Error {
	return ErrRegistry.New(CodeSpecAlreadyArchived)
}

func ErrSpecNotArchived() *errx.Error {
	return ErrRegistry.New(CodeSpecNotArchived)
}

func ErrSpecNotEditable() *errx.Error {
	return ErrRegistry.New(CodeSpecNotEditable)
}

func ErrSpecCreateFailed() *errx.Error {
	return ErrRegistry.New(CodeSpecCreateFailed)
}

func ErrSpecUpdateFailed() *errx.Error {
	return ErrRegistry.New(CodeSpecUpdateFailed)
}
