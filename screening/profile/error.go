package profile

import (
	"net/http"

	"github.com/Abraxas-365/sift/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("PROFILE")

var (
	CodeProfileNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Profile not found")
	CodeInvalidProfileData   = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid profile data")
	CodeOwnerMismatch        = ErrRegistry.Register("OWNER_MISMATCH", errx.TypeAuthorization, http.StatusForbidden, "Profile does not belong to this user")
	CodeProfileAlreadyExists = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "User already has a profile")
	CodeInvalidField         = ErrRegistry.Register("INVALID_FIELD", errx.TypeValidation, http.StatusBadRequest, "Unknown professional field")
	CodeProfileCreateFailed  = ErrRegistry.Register("CREATE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to create profile")
	CodeProfileUpdateFailed  = ErrRegistry.Register("UPDATE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to update profile")
)

func ErrProfileNotFound() *errx.Error {
	return ErrRegistry.New(CodeProfileNotFound)
}

func ErrInvalidProfileData() *errx.Error {
	return ErrRegistry.New(CodeInvalidProfileData)
}

func ErrOwnerMismatch() *errx.Error {
	return ErrRegistry.New(CodeOwnerMismatch)
}

func ErrProfileAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeProfileAlreadyExists)
}

func ErrInvalidField() *errx.Error {
	return ErrRegistry.New(CodeInvalidField)
}

func ErrProfileCreateFailed() *errx.Error {
	return ErrRegistry.New(CodeProfileCreateFailed)
}

func ErrProfileUpdateFailed() *errx.Error {
	return ErrRegistry.New(CodeProfileUpdateFailed)
}
