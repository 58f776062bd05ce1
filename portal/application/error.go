package application

import (
	"net/http"

	"github.com/portalhq/jobboard/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeApplicationNotFound    = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeOnlyCandidatesCanApply = ErrRegistry.Register("ONLY_CANDIDATES_CAN_APPLY", errx.TypeAuthorization, http.StatusForbidden, "Only candidates with a profile can apply")
	CodeJobExpired             = ErrRegistry.Register("JOB_EXPIRED", errx.TypeBusiness, http.StatusBadRequest, "This job is expired")
	CodeAlreadyApplied         = ErrRegistry.Register("ALREADY_APPLIED", errx.TypeConflict, http.StatusConflict, "You have already applied for this job")
	CodeInvalidStatus          = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Invalid status. Allowed: Pending, Shortlisted, Accepted, Rejected")
	CodeNotJobOwner            = ErrRegistry.Register("NOT_JOB_OWNER", errx.TypeAuthorization, http.StatusForbidden, "You do not own this job")
	CodeValidationFailed       = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Request validation failed")
)

// Helper functions
func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrOnlyCandidatesCanApply() *errx.Error {
	return ErrRegistry.New(CodeOnlyCandidatesCanApply)
}

func ErrJobExpired() *errx.Error {
	return ErrRegistry.New(CodeJobExpired)
}

func ErrAlreadyApplied() *errx.Error {
	return ErrRegistry.New(CodeAlreadyApplied)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrNotJobOwner() *errx.Error {
	return ErrRegistry.New(CodeNotJobOwner)
}

func ErrValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeValidationFailed)
}
