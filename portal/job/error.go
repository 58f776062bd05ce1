package job

import (
	"net/http"

	"github.com/portalhq/jobboard/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound           = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeOnlyEmployersCanPost  = ErrRegistry.Register("ONLY_EMPLOYERS_CAN_POST", errx.TypeAuthorization, http.StatusForbidden, "Only employers with a company profile can create jobs")
	CodeInvalidSalaryRange    = ErrRegistry.Register("INVALID_SALARY_RANGE", errx.TypeValidation, http.StatusBadRequest, "Salary minimum cannot be greater than salary maximum")
	CodeInvalidEmploymentType = ErrRegistry.Register("INVALID_EMPLOYMENT_TYPE", errx.TypeValidation, http.StatusBadRequest, "Unknown employment type")
	CodeNotJobOwner           = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "You do not own this job")
	CodeJobHasApplications    = ErrRegistry.Register("HAS_APPLICATIONS", errx.TypeBusiness, http.StatusConflict, "Cannot delete job with applications")
	CodeValidationFailed      = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Request validation failed")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrOnlyEmployersCanPost() *errx.Error {
	return ErrRegistry.New(CodeOnlyEmployersCanPost)
}

func ErrInvalidSalaryRange() *errx.Error {
	return ErrRegistry.New(CodeInvalidSalaryRange)
}

func ErrInvalidEmploymentType() *errx.Error {
	return ErrRegistry.New(CodeInvalidEmploymentType)
}

func ErrNotJobOwner() *errx.Error {
	return ErrRegistry.New(CodeNotJobOwner)
}

func ErrJobHasApplications() *errx.Error {
	return ErrRegistry.New(CodeJobHasApplications)
}

func ErrValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeValidationFailed)
}
