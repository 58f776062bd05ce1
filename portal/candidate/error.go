package candidate

import (
	"net/http"

	"github.com/portalhq/jobboard/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("CANDIDATE")

// Error codes
var (
	CodeCandidateNotFound    = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidate not found")
	CodeProfileNotFound      = ErrRegistry.Register("PROFILE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidate profile not found")
	CodeSkillAlreadyAttached = ErrRegistry.Register("SKILL_ALREADY_ATTACHED", errx.TypeConflict, http.StatusConflict, "Skill is already attached to the candidate")
	CodeSkillNotAttached     = ErrRegistry.Register("SKILL_NOT_ATTACHED", errx.TypeNotFound, http.StatusNotFound, "Skill is not attached to the candidate")
	CodeUnknownSkill         = ErrRegistry.Register("UNKNOWN_SKILL", errx.TypeNotFound, http.StatusNotFound, "Skill does not exist")
	CodeValidationFailed     = ErrRegistry.Register("VALIDATION_FAILED", errx.TypeValidation, http.StatusBadRequest, "Request validation failed")
)

// Helper functions
func ErrCandidateNotFound() *errx.Error {
	return ErrRegistry.New(CodeCandidateNotFound)
}

func ErrProfileNotFound() *errx.Error {
	return ErrRegistry.New(CodeProfileNotFound)
}

func ErrSkillAlreadyAttached() *errx.Error {
	return ErrRegistry.New(CodeSkillAlreadyAttached)
}

func ErrSkillNotAttached() *errx.Error {
	return ErrRegistry.New(CodeSkillNotAttached)
}

func ErrUnknownSkill() *errx.Error {
	return ErrRegistry.New(CodeUnknownSkill)
}

func ErrValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeValidationFailed)
}
