package skill

import (
	"net/http"

	"github.com/portalhq/jobboard/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("SKILL")

// Error codes
var (
	CodeSkillNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Skill not found")
	CodeSkillAlreadyExists = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Skill already exists")
	CodeNameRequired       = ErrRegistry.Register("NAME_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Skill name is required")
)

// Helper functions
func ErrSkillNotFound() *errx.Error {
	return ErrRegistry.New(CodeSkillNotFound)
}

func ErrSkillAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeSkillAlreadyExists)
}

func ErrNameRequired() *errx.Error {
	return ErrRegistry.New(CodeNameRequired)
}
