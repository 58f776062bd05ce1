package company

import (
	"github.com/portalhq/jobboard/pkg/kernel"
)

// Company is an employer profile. Every Employer account owns exactly one;
// it is created with placeholder values at registration and edited later.
type Company struct {
	ID          kernel.CompanyID `db:"id" json:"id"`
	UserID      kernel.UserID    `db:"user_id" json:"user_id"`
	Name        string           `db:"name" json:"name"`
	Industry    string           `db:"industry" json:"industry"`
	City        string           `db:"city" json:"city"`
	Website     string           `db:"website" json:"website,omitempty"`
	Description string           `db:"description" json:"description"`
}
