package user

import (
	"time"

	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
)

type User struct {
	ID           kernel.UserID `db:"id" json:"id"`
	FullName     string        `db:"full_name" json:"full_name"`
	Email        kernel.Email  `db:"email" json:"email"`
	PasswordHash string        `db:"password_hash" json:"-"`
	Role         auth.Role     `db:"role" json:"role"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
}
