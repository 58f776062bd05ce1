package auth

import "strings"

// Role is the closed set of account roles. There is no open-ended role
// string anywhere else in the system; everything parses into one of these.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleEmployer  Role = "Employer"
	RoleCandidate Role = "Candidate"
)

// ParseRole matches case-insensitively against the known roles.
func ParseRole(raw string) (Role, bool) {
	for _, r := range []Role{RoleAdmin, RoleEmployer, RoleCandidate} {
		if strings.EqualFold(raw, string(r)) {
			return r, true
		}
	}
	return "", false
}

func (r Role) String() string { return string(r) }
