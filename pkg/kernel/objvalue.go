package kernel

import "strings"

// Email is a normalized email address. Comparisons are case-insensitive
// because the value is lowercased on construction.
type Email string

func NewEmail(raw string) Email {
	return Email(strings.ToLower(strings.TrimSpace(raw)))
}

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }

// IsValid does a minimal structural check. Full validation belongs to the
// request layer.
func (e Email) IsValid() bool {
	s := string(e)
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.Contains(s, " ")
}

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "Full-Time"
	EmploymentPartTime   EmploymentType = "Part-Time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentInternship EmploymentType = "Internship"
)

// ParseEmploymentType matches case-insensitively against the known set.
func ParseEmploymentType(raw string) (EmploymentType, bool) {
	for _, t := range []EmploymentType{
		EmploymentFullTime,
		EmploymentPartTime,
		EmploymentContract,
		EmploymentInternship,
	} {
		if strings.EqualFold(raw, string(t)) {
			return t, true
		}
	}
	return "", false
}

func (t EmploymentType) String() string { return string(t) }
