package jobinfra

import "testing"

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name    string
		sortBy  string
		sortDir string
		want    string
	}{
		{"default sort", "", "", "ORDER BY j.created_at DESC"},
		{"created at asc", "createdAt", "asc", "ORDER BY j.created_at ASC"},
		{"salary min", "salaryMin", "desc", "ORDER BY j.salary_min DESC"},
		{"salary min mixed case", "SALARYMIN", "ASC", "ORDER BY j.salary_min ASC"},
		{"title", "title", "asc", "ORDER BY j.title ASC"},
		{"unknown column falls back", "salary_max; DROP TABLE jobs", "asc", "ORDER BY j.created_at ASC"},
		{"unknown direction falls back", "title", "sideways", "ORDER BY j.title DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := orderClause(tt.sortBy, tt.sortDir); got != tt.want {
				t.Errorf("orderClause(%q, %q) = %q, want %q", tt.sortBy, tt.sortDir, got, tt.want)
			}
		})
	}
}
