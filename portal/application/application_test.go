package application_test

import (
	"testing"

	"github.com/portalhq/jobboard/portal/application"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   application.ApplicationStatus
		wantOK bool
	}{
		{"Pending", application.StatusPending, true},
		{"pending", application.StatusPending, true},
		{"SHORTLISTED", application.StatusShortlisted, true},
		{"Accepted", application.StatusAccepted, true},
		{"rejected", application.StatusRejected, true},
		{"Withdrawn", "", false},
		{"Pending ", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := application.ParseStatus(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseStatus(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
