package auth_test

import (
	"testing"

	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in     string
		want   auth.Role
		wantOK bool
	}{
		{"Admin", auth.RoleAdmin, true},
		{"admin", auth.RoleAdmin, true},
		{"EMPLOYER", auth.RoleEmployer, true},
		{"candidate", auth.RoleCandidate, true},
		{"Recruiter", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := auth.ParseRole(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestActorCanActOn(t *testing.T) {
	owner := kernel.UserID("user-1")
	other := kernel.UserID("user-2")

	tests := []struct {
		name  string
		actor auth.Actor
		owner kernel.UserID
		want  bool
	}{
		{"owner acts on own resource", auth.Actor{UserID: owner, Role: auth.RoleEmployer}, owner, true},
		{"non-owner denied", auth.Actor{UserID: other, Role: auth.RoleEmployer}, owner, false},
		{"admin bypasses ownership", auth.Actor{UserID: other, Role: auth.RoleAdmin}, owner, true},
		{"candidate denied on foreign resource", auth.Actor{UserID: other, Role: auth.RoleCandidate}, owner, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.actor.CanActOn(tt.owner); got != tt.want {
				t.Errorf("CanActOn() = %v, want %v", got, tt.want)
			}
		})
	}
}
