package policy

import (
	"testing"

	"github.com/holidaze/holidaze-cli/internal/domain"
)

func TestManagerAccess(t *testing.T) {
	tests := []struct {
		name         string
		sess         *domain.Session
		wantAllow    bool
		wantRedirect string
	}{
		{"no session", nil, false, RedirectLogin},
		{"record without token is logged out", &domain.Session{Name: "ola", VenueManager: true}, false, RedirectLogin},
		{"customer", &domain.Session{Name: "ola", AccessToken: "tok"}, false, RedirectProfile},
		{"venue manager", &domain.Session{Name: "kari", AccessToken: "tok", VenueManager: true}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ManagerAccess(tt.sess)
			if got.Allow != tt.wantAllow {
				t.Errorf("Allow = %v, want %v", got.Allow, tt.wantAllow)
			}
			if got.Redirect != tt.wantRedirect {
				t.Errorf("Redirect = %q, want %q", got.Redirect, tt.wantRedirect)
			}
		})
	}
}
