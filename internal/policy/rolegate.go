package policy

import "github.com/holidaze/holidaze-cli/internal/domain"

// Redirect targets for sessions denied access to the manager area.
const (
	RedirectLogin   = "login"
	RedirectProfile = "profile"
)

// Decision is the outcome of a role gate check. When Allow is false,
// Redirect names where the caller should send the user instead. The gate
// only decides; navigation belongs to the caller.
type Decision struct {
	Allow    bool
	Redirect string
}

// ManagerAccess decides whether the current session may reach manager-only
// operations. No session (or a token-less record) redirects to login; a
// logged-in customer redirects to the profile area.
func ManagerAccess(sess *domain.Session) Decision {
	if !sess.LoggedIn() {
		return Decision{Redirect: RedirectLogin}
	}
	if !sess.VenueManager {
		return Decision{Redirect: RedirectProfile}
	}
	return Decision{Allow: true}
}
