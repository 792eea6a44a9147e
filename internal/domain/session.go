package domain

// Session is the single authenticated-user record owned by the session
// store. It is created on login, overwritten on profile update and removed
// on logout. A record without an access token is treated as logged out no
// matter what the other fields say.
type Session struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	VenueManager bool   `json:"venueManager"`
	AccessToken  string `json:"accessToken"`
	Avatar       *Image `json:"avatar,omitempty"`
	Banner       *Image `json:"banner,omitempty"`
}

// LoggedIn reports whether the session carries an access token.
func (s *Session) LoggedIn() bool {
	return s != nil && s.AccessToken != ""
}

// IsManager reports whether the session belongs to a venue manager.
func (s *Session) IsManager() bool {
	return s != nil && s.VenueManager
}

// Image is a remote image reference with optional alt text.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}
