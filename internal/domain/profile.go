package domain

// Profile is a user profile as served by the remote API.
type Profile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Bio          string `json:"bio,omitempty"`
	VenueManager bool   `json:"venueManager"`
	Avatar       *Image `json:"avatar,omitempty"`
	Banner       *Image `json:"banner,omitempty"`
}
