package domain

import (
	"strings"
	"time"
)

// Venue is a bookable venue as returned by the remote API. The client only
// ever holds transient read copies; the API owns the record.
type Venue struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Media       []Image   `json:"media"`
	Price       float64   `json:"price"`
	MaxGuests   int       `json:"maxGuests"`
	Rating      float64   `json:"rating"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
	Meta        VenueMeta `json:"meta"`
	Location    Location  `json:"location"`
	Owner       *Profile  `json:"owner,omitempty"`
	Bookings    []Booking `json:"bookings,omitempty"`
}

// VenueMeta holds the venue amenity flags.
type VenueMeta struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// Location holds the venue address. Every field is optional on the remote
// side; lat/lng default to zero.
type Location struct {
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	Zip       string  `json:"zip,omitempty"`
	Country   string  `json:"country,omitempty"`
	Continent string  `json:"continent,omitempty"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// Validate checks the fields this client is in a position to reject before
// sending a create/update request. The remote API remains the source of
// truth for correctness.
func (v *Venue) Validate() error {
	if err := v.ValidateName(); err != nil {
		return err
	}
	if err := v.ValidatePrice(); err != nil {
		return err
	}
	return v.ValidateMaxGuests()
}

// ValidateName validates the venue name.
func (v *Venue) ValidateName() error {
	if strings.TrimSpace(v.Name) == "" {
		return ErrInvalidVenueName
	}
	return nil
}

// ValidatePrice validates the nightly price.
func (v *Venue) ValidatePrice() error {
	if v.Price <= 0 {
		return ErrInvalidVenuePrice
	}
	return nil
}

// ValidateMaxGuests validates the guest capacity.
func (v *Venue) ValidateMaxGuests() error {
	if v.MaxGuests < 1 {
		return ErrInvalidMaxGuests
	}
	return nil
}
