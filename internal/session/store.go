// Package session persists the single authenticated-user record. It is the
// only package that touches local storage; everything else reads the session
// through the Store interface or the gateway's SessionSource.
package session

import "github.com/holidaze/holidaze-cli/internal/domain"

// Store is the session persistence contract. Save overwrites any prior
// record atomically from the caller's perspective; Load returns (nil, nil)
// when no record has ever been saved or it was cleared; Clear removes it.
// Whatever shape was saved is trusted verbatim on read: no expiry, no
// schema validation.
type Store interface {
	Save(sess *domain.Session) error
	Load() (*domain.Session, error)
	Clear() error
}
