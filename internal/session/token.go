package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/holidaze/holidaze-cli/internal/domain"
)

// TokenInfo is what the client can read out of a stored access token
// without the signing key. Display/diagnostics only: verification is the
// server's job and the client never treats these claims as authorization.
type TokenInfo struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry in the past. A token
// without an exp claim never reports expired.
func (t TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

// TokenClaims does an unverified parse of the session's access token.
func TokenClaims(sess *domain.Session) (TokenInfo, error) {
	if !sess.LoggedIn() {
		return TokenInfo{}, domain.ErrNoSession
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(sess.AccessToken, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("failed to parse access token: %w", err)
	}

	info := TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
