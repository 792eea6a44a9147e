package api

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const authBase = "https://v2.api.noroff.dev/auth"

func TestAuth_Login(t *testing.T) {
	doer := &fakeDoer{t: t, responses: []json.RawMessage{
		json.RawMessage(`{"data":{"name":"ola","email":"ola@stud.noroff.no","accessToken":"tok-123"},"meta":{}}`),
	}}
	auth := NewAuth(doer, authBase)

	result, err := auth.Login(context.Background(), Credentials{Email: "ola@stud.noroff.no", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "ola", result.Name)
	assert.Equal(t, "tok-123", result.AccessToken)

	req := doer.requests[0]
	assert.Equal(t, authBase+"/login", req.URL)
	assert.True(t, req.Anonymous, "login must never carry a stored token")
}

func TestAuth_Register(t *testing.T) {
	doer := &fakeDoer{t: t, responses: []json.RawMessage{
		json.RawMessage(`{"data":{"name":"kari","email":"kari@stud.noroff.no","venueManager":true},"meta":{}}`),
	}}
	auth := NewAuth(doer, authBase)

	profile, err := auth.Register(context.Background(), Registration{
		Name: "kari", Email: "kari@stud.noroff.no", Password: "pw", VenueManager: true,
	})
	require.NoError(t, err)
	assert.True(t, profile.VenueManager)

	req := doer.requests[0]
	assert.Equal(t, authBase+"/register", req.URL)
	assert.True(t, req.Anonymous)
}
