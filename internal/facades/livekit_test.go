package facades

import (
	"context"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPURL(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"wss://media.example.com", "https://media.example.com"},
		{"ws://localhost:7880", "http://localhost:7880"},
		{"https://media.example.com", "https://media.example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, toHTTPURL(tt.in))
	}
}

func TestMintJoinToken(t *testing.T) {
	apiSecret := "livekit-test-secret-livekit-test-secret"
	f := NewLiveKitFacade("wss://media.example.com", "api-key", apiSecret)

	cred, err := f.MintJoinToken(context.Background(), "user-123", "alice", "standup")
	assert.NoError(t, err)
	assert.Equal(t, "standup", cred.RoomName)
	assert.Equal(t, "user-123", cred.ParticipantIdentity)
	assert.Equal(t, "wss://media.example.com", cred.URL)
	assert.NotEmpty(t, cred.Token)

	// The token must be signed with the API secret and carry a video grant
	// scoped to the requested room.
	token, err := jwtlib.Parse(cred.Token, func(token *jwtlib.Token) (interface{}, error) {
		return []byte(apiSecret), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwtlib.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "user-123", claims["sub"])

	video, ok := claims["video"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "standup", video["room"])
	assert.Equal(t, true, video["roomJoin"])
	assert.Equal(t, true, video["canPublish"])
	assert.Equal(t, true, video["canSubscribe"])
}
