package facades

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"

	"github.com/sbilibin2017/gw-video-rooms/internal/logger"
	"github.com/sbilibin2017/gw-video-rooms/internal/models"
)

// The token gates only the initial connection; disconnects are handled
// by the media server.
const joinTokenTTL = 24 * time.Hour

// LiveKitFacade wraps the LiveKit server API: minting scoped access tokens
// for participants and managing server-side rooms.
type LiveKitFacade struct {
	url       string
	apiKey    string
	apiSecret string
	client    *lksdk.RoomServiceClient
}

// NewLiveKitFacade creates a facade for the LiveKit server at url
// (ws:// or wss://, as handed to clients).
func NewLiveKitFacade(url, apiKey, apiSecret string) *LiveKitFacade {
	return &LiveKitFacade{
		url:       url,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		client:    lksdk.NewRoomServiceClient(toHTTPURL(url), apiKey, apiSecret),
	}
}

// toHTTPURL converts the websocket URL handed to clients into the HTTP
// endpoint used by the RoomService API.
func toHTTPURL(url string) string {
	url = strings.Replace(url, "wss://", "https://", 1)
	return strings.Replace(url, "ws://", "http://", 1)
}

// MintJoinToken creates a signed access token scoped to one room, with
// publish and subscribe permissions for the given participant.
func (f *LiveKitFacade) MintJoinToken(ctx context.Context, identity, name, roomName string) (*models.JoinCredential, error) {
	canPublish := true
	canSubscribe := true
	canPublishData := true

	at := auth.NewAccessToken(f.apiKey, f.apiSecret)
	grant := &auth.VideoGrant{
		RoomJoin:       true,
		Room:           roomName,
		CanPublish:     &canPublish,
		CanSubscribe:   &canSubscribe,
		CanPublishData: &canPublishData,
	}
	at.AddGrant(grant).
		SetIdentity(identity).
		SetName(name).
		SetValidFor(joinTokenTTL)

	token, err := at.ToJWT()
	if err != nil {
		logger.Log.Errorw("failed to mint join token", "identity", identity, "room", roomName, "error", err)
		return nil, fmt.Errorf("failed to mint join token: %w", err)
	}

	return &models.JoinCredential{
		Token:               token,
		RoomName:            roomName,
		ParticipantIdentity: identity,
		URL:                 f.url,
	}, nil
}

// CreateRoom provisions a room on the LiveKit server with the given cap.
func (f *LiveKitFacade) CreateRoom(ctx context.Context, roomName string, maxParticipants int) error {
	_, err := f.client.CreateRoom(ctx, &livekit.CreateRoomRequest{
		Name:            roomName,
		MaxParticipants: uint32(maxParticipants),
	})
	if err != nil {
		logger.Log.Errorw("failed to create livekit room", "room", roomName, "error", err)
		return fmt.Errorf("failed to create livekit room %q: %w", roomName, err)
	}
	return nil
}

// RevokeRoom deletes a room on the LiveKit server, disconnecting any
// remaining participants.
func (f *LiveKitFacade) RevokeRoom(ctx context.Context, roomName string) error {
	_, err := f.client.DeleteRoom(ctx, &livekit.DeleteRoomRequest{
		Room: roomName,
	})
	if err != nil {
		logger.Log.Errorw("failed to delete livekit room", "room", roomName, "error", err)
		return fmt.Errorf("failed to delete livekit room %q: %w", roomName, err)
	}
	return nil
}
