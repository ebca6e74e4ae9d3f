package models

// Event types published to the audit stream.
const (
	EventRoomCreated = "room_created"
	EventRoomDeleted = "room_deleted"
	EventUserJoined  = "user_joined"
	EventUserLeft    = "user_left"
)

// Event is a room/membership change published to Kafka for audit and analytics.
type Event struct {
	EventID   string `json:"event_id"`          // Unique event ID
	Timestamp int64  `json:"timestamp"`         // Unix time of the event
	Type      string `json:"type"`              // One of the Event* constants
	RoomID    string `json:"room_id"`           // Affected room
	UserID    string `json:"user_id,omitempty"` // Acting user, empty for room lifecycle events
}
