package profile

import "github.com/google/uuid"

type EventType string

const (
	EventTypeReplaced       EventType = "profile.replaced"
	EventTypeAvatarReplaced EventType = "avatar.replaced"
)

type Event struct {
	EventType EventType `json:"event_type"`
	OwnerID   uuid.UUID `json:"owner_id"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	// PreviousAvatarPublicID is the asset superseded by an avatar upload.
	PreviousAvatarPublicID string `json:"previous_avatar_public_id,omitempty"`
}
