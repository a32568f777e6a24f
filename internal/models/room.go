package models

import (
	"time"

	"github.com/google/uuid"
)

type RoomState string

const (
	RoomScheduled RoomState = "scheduled"
	RoomClosed    RoomState = "closed"
)

// Room is one schedulable meeting. The ID is assigned by the service at
// creation time, never by the client.
type Room struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Capacity  int       `gorm:"not null;default:11" json:"capacity"`
	StartAt   time.Time `gorm:"not null" json:"start_at"`
	EndAt     time.Time `gorm:"not null" json:"end_at"`
	Timezone  string    `gorm:"not null" json:"timezone"`
	Recurring bool      `gorm:"not null;default:false" json:"recurring"`
	State     RoomState `gorm:"not null;check:state IN ('scheduled','closed')" json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

// Joinable reports whether tokens may still be issued for the room.
func (r *Room) Joinable() bool {
	return r.State != RoomClosed
}
