package rooms

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/roomgate/roomgate/internal/apperrors"
	"github.com/roomgate/roomgate/internal/models"
)

const (
	maxNameLength   = 100
	minCapacity     = 1
	maxCapacity     = 11
	defaultCapacity = 11
)

// Repository is the persistence surface the lifecycle manager needs. The
// gorm implementation lives in internal/database.
type Repository interface {
	Insert(room *models.Room) error
	GetByID(id string) (*models.Room, error)
	UpdateState(id string, state models.RoomState) (*models.Room, error)
}

// Publisher receives lifecycle notifications after a state change has been
// persisted. Implementations must not block.
type Publisher interface {
	RoomCreated(room *models.Room)
	RoomClosed(room *models.Room)
}

// Service owns the room state machine: scheduled (initial) -> closed
// (terminal). All reads and writes of room records go through it.
type Service struct {
	repo Repository
	pub  Publisher
}

func NewService(repo Repository, pub Publisher) *Service {
	return &Service{repo: repo, pub: pub}
}

// CreateInput carries raw client fields. Timestamps arrive as strings so
// that parse failures surface as validation errors here, not in transport.
// Capacity is a pointer so an omitted value (defaults to 11) stays
// distinguishable from an explicit out-of-range zero.
type CreateInput struct {
	Name      string
	Capacity  *int
	StartAt   string
	EndAt     string
	Timezone  string
	Recurring bool
}

// Create validates the input, assigns a fresh id and persists the room in
// the scheduled state. Validation happens before any repository call.
func (s *Service) Create(input CreateInput) (*models.Room, error) {
	if l := utf8.RuneCountInString(input.Name); l < 1 || l > maxNameLength {
		return nil, apperrors.NewValidation("name", "must be 1-100 characters")
	}

	capacity := defaultCapacity
	if input.Capacity != nil {
		capacity = *input.Capacity
	}
	if capacity < minCapacity || capacity > maxCapacity {
		return nil, apperrors.NewValidation("capacity", "must be between 1 and 11")
	}

	startAt, err := time.Parse(time.RFC3339, input.StartAt)
	if err != nil {
		return nil, apperrors.NewValidation("start_at", "must be an RFC 3339 date-time")
	}
	endAt, err := time.Parse(time.RFC3339, input.EndAt)
	if err != nil {
		return nil, apperrors.NewValidation("end_at", "must be an RFC 3339 date-time")
	}

	if input.Timezone == "" {
		return nil, apperrors.NewValidation("timezone", "is required")
	}

	room := &models.Room{
		ID:        uuid.New(),
		Name:      input.Name,
		Capacity:  capacity,
		StartAt:   startAt,
		EndAt:     endAt,
		Timezone:  input.Timezone,
		Recurring: input.Recurring,
		State:     models.RoomScheduled,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Insert(room); err != nil {
		return nil, err
	}

	if s.pub != nil {
		s.pub.RoomCreated(room)
	}

	return room, nil
}

// Get returns the room for id, or NotFoundError.
func (s *Service) Get(id string) (*models.Room, error) {
	return s.repo.GetByID(id)
}

// Close moves the room to the closed state. Closing an already-closed room
// is a no-op that returns the current record; a missing room is
// NotFoundError. Tokens issued before the close keep their natural lifetime.
func (s *Service) Close(id string) (*models.Room, error) {
	room, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room.State == models.RoomClosed {
		return room, nil
	}

	updated, err := s.repo.UpdateState(id, models.RoomClosed)
	if err != nil {
		return nil, err
	}

	if s.pub != nil {
		s.pub.RoomClosed(updated)
	}

	return updated, nil
}
