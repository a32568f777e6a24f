package rooms

import (
	"errors"
	"strings"
	"testing"

	"github.com/roomgate/roomgate/internal/apperrors"
	"github.com/roomgate/roomgate/internal/models"
)

type memRepository struct {
	rooms   map[string]*models.Room
	failAll bool
}

func newMemRepository() *memRepository {
	return &memRepository{rooms: make(map[string]*models.Room)}
}

func (r *memRepository) Insert(room *models.Room) error {
	if r.failAll {
		return &apperrors.RepositoryError{Err: errors.New("store unavailable")}
	}
	cp := *room
	r.rooms[room.ID.String()] = &cp
	return nil
}

func (r *memRepository) GetByID(id string) (*models.Room, error) {
	if r.failAll {
		return nil, &apperrors.RepositoryError{Err: errors.New("store unavailable")}
	}
	room, ok := r.rooms[id]
	if !ok {
		return nil, &apperrors.NotFoundError{ID: id}
	}
	cp := *room
	return &cp, nil
}

func (r *memRepository) UpdateState(id string, state models.RoomState) (*models.Room, error) {
	if r.failAll {
		return nil, &apperrors.RepositoryError{Err: errors.New("store unavailable")}
	}
	room, ok := r.rooms[id]
	if !ok {
		return nil, &apperrors.NotFoundError{ID: id}
	}
	room.State = state
	cp := *room
	return &cp, nil
}

type recordingPublisher struct {
	created []string
	closed  []string
}

func (p *recordingPublisher) RoomCreated(room *models.Room) {
	p.created = append(p.created, room.ID.String())
}

func (p *recordingPublisher) RoomClosed(room *models.Room) {
	p.closed = append(p.closed, room.ID.String())
}

func capacityOf(v int) *int {
	return &v
}

func validInput() CreateInput {
	return CreateInput{
		Name:     "Standup",
		Capacity: capacityOf(5),
		StartAt:  "2025-01-01T09:00:00Z",
		EndAt:    "2025-01-01T09:30:00Z",
		Timezone: "UTC",
	}
}

func TestCreate_SetsScheduledState(t *testing.T) {
	svc := NewService(newMemRepository(), nil)

	room, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if room.State != models.RoomScheduled {
		t.Errorf("Expected state %q, got %q", models.RoomScheduled, room.State)
	}
	if room.Capacity != 5 {
		t.Errorf("Expected capacity 5, got %d", room.Capacity)
	}
	if room.Name != "Standup" {
		t.Errorf("Expected name 'Standup', got %q", room.Name)
	}
}

func TestCreate_GeneratesUniqueIDs(t *testing.T) {
	svc := NewService(newMemRepository(), nil)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		room, err := svc.Create(validInput())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if seen[room.ID.String()] {
			t.Fatalf("Duplicate room id %s", room.ID)
		}
		seen[room.ID.String()] = true
	}
}

func TestCreate_DefaultCapacity(t *testing.T) {
	svc := NewService(newMemRepository(), nil)

	input := validInput()
	input.Capacity = nil

	room, err := svc.Create(input)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if room.Capacity != 11 {
		t.Errorf("Expected default capacity 11, got %d", room.Capacity)
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateInput)
		wantErr bool
	}{
		{"empty name", func(in *CreateInput) { in.Name = "" }, true},
		{"name at limit", func(in *CreateInput) { in.Name = strings.Repeat("a", 100) }, false},
		{"name over limit", func(in *CreateInput) { in.Name = strings.Repeat("a", 101) }, true},
		{"capacity 0", func(in *CreateInput) { in.Capacity = capacityOf(0) }, true},
		{"capacity below range", func(in *CreateInput) { in.Capacity = capacityOf(-1) }, true},
		{"capacity 1", func(in *CreateInput) { in.Capacity = capacityOf(1) }, false},
		{"capacity 11", func(in *CreateInput) { in.Capacity = capacityOf(11) }, false},
		{"capacity 12", func(in *CreateInput) { in.Capacity = capacityOf(12) }, true},
		{"malformed start", func(in *CreateInput) { in.StartAt = "yesterday" }, true},
		{"malformed end", func(in *CreateInput) { in.EndAt = "2025-13-99" }, true},
		{"missing timezone", func(in *CreateInput) { in.Timezone = "" }, true},
		{"end before start accepted", func(in *CreateInput) {
			in.StartAt = "2025-01-01T10:00:00Z"
			in.EndAt = "2025-01-01T09:00:00Z"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepository()
			svc := NewService(repo, nil)

			input := validInput()
			tt.mutate(&input)

			_, err := svc.Create(input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected validation error, got nil")
				}
				if !apperrors.IsValidation(err) {
					t.Fatalf("Expected ValidationError, got %T: %v", err, err)
				}
				if len(repo.rooms) != 0 {
					t.Error("Validation failure must not persist anything")
				}
			} else if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
		})
	}
}

func TestCreate_RepositoryFailureIsNotValidation(t *testing.T) {
	repo := newMemRepository()
	repo.failAll = true
	svc := NewService(repo, nil)

	_, err := svc.Create(validInput())
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if apperrors.IsValidation(err) {
		t.Error("Repository failure must not surface as ValidationError")
	}
	var re *apperrors.RepositoryError
	if !errors.As(err, &re) {
		t.Errorf("Expected RepositoryError, got %T: %v", err, err)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(newMemRepository(), nil)

	_, err := svc.Get("b3f4c9a0-0000-0000-0000-000000000000")
	if !apperrors.IsNotFound(err) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
}

func TestClose_TransitionsAndSticks(t *testing.T) {
	svc := NewService(newMemRepository(), nil)

	room, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	closed, err := svc.Close(room.ID.String())
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if closed.State != models.RoomClosed {
		t.Errorf("Expected state %q, got %q", models.RoomClosed, closed.State)
	}

	got, err := svc.Get(room.ID.String())
	if err != nil {
		t.Fatalf("Get after close failed: %v", err)
	}
	if got.State != models.RoomClosed {
		t.Errorf("Close did not persist, state is %q", got.State)
	}
}

func TestClose_Idempotent(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewService(newMemRepository(), pub)

	room, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Close(room.ID.String()); err != nil {
		t.Fatalf("First close failed: %v", err)
	}
	again, err := svc.Close(room.ID.String())
	if err != nil {
		t.Fatalf("Second close must be a no-op, got %v", err)
	}
	if again.State != models.RoomClosed {
		t.Errorf("Expected state %q, got %q", models.RoomClosed, again.State)
	}
	if len(pub.closed) != 1 {
		t.Errorf("Expected exactly one closed event, got %d", len(pub.closed))
	}
}

func TestClose_MissingRoom(t *testing.T) {
	svc := NewService(newMemRepository(), nil)

	_, err := svc.Close("b3f4c9a0-0000-0000-0000-000000000000")
	if !apperrors.IsNotFound(err) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
}

func TestLifecycle_PublishesEvents(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewService(newMemRepository(), pub)

	room, err := svc.Create(validInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Close(room.ID.String()); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if len(pub.created) != 1 || pub.created[0] != room.ID.String() {
		t.Errorf("Expected created event for %s, got %v", room.ID, pub.created)
	}
	if len(pub.closed) != 1 || pub.closed[0] != room.ID.String() {
		t.Errorf("Expected closed event for %s, got %v", room.ID, pub.closed)
	}
}
