package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/roomgate/roomgate/internal/models"
)

func testClient(hub *Hub, buffer int) *Client {
	return &Client{
		ID:   uuid.New(),
		Send: make(chan []byte, buffer),
		Hub:  hub,
	}
}

func TestHub_BroadcastsLifecycleEvents(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Shutdown()

	client := testClient(hub, 32)
	hub.Register(client)

	room := &models.Room{ID: uuid.New(), Name: "Standup", State: models.RoomClosed}
	hub.RoomClosed(room)

	select {
	case data := <-client.Send:
		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			t.Fatalf("Broadcast is not valid JSON: %v", err)
		}
		if event.Type != TypeRoomClosed {
			t.Errorf("Expected event type %q, got %q", TypeRoomClosed, event.Type)
		}
		if event.Room == nil || event.Room.ID != room.ID {
			t.Errorf("Expected room %s in event, got %+v", room.ID, event.Room)
		}
	case <-time.After(time.Second):
		t.Fatal("No broadcast received within 1s")
	}
}

func TestHub_DropsSlowConsumer(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Shutdown()

	slow := testClient(hub, 1)
	slow.Send <- []byte("stuck") // queue already full
	hub.Register(slow)

	healthy := testClient(hub, 32)
	hub.Register(healthy)

	room := &models.Room{ID: uuid.New(), Name: "Standup", State: models.RoomScheduled}
	hub.RoomCreated(room)
	hub.RoomCreated(room)

	// The healthy client keeps receiving.
	for i := 0; i < 2; i++ {
		select {
		case <-healthy.Send:
		case <-time.After(time.Second):
			t.Fatal("Healthy client stopped receiving broadcasts")
		}
	}

	// The slow client's channel gets closed after the drop.
	<-slow.Send // drain the stuck message
	select {
	case _, ok := <-slow.Send:
		if ok {
			return // one buffered broadcast slipped in before the drop; channel close follows
		}
	case <-time.After(time.Second):
		t.Fatal("Slow client was not dropped")
	}
}
