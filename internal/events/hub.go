package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/roomgate/roomgate/internal/models"
)

type EventType string

const (
	TypeRoomCreated EventType = "room_created"
	TypeRoomClosed  EventType = "room_closed"
)

type Event struct {
	Type      EventType    `json:"type"`
	Room      *models.Room `json:"room"`
	Timestamp time.Time    `json:"timestamp"`
}

// Hub fans lifecycle events out to every connected subscriber. It is
// broadcast-only: clients send nothing but ping/pong. The clients map is
// touched only by the Run goroutine, so no lock is needed.
type Hub struct {
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan *Event

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Event, 64),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.clients[client.ID] = client

		case client := <-h.unregister:
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}

		case event := <-h.broadcast:
			h.dispatch(event)
		}
	}
}

func (h *Hub) dispatch(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("events: marshal failed: %v", err)
		return
	}

	for id, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			// Slow consumer, drop the connection.
			delete(h.clients, id)
			close(client.Send)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Publish queues an event for broadcast without blocking the caller.
func (h *Hub) Publish(event *Event) {
	select {
	case h.broadcast <- event:
	default:
		log.Printf("events: broadcast queue full, dropping %s", event.Type)
	}
}

// RoomCreated implements rooms.Publisher.
func (h *Hub) RoomCreated(room *models.Room) {
	h.Publish(&Event{Type: TypeRoomCreated, Room: room, Timestamp: time.Now()})
}

// RoomClosed implements rooms.Publisher.
func (h *Hub) RoomClosed(room *models.Room) {
	h.Publish(&Event{Type: TypeRoomClosed, Room: room, Timestamp: time.Now()})
}

func (h *Hub) Shutdown() {
	h.cancel()
}
