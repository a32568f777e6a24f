package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roomgate/roomgate/internal/handlers/dto"
	"github.com/roomgate/roomgate/internal/rooms"
)

type RoomHandler struct {
	service *rooms.Service
}

func NewRoomHandler(service *rooms.Service) *RoomHandler {
	return &RoomHandler{service: service}
}

// CreateRoom schedules a new room.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.service.Create(rooms.CreateInput{
		Name:      req.Name,
		Capacity:  req.Capacity,
		StartAt:   req.StartAt,
		EndAt:     req.EndAt,
		Timezone:  req.Timezone,
		Recurring: req.Recurring,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

// GetRoom returns one room by id.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.service.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// CloseRoom moves the room to its terminal state. Already-closed rooms are
// accepted and returned as-is.
func (h *RoomHandler) CloseRoom(c *gin.Context) {
	room, err := h.service.Close(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}
