package server

import (
	"github.com/gin-gonic/gin"

	"github.com/roomgate/roomgate/internal/config"
	"github.com/roomgate/roomgate/internal/handlers"
	"github.com/roomgate/roomgate/internal/middleware"
)

func APIEndpoints(r *gin.Engine, cfg *config.Config, roomH *handlers.RoomHandler, tokenH *handlers.TokenHandler, eventsH *handlers.EventsHandler) {
	admin := middleware.AdminKey(cfg.AdminKeyHash)

	api := r.Group("/api/v1")
	{
		api.POST("/rooms", admin, roomH.CreateRoom)
		api.GET("/rooms/:id", roomH.GetRoom)
		api.POST("/rooms/:id/close", admin, roomH.CloseRoom)
		api.POST("/rooms/:id/token", tokenH.IssueToken)
	}

	r.GET("/ws/events", eventsH.Stream)
}
