package server

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/roomgate/roomgate/internal/config"
	"github.com/roomgate/roomgate/internal/database"
	"github.com/roomgate/roomgate/internal/events"
	"github.com/roomgate/roomgate/internal/handlers"
	"github.com/roomgate/roomgate/internal/rooms"
	"github.com/roomgate/roomgate/internal/tokens"
	"github.com/roomgate/roomgate/pkg/auth"
)

type Server struct {
	Router *gin.Engine
	Config *config.Config
	DB     *database.Database
	Hub    *events.Hub
}

func NewServer() *Server {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(cfg.DatabaseURL); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb := redis.NewClient(redisOpts)
		dbConn.UseCache(database.NewRoomCache(rdb, cfg.RoomCacheTTL))
	}

	hub := events.NewHub()
	go hub.Run()

	roomService := rooms.NewService(dbConn, hub)
	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	issuer := tokens.NewIssuer(roomService, jwtMgr, cfg.TokenTTL, cfg.RTCEndpoint)

	roomH := handlers.NewRoomHandler(roomService)
	tokenH := handlers.NewTokenHandler(issuer)
	eventsH := handlers.NewEventsHandler(hub)

	if cfg.AdminKeyHash == "" {
		log.Println("ADMIN_KEY_HASH not set, room create/close are unprotected")
	}

	router := gin.Default()
	APIEndpoints(router, cfg, roomH, tokenH, eventsH)

	return &Server{
		Router: router,
		Config: cfg,
		DB:     dbConn,
		Hub:    hub,
	}
}

func (s *Server) Run() {
	log.Printf("Server starting on port %s", s.Config.Port)
	if err := s.Router.Run(":" + s.Config.Port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
