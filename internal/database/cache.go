package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/roomgate/roomgate/internal/models"
)

// RoomCache is a best-effort redis cache in front of room lookups. Every
// failure is treated as a miss; Postgres stays the source of truth.
type RoomCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRoomCache(rdb *redis.Client, ttl time.Duration) *RoomCache {
	return &RoomCache{rdb: rdb, ttl: ttl}
}

func cacheKey(id string) string {
	return "room:" + id
}

func (c *RoomCache) Get(id string) (*models.Room, bool) {
	data, err := c.rdb.Get(context.Background(), cacheKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var room models.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, false
	}
	return &room, true
}

func (c *RoomCache) Put(room *models.Room) {
	data, err := json.Marshal(room)
	if err != nil {
		return
	}
	c.rdb.Set(context.Background(), cacheKey(room.ID.String()), data, c.ttl)
}
