package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/roomgate/roomgate/internal/models"
)

func (d *Database) Connect(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&models.Room{}); err != nil {
		return err
	}

	d.db = db

	return nil
}

// UseCache attaches an optional read-through cache for room lookups.
func (d *Database) UseCache(cache *RoomCache) {
	d.cache = cache
}
