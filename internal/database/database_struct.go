package database

import "gorm.io/gorm"

type Database struct {
	db    *gorm.DB
	cache *RoomCache
}

func NewDatabase(db *gorm.DB, cache *RoomCache) *Database {
	return &Database{db: db, cache: cache}
}
