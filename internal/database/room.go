package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/roomgate/roomgate/internal/apperrors"
	"github.com/roomgate/roomgate/internal/models"
)

// Insert persists a freshly created room. The caller has already validated
// the record and assigned its id.
func (d *Database) Insert(room *models.Room) error {
	if err := d.db.Create(room).Error; err != nil {
		return &apperrors.RepositoryError{Err: err}
	}
	if d.cache != nil {
		d.cache.Put(room)
	}
	return nil
}

// GetByID returns the room or NotFoundError. Cache hits skip Postgres; cache
// failures fall through to it.
func (d *Database) GetByID(id string) (*models.Room, error) {
	if d.cache != nil {
		if room, ok := d.cache.Get(id); ok {
			return room, nil
		}
	}

	var room models.Room
	if err := d.db.First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{ID: id}
		}
		return nil, &apperrors.RepositoryError{Err: err}
	}

	if d.cache != nil {
		d.cache.Put(&room)
	}

	return &room, nil
}

// UpdateState applies a state transition and returns the updated record.
// The cache entry is replaced before returning so a subsequent read cannot
// observe the stale state.
func (d *Database) UpdateState(id string, state models.RoomState) (*models.Room, error) {
	var room models.Room
	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, "id = ?", id).Error; err != nil {
			return err
		}
		room.State = state
		return tx.Save(&room).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{ID: id}
		}
		return nil, &apperrors.RepositoryError{Err: err}
	}

	if d.cache != nil {
		d.cache.Put(&room)
	}

	return &room, nil
}
