package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"journey-api/internal/models"
	"journey-api/internal/storage"
)

type DB struct {
	Bun *bun.DB
}

func (d *DB) GetUser(id string) (*models.User, error) {
	var user models.User
	err := d.Bun.NewSelect().
		Model(&user).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *DB) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := d.Bun.NewSelect().
		Model(&user).
		Where("username = ?", username).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertUser inserts the user or updates the existing row in place.
// Users are never hard-deleted.
func (d *DB) UpsertUser(user models.User) (*models.User, error) {
	ctx := context.Background()
	user.UpdatedAt = time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	_, err := d.Bun.NewInsert().
		Model(&user).
		On("CONFLICT (id) DO UPDATE").
		Set("username = EXCLUDED.username").
		Set("email = EXCLUDED.email").
		Set("first_name = EXCLUDED.first_name").
		Set("last_name = EXCLUDED.last_name").
		Set("profile_image_url = EXCLUDED.profile_image_url").
		Set("bio = EXCLUDED.bio").
		Set("phone = EXCLUDED.phone").
		Set("location = EXCLUDED.location").
		Set("interests = EXCLUDED.interests").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	return d.GetUser(user.ID)
}

// UpdateProfile applies a partial profile edit and returns the full record.
func (d *DB) UpdateProfile(id string, user models.User) (*models.User, error) {
	user.ID = id
	user.UpdatedAt = time.Now()
	return storage.UpdateAndFetchByID(d.Bun, &user)
}
