package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"journey-api/internal/models"
	"journey-api/internal/storage"
)

type DB struct {
	Bun *bun.DB
}

// ---------------- CLUBS ----------------

// GetClubs → all active clubs, name ascending
func (d *DB) GetClubs() ([]models.Club, error) {
	var clubs []models.Club
	err := d.Bun.NewSelect().
		Model(&clubs).
		Where("is_active = ?", true).
		Order("name ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return clubs, nil
}

func (d *DB) GetClub(id int64) (*models.Club, error) {
	var club models.Club
	err := d.Bun.NewSelect().
		Model(&club).
		Where("id = ?", id).
		Where("is_active = ?", true).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (d *DB) GetClubBySlug(slug string) (*models.Club, error) {
	var club models.Club
	err := d.Bun.NewSelect().
		Model(&club).
		Where("slug = ?", slug).
		Where("is_active = ?", true).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (d *DB) CreateClub(club models.Club) (*models.Club, error) {
	club.IsActive = true
	if club.CreatedAt.IsZero() {
		club.CreatedAt = time.Now()
	}
	club.UpdatedAt = time.Now()
	return storage.InsertAndFetch(d.Bun, &club)
}

func (d *DB) UpdateClub(id int64, club models.Club) (*models.Club, error) {
	club.ID = id
	club.UpdatedAt = time.Now()
	return storage.UpdateAndFetchByID(d.Bun, &club)
}

// DeleteClub → soft delete; existing references keep resolving by id.
func (d *DB) DeleteClub(id int64) error {
	_, err := d.Bun.NewUpdate().
		Model((*models.Club)(nil)).
		Set("is_active = ?", false).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}

// ---------------- MEMBERSHIPS ----------------

// JoinClub reactivates or inserts the (user, club) membership and
// recomputes member_count inside one transaction. The existing-row lookup
// deliberately ignores is_active so a re-join reuses the original row and
// an already-active join stays idempotent.
func (d *DB) JoinClub(userID string, clubID int64) (*models.ClubMembership, error) {
	var membership models.ClubMembership

	err := d.Bun.RunInTx(context.Background(), nil, func(ctx context.Context, tx bun.Tx) error {
		var existing models.ClubMembership
		err := tx.NewSelect().
			Model(&existing).
			Where("user_id = ?", userID).
			Where("club_id = ?", clubID).
			Limit(1).
			Scan(ctx)

		switch {
		case err == nil:
			existing.IsActive = true
			if _, err := tx.NewUpdate().
				Model(&existing).
				Column("is_active").
				WherePK().
				Exec(ctx); err != nil {
				return err
			}
			membership = existing
		case errors.Is(err, sql.ErrNoRows):
			membership = models.ClubMembership{
				UserID:   userID,
				ClubID:   clubID,
				Role:     "member",
				JoinedAt: time.Now(),
				IsActive: true,
			}
			if _, err := tx.NewInsert().Model(&membership).Exec(ctx); err != nil {
				return err
			}
		default:
			return err
		}

		return recomputeMemberCount(ctx, tx, clubID)
	})
	if err != nil {
		return nil, fmt.Errorf("join club %d: %w", clubID, err)
	}
	return &membership, nil
}

// LeaveClub deactivates the membership and recomputes member_count in the
// same transaction. Leaving a club never joined is a no-op on the count.
func (d *DB) LeaveClub(userID string, clubID int64) error {
	err := d.Bun.RunInTx(context.Background(), nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().
			Model((*models.ClubMembership)(nil)).
			Set("is_active = ?", false).
			Where("user_id = ?", userID).
			Where("club_id = ?", clubID).
			Exec(ctx); err != nil {
			return err
		}
		return recomputeMemberCount(ctx, tx, clubID)
	})
	if err != nil {
		return fmt.Errorf("leave club %d: %w", clubID, err)
	}
	return nil
}

// recomputeMemberCount re-counts active memberships rather than
// incrementing, so the stored count can never drift from the truth.
func recomputeMemberCount(ctx context.Context, tx bun.Tx, clubID int64) error {
	count, err := tx.NewSelect().
		Model((*models.ClubMembership)(nil)).
		Where("club_id = ?", clubID).
		Where("is_active = ?", true).
		Count(ctx)
	if err != nil {
		return err
	}
	_, err = tx.NewUpdate().
		Model((*models.Club)(nil)).
		Set("member_count = ?", count).
		Where("id = ?", clubID).
		Exec(ctx)
	return err
}

func (d *DB) GetUserClubMemberships(userID string) ([]models.ClubMembership, error) {
	var memberships []models.ClubMembership
	err := d.Bun.NewSelect().
		Model(&memberships).
		Where("user_id = ?", userID).
		Where("is_active = ?", true).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

func (d *DB) GetClubMembers(clubID int64) ([]models.ClubMembership, error) {
	var memberships []models.ClubMembership
	err := d.Bun.NewSelect().
		Model(&memberships).
		Where("club_id = ?", clubID).
		Where("is_active = ?", true).
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

func (d *DB) IsClubMember(userID string, clubID int64) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.ClubMembership)(nil)).
		Where("user_id = ?", userID).
		Where("club_id = ?", clubID).
		Where("is_active = ?", true).
		Exists(context.Background())
}

// ---------------- GALLERY ----------------

func (d *DB) GetClubGallery(clubID int64) ([]models.ClubGalleryImage, error) {
	var images []models.ClubGalleryImage
	err := d.Bun.NewSelect().
		Model(&images).
		Where("club_id = ?", clubID).
		Order("uploaded_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (d *DB) AddClubImage(clubID int64, imageURL, caption, uploadedBy string) (*models.ClubGalleryImage, error) {
	image := models.ClubGalleryImage{
		ClubID:     clubID,
		ImageURL:   imageURL,
		Caption:    caption,
		UploadedBy: uploadedBy,
		UploadedAt: time.Now(),
	}
	return storage.InsertAndFetch(d.Bun, &image)
}
