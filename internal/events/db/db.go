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
	"journey-api/internal/utils"
)

type DB struct {
	Bun *bun.DB
}

// ---------------- EVENTS ----------------

// GetAssociationEvents → events run by the association itself, latest
// event date first.
func (d *DB) GetAssociationEvents() ([]models.BookingEvent, error) {
	var events []models.BookingEvent
	err := d.Bun.NewSelect().
		Model(&events).
		Where("is_association_event = ?", true).
		Order("event_date DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetClubEvents → events belonging to a single club, latest event date first.
func (d *DB) GetClubEvents(clubID int64) ([]models.BookingEvent, error) {
	var events []models.BookingEvent
	err := d.Bun.NewSelect().
		Model(&events).
		Where("is_association_event = ?", false).
		Where("club_id = ?", clubID).
		Order("event_date DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetAllEvents → admin listing of every event, most recently created first.
func (d *DB) GetAllEvents() ([]models.BookingEvent, error) {
	var events []models.BookingEvent
	err := d.Bun.NewSelect().
		Model(&events).
		Order("created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetUpcomingEvents → active upcoming events whose date has not passed yet.
func (d *DB) GetUpcomingEvents() ([]models.BookingEvent, error) {
	var events []models.BookingEvent
	err := d.Bun.NewSelect().
		Model(&events).
		Where("is_active = ?", true).
		Where("status = ?", models.EventStatusUpcoming).
		Where("event_date >= ?", time.Now()).
		Order("event_date ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (d *DB) GetUpcomingAssociationEvents() ([]models.BookingEvent, error) {
	var events []models.BookingEvent
	err := d.Bun.NewSelect().
		Model(&events).
		Where("is_association_event = ?", true).
		Where("is_active = ?", true).
		Where("status = ?", models.EventStatusUpcoming).
		Where("event_date >= ?", time.Now()).
		Order("event_date ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (d *DB) GetUpcomingClubEvents(clubID int64) ([]models.BookingEvent, error) {
	var events []models.BookingEvent
	err := d.Bun.NewSelect().
		Model(&events).
		Where("is_association_event = ?", false).
		Where("club_id = ?", clubID).
		Where("is_active = ?", true).
		Where("status = ?", models.EventStatusUpcoming).
		Where("event_date >= ?", time.Now()).
		Order("event_date ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (d *DB) GetEvent(id string) (*models.BookingEvent, error) {
	var event models.BookingEvent
	err := d.Bun.NewSelect().
		Model(&event).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (d *DB) CreateEvent(event models.BookingEvent) (*models.BookingEvent, error) {
	if event.ID == "" {
		event.ID = utils.GenerateEventID()
	}
	if event.Status == "" {
		event.Status = models.EventStatusUpcoming
	}
	event.IsActive = true
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	event.UpdatedAt = time.Now()
	return storage.InsertAndFetch(d.Bun, &event)
}

func (d *DB) UpdateEvent(id string, event models.BookingEvent) (*models.BookingEvent, error) {
	event.ID = id
	event.UpdatedAt = time.Now()
	return storage.UpdateAndFetchByID(d.Bun, &event)
}

// DeleteEvent hard-deletes the event and all of its child rows. Events
// are removed outright, not archived.
func (d *DB) DeleteEvent(id string) error {
	err := d.Bun.RunInTx(context.Background(), nil, func(ctx context.Context, tx bun.Tx) error {
		for _, model := range []interface{}{
			(*models.EventGalleryImage)(nil),
			(*models.EventScheduleDay)(nil),
			(*models.EventReview)(nil),
			(*models.EventPrice)(nil),
		} {
			if _, err := tx.NewDelete().
				Model(model).
				Where("event_id = ?", id).
				Exec(ctx); err != nil {
				return err
			}
		}
		_, err := tx.NewDelete().
			Model((*models.BookingEvent)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete event %s: %w", id, err)
	}
	return nil
}

// ---------------- GALLERY ----------------

func (d *DB) GetEventGallery(eventID string) ([]models.EventGalleryImage, error) {
	var images []models.EventGalleryImage
	err := d.Bun.NewSelect().
		Model(&images).
		Where("event_id = ?", eventID).
		Order("sort_order ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (d *DB) AddEventImage(image models.EventGalleryImage) (*models.EventGalleryImage, error) {
	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now()
	}
	return storage.InsertAndFetch(d.Bun, &image)
}

func (d *DB) DeleteEventImage(id int64) error {
	_, err := d.Bun.NewDelete().
		Model((*models.EventGalleryImage)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}

// ---------------- SCHEDULE ----------------

func (d *DB) GetEventSchedule(eventID string) ([]models.EventScheduleDay, error) {
	var days []models.EventScheduleDay
	err := d.Bun.NewSelect().
		Model(&days).
		Where("event_id = ?", eventID).
		Order("day_number ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (d *DB) AddEventScheduleDay(day models.EventScheduleDay) (*models.EventScheduleDay, error) {
	if day.CreatedAt.IsZero() {
		day.CreatedAt = time.Now()
	}
	return storage.InsertAndFetch(d.Bun, &day)
}

func (d *DB) DeleteEventScheduleDay(id int64) error {
	_, err := d.Bun.NewDelete().
		Model((*models.EventScheduleDay)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}

// ---------------- REVIEWS ----------------

func (d *DB) GetEventReviews(eventID string) ([]models.EventReview, error) {
	var reviews []models.EventReview
	err := d.Bun.NewSelect().
		Model(&reviews).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (d *DB) AddEventReview(review models.EventReview) (*models.EventReview, error) {
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	return storage.InsertAndFetch(d.Bun, &review)
}

func (d *DB) DeleteEventReview(id int64) error {
	_, err := d.Bun.NewDelete().
		Model((*models.EventReview)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}

// ---------------- PRICES ----------------

// GetEventPrices → per-group-size price tiers, smallest group first.
func (d *DB) GetEventPrices(eventID string) ([]models.EventPrice, error) {
	var prices []models.EventPrice
	err := d.Bun.NewSelect().
		Model(&prices).
		Where("event_id = ?", eventID).
		Order("travelers ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return prices, nil
}

func (d *DB) AddEventPrice(price models.EventPrice) (*models.EventPrice, error) {
	return storage.InsertAndFetch(d.Bun, &price)
}

func (d *DB) DeleteEventPrice(id int64) error {
	_, err := d.Bun.NewDelete().
		Model((*models.EventPrice)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}
