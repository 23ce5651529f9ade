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

func (d *DB) CreateBooking(booking models.BookingTicket) (*models.BookingTicket, error) {
	if booking.BookingReference == "" {
		booking.BookingReference = utils.GenerateBookingReference()
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = models.PaymentStatusPending
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	booking.UpdatedAt = time.Now()
	return storage.InsertAndFetch(d.Bun, &booking)
}

// GetBookingByReference is a pure read: an unknown reference returns
// storage.ErrNotFound and writes nothing.
func (d *DB) GetBookingByReference(reference string) (*models.BookingTicket, error) {
	var booking models.BookingTicket
	err := d.Bun.NewSelect().
		Model(&booking).
		Where("booking_reference = ?", reference).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (d *DB) GetBooking(id int64) (*models.BookingTicket, error) {
	var booking models.BookingTicket
	err := d.Bun.NewSelect().
		Model(&booking).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetBookings → all tickets, newest first (admin listing).
func (d *DB) GetBookings() ([]models.BookingTicket, error) {
	var bookings []models.BookingTicket
	err := d.Bun.NewSelect().
		Model(&bookings).
		Order("created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (d *DB) GetEventBookings(eventID string) ([]models.BookingTicket, error) {
	var bookings []models.BookingTicket
	err := d.Bun.NewSelect().
		Model(&bookings).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (d *DB) GetUserBookings(userID string) ([]models.BookingTicket, error) {
	var bookings []models.BookingTicket
	err := d.Bun.NewSelect().
		Model(&bookings).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBookingStatus applies a lifecycle transition plus the side fields
// that ride along with it. Confirmation marks payment completed and stamps
// confirmed_at; cancellation stamps cancelled_at and records the reason
// when one is given, leaving any prior reason untouched otherwise.
// Payment method and transaction id are persisted whenever supplied,
// whatever the target status.
func (d *DB) UpdateBookingStatus(reference string, update models.StatusUpdate) (*models.BookingTicket, error) {
	booking, err := d.GetBookingByReference(reference)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking.Status = update.Status
	booking.UpdatedAt = now

	columns := []string{"status", "updated_at"}

	switch update.Status {
	case models.BookingStatusConfirmed:
		booking.PaymentStatus = models.PaymentStatusCompleted
		booking.ConfirmedAt = now
		columns = append(columns, "payment_status", "confirmed_at")
	case models.BookingStatusCancelled:
		booking.CancelledAt = now
		columns = append(columns, "cancelled_at")
		if update.CancellationReason != "" {
			booking.CancellationReason = update.CancellationReason
			columns = append(columns, "cancellation_reason")
		}
	}

	if update.PaymentMethod != "" {
		booking.PaymentMethod = update.PaymentMethod
		columns = append(columns, "payment_method")
	}
	if update.TransactionID != "" {
		booking.TransactionID = update.TransactionID
		columns = append(columns, "transaction_id")
	}

	updated, err := storage.UpdateAndFetchByID(d.Bun, booking, columns...)
	if err != nil {
		return nil, fmt.Errorf("update booking %s: %w", reference, err)
	}
	return updated, nil
}
