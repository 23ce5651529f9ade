package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Booking ticket statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

type BookingTicket struct {
	bun.BaseModel `bun:"table:booking_tickets"`

	ID                   int64     `bun:"id,pk,autoincrement" json:"id"`
	BookingReference     string    `bun:"booking_reference,unique,notnull" json:"bookingReference"`
	EventID              string    `bun:"event_id,notnull" json:"eventId"`
	UserID               string    `bun:"user_id,nullzero" json:"userId,omitempty"`
	CustomerName         string    `bun:"customer_name,notnull" json:"customerName"`
	CustomerEmail        string    `bun:"customer_email,notnull" json:"customerEmail"`
	CustomerPhone        string    `bun:"customer_phone,nullzero" json:"customerPhone,omitempty"`
	NumberOfParticipants int       `bun:"number_of_participants,notnull" json:"numberOfParticipants"`
	EventDate            time.Time `bun:"event_date,notnull" json:"eventDate"`
	TotalPrice           float64   `bun:"total_price,notnull" json:"totalPrice"`
	PaymentStatus        string    `bun:"payment_status" json:"paymentStatus"`
	PaymentMethod        string    `bun:"payment_method,nullzero" json:"paymentMethod,omitempty"`
	TransactionID        string    `bun:"transaction_id,nullzero" json:"transactionId,omitempty"`
	SpecialRequests      string    `bun:"special_requests,nullzero" json:"specialRequests,omitempty"`
	Status               string    `bun:"status" json:"status"`
	ConfirmedAt          time.Time `bun:"confirmed_at,nullzero" json:"confirmedAt,omitempty"`
	CancelledAt          time.Time `bun:"cancelled_at,nullzero" json:"cancelledAt,omitempty"`
	CancellationReason   string    `bun:"cancellation_reason,nullzero" json:"cancellationReason,omitempty"`
	CreatedAt            time.Time `bun:"created_at,nullzero" json:"createdAt"`
	UpdatedAt            time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}

// StatusUpdate carries the optional extras accepted alongside a booking
// status transition.
type StatusUpdate struct {
	Status             string `json:"status"`
	CancellationReason string `json:"cancellationReason,omitempty"`
	PaymentMethod      string `json:"paymentMethod,omitempty"`
	TransactionID      string `json:"transactionId,omitempty"`
}
