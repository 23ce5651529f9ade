package bookings

import (
	"fmt"
	"strings"

	"journey-api/internal/logger"
	"journey-api/internal/models"
)

// ValidationError marks input problems the API should report as 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

type BookingDBLayer interface {
	CreateBooking(booking models.BookingTicket) (*models.BookingTicket, error)
	GetBookingByReference(reference string) (*models.BookingTicket, error)
	GetBooking(id int64) (*models.BookingTicket, error)
	GetBookings() ([]models.BookingTicket, error)
	GetEventBookings(eventID string) ([]models.BookingTicket, error)
	GetUserBookings(userID string) ([]models.BookingTicket, error)
	UpdateBookingStatus(reference string, update models.StatusUpdate) (*models.BookingTicket, error)
}

type EventLookup interface {
	GetEvent(id string) (*models.BookingEvent, error)
}

// Mailer sends booking notifications. Delivery failures are logged and
// never bubble up: the booking row is the source of truth, mail is an
// after-effect.
type Mailer interface {
	SendBookingPending(booking *models.BookingTicket, event *models.BookingEvent) error
	SendBookingConfirmation(booking *models.BookingTicket, event *models.BookingEvent) error
}

type BookingService struct {
	db     BookingDBLayer
	events EventLookup
	mailer Mailer
	logger *logger.Logger
}

func NewBookingService(db BookingDBLayer, events EventLookup, mailer Mailer, log *logger.Logger) *BookingService {
	return &BookingService{db: db, events: events, mailer: mailer, logger: log}
}

func (s *BookingService) CreateBooking(booking models.BookingTicket) (*models.BookingTicket, error) {
	if strings.TrimSpace(booking.CustomerName) == "" || strings.TrimSpace(booking.CustomerEmail) == "" {
		return nil, ValidationError("customerName and customerEmail are required")
	}
	if booking.NumberOfParticipants < 1 {
		return nil, ValidationError("numberOfParticipants must be at least 1")
	}

	event, err := s.events.GetEvent(booking.EventID)
	if err != nil {
		return nil, ValidationError("unknown event")
	}
	if booking.EventDate.IsZero() {
		booking.EventDate = event.EventDate
	}

	created, err := s.db.CreateBooking(booking)
	if err != nil {
		s.logger.Error("BOOKING", fmt.Sprintf("Failed to create booking: %v", err))
		return nil, err
	}
	s.logger.LogBooking("CREATED", created.BookingReference, fmt.Sprintf("%d participant(s) for event %s", created.NumberOfParticipants, created.EventID))

	s.notify(created, event, false)
	return created, nil
}

func (s *BookingService) GetBookingByReference(reference string) (*models.BookingTicket, error) {
	return s.db.GetBookingByReference(reference)
}

func (s *BookingService) GetBookings() ([]models.BookingTicket, error) {
	return s.db.GetBookings()
}

func (s *BookingService) GetEventBookings(eventID string) ([]models.BookingTicket, error) {
	return s.db.GetEventBookings(eventID)
}

func (s *BookingService) GetUserBookings(userID string) ([]models.BookingTicket, error) {
	return s.db.GetUserBookings(userID)
}

func (s *BookingService) UpdateBookingStatus(reference string, update models.StatusUpdate) (*models.BookingTicket, error) {
	switch update.Status {
	case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled:
	default:
		return nil, ValidationError("status must be pending, confirmed or cancelled")
	}

	updated, err := s.db.UpdateBookingStatus(reference, update)
	if err != nil {
		return nil, err
	}
	s.logger.LogBooking("STATUS", updated.BookingReference, fmt.Sprintf("Status set to %s", updated.Status))

	if updated.Status == models.BookingStatusConfirmed {
		event, err := s.events.GetEvent(updated.EventID)
		if err != nil {
			s.logger.Error("BOOKING", fmt.Sprintf("Confirmation mail for %s skipped, event lookup failed: %v", updated.BookingReference, err))
			return updated, nil
		}
		s.notify(updated, event, true)
	}
	return updated, nil
}

func (s *BookingService) notify(booking *models.BookingTicket, event *models.BookingEvent, confirmed bool) {
	if s.mailer == nil {
		return
	}
	send := s.mailer.SendBookingPending
	if confirmed {
		send = s.mailer.SendBookingConfirmation
	}
	if err := send(booking, event); err != nil {
		s.logger.LogEmail(booking.CustomerEmail, "booking notification", fmt.Sprintf("Delivery failed for %s: %v", booking.BookingReference, err))
	}
}
