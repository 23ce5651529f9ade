package events

import (
	"fmt"
	"strings"

	"journey-api/internal/logger"
	"journey-api/internal/models"
)

// ValidationError marks input problems the API should report as 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// ErrClubRequired is returned when a club event is created or updated
// without a club reference.
var ErrClubRequired = ValidationError("club events must reference a club")

type EventDBLayer interface {
	GetAssociationEvents() ([]models.BookingEvent, error)
	GetClubEvents(clubID int64) ([]models.BookingEvent, error)
	GetAllEvents() ([]models.BookingEvent, error)
	GetUpcomingEvents() ([]models.BookingEvent, error)
	GetUpcomingAssociationEvents() ([]models.BookingEvent, error)
	GetUpcomingClubEvents(clubID int64) ([]models.BookingEvent, error)
	GetEvent(id string) (*models.BookingEvent, error)
	CreateEvent(event models.BookingEvent) (*models.BookingEvent, error)
	UpdateEvent(id string, event models.BookingEvent) (*models.BookingEvent, error)
	DeleteEvent(id string) error

	GetEventGallery(eventID string) ([]models.EventGalleryImage, error)
	AddEventImage(image models.EventGalleryImage) (*models.EventGalleryImage, error)
	DeleteEventImage(id int64) error

	GetEventSchedule(eventID string) ([]models.EventScheduleDay, error)
	AddEventScheduleDay(day models.EventScheduleDay) (*models.EventScheduleDay, error)
	DeleteEventScheduleDay(id int64) error

	GetEventReviews(eventID string) ([]models.EventReview, error)
	AddEventReview(review models.EventReview) (*models.EventReview, error)
	DeleteEventReview(id int64) error

	GetEventPrices(eventID string) ([]models.EventPrice, error)
	AddEventPrice(price models.EventPrice) (*models.EventPrice, error)
	DeleteEventPrice(id int64) error
}

type EventService struct {
	db     EventDBLayer
	logger *logger.Logger
}

func NewEventService(db EventDBLayer, log *logger.Logger) *EventService {
	return &EventService{db: db, logger: log}
}

func (s *EventService) GetAssociationEvents() ([]models.BookingEvent, error) {
	return s.db.GetAssociationEvents()
}

func (s *EventService) GetClubEvents(clubID int64) ([]models.BookingEvent, error) {
	return s.db.GetClubEvents(clubID)
}

func (s *EventService) GetAllEvents() ([]models.BookingEvent, error) {
	return s.db.GetAllEvents()
}

func (s *EventService) GetUpcomingEvents() ([]models.BookingEvent, error) {
	return s.db.GetUpcomingEvents()
}

func (s *EventService) GetUpcomingAssociationEvents() ([]models.BookingEvent, error) {
	return s.db.GetUpcomingAssociationEvents()
}

func (s *EventService) GetUpcomingClubEvents(clubID int64) ([]models.BookingEvent, error) {
	return s.db.GetUpcomingClubEvents(clubID)
}

func (s *EventService) GetEvent(id string) (*models.BookingEvent, error) {
	return s.db.GetEvent(id)
}

func (s *EventService) CreateEvent(event models.BookingEvent, createdBy string) (*models.BookingEvent, error) {
	if strings.TrimSpace(event.Title) == "" {
		return nil, ValidationError("event title is required")
	}
	if err := checkClubReference(event); err != nil {
		return nil, err
	}
	event.CreatedBy = createdBy

	created, err := s.db.CreateEvent(event)
	if err != nil {
		s.logger.Error("EVENT", fmt.Sprintf("Failed to create event: %v", err))
		return nil, err
	}
	s.logger.Info("EVENT", fmt.Sprintf("Created event %s (%s)", created.ID, created.Title))
	return created, nil
}

// UpdateEvent applies a partial update. Zero-valued duality fields in the
// payload are omitted on write and cannot clear the stored ones, so the
// club rule is checked against the stored event merged with whatever the
// payload actually sets.
func (s *EventService) UpdateEvent(id string, event models.BookingEvent) (*models.BookingEvent, error) {
	existing, err := s.db.GetEvent(id)
	if err != nil {
		return nil, err
	}
	merged := *existing
	if event.IsAssociationEvent {
		merged.IsAssociationEvent = true
	}
	if event.ClubID != 0 {
		merged.ClubID = event.ClubID
	}
	if err := checkClubReference(merged); err != nil {
		return nil, err
	}
	return s.db.UpdateEvent(id, event)
}

func (s *EventService) DeleteEvent(id string) error {
	if err := s.db.DeleteEvent(id); err != nil {
		return err
	}
	s.logger.Info("EVENT", fmt.Sprintf("Deleted event %s", id))
	return nil
}

// checkClubReference enforces the duality rule: an event is either an
// association event with no club, or a club event with a club id.
func checkClubReference(event models.BookingEvent) error {
	if !event.IsAssociationEvent && event.ClubID == 0 {
		return ErrClubRequired
	}
	return nil
}

// ---------------- CHILDREN ----------------

func (s *EventService) GetEventGallery(eventID string) ([]models.EventGalleryImage, error) {
	return s.db.GetEventGallery(eventID)
}

func (s *EventService) AddEventImage(image models.EventGalleryImage) (*models.EventGalleryImage, error) {
	if image.EventID == "" || image.ImageURL == "" {
		return nil, ValidationError("eventId and imageUrl are required")
	}
	return s.db.AddEventImage(image)
}

func (s *EventService) DeleteEventImage(id int64) error {
	return s.db.DeleteEventImage(id)
}

func (s *EventService) GetEventSchedule(eventID string) ([]models.EventScheduleDay, error) {
	return s.db.GetEventSchedule(eventID)
}

func (s *EventService) AddEventScheduleDay(day models.EventScheduleDay) (*models.EventScheduleDay, error) {
	if day.EventID == "" || day.DayNumber < 1 {
		return nil, ValidationError("eventId and a positive dayNumber are required")
	}
	return s.db.AddEventScheduleDay(day)
}

func (s *EventService) DeleteEventScheduleDay(id int64) error {
	return s.db.DeleteEventScheduleDay(id)
}

func (s *EventService) GetEventReviews(eventID string) ([]models.EventReview, error) {
	return s.db.GetEventReviews(eventID)
}

func (s *EventService) AddEventReview(review models.EventReview) (*models.EventReview, error) {
	if review.EventID == "" {
		return nil, ValidationError("eventId is required")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, ValidationError("rating must be between 1 and 5")
	}
	return s.db.AddEventReview(review)
}

func (s *EventService) DeleteEventReview(id int64) error {
	return s.db.DeleteEventReview(id)
}

func (s *EventService) GetEventPrices(eventID string) ([]models.EventPrice, error) {
	return s.db.GetEventPrices(eventID)
}

func (s *EventService) AddEventPrice(price models.EventPrice) (*models.EventPrice, error) {
	if price.EventID == "" || price.Travelers < 1 {
		return nil, ValidationError("eventId and a positive travelers count are required")
	}
	return s.db.AddEventPrice(price)
}

func (s *EventService) DeleteEventPrice(id int64) error {
	return s.db.DeleteEventPrice(id)
}
