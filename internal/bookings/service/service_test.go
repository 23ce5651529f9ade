package bookings_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	bookings "journey-api/internal/bookings/service"
	"journey-api/internal/logger"
	"journey-api/internal/models"
)

// MockBookingDBLayer is a mock implementation of the BookingDBLayer interface
type MockBookingDBLayer struct {
	mock.Mock
}

func (m *MockBookingDBLayer) CreateBooking(booking models.BookingTicket) (*models.BookingTicket, error) {
	args := m.Called(booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingTicket), args.Error(1)
}

func (m *MockBookingDBLayer) GetBookingByReference(reference string) (*models.BookingTicket, error) {
	args := m.Called(reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingTicket), args.Error(1)
}

func (m *MockBookingDBLayer) GetBooking(id int64) (*models.BookingTicket, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingTicket), args.Error(1)
}

func (m *MockBookingDBLayer) GetBookings() ([]models.BookingTicket, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingTicket), args.Error(1)
}

func (m *MockBookingDBLayer) GetEventBookings(eventID string) ([]models.BookingTicket, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingTicket), args.Error(1)
}

func (m *MockBookingDBLayer) GetUserBookings(userID string) ([]models.BookingTicket, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookingTicket), args.Error(1)
}

func (m *MockBookingDBLayer) UpdateBookingStatus(reference string, update models.StatusUpdate) (*models.BookingTicket, error) {
	args := m.Called(reference, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingTicket), args.Error(1)
}

// MockMailer is a mock implementation of the Mailer interface
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendBookingPending(booking *models.BookingTicket, event *models.BookingEvent) error {
	args := m.Called(booking, event)
	return args.Error(0)
}

func (m *MockMailer) SendBookingConfirmation(booking *models.BookingTicket, event *models.BookingEvent) error {
	args := m.Called(booking, event)
	return args.Error(0)
}

// stubEventLookup resolves every known event to the same fixture.
type stubEventLookup struct {
	event *models.BookingEvent
	err   error
}

func (s *stubEventLookup) GetEvent(id string) (*models.BookingEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.event, nil
}

func testEvent() *models.BookingEvent {
	return &models.BookingEvent{
		ID:        "evt-sunset-hike",
		Title:     "Sunset Hike",
		EventDate: time.Date(2026, 10, 10, 8, 0, 0, 0, time.UTC),
	}
}

func testBooking() models.BookingTicket {
	return models.BookingTicket{
		EventID:              "evt-sunset-hike",
		CustomerName:         "Lena Moore",
		CustomerEmail:        "lena@example.com",
		NumberOfParticipants: 2,
		TotalPrice:           120,
	}
}

func TestCreateBookingSendsPendingMail(t *testing.T) {
	log := logger.NewLogger()
	defer log.Close()

	mockDB := new(MockBookingDBLayer)
	mockMailer := new(MockMailer)
	svc := bookings.NewBookingService(mockDB, &stubEventLookup{event: testEvent()}, mockMailer, log)

	created := testBooking()
	created.ID = 1
	created.BookingReference = "BKG-1757000000000-A1B2C3"
	created.Status = models.BookingStatusPending

	mockDB.On("CreateBooking", mock.MatchedBy(func(b models.BookingTicket) bool {
		return b.CustomerEmail == "lena@example.com" && !b.EventDate.IsZero()
	})).Return(&created, nil)
	mockMailer.On("SendBookingPending", &created, mock.Anything).Return(nil)

	got, err := svc.CreateBooking(testBooking())

	assert.NoError(t, err)
	assert.Equal(t, "BKG-1757000000000-A1B2C3", got.BookingReference)
	mockDB.AssertExpectations(t)
	mockMailer.AssertExpectations(t)
}

func TestCreateBookingMailFailureDoesNotFailBooking(t *testing.T) {
	log := logger.NewLogger()
	defer log.Close()

	mockDB := new(MockBookingDBLayer)
	mockMailer := new(MockMailer)
	svc := bookings.NewBookingService(mockDB, &stubEventLookup{event: testEvent()}, mockMailer, log)

	created := testBooking()
	created.ID = 2
	created.BookingReference = "BKG-1757000000001-D4E5F6"

	mockDB.On("CreateBooking", mock.Anything).Return(&created, nil)
	mockMailer.On("SendBookingPending", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	got, err := svc.CreateBooking(testBooking())

	assert.NoError(t, err)
	assert.NotNil(t, got)
	mockMailer.AssertExpectations(t)
}

func TestCreateBookingValidation(t *testing.T) {
	log := logger.NewLogger()
	defer log.Close()

	mockDB := new(MockBookingDBLayer)
	svc := bookings.NewBookingService(mockDB, &stubEventLookup{event: testEvent()}, nil, log)

	var verr bookings.ValidationError

	noName := testBooking()
	noName.CustomerName = "  "
	_, err := svc.CreateBooking(noName)
	assert.ErrorAs(t, err, &verr)

	noParticipants := testBooking()
	noParticipants.NumberOfParticipants = 0
	_, err = svc.CreateBooking(noParticipants)
	assert.ErrorAs(t, err, &verr)

	mockDB.AssertNotCalled(t, "CreateBooking", mock.Anything)
}

func TestCreateBookingUnknownEvent(t *testing.T) {
	log := logger.NewLogger()
	defer log.Close()

	mockDB := new(MockBookingDBLayer)
	svc := bookings.NewBookingService(mockDB, &stubEventLookup{err: errors.New("not found")}, nil, log)

	_, err := svc.CreateBooking(testBooking())

	var verr bookings.ValidationError
	assert.ErrorAs(t, err, &verr)
	mockDB.AssertNotCalled(t, "CreateBooking", mock.Anything)
}

func TestCreateBookingWithoutMailerConfigured(t *testing.T) {
	log := logger.NewLogger()
	defer log.Close()

	mockDB := new(MockBookingDBLayer)
	svc := bookings.NewBookingService(mockDB, &stubEventLookup{event: testEvent()}, nil, log)

	created := testBooking()
	created.ID = 3
	created.BookingReference = "BKG-1757000000002-G7H8I9"
	mockDB.On("CreateBooking", mock.Anything).Return(&created, nil)

	got, err := svc.CreateBooking(testBooking())

	assert.NoError(t, err)
	assert.NotNil(t, got)
}

func TestUpdateBookingStatusValidation(t *testing.T) {
	log := logger.NewLogger()
	defer log.Close()

	mockDB := new(MockBookingDBLayer)
	svc := bookings.NewBookingService(mockDB, &stubEventLookup{event: testEvent()}, nil, log)

	var verr bookings.ValidationError

	_, err := svc.UpdateBookingStatus("BKG-X", models.StatusUpdate{Status: "archived"})
	assert.ErrorAs(t, err, &verr)

	mockDB.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything)
}

func TestUpdateBookingStatusCancelWithoutReason(t *testing.T) {
	log := logger.NewLogger()
	defer log.Close()

	mockDB := new(MockBookingDBLayer)
	svc := bookings.NewBookingService(mockDB, &stubEventLookup{event: testEvent()}, nil, log)

	cancelled := testBooking()
	cancelled.ID = 6
	cancelled.BookingReference = "BKG-1757000000005-P7Q8R9"
	cancelled.Status = models.BookingStatusCancelled

	// The reason is optional on cancellation.
	update := models.StatusUpdate{Status: models.BookingStatusCancelled}
	mockDB.On("UpdateBookingStatus", cancelled.BookingReference, update).Return(&cancelled, nil)

	got, err := svc.UpdateBookingStatus(cancelled.BookingReference, update)

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, got.Status)
	mockDB.AssertExpectations(t)
}

func TestUpdateBookingStatusConfirmedSendsConfirmation(t *testing.T) {
	log := logger.NewLogger()
	defer log.Close()

	mockDB := new(MockBookingDBLayer)
	mockMailer := new(MockMailer)
	svc := bookings.NewBookingService(mockDB, &stubEventLookup{event: testEvent()}, mockMailer, log)

	updated := testBooking()
	updated.ID = 4
	updated.BookingReference = "BKG-1757000000003-J1K2L3"
	updated.Status = models.BookingStatusConfirmed
	updated.PaymentStatus = models.PaymentStatusCompleted

	update := models.StatusUpdate{Status: models.BookingStatusConfirmed, PaymentMethod: "card"}
	mockDB.On("UpdateBookingStatus", updated.BookingReference, update).Return(&updated, nil)
	mockMailer.On("SendBookingConfirmation", &updated, mock.Anything).Return(nil)

	got, err := svc.UpdateBookingStatus(updated.BookingReference, update)

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, got.Status)
	mockDB.AssertExpectations(t)
	mockMailer.AssertExpectations(t)
}

func TestUpdateBookingStatusCancelledSendsNoMail(t *testing.T) {
	log := logger.NewLogger()
	defer log.Close()

	mockDB := new(MockBookingDBLayer)
	mockMailer := new(MockMailer)
	svc := bookings.NewBookingService(mockDB, &stubEventLookup{event: testEvent()}, mockMailer, log)

	updated := testBooking()
	updated.ID = 5
	updated.BookingReference = "BKG-1757000000004-M4N5O6"
	updated.Status = models.BookingStatusCancelled
	updated.CancellationReason = "weather"

	update := models.StatusUpdate{Status: models.BookingStatusCancelled, CancellationReason: "weather"}
	mockDB.On("UpdateBookingStatus", updated.BookingReference, update).Return(&updated, nil)

	_, err := svc.UpdateBookingStatus(updated.BookingReference, update)

	assert.NoError(t, err)
	mockMailer.AssertNotCalled(t, "SendBookingConfirmation", mock.Anything, mock.Anything)
}
