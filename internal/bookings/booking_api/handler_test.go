package booking_api_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"journey-api/internal/auth"
	"journey-api/internal/bookings/booking_api"
	"journey-api/internal/bookings/db"
	bookings "journey-api/internal/bookings/service"
	"journey-api/internal/logger"
	"journey-api/internal/models"
)

type stubEventLookup struct{}

func (stubEventLookup) GetEvent(id string) (*models.BookingEvent, error) {
	return &models.BookingEvent{
		ID:        id,
		Title:     "Sunset Hike",
		EventDate: time.Date(2026, 10, 10, 8, 0, 0, 0, time.UTC),
	}, nil
}

func setupHandler(t *testing.T) (*booking_api.Handler, *bun.DB, func()) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	if _, err := bunDB.NewCreateTable().Model((*models.BookingTicket)(nil)).Exec(context.Background()); err != nil {
		t.Fatalf("Failed to create booking_tickets table: %v", err)
	}

	log := logger.NewLogger()
	svc := bookings.NewBookingService(&db.DB{Bun: bunDB}, stubEventLookup{}, nil, log)
	handler := booking_api.NewHandler(svc, log)

	return handler, bunDB, func() {
		bunDB.Close()
		log.Close()
	}
}

func newRouter(handler *booking_api.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/bookings", handler.CreateBooking)
	r.Get("/bookings", handler.ListBookings)
	r.Get("/bookings/{reference}", handler.GetBookingByReference)
	r.Put("/bookings/{reference}/status", handler.UpdateBookingStatus)
	r.Get("/my/bookings", handler.MyBookings)
	return r
}

func TestCreateBookingEndpoint(t *testing.T) {
	handler, _, teardown := setupHandler(t)
	defer teardown()
	router := newRouter(handler)

	body, _ := json.Marshal(map[string]interface{}{
		"eventId":              "evt-1",
		"customerName":         "Lena Moore",
		"customerEmail":        "lena@example.com",
		"numberOfParticipants": 2,
		"totalPrice":           120,
	})

	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var created models.BookingTicket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.BookingReference)
	assert.Equal(t, models.BookingStatusPending, created.Status)
	// Anonymous booking carries no user.
	assert.Empty(t, created.UserID)
}

func TestCreateBookingEndpointAttachesSessionUser(t *testing.T) {
	handler, _, teardown := setupHandler(t)
	defer teardown()
	router := newRouter(handler)

	body, _ := json.Marshal(map[string]interface{}{
		"eventId":              "evt-1",
		"customerName":         "Lena Moore",
		"customerEmail":        "lena@example.com",
		"numberOfParticipants": 1,
	})

	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req = req.WithContext(auth.ContextWithUser(req.Context(), &models.User{ID: "user-1"}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var created models.BookingTicket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "user-1", created.UserID)
}

func TestCreateBookingEndpointValidation(t *testing.T) {
	handler, _, teardown := setupHandler(t)
	defer teardown()
	router := newRouter(handler)

	body, _ := json.Marshal(map[string]interface{}{
		"eventId":              "evt-1",
		"customerName":         "",
		"customerEmail":        "lena@example.com",
		"numberOfParticipants": 1,
	})

	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}

func TestGetBookingByReferenceEndpoint(t *testing.T) {
	handler, _, teardown := setupHandler(t)
	defer teardown()
	router := newRouter(handler)

	created := createBookingViaAPI(t, router)

	req := httptest.NewRequest(http.MethodGet, "/bookings/"+created.BookingReference, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/bookings/BKG-0-XXXXXX", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateBookingStatusEndpoint(t *testing.T) {
	handler, _, teardown := setupHandler(t)
	defer teardown()
	router := newRouter(handler)

	created := createBookingViaAPI(t, router)

	body, _ := json.Marshal(models.StatusUpdate{Status: models.BookingStatusConfirmed, PaymentMethod: "card"})
	req := httptest.NewRequest(http.MethodPut, "/bookings/"+created.BookingReference+"/status", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var updated models.BookingTicket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, models.PaymentStatusCompleted, updated.PaymentStatus)

	// Unknown status is rejected before it reaches the database.
	body, _ = json.Marshal(models.StatusUpdate{Status: "archived"})
	req = httptest.NewRequest(http.MethodPut, "/bookings/"+created.BookingReference+"/status", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMyBookingsEndpoint(t *testing.T) {
	handler, _, teardown := setupHandler(t)
	defer teardown()
	router := newRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/my/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/my/bookings", nil)
	req = req.WithContext(auth.ContextWithUser(req.Context(), &models.User{ID: "user-1"}))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func createBookingViaAPI(t *testing.T, router *chi.Mux) models.BookingTicket {
	body, _ := json.Marshal(map[string]interface{}{
		"eventId":              "evt-1",
		"customerName":         "Lena Moore",
		"customerEmail":        "lena@example.com",
		"numberOfParticipants": 2,
	})
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.BookingTicket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created
}
