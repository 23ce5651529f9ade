package event_api_test

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

	"journey-api/internal/events/db"
	"journey-api/internal/events/event_api"
	events "journey-api/internal/events/service"
	"journey-api/internal/logger"
	"journey-api/internal/models"
)

func setupHandler(t *testing.T) (*event_api.Handler, *events.EventService, func()) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	for _, model := range []interface{}{
		(*models.BookingEvent)(nil),
		(*models.EventGalleryImage)(nil),
		(*models.EventScheduleDay)(nil),
		(*models.EventReview)(nil),
		(*models.EventPrice)(nil),
	} {
		if _, err := bunDB.NewCreateTable().Model(model).Exec(context.Background()); err != nil {
			t.Fatalf("Failed to create table: %v", err)
		}
	}

	log := logger.NewLogger()
	svc := events.NewEventService(&db.DB{Bun: bunDB}, log)
	handler := event_api.NewHandler(svc, log)

	return handler, svc, func() {
		bunDB.Close()
		log.Close()
	}
}

func newRouter(handler *event_api.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/events", handler.ListEvents)
	r.Get("/events/all", handler.ListAllEvents)
	r.Post("/events", handler.CreateEvent)
	r.Get("/events/{id}", handler.GetEvent)
	r.Delete("/events/{id}", handler.DeleteEvent)
	r.Get("/events/{id}/reviews", handler.GetEventReviews)
	r.Post("/events/{id}/reviews", handler.AddEventReview)
	r.Get("/clubs/{id}/events", handler.ListClubEvents)
	return r
}

func seedEvents(t *testing.T, svc *events.EventService) {
	_, err := svc.CreateEvent(models.BookingEvent{
		ID:                 "evt-association",
		Title:              "Annual Gathering",
		IsAssociationEvent: true,
		EventDate:          time.Now().Add(48 * time.Hour),
	}, "admin-1")
	require.NoError(t, err)

	_, err = svc.CreateEvent(models.BookingEvent{
		ID:        "evt-club",
		Title:     "Club Ride",
		ClubID:    7,
		EventDate: time.Now().Add(24 * time.Hour),
	}, "admin-1")
	require.NoError(t, err)
}

func TestListEventsDefaultsToAssociation(t *testing.T) {
	handler, svc, teardown := setupHandler(t)
	defer teardown()
	seedEvents(t, svc)
	router := newRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var list []models.BookingEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "evt-association", list[0].ID)
}

func TestListEventsByClub(t *testing.T) {
	handler, svc, teardown := setupHandler(t)
	defer teardown()
	seedEvents(t, svc)
	router := newRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/events?club=7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var list []models.BookingEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "evt-club", list[0].ID)

	req = httptest.NewRequest(http.MethodGet, "/events?club=abc", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListClubEventsNestedRoute(t *testing.T) {
	handler, svc, teardown := setupHandler(t)
	defer teardown()
	seedEvents(t, svc)
	router := newRouter(handler)

	_, err := svc.CreateEvent(models.BookingEvent{
		ID:        "evt-club-past",
		Title:     "Last Season Ride",
		ClubID:    7,
		EventDate: time.Now().Add(-24 * time.Hour),
	}, "admin-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/clubs/7/events", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var list []models.BookingEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	// Latest event date first.
	assert.Equal(t, "evt-club", list[0].ID)
	assert.Equal(t, "evt-club-past", list[1].ID)

	req = httptest.NewRequest(http.MethodGet, "/clubs/7/events?upcoming=true", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "evt-club", list[0].ID)

	req = httptest.NewRequest(http.MethodGet, "/clubs/abc/events", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateEventPartialBody(t *testing.T) {
	handler, svc, teardown := setupHandler(t)
	defer teardown()
	seedEvents(t, svc)

	r := chi.NewRouter()
	r.Put("/events/{id}", handler.UpdateEvent)

	// Updating only the title must leave the duality rule satisfied.
	body, _ := json.Marshal(map[string]interface{}{"title": "Renamed Gathering"})
	req := httptest.NewRequest(http.MethodPut, "/events/evt-association", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var updated models.BookingEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Renamed Gathering", updated.Title)
	assert.True(t, updated.IsAssociationEvent)
}

func TestListAllEvents(t *testing.T) {
	handler, svc, teardown := setupHandler(t)
	defer teardown()
	seedEvents(t, svc)
	router := newRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/events/all", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var list []models.BookingEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestGetEventEndpoint(t *testing.T) {
	handler, svc, teardown := setupHandler(t)
	defer teardown()
	seedEvents(t, svc)
	router := newRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/events/evt-club", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/events/missing", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateEventEndpointValidation(t *testing.T) {
	handler, _, teardown := setupHandler(t)
	defer teardown()
	router := newRouter(handler)

	// A club event without a club reference is rejected.
	body, _ := json.Marshal(map[string]interface{}{
		"title": "Club Ride",
	})
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body, _ = json.Marshal(map[string]interface{}{
		"title":              "Annual Gathering",
		"isAssociationEvent": true,
	})
	req = httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeleteEventEndpoint(t *testing.T) {
	handler, svc, teardown := setupHandler(t)
	defer teardown()
	seedEvents(t, svc)
	router := newRouter(handler)

	req := httptest.NewRequest(http.MethodDelete, "/events/evt-club", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/events/evt-club", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddEventReviewEndpoint(t *testing.T) {
	handler, svc, teardown := setupHandler(t)
	defer teardown()
	seedEvents(t, svc)
	router := newRouter(handler)

	body, _ := json.Marshal(map[string]interface{}{
		"userName": "Lena",
		"rating":   5,
		"review":   "Great day out",
	})
	req := httptest.NewRequest(http.MethodPost, "/events/evt-club/reviews", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Out-of-range rating is rejected.
	body, _ = json.Marshal(map[string]interface{}{
		"userName": "Omar",
		"rating":   7,
	})
	req = httptest.NewRequest(http.MethodPost, "/events/evt-club/reviews", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/events/evt-club/reviews", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var reviews []models.EventReview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviews))
	assert.Len(t, reviews, 1)
}
