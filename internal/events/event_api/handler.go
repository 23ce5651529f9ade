package event_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"journey-api/internal/auth"
	events "journey-api/internal/events/service"
	"journey-api/internal/logger"
	"journey-api/internal/models"
	"journey-api/internal/storage"
	"journey-api/internal/utils"
)

type Handler struct {
	Service *events.EventService
	Logger  *logger.Logger
}

func NewHandler(svc *events.EventService, log *logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// ---------------- EVENTS ----------------

// ListEvents supports ?club=<id> and ?upcoming=true filters; without
// filters it returns association events only.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	upcoming := r.URL.Query().Get("upcoming") == "true"

	if clubParam := r.URL.Query().Get("club"); clubParam != "" {
		clubID, err := strconv.ParseInt(clubParam, 10, 64)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid club id")
			return
		}
		h.serveClubEvents(w, clubID, upcoming)
		return
	}

	var (
		list []models.BookingEvent
		err  error
	)
	if upcoming {
		list, err = h.Service.GetUpcomingAssociationEvents()
	} else {
		list, err = h.Service.GetAssociationEvents()
	}
	if err != nil {
		h.fail(w, "Failed to fetch events", err)
		return
	}
	utils.JSON(w, http.StatusOK, list)
}

// ListClubEvents serves the club-nested listing; {id} is the club id.
func (h *Handler) ListClubEvents(w http.ResponseWriter, r *http.Request) {
	clubID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid club id")
		return
	}
	h.serveClubEvents(w, clubID, r.URL.Query().Get("upcoming") == "true")
}

func (h *Handler) serveClubEvents(w http.ResponseWriter, clubID int64, upcoming bool) {
	var (
		list []models.BookingEvent
		err  error
	)
	if upcoming {
		list, err = h.Service.GetUpcomingClubEvents(clubID)
	} else {
		list, err = h.Service.GetClubEvents(clubID)
	}
	if err != nil {
		h.fail(w, "Failed to fetch club events", err)
		return
	}
	utils.JSON(w, http.StatusOK, list)
}

func (h *Handler) ListAllEvents(w http.ResponseWriter, r *http.Request) {
	var (
		list []models.BookingEvent
		err  error
	)
	if r.URL.Query().Get("upcoming") == "true" {
		list, err = h.Service.GetUpcomingEvents()
	} else {
		list, err = h.Service.GetAllEvents()
	}
	if err != nil {
		h.fail(w, "Failed to fetch events", err)
		return
	}
	utils.JSON(w, http.StatusOK, list)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.Service.GetEvent(chi.URLParam(r, "id"))
	if err != nil {
		if storage.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "event not found")
			return
		}
		h.fail(w, "Failed to fetch event", err)
		return
	}
	utils.JSON(w, http.StatusOK, event)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event models.BookingEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := auth.UserFromContext(r.Context())
	createdBy := ""
	if user != nil {
		createdBy = user.ID
	}

	created, err := h.Service.CreateEvent(event, createdBy)
	if err != nil {
		if isValidation(err) {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.fail(w, "Failed to create event", err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var event models.BookingEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.UpdateEvent(chi.URLParam(r, "id"), event)
	if err != nil {
		if isValidation(err) {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		if storage.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "event not found")
			return
		}
		h.fail(w, "Failed to update event", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteEvent(chi.URLParam(r, "id")); err != nil {
		h.fail(w, "Failed to delete event", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------- GALLERY ----------------

func (h *Handler) GetEventGallery(w http.ResponseWriter, r *http.Request) {
	images, err := h.Service.GetEventGallery(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "Failed to fetch event gallery", err)
		return
	}
	utils.JSON(w, http.StatusOK, images)
}

func (h *Handler) AddEventImage(w http.ResponseWriter, r *http.Request) {
	var image models.EventGalleryImage
	if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	image.EventID = chi.URLParam(r, "id")

	created, err := h.Service.AddEventImage(image)
	if err != nil {
		if isValidation(err) {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.fail(w, "Failed to add event image", err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) DeleteEventImage(w http.ResponseWriter, r *http.Request) {
	h.deleteChild(w, r, h.Service.DeleteEventImage, "Failed to delete event image")
}

// ---------------- SCHEDULE ----------------

func (h *Handler) GetEventSchedule(w http.ResponseWriter, r *http.Request) {
	days, err := h.Service.GetEventSchedule(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "Failed to fetch event schedule", err)
		return
	}
	utils.JSON(w, http.StatusOK, days)
}

func (h *Handler) AddEventScheduleDay(w http.ResponseWriter, r *http.Request) {
	var day models.EventScheduleDay
	if err := json.NewDecoder(r.Body).Decode(&day); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	day.EventID = chi.URLParam(r, "id")

	created, err := h.Service.AddEventScheduleDay(day)
	if err != nil {
		if isValidation(err) {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.fail(w, "Failed to add schedule day", err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) DeleteEventScheduleDay(w http.ResponseWriter, r *http.Request) {
	h.deleteChild(w, r, h.Service.DeleteEventScheduleDay, "Failed to delete schedule day")
}

// ---------------- REVIEWS ----------------

func (h *Handler) GetEventReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Service.GetEventReviews(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "Failed to fetch event reviews", err)
		return
	}
	utils.JSON(w, http.StatusOK, reviews)
}

func (h *Handler) AddEventReview(w http.ResponseWriter, r *http.Request) {
	var review models.EventReview
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	review.EventID = chi.URLParam(r, "id")

	created, err := h.Service.AddEventReview(review)
	if err != nil {
		if isValidation(err) {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.fail(w, "Failed to add event review", err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) DeleteEventReview(w http.ResponseWriter, r *http.Request) {
	h.deleteChild(w, r, h.Service.DeleteEventReview, "Failed to delete event review")
}

// ---------------- PRICES ----------------

func (h *Handler) GetEventPrices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.Service.GetEventPrices(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "Failed to fetch event prices", err)
		return
	}
	utils.JSON(w, http.StatusOK, prices)
}

func (h *Handler) AddEventPrice(w http.ResponseWriter, r *http.Request) {
	var price models.EventPrice
	if err := json.NewDecoder(r.Body).Decode(&price); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	price.EventID = chi.URLParam(r, "id")

	created, err := h.Service.AddEventPrice(price)
	if err != nil {
		if isValidation(err) {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.fail(w, "Failed to add event price", err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) DeleteEventPrice(w http.ResponseWriter, r *http.Request) {
	h.deleteChild(w, r, h.Service.DeleteEventPrice, "Failed to delete event price")
}

// ---------------- HELPERS ----------------

func (h *Handler) deleteChild(w http.ResponseWriter, r *http.Request, del func(int64) error, failMsg string) {
	id, err := strconv.ParseInt(chi.URLParam(r, "childId"), 10, 64)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := del(id); err != nil {
		h.fail(w, failMsg, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) fail(w http.ResponseWriter, msg string, err error) {
	h.Logger.Error("EVENT", fmt.Sprintf("%s: %v", msg, err))
	utils.Error(w, http.StatusInternalServerError, msg)
}

func isValidation(err error) bool {
	var verr events.ValidationError
	return errors.As(err, &verr)
}
