package booking_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"journey-api/internal/auth"
	bookings "journey-api/internal/bookings/service"
	"journey-api/internal/logger"
	"journey-api/internal/models"
	"journey-api/internal/storage"
	"journey-api/internal/utils"
)

type Handler struct {
	Service *bookings.BookingService
	Logger  *logger.Logger
}

func NewHandler(svc *bookings.BookingService, log *logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var booking models.BookingTicket
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Bookings work logged-out; a session just ties the
	// ticket to the account.
	if user := auth.UserFromContext(r.Context()); user != nil {
		booking.UserID = user.ID
	}

	created, err := h.Service.CreateBooking(booking)
	if err != nil {
		var verr bookings.ValidationError
		if errors.As(err, &verr) {
			utils.Error(w, http.StatusBadRequest, verr.Error())
			return
		}
		h.Logger.Error("BOOKING", fmt.Sprintf("Failed to create booking: %v", err))
		utils.Error(w, http.StatusInternalServerError, "failed to create booking")
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) GetBookingByReference(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Service.GetBookingByReference(chi.URLParam(r, "reference"))
	if err != nil {
		if storage.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "booking not found")
			return
		}
		h.Logger.Error("BOOKING", fmt.Sprintf("Failed to fetch booking: %v", err))
		utils.Error(w, http.StatusInternalServerError, "failed to fetch booking")
		return
	}
	utils.JSON(w, http.StatusOK, booking)
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	var (
		list []models.BookingTicket
		err  error
	)
	if eventID := r.URL.Query().Get("event"); eventID != "" {
		list, err = h.Service.GetEventBookings(eventID)
	} else {
		list, err = h.Service.GetBookings()
	}
	if err != nil {
		h.Logger.Error("BOOKING", fmt.Sprintf("Failed to list bookings: %v", err))
		utils.Error(w, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	utils.JSON(w, http.StatusOK, list)
}

func (h *Handler) MyBookings(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		utils.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	list, err := h.Service.GetUserBookings(user.ID)
	if err != nil {
		h.Logger.Error("BOOKING", fmt.Sprintf("Failed to list user bookings: %v", err))
		utils.Error(w, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	utils.JSON(w, http.StatusOK, list)
}

func (h *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var update models.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.UpdateBookingStatus(chi.URLParam(r, "reference"), update)
	if err != nil {
		var verr bookings.ValidationError
		if errors.As(err, &verr) {
			utils.Error(w, http.StatusBadRequest, verr.Error())
			return
		}
		if storage.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "booking not found")
			return
		}
		h.Logger.Error("BOOKING", fmt.Sprintf("Failed to update booking status: %v", err))
		utils.Error(w, http.StatusInternalServerError, "failed to update booking status")
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}
