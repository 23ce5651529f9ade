package club_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"journey-api/internal/auth"
	clubs "journey-api/internal/clubs/service"
	"journey-api/internal/logger"
	"journey-api/internal/models"
	"journey-api/internal/storage"
	"journey-api/internal/utils"
)

type Handler struct {
	Service *clubs.ClubService
	Logger  *logger.Logger
}

func NewHandler(svc *clubs.ClubService, log *logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

func clubIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListClubs()
	if err != nil {
		h.fail(w, "Failed to fetch clubs", err)
		return
	}
	utils.JSON(w, http.StatusOK, list)
}

func (h *Handler) GetClub(w http.ResponseWriter, r *http.Request) {
	id, err := clubIDParam(r)
	if err != nil {
		// Slug URLs share the /clubs/{id} shape.
		club, serr := h.Service.GetClubBySlug(chi.URLParam(r, "id"))
		if serr != nil {
			if storage.IsNotFound(serr) {
				utils.Error(w, http.StatusNotFound, "club not found")
				return
			}
			h.fail(w, "Failed to fetch club", serr)
			return
		}
		utils.JSON(w, http.StatusOK, club)
		return
	}

	club, err := h.Service.GetClub(id)
	if err != nil {
		if storage.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "club not found")
			return
		}
		h.fail(w, "Failed to fetch club", err)
		return
	}
	utils.JSON(w, http.StatusOK, club)
}

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	var club models.Club
	if err := json.NewDecoder(r.Body).Decode(&club); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := auth.UserFromContext(r.Context())
	if user == nil {
		utils.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	created, err := h.Service.CreateClub(club, user.ID)
	if err != nil {
		if isValidation(err) {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.fail(w, "Failed to create club", err)
		return
	}
	h.Logger.Info("CLUB", fmt.Sprintf("Created club %d (%s)", created.ID, created.Name))
	utils.JSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	id, err := clubIDParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid club id")
		return
	}
	var club models.Club
	if err := json.NewDecoder(r.Body).Decode(&club); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := auth.UserFromContext(r.Context())
	if user == nil {
		utils.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	updated, err := h.Service.UpdateClub(id, club, user.ID, user.IsAdmin)
	if err != nil {
		if errors.Is(err, clubs.ErrPermissionDenied) {
			utils.Error(w, http.StatusForbidden, "you do not own this club")
			return
		}
		if storage.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "club not found")
			return
		}
		h.fail(w, "Failed to update club", err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	id, err := clubIDParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid club id")
		return
	}

	user := auth.UserFromContext(r.Context())
	if user == nil {
		utils.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.Service.DeleteClub(id, user.ID, user.IsAdmin); err != nil {
		if errors.Is(err, clubs.ErrPermissionDenied) {
			utils.Error(w, http.StatusForbidden, "you do not own this club")
			return
		}
		if storage.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "club not found")
			return
		}
		h.fail(w, "Failed to delete club", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------- MEMBERSHIPS ----------------

func (h *Handler) JoinClub(w http.ResponseWriter, r *http.Request) {
	id, err := clubIDParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid club id")
		return
	}
	user := auth.UserFromContext(r.Context())
	if user == nil {
		utils.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	membership, err := h.Service.JoinClub(user.ID, id)
	if err != nil {
		if storage.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "club not found")
			return
		}
		h.fail(w, "Failed to join club", err)
		return
	}
	h.Logger.Info("CLUB", fmt.Sprintf("User %s joined club %d", user.ID, id))
	utils.JSON(w, http.StatusOK, membership)
}

func (h *Handler) LeaveClub(w http.ResponseWriter, r *http.Request) {
	id, err := clubIDParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid club id")
		return
	}
	user := auth.UserFromContext(r.Context())
	if user == nil {
		utils.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.Service.LeaveClub(user.ID, id); err != nil {
		h.fail(w, "Failed to leave club", err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) MyMemberships(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		utils.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	memberships, err := h.Service.GetUserMemberships(user.ID)
	if err != nil {
		h.fail(w, "Failed to fetch memberships", err)
		return
	}
	utils.JSON(w, http.StatusOK, memberships)
}

func (h *Handler) MembershipStatus(w http.ResponseWriter, r *http.Request) {
	id, err := clubIDParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid club id")
		return
	}
	user := auth.UserFromContext(r.Context())
	if user == nil {
		utils.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	isMember, err := h.Service.IsMember(user.ID, id)
	if err != nil {
		h.fail(w, "Failed to check membership", err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"isMember": isMember})
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	id, err := clubIDParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid club id")
		return
	}
	members, err := h.Service.GetMembers(id)
	if err != nil {
		h.fail(w, "Failed to fetch members", err)
		return
	}
	utils.JSON(w, http.StatusOK, members)
}

// ---------------- GALLERY ----------------

func (h *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	id, err := clubIDParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid club id")
		return
	}
	images, err := h.Service.GetGallery(id)
	if err != nil {
		h.fail(w, "Failed to fetch gallery", err)
		return
	}
	utils.JSON(w, http.StatusOK, images)
}

func (h *Handler) AddImage(w http.ResponseWriter, r *http.Request) {
	id, err := clubIDParam(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid club id")
		return
	}

	var req struct {
		ImageURL string `json:"imageUrl"`
		Caption  string `json:"caption"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ImageURL == "" {
		utils.Error(w, http.StatusBadRequest, "imageUrl is required")
		return
	}

	user := auth.UserFromContext(r.Context())
	uploadedBy := ""
	if user != nil {
		uploadedBy = user.ID
	}

	image, err := h.Service.AddImage(id, req.ImageURL, req.Caption, uploadedBy)
	if err != nil {
		if isValidation(err) {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.fail(w, "Failed to add image", err)
		return
	}
	utils.JSON(w, http.StatusCreated, image)
}

func (h *Handler) fail(w http.ResponseWriter, msg string, err error) {
	h.Logger.Error("CLUB", fmt.Sprintf("%s: %v", msg, err))
	utils.Error(w, http.StatusInternalServerError, msg)
}

func isValidation(err error) bool {
	var verr clubs.ValidationError
	return errors.As(err, &verr)
}
