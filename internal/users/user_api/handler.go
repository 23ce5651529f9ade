package user_api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"journey-api/internal/auth"
	"journey-api/internal/config"
	"journey-api/internal/logger"
	"journey-api/internal/models"
	"journey-api/internal/storage"
	"journey-api/internal/utils"
)

type UserDBLayer interface {
	GetUser(id string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpsertUser(user models.User) (*models.User, error)
	UpdateProfile(id string, user models.User) (*models.User, error)
}

type Handler struct {
	UserDB UserDBLayer
	Auth   *auth.Auth
	Config *config.Config
	Logger *logger.Logger
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, ok := h.Auth.Login(r, req.Username, req.Password)
	if !ok {
		h.Logger.LogSecurity("LOGIN_FAILED", fmt.Sprintf("username=%s", req.Username))
		utils.Error(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	h.Logger.Info("AUTH", fmt.Sprintf("User %s logged in", user.Username))
	utils.JSON(w, http.StatusOK, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r); err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to log out")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Username) == "" || len(req.Password) < 6 {
		utils.Error(w, http.StatusBadRequest, "username and a password of at least 6 characters are required")
		return
	}

	if _, err := h.UserDB.GetUserByUsername(req.Username); err == nil {
		utils.Error(w, http.StatusConflict, "username already taken")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user, err := h.UserDB.UpsertUser(models.User{
		ID:        uuid.New().String(),
		Username:  req.Username,
		Password:  hash,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
	})
	if err != nil {
		h.Logger.Error("AUTH", fmt.Sprintf("Failed to register user: %v", err))
		utils.Error(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	utils.JSON(w, http.StatusCreated, user)
}

// CurrentUser serves GET /api/user and GET /api/auth/user.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		utils.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	utils.JSON(w, http.StatusOK, user)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sessionUser := auth.UserFromContext(r.Context())
	if sessionUser == nil {
		utils.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var update models.User
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// Password and admin flag are not editable through this endpoint.
	update.Password = ""
	update.IsAdmin = false

	user, err := h.UserDB.UpdateProfile(sessionUser.ID, update)
	if err != nil {
		if storage.IsNotFound(err) {
			utils.Error(w, http.StatusNotFound, "user not found")
			return
		}
		h.Logger.Error("AUTH", fmt.Sprintf("Failed to update profile: %v", err))
		utils.Error(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	utils.JSON(w, http.StatusOK, user)
}

// MapStyle assembles the MapTiler style URL from the server-side key.
func (h *Handler) MapStyle(w http.ResponseWriter, r *http.Request) {
	key := h.Config.Map.MaptilerAPIKey
	if key == "" {
		utils.Error(w, http.StatusInternalServerError, "map style is not configured")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{
		"styleUrl": fmt.Sprintf("https://api.maptiler.com/maps/streets-v2/style.json?key=%s", key),
	})
}
