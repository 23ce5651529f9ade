// Package auth implements session-backed username/password authentication.
// Sessions live in a Postgres table so a process restart does not log
// anyone out.
package auth

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"golang.org/x/crypto/bcrypt"

	"journey-api/internal/models"
	"journey-api/internal/utils"
)

const sessionUserKey = "userID"

type contextKey string

const userContextKey contextKey = "user"

type UserStore interface {
	GetUser(id string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
}

type Auth struct {
	Sessions *scs.SessionManager
	Users    UserStore
}

func New(sessions *scs.SessionManager, users UserStore) *Auth {
	return &Auth{Sessions: sessions, Users: users}
}

// HashPassword returns the bcrypt hash stored in the users table.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares bcrypt hash and plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Login verifies the credentials and binds the user to the session. The
// session token is renewed to prevent fixation.
func (a *Auth) Login(r *http.Request, username, password string) (*models.User, bool) {
	user, err := a.Users.GetUserByUsername(username)
	if err != nil || !user.IsActive {
		return nil, false
	}
	if !VerifyPassword(user.Password, password) {
		return nil, false
	}
	if err := a.Sessions.RenewToken(r.Context()); err != nil {
		return nil, false
	}
	a.Sessions.Put(r.Context(), sessionUserKey, user.ID)
	return user, true
}

func (a *Auth) Logout(r *http.Request) error {
	return a.Sessions.Destroy(r.Context())
}

// SessionUser resolves the logged-in user from the session, if any.
func (a *Auth) SessionUser(r *http.Request) (*models.User, bool) {
	userID := a.Sessions.GetString(r.Context(), sessionUserKey)
	if userID == "" {
		return nil, false
	}
	user, err := a.Users.GetUser(userID)
	if err != nil {
		return nil, false
	}
	return user, true
}

// RequireAuth rejects requests without a live session (401) and stores the
// user on the request context for handlers downstream.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := a.SessionUser(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

// WithUser attaches the session user when present without requiring one.
// Public endpoints use it to tie writes to an account opportunistically.
func (a *Auth) WithUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := a.SessionUser(r); ok {
			r = r.WithContext(ContextWithUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin layers the admin check on top of RequireAuth (403 for a
// logged-in non-admin).
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return a.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil || !user.IsAdmin {
			utils.Error(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// ContextWithUser returns a context carrying the session user.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the user placed by RequireAuth, or nil.
func UserFromContext(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userContextKey).(*models.User); ok {
		return user
	}
	return nil
}
