package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	ID              string     `bun:"id,pk" json:"id"`
	Username        string     `bun:"username,unique" json:"username"`
	Password        string     `bun:"password" json:"-"`
	Email           string     `bun:"email,unique" json:"email"`
	FirstName       string     `bun:"first_name,nullzero" json:"firstName,omitempty"`
	LastName        string     `bun:"last_name,nullzero" json:"lastName,omitempty"`
	ProfileImageURL string     `bun:"profile_image_url,nullzero" json:"profileImageUrl,omitempty"`
	Bio             string     `bun:"bio,nullzero" json:"bio,omitempty"`
	Phone           string     `bun:"phone,nullzero" json:"phone,omitempty"`
	Location        string     `bun:"location,nullzero" json:"location,omitempty"`
	Interests       StringList `bun:"interests" json:"interests"`
	IsAdmin         bool       `bun:"is_admin" json:"isAdmin"`
	IsActive        bool       `bun:"is_active" json:"isActive"`
	CreatedAt       time.Time  `bun:"created_at,nullzero" json:"createdAt"`
	UpdatedAt       time.Time  `bun:"updated_at,nullzero" json:"updatedAt"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
