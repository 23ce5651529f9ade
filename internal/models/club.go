package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Club struct {
	bun.BaseModel `bun:"table:clubs"`

	ID              int64      `bun:"id,pk,autoincrement" json:"id"`
	Name            string     `bun:"name,notnull" json:"name"`
	Slug            string     `bun:"slug,unique" json:"slug"`
	Description     string     `bun:"description" json:"description"`
	LongDescription string     `bun:"long_description,nullzero" json:"longDescription,omitempty"`
	Image           string     `bun:"image,nullzero" json:"image,omitempty"`
	Location        string     `bun:"location" json:"location"`
	MemberCount     int        `bun:"member_count" json:"memberCount"`
	Features        StringList `bun:"features" json:"features"`
	ContactPhone    string     `bun:"contact_phone,nullzero" json:"contactPhone,omitempty"`
	ContactEmail    string     `bun:"contact_email,nullzero" json:"contactEmail,omitempty"`
	Website         string     `bun:"website,nullzero" json:"website,omitempty"`
	SocialMedia     JSONMap    `bun:"social_media" json:"socialMedia"`
	Rating          int        `bun:"rating" json:"rating"`
	Established     string     `bun:"established,nullzero" json:"established,omitempty"`
	IsActive        bool       `bun:"is_active" json:"isActive"`
	Latitude        float64    `bun:"latitude,nullzero" json:"latitude,omitempty"`
	Longitude       float64    `bun:"longitude,nullzero" json:"longitude,omitempty"`
	OwnerID         string     `bun:"owner_id,nullzero" json:"ownerId,omitempty"`
	CreatedAt       time.Time  `bun:"created_at,nullzero" json:"createdAt"`
	UpdatedAt       time.Time  `bun:"updated_at,nullzero" json:"updatedAt"`
}

type ClubMembership struct {
	bun.BaseModel `bun:"table:club_memberships"`

	ID       int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID   string    `bun:"user_id,notnull" json:"userId"`
	ClubID   int64     `bun:"club_id,notnull" json:"clubId"`
	Role     string    `bun:"role" json:"role"` // member, moderator, admin
	JoinedAt time.Time `bun:"joined_at,nullzero" json:"joinedAt"`
	IsActive bool      `bun:"is_active" json:"isActive"`
}

type ClubGalleryImage struct {
	bun.BaseModel `bun:"table:club_gallery"`

	ID         int64     `bun:"id,pk,autoincrement" json:"id"`
	ClubID     int64     `bun:"club_id,notnull" json:"clubId"`
	ImageURL   string    `bun:"image_url,notnull" json:"imageUrl"`
	Caption    string    `bun:"caption,nullzero" json:"caption,omitempty"`
	UploadedBy string    `bun:"uploaded_by,nullzero" json:"uploadedBy,omitempty"`
	UploadedAt time.Time `bun:"uploaded_at,nullzero" json:"uploadedAt"`
}
