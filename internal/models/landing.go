package models

import (
	"time"

	"github.com/uptrace/bun"
)

type LandingSection struct {
	bun.BaseModel `bun:"table:landing_sections"`

	ID                int64     `bun:"id,pk,autoincrement" json:"id"`
	Slug              string    `bun:"slug,unique,notnull" json:"slug"`
	Title             string    `bun:"title,notnull" json:"title"`
	SectionType       string    `bun:"section_type,notnull" json:"sectionType"`
	Ordering          int       `bun:"ordering,notnull" json:"ordering"`
	IsActive          bool      `bun:"is_active" json:"isActive"`
	BackgroundColor   string    `bun:"background_color,nullzero" json:"backgroundColor,omitempty"`
	BackgroundMediaID int64     `bun:"background_media_id,nullzero" json:"backgroundMediaId,omitempty"`
	TitleFontSize     string    `bun:"title_font_size,nullzero" json:"titleFontSize,omitempty"`
	TitleColor        string    `bun:"title_color,nullzero" json:"titleColor,omitempty"`
	CustomCSS         string    `bun:"custom_css,nullzero" json:"customCss,omitempty"`
	UpdatedBy         string    `bun:"updated_by,nullzero" json:"updatedBy,omitempty"`
	CreatedAt         time.Time `bun:"created_at,nullzero" json:"createdAt"`
	UpdatedAt         time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}

type SectionBlock struct {
	bun.BaseModel `bun:"table:section_blocks"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	SectionID int64     `bun:"section_id,notnull" json:"sectionId"`
	BlockType string    `bun:"block_type,notnull" json:"blockType"`
	Ordering  int       `bun:"ordering,notnull" json:"ordering"`
	Content   JSONMap   `bun:"content" json:"content"`
	IsActive  bool      `bun:"is_active" json:"isActive"`
	CreatedAt time.Time `bun:"created_at,nullzero" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}

type FocusItem struct {
	bun.BaseModel `bun:"table:focus_items"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Title       string    `bun:"title,notnull" json:"title"`
	Icon        string    `bun:"icon,nullzero" json:"icon,omitempty"`
	Description string    `bun:"description,notnull" json:"description"`
	Ordering    int       `bun:"ordering,notnull" json:"ordering"`
	IsActive    bool      `bun:"is_active" json:"isActive"`
	MediaID     int64     `bun:"media_id,nullzero" json:"mediaId,omitempty"`
	CreatedBy   string    `bun:"created_by,nullzero" json:"createdBy,omitempty"`
	CreatedAt   time.Time `bun:"created_at,nullzero" json:"createdAt"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}

type TeamMember struct {
	bun.BaseModel `bun:"table:team_members"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Role        string    `bun:"role,notnull" json:"role"`
	Bio         string    `bun:"bio,nullzero" json:"bio,omitempty"`
	PhotoID     int64     `bun:"photo_id,nullzero" json:"photoId,omitempty"`
	Email       string    `bun:"email,nullzero" json:"email,omitempty"`
	Phone       string    `bun:"phone,nullzero" json:"phone,omitempty"`
	SocialLinks JSONMap   `bun:"social_links" json:"socialLinks"`
	Ordering    int       `bun:"ordering,notnull" json:"ordering"`
	IsActive    bool      `bun:"is_active" json:"isActive"`
	CreatedBy   string    `bun:"created_by,nullzero" json:"createdBy,omitempty"`
	CreatedAt   time.Time `bun:"created_at,nullzero" json:"createdAt"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}

type LandingTestimonial struct {
	bun.BaseModel `bun:"table:landing_testimonials"`

	ID         int64     `bun:"id,pk,autoincrement" json:"id"`
	Name       string    `bun:"name,notnull" json:"name"`
	Role       string    `bun:"role,nullzero" json:"role,omitempty"`
	PhotoID    int64     `bun:"photo_id,nullzero" json:"photoId,omitempty"`
	Rating     int       `bun:"rating" json:"rating"`
	Feedback   string    `bun:"feedback,notnull" json:"feedback"`
	IsApproved bool      `bun:"is_approved" json:"isApproved"`
	IsActive   bool      `bun:"is_active" json:"isActive"`
	Ordering   int       `bun:"ordering,notnull" json:"ordering"`
	UserID     string    `bun:"user_id,nullzero" json:"userId,omitempty"`
	CreatedAt  time.Time `bun:"created_at,nullzero" json:"createdAt"`
	UpdatedAt  time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}

type SiteStat struct {
	bun.BaseModel `bun:"table:site_stats"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Label     string    `bun:"label,notnull" json:"label"`
	Value     string    `bun:"value,notnull" json:"value"`
	Icon      string    `bun:"icon,nullzero" json:"icon,omitempty"`
	Suffix    string    `bun:"suffix,nullzero" json:"suffix,omitempty"`
	Ordering  int       `bun:"ordering,notnull" json:"ordering"`
	IsActive  bool      `bun:"is_active" json:"isActive"`
	UpdatedBy string    `bun:"updated_by,nullzero" json:"updatedBy,omitempty"`
	CreatedAt time.Time `bun:"created_at,nullzero" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}

type Partner struct {
	bun.BaseModel `bun:"table:partners"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	LogoID      int64     `bun:"logo_id,nullzero" json:"logoId,omitempty"`
	WebsiteURL  string    `bun:"website_url,nullzero" json:"websiteUrl,omitempty"`
	Description string    `bun:"description,nullzero" json:"description,omitempty"`
	Ordering    int       `bun:"ordering,notnull" json:"ordering"`
	IsActive    bool      `bun:"is_active" json:"isActive"`
	CreatedBy   string    `bun:"created_by,nullzero" json:"createdBy,omitempty"`
	CreatedAt   time.Time `bun:"created_at,nullzero" json:"createdAt"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}

type MediaAsset struct {
	bun.BaseModel `bun:"table:media_assets"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	FileName     string    `bun:"file_name,notnull" json:"fileName"`
	FileType     string    `bun:"file_type,notnull" json:"fileType"`
	FileURL      string    `bun:"file_url,notnull" json:"fileUrl"`
	ThumbnailURL string    `bun:"thumbnail_url,nullzero" json:"thumbnailUrl,omitempty"`
	AltText      string    `bun:"alt_text,nullzero" json:"altText,omitempty"`
	FocalPoint   JSONMap   `bun:"focal_point" json:"focalPoint,omitempty"`
	Metadata     JSONMap   `bun:"metadata" json:"metadata"`
	UploadedBy   string    `bun:"uploaded_by,nullzero" json:"uploadedBy,omitempty"`
	CreatedAt    time.Time `bun:"created_at,nullzero" json:"createdAt"`
}
