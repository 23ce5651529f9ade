package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Event statuses.
const (
	EventStatusDraft     = "draft"
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// BookingEvent is the unified events table. Association-wide events carry
// IsAssociationEvent=true and no club; club events must reference a club.
type BookingEvent struct {
	bun.BaseModel `bun:"table:booking_events"`

	ID                  string     `bun:"id,pk" json:"id"`
	ClubID              int64      `bun:"club_id,nullzero" json:"clubId,omitempty"`
	IsAssociationEvent  bool       `bun:"is_association_event" json:"isAssociationEvent"`
	Title               string     `bun:"title,notnull" json:"title"`
	Subtitle            string     `bun:"subtitle,nullzero" json:"subtitle,omitempty"`
	Description         string     `bun:"description" json:"description"`
	Location            string     `bun:"location" json:"location"`
	LocationDetails     string     `bun:"location_details,nullzero" json:"locationDetails,omitempty"`
	Latitude            float64    `bun:"latitude,nullzero" json:"latitude,omitempty"`
	Longitude           float64    `bun:"longitude,nullzero" json:"longitude,omitempty"`
	Duration            string     `bun:"duration,nullzero" json:"duration,omitempty"`
	StartDate           time.Time  `bun:"start_date,nullzero" json:"startDate,omitempty"`
	EndDate             time.Time  `bun:"end_date,nullzero" json:"endDate,omitempty"`
	EventDate           time.Time  `bun:"event_date,nullzero" json:"eventDate,omitempty"`
	Price               int        `bun:"price" json:"price"`
	OriginalPrice       int        `bun:"original_price,nullzero" json:"originalPrice,omitempty"`
	Rating              int        `bun:"rating" json:"rating"`
	ReviewCount         int        `bun:"review_count" json:"reviewCount"`
	Category            string     `bun:"category,nullzero" json:"category,omitempty"`
	Languages           StringList `bun:"languages" json:"languages"`
	AgeRange            string     `bun:"age_range,nullzero" json:"ageRange,omitempty"`
	MinAge              int        `bun:"min_age,nullzero" json:"minAge,omitempty"`
	GroupSize           string     `bun:"group_size,nullzero" json:"groupSize,omitempty"`
	MaxPeople           int        `bun:"max_people,nullzero" json:"maxPeople,omitempty"`
	MaxParticipants     int        `bun:"max_participants,nullzero" json:"maxParticipants,omitempty"`
	CurrentParticipants int        `bun:"current_participants" json:"currentParticipants"`
	CancellationPolicy  string     `bun:"cancellation_policy,nullzero" json:"cancellationPolicy,omitempty"`
	Images              StringList `bun:"images" json:"images"`
	Image               string     `bun:"image,nullzero" json:"image,omitempty"`
	Highlights          StringList `bun:"highlights" json:"highlights"`
	Included            StringList `bun:"included" json:"included"`
	NotIncluded         StringList `bun:"not_included" json:"notIncluded"`
	ImportantInfo       string     `bun:"important_info,nullzero" json:"importantInfo,omitempty"`
	Status              string     `bun:"status" json:"status"`
	IsActive            bool       `bun:"is_active" json:"isActive"`
	CreatedBy           string     `bun:"created_by,nullzero" json:"createdBy,omitempty"`
	CreatedAt           time.Time  `bun:"created_at,nullzero" json:"createdAt"`
	UpdatedAt           time.Time  `bun:"updated_at,nullzero" json:"updatedAt"`
}

type EventGalleryImage struct {
	bun.BaseModel `bun:"table:event_gallery"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	EventID   string    `bun:"event_id,notnull" json:"eventId"`
	ImageURL  string    `bun:"image_url,notnull" json:"imageUrl"`
	SortOrder int       `bun:"sort_order" json:"sortOrder"`
	CreatedAt time.Time `bun:"created_at,nullzero" json:"createdAt"`
}

type EventScheduleDay struct {
	bun.BaseModel `bun:"table:event_schedule"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	EventID     string    `bun:"event_id,notnull" json:"eventId"`
	DayNumber   int       `bun:"day_number,notnull" json:"dayNumber"`
	Title       string    `bun:"title,nullzero" json:"title,omitempty"`
	Description string    `bun:"description,nullzero" json:"description,omitempty"`
	CreatedAt   time.Time `bun:"created_at,nullzero" json:"createdAt"`
}

type EventReview struct {
	bun.BaseModel `bun:"table:event_reviews"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	EventID   string    `bun:"event_id,notnull" json:"eventId"`
	UserName  string    `bun:"user_name,nullzero" json:"userName,omitempty"`
	Rating    int       `bun:"rating,notnull" json:"rating"`
	Review    string    `bun:"review,nullzero" json:"review,omitempty"`
	CreatedAt time.Time `bun:"created_at,nullzero" json:"createdAt"`
}

type EventPrice struct {
	bun.BaseModel `bun:"table:event_prices"`

	ID             int64   `bun:"id,pk,autoincrement" json:"id"`
	EventID        string  `bun:"event_id,notnull" json:"eventId"`
	Travelers      int     `bun:"travelers,notnull" json:"travelers"`
	PricePerPerson float64 `bun:"price_per_person,notnull" json:"pricePerPerson"`
}
