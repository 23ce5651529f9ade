package models

import (
	"time"

	"github.com/uptrace/bun"
)

// SingletonID keys every per-section settings row. The update path is an
// upsert so the row is created on first write.
const SingletonID = "default"

// BookingPageSettingsID is the one settings row that predates the
// "default" convention.
const BookingPageSettingsID = "booking-page-settings"

type HeroSettings struct {
	bun.BaseModel `bun:"table:hero_settings"`

	ID                       string     `bun:"id,pk" json:"id"`
	Title                    string     `bun:"title" json:"title"`
	Subtitle                 string     `bun:"subtitle" json:"subtitle"`
	PrimaryButtonText        string     `bun:"primary_button_text,nullzero" json:"primaryButtonText,omitempty"`
	PrimaryButtonLink        string     `bun:"primary_button_link,nullzero" json:"primaryButtonLink,omitempty"`
	SecondaryButtonText      string     `bun:"secondary_button_text,nullzero" json:"secondaryButtonText,omitempty"`
	SecondaryButtonLink      string     `bun:"secondary_button_link,nullzero" json:"secondaryButtonLink,omitempty"`
	BackgroundType           string     `bun:"background_type,nullzero" json:"backgroundType,omitempty"`
	BackgroundMediaID        int64      `bun:"background_media_id,nullzero" json:"backgroundMediaId,omitempty"`
	BackgroundOverlayColor   string     `bun:"background_overlay_color,nullzero" json:"backgroundOverlayColor,omitempty"`
	BackgroundOverlayOpacity int        `bun:"background_overlay_opacity,nullzero" json:"backgroundOverlayOpacity,omitempty"`
	TitleFontSize            string     `bun:"title_font_size,nullzero" json:"titleFontSize,omitempty"`
	TitleColor               string     `bun:"title_color,nullzero" json:"titleColor,omitempty"`
	SubtitleFontSize         string     `bun:"subtitle_font_size,nullzero" json:"subtitleFontSize,omitempty"`
	SubtitleColor            string     `bun:"subtitle_color,nullzero" json:"subtitleColor,omitempty"`
	EnableTypewriter         bool       `bun:"enable_typewriter" json:"enableTypewriter"`
	TypewriterTexts          StringList `bun:"typewriter_texts" json:"typewriterTexts"`
	UpdatedBy                string     `bun:"updated_by,nullzero" json:"updatedBy,omitempty"`
	UpdatedAt                time.Time  `bun:"updated_at,nullzero" json:"updatedAt"`
}

type NavbarSettings struct {
	bun.BaseModel `bun:"table:navbar_settings"`

	ID                   string     `bun:"id,pk" json:"id"`
	LogoType             string     `bun:"logo_type,nullzero" json:"logoType,omitempty"`
	LogoImageID          int64      `bun:"logo_image_id,nullzero" json:"logoImageId,omitempty"`
	LogoSvg              string     `bun:"logo_svg,nullzero" json:"logoSvg,omitempty"`
	LogoText             string     `bun:"logo_text,nullzero" json:"logoText,omitempty"`
	LogoSize             int        `bun:"logo_size,nullzero" json:"logoSize,omitempty"`
	LogoLink             string     `bun:"logo_link,nullzero" json:"logoLink,omitempty"`
	NavigationLinks      JSONList   `bun:"navigation_links" json:"navigationLinks"`
	ShowLanguageSwitcher bool       `bun:"show_language_switcher" json:"showLanguageSwitcher"`
	AvailableLanguages   StringList `bun:"available_languages" json:"availableLanguages"`
	ShowDarkModeToggle   bool       `bun:"show_dark_mode_toggle" json:"showDarkModeToggle"`
	LoginButtonText      string     `bun:"login_button_text,nullzero" json:"loginButtonText,omitempty"`
	LoginButtonLink      string     `bun:"login_button_link,nullzero" json:"loginButtonLink,omitempty"`
	ShowLoginButton      bool       `bun:"show_login_button" json:"showLoginButton"`
	JoinButtonText       string     `bun:"join_button_text,nullzero" json:"joinButtonText,omitempty"`
	JoinButtonLink       string     `bun:"join_button_link,nullzero" json:"joinButtonLink,omitempty"`
	JoinButtonStyle      string     `bun:"join_button_style,nullzero" json:"joinButtonStyle,omitempty"`
	ShowJoinButton       bool       `bun:"show_join_button" json:"showJoinButton"`
	BackgroundColor      string     `bun:"background_color,nullzero" json:"backgroundColor,omitempty"`
	TextColor            string     `bun:"text_color,nullzero" json:"textColor,omitempty"`
	HoverColor           string     `bun:"hover_color,nullzero" json:"hoverColor,omitempty"`
	FontFamily           string     `bun:"font_family,nullzero" json:"fontFamily,omitempty"`
	FontSize             string     `bun:"font_size,nullzero" json:"fontSize,omitempty"`
	IsSticky             bool       `bun:"is_sticky" json:"isSticky"`
	IsTransparent        bool       `bun:"is_transparent" json:"isTransparent"`
	Height               int        `bun:"height,nullzero" json:"height,omitempty"`
	UpdatedBy            string     `bun:"updated_by,nullzero" json:"updatedBy,omitempty"`
	UpdatedAt            time.Time  `bun:"updated_at,nullzero" json:"updatedAt"`
}

type ThemeSettings struct {
	bun.BaseModel `bun:"table:theme_settings"`

	ID             string    `bun:"id,pk" json:"id"`
	PrimaryColor   string    `bun:"primary_color,nullzero" json:"primaryColor,omitempty"`
	SecondaryColor string    `bun:"secondary_color,nullzero" json:"secondaryColor,omitempty"`
	CustomCSS      string    `bun:"custom_css,nullzero" json:"customCss,omitempty"`
	UpdatedBy      string    `bun:"updated_by,nullzero" json:"updatedBy,omitempty"`
	UpdatedAt      time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}

type ContactSettings struct {
	bun.BaseModel `bun:"table:contact_settings"`

	ID               string     `bun:"id,pk" json:"id"`
	OfficeAddress    string     `bun:"office_address,nullzero" json:"officeAddress,omitempty"`
	Email            string     `bun:"email,nullzero" json:"email,omitempty"`
	Phone            string     `bun:"phone,nullzero" json:"phone,omitempty"`
	OfficeHours      string     `bun:"office_hours,nullzero" json:"officeHours,omitempty"`
	MapLatitude      float64    `bun:"map_latitude,nullzero" json:"mapLatitude,omitempty"`
	MapLongitude     float64    `bun:"map_longitude,nullzero" json:"mapLongitude,omitempty"`
	FormRecipients   StringList `bun:"form_recipients" json:"formRecipients"`
	AutoReplyEnabled bool       `bun:"auto_reply_enabled" json:"autoReplyEnabled"`
	AutoReplyMessage string     `bun:"auto_reply_message,nullzero" json:"autoReplyMessage,omitempty"`
	SocialLinks      JSONMap    `bun:"social_links" json:"socialLinks"`
	UpdatedBy        string     `bun:"updated_by,nullzero" json:"updatedBy,omitempty"`
	UpdatedAt        time.Time  `bun:"updated_at,nullzero" json:"updatedAt"`
}

type FooterSettings struct {
	bun.BaseModel `bun:"table:footer_settings"`

	ID                    string    `bun:"id,pk" json:"id"`
	CopyrightText         string    `bun:"copyright_text,nullzero" json:"copyrightText,omitempty"`
	Description           string    `bun:"description,nullzero" json:"description,omitempty"`
	Links                 JSONList  `bun:"links" json:"links"`
	SocialLinks           JSONMap   `bun:"social_links" json:"socialLinks"`
	NewsletterEnabled     bool      `bun:"newsletter_enabled" json:"newsletterEnabled"`
	NewsletterTitle       string    `bun:"newsletter_title,nullzero" json:"newsletterTitle,omitempty"`
	NewsletterDescription string    `bun:"newsletter_description,nullzero" json:"newsletterDescription,omitempty"`
	UpdatedBy             string    `bun:"updated_by,nullzero" json:"updatedBy,omitempty"`
	UpdatedAt             time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}

type SeoSettings struct {
	bun.BaseModel `bun:"table:seo_settings"`

	ID                string    `bun:"id,pk" json:"id"`
	SiteTitle         string    `bun:"site_title,nullzero" json:"siteTitle,omitempty"`
	SiteDescription   string    `bun:"site_description,nullzero" json:"siteDescription,omitempty"`
	Keywords          string    `bun:"keywords,nullzero" json:"keywords,omitempty"`
	OgImageID         int64     `bun:"og_image,nullzero" json:"ogImageId,omitempty"`
	TwitterHandle     string    `bun:"twitter_handle,nullzero" json:"twitterHandle,omitempty"`
	GoogleAnalyticsID string    `bun:"google_analytics_id,nullzero" json:"googleAnalyticsId,omitempty"`
	FacebookPixelID   string    `bun:"facebook_pixel_id,nullzero" json:"facebookPixelId,omitempty"`
	CustomHeadCode    string    `bun:"custom_head_code,nullzero" json:"customHeadCode,omitempty"`
	CustomBodyCode    string    `bun:"custom_body_code,nullzero" json:"customBodyCode,omitempty"`
	UpdatedBy         string    `bun:"updated_by,nullzero" json:"updatedBy,omitempty"`
	UpdatedAt         time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}

type AboutSettings struct {
	bun.BaseModel `bun:"table:about_settings"`

	ID                string    `bun:"id,pk" json:"id"`
	IsActive          bool      `bun:"is_active" json:"isActive"`
	Title             string    `bun:"title,nullzero" json:"title,omitempty"`
	Subtitle          string    `bun:"subtitle,nullzero" json:"subtitle,omitempty"`
	Description       string    `bun:"description" json:"description"`
	ImageID           int64     `bun:"image_id,nullzero" json:"imageId,omitempty"`
	BackgroundImageID int64     `bun:"background_image_id,nullzero" json:"backgroundImageId,omitempty"`
	BackgroundColor   string    `bun:"background_color,nullzero" json:"backgroundColor,omitempty"`
	UpdatedBy         string    `bun:"updated_by,nullzero" json:"updatedBy,omitempty"`
	UpdatedAt         time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}

type PresidentMessageSettings struct {
	bun.BaseModel `bun:"table:president_message_settings"`

	ID                string    `bun:"id,pk" json:"id"`
	IsActive          bool      `bun:"is_active" json:"isActive"`
	Title             string    `bun:"title,nullzero" json:"title,omitempty"`
	PresidentName     string    `bun:"president_name,nullzero" json:"presidentName,omitempty"`
	PresidentRole     string    `bun:"president_role,nullzero" json:"presidentRole,omitempty"`
	Message           string    `bun:"message,nullzero" json:"message,omitempty"`
	Quote             string    `bun:"quote,nullzero" json:"quote,omitempty"`
	PhotoID           int64     `bun:"photo_id,nullzero" json:"photoId,omitempty"`
	SignatureID       int64     `bun:"signature_id,nullzero" json:"signatureId,omitempty"`
	BackgroundImageID int64     `bun:"background_image_id,nullzero" json:"backgroundImageId,omitempty"`
	BackgroundColor   string    `bun:"background_color,nullzero" json:"backgroundColor,omitempty"`
	TitleColor        string    `bun:"title_color,nullzero" json:"titleColor,omitempty"`
	MessageColor      string    `bun:"message_color,nullzero" json:"messageColor,omitempty"`
	ImagePosition     string    `bun:"image_position,nullzero" json:"imagePosition,omitempty"`
	UpdatedBy         string    `bun:"updated_by,nullzero" json:"updatedBy,omitempty"`
	UpdatedAt         time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}

type PartnerSettings struct {
	bun.BaseModel `bun:"table:partner_settings"`

	ID              string    `bun:"id,pk" json:"id"`
	IsActive        bool      `bun:"is_active" json:"isActive"`
	Title           string    `bun:"title,nullzero" json:"title,omitempty"`
	Subtitle        string    `bun:"subtitle,nullzero" json:"subtitle,omitempty"`
	BackgroundColor string    `bun:"background_color,nullzero" json:"backgroundColor,omitempty"`
	UpdatedBy       string    `bun:"updated_by,nullzero" json:"updatedBy,omitempty"`
	UpdatedAt       time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}

type BookingPageSettings struct {
	bun.BaseModel `bun:"table:booking_page_settings"`

	ID                    string    `bun:"id,pk" json:"id"`
	Title                 string    `bun:"title" json:"title"`
	Subtitle              string    `bun:"subtitle,nullzero" json:"subtitle,omitempty"`
	HeaderBackgroundImage string    `bun:"header_background_image,nullzero" json:"headerBackgroundImage,omitempty"`
	FooterText            string    `bun:"footer_text,nullzero" json:"footerText,omitempty"`
	ContactEmail          string    `bun:"contact_email,nullzero" json:"contactEmail,omitempty"`
	ContactPhone          string    `bun:"contact_phone,nullzero" json:"contactPhone,omitempty"`
	EnableReviews         bool      `bun:"enable_reviews" json:"enableReviews"`
	EnableSimilarEvents   bool      `bun:"enable_similar_events" json:"enableSimilarEvents"`
	EnableImageGallery    bool      `bun:"enable_image_gallery" json:"enableImageGallery"`
	MaxParticipants       int       `bun:"max_participants,nullzero" json:"maxParticipants,omitempty"`
	MinimumBookingHours   int       `bun:"minimum_booking_hours,nullzero" json:"minimumBookingHours,omitempty"`
	CustomCSS             string    `bun:"custom_css,nullzero" json:"customCss,omitempty"`
	SeoTitle              string    `bun:"seo_title,nullzero" json:"seoTitle,omitempty"`
	SeoDescription        string    `bun:"seo_description,nullzero" json:"seoDescription,omitempty"`
	UpdatedAt             time.Time `bun:"updated_at,nullzero" json:"updatedAt"`
}
