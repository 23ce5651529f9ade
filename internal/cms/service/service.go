package cms

import (
	"fmt"
	"strings"

	"journey-api/internal/logger"
	"journey-api/internal/models"
	"journey-api/internal/storage"
)

// ValidationError marks input problems the API should report as 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

type CMSDBLayer interface {
	GetHeroSettings() (*models.HeroSettings, error)
	UpsertHeroSettings(s models.HeroSettings) (*models.HeroSettings, error)
	GetNavbarSettings() (*models.NavbarSettings, error)
	UpsertNavbarSettings(s models.NavbarSettings) (*models.NavbarSettings, error)
	GetThemeSettings() (*models.ThemeSettings, error)
	UpsertThemeSettings(s models.ThemeSettings) (*models.ThemeSettings, error)
	GetContactSettings() (*models.ContactSettings, error)
	UpsertContactSettings(s models.ContactSettings) (*models.ContactSettings, error)
	GetFooterSettings() (*models.FooterSettings, error)
	UpsertFooterSettings(s models.FooterSettings) (*models.FooterSettings, error)
	GetSeoSettings() (*models.SeoSettings, error)
	UpsertSeoSettings(s models.SeoSettings) (*models.SeoSettings, error)
	GetAboutSettings() (*models.AboutSettings, error)
	UpsertAboutSettings(s models.AboutSettings) (*models.AboutSettings, error)
	GetPresidentMessageSettings() (*models.PresidentMessageSettings, error)
	UpsertPresidentMessageSettings(s models.PresidentMessageSettings) (*models.PresidentMessageSettings, error)
	GetPartnerSettings() (*models.PartnerSettings, error)
	UpsertPartnerSettings(s models.PartnerSettings) (*models.PartnerSettings, error)
	GetBookingPageSettings() (*models.BookingPageSettings, error)
	UpsertBookingPageSettings(s models.BookingPageSettings) (*models.BookingPageSettings, error)

	GetLandingSections(activeOnly bool) ([]models.LandingSection, error)
	GetLandingSectionBySlug(slug string) (*models.LandingSection, error)
	CreateLandingSection(section models.LandingSection) (*models.LandingSection, error)
	UpdateLandingSection(id int64, section models.LandingSection) (*models.LandingSection, error)
	DeleteLandingSection(id int64) error

	GetSectionBlocks(sectionID int64, activeOnly bool) ([]models.SectionBlock, error)
	CreateSectionBlock(block models.SectionBlock) (*models.SectionBlock, error)
	UpdateSectionBlock(id int64, block models.SectionBlock) (*models.SectionBlock, error)
	DeleteSectionBlock(id int64) error

	GetFocusItems(activeOnly bool) ([]models.FocusItem, error)
	CreateFocusItem(item models.FocusItem) (*models.FocusItem, error)
	UpdateFocusItem(id int64, item models.FocusItem) (*models.FocusItem, error)
	DeleteFocusItem(id int64) error

	GetTeamMembers(activeOnly bool) ([]models.TeamMember, error)
	CreateTeamMember(member models.TeamMember) (*models.TeamMember, error)
	UpdateTeamMember(id int64, member models.TeamMember) (*models.TeamMember, error)
	DeleteTeamMember(id int64) error

	GetApprovedTestimonials() ([]models.LandingTestimonial, error)
	GetAllTestimonials() ([]models.LandingTestimonial, error)
	CreateTestimonial(t models.LandingTestimonial) (*models.LandingTestimonial, error)
	UpdateTestimonial(id int64, t models.LandingTestimonial) (*models.LandingTestimonial, error)
	DeleteTestimonial(id int64) error

	GetSiteStats(activeOnly bool) ([]models.SiteStat, error)
	CreateSiteStat(stat models.SiteStat) (*models.SiteStat, error)
	UpdateSiteStat(id int64, stat models.SiteStat) (*models.SiteStat, error)
	DeleteSiteStat(id int64) error

	GetPartners(activeOnly bool) ([]models.Partner, error)
	CreatePartner(partner models.Partner) (*models.Partner, error)
	UpdatePartner(id int64, partner models.Partner) (*models.Partner, error)
	DeletePartner(id int64) error

	GetMediaAssets() ([]models.MediaAsset, error)
	GetMediaAsset(id int64) (*models.MediaAsset, error)
	CreateMediaAsset(asset models.MediaAsset) (*models.MediaAsset, error)
	DeleteMediaAsset(id int64) error
}

type CMSService struct {
	db     CMSDBLayer
	logger *logger.Logger
}

func NewCMSService(db CMSDBLayer, log *logger.Logger) *CMSService {
	return &CMSService{db: db, logger: log}
}

// ---------------- SINGLETONS ----------------
//
// Public reads never 404: an absent row comes back as the zero settings
// object carrying the fixed id, matching what the first upsert would
// produce.

func (s *CMSService) GetHeroSettings() (*models.HeroSettings, error) {
	row, err := s.db.GetHeroSettings()
	if storage.IsNotFound(err) {
		return &models.HeroSettings{ID: models.SingletonID}, nil
	}
	return row, err
}

func (s *CMSService) UpdateHeroSettings(settings models.HeroSettings, updatedBy string) (*models.HeroSettings, error) {
	settings.UpdatedBy = updatedBy
	return s.db.UpsertHeroSettings(settings)
}

func (s *CMSService) GetNavbarSettings() (*models.NavbarSettings, error) {
	row, err := s.db.GetNavbarSettings()
	if storage.IsNotFound(err) {
		return &models.NavbarSettings{ID: models.SingletonID}, nil
	}
	return row, err
}

func (s *CMSService) UpdateNavbarSettings(settings models.NavbarSettings, updatedBy string) (*models.NavbarSettings, error) {
	if err := validateNavigationLinks(settings.NavigationLinks); err != nil {
		return nil, err
	}
	settings.UpdatedBy = updatedBy
	return s.db.UpsertNavbarSettings(settings)
}

// validateNavigationLinks rejects payloads that are not a list of
// {label, href} objects before they reach the column.
func validateNavigationLinks(links models.JSONList) error {
	for i, link := range links {
		if link == nil {
			return ValidationError(fmt.Sprintf("navigationLinks[%d] must be an object", i))
		}
		label, _ := link["label"].(string)
		href, _ := link["href"].(string)
		if strings.TrimSpace(label) == "" || strings.TrimSpace(href) == "" {
			return ValidationError(fmt.Sprintf("navigationLinks[%d] must have label and href", i))
		}
	}
	return nil
}

func (s *CMSService) GetThemeSettings() (*models.ThemeSettings, error) {
	row, err := s.db.GetThemeSettings()
	if storage.IsNotFound(err) {
		return &models.ThemeSettings{ID: models.SingletonID}, nil
	}
	return row, err
}

func (s *CMSService) UpdateThemeSettings(settings models.ThemeSettings, updatedBy string) (*models.ThemeSettings, error) {
	settings.UpdatedBy = updatedBy
	return s.db.UpsertThemeSettings(settings)
}

func (s *CMSService) GetContactSettings() (*models.ContactSettings, error) {
	row, err := s.db.GetContactSettings()
	if storage.IsNotFound(err) {
		return &models.ContactSettings{ID: models.SingletonID}, nil
	}
	return row, err
}

func (s *CMSService) UpdateContactSettings(settings models.ContactSettings, updatedBy string) (*models.ContactSettings, error) {
	settings.UpdatedBy = updatedBy
	return s.db.UpsertContactSettings(settings)
}

func (s *CMSService) GetFooterSettings() (*models.FooterSettings, error) {
	row, err := s.db.GetFooterSettings()
	if storage.IsNotFound(err) {
		return &models.FooterSettings{ID: models.SingletonID}, nil
	}
	return row, err
}

func (s *CMSService) UpdateFooterSettings(settings models.FooterSettings, updatedBy string) (*models.FooterSettings, error) {
	settings.UpdatedBy = updatedBy
	return s.db.UpsertFooterSettings(settings)
}

func (s *CMSService) GetSeoSettings() (*models.SeoSettings, error) {
	row, err := s.db.GetSeoSettings()
	if storage.IsNotFound(err) {
		return &models.SeoSettings{ID: models.SingletonID}, nil
	}
	return row, err
}

func (s *CMSService) UpdateSeoSettings(settings models.SeoSettings, updatedBy string) (*models.SeoSettings, error) {
	settings.UpdatedBy = updatedBy
	return s.db.UpsertSeoSettings(settings)
}

func (s *CMSService) GetAboutSettings() (*models.AboutSettings, error) {
	row, err := s.db.GetAboutSettings()
	if storage.IsNotFound(err) {
		return &models.AboutSettings{ID: models.SingletonID, IsActive: true}, nil
	}
	return row, err
}

func (s *CMSService) UpdateAboutSettings(settings models.AboutSettings, updatedBy string) (*models.AboutSettings, error) {
	settings.UpdatedBy = updatedBy
	return s.db.UpsertAboutSettings(settings)
}

func (s *CMSService) GetPresidentMessageSettings() (*models.PresidentMessageSettings, error) {
	row, err := s.db.GetPresidentMessageSettings()
	if storage.IsNotFound(err) {
		return &models.PresidentMessageSettings{ID: models.SingletonID, IsActive: true}, nil
	}
	return row, err
}

func (s *CMSService) UpdatePresidentMessageSettings(settings models.PresidentMessageSettings, updatedBy string) (*models.PresidentMessageSettings, error) {
	settings.UpdatedBy = updatedBy
	return s.db.UpsertPresidentMessageSettings(settings)
}

func (s *CMSService) GetPartnerSettings() (*models.PartnerSettings, error) {
	row, err := s.db.GetPartnerSettings()
	if storage.IsNotFound(err) {
		return &models.PartnerSettings{ID: models.SingletonID, IsActive: true}, nil
	}
	return row, err
}

func (s *CMSService) UpdatePartnerSettings(settings models.PartnerSettings, updatedBy string) (*models.PartnerSettings, error) {
	settings.UpdatedBy = updatedBy
	return s.db.UpsertPartnerSettings(settings)
}

func (s *CMSService) GetBookingPageSettings() (*models.BookingPageSettings, error) {
	row, err := s.db.GetBookingPageSettings()
	if storage.IsNotFound(err) {
		return &models.BookingPageSettings{ID: models.BookingPageSettingsID}, nil
	}
	return row, err
}

func (s *CMSService) UpdateBookingPageSettings(settings models.BookingPageSettings) (*models.BookingPageSettings, error) {
	return s.db.UpsertBookingPageSettings(settings)
}

// ---------------- LANDING SECTIONS ----------------

func (s *CMSService) GetLandingSections(includeInactive bool) ([]models.LandingSection, error) {
	return s.db.GetLandingSections(!includeInactive)
}

func (s *CMSService) GetLandingSectionBySlug(slug string) (*models.LandingSection, error) {
	return s.db.GetLandingSectionBySlug(slug)
}

func (s *CMSService) CreateLandingSection(section models.LandingSection) (*models.LandingSection, error) {
	if strings.TrimSpace(section.Slug) == "" || strings.TrimSpace(section.Title) == "" {
		return nil, ValidationError("slug and title are required")
	}
	created, err := s.db.CreateLandingSection(section)
	if err != nil {
		s.logger.Error("CMS", fmt.Sprintf("Failed to create landing section: %v", err))
		return nil, err
	}
	return created, nil
}

func (s *CMSService) UpdateLandingSection(id int64, section models.LandingSection) (*models.LandingSection, error) {
	return s.db.UpdateLandingSection(id, section)
}

func (s *CMSService) DeleteLandingSection(id int64) error {
	return s.db.DeleteLandingSection(id)
}

// ---------------- SECTION BLOCKS ----------------

func (s *CMSService) GetSectionBlocks(sectionID int64, includeInactive bool) ([]models.SectionBlock, error) {
	return s.db.GetSectionBlocks(sectionID, !includeInactive)
}

func (s *CMSService) CreateSectionBlock(block models.SectionBlock) (*models.SectionBlock, error) {
	if block.SectionID == 0 || strings.TrimSpace(block.BlockType) == "" {
		return nil, ValidationError("sectionId and blockType are required")
	}
	return s.db.CreateSectionBlock(block)
}

func (s *CMSService) UpdateSectionBlock(id int64, block models.SectionBlock) (*models.SectionBlock, error) {
	return s.db.UpdateSectionBlock(id, block)
}

func (s *CMSService) DeleteSectionBlock(id int64) error {
	return s.db.DeleteSectionBlock(id)
}

// ---------------- FOCUS ITEMS ----------------

func (s *CMSService) GetFocusItems(includeInactive bool) ([]models.FocusItem, error) {
	return s.db.GetFocusItems(!includeInactive)
}

func (s *CMSService) CreateFocusItem(item models.FocusItem) (*models.FocusItem, error) {
	if strings.TrimSpace(item.Title) == "" || strings.TrimSpace(item.Description) == "" {
		return nil, ValidationError("title and description are required")
	}
	return s.db.CreateFocusItem(item)
}

func (s *CMSService) UpdateFocusItem(id int64, item models.FocusItem) (*models.FocusItem, error) {
	return s.db.UpdateFocusItem(id, item)
}

func (s *CMSService) DeleteFocusItem(id int64) error {
	return s.db.DeleteFocusItem(id)
}

// ---------------- TEAM MEMBERS ----------------

func (s *CMSService) GetTeamMembers(includeInactive bool) ([]models.TeamMember, error) {
	return s.db.GetTeamMembers(!includeInactive)
}

func (s *CMSService) CreateTeamMember(member models.TeamMember) (*models.TeamMember, error) {
	if strings.TrimSpace(member.Name) == "" || strings.TrimSpace(member.Role) == "" {
		return nil, ValidationError("name and role are required")
	}
	return s.db.CreateTeamMember(member)
}

func (s *CMSService) UpdateTeamMember(id int64, member models.TeamMember) (*models.TeamMember, error) {
	return s.db.UpdateTeamMember(id, member)
}

func (s *CMSService) DeleteTeamMember(id int64) error {
	return s.db.DeleteTeamMember(id)
}

// ---------------- TESTIMONIALS ----------------

func (s *CMSService) GetApprovedTestimonials() ([]models.LandingTestimonial, error) {
	return s.db.GetApprovedTestimonials()
}

func (s *CMSService) GetAllTestimonials() ([]models.LandingTestimonial, error) {
	return s.db.GetAllTestimonials()
}

// SubmitTestimonial is the public path; entries wait for admin approval.
func (s *CMSService) SubmitTestimonial(t models.LandingTestimonial) (*models.LandingTestimonial, error) {
	if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Feedback) == "" {
		return nil, ValidationError("name and feedback are required")
	}
	t.IsApproved = false
	return s.db.CreateTestimonial(t)
}

func (s *CMSService) CreateTestimonial(t models.LandingTestimonial) (*models.LandingTestimonial, error) {
	if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Feedback) == "" {
		return nil, ValidationError("name and feedback are required")
	}
	return s.db.CreateTestimonial(t)
}

func (s *CMSService) UpdateTestimonial(id int64, t models.LandingTestimonial) (*models.LandingTestimonial, error) {
	return s.db.UpdateTestimonial(id, t)
}

func (s *CMSService) DeleteTestimonial(id int64) error {
	return s.db.DeleteTestimonial(id)
}

// ---------------- SITE STATS ----------------

func (s *CMSService) GetSiteStats(includeInactive bool) ([]models.SiteStat, error) {
	return s.db.GetSiteStats(!includeInactive)
}

func (s *CMSService) CreateSiteStat(stat models.SiteStat) (*models.SiteStat, error) {
	if strings.TrimSpace(stat.Label) == "" || strings.TrimSpace(stat.Value) == "" {
		return nil, ValidationError("label and value are required")
	}
	return s.db.CreateSiteStat(stat)
}

func (s *CMSService) UpdateSiteStat(id int64, stat models.SiteStat) (*models.SiteStat, error) {
	return s.db.UpdateSiteStat(id, stat)
}

func (s *CMSService) DeleteSiteStat(id int64) error {
	return s.db.DeleteSiteStat(id)
}

// ---------------- PARTNERS ----------------

func (s *CMSService) GetPartners(includeInactive bool) ([]models.Partner, error) {
	return s.db.GetPartners(!includeInactive)
}

func (s *CMSService) CreatePartner(partner models.Partner) (*models.Partner, error) {
	if strings.TrimSpace(partner.Name) == "" {
		return nil, ValidationError("name is required")
	}
	return s.db.CreatePartner(partner)
}

func (s *CMSService) UpdatePartner(id int64, partner models.Partner) (*models.Partner, error) {
	return s.db.UpdatePartner(id, partner)
}

func (s *CMSService) DeletePartner(id int64) error {
	return s.db.DeletePartner(id)
}

// ---------------- MEDIA ----------------

func (s *CMSService) GetMediaAssets() ([]models.MediaAsset, error) {
	return s.db.GetMediaAssets()
}

func (s *CMSService) GetMediaAsset(id int64) (*models.MediaAsset, error) {
	return s.db.GetMediaAsset(id)
}

func (s *CMSService) CreateMediaAsset(asset models.MediaAsset, uploadedBy string) (*models.MediaAsset, error) {
	if strings.TrimSpace(asset.FileName) == "" || strings.TrimSpace(asset.FileURL) == "" {
		return nil, ValidationError("fileName and fileUrl are required")
	}
	asset.UploadedBy = uploadedBy
	return s.db.CreateMediaAsset(asset)
}

func (s *CMSService) DeleteMediaAsset(id int64) error {
	return s.db.DeleteMediaAsset(id)
}
