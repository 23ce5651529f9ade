package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"journey-api/internal/models"
	"journey-api/internal/storage"
)

type DB struct {
	Bun *bun.DB
}

// getSingleton fetches the per-section settings row by its fixed id.
func getSingleton[T any](db bun.IDB, id string) (*T, error) {
	var row T
	err := db.NewSelect().
		Model(&row).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// upsertSingleton writes the settings row in one statement. With no SET
// clauses bun expands DO UPDATE to all non-PK columns, so concurrent first
// writes cannot race: one inserts, the other updates.
func upsertSingleton[T any](db bun.IDB, model *T, id string) (*T, error) {
	_, err := db.NewInsert().
		Model(model).
		On("CONFLICT (id) DO UPDATE").
		Exec(context.Background())
	if err != nil {
		return nil, err
	}
	return getSingleton[T](db, id)
}

// listOrdered returns a collection sorted by its ordering column.
func listOrdered[T any](db bun.IDB, activeOnly bool) ([]T, error) {
	var items []T
	q := db.NewSelect().Model(&items).Order("ordering ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Scan(context.Background()); err != nil {
		return nil, err
	}
	return items, nil
}

// softDelete hides a collection row; ordering of the survivors is untouched.
func softDelete[T any](db bun.IDB, id int64) error {
	_, err := db.NewUpdate().
		Model((*T)(nil)).
		Set("is_active = ?", false).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}

// ---------------- SINGLETONS ----------------

func (d *DB) GetHeroSettings() (*models.HeroSettings, error) {
	return getSingleton[models.HeroSettings](d.Bun, models.SingletonID)
}

func (d *DB) UpsertHeroSettings(s models.HeroSettings) (*models.HeroSettings, error) {
	s.ID = models.SingletonID
	s.UpdatedAt = time.Now()
	return upsertSingleton(d.Bun, &s, s.ID)
}

func (d *DB) GetNavbarSettings() (*models.NavbarSettings, error) {
	return getSingleton[models.NavbarSettings](d.Bun, models.SingletonID)
}

func (d *DB) UpsertNavbarSettings(s models.NavbarSettings) (*models.NavbarSettings, error) {
	s.ID = models.SingletonID
	s.UpdatedAt = time.Now()
	return upsertSingleton(d.Bun, &s, s.ID)
}

func (d *DB) GetThemeSettings() (*models.ThemeSettings, error) {
	return getSingleton[models.ThemeSettings](d.Bun, models.SingletonID)
}

func (d *DB) UpsertThemeSettings(s models.ThemeSettings) (*models.ThemeSettings, error) {
	s.ID = models.SingletonID
	s.UpdatedAt = time.Now()
	return upsertSingleton(d.Bun, &s, s.ID)
}

func (d *DB) GetContactSettings() (*models.ContactSettings, error) {
	return getSingleton[models.ContactSettings](d.Bun, models.SingletonID)
}

func (d *DB) UpsertContactSettings(s models.ContactSettings) (*models.ContactSettings, error) {
	s.ID = models.SingletonID
	s.UpdatedAt = time.Now()
	return upsertSingleton(d.Bun, &s, s.ID)
}

func (d *DB) GetFooterSettings() (*models.FooterSettings, error) {
	return getSingleton[models.FooterSettings](d.Bun, models.SingletonID)
}

func (d *DB) UpsertFooterSettings(s models.FooterSettings) (*models.FooterSettings, error) {
	s.ID = models.SingletonID
	s.UpdatedAt = time.Now()
	return upsertSingleton(d.Bun, &s, s.ID)
}

func (d *DB) GetSeoSettings() (*models.SeoSettings, error) {
	return getSingleton[models.SeoSettings](d.Bun, models.SingletonID)
}

func (d *DB) UpsertSeoSettings(s models.SeoSettings) (*models.SeoSettings, error) {
	s.ID = models.SingletonID
	s.UpdatedAt = time.Now()
	return upsertSingleton(d.Bun, &s, s.ID)
}

func (d *DB) GetAboutSettings() (*models.AboutSettings, error) {
	return getSingleton[models.AboutSettings](d.Bun, models.SingletonID)
}

func (d *DB) UpsertAboutSettings(s models.AboutSettings) (*models.AboutSettings, error) {
	s.ID = models.SingletonID
	s.UpdatedAt = time.Now()
	return upsertSingleton(d.Bun, &s, s.ID)
}

func (d *DB) GetPresidentMessageSettings() (*models.PresidentMessageSettings, error) {
	return getSingleton[models.PresidentMessageSettings](d.Bun, models.SingletonID)
}

func (d *DB) UpsertPresidentMessageSettings(s models.PresidentMessageSettings) (*models.PresidentMessageSettings, error) {
	s.ID = models.SingletonID
	s.UpdatedAt = time.Now()
	return upsertSingleton(d.Bun, &s, s.ID)
}

func (d *DB) GetPartnerSettings() (*models.PartnerSettings, error) {
	return getSingleton[models.PartnerSettings](d.Bun, models.SingletonID)
}

func (d *DB) UpsertPartnerSettings(s models.PartnerSettings) (*models.PartnerSettings, error) {
	s.ID = models.SingletonID
	s.UpdatedAt = time.Now()
	return upsertSingleton(d.Bun, &s, s.ID)
}

func (d *DB) GetBookingPageSettings() (*models.BookingPageSettings, error) {
	return getSingleton[models.BookingPageSettings](d.Bun, models.BookingPageSettingsID)
}

func (d *DB) UpsertBookingPageSettings(s models.BookingPageSettings) (*models.BookingPageSettings, error) {
	s.ID = models.BookingPageSettingsID
	s.UpdatedAt = time.Now()
	return upsertSingleton(d.Bun, &s, s.ID)
}

// ---------------- LANDING SECTIONS ----------------

func (d *DB) GetLandingSections(activeOnly bool) ([]models.LandingSection, error) {
	return listOrdered[models.LandingSection](d.Bun, activeOnly)
}

func (d *DB) GetLandingSectionBySlug(slug string) (*models.LandingSection, error) {
	var section models.LandingSection
	err := d.Bun.NewSelect().
		Model(&section).
		Where("slug = ?", slug).
		Where("is_active = ?", true).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (d *DB) CreateLandingSection(section models.LandingSection) (*models.LandingSection, error) {
	section.IsActive = true
	if section.CreatedAt.IsZero() {
		section.CreatedAt = time.Now()
	}
	section.UpdatedAt = time.Now()
	return storage.InsertAndFetch(d.Bun, &section)
}

func (d *DB) UpdateLandingSection(id int64, section models.LandingSection) (*models.LandingSection, error) {
	section.ID = id
	section.UpdatedAt = time.Now()
	return storage.UpdateAndFetchByID(d.Bun, &section)
}

func (d *DB) DeleteLandingSection(id int64) error {
	return softDelete[models.LandingSection](d.Bun, id)
}

// ---------------- SECTION BLOCKS ----------------

func (d *DB) GetSectionBlocks(sectionID int64, activeOnly bool) ([]models.SectionBlock, error) {
	var blocks []models.SectionBlock
	q := d.Bun.NewSelect().
		Model(&blocks).
		Where("section_id = ?", sectionID).
		Order("ordering ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Scan(context.Background()); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (d *DB) CreateSectionBlock(block models.SectionBlock) (*models.SectionBlock, error) {
	block.IsActive = true
	if block.CreatedAt.IsZero() {
		block.CreatedAt = time.Now()
	}
	block.UpdatedAt = time.Now()
	return storage.InsertAndFetch(d.Bun, &block)
}

func (d *DB) UpdateSectionBlock(id int64, block models.SectionBlock) (*models.SectionBlock, error) {
	block.ID = id
	block.UpdatedAt = time.Now()
	return storage.UpdateAndFetchByID(d.Bun, &block)
}

func (d *DB) DeleteSectionBlock(id int64) error {
	return softDelete[models.SectionBlock](d.Bun, id)
}

// ---------------- FOCUS ITEMS ----------------

func (d *DB) GetFocusItems(activeOnly bool) ([]models.FocusItem, error) {
	return listOrdered[models.FocusItem](d.Bun, activeOnly)
}

func (d *DB) CreateFocusItem(item models.FocusItem) (*models.FocusItem, error) {
	item.IsActive = true
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	item.UpdatedAt = time.Now()
	return storage.InsertAndFetch(d.Bun, &item)
}

func (d *DB) UpdateFocusItem(id int64, item models.FocusItem) (*models.FocusItem, error) {
	item.ID = id
	item.UpdatedAt = time.Now()
	return storage.UpdateAndFetchByID(d.Bun, &item)
}

func (d *DB) DeleteFocusItem(id int64) error {
	return softDelete[models.FocusItem](d.Bun, id)
}

// ---------------- TEAM MEMBERS ----------------

func (d *DB) GetTeamMembers(activeOnly bool) ([]models.TeamMember, error) {
	return listOrdered[models.TeamMember](d.Bun, activeOnly)
}

func (d *DB) CreateTeamMember(member models.TeamMember) (*models.TeamMember, error) {
	member.IsActive = true
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now()
	}
	member.UpdatedAt = time.Now()
	return storage.InsertAndFetch(d.Bun, &member)
}

func (d *DB) UpdateTeamMember(id int64, member models.TeamMember) (*models.TeamMember, error) {
	member.ID = id
	member.UpdatedAt = time.Now()
	return storage.UpdateAndFetchByID(d.Bun, &member)
}

func (d *DB) DeleteTeamMember(id int64) error {
	return softDelete[models.TeamMember](d.Bun, id)
}

// ---------------- TESTIMONIALS ----------------

// GetApprovedTestimonials → only entries an admin has approved show up
// publicly.
func (d *DB) GetApprovedTestimonials() ([]models.LandingTestimonial, error) {
	var testimonials []models.LandingTestimonial
	err := d.Bun.NewSelect().
		Model(&testimonials).
		Where("is_approved = ?", true).
		Where("is_active = ?", true).
		Order("ordering ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (d *DB) GetAllTestimonials() ([]models.LandingTestimonial, error) {
	return listOrdered[models.LandingTestimonial](d.Bun, false)
}

func (d *DB) CreateTestimonial(t models.LandingTestimonial) (*models.LandingTestimonial, error) {
	t.IsActive = true
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	t.UpdatedAt = time.Now()
	return storage.InsertAndFetch(d.Bun, &t)
}

func (d *DB) UpdateTestimonial(id int64, t models.LandingTestimonial) (*models.LandingTestimonial, error) {
	t.ID = id
	t.UpdatedAt = time.Now()
	return storage.UpdateAndFetchByID(d.Bun, &t)
}

func (d *DB) DeleteTestimonial(id int64) error {
	return softDelete[models.LandingTestimonial](d.Bun, id)
}

// ---------------- SITE STATS ----------------

func (d *DB) GetSiteStats(activeOnly bool) ([]models.SiteStat, error) {
	return listOrdered[models.SiteStat](d.Bun, activeOnly)
}

func (d *DB) CreateSiteStat(stat models.SiteStat) (*models.SiteStat, error) {
	stat.IsActive = true
	if stat.CreatedAt.IsZero() {
		stat.CreatedAt = time.Now()
	}
	stat.UpdatedAt = time.Now()
	return storage.InsertAndFetch(d.Bun, &stat)
}

func (d *DB) UpdateSiteStat(id int64, stat models.SiteStat) (*models.SiteStat, error) {
	stat.ID = id
	stat.UpdatedAt = time.Now()
	return storage.UpdateAndFetchByID(d.Bun, &stat)
}

func (d *DB) DeleteSiteStat(id int64) error {
	return softDelete[models.SiteStat](d.Bun, id)
}

// ---------------- PARTNERS ----------------

func (d *DB) GetPartners(activeOnly bool) ([]models.Partner, error) {
	return listOrdered[models.Partner](d.Bun, activeOnly)
}

func (d *DB) CreatePartner(partner models.Partner) (*models.Partner, error) {
	partner.IsActive = true
	if partner.CreatedAt.IsZero() {
		partner.CreatedAt = time.Now()
	}
	partner.UpdatedAt = time.Now()
	return storage.InsertAndFetch(d.Bun, &partner)
}

func (d *DB) UpdatePartner(id int64, partner models.Partner) (*models.Partner, error) {
	partner.ID = id
	partner.UpdatedAt = time.Now()
	return storage.UpdateAndFetchByID(d.Bun, &partner)
}

func (d *DB) DeletePartner(id int64) error {
	return softDelete[models.Partner](d.Bun, id)
}

// ---------------- MEDIA ----------------

func (d *DB) GetMediaAssets() ([]models.MediaAsset, error) {
	var assets []models.MediaAsset
	err := d.Bun.NewSelect().
		Model(&assets).
		Order("created_at DESC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (d *DB) GetMediaAsset(id int64) (*models.MediaAsset, error) {
	var asset models.MediaAsset
	err := d.Bun.NewSelect().
		Model(&asset).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (d *DB) CreateMediaAsset(asset models.MediaAsset) (*models.MediaAsset, error) {
	if asset.CreatedAt.IsZero() {
		asset.CreatedAt = time.Now()
	}
	return storage.InsertAndFetch(d.Bun, &asset)
}

// DeleteMediaAsset removes the row outright. Media rows have no
// is_active column.
func (d *DB) DeleteMediaAsset(id int64) error {
	_, err := d.Bun.NewDelete().
		Model((*models.MediaAsset)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}
