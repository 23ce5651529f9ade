package db_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"journey-api/internal/cms/db"
	"journey-api/internal/models"
	"journey-api/internal/storage"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	for _, model := range []interface{}{
		(*models.HeroSettings)(nil),
		(*models.ThemeSettings)(nil),
		(*models.BookingPageSettings)(nil),
		(*models.LandingSection)(nil),
		(*models.SectionBlock)(nil),
		(*models.FocusItem)(nil),
		(*models.LandingTestimonial)(nil),
		(*models.SiteStat)(nil),
		(*models.Partner)(nil),
		(*models.MediaAsset)(nil),
	} {
		if _, err := bunDB.NewCreateTable().Model(model).Exec(context.Background()); err != nil {
			t.Fatalf("Failed to create table: %v", err)
		}
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func TestSingletonUpsertIsIdempotent(t *testing.T) {
	cmsDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	_, err := cmsDB.GetHeroSettings()
	assert.True(t, storage.IsNotFound(err))

	first, err := cmsDB.UpsertHeroSettings(models.HeroSettings{Title: "Explore the world"})
	require.NoError(t, err)
	assert.Equal(t, models.SingletonID, first.ID)

	second, err := cmsDB.UpsertHeroSettings(models.HeroSettings{Title: "Explore together"})
	require.NoError(t, err)
	assert.Equal(t, models.SingletonID, second.ID)
	assert.Equal(t, "Explore together", second.Title)

	count, err := bunDB.NewSelect().Model((*models.HeroSettings)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBookingPageSettingsUsesOwnID(t *testing.T) {
	cmsDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	saved, err := cmsDB.UpsertBookingPageSettings(models.BookingPageSettings{Title: "Book an adventure"})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPageSettingsID, saved.ID)

	found, err := cmsDB.GetBookingPageSettings()
	require.NoError(t, err)
	assert.Equal(t, "Book an adventure", found.Title)
}

func TestLandingSections(t *testing.T) {
	cmsDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	second, err := cmsDB.CreateLandingSection(models.LandingSection{Slug: "focus", Title: "Our Focus", SectionType: "focus", Ordering: 2})
	require.NoError(t, err)
	_, err = cmsDB.CreateLandingSection(models.LandingSection{Slug: "hero", Title: "Hero", SectionType: "hero", Ordering: 1})
	require.NoError(t, err)

	sections, err := cmsDB.GetLandingSections(true)
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "hero", sections[0].Slug)

	bySlug, err := cmsDB.GetLandingSectionBySlug("focus")
	require.NoError(t, err)
	assert.Equal(t, second.ID, bySlug.ID)

	require.NoError(t, cmsDB.DeleteLandingSection(second.ID))

	active, err := cmsDB.GetLandingSections(true)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	// Hidden sections stay visible to the admin listing.
	all, err := cmsDB.GetLandingSections(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = cmsDB.GetLandingSectionBySlug("focus")
	assert.True(t, storage.IsNotFound(err))
}

func TestSectionBlocksScopedToSection(t *testing.T) {
	cmsDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	section, err := cmsDB.CreateLandingSection(models.LandingSection{Slug: "hero", Title: "Hero", SectionType: "hero"})
	require.NoError(t, err)
	other, err := cmsDB.CreateLandingSection(models.LandingSection{Slug: "focus", Title: "Focus", SectionType: "focus"})
	require.NoError(t, err)

	_, err = cmsDB.CreateSectionBlock(models.SectionBlock{SectionID: section.ID, BlockType: "text", Ordering: 2})
	require.NoError(t, err)
	_, err = cmsDB.CreateSectionBlock(models.SectionBlock{SectionID: section.ID, BlockType: "image", Ordering: 1})
	require.NoError(t, err)
	_, err = cmsDB.CreateSectionBlock(models.SectionBlock{SectionID: other.ID, BlockType: "text", Ordering: 1})
	require.NoError(t, err)

	blocks, err := cmsDB.GetSectionBlocks(section.ID, true)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "image", blocks[0].BlockType)
}

func TestApprovedTestimonialFilter(t *testing.T) {
	cmsDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	approved, err := cmsDB.CreateTestimonial(models.LandingTestimonial{Name: "Lena", Feedback: "Great trip", IsApproved: true, Ordering: 2})
	require.NoError(t, err)
	_, err = cmsDB.CreateTestimonial(models.LandingTestimonial{Name: "Omar", Feedback: "Waiting", IsApproved: false, Ordering: 1})
	require.NoError(t, err)

	visible, err := cmsDB.GetApprovedTestimonials()
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Lena", visible[0].Name)

	all, err := cmsDB.GetAllTestimonials()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, cmsDB.DeleteTestimonial(approved.ID))
	visible, err = cmsDB.GetApprovedTestimonials()
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestOrderedCollections(t *testing.T) {
	cmsDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	_, err := cmsDB.CreateFocusItem(models.FocusItem{Title: "Hiking", Description: "Trails", Ordering: 2})
	require.NoError(t, err)
	_, err = cmsDB.CreateFocusItem(models.FocusItem{Title: "Diving", Description: "Reefs", Ordering: 1})
	require.NoError(t, err)

	items, err := cmsDB.GetFocusItems(true)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Diving", items[0].Title)

	stat, err := cmsDB.CreateSiteStat(models.SiteStat{Label: "Members", Value: "1200", Ordering: 1})
	require.NoError(t, err)
	require.NoError(t, cmsDB.DeleteSiteStat(stat.ID))

	stats, err := cmsDB.GetSiteStats(true)
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestMediaAssets(t *testing.T) {
	cmsDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	asset, err := cmsDB.CreateMediaAsset(models.MediaAsset{FileName: "beach.jpg", FileType: "image/jpeg", FileURL: "https://cdn.example.com/beach.jpg"})
	require.NoError(t, err)

	found, err := cmsDB.GetMediaAsset(asset.ID)
	require.NoError(t, err)
	assert.Equal(t, "beach.jpg", found.FileName)

	// Media deletes are hard deletes.
	require.NoError(t, cmsDB.DeleteMediaAsset(asset.ID))
	_, err = cmsDB.GetMediaAsset(asset.ID)
	assert.True(t, storage.IsNotFound(err))

	assets, err := cmsDB.GetMediaAssets()
	require.NoError(t, err)
	assert.Empty(t, assets)
}
