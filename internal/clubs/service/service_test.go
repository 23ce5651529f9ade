package clubs_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"journey-api/internal/clubs/db"
	clubs "journey-api/internal/clubs/service"
	"journey-api/internal/models"
	"journey-api/internal/storage"
)

func setupTestService(t *testing.T) (*clubs.ClubService, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	for _, model := range []interface{}{
		(*models.Club)(nil),
		(*models.ClubMembership)(nil),
		(*models.ClubGalleryImage)(nil),
	} {
		if _, err := bunDB.NewCreateTable().Model(model).Exec(context.Background()); err != nil {
			t.Fatalf("Failed to create table: %v", err)
		}
	}

	return clubs.NewClubService(&db.DB{Bun: bunDB}), bunDB
}

func TestCreateClubGeneratesSlug(t *testing.T) {
	svc, bunDB := setupTestService(t)
	defer bunDB.Close()

	club, err := svc.CreateClub(models.Club{Name: "Mountain Hikers Club!"}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "mountain-hikers-club", club.Slug)
	assert.Equal(t, "user-1", club.OwnerID)

	_, err = svc.CreateClub(models.Club{Name: "   "}, "user-1")
	var verr clubs.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateClubPermissions(t *testing.T) {
	svc, bunDB := setupTestService(t)
	defer bunDB.Close()

	club, err := svc.CreateClub(models.Club{Name: "Divers"}, "owner-1")
	require.NoError(t, err)

	edit := *club
	edit.Description = "Reef dives every weekend"

	// A stranger cannot edit.
	_, err = svc.UpdateClub(club.ID, edit, "stranger", false)
	assert.ErrorIs(t, err, clubs.ErrPermissionDenied)

	// The owner can.
	updated, err := svc.UpdateClub(club.ID, edit, "owner-1", false)
	require.NoError(t, err)
	assert.Equal(t, "Reef dives every weekend", updated.Description)

	// So can an admin who is not the owner.
	edit.Description = "Moderated"
	updated, err = svc.UpdateClub(club.ID, edit, "admin-1", true)
	require.NoError(t, err)
	assert.Equal(t, "Moderated", updated.Description)
}

func TestDeleteClubPermissions(t *testing.T) {
	svc, bunDB := setupTestService(t)
	defer bunDB.Close()

	club, err := svc.CreateClub(models.Club{Name: "Kayakers"}, "owner-1")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteClub(club.ID, "stranger", false), clubs.ErrPermissionDenied)
	require.NoError(t, svc.DeleteClub(club.ID, "owner-1", false))

	_, err = svc.GetClub(club.ID)
	assert.True(t, storage.IsNotFound(err))
}

func TestJoinClubRequiresExistingClub(t *testing.T) {
	svc, bunDB := setupTestService(t)
	defer bunDB.Close()

	_, err := svc.JoinClub("user-1", 999)
	assert.True(t, storage.IsNotFound(err))

	club, err := svc.CreateClub(models.Club{Name: "Climbers"}, "owner-1")
	require.NoError(t, err)

	membership, err := svc.JoinClub("user-1", club.ID)
	require.NoError(t, err)
	assert.True(t, membership.IsActive)

	isMember, err := svc.IsMember("user-1", club.ID)
	require.NoError(t, err)
	assert.True(t, isMember)
}

func TestSlugCollapsesPunctuation(t *testing.T) {
	svc, bunDB := setupTestService(t)
	defer bunDB.Close()

	club, err := svc.CreateClub(models.Club{Name: "  Trail & Peak _ Runners  "}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "trail-peak-runners", club.Slug)
}
