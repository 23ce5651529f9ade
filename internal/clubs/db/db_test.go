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

	"journey-api/internal/clubs/db"
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
		(*models.Club)(nil),
		(*models.ClubMembership)(nil),
		(*models.ClubGalleryImage)(nil),
	} {
		if _, err := bunDB.NewCreateTable().Model(model).Exec(context.Background()); err != nil {
			t.Fatalf("Failed to create table: %v", err)
		}
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func createTestClub(t *testing.T, clubDB *db.DB, name string) *models.Club {
	club, err := clubDB.CreateClub(models.Club{
		Name: name,
		Slug: name,
	})
	require.NoError(t, err)
	return club
}

func TestCreateAndGetClub(t *testing.T) {
	clubDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	created := createTestClub(t, clubDB, "mountain-hikers")
	assert.NotZero(t, created.ID)
	assert.True(t, created.IsActive)

	club, err := clubDB.GetClub(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "mountain-hikers", club.Name)

	bySlug, err := clubDB.GetClubBySlug("mountain-hikers")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
}

func TestGetClubsSortedAndFiltered(t *testing.T) {
	clubDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	createTestClub(t, clubDB, "zebra-trekkers")
	createTestClub(t, clubDB, "alpine-club")
	hidden := createTestClub(t, clubDB, "hidden-club")

	require.NoError(t, clubDB.DeleteClub(hidden.ID))

	clubs, err := clubDB.GetClubs()
	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, "alpine-club", clubs[0].Name)
	assert.Equal(t, "zebra-trekkers", clubs[1].Name)
}

func TestDeletedClubNotFound(t *testing.T) {
	clubDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	club := createTestClub(t, clubDB, "ghost-club")
	require.NoError(t, clubDB.DeleteClub(club.ID))

	_, err := clubDB.GetClub(club.ID)
	assert.True(t, storage.IsNotFound(err))
}

func TestJoinLeaveRecomputesMemberCount(t *testing.T) {
	clubDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	club := createTestClub(t, clubDB, "divers")

	_, err := clubDB.JoinClub("user-1", club.ID)
	require.NoError(t, err)
	_, err = clubDB.JoinClub("user-2", club.ID)
	require.NoError(t, err)

	updated, err := clubDB.GetClub(club.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.MemberCount)

	require.NoError(t, clubDB.LeaveClub("user-1", club.ID))

	updated, err = clubDB.GetClub(club.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.MemberCount)
}

func TestJoinClubIdempotentRejoin(t *testing.T) {
	clubDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	club := createTestClub(t, clubDB, "kayakers")

	first, err := clubDB.JoinClub("user-1", club.ID)
	require.NoError(t, err)

	// Joining twice is a no-op on the count.
	again, err := clubDB.JoinClub("user-1", club.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	updated, err := clubDB.GetClub(club.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.MemberCount)

	// Leaving and re-joining reuses the original membership row.
	require.NoError(t, clubDB.LeaveClub("user-1", club.ID))
	rejoined, err := clubDB.JoinClub("user-1", club.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, rejoined.ID)
	assert.True(t, rejoined.IsActive)

	updated, err = clubDB.GetClub(club.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.MemberCount)
}

func TestLeaveClubNeverJoinedIsNoOp(t *testing.T) {
	clubDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	club := createTestClub(t, clubDB, "climbers")
	_, err := clubDB.JoinClub("user-1", club.ID)
	require.NoError(t, err)

	require.NoError(t, clubDB.LeaveClub("stranger", club.ID))

	updated, err := clubDB.GetClub(club.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.MemberCount)
}

func TestMembershipQueries(t *testing.T) {
	clubDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	clubA := createTestClub(t, clubDB, "club-a")
	clubB := createTestClub(t, clubDB, "club-b")

	_, err := clubDB.JoinClub("user-1", clubA.ID)
	require.NoError(t, err)
	_, err = clubDB.JoinClub("user-1", clubB.ID)
	require.NoError(t, err)
	_, err = clubDB.JoinClub("user-2", clubA.ID)
	require.NoError(t, err)

	memberships, err := clubDB.GetUserClubMemberships("user-1")
	require.NoError(t, err)
	assert.Len(t, memberships, 2)

	members, err := clubDB.GetClubMembers(clubA.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	isMember, err := clubDB.IsClubMember("user-1", clubA.ID)
	require.NoError(t, err)
	assert.True(t, isMember)

	require.NoError(t, clubDB.LeaveClub("user-1", clubA.ID))
	isMember, err = clubDB.IsClubMember("user-1", clubA.ID)
	require.NoError(t, err)
	assert.False(t, isMember)
}

func TestClubGallery(t *testing.T) {
	clubDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	club := createTestClub(t, clubDB, "photographers")

	image, err := clubDB.AddClubImage(club.ID, "https://cdn.example.com/a.jpg", "summit", "user-1")
	require.NoError(t, err)
	assert.NotZero(t, image.ID)

	images, err := clubDB.GetClubGallery(club.ID)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "summit", images[0].Caption)
}
