package clubs

import (
	"strings"

	"journey-api/internal/models"
)

type ClubDBLayer interface {
	GetClubs() ([]models.Club, error)
	GetClub(id int64) (*models.Club, error)
	GetClubBySlug(slug string) (*models.Club, error)
	CreateClub(club models.Club) (*models.Club, error)
	UpdateClub(id int64, club models.Club) (*models.Club, error)
	DeleteClub(id int64) error
	JoinClub(userID string, clubID int64) (*models.ClubMembership, error)
	LeaveClub(userID string, clubID int64) error
	GetUserClubMemberships(userID string) ([]models.ClubMembership, error)
	GetClubMembers(clubID int64) ([]models.ClubMembership, error)
	IsClubMember(userID string, clubID int64) (bool, error)
	GetClubGallery(clubID int64) ([]models.ClubGalleryImage, error)
	AddClubImage(clubID int64, imageURL, caption, uploadedBy string) (*models.ClubGalleryImage, error)
}

type ClubService struct {
	DB ClubDBLayer
}

func NewClubService(db ClubDBLayer) *ClubService {
	return &ClubService{DB: db}
}

func (s *ClubService) ListClubs() ([]models.Club, error) {
	return s.DB.GetClubs()
}

func (s *ClubService) GetClub(id int64) (*models.Club, error) {
	return s.DB.GetClub(id)
}

func (s *ClubService) GetClubBySlug(slug string) (*models.Club, error) {
	return s.DB.GetClubBySlug(slug)
}

func (s *ClubService) CreateClub(club models.Club, ownerID string) (*models.Club, error) {
	if strings.TrimSpace(club.Name) == "" {
		return nil, ValidationError("club name is required")
	}
	if club.Slug == "" {
		club.Slug = slugify(club.Name)
	}
	club.OwnerID = ownerID
	return s.DB.CreateClub(club)
}

// UpdateClub enforces the owner-or-admin rule before writing.
func (s *ClubService) UpdateClub(id int64, club models.Club, userID string, isAdmin bool) (*models.Club, error) {
	existing, err := s.DB.GetClub(id)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != userID && !isAdmin {
		return nil, ErrPermissionDenied
	}
	return s.DB.UpdateClub(id, club)
}

func (s *ClubService) DeleteClub(id int64, userID string, isAdmin bool) error {
	existing, err := s.DB.GetClub(id)
	if err != nil {
		return err
	}
	if existing.OwnerID != userID && !isAdmin {
		return ErrPermissionDenied
	}
	return s.DB.DeleteClub(id)
}

// JoinClub verifies the club exists and is active, then runs the
// transactional membership write.
func (s *ClubService) JoinClub(userID string, clubID int64) (*models.ClubMembership, error) {
	if _, err := s.DB.GetClub(clubID); err != nil {
		return nil, err
	}
	return s.DB.JoinClub(userID, clubID)
}

func (s *ClubService) LeaveClub(userID string, clubID int64) error {
	return s.DB.LeaveClub(userID, clubID)
}

func (s *ClubService) GetUserMemberships(userID string) ([]models.ClubMembership, error) {
	return s.DB.GetUserClubMemberships(userID)
}

func (s *ClubService) GetMembers(clubID int64) ([]models.ClubMembership, error) {
	return s.DB.GetClubMembers(clubID)
}

func (s *ClubService) IsMember(userID string, clubID int64) (bool, error) {
	return s.DB.IsClubMember(userID, clubID)
}

func (s *ClubService) GetGallery(clubID int64) ([]models.ClubGalleryImage, error) {
	return s.DB.GetClubGallery(clubID)
}

func (s *ClubService) AddImage(clubID int64, imageURL, caption, uploadedBy string) (*models.ClubGalleryImage, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, ValidationError("imageUrl is required")
	}
	return s.DB.AddClubImage(clubID, imageURL, caption, uploadedBy)
}

func slugify(name string) string {
	var sb strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(sb.String(), "-")
}
