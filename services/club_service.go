// services/club_service.go - Club and member business logic
package services

import (
	"errors"
	"time"

	"clubhub/models"

	"gorm.io/gorm"
)

var (
	ErrClubNotFound      = errors.New("club not found")
	ErrDuplicateClubName = errors.New("a club with that name already exists")
	ErrMemberNotFound    = errors.New("member not found")
)

type ClubService struct {
	db *gorm.DB
}

func NewClubService(db *gorm.DB) *ClubService {
	return &ClubService{db: db}
}

// ClubInput carries everything a manager can set on a club.
type ClubInput struct {
	Name            string   `json:"name"`
	LogoURL         string   `json:"logo_url"`
	MembersCount    int      `json:"members_count"`
	Description     string   `json:"description"`
	IsRecruiting    bool     `json:"is_recruiting"`
	ApplicationLink string   `json:"application_link"`
	WhyJoinReasons  []string `json:"why_join_reasons"`
	GalleryImages   []string `json:"gallery_images"`
}

// ================== CLUB CRUD OPERATIONS ==================

// ListClubs returns every club in insertion order.
func (s *ClubService) ListClubs() ([]models.Club, error) {
	var clubs []models.Club
	if err := s.db.Order("id ASC").Find(&clubs).Error; err != nil {
		return nil, err
	}
	return clubs, nil
}

// GetClub retrieves a club by ID with its members preloaded.
func (s *ClubService) GetClub(clubID uint) (*models.Club, error) {
	var club models.Club
	err := s.db.Preload("Members").First(&club, clubID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClubNotFound
	}
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (s *ClubService) CreateClub(input ClubInput) (*models.Club, error) {
	if input.Name == "" {
		return nil, errors.New("club name is required")
	}
	if taken, err := s.nameTaken(input.Name, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateClubName
	}

	club := &models.Club{
		Name:            input.Name,
		LogoURL:         input.LogoURL,
		MembersCount:    clampNonNegative(input.MembersCount),
		Description:     input.Description,
		IsRecruiting:    input.IsRecruiting,
		ApplicationLink: input.ApplicationLink,
		WhyJoinReasons:  models.StringList(input.WhyJoinReasons),
		GalleryImages:   models.StringList(input.GalleryImages),
	}

	if err := s.db.Create(club).Error; err != nil {
		return nil, err
	}
	return club, nil
}

func (s *ClubService) UpdateClub(clubID uint, input ClubInput) (*models.Club, error) {
	club, err := s.GetClub(clubID)
	if err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, errors.New("club name is required")
	}
	if taken, err := s.nameTaken(input.Name, clubID); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateClubName
	}

	club.Name = input.Name
	club.LogoURL = input.LogoURL
	club.MembersCount = clampNonNegative(input.MembersCount)
	club.Description = input.Description
	club.IsRecruiting = input.IsRecruiting
	club.ApplicationLink = input.ApplicationLink
	club.WhyJoinReasons = models.StringList(input.WhyJoinReasons)
	club.GalleryImages = models.StringList(input.GalleryImages)

	if err := s.db.Save(club).Error; err != nil {
		return nil, err
	}
	return club, nil
}

// DeleteClub removes a club and all of its members in one transaction.
func (s *ClubService) DeleteClub(clubID uint) error {
	club, err := s.GetClub(clubID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_id = ?", club.ID).Delete(&models.ClubMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Club{}, club.ID).Error
	})
}

// ================== MEMBER OPERATIONS ==================

func (s *ClubService) AddMember(clubID uint, name, role string) (*models.ClubMember, error) {
	if name == "" || role == "" {
		return nil, errors.New("member name and role are required")
	}
	if _, err := s.GetClub(clubID); err != nil {
		return nil, err
	}

	member := &models.ClubMember{
		Name:     name,
		Role:     role,
		ClubID:   clubID,
		JoinedAt: time.Now(),
	}
	if err := s.db.Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

func (s *ClubService) UpdateMember(memberID uint, name, role string) (*models.ClubMember, error) {
	if name == "" || role == "" {
		return nil, errors.New("member name and role are required")
	}

	var member models.ClubMember
	err := s.db.First(&member, memberID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}

	member.Name = name
	member.Role = role
	if err := s.db.Save(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *ClubService) RemoveMember(memberID uint) error {
	result := s.db.Delete(&models.ClubMember{}, memberID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// ================== HELPERS ==================

func (s *ClubService) nameTaken(name string, excludeID uint) (bool, error) {
	var count int64
	query := s.db.Model(&models.Club{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
