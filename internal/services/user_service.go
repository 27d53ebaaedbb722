package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser creates a new household member with zeroed counters.
func (s *userService) CreateUser(avatarID, name, surname, role string, dob time.Time) (*models.User, error) {
	user := &models.User{
		AvatarID:     avatarID,
		Name:         name,
		Surname:      surname,
		Role:         role,
		DOB:          dob,
		Achievements: []uint{},
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// GetUsers returns all users in insertion order.
func (s *userService) GetUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return users, nil
}

// GetUserByID returns a user by id.
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserAchievements returns the catalog entries the user has unlocked,
// in catalog order. Duplicate unlocks collapse to one entry here.
func (s *userService) GetUserAchievements(userID uint) ([]models.Achievement, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	unlocked := make(map[uint]bool, len(user.Achievements))
	for _, id := range user.Achievements {
		unlocked[id] = true
	}

	var catalog []models.Achievement
	if err := s.db.Order("id").Find(&catalog).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := make([]models.Achievement, 0, len(user.Achievements))
	for _, achievement := range catalog {
		if unlocked[achievement.ID] {
			result = append(result, achievement)
		}
	}
	return result, nil
}

// UpdateAvatar changes a user's avatar reference.
func (s *userService) UpdateAvatar(userID uint, avatarID string) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	user.AvatarID = avatarID
	if err := s.db.Save(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// resolveUserNames maps the given user ids to display names for feed
// enrichment. Missing ids are simply absent; callers fall back to "Unknown".
func resolveUserNames(db *gorm.DB, ids []uint) (map[uint]string, error) {
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}

	var users []models.User
	if err := db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	names := make(map[uint]string, len(users))
	for _, user := range users {
		names[user.ID] = user.Name
	}
	return names, nil
}

// creatorName resolves a single creator id, tolerating dangling references.
func creatorName(names map[uint]string, id uint) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Unknown"
}
