package profile

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fitcircle/backend/internal/models"
)

var (
	// ErrNotFound is returned when no user matches.
	ErrNotFound = errors.New("profile not found")

	// ErrStoreUnavailable wraps any underlying storage failure.
	ErrStoreUnavailable = errors.New("profile store unavailable")
)

// ErrDuplicateUser is returned when a handle or email is already taken.
var ErrDuplicateUser = errors.New("handle or email already exists")

// Store reads and writes user profiles and their visibility settings.
type Store interface {
	Create(ctx context.Context, user *models.User) error
	ByLogin(ctx context.Context, login string) (*models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	ByIDs(ctx context.Context, ids []uint) ([]models.User, error)
	Discoverable(ctx context.Context, excludeID uint) ([]models.User, error)
	Settings(ctx context.Context, userID uint) (*models.VisibilitySetting, error)
	SettingsFor(ctx context.Context, ids []uint) (map[uint]*models.VisibilitySetting, error)
	SaveSettings(ctx context.Context, row *models.VisibilitySetting) error
}

// GormStore implements Store using GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed profile store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Create inserts a new user.
func (s *GormStore) Create(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// ByLogin finds a user by handle or email.
func (s *GormStore) ByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("handle = ? OR email = ?", login, login).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &user, nil
}

// Get loads a single profile by id.
func (s *GormStore) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &user, nil
}

// ByIDs loads the given profiles; ids with no row are simply absent.
func (s *GormStore) ByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return users, nil
}

// Discoverable loads every profile eligible to appear in search or
// recommendations: overall profile visibility public (the default when no
// settings row exists) or a non-empty handle. The viewer is excluded here;
// blocked pairs are excluded by the caller, which holds the relation map.
func (s *GormStore) Discoverable(ctx context.Context, excludeID uint) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Joins("LEFT JOIN visibility_settings ON visibility_settings.user_id = users.id").
		Where("users.id <> ?", excludeID).
		Where("COALESCE(visibility_settings.profile, 'public') = 'public' OR users.handle <> ''").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return users, nil
}

// Settings loads a user's visibility settings row, or nil if they never
// configured privacy.
func (s *GormStore) Settings(ctx context.Context, userID uint) (*models.VisibilitySetting, error) {
	var row models.VisibilitySetting
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &row, nil
}

// SettingsFor bulk-loads settings rows for the given users. Users with no
// row are absent from the result map.
func (s *GormStore) SettingsFor(ctx context.Context, ids []uint) (map[uint]*models.VisibilitySetting, error) {
	result := make(map[uint]*models.VisibilitySetting, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var rows []models.VisibilitySetting
	err := s.db.WithContext(ctx).Where("user_id IN ?", ids).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	for i := range rows {
		result[rows[i].UserID] = &rows[i]
	}
	return result, nil
}

// SaveSettings upserts a user's settings row in one write.
func (s *GormStore) SaveSettings(ctx context.Context, row *models.VisibilitySetting) error {
	if err := s.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Ensure interface is satisfied at compile time.
var _ Store = (*GormStore)(nil)
