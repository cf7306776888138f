package relationship

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fitcircle/backend/internal/models"
)

var (
	// ErrDuplicatePair is returned by Create when a record for the unordered
	// pair already exists, whichever party created it.
	ErrDuplicatePair = errors.New("relationship already exists for pair")

	// ErrNotFound is returned when no record matches.
	ErrNotFound = errors.New("relationship not found")

	// ErrStoreUnavailable wraps any underlying storage failure. Callers fail
	// the whole operation on it rather than degrading.
	ErrStoreUnavailable = errors.New("relationship store unavailable")
)

// Store persists connection records. Implementations must enforce one record
// per unordered user pair at the storage level; the engine only ever reads
// committed state and takes no locks of its own.
type Store interface {
	FindByEitherParty(ctx context.Context, userID uint) ([]models.Relationship, error)
	FindByPair(ctx context.Context, a, b uint) (*models.Relationship, error)
	Create(ctx context.Context, requesterID, addresseeID uint, status models.RelationshipStatus) (*models.Relationship, error)
	UpdateStatus(ctx context.Context, id uint, status models.RelationshipStatus) error
	DeleteByPair(ctx context.Context, a, b uint) error
}

// GormStore implements Store using GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed relationship store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// FindByEitherParty loads every relationship record touching userID.
func (s *GormStore) FindByEitherParty(ctx context.Context, userID uint) ([]models.Relationship, error) {
	var records []models.Relationship
	err := s.db.WithContext(ctx).
		Where("requester_id = ? OR addressee_id = ?", userID, userID).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return records, nil
}

// FindByPair returns the single record for the unordered pair {a, b}.
func (s *GormStore) FindByPair(ctx context.Context, a, b uint) (*models.Relationship, error) {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	var record models.Relationship
	err := s.db.WithContext(ctx).
		Where("pair_lo = ? AND pair_hi = ?", lo, hi).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &record, nil
}

// Create inserts a new record. The unique index on the normalized pair
// columns makes concurrent cross-requests converge on a single row: the
// second insert fails with ErrDuplicatePair.
func (s *GormStore) Create(ctx context.Context, requesterID, addresseeID uint, status models.RelationshipStatus) (*models.Relationship, error) {
	record := models.Relationship{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      status,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicatePair
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &record, nil
}

// UpdateStatus transitions an existing record.
func (s *GormStore) UpdateStatus(ctx context.Context, id uint, status models.RelationshipStatus) error {
	result := s.db.WithContext(ctx).
		Model(&models.Relationship{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByPair removes the record for the unordered pair {a, b} regardless of status.
func (s *GormStore) DeleteByPair(ctx context.Context, a, b uint) error {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	result := s.db.WithContext(ctx).
		Where("pair_lo = ? AND pair_hi = ?", lo, hi).
		Delete(&models.Relationship{})
	if result.Error != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Ensure interface is satisfied at compile time.
var _ Store = (*GormStore)(nil)
