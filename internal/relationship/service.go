package relationship

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"fitcircle/backend/internal/models"
)

var (
	// ErrSelfTarget is returned when a user targets themselves.
	ErrSelfTarget = errors.New("cannot target yourself")

	// ErrAlreadyConnected is returned when an accepted connection already exists.
	ErrAlreadyConnected = errors.New("already connected")

	// ErrAlreadyRequested is returned when a pending or rejected record exists
	// for the pair. A rejected request cannot be resent until one party
	// deletes the relationship.
	ErrAlreadyRequested = errors.New("request already exists")

	// ErrBlocked is returned when the pair carries a blocked record.
	ErrBlocked = errors.New("pair is blocked")
)

// Service owns relationship mutations. Pair uniqueness is enforced by the
// store's unique index, not by anything here; pre-checks exist only to give
// callers specific errors.
type Service struct {
	store Store
}

// NewService creates a relationship Service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Connect sends a connection request from viewerID to targetID.
func (s *Service) Connect(ctx context.Context, viewerID, targetID uint) (*models.Relationship, error) {
	if viewerID == targetID {
		return nil, ErrSelfTarget
	}

	existing, err := s.store.FindByPair(ctx, viewerID, targetID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case models.RelationAccepted:
			return nil, ErrAlreadyConnected
		case models.RelationBlocked:
			return nil, ErrBlocked
		default:
			return nil, ErrAlreadyRequested
		}
	}

	record, err := s.store.Create(ctx, viewerID, targetID, models.RelationPending)
	if errors.Is(err, ErrDuplicatePair) {
		// Lost the race against a concurrent request for the same pair; the
		// single surviving row is authoritative.
		return nil, ErrAlreadyRequested
	}
	if err != nil {
		log.Error().Err(err).Uint("viewer_id", viewerID).Uint("target_id", targetID).
			Msg("failed to create relationship")
		return nil, err
	}
	return record, nil
}

// Accept transitions a pending request addressed to viewerID to accepted.
// Only the addressee may accept.
func (s *Service) Accept(ctx context.Context, viewerID, requesterID uint) (*models.Relationship, error) {
	record, err := s.store.FindByPair(ctx, viewerID, requesterID)
	if err != nil {
		return nil, err
	}
	if record.Status != models.RelationPending || record.AddresseeID != viewerID {
		return nil, ErrNotFound
	}
	if err := s.store.UpdateStatus(ctx, record.ID, models.RelationAccepted); err != nil {
		return nil, err
	}
	record.Status = models.RelationAccepted
	return record, nil
}

// Decline transitions a pending request addressed to viewerID to rejected.
func (s *Service) Decline(ctx context.Context, viewerID, requesterID uint) error {
	record, err := s.store.FindByPair(ctx, viewerID, requesterID)
	if err != nil {
		return err
	}
	if record.Status != models.RelationPending || record.AddresseeID != viewerID {
		return ErrNotFound
	}
	return s.store.UpdateStatus(ctx, record.ID, models.RelationRejected)
}

// Block marks the pair blocked, creating the record if none exists. Either
// party may block; the state is terminal until the record is deleted.
func (s *Service) Block(ctx context.Context, viewerID, targetID uint) error {
	if viewerID == targetID {
		return ErrSelfTarget
	}

	existing, err := s.store.FindByPair(ctx, viewerID, targetID)
	if errors.Is(err, ErrNotFound) {
		_, err = s.store.Create(ctx, viewerID, targetID, models.RelationBlocked)
		if errors.Is(err, ErrDuplicatePair) {
			// Raced with a concurrent create; fall through to update.
			existing, err = s.store.FindByPair(ctx, viewerID, targetID)
			if err != nil {
				return err
			}
			return s.store.UpdateStatus(ctx, existing.ID, models.RelationBlocked)
		}
		return err
	}
	if err != nil {
		return err
	}
	return s.store.UpdateStatus(ctx, existing.ID, models.RelationBlocked)
}

// Disconnect removes the relationship between viewerID and targetID
// regardless of its status, reverting the pair to no relationship.
func (s *Service) Disconnect(ctx context.Context, viewerID, targetID uint) error {
	if viewerID == targetID {
		return ErrSelfTarget
	}
	return s.store.DeleteByPair(ctx, viewerID, targetID)
}

// PendingRequests returns the viewer's pending records split by direction.
func (s *Service) PendingRequests(ctx context.Context, viewerID uint) (incoming, outgoing []models.Relationship, err error) {
	records, err := s.store.FindByEitherParty(ctx, viewerID)
	if err != nil {
		return nil, nil, err
	}
	for _, rec := range records {
		if rec.Status != models.RelationPending {
			continue
		}
		if rec.AddresseeID == viewerID {
			incoming = append(incoming, rec)
		} else {
			outgoing = append(outgoing, rec)
		}
	}
	return incoming, outgoing, nil
}
