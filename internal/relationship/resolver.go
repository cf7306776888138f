package relationship

import (
	"context"

	"fitcircle/backend/internal/models"
)

// Entry pairs a derived status with the underlying record id, which the UI
// needs for accept/cancel affordances.
type Entry struct {
	Status         Status
	RelationshipID uint
}

// RelationMap is the viewer's side of every relationship touching them.
// Lookups for users with no record return StatusNotConnected.
type RelationMap struct {
	entries map[uint]Entry
	blocked map[uint]struct{}
}

// StatusOf returns the viewer's status toward otherID.
func (m *RelationMap) StatusOf(otherID uint) Status {
	if e, ok := m.entries[otherID]; ok {
		return e.Status
	}
	return StatusNotConnected
}

// Entry returns the full entry for otherID, if any.
func (m *RelationMap) Entry(otherID uint) (Entry, bool) {
	e, ok := m.entries[otherID]
	return e, ok
}

// Blocked reports whether the pair {viewer, otherID} carries a rejected or
// blocked record. Such users are excluded from search and recommendation but
// their status reads as not_connected.
func (m *RelationMap) Blocked(otherID uint) bool {
	_, ok := m.blocked[otherID]
	return ok
}

// ConnectedIDs returns the ids of every user the viewer is connected to.
func (m *RelationMap) ConnectedIDs() []uint {
	ids := make([]uint, 0, len(m.entries))
	for id, e := range m.entries {
		if e.Status == StatusConnected {
			ids = append(ids, id)
		}
	}
	return ids
}

// Resolver derives per-viewer relationship state from stored records.
type Resolver struct {
	store Store
}

// NewResolver creates a Resolver over the given store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve loads all relationship records touching viewerID in one read and
// maps every counterpart to the viewer's derived status. Pure read; on store
// failure the whole call fails rather than returning a partial map.
func (r *Resolver) Resolve(ctx context.Context, viewerID uint) (*RelationMap, error) {
	records, err := r.store.FindByEitherParty(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	m := &RelationMap{
		entries: make(map[uint]Entry, len(records)),
		blocked: make(map[uint]struct{}),
	}
	for _, rec := range records {
		other := rec.Other(viewerID)
		switch rec.Status {
		case models.RelationAccepted:
			m.entries[other] = Entry{Status: StatusConnected, RelationshipID: rec.ID}
		case models.RelationPending:
			status := StatusPendingIncoming
			if rec.RequesterID == viewerID {
				status = StatusPendingOutgoing
			}
			m.entries[other] = Entry{Status: status, RelationshipID: rec.ID}
		case models.RelationRejected, models.RelationBlocked:
			// Collapses to not_connected for display but excludes the pair
			// from discovery.
			m.blocked[other] = struct{}{}
		}
	}
	return m, nil
}
