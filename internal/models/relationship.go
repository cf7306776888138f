package models

import (
	"time"

	"gorm.io/gorm"
)

// RelationshipStatus defines the persisted state of a connection between two users.
type RelationshipStatus string

const (
	// RelationPending means a connection request has been sent but not yet accepted.
	RelationPending RelationshipStatus = "pending"

	// RelationAccepted means the request was accepted; the users are in each
	// other's circle.
	RelationAccepted RelationshipStatus = "accepted"

	// RelationRejected means the addressee declined the request. The record
	// stays in place so the pair-uniqueness invariant keeps holding.
	RelationRejected RelationshipStatus = "rejected"

	// RelationBlocked means one party blocked the other. Terminal: it
	// suppresses future requests and removes both users from each other's
	// search and recommendations.
	RelationBlocked RelationshipStatus = "blocked"
)

// Relationship represents the single connection record between two users.
//
// Direction (who is requester) is preserved for pending-request display, but
// PairLo/PairHi normalize the pair so the unique index holds one record per
// unordered pair no matter which party initiated. Two users requesting each
// other at the same moment race on the index, not on application code; the
// loser gets a duplicated-key error.
type Relationship struct {
	ID          uint `gorm:"primaryKey"`
	RequesterID uint `gorm:"not null;index"`
	AddresseeID uint `gorm:"not null;index"`

	PairLo uint `gorm:"not null;uniqueIndex:idx_relationship_pair"`
	PairHi uint `gorm:"not null;uniqueIndex:idx_relationship_pair"`

	Status    RelationshipStatus `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Requester User `gorm:"foreignKey:RequesterID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Addressee User `gorm:"foreignKey:AddresseeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// BeforeSave fills the normalized pair columns from requester/addressee.
func (r *Relationship) BeforeSave(_ *gorm.DB) error {
	r.PairLo, r.PairHi = r.RequesterID, r.AddresseeID
	if r.PairLo > r.PairHi {
		r.PairLo, r.PairHi = r.PairHi, r.PairLo
	}
	return nil
}

// Other returns the id of the party that is not userID.
func (r *Relationship) Other(userID uint) uint {
	if r.RequesterID == userID {
		return r.AddresseeID
	}
	return r.RequesterID
}
