package models

import "gorm.io/gorm"

// User represents a member of the platform.
//
// Handle is the stable public identifier shown in search results and URLs.
// It may be empty: a user without a handle is only discoverable if their
// overall profile visibility is public.
type User struct {
	gorm.Model
	Handle       string `gorm:"size:64;index"`
	DisplayName  string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`

	// Profile fields. What a viewer sees of each is governed per-viewer by
	// the subject's VisibilitySetting row, never by the column itself.
	PictureURL      string `gorm:"size:512"`
	Bio             string `gorm:"type:text"`
	City            string `gorm:"size:128"`
	State           string `gorm:"size:128"`
	Age             int
	WeightKG        float64
	BodyFatPct      float64
	FitnessLevel    string `gorm:"size:32"`
	Goals           string `gorm:"type:text"`
	Limitations     string `gorm:"type:text"`
	WorkoutHistory  string `gorm:"type:text"`
	PersonalRecords string `gorm:"type:text"`
	Capabilities    string `gorm:"type:text"`
	Badges          string `gorm:"type:text"`
	Sports          string `gorm:"type:text"`
}
