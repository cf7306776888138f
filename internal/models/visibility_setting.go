package models

import "time"

// VisibilitySetting holds a user's per-field visibility tiers.
//
// Each column is nullable: NULL means the user never chose a tier for that
// field and the documented default applies. A missing row altogether means
// every field is at its default — it is never read as "everything public".
type VisibilitySetting struct {
	UserID    uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Profile is the overall profile visibility, the discoverability gate.
	// NULL defaults to public.
	Profile *string `gorm:"size:16"`

	Name            *string `gorm:"size:16"`
	Picture         *string `gorm:"size:16"`
	City            *string `gorm:"size:16"`
	State           *string `gorm:"size:16"`
	Bio             *string `gorm:"size:16"`
	Age             *string `gorm:"size:16"`
	Weight          *string `gorm:"size:16"`
	BodyFat         *string `gorm:"size:16"`
	FitnessLevel    *string `gorm:"size:16"`
	Goals           *string `gorm:"size:16"`
	Limitations     *string `gorm:"size:16"`
	WorkoutHistory  *string `gorm:"size:16"`
	PersonalRecords *string `gorm:"size:16"`
	Capabilities    *string `gorm:"size:16"`
	Badges          *string `gorm:"size:16"`
	Sports          *string `gorm:"size:16"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
