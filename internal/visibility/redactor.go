package visibility

import (
	"encoding/json"

	"fitcircle/backend/internal/models"
	"fitcircle/backend/internal/relationship"
)

// Field wraps a profile value in the viewer-specific projection. Three states
// stay distinguishable on the wire:
//
//	visible with value  -> the value itself
//	visible, no value   -> null
//	hidden by policy    -> {"hidden": true}
//
// A hidden field never reveals whether the subject set a value at all.
type Field[T comparable] struct {
	Value  T
	Set    bool
	Hidden bool
}

// MarshalJSON implements the wire form described on Field.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Hidden {
		return []byte(`{"hidden":true}`), nil
	}
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

func fieldOf[T comparable](value T, visible bool) Field[T] {
	if !visible {
		return Field[T]{Hidden: true}
	}
	var zero T
	if value == zero {
		return Field[T]{}
	}
	return Field[T]{Value: value, Set: true}
}

// RedactedProfile is a subject's profile as one specific viewer may see it.
// ID, display name and handle always pass through: a hit with zero
// identifying information is not a usable result.
type RedactedProfile struct {
	ID          uint   `json:"id"`
	DisplayName string `json:"display_name"`
	Handle      string `json:"handle"`

	Picture         Field[string]  `json:"picture"`
	City            Field[string]  `json:"city"`
	State           Field[string]  `json:"state"`
	Bio             Field[string]  `json:"bio"`
	Age             Field[int]     `json:"age"`
	WeightKG        Field[float64] `json:"weight_kg"`
	BodyFatPct      Field[float64] `json:"body_fat_pct"`
	FitnessLevel    Field[string]  `json:"fitness_level"`
	Goals           Field[string]  `json:"goals"`
	Limitations     Field[string]  `json:"limitations"`
	WorkoutHistory  Field[string]  `json:"workout_history"`
	PersonalRecords Field[string]  `json:"personal_records"`
	Capabilities    Field[string]  `json:"capabilities"`
	Badges          Field[string]  `json:"badges"`
	Sports          Field[string]  `json:"sports"`
}

// Redactor projects raw profiles through the policy engine.
type Redactor struct {
	engine *Engine
}

// NewRedactor creates a Redactor over the given engine.
func NewRedactor(engine *Engine) *Redactor {
	return &Redactor{engine: engine}
}

// Redact produces the viewer-specific projection of subject. Deterministic
// and side-effect-free: identical inputs always yield identical output. A nil
// or empty settings map redacts with every field at its default tier.
func (r *Redactor) Redact(subject *models.User, settings FieldVisibilityMap, status relationship.Status) RedactedProfile {
	visible := func(field ProfileField) bool {
		return r.engine.FieldVisible(settings, field, status)
	}

	return RedactedProfile{
		ID:          subject.ID,
		DisplayName: subject.DisplayName,
		Handle:      subject.Handle,

		Picture:         fieldOf(subject.PictureURL, visible(FieldPicture)),
		City:            fieldOf(subject.City, visible(FieldCity)),
		State:           fieldOf(subject.State, visible(FieldState)),
		Bio:             fieldOf(subject.Bio, visible(FieldBio)),
		Age:             fieldOf(subject.Age, visible(FieldAge)),
		WeightKG:        fieldOf(subject.WeightKG, visible(FieldWeight)),
		BodyFatPct:      fieldOf(subject.BodyFatPct, visible(FieldBodyFat)),
		FitnessLevel:    fieldOf(subject.FitnessLevel, visible(FieldFitnessLevel)),
		Goals:           fieldOf(subject.Goals, visible(FieldGoals)),
		Limitations:     fieldOf(subject.Limitations, visible(FieldLimitations)),
		WorkoutHistory:  fieldOf(subject.WorkoutHistory, visible(FieldWorkoutHistory)),
		PersonalRecords: fieldOf(subject.PersonalRecords, visible(FieldPersonalRecords)),
		Capabilities:    fieldOf(subject.Capabilities, visible(FieldCapabilities)),
		Badges:          fieldOf(subject.Badges, visible(FieldBadges)),
		Sports:          fieldOf(subject.Sports, visible(FieldSports)),
	}
}

// SelfView returns the subject's own unredacted projection. The policy engine
// only governs other viewers; the subject always sees everything.
func (r *Redactor) SelfView(subject *models.User) RedactedProfile {
	return RedactedProfile{
		ID:          subject.ID,
		DisplayName: subject.DisplayName,
		Handle:      subject.Handle,

		Picture:         fieldOf(subject.PictureURL, true),
		City:            fieldOf(subject.City, true),
		State:           fieldOf(subject.State, true),
		Bio:             fieldOf(subject.Bio, true),
		Age:             fieldOf(subject.Age, true),
		WeightKG:        fieldOf(subject.WeightKG, true),
		BodyFatPct:      fieldOf(subject.BodyFatPct, true),
		FitnessLevel:    fieldOf(subject.FitnessLevel, true),
		Goals:           fieldOf(subject.Goals, true),
		Limitations:     fieldOf(subject.Limitations, true),
		WorkoutHistory:  fieldOf(subject.WorkoutHistory, true),
		PersonalRecords: fieldOf(subject.PersonalRecords, true),
		Capabilities:    fieldOf(subject.Capabilities, true),
		Badges:          fieldOf(subject.Badges, true),
		Sports:          fieldOf(subject.Sports, true),
	}
}
