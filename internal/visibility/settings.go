package visibility

import (
	"errors"
	"fmt"

	"fitcircle/backend/internal/models"
)

// ErrInvalidVisibilityValue is returned when a settings update carries an
// unknown field or tier. The wrapped message names the first offending key so
// the caller can correct it; nothing is written.
var ErrInvalidVisibilityValue = errors.New("invalid visibility value")

// FieldVisibilityMap is a subject's chosen tiers, keyed by field. Fields
// absent from the map fall back to the default table.
type FieldVisibilityMap map[ProfileField]Level

// Validate checks every key against the field enum and every value against
// the tier enum, reporting the first offense.
func (m FieldVisibilityMap) Validate() error {
	for _, field := range AllFields() {
		level, ok := m[field]
		if !ok {
			continue
		}
		if !level.Valid() {
			return fmt.Errorf("%w: field %q has unknown tier %q", ErrInvalidVisibilityValue, field, level)
		}
	}
	for field := range m {
		if !field.Valid() {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidVisibilityValue, field)
		}
	}
	return nil
}

// SettingsFromModel converts a stored settings row to the map form the
// engine consumes. A nil row yields an empty map, which resolves every field
// to its default tier.
func SettingsFromModel(row *models.VisibilitySetting) FieldVisibilityMap {
	m := FieldVisibilityMap{}
	if row == nil {
		return m
	}
	put := func(field ProfileField, col *string) {
		if col == nil {
			return
		}
		if level := Level(*col); level.Valid() {
			m[field] = level
		}
	}
	put(FieldName, row.Name)
	put(FieldPicture, row.Picture)
	put(FieldCity, row.City)
	put(FieldState, row.State)
	put(FieldBio, row.Bio)
	put(FieldAge, row.Age)
	put(FieldWeight, row.Weight)
	put(FieldBodyFat, row.BodyFat)
	put(FieldFitnessLevel, row.FitnessLevel)
	put(FieldGoals, row.Goals)
	put(FieldLimitations, row.Limitations)
	put(FieldWorkoutHistory, row.WorkoutHistory)
	put(FieldPersonalRecords, row.PersonalRecords)
	put(FieldCapabilities, row.Capabilities)
	put(FieldBadges, row.Badges)
	put(FieldSports, row.Sports)
	return m
}

// ApplyToModel writes the map onto a settings row. Only keys present in the
// map are touched, so a partial update keeps the subject's other choices.
func (m FieldVisibilityMap) ApplyToModel(row *models.VisibilitySetting) {
	set := func(field ProfileField, col **string) {
		if level, ok := m[field]; ok {
			s := string(level)
			*col = &s
		}
	}
	set(FieldName, &row.Name)
	set(FieldPicture, &row.Picture)
	set(FieldCity, &row.City)
	set(FieldState, &row.State)
	set(FieldBio, &row.Bio)
	set(FieldAge, &row.Age)
	set(FieldWeight, &row.Weight)
	set(FieldBodyFat, &row.BodyFat)
	set(FieldFitnessLevel, &row.FitnessLevel)
	set(FieldGoals, &row.Goals)
	set(FieldLimitations, &row.Limitations)
	set(FieldWorkoutHistory, &row.WorkoutHistory)
	set(FieldPersonalRecords, &row.PersonalRecords)
	set(FieldCapabilities, &row.Capabilities)
	set(FieldBadges, &row.Badges)
	set(FieldSports, &row.Sports)
}

// Merged returns the effective tier of every governed field: the subject's
// choice where present, the default otherwise.
func (m FieldVisibilityMap) Merged(defaults Defaults) FieldVisibilityMap {
	out := make(FieldVisibilityMap, len(AllFields()))
	for _, field := range AllFields() {
		if level, ok := m[field]; ok && level.Valid() {
			out[field] = level
			continue
		}
		if level, ok := defaults[field]; ok {
			out[field] = level
		} else {
			out[field] = LevelPrivate
		}
	}
	return out
}
