package visibility

// ProfileField enumerates every profile field the policy governs. The set is
// closed on purpose: adding a field means extending this enum and the default
// table together, so an unknown field can never silently default to visible.
type ProfileField string

const (
	FieldName            ProfileField = "name"
	FieldPicture         ProfileField = "picture"
	FieldCity            ProfileField = "city"
	FieldState           ProfileField = "state"
	FieldBio             ProfileField = "bio"
	FieldAge             ProfileField = "age"
	FieldWeight          ProfileField = "weight"
	FieldBodyFat         ProfileField = "bodyFat"
	FieldFitnessLevel    ProfileField = "fitnessLevel"
	FieldGoals           ProfileField = "goals"
	FieldLimitations     ProfileField = "limitations"
	FieldWorkoutHistory  ProfileField = "workoutHistory"
	FieldPersonalRecords ProfileField = "personalRecords"
	FieldCapabilities    ProfileField = "capabilities"
	FieldBadges          ProfileField = "badges"
	FieldSports          ProfileField = "sports"
)

// AllFields lists every governed field in a stable order.
func AllFields() []ProfileField {
	return []ProfileField{
		FieldName,
		FieldPicture,
		FieldCity,
		FieldState,
		FieldBio,
		FieldAge,
		FieldWeight,
		FieldBodyFat,
		FieldFitnessLevel,
		FieldGoals,
		FieldLimitations,
		FieldWorkoutHistory,
		FieldPersonalRecords,
		FieldCapabilities,
		FieldBadges,
		FieldSports,
	}
}

// Valid reports whether f is one of the governed fields.
func (f ProfileField) Valid() bool {
	switch f {
	case FieldName, FieldPicture, FieldCity, FieldState, FieldBio, FieldAge,
		FieldWeight, FieldBodyFat, FieldFitnessLevel, FieldGoals,
		FieldLimitations, FieldWorkoutHistory, FieldPersonalRecords,
		FieldCapabilities, FieldBadges, FieldSports:
		return true
	}
	return false
}

// Defaults is the per-field tier table applied when a subject has not chosen
// a tier for a field. It is passed to the engine and redactor at construction
// so tests can substitute their own table; nothing mutates it.
type Defaults map[ProfileField]Level

// DefaultTiers returns the product's documented default table. A subject who
// never touched their privacy settings gets exactly these tiers — never
// "everything public".
func DefaultTiers() Defaults {
	return Defaults{
		FieldName:            LevelPublic,
		FieldPicture:         LevelPublic,
		FieldCity:            LevelPublic,
		FieldState:           LevelPublic,
		FieldBio:             LevelPublic,
		FieldFitnessLevel:    LevelPublic,
		FieldBadges:          LevelPublic,
		FieldSports:          LevelPublic,
		FieldGoals:           LevelCircle,
		FieldCapabilities:    LevelCircle,
		FieldWorkoutHistory:  LevelCircle,
		FieldAge:             LevelPrivate,
		FieldWeight:          LevelPrivate,
		FieldBodyFat:         LevelPrivate,
		FieldLimitations:     LevelPrivate,
		FieldPersonalRecords: LevelPrivate,
	}
}
