package visibility

import "fitcircle/backend/internal/relationship"

// Engine decides field visibility. It only governs what *other* viewers see;
// a subject's own view never goes through it.
type Engine struct {
	defaults Defaults
}

// NewEngine creates an Engine with the given default tier table.
func NewEngine(defaults Defaults) *Engine {
	return &Engine{defaults: defaults}
}

// IsVisible reports whether a field at the given tier is visible to a viewer
// with the given relationship status to the subject. Pure and total: every
// (level, status) combination has an answer, and unknown levels deny.
func (e *Engine) IsVisible(level Level, status relationship.Status) bool {
	switch level {
	case LevelPublic:
		return true
	case LevelCircle:
		return status == relationship.StatusConnected
	default:
		return false
	}
}

// Tier resolves the effective tier for a field: the subject's configured tier
// if one is set and recognized, the default table otherwise. A nil or empty
// settings map means every field is at its default.
func (e *Engine) Tier(settings FieldVisibilityMap, field ProfileField) Level {
	if level, ok := settings[field]; ok && level.Valid() {
		return level
	}
	if level, ok := e.defaults[field]; ok {
		return level
	}
	// A field missing from the default table is a programming error; deny.
	return LevelPrivate
}

// FieldVisible resolves a field's effective tier and evaluates it in one step.
func (e *Engine) FieldVisible(settings FieldVisibilityMap, field ProfileField, status relationship.Status) bool {
	return e.IsVisible(e.Tier(settings, field), status)
}
