package visibility

// Level is the visibility tier a subject attaches to a single profile field.
// Ordering, least to most restrictive: public < circle < private. Loosening a
// field's tier can only add viewers, tightening can only remove them.
type Level string

const (
	// LevelPublic means visible to every viewer.
	LevelPublic Level = "public"

	// LevelCircle means visible only to viewers with an accepted connection
	// to the subject.
	LevelCircle Level = "circle"

	// LevelPrivate means visible to nobody but the subject.
	LevelPrivate Level = "private"
)

// Valid reports whether l is one of the three known tiers.
func (l Level) Valid() bool {
	switch l {
	case LevelPublic, LevelCircle, LevelPrivate:
		return true
	}
	return false
}

// rank gives the strict ordering used for monotonicity reasoning.
func (l Level) rank() int {
	switch l {
	case LevelPublic:
		return 0
	case LevelCircle:
		return 1
	default:
		return 2
	}
}

// StricterThan reports whether l is more restrictive than other.
func (l Level) StricterThan(other Level) bool {
	return l.rank() > other.rank()
}
