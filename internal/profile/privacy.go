package profile

import (
	"context"
	"fmt"
	"sort"

	"fitcircle/backend/internal/models"
	"fitcircle/backend/internal/visibility"
)

// ProfileKey is the settings key for overall profile visibility, the
// discoverability gate. It sits outside the field enum because it gates the
// whole profile's presence in search, not a single field.
const ProfileKey = "profile"

// SettingsView is a user's effective privacy configuration: their choices
// merged over the default table, so the caller never has to know which tiers
// were defaulted.
type SettingsView struct {
	Profile visibility.Level                             `json:"profile"`
	Fields  map[visibility.ProfileField]visibility.Level `json:"fields"`
}

// PrivacyService reads and validates per-user visibility settings.
// Self-service only: callers pass the authenticated viewer as the subject.
type PrivacyService struct {
	store    Store
	defaults visibility.Defaults
}

// NewPrivacyService creates a PrivacyService with the given default table.
func NewPrivacyService(store Store, defaults visibility.Defaults) *PrivacyService {
	return &PrivacyService{store: store, defaults: defaults}
}

// Settings returns the user's effective configuration. A user with no stored
// row gets exactly the default table.
func (s *PrivacyService) Settings(ctx context.Context, userID uint) (*SettingsView, error) {
	row, err := s.store.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &SettingsView{
		Profile: visibility.LevelPublic,
		Fields:  visibility.SettingsFromModel(row).Merged(s.defaults),
	}
	if row != nil && row.Profile != nil {
		if level := visibility.Level(*row.Profile); level.Valid() {
			view.Profile = level
		}
	}
	return view, nil
}

// Update validates and applies a settings change. Every key must be a
// recognized field (or the profile key) and every value a known tier; the
// first offending key fails the whole update with nothing written. Keys are
// checked in sorted order so the reported offender is deterministic.
func (s *PrivacyService) Update(ctx context.Context, userID uint, changes map[string]string) error {
	keys := make([]string, 0, len(changes))
	for key := range changes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fields := visibility.FieldVisibilityMap{}
	var profileLevel *visibility.Level
	for _, key := range keys {
		level := visibility.Level(changes[key])
		if !level.Valid() {
			return fmt.Errorf("%w: key %q has unknown tier %q", visibility.ErrInvalidVisibilityValue, key, changes[key])
		}
		if key == ProfileKey {
			l := level
			profileLevel = &l
			continue
		}
		field := visibility.ProfileField(key)
		if !field.Valid() {
			return fmt.Errorf("%w: unknown field %q", visibility.ErrInvalidVisibilityValue, key)
		}
		fields[field] = level
	}

	row, err := s.store.Settings(ctx, userID)
	if err != nil {
		return err
	}
	if row == nil {
		row = &models.VisibilitySetting{UserID: userID}
	}
	fields.ApplyToModel(row)
	if profileLevel != nil {
		p := string(*profileLevel)
		row.Profile = &p
	}
	return s.store.SaveSettings(ctx, row)
}
