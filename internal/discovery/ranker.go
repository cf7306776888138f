package discovery

import (
	"context"
	"sort"
	"strings"

	"fitcircle/backend/internal/models"
	"fitcircle/backend/internal/profile"
	"fitcircle/backend/internal/relationship"
	"fitcircle/backend/internal/visibility"
)

const (
	// DefaultLimit is the result count when the caller gives none.
	DefaultLimit = 20

	// MaxLimit is the hard cap on results per call.
	MaxLimit = 50
)

// Options controls a search call.
type Options struct {
	// Limit is the maximum number of results. Values outside [1, MaxLimit]
	// clamp to DefaultLimit rather than erroring.
	Limit int

	// ConnectedOnly restricts candidates to the viewer's accepted
	// connections. An empty circle short-circuits to an empty result, never
	// the full directory.
	ConnectedOnly bool
}

// RankedResult is one search hit: the redacted projection plus the viewer's
// relationship state for UI affordances ("connect" vs "pending").
type RankedResult struct {
	visibility.RedactedProfile
	RelationshipStatus relationship.Status `json:"relationship_status"`
	RelationshipID     *uint               `json:"relationship_id,omitempty"`
}

// rankRule is one scoring factor. Rules are evaluated in order into a
// composite score; weights are spaced so each rule dominates everything
// after it, which keeps inserting a new factor a one-line change.
type rankRule struct {
	weight int
	match  func(c *candidate) bool
}

type candidate struct {
	user     models.User
	settings visibility.FieldVisibilityMap
	status   relationship.Status
	score    int
}

// Ranker runs discovery searches: candidate selection, visibility-gated text
// filtering, deterministic ranking, then redaction.
type Ranker struct {
	profiles profile.Store
	resolver *relationship.Resolver
	engine   *visibility.Engine
	redactor *visibility.Redactor
}

// NewRanker creates a Ranker over the given collaborators.
func NewRanker(profiles profile.Store, resolver *relationship.Resolver, engine *visibility.Engine, redactor *visibility.Redactor) *Ranker {
	return &Ranker{profiles: profiles, resolver: resolver, engine: engine, redactor: redactor}
}

// Search runs the discovery pipeline for viewerID. An empty query means
// recommended mode, ranked by profile completeness. All filtering happens on
// the fully loaded relation map; a store failure anywhere aborts the call
// with no partial results.
func (r *Ranker) Search(ctx context.Context, viewerID uint, query string, opts Options) ([]RankedResult, error) {
	relMap, err := r.resolver.Resolve(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if opts.ConnectedOnly {
		ids := relMap.ConnectedIDs()
		if len(ids) == 0 {
			return []RankedResult{}, nil
		}
		users, err = r.profiles.ByIDs(ctx, ids)
	} else {
		users, err = r.profiles.Discoverable(ctx, viewerID)
	}
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(users))
	for i := range users {
		ids = append(ids, users[i].ID)
	}
	settingsByID, err := r.profiles.SettingsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	candidates := make([]*candidate, 0, len(users))
	for i := range users {
		user := users[i]
		if user.ID == viewerID || relMap.Blocked(user.ID) {
			continue
		}
		c := &candidate{
			user:     user,
			settings: visibility.SettingsFromModel(settingsByID[user.ID]),
			status:   relMap.StatusOf(user.ID),
		}
		if query != "" && !r.matchesQuery(c, query) {
			continue
		}
		candidates = append(candidates, c)
	}

	r.rank(candidates, query)

	limit := opts.Limit
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	results := make([]RankedResult, 0, len(candidates))
	for _, c := range candidates {
		result := RankedResult{
			RedactedProfile:    r.redactor.Redact(&c.user, c.settings, c.status),
			RelationshipStatus: c.status,
		}
		if entry, ok := relMap.Entry(c.user.ID); ok {
			id := entry.RelationshipID
			result.RelationshipID = &id
		}
		results = append(results, result)
	}
	return results, nil
}

// matchesQuery reports whether the candidate matches the query. Display name
// and handle are always searchable; city, state and bio count only when the
// viewer can currently see them, so search cannot be used as an oracle for
// hidden values.
func (r *Ranker) matchesQuery(c *candidate, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(c.user.DisplayName), q) {
		return true
	}
	if strings.Contains(strings.ToLower(c.user.Handle), q) {
		return true
	}
	gated := []struct {
		field visibility.ProfileField
		value string
	}{
		{visibility.FieldCity, c.user.City},
		{visibility.FieldState, c.user.State},
		{visibility.FieldBio, c.user.Bio},
	}
	for _, g := range gated {
		if !r.engine.FieldVisible(c.settings, g.field, c.status) {
			continue
		}
		if strings.Contains(strings.ToLower(g.value), q) {
			return true
		}
	}
	return false
}

// rank orders candidates by the composite score of the applicable rule list.
// Query mode breaks ties by ascending display name for determinism;
// recommended mode keeps the stable underlying order.
func (r *Ranker) rank(candidates []*candidate, query string) {
	var rules []rankRule
	if query != "" {
		q := strings.ToLower(query)
		rules = []rankRule{
			{4, func(c *candidate) bool {
				return c.user.Handle != "" && strings.EqualFold(c.user.Handle, query)
			}},
			{2, func(c *candidate) bool {
				return c.user.Handle != "" && strings.Contains(strings.ToLower(c.user.Handle), q)
			}},
			{1, func(c *candidate) bool {
				return strings.Contains(strings.ToLower(c.user.DisplayName), q)
			}},
		}
	} else {
		rules = []rankRule{
			{4, func(c *candidate) bool { return c.user.PictureURL != "" }},
			{2, func(c *candidate) bool { return c.user.Bio != "" }},
			{1, func(c *candidate) bool { return c.user.Handle != "" }},
		}
	}

	for _, c := range candidates {
		for _, rule := range rules {
			if rule.match(c) {
				c.score += rule.weight
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if query != "" {
			return candidates[i].user.DisplayName < candidates[j].user.DisplayName
		}
		return false
	})
}
