package discovery

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fitcircle/backend/internal/models"
	"fitcircle/backend/internal/profile"
	"fitcircle/backend/internal/relationship"
	"fitcircle/backend/internal/visibility"
)

type fixture struct {
	db       *gorm.DB
	ranker   *Ranker
	relation *relationship.Service
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Relationship{}, &models.VisibilitySetting{}))

	profiles := profile.NewGormStore(db)
	relationStore := relationship.NewGormStore(db)
	resolver := relationship.NewResolver(relationStore)
	engine := visibility.NewEngine(visibility.DefaultTiers())
	redactor := visibility.NewRedactor(engine)

	return &fixture{
		db:       db,
		ranker:   NewRanker(profiles, resolver, engine, redactor),
		relation: relationship.NewService(relationStore),
	}
}

func (f *fixture) user(t *testing.T, u models.User) uint {
	t.Helper()
	if u.Email == "" {
		u.Email = fmt.Sprintf("%s-%s@example.com", u.Handle, u.DisplayName)
	}
	if u.PasswordHash == "" {
		u.PasswordHash = "x"
	}
	require.NoError(t, f.db.Create(&u).Error)
	return u.ID
}

func (f *fixture) setTier(t *testing.T, userID uint, field visibility.ProfileField, level visibility.Level) {
	t.Helper()
	var row models.VisibilitySetting
	err := f.db.Where("user_id = ?", userID).First(&row).Error
	if err != nil {
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
		row = models.VisibilitySetting{UserID: userID}
	}
	m := visibility.FieldVisibilityMap{field: level}
	m.ApplyToModel(&row)
	require.NoError(t, f.db.Save(&row).Error)
}

func ids(results []RankedResult) []uint {
	out := make([]uint, 0, len(results))
	for _, r := range results {
		out = append(out, r.ID)
	}
	return out
}

func TestSearchNonLeakage(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	viewer := f.user(t, models.User{Handle: "viewer", DisplayName: "Viewer"})
	subject := f.user(t, models.User{
		Handle:      "springster",
		DisplayName: "Subject",
		City:        "Springfield",
		Badges:      "ironman",
	})
	f.setTier(t, subject, visibility.FieldCity, visibility.LevelCircle)
	f.setTier(t, subject, visibility.FieldBadges, visibility.LevelPublic)

	t.Run("hidden field never matches a query", func(t *testing.T) {
		results, err := f.ranker.Search(ctx, viewer, "Springfield", Options{})
		require.NoError(t, err)
		require.Empty(t, results)
	})

	t.Run("hit via handle redacts the hidden field", func(t *testing.T) {
		results, err := f.ranker.Search(ctx, viewer, "springster", Options{})
		require.NoError(t, err)
		require.Len(t, results, 1)

		hit := results[0]
		require.Equal(t, subject, hit.ID)
		require.True(t, hit.City.Hidden)
		require.False(t, hit.City.Set)
		require.Equal(t, "ironman", hit.Badges.Value)
		require.Equal(t, relationship.StatusNotConnected, hit.RelationshipStatus)
		require.Nil(t, hit.RelationshipID)
	})

	t.Run("connection makes the field searchable and visible", func(t *testing.T) {
		_, err := f.relation.Connect(ctx, viewer, subject)
		require.NoError(t, err)
		_, err = f.relation.Accept(ctx, subject, viewer)
		require.NoError(t, err)

		results, err := f.ranker.Search(ctx, viewer, "Springfield", Options{})
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, "Springfield", results[0].City.Value)
		require.Equal(t, relationship.StatusConnected, results[0].RelationshipStatus)
		require.NotNil(t, results[0].RelationshipID)
	})
}

func TestSearchRanking(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	viewer := f.user(t, models.User{Handle: "viewer", DisplayName: "Viewer"})
	exact := f.user(t, models.User{Handle: "runner", DisplayName: "Zoe"})
	partialHandle := f.user(t, models.User{Handle: "roadrunner", DisplayName: "Yann"})
	nameOnly := f.user(t, models.User{Handle: "sprint99", DisplayName: "The Runner"})
	tieA := f.user(t, models.User{Handle: "runnerA", DisplayName: "Anna"})
	tieB := f.user(t, models.User{Handle: "runnerB", DisplayName: "Bert"})

	results, err := f.ranker.Search(ctx, viewer, "runner", Options{})
	require.NoError(t, err)

	// Exact handle first, then partial handles tied and broken by display
	// name, then display-name-only matches.
	require.Equal(t, []uint{exact, tieA, tieB, partialHandle, nameOnly}, ids(results))
}

func TestRecommendedMode(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	viewer := f.user(t, models.User{Handle: "viewer", DisplayName: "Viewer"})
	full := f.user(t, models.User{
		Handle: "complete", DisplayName: "Complete",
		PictureURL: "p.jpg", Bio: "here to train",
	})
	handleOnly := f.user(t, models.User{Handle: "sparse", DisplayName: "Sparse"})

	results, err := f.ranker.Search(ctx, viewer, "", Options{})
	require.NoError(t, err)
	require.Equal(t, []uint{full, handleOnly}, ids(results))
}

func TestConnectedOnly(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	viewer := f.user(t, models.User{Handle: "viewer", DisplayName: "Viewer"})
	friend := f.user(t, models.User{Handle: "friend", DisplayName: "Friend"})
	f.user(t, models.User{Handle: "stranger", DisplayName: "Stranger"})

	t.Run("empty circle short-circuits to empty", func(t *testing.T) {
		results, err := f.ranker.Search(ctx, viewer, "", Options{ConnectedOnly: true})
		require.NoError(t, err)
		require.Empty(t, results)
	})

	t.Run("only the circle appears", func(t *testing.T) {
		_, err := f.relation.Connect(ctx, viewer, friend)
		require.NoError(t, err)
		_, err = f.relation.Accept(ctx, friend, viewer)
		require.NoError(t, err)

		results, err := f.ranker.Search(ctx, viewer, "", Options{ConnectedOnly: true})
		require.NoError(t, err)
		require.Equal(t, []uint{friend}, ids(results))
	})
}

func TestBlockedExcludedBothWays(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	a := f.user(t, models.User{Handle: "alice", DisplayName: "Alice"})
	b := f.user(t, models.User{Handle: "bob", DisplayName: "Bob"})

	require.NoError(t, f.relation.Block(ctx, a, b))

	results, err := f.ranker.Search(ctx, a, "bob", Options{})
	require.NoError(t, err)
	require.Empty(t, results)

	results, err = f.ranker.Search(ctx, b, "alice", Options{})
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestDiscoverability(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	viewer := f.user(t, models.User{Handle: "viewer", DisplayName: "Viewer"})
	private := string(visibility.LevelPrivate)

	hidden := f.user(t, models.User{DisplayName: "Ghost", Email: "ghost@example.com"})
	require.NoError(t, f.db.Create(&models.VisibilitySetting{UserID: hidden, Profile: &private}).Error)

	withHandle := f.user(t, models.User{Handle: "ghost2", DisplayName: "Ghost Two"})
	require.NoError(t, f.db.Create(&models.VisibilitySetting{UserID: withHandle, Profile: &private}).Error)

	results, err := f.ranker.Search(ctx, viewer, "ghost", Options{})
	require.NoError(t, err)

	// A private profile without a handle is undiscoverable; a handle keeps
	// the user findable by that handle.
	require.Equal(t, []uint{withHandle}, ids(results))
}

func TestLimitClamping(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	viewer := f.user(t, models.User{Handle: "viewer", DisplayName: "Viewer"})
	for i := 0; i < 3; i++ {
		f.user(t, models.User{
			Handle:      fmt.Sprintf("athlete%d", i),
			DisplayName: fmt.Sprintf("Athlete %d", i),
		})
	}

	t.Run("in-range limit truncates", func(t *testing.T) {
		results, err := f.ranker.Search(ctx, viewer, "athlete", Options{Limit: 2})
		require.NoError(t, err)
		require.Len(t, results, 2)
	})

	t.Run("zero clamps to default", func(t *testing.T) {
		results, err := f.ranker.Search(ctx, viewer, "athlete", Options{Limit: 0})
		require.NoError(t, err)
		require.Len(t, results, 3)
	})

	t.Run("over the cap clamps to default", func(t *testing.T) {
		results, err := f.ranker.Search(ctx, viewer, "athlete", Options{Limit: MaxLimit + 1})
		require.NoError(t, err)
		require.Len(t, results, 3)
	})
}
