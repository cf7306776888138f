package relationship

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fitcircle/backend/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled second connection would get its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Relationship{}, &models.VisibilitySetting{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, handle string) uint {
	t.Helper()
	user := models.User{
		Handle:       handle,
		DisplayName:  handle,
		Email:        fmt.Sprintf("%s@example.com", handle),
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func TestResolveSymmetry(t *testing.T) {
	db := setupDB(t)
	store := NewGormStore(db)
	resolver := NewResolver(store)
	svc := NewService(store)
	ctx := context.Background()

	a := createUser(t, db, "alice")
	b := createUser(t, db, "bob")

	t.Run("pending splits by direction", func(t *testing.T) {
		_, err := svc.Connect(ctx, a, b)
		require.NoError(t, err)

		mapA, err := resolver.Resolve(ctx, a)
		require.NoError(t, err)
		mapB, err := resolver.Resolve(ctx, b)
		require.NoError(t, err)

		require.Equal(t, StatusPendingOutgoing, mapA.StatusOf(b))
		require.Equal(t, StatusPendingIncoming, mapB.StatusOf(a))

		entryA, ok := mapA.Entry(b)
		require.True(t, ok)
		entryB, ok := mapB.Entry(a)
		require.True(t, ok)
		require.Equal(t, entryA.RelationshipID, entryB.RelationshipID)
	})

	t.Run("accept connects both sides", func(t *testing.T) {
		_, err := svc.Accept(ctx, b, a)
		require.NoError(t, err)

		mapA, err := resolver.Resolve(ctx, a)
		require.NoError(t, err)
		mapB, err := resolver.Resolve(ctx, b)
		require.NoError(t, err)

		require.Equal(t, StatusConnected, mapA.StatusOf(b))
		require.Equal(t, StatusConnected, mapB.StatusOf(a))
		require.Equal(t, []uint{b}, mapA.ConnectedIDs())
	})

	t.Run("unknown user reads not_connected", func(t *testing.T) {
		mapA, err := resolver.Resolve(ctx, a)
		require.NoError(t, err)
		require.Equal(t, StatusNotConnected, mapA.StatusOf(9999))
	})
}

func TestResolveBlockedCollapses(t *testing.T) {
	db := setupDB(t)
	store := NewGormStore(db)
	resolver := NewResolver(store)
	svc := NewService(store)
	ctx := context.Background()

	a := createUser(t, db, "alice")
	b := createUser(t, db, "bob")
	c := createUser(t, db, "carol")

	require.NoError(t, svc.Block(ctx, a, b))
	_, err := svc.Connect(ctx, c, a)
	require.NoError(t, err)
	require.NoError(t, svc.Decline(ctx, a, c))

	mapA, err := resolver.Resolve(ctx, a)
	require.NoError(t, err)

	// Blocked and rejected read as not_connected but mark the pair excluded.
	require.Equal(t, StatusNotConnected, mapA.StatusOf(b))
	require.True(t, mapA.Blocked(b))
	require.Equal(t, StatusNotConnected, mapA.StatusOf(c))
	require.True(t, mapA.Blocked(c))

	mapB, err := resolver.Resolve(ctx, b)
	require.NoError(t, err)
	require.True(t, mapB.Blocked(a))
}

func TestConnectPairUniqueness(t *testing.T) {
	db := setupDB(t)
	store := NewGormStore(db)
	svc := NewService(store)
	ctx := context.Background()

	a := createUser(t, db, "alice")
	b := createUser(t, db, "bob")

	t.Run("self target rejected before any store call", func(t *testing.T) {
		_, err := svc.Connect(ctx, a, a)
		require.ErrorIs(t, err, ErrSelfTarget)
	})

	t.Run("duplicate request fails", func(t *testing.T) {
		_, err := svc.Connect(ctx, a, b)
		require.NoError(t, err)

		_, err = svc.Connect(ctx, a, b)
		require.ErrorIs(t, err, ErrAlreadyRequested)

		// The reverse direction hits the same record.
		_, err = svc.Connect(ctx, b, a)
		require.ErrorIs(t, err, ErrAlreadyRequested)
	})

	t.Run("store rejects a second row for the pair either way round", func(t *testing.T) {
		_, err := store.Create(ctx, a, b, models.RelationPending)
		require.ErrorIs(t, err, ErrDuplicatePair)
		_, err = store.Create(ctx, b, a, models.RelationPending)
		require.ErrorIs(t, err, ErrDuplicatePair)
	})

	t.Run("connect after accept reports already connected", func(t *testing.T) {
		_, err := svc.Accept(ctx, b, a)
		require.NoError(t, err)
		_, err = svc.Connect(ctx, a, b)
		require.ErrorIs(t, err, ErrAlreadyConnected)
	})
}

func TestConnectBlockedPair(t *testing.T) {
	db := setupDB(t)
	store := NewGormStore(db)
	svc := NewService(store)
	ctx := context.Background()

	a := createUser(t, db, "alice")
	b := createUser(t, db, "bob")

	require.NoError(t, svc.Block(ctx, b, a))

	_, err := svc.Connect(ctx, a, b)
	require.ErrorIs(t, err, ErrBlocked)
	_, err = svc.Connect(ctx, b, a)
	require.ErrorIs(t, err, ErrBlocked)
}

func TestAcceptOnlyAddressee(t *testing.T) {
	db := setupDB(t)
	store := NewGormStore(db)
	svc := NewService(store)
	ctx := context.Background()

	a := createUser(t, db, "alice")
	b := createUser(t, db, "bob")

	_, err := svc.Connect(ctx, a, b)
	require.NoError(t, err)

	// The requester cannot accept their own request.
	_, err = svc.Accept(ctx, a, b)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Accept(ctx, b, a)
	require.NoError(t, err)
}

func TestDisconnectRemovesAnyStatus(t *testing.T) {
	db := setupDB(t)
	store := NewGormStore(db)
	resolver := NewResolver(store)
	svc := NewService(store)
	ctx := context.Background()

	a := createUser(t, db, "alice")
	b := createUser(t, db, "bob")

	t.Run("removes accepted connection", func(t *testing.T) {
		_, err := svc.Connect(ctx, a, b)
		require.NoError(t, err)
		_, err = svc.Accept(ctx, b, a)
		require.NoError(t, err)

		require.NoError(t, svc.Disconnect(ctx, b, a))

		m, err := resolver.Resolve(ctx, a)
		require.NoError(t, err)
		require.Equal(t, StatusNotConnected, m.StatusOf(b))
		require.False(t, m.Blocked(b))
	})

	t.Run("pair can reconnect after removal", func(t *testing.T) {
		_, err := svc.Connect(ctx, b, a)
		require.NoError(t, err)

		m, err := resolver.Resolve(ctx, b)
		require.NoError(t, err)
		require.Equal(t, StatusPendingOutgoing, m.StatusOf(a))
	})

	t.Run("missing relation reports not found", func(t *testing.T) {
		c := createUser(t, db, "carol")
		require.ErrorIs(t, svc.Disconnect(ctx, a, c), ErrNotFound)
	})
}

func TestDeclineBlocksResend(t *testing.T) {
	db := setupDB(t)
	store := NewGormStore(db)
	svc := NewService(store)
	ctx := context.Background()

	a := createUser(t, db, "alice")
	b := createUser(t, db, "bob")

	_, err := svc.Connect(ctx, a, b)
	require.NoError(t, err)
	require.NoError(t, svc.Decline(ctx, b, a))

	// The rejected record keeps holding the pair slot until deleted.
	_, err = svc.Connect(ctx, a, b)
	require.ErrorIs(t, err, ErrAlreadyRequested)

	require.NoError(t, svc.Disconnect(ctx, a, b))
	_, err = svc.Connect(ctx, a, b)
	require.NoError(t, err)
}

func TestPendingRequests(t *testing.T) {
	db := setupDB(t)
	store := NewGormStore(db)
	svc := NewService(store)
	ctx := context.Background()

	a := createUser(t, db, "alice")
	b := createUser(t, db, "bob")
	c := createUser(t, db, "carol")

	_, err := svc.Connect(ctx, a, b)
	require.NoError(t, err)
	_, err = svc.Connect(ctx, c, a)
	require.NoError(t, err)

	incoming, outgoing, err := svc.PendingRequests(ctx, a)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	require.Len(t, outgoing, 1)
	require.Equal(t, c, incoming[0].RequesterID)
	require.Equal(t, b, outgoing[0].AddresseeID)
}
