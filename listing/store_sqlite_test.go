package listing

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premier-auto/site/db"
	"github.com/premier-auto/site/logging"
)

// newSQLiteStore opens a migrated sqlite database in a temp dir.
func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	conn, dialect, err := db.Open(ctx, filepath.Join(t.TempDir(), "listings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.Migrate(ctx, conn, dialect, logging.Discard()))

	return NewStore(conn)
}

func TestSQLite_ListNewestFirstAcrossZones(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	plusFive := time.FixedZone("UTC+5", 5*60*60)
	older := time.Date(2024, 1, 1, 10, 0, 0, 0, plusFive) // 05:00Z
	newer := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	_, err := store.Insert(ctx, Listing{ID: "older", Make: "Ford", Model: "Focus", Condition: ConditionUsed, CreatedAt: older})
	require.NoError(t, err)
	_, err = store.Insert(ctx, Listing{ID: "newer", Make: "Kia", Model: "Soul", Condition: ConditionNew, CreatedAt: newer})
	require.NoError(t, err)

	listings, err := store.ListNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "newer", listings[0].ID)
	assert.Equal(t, "older", listings[1].ID)
	assert.True(t, listings[1].CreatedAt.Equal(older), "got %s", listings[1].CreatedAt)
}

func TestSQLite_InsertReturnsUTC(t *testing.T) {
	store := newSQLiteStore(t)

	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.FixedZone("PST", -8*60*60))
	got, err := store.Insert(context.Background(), Listing{Make: "Mazda", Model: "CX-5", Condition: ConditionUsed, CreatedAt: created})

	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.CreatedAt.Location())
	assert.True(t, got.CreatedAt.Equal(created))
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestSQLite_FeaturesRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	saved, err := store.Insert(ctx, Listing{
		Make: "Subaru", Model: "Outback", Condition: ConditionUsed,
		Features: []string{"All-Wheel Drive", "Roof Rails"},
	})
	require.NoError(t, err)

	got, err := store.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"All-Wheel Drive", "Roof Rails"}, got.Features)
	assert.Nil(t, got.VIN)
}
