package scanlog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStoreAppend(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	entry := &Entry{BatchCode: "MED-2025-001", Status: "VALID", ScannedBy: "api_user"}
	id, err := store.Append(ctx, entry)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, id, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestInMemoryStoreListRecent(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	for i := 0; i < 5; i++ {
		_, err := store.Append(ctx, &Entry{
			BatchCode: fmt.Sprintf("BATCH-%d", i),
			Status:    "VALID",
			ScannedBy: "api_user",
		})
		require.NoError(t, err)
	}

	t.Run("newest first", func(t *testing.T) {
		entries, err := store.ListRecent(ctx, 3)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "BATCH-4", entries[0].BatchCode)
		assert.Equal(t, "BATCH-3", entries[1].BatchCode)
		assert.Equal(t, "BATCH-2", entries[2].BatchCode)
	})

	t.Run("limit above size returns everything", func(t *testing.T) {
		entries, err := store.ListRecent(ctx, 50)
		require.NoError(t, err)
		assert.Len(t, entries, 5)
	})

	t.Run("zero limit returns nothing", func(t *testing.T) {
		entries, err := store.ListRecent(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestInMemoryStoreAggregate(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	statuses := []string{"VALID", "FAKE", "EXPIRED", "FAKE", "RECALLED"}
	for _, status := range statuses {
		_, err := store.Append(ctx, &Entry{BatchCode: "X", Status: status, ScannedBy: "api_user"})
		require.NoError(t, err)
	}

	summary, err := store.Aggregate(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 5, Fake: 2}, summary)
}

func TestInMemoryStoreAggregateEmpty(t *testing.T) {
	summary, err := NewInMemoryStore().Aggregate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
}
