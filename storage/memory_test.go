package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRecordsRoundTrip(t *testing.T) {
	ctx := context.Background()
	records := NewMemoryRecords()

	type payload struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	require.NoError(t, records.Save(ctx, KeyCart, payload{Name: "Margherita", Price: 9.99}))

	var got payload
	require.NoError(t, records.Load(ctx, KeyCart, &got))
	assert.Equal(t, "Margherita", got.Name)
	assert.InDelta(t, 9.99, got.Price, 1e-9)
}

func TestMemoryRecordsNotFound(t *testing.T) {
	records := NewMemoryRecords()

	var dest interface{}
	err := records.Load(context.Background(), KeyOrders, &dest)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRecordsSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	records := NewMemoryRecords()

	require.NoError(t, records.Save(ctx, KeyUser, []int{1, 2, 3}))
	require.NoError(t, records.Save(ctx, KeyUser, []int{4}))

	var got []int
	require.NoError(t, records.Load(ctx, KeyUser, &got))
	assert.Equal(t, []int{4}, got)
}
