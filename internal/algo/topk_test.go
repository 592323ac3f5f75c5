package algo

import (
	"context"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopKMatchesGlobalSort(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 20; seed++ {
		cfg := TopKConfig{Workers: 3, Size: 6, K: 4, Max: 50, Seed: seed}
		res, err := TopK(context.Background(), cfg, nil)
		require.NoError(t, err)
		require.Len(t, res.Workers, 3)

		var all []int
		for _, w := range res.Workers {
			assert.Len(t, w.Data, 6)
			assert.LessOrEqual(t, len(w.Local), 4)
			all = append(all, w.Data...)
		}
		slices.Sort(all)
		slices.Reverse(all)
		assert.Equal(t, all[:4], res.Global, "seed=%d", seed)
	}
}

func TestTopKExtremeValues(t *testing.T) {
	t.Parallel()

	cfg := TopKConfig{Workers: 1, K: 2, Values: []int{math.MinInt, math.MaxInt, 0}}
	res, err := TopK(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{math.MaxInt, 0}, res.Global)
	require.Len(t, res.Workers, 1)
	assert.Equal(t, []int{math.MaxInt, 0, math.MinInt}, res.Workers[0].Sorted)
}

func TestTopKDeterministic(t *testing.T) {
	t.Parallel()

	cfg := TopKConfig{Workers: 3, Size: 5, K: 3, Seed: 42}
	a, err := TopK(context.Background(), cfg, nil)
	require.NoError(t, err)
	b, err := TopK(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, a.Global, b.Global)
	assert.Equal(t, a.Workers, b.Workers)
}

func TestTopKWithValues(t *testing.T) {
	t.Parallel()

	var stages []TopKStage
	res, err := TopK(context.Background(), TopKConfig{Workers: 3, K: 2, Values: []int{4, 9, 1, 7, 3, 8, 2}}, func(ev TopKEvent) bool {
		stages = append(stages, ev.Stage)
		return true
	})
	require.NoError(t, err)

	assert.Equal(t, []int{4, 7, 2}, res.Workers[0].Data)
	assert.Equal(t, []int{9, 8}, res.Global)
	assert.Equal(t, []TopKStage{TopKLocal, TopKLocal, TopKLocal, TopKMerge, TopKMerge}, stages)
}

func TestTopKInvalid(t *testing.T) {
	t.Parallel()

	_, err := TopK(context.Background(), TopKConfig{Workers: 0, Size: 3, K: 1}, nil)
	assert.ErrorIs(t, err, ErrInvalidTopK)
}

func TestTopKCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := TopK(ctx, TopKConfig{Workers: 3, Size: 3, K: 1}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
