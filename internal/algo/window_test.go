package algo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowSumsMatchBruteForce(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(20) + 1
		values := make([]int, n)
		for i := range values {
			values[i] = rng.Intn(41) - 20
		}
		k := rng.Intn(n) + 1

		res, err := WindowSums(values, k, nil)
		require.NoError(t, err)
		assert.Equal(t, BruteWindowSums(values, k), res.Sums, "values=%v k=%d", values, k)
		assert.Equal(t, res.Sums[res.BestLeft], res.Best)
		for _, s := range res.Sums {
			assert.LessOrEqual(t, s, res.Best)
		}
	}
}

func TestWindowSumsEvents(t *testing.T) {
	t.Parallel()

	values := []int{2, 1, 5, 1, 3, 2}
	var steps []WindowStep
	res, err := WindowSums(values, 3, func(s WindowStep) bool {
		steps = append(steps, s)
		return true
	})
	require.NoError(t, err)
	require.Len(t, steps, len(values))

	assert.Equal(t, []int{8, 7, 9, 6}, res.Sums)
	assert.Equal(t, 9, res.Best)
	assert.Equal(t, 2, res.BestLeft)
	assert.Equal(t, WindowGrow, steps[0].Phase)
	assert.False(t, steps[1].Full)
	assert.True(t, steps[2].Full)
	assert.Equal(t, WindowSlide, steps[3].Phase)
	assert.Equal(t, 2, steps[3].Removed)
	for _, s := range steps {
		if s.Full {
			assert.Equal(t, 2, s.Right-s.Left)
		}
	}
}

func TestWindowSumsInvalidSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []int
		k      int
	}{
		{"zero", []int{1, 2}, 0},
		{"too large", []int{1, 2}, 3},
		{"empty", nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WindowSums(tt.values, tt.k, nil)
			assert.ErrorIs(t, err, ErrWindowSize)
			assert.Nil(t, BruteWindowSums(tt.values, tt.k))
		})
	}
}
