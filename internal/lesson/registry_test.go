package lesson

import (
	"testing"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct{}

func (echo) ID() string    { return "echo" }
func (echo) Title() string { return "Echo" }
func (echo) Deck() Deck    { return Deck{Summary: "echo"} }
func (echo) Build(ds config.Dataset) (step.Sequence, error) {
	return step.FromFrames([]step.Frame{{Caption: "only", Final: true}}), nil
}

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	want := []string{"sliding-window", "two-pointers", "graph", "binary-search", "recursion", "heap", "stack-queue", "top-k"}
	assert.Equal(t, want, r.IDs())

	lessons := r.List()
	require.Len(t, lessons, len(want))
	for i, l := range lessons {
		assert.Equal(t, want[i], l.ID())
	}

	for _, id := range want {
		if _, ok := config.DefaultDatasets()[id]; !ok {
			t.Errorf("expected default dataset for %s", id)
		}
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("echo", func() Lesson { return echo{} })
	r.Register("echo", func() Lesson { return echo{} })

	ids := r.IDs()
	assert.Equal(t, "echo", ids[len(ids)-1])
	assert.Len(t, ids, 9)

	l, err := r.Get("echo")
	require.NoError(t, err)
	seq, err := l.Build(config.Dataset{})
	require.NoError(t, err)
	assert.Equal(t, 1, step.Len(seq))
}

func TestDeckString(t *testing.T) {
	d := Heap{}.Deck()
	s := d.String()
	assert.Contains(t, s, d.Summary)
	assert.Contains(t, s, "Bubble-up")
	assert.Contains(t, s, "Complexity: ")
}

func TestCheckValues(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		wantErr bool
	}{
		{"one", []int{1}, false},
		{"limit", make([]int, 20), false},
		{"empty", nil, true},
		{"too many", make([]int, 21), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := checkValues(tt.values)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestInRange(t *testing.T) {
	got := inRange(3, step.Mark{Name: "a", Index: -1}, step.Mark{Name: "b", Index: 2}, step.Mark{Name: "c", Index: 3})
	assert.Equal(t, []step.Mark{{Name: "b", Index: 2}}, got)
	assert.Empty(t, inRange(0))
}
