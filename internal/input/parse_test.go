package input

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseInts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"comma list", "40, 30, 60", []int{40, 30, 60}},
		{"no spaces", "1,2,3", []int{1, 2, 3}},
		{"negatives", "-5, 0, 7", []int{-5, 0, 7}},
		{"drops junk", "10, abc, 20, 3.5, ,30", []int{10, 20, 30}},
		{"whitespace separated", "4 5\t6", []int{4, 5, 6}},
		{"plus sign", "+8", []int{8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInts(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseIntsRejectsEmpty(t *testing.T) {
	for _, in := range []string{"", "abc", " , , ", "x, y"} {
		_, err := ParseInts(in)
		if !errors.Is(err, ErrNoValues) {
			t.Errorf("input %q: expected ErrNoValues, got %v", in, err)
		}
	}
}

func TestParseIntsLimit(t *testing.T) {
	long := strings.TrimSuffix(strings.Repeat("1,", MaxValues+1), ",")
	if _, err := ParseInts(long); !errors.Is(err, ErrTooManyValues) {
		t.Errorf("expected ErrTooManyValues, got %v", err)
	}
	if _, err := ParseIntsLimit(long, 0); err != nil {
		t.Errorf("expected no limit, got %v", err)
	}
}

func TestFormatInts(t *testing.T) {
	if got := FormatInts([]int{40, 30, 60}); got != "40, 30, 60" {
		t.Errorf("expected \"40, 30, 60\", got %q", got)
	}
	values, err := ParseInts(FormatInts([]int{1, -2, 3}))
	if err != nil || !reflect.DeepEqual(values, []int{1, -2, 3}) {
		t.Errorf("expected round trip, got %v (%v)", values, err)
	}
}
