// Package input parses the free-text numeric entry of the lesson screens.
package input

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxValues caps how many numbers a lesson renders.
const MaxValues = 20

var (
	// ErrNoValues is shown as a blocking alert when nothing parsed.
	ErrNoValues = errors.New("input: please enter valid numbers, e.g. 40, 30, 60")

	// ErrTooManyValues rejects lists longer than the limit.
	ErrTooManyValues = errors.New("input: too many values")
)

// ParseInts splits s on commas and whitespace and keeps every token that is
// an integer. Other tokens are dropped without complaint; an empty result is
// an error.
func ParseInts(s string) ([]int, error) {
	return ParseIntsLimit(s, MaxValues)
}

// ParseIntsLimit is ParseInts with a custom limit. limit <= 0 disables it.
func ParseIntsLimit(s string, limit int) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, ErrNoValues
	}
	if limit > 0 && len(values) > limit {
		return nil, errors.Wrapf(ErrTooManyValues, "got %d, at most %d", len(values), limit)
	}
	return values, nil
}

// FormatInts renders values the way the text box shows them.
func FormatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
