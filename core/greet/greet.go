// core/greet/greet.go
package greet

import (
	"errors"
	"fmt"
)

// Text is the literal emitted for every output line.
const Text = "Hello world!"

// MaxCount caps a single run. Go cannot trap a failed allocation, so counts
// beyond the cap are rejected up front instead of attempted.
const MaxCount = 100_000_000

var (
	ErrNegativeCount = errors.New("negative count")
	ErrCountTooLarge = errors.New("count exceeds maximum")
)

// Lines returns exactly count copies of Text, in sequence order.
// count == 0 yields an empty sequence, not an error.
func Lines(count int) ([]string, error) {
	switch {
	case count < 0:
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	case count > MaxCount:
		return nil, fmt.Errorf("%w: %d > %d", ErrCountTooLarge, count, MaxCount)
	}
	lines := make([]string, count)
	for i := range lines {
		lines[i] = Text
	}
	return lines, nil
}
