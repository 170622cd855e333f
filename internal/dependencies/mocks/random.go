package mocks

import (
	"fmt"

	"github.com/mwhitfield/clubstore/internal/dependencies/random"
)

// MockRandom is a deterministic Random for testing. Each call to ID
// returns prefix + an incrementing counter.
type MockRandom struct {
	counter int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with the counter at zero
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// ID returns a sequential id with the given prefix
func (r *MockRandom) ID(prefix string) string {
	r.counter++
	return fmt.Sprintf("%s%d", prefix, r.counter)
}
