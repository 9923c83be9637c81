package mocks

import (
	"github.com/anvitha1105/Capstone-finalreview/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// PermResult, if set, is returned from every Perm call
	// (truncated or identity-extended to the requested length)
	PermResult []int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with the given Intn results
func NewMockRandom(intnResults ...int) *MockRandom {
	return &MockRandom{IntnResults: intnResults}
}

// Intn returns the next queued result, or 0 when the queue is exhausted
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	if n > 0 {
		result = result % n
	}
	return result
}

// IntRange maps the next queued Intn result into [lo, hi]
func (r *MockRandom) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Perm returns PermResult adjusted to length n, or the identity permutation
func (r *MockRandom) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		if i < len(r.PermResult) {
			p[i] = r.PermResult[i] % n
		} else {
			p[i] = i
		}
	}
	return p
}
