package df

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/zeusync/lightseek/internal/core/systems/physics"
)

var _ Finder = (*MultiElement)(nil)

// MultiElement combines the k strongest samples by adding their location
// vectors. The sum is not normalised: its length grows with k and with how
// closely the strongest elements point the same way. It makes no special
// case of identical or invalid amplitudes.
type MultiElement struct {
	k int
}

func NewMultiElement(k int) (*MultiElement, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidElementCount, k)
	}
	return &MultiElement{k: k}, nil
}

func (m *MultiElement) Name() string { return KindMulti }

func (m *MultiElement) K() int { return m.k }

// FindDirection fails with ErrTooFewSamples when k exceeds the number of
// samples; it never clamps k.
func (m *MultiElement) FindDirection(samples []Sample) (Estimate, error) {
	if m.k > len(samples) {
		return NoEstimate, fmt.Errorf("%w: need %d, have %d", ErrTooFewSamples, m.k, len(samples))
	}

	var sum physics.Vec3
	for _, sample := range m.strongest(samples) {
		sum = sum.Add(sample.Location)
	}
	return direction(sum), nil
}

// strongest returns the first k samples by descending amplitude. The sort is
// stable, so equal amplitudes keep their input order; NaN sorts last.
func (m *MultiElement) strongest(samples []Sample) []Sample {
	sorted := slices.Clone(samples)
	slices.SortStableFunc(sorted, func(a, b Sample) int {
		return cmp.Compare(b.Amplitude, a.Amplitude)
	})
	return sorted[:m.k]
}
