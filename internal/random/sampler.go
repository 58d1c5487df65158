package random

import (
	"fmt"

	"github.com/osse101/DiceBot_Go/internal/domain"
)

// Sampler draws bounded integers from a Source without modulo bias
type Sampler struct {
	src Source
}

// NewSampler wraps src. A nil src means the crypto source.
func NewSampler(src Source) *Sampler {
	if src == nil {
		src = NewCryptoSource()
	}
	return &Sampler{src: src}
}

// Source returns the underlying entropy source
func (s *Sampler) Source() Source {
	return s.src
}

// NextInt returns a uniform integer in [min, max] (inclusive).
// Raw values in the incomplete final block of the source range are rejected and redrawn.
func (s *Sampler) NextInt(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMinGreaterThanMax)
	}

	span := uint64(max-min) + 1
	if span == 0 {
		// [min, max] covers every int64 value
		v, err := s.src.Uint64()
		if err != nil {
			return 0, err
		}
		return int(v), nil
	}

	// 2^64 mod span: values below this would over-represent the low residues
	threshold := -span % span
	for {
		v, err := s.src.Uint64()
		if err != nil {
			return 0, err
		}
		if v >= threshold {
			return min + int(v%span), nil
		}
	}
}

// Shuffle returns a uniformly permuted copy of items drawn from a fresh crypto source
func Shuffle[T any](items []T) ([]T, error) {
	return ShuffleWith(NewCryptoSource(), items)
}

// ShuffleSeeded returns a deterministic permutation of items for the given seed
func ShuffleSeeded[T any](items []T, seed uint64) []T {
	out, _ := ShuffleWith(NewSeededSource(seed), items) // seeded sources never fail
	return out
}

// ShuffleWith returns a Fisher–Yates permutation of a copy of items. items is not modified.
func ShuffleWith[T any](src Source, items []T) ([]T, error) {
	out := make([]T, len(items))
	copy(out, items)

	sampler := NewSampler(src)
	for i := len(out) - 1; i > 0; i-- {
		j, err := sampler.NextInt(0, i)
		if err != nil {
			return nil, err
		}
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// ChooseOne returns one uniformly chosen element. ok is false for an empty slice.
func ChooseOne[T any](src Source, items []T) (item T, ok bool, err error) {
	picked, err := ChooseMany(src, items, 1)
	if err != nil || len(picked) == 0 {
		return item, false, err
	}
	return picked[0], true, nil
}

// ChooseMany returns the first n elements of a freshly shuffled copy of items.
// n larger than len(items) returns the whole permutation.
func ChooseMany[T any](src Source, items []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeCount)
	}
	shuffled, err := ShuffleWith(src, items)
	if err != nil {
		return nil, err
	}
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n], nil
}
