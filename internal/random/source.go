// Package random provides the entropy sources and unbiased sampling used to roll dice.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/osse101/DiceBot_Go/internal/domain"
)

// Source produces uniformly distributed 64-bit values.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	Uint64() (uint64, error)
}

// EntropyError reports that a source could not produce randomness
type EntropyError struct {
	Err error
}

func (e *EntropyError) Error() string {
	return fmt.Sprintf("%s: %v", domain.ErrMsgEntropyUnavailable, e.Err)
}

func (e *EntropyError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is(err, domain.ErrEntropyUnavailable)
func (e *EntropyError) Is(target error) bool {
	return target == domain.ErrEntropyUnavailable
}

// readerSource draws bytes from an io.Reader
type readerSource struct {
	r io.Reader
}

// NewCryptoSource returns the default Source backed by crypto/rand
func NewCryptoSource() Source {
	return &readerSource{r: crand.Reader}
}

// NewReaderSource returns a Source reading from r. Short reads are entropy errors.
func NewReaderSource(r io.Reader) Source {
	return &readerSource{r: r}
}

func (s *readerSource) Uint64() (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		return 0, &EntropyError{Err: err}
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// seededSource is a deterministic PCG stream for reproducible tests and simulations
type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource returns a deterministic Source. It never fails.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed^pcgStreamSalt))}
}

func (s *seededSource) Uint64() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint64(), nil
}

// fallbackSource tries primary first and only then the explicitly opted-in fallback
type fallbackSource struct {
	primary  Source
	fallback Source
}

// WithInsecureFallback returns a Source that uses fallback when primary fails.
// Callers opt in explicitly; every fallback is logged.
func WithInsecureFallback(primary, fallback Source) Source {
	return &fallbackSource{primary: primary, fallback: fallback}
}

func (s *fallbackSource) Uint64() (uint64, error) {
	v, err := s.primary.Uint64()
	if err == nil {
		return v, nil
	}
	slog.Default().Warn(LogMsgFallingBack, "error", err)
	return s.fallback.Uint64()
}
