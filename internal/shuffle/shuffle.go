package shuffle

import (
	"errors"
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_shuffler.go ratmas/internal/shuffle Shuffler

var (
	// ErrTooFewElements is returned when no derangement can exist
	ErrTooFewElements = errors.New("too few elements to derange")

	// ErrRetriesExhausted is returned when the retry bound is hit without
	// finding a fixed-point-free permutation. Transient: the caller may retry.
	ErrRetriesExhausted = errors.New("exhausted retries without finding a derangement")
)

// defaultMaxAttempts is a safety valve against pathological RNG behavior.
// The expected number of shuffles until a derangement is about e, so this
// bound is effectively never hit.
const defaultMaxAttempts = 1000

// Shuffler produces random derangements
type Shuffler interface {
	// Derange returns a permutation p of [0, n) with p[i] != i for all i
	Derange(n int) ([]int, error)
}

// Config for the shuffler
type Config struct {
	// MaxAttempts bounds the shuffle-and-check retry loop
	MaxAttempts int

	// Optional seed for testing
	Seed int64
}

// shuffler implements Shuffler using repeated Fisher-Yates shuffles
type shuffler struct {
	random      *rand.Rand
	maxAttempts int
}

// New creates a new shuffler
func New(cfg *Config) *shuffler {
	var seed int64
	maxAttempts := defaultMaxAttempts

	if cfg != nil {
		if cfg.Seed != 0 {
			seed = cfg.Seed
		}
		if cfg.MaxAttempts > 0 {
			maxAttempts = cfg.MaxAttempts
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &shuffler{
		random:      rand.New(rand.NewSource(seed)),
		maxAttempts: maxAttempts,
	}
}

// Derange returns a uniformly random permutation of [0, n) with no fixed
// point. It shuffles, scans for fixed points, and reshuffles up to the
// configured bound.
func (s *shuffler) Derange(n int) ([]int, error) {
	if n < 2 {
		return nil, ErrTooFewElements
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		// Fisher-Yates shuffle
		for i := n - 1; i > 0; i-- {
			j := s.random.Intn(i + 1)
			perm[i], perm[j] = perm[j], perm[i]
		}

		if hasFixedPoint(perm) {
			continue
		}

		return perm, nil
	}

	return nil, ErrRetriesExhausted
}

func hasFixedPoint(perm []int) bool {
	for i, v := range perm {
		if i == v {
			return true
		}
	}
	return false
}
