package combat

import (
	"io"
	"math/rand"

	"github.com/google/uuid"
)

//go:generate go tool mockgen -destination=./mocks/source_mock.go -package=mocks . Source

// Source is the randomness provider for every roll in the combat core.
// *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n). n must be > 0.
	Intn(n int) int
}

// NewSource returns a seeded Source for reproducible runs.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewID returns a UUID string. When src can also act as a byte stream the
// UUID is drawn from it, so a seeded source yields the same IDs every run.
func NewID(src Source) string {
	if r, ok := src.(io.Reader); ok {
		if id, err := uuid.NewRandomFromReader(r); err == nil {
			return id.String()
		}
	}
	return uuid.NewString()
}

// roll reports whether a single uniform draw lands under chance.
func roll(src Source, chance float64) bool {
	return src.Float64() < chance
}
