package sim

import (
	"math/rand"
	"time"
)

// Source is the random number source used for behavior selection and crystal placement.
// *rand.Rand satisfies it; tests substitute a scripted source.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSource returns a time-seeded source
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
