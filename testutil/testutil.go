package testutil

import (
	"math/rand"
	"sync"

	"github.com/michelangelo13/rethinkdb/internal/mem"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillBytes fills dst with random bytes.
// Locks only once per call.
func (r *RNG) FillBytes(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.rand.Read(dst) // never fails
}

// AlignedBlock returns size random bytes starting on an align boundary.
func (r *RNG) AlignedBlock(size, align int) []byte {
	block := mem.AllocAligned(size, align)
	r.FillBytes(block)
	return block
}

// Fill returns a buffer of n copies of b.
func Fill(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

// Split cuts data into parts pieces of roughly equal size, in order.
// The pieces alias data. The last piece takes the remainder.
func Split(data []byte, parts int) [][]byte {
	if parts <= 1 || len(data) == 0 {
		return [][]byte{data}
	}
	if parts > len(data) {
		parts = len(data)
	}

	step := len(data) / parts
	out := make([][]byte, 0, parts)
	for i := 0; i < parts-1; i++ {
		out = append(out, data[i*step:(i+1)*step])
	}
	return append(out, data[(parts-1)*step:])
}
