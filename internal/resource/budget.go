package resource

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrMemoryLimitExceeded is returned when a reservation would exceed the limit.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Budget tracks reserved memory against an optional hard limit.
type Budget struct {
	limit int64
	sem   *semaphore.Weighted // nil if unlimited
	used  atomic.Int64
}

// NewBudget creates a budget. A limit of 0 or less means unlimited.
func NewBudget(limitBytes int64) *Budget {
	b := &Budget{}
	if limitBytes > 0 {
		b.limit = limitBytes
		b.sem = semaphore.NewWeighted(limitBytes)
	}
	return b
}

// Reserve attempts to reserve bytes.
// Returns ErrMemoryLimitExceeded if the limit would be exceeded.
// Non-blocking - the caller decides what exhaustion means.
func (b *Budget) Reserve(bytes int64) error {
	if b == nil || bytes <= 0 {
		return nil
	}

	if b.sem != nil && !b.sem.TryAcquire(bytes) {
		return ErrMemoryLimitExceeded
	}

	b.used.Add(bytes)
	return nil
}

// Release returns previously reserved bytes.
func (b *Budget) Release(bytes int64) {
	if b == nil || bytes <= 0 {
		return
	}

	if b.sem != nil {
		b.sem.Release(bytes)
	}
	b.used.Add(-bytes)
}

// Used returns the currently reserved bytes.
func (b *Budget) Used() int64 {
	if b == nil {
		return 0
	}
	return b.used.Load()
}

// Limit returns the configured limit in bytes (0 if unlimited).
func (b *Budget) Limit() int64 {
	if b == nil {
		return 0
	}
	return b.limit
}
