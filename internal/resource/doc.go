// Package resource implements a memory budget for in-memory file contents.
//
// A Budget tracks how many bytes the buffers of one file opener hold. With a
// limit, reservations are backed by a weighted semaphore and fail fast:
//
//	b := resource.NewBudget(64 << 20) // 64MB
//
//	if err := b.Reserve(grow); err != nil {
//	    // ErrMemoryLimitExceeded - nothing was reserved
//	}
//	defer b.Release(grow)
//
// Without a limit (0) the budget only tracks usage. A nil *Budget is valid and
// tracks nothing.
package resource
