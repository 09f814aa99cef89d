package sched

import (
	"context"

	"github.com/golang-collections/collections/queue"
	"github.com/sasha-s/go-deadlock"
)

// Scheduler accepts work to run at some later point.
//
// Implementations must never run fn before Post returns.
type Scheduler interface {
	Post(fn func())
}

// Loop is a cooperative FIFO scheduler. Tasks run on whichever goroutine
// drives the loop through RunPending, RunUntilIdle or Run.
type Loop struct {
	mu     deadlock.Mutex
	tasks  *queue.Queue
	turns  uint64
	notify chan struct{}
}

var _ Scheduler = (*Loop)(nil)

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{
		tasks:  queue.New(),
		notify: make(chan struct{}, 1),
	}
}

// Post queues fn for a later turn.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		panic("sched: nil task")
	}

	l.mu.Lock()
	l.tasks.Enqueue(fn)
	l.mu.Unlock()

	select {
	case l.notify <- struct{}{}:
	default:
	}
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tasks.Len()
}

// Turns returns how many turns have started.
func (l *Loop) Turns() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.turns
}

// RunPending runs one turn and returns the number of tasks it ran.
//
// If a task panics the turn stops there; tasks behind it stay queued.
func (l *Loop) RunPending() int {
	l.mu.Lock()
	n := l.tasks.Len()
	l.turns++
	l.mu.Unlock()

	for i := 0; i < n; i++ {
		l.mu.Lock()
		fn := l.tasks.Dequeue().(func())
		l.mu.Unlock()
		fn()
	}
	return n
}

// RunUntilIdle runs turns until the queue is empty and returns the total
// number of tasks run.
func (l *Loop) RunUntilIdle() int {
	total := 0
	for {
		n := l.RunPending()
		if n == 0 {
			return total
		}
		total += n
	}
}

// Run drives the loop as work arrives until ctx is done.
// It always returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.RunUntilIdle()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.notify:
		}
	}
}
