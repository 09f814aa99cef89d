// Package sched delivers deferred work on later turns of a cooperative loop.
//
// File operations complete asynchronously: the data copy happens while the
// submitting call runs, but the completion callback is handed to a
// [Scheduler] and observed only after control returns to it. [Loop] is the
// in-process implementation used by tests:
//
//	loop := sched.NewLoop()
//	loop.Post(func() { done = true })
//	// done is still false here
//	loop.RunPending()
//	// done is now true
//
// A turn runs exactly the tasks that were queued when it started. Work
// posted from inside a task lands in the next turn, so a callback can never
// re-enter the code that submitted it.
package sched
