package mockfile

import (
	"errors"
	"testing"

	"github.com/michelangelo13/rethinkdb/sched"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireViolation runs fn and asserts that it aborts with a contract
// violation raised by op.
func requireViolation(t *testing.T, op string, fn func()) *ViolationError {
	t.Helper()

	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()

	require.NotNil(t, got, "%s should have aborted", op)
	err, ok := got.(error)
	require.True(t, ok, "panic value %v is not an error", got)
	assert.True(t, errors.Is(err, ErrContractViolation))

	var ve *ViolationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, op, ve.Op)
	return ve
}

func newTestFile(t *testing.T, mode Mode, opts ...Option) (*MockFile, *sched.Loop) {
	t.Helper()
	loop := sched.NewLoop()
	opts = append([]Option{WithScheduler(loop)}, opts...)
	return NewMockFile(mode, NewBuffer(), opts...), loop
}

func noop() Callback { return CallbackFunc(func() {}) }

func testLoop(t *testing.T) *sched.Loop {
	t.Helper()
	loop := sched.NewLoop()
	t.Cleanup(func() {
		assert.Equal(t, 0, loop.Pending(), "test left completions undelivered")
	})
	return loop
}
