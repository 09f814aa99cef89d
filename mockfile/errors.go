package mockfile

import (
	"errors"
	"fmt"
)

// ErrContractViolation is the sentinel wrapped by every fatal violation.
//
// Violations are never returned. They are raised with panic so a broken
// caller stops at the faulty call; recover the value and test it with
// errors.Is when a test expects the abort.
var ErrContractViolation = errors.New("file contract violation")

// ViolationError describes a fatal misuse of a file or opener.
type ViolationError struct {
	// Op is the operation that was misused, e.g. "ReadAsync".
	Op string
	// Reason is a human readable description of the broken rule.
	Reason string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrContractViolation, e.Op, e.Reason)
}

func (e *ViolationError) Unwrap() error { return ErrContractViolation }
