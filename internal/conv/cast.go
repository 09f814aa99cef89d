package conv

import (
	"fmt"
	"math"
)

// Int64ToInt converts a non-negative int64 to int safely.
// It fails for negative values and, on 32-bit platforms, for values past math.MaxInt.
func Int64ToInt(v int64) (int, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (negative)", v)
	}
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// AddInt64 returns a+b for non-negative operands, failing instead of wrapping.
func AddInt64(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d + %d has a negative operand", a, b)
	}
	if a > math.MaxInt64-b {
		return 0, fmt.Errorf("integer overflow: %d + %d exceeds int64", a, b)
	}
	return a + b, nil
}
