// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a value does not fit the target type.
var ErrOutOfRange = errors.New("value out of range")

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint16 converts an integer to uint16 with range validation.
func Uint16[T Integer](v T) (uint16, error) {
	if !fits(v, math.MaxUint16) {
		return 0, fmt.Errorf("%w: %d does not fit uint16", ErrOutOfRange, v)
	}
	return uint16(v), nil
}

// Uint32 converts an integer to uint32 with range validation.
func Uint32[T Integer](v T) (uint32, error) {
	if !fits(v, math.MaxUint32) {
		return 0, fmt.Errorf("%w: %d does not fit uint32", ErrOutOfRange, v)
	}
	return uint32(v), nil
}

// Uint64 converts an integer to uint64 while guarding against negatives.
func Uint64[T Integer](v T) (uint64, error) {
	if !fits(v, math.MaxUint64) {
		return 0, fmt.Errorf("%w: %d does not fit uint64", ErrOutOfRange, v)
	}
	return uint64(v), nil
}

// Int64 converts an integer to int64, rejecting unsigned values above MaxInt64.
func Int64[T Integer](v T) (int64, error) {
	if v >= 0 && uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d does not fit int64", ErrOutOfRange, v)
	}
	return int64(v), nil
}

func fits[T Integer](v T, limit uint64) bool {
	if v < 0 {
		return false
	}
	return uint64(v) <= limit
}
