package model

import (
	"fmt"
	"math"
	"time"

	"github.com/btcsuite/btcd/txscript"
)

// LockTimeThreshold splits lock-time values into block heights (below) and UNIX times (at or above).
const LockTimeThreshold = uint32(txscript.LockTimeThreshold)

// LockTime is either a block height or a UNIX timestamp, disambiguated by LockTimeThreshold.
type LockTime uint32

// LockTimeFromHeight returns a height lock-time.
func LockTimeFromHeight(height uint32) (LockTime, error) {
	if height >= LockTimeThreshold {
		return 0, fmt.Errorf("%w: lock-time height %d is not below %d", ErrValidation, height, LockTimeThreshold)
	}
	return LockTime(height), nil
}

// LockTimeFromTime returns a timestamp lock-time.
func LockTimeFromTime(t time.Time) (LockTime, error) {
	unix := t.Unix()
	if unix < int64(LockTimeThreshold) || unix > math.MaxUint32 {
		return 0, fmt.Errorf("%w: lock-time timestamp %d outside [%d, %d]", ErrValidation, unix, LockTimeThreshold, uint32(math.MaxUint32))
	}
	return LockTime(unix), nil
}

// IsHeight reports whether the value is interpreted as a block height.
func (l LockTime) IsHeight() bool {
	return uint32(l) < LockTimeThreshold
}

// Height returns the height value when the lock-time is a height.
func (l LockTime) Height() (uint32, bool) {
	if !l.IsHeight() {
		return 0, false
	}
	return uint32(l), true
}

// Time returns the timestamp when the lock-time is a UNIX time.
func (l LockTime) Time() (time.Time, bool) {
	if l.IsHeight() {
		return time.Time{}, false
	}
	return time.Unix(int64(l), 0).UTC(), true
}

// IsFinal reports whether a transaction with this lock-time may be included at
// the given height and time. Comparison is strictly greater-than.
func (l LockTime) IsFinal(height uint32, now time.Time) bool {
	if l == 0 {
		return true
	}
	if l.IsHeight() {
		return height > uint32(l)
	}
	return now.Unix() > int64(l)
}

func (l LockTime) String() string {
	if t, ok := l.Time(); ok {
		return t.Format(time.RFC3339)
	}
	return fmt.Sprintf("height %d", uint32(l))
}
