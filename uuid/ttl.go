package uuid

import (
	"fmt"

	"github.com/c360/meshproto/errors"
	"github.com/c360/meshproto/pkg/timestamp"
)

// Elapsed returns now minus the identifier's creation instant, in
// milliseconds. The result is signed: a negative value means the
// identifier was stamped after "now", which happens under clock skew
// and must not fail. ok is false when the identifier carries no
// extractable timestamp.
func Elapsed(id UUID, nowMs int64) (elapsed int64, ok bool) {
	created, ok := id.Time()
	if !ok {
		return 0, false
	}
	return timestamp.Elapsed(created, nowMs), true
}

// RemainingTTL returns the milliseconds of life the identifier has left
// given a time-to-live budget, clamped at zero.
//
// This is the fail-fast contract: a non-positive ttl or an identifier
// that is not a protocol identifier is an invalid-argument error, not a
// safe default. Callers that want a verdict instead of an error use
// IsExpired.
func RemainingTTL(id UUID, ttlMs int64, nowMs int64) (uint64, error) {
	if ttlMs <= 0 {
		return 0, errors.WrapInvalid(errors.ErrInvalidTTL, "UUID", "RemainingTTL",
			fmt.Sprintf("ttl [%d]", ttlMs))
	}
	if !id.IsProtocol() {
		return 0, errors.WrapInvalid(errors.ErrUnsupportedVersion, "UUID", "RemainingTTL",
			fmt.Sprintf("identifier [%s]", id))
	}

	elapsed, _ := Elapsed(id, nowMs)
	return timestamp.Remaining(ttlMs, elapsed), nil
}

// IsExpired reports whether the identifier's time-to-live budget is
// spent at the given instant. The boundary is inclusive: an identifier
// created at T with ttl 100 is expired at exactly T+100.
//
// A non-positive ttl means "never expires". An identifier whose
// timestamp cannot be extracted is treated as not expired - the safe
// default for delivery paths that cannot determine expiration.
func IsExpired(id UUID, ttlMs int64, nowMs int64) bool {
	if ttlMs <= 0 {
		return false
	}

	elapsed, ok := Elapsed(id, nowMs)
	if !ok {
		return false
	}
	return timestamp.Remaining(ttlMs, elapsed) == 0
}
