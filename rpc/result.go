// Package rpc provides the request/response correlation helpers and the
// result-mapping layer built on the identifier, addressing and
// attribute modules. It owns no transport: callers perform the actual
// exchange and hand the completed outcome back for mapping.
package rpc

import (
	"fmt"

	"github.com/c360/meshproto/errors"
)

// Result is a two-variant success-or-failure value. The combinators
// never panic across their boundary: a panic inside a user-supplied
// callback is recovered and converted into the failure variant, so
// callers can pattern-match success/failure without defensive recover
// blocks of their own.
//
// The zero value is a failure carrying a nil error; construct results
// through Ok and Fail.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok wraps a value in the success variant.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail wraps an error in the failure variant.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Failf builds a failure from a formatted diagnostic.
func Failf[T any](format string, args ...any) Result[T] {
	return Result[T]{err: fmt.Errorf(format, args...)}
}

// IsOk reports whether the result is the success variant.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsFailure reports whether the result is the failure variant.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Get returns the success value or the failure error, in the usual Go
// (value, error) shape.
func (r Result[T]) Get() (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	if r.err != nil {
		return zero, r.err
	}
	return zero, errors.ErrNotAvailable
}

// OrElse returns the success value, or the fallback when the result is
// a failure.
func (r Result[T]) OrElse(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// Err returns the failure error, or nil for a success.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	if r.err != nil {
		return r.err
	}
	return errors.ErrNotAvailable
}

// Map applies f to the success value. A failure passes through
// unchanged and f is never invoked. A panic inside f becomes a failure.
func (r Result[T]) Map(f func(T) T) Result[T] {
	return Map(r, f)
}

// FlatMap applies f, which may itself fail, to the success value.
// A failure passes through unchanged; a panic inside f becomes a
// failure.
func (r Result[T]) FlatMap(f func(T) Result[T]) Result[T] {
	return FlatMap(r, f)
}

// Filter keeps a success only when pred accepts the value; a rejected
// value becomes a failure carrying the given error. Failures pass
// through unchanged, keeping their original error.
func (r Result[T]) Filter(pred func(T) bool, reject error) (out Result[T]) {
	if !r.ok {
		return r
	}
	defer recoverInto(&out)
	if pred(r.value) {
		return r
	}
	return Fail[T](reject)
}

// Map applies f to the success value, possibly changing its type.
// Failures pass through; panics inside f become failures.
func Map[T, U any](r Result[T], f func(T) U) (out Result[U]) {
	if !r.ok {
		return Fail[U](r.Err())
	}
	defer recoverInto(&out)
	return Ok(f(r.value))
}

// FlatMap applies f, which may itself fail, to the success value,
// possibly changing its type. Failures pass through; panics inside f
// become failures.
func FlatMap[T, U any](r Result[T], f func(T) Result[U]) (out Result[U]) {
	if !r.ok {
		return Fail[U](r.Err())
	}
	defer recoverInto(&out)
	return f(r.value)
}

// recoverInto converts a panic in a user callback into the failure
// variant, preserving an error payload when the panic carried one.
func recoverInto[T any](out *Result[T]) {
	if rec := recover(); rec != nil {
		if err, isErr := rec.(error); isErr {
			*out = Fail[T](fmt.Errorf("callback panicked: %w", err))
			return
		}
		*out = Failf[T]("callback panicked: %v", rec)
	}
}
