//                           _       _
// __      _____  __ ___   ___  __ _| |_ ___
// \ \ /\ / / _ \/ _` \ \ / / |/ _` | __/ _ \
//  \ V  V /  __/ (_| |\ V /| | (_| | ||  __/
//   \_/\_/ \___|\__,_| \_/ |_|\__,_|\__\___|
//
//  Copyright © 2016 - 2026 Weaviate B.V. All rights reserved.
//
//  CONTACT: hello@weaviate.io
//

// Package coreerrors classifies the error kinds of §7: typed wrapper structs
// holding the wrapped error, one per kind, so callers can distinguish them
// with errors.As instead of string matching.
package coreerrors

// ErrInvalidArgument reports a caller-supplied value that violates a
// precondition: division by zero, an unparsable cron expression.
type ErrInvalidArgument struct {
	err error
}

func (e ErrInvalidArgument) Error() string { return e.err.Error() }
func (e ErrInvalidArgument) Unwrap() error { return e.err }

func NewErrInvalidArgument(err error) ErrInvalidArgument {
	return ErrInvalidArgument{err}
}

// ErrInvalidState reports an operation illegal in the receiver's current
// state: normalizing a zero vector, submitting to a retired worker.
type ErrInvalidState struct {
	err error
}

func (e ErrInvalidState) Error() string { return e.err.Error() }
func (e ErrInvalidState) Unwrap() error { return e.err }

func NewErrInvalidState(err error) ErrInvalidState {
	return ErrInvalidState{err}
}

// ErrNotFound reports a queried element that is absent: next() on an empty
// set.
type ErrNotFound struct {
	err error
}

func (e ErrNotFound) Error() string { return e.err.Error() }
func (e ErrNotFound) Unwrap() error { return e.err }

func NewErrNotFound(err error) ErrNotFound {
	return ErrNotFound{err}
}

// ErrCorrupt reports a serialized input that is truncated or malformed.
type ErrCorrupt struct {
	err error
}

func (e ErrCorrupt) Error() string { return e.err.Error() }
func (e ErrCorrupt) Unwrap() error { return e.err }

func NewErrCorrupt(err error) ErrCorrupt {
	return ErrCorrupt{err}
}

// ErrUnsupported reports an operation disallowed by contract: complementing
// a SegmentedBitSet over the unbounded domain.
type ErrUnsupported struct {
	err error
}

func (e ErrUnsupported) Error() string { return e.err.Error() }
func (e ErrUnsupported) Unwrap() error { return e.err }

func NewErrUnsupported(err error) ErrUnsupported {
	return ErrUnsupported{err}
}

// ErrBusy reports that a runTaskIfIdle-style call found the worker already
// running.
type ErrBusy struct {
	err error
}

func (e ErrBusy) Error() string { return e.err.Error() }
func (e ErrBusy) Unwrap() error { return e.err }

func NewErrBusy(err error) ErrBusy {
	return ErrBusy{err}
}

// ErrCancelled reports a task cancelled before or during execution.
type ErrCancelled struct {
	err error
}

func (e ErrCancelled) Error() string { return e.err.Error() }
func (e ErrCancelled) Unwrap() error { return e.err }

func NewErrCancelled(err error) ErrCancelled {
	return ErrCancelled{err}
}

// ErrTaskFailure wraps a panic or error raised by caller-supplied task code.
type ErrTaskFailure struct {
	err error
}

func (e ErrTaskFailure) Error() string { return e.err.Error() }
func (e ErrTaskFailure) Unwrap() error { return e.err }

func NewErrTaskFailure(err error) ErrTaskFailure {
	return ErrTaskFailure{err}
}
