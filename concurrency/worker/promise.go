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

package worker

import (
	"context"
	"sync"

	"github.com/weaviate/weaviate-core/entities/coreerrors"
)

// Promise is the future/promise handle returned to a task submitter: the
// concrete Go stand-in for the source's Promise<T>/Future<T>. Settlement
// (success, failure, or cancellation) happens exactly once.
type Promise[T any] struct {
	mu          sync.Mutex
	settled     bool
	cancelled   bool
	value       T
	err         error
	done        chan struct{}
	onCancel    func()
	afterSettle []func()
}

func newPromise[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// FailedPromise returns an already-settled Promise carrying err, used for
// submissions rejected before they ever reach a worker's queue (a retired
// worker, for instance).
func FailedPromise[T any](err error) *Promise[T] {
	p := newPromise[T]()
	var zero T
	p.settle(zero, err)
	return p
}

func (p *Promise[T]) settle(v T, err error) bool {
	p.mu.Lock()
	if p.settled {
		p.mu.Unlock()
		return false
	}
	p.settled = true
	p.value = v
	p.err = err
	callbacks := p.afterSettle
	p.afterSettle = nil
	p.mu.Unlock()

	close(p.done)
	for _, cb := range callbacks {
		cb()
	}
	return true
}

func (p *Promise[T]) result() (T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.err
}

// setOnCancel registers the callback invoked when Cancel succeeds. Only one
// callback is kept at a time: a task's cancellation hook starts out
// dequeuing it, then is replaced with inner-promise propagation once the
// task has been dispatched (see submitAsyncCoreGeneric).
func (p *Promise[T]) setOnCancel(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.settled {
		return
	}
	p.onCancel = fn
}

// onSettle registers fn to run once the promise settles (immediately, if
// it already has). Used internally to chain an inner async promise's
// completion into the outer one's.
func (p *Promise[T]) onSettle(fn func()) {
	p.mu.Lock()
	if p.settled {
		p.mu.Unlock()
		fn()
		return
	}
	p.afterSettle = append(p.afterSettle, fn)
	p.mu.Unlock()
}

// Cancel settles the promise as Cancelled if it has not already settled.
// Returns whether this call performed the cancellation.
func (p *Promise[T]) Cancel() bool {
	p.mu.Lock()
	if p.settled {
		p.mu.Unlock()
		return false
	}
	p.settled = true
	p.cancelled = true
	p.err = coreerrors.NewErrCancelled(errTaskCancelled)
	cb := p.onCancel
	callbacks := p.afterSettle
	p.afterSettle = nil
	p.mu.Unlock()

	close(p.done)
	for _, fn := range callbacks {
		fn()
	}
	if cb != nil {
		cb()
	}
	return true
}

// Cancelled reports whether the promise settled via Cancel.
func (p *Promise[T]) Cancelled() bool {
	select {
	case <-p.done:
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.cancelled
	default:
		return false
	}
}

// Wait blocks until the promise settles or ctx is done, whichever comes
// first.
func (p *Promise[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.result()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

const errTaskCancelled simpleErr = "worker: task cancelled"

type simpleErr string

func (e simpleErr) Error() string { return string(e) }
