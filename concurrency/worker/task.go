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
	"fmt"
	"sync"

	"github.com/weaviate/weaviate-core/entities/coreerrors"
)

const (
	errWorkerRetired simpleErr = "worker: submission to a retired worker"
	errWorkerBusy    simpleErr = "worker: runIfIdle called while running"
)

// coreTask is the type-erased unit of work enqueued on a coreWorker. The
// generic Promise[T] lives in the closures captured by dispatch and
// cancelOuter; coreWorker itself never touches T.
type coreTask struct {
	weight int

	// dispatch runs the task's action. For a sync task it settles the
	// outer promise before returning and reports done=true. For an async
	// task it arranges for onAsyncDone to be called once the inner
	// promise settles, and reports done=false.
	dispatch func(onAsyncDone func()) (done bool)

	// cancelOuter cancels the task's outer promise; used to drain the
	// queue on retire.
	cancelOuter func() bool
}

// coreWorker implements the shared SequentialWorker/RateLimiterWorker
// state machine: a FIFO queue, a mutual-exclusion "processing" flag, and
// enabled/retired gating. admit and onDispatch let RateLimiterWorker graft
// weighted admission onto the same dispatch loop without duplicating it.
type coreWorker struct {
	executor Executor

	mu         sync.Mutex
	queue      []*coreTask
	processing bool
	enabled    bool
	retired    bool

	admit      func(weight int) bool
	onDispatch func(weight int)
}

func newCoreWorker(executor Executor) *coreWorker {
	return &coreWorker{executor: executor, enabled: true}
}

func (c *coreWorker) submit(t *coreTask) error {
	c.mu.Lock()
	if c.retired {
		c.mu.Unlock()
		return coreerrors.NewErrInvalidState(errWorkerRetired)
	}
	c.queue = append(c.queue, t)
	c.mu.Unlock()

	c.tryDispatch()
	return nil
}

func (c *coreWorker) submitIfIdle(t *coreTask) error {
	c.mu.Lock()
	if c.retired {
		c.mu.Unlock()
		return coreerrors.NewErrInvalidState(errWorkerRetired)
	}
	if c.processing {
		c.mu.Unlock()
		return coreerrors.NewErrBusy(errWorkerBusy)
	}
	c.queue = append(c.queue, t)
	c.mu.Unlock()

	c.tryDispatch()
	return nil
}

func (c *coreWorker) cancelPending(t *coreTask) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, q := range c.queue {
		if q == t {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return
		}
	}
}

// tryDispatch is the sole entry point into the scheduling decision: it
// never runs a task body inline, only decides whether to pop the head and
// hand it to the executor. Re-entrancy (submission, task completion, and
// Enable all call this) is resolved by always handing off through the
// executor rather than continuing synchronously on the caller's stack,
// which trivially bounds recursion depth to one frame regardless of call
// origin.
func (c *coreWorker) tryDispatch() {
	c.mu.Lock()
	if c.processing || c.retired || !c.enabled || len(c.queue) == 0 {
		c.mu.Unlock()
		return
	}
	head := c.queue[0]
	if c.admit != nil && !c.admit(head.weight) {
		c.mu.Unlock()
		return
	}
	c.queue = c.queue[1:]
	c.processing = true
	if c.onDispatch != nil {
		c.onDispatch(head.weight)
	}
	c.mu.Unlock()

	c.executor.Submit(func() {
		if head.dispatch(c.taskFinished) {
			c.taskFinished()
		}
	})
}

func (c *coreWorker) taskFinished() {
	c.mu.Lock()
	c.processing = false
	c.mu.Unlock()
	c.tryDispatch()
}

func (c *coreWorker) setEnabled(enabled bool) {
	c.mu.Lock()
	if c.retired {
		c.mu.Unlock()
		return
	}
	c.enabled = enabled
	c.mu.Unlock()

	if enabled {
		c.tryDispatch()
	}
}

// retire sets the terminal state, then drains and cancels every task still
// in the queue. A currently running task is left to finish; its
// completion will observe retirement and will not dispatch a successor.
func (c *coreWorker) retire() {
	c.mu.Lock()
	if c.retired {
		c.mu.Unlock()
		return
	}
	c.retired = true
	c.enabled = false
	drained := c.queue
	c.queue = nil
	c.mu.Unlock()

	for _, t := range drained {
		t.cancelOuter()
	}
}

func (c *coreWorker) isRetired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.retired
}

func (c *coreWorker) isProcessing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.processing
}

func (c *coreWorker) pendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

func runSyncAction[T any](action func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = coreerrors.NewErrTaskFailure(fmt.Errorf("panic in worker task: %v", r))
		}
	}()
	return action()
}

func runAsyncAction[T any](action func() (*Promise[T], error)) (p *Promise[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = coreerrors.NewErrTaskFailure(fmt.Errorf("panic in worker task: %v", r))
		}
	}()
	return action()
}

// submitCoreGeneric wires a synchronous action into a coreTask and submits
// it, either unconditionally (ifIdle=false) or only when the worker is not
// currently processing another task (ifIdle=true).
func submitCoreGeneric[T any](c *coreWorker, weight int, action func() (T, error), ifIdle bool) *Promise[T] {
	p := newPromise[T]()
	t := &coreTask{weight: weight, cancelOuter: p.Cancel}
	t.dispatch = func(onAsyncDone func()) bool {
		v, err := runSyncAction(action)
		p.settle(v, err)
		return true
	}
	p.setOnCancel(func() { c.cancelPending(t) })

	var err error
	if ifIdle {
		err = c.submitIfIdle(t)
	} else {
		err = c.submit(t)
	}
	if err != nil {
		var zero T
		p.settle(zero, err)
	}
	return p
}

// submitAsyncCoreGeneric wires an action that itself returns a Promise[T]
// (one already in flight elsewhere) into a coreTask. The worker considers
// the task complete only once that inner promise settles.
func submitAsyncCoreGeneric[T any](c *coreWorker, weight int, action func() (*Promise[T], error), ifIdle bool) *Promise[T] {
	outer := newPromise[T]()
	t := &coreTask{weight: weight, cancelOuter: outer.Cancel}
	t.dispatch = func(onAsyncDone func()) bool {
		inner, err := runAsyncAction(action)
		if err != nil {
			outer.settle(*new(T), err)
			return true
		}
		outer.setOnCancel(func() { inner.Cancel() })
		inner.onSettle(func() {
			v, err := inner.result()
			outer.settle(v, err)
			onAsyncDone()
		})
		return false
	}
	outer.setOnCancel(func() { c.cancelPending(t) })

	var err error
	if ifIdle {
		err = c.submitIfIdle(t)
	} else {
		err = c.submit(t)
	}
	if err != nil {
		var zero T
		outer.settle(zero, err)
	}
	return outer
}
