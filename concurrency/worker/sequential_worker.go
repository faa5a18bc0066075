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

// SequentialWorker serializes execution of caller-submitted tasks on an
// externally supplied Executor: at most one task in flight per worker, in
// submission order, with cancellation and retirement. This is the
// enable/disable-bearing variant (see DESIGN.md Open Question log).
type SequentialWorker struct {
	core *coreWorker
}

// NewSequentialWorker returns a worker in the Idle state, enabled, ready
// to accept submissions.
func NewSequentialWorker(executor Executor) *SequentialWorker {
	return &SequentialWorker{core: newCoreWorker(executor)}
}

// Enable resumes dispatch and attempts to schedule the queue head.
func (w *SequentialWorker) Enable() { w.core.setEnabled(true) }

// Disable pauses dispatch between tasks: a currently running task runs to
// completion, but no successor is started until Enable is called again.
func (w *SequentialWorker) Disable() { w.core.setEnabled(false) }

// Retire moves the worker to its terminal state: the queue is drained and
// every pending promise is cancelled; a task already running is allowed to
// finish but no successor will be dispatched.
func (w *SequentialWorker) Retire() { w.core.retire() }

// Retired reports whether Retire has been called.
func (w *SequentialWorker) Retired() bool { return w.core.isRetired() }

// Running reports whether a task is currently executing.
func (w *SequentialWorker) Running() bool { return w.core.isProcessing() }

// PendingTasksCount reports the number of tasks queued but not yet
// dispatched.
func (w *SequentialWorker) PendingTasksCount() int { return w.core.pendingCount() }

// SubmitTask enqueues a synchronous action and returns a Promise observing
// its eventual result.
func SubmitTask[T any](w *SequentialWorker, action func() (T, error)) *Promise[T] {
	return submitCoreGeneric(w.core, 0, action, false)
}

// SubmitAsyncTask enqueues an action that itself returns a Promise already
// in flight; the worker considers the task complete only once that inner
// promise settles.
func SubmitAsyncTask[T any](w *SequentialWorker, action func() (*Promise[T], error)) *Promise[T] {
	return submitAsyncCoreGeneric(w.core, 0, action, false)
}

// RunTaskIfIdle behaves like SubmitTask, except it fails synchronously
// with Busy instead of queueing when the worker is currently running.
func RunTaskIfIdle[T any](w *SequentialWorker, action func() (T, error)) *Promise[T] {
	return submitCoreGeneric(w.core, 0, action, true)
}

// RunAsyncTaskIfIdle behaves like SubmitAsyncTask, except it fails
// synchronously with Busy instead of queueing when the worker is currently
// running.
func RunAsyncTaskIfIdle[T any](w *SequentialWorker, action func() (*Promise[T], error)) *Promise[T] {
	return submitAsyncCoreGeneric(w.core, 0, action, true)
}
