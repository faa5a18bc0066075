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
	"sync"
	"time"
)

// RateLimiterWorker admits weighted tasks such that the sum of weights
// dispatched within a trigger period never exceeds limit. It reuses
// coreWorker's FIFO/mutual-exclusion machinery, grafting a weight-aware
// admission check and a trigger-driven reset loop onto it.
type RateLimiterWorker struct {
	core *coreWorker

	executor Executor
	clock    Clock
	trigger  Trigger
	logger   panicLogger

	mu            sync.Mutex
	limit         int
	currentWeight int
	hasPrevious   bool
	lastScheduled time.Time
	lastCompleted time.Time
	resetTimer    Timer
}

// NewRateLimiterWorker constructs a RateLimiterWorker and immediately arms
// its first reset using a trigger context seeded with "no previous
// execution", per §4.5.
func NewRateLimiterWorker(executor Executor, clock Clock, trigger Trigger, limit int, opts ...RateLimiterOption) *RateLimiterWorker {
	cfg := rateLimiterConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &RateLimiterWorker{
		executor: executor,
		clock:    clock,
		trigger:  trigger,
		limit:    limit,
		logger:   cfg.logger,
	}
	w.core = newCoreWorker(executor)
	w.core.admit = w.admit
	w.core.onDispatch = w.consumeWeight
	w.armReset()
	return w
}

type rateLimiterConfig struct {
	logger panicLogger
}

// RateLimiterOption configures optional RateLimiterWorker collaborators.
type RateLimiterOption func(*rateLimiterConfig)

// WithRateLimiterLogger attaches a panic/lifecycle logger, typically a
// logrus.FieldLogger.
func WithRateLimiterLogger(logger panicLogger) RateLimiterOption {
	return func(c *rateLimiterConfig) { c.logger = logger }
}

func (w *RateLimiterWorker) admit(weight int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.currentWeight+weight <= w.limit
}

// consumeWeight is called at dispatch, not at completion: weight
// accounting for async tasks is deliberately consumed up front (§4.5).
func (w *RateLimiterWorker) consumeWeight(weight int) {
	w.mu.Lock()
	w.currentWeight += weight
	w.mu.Unlock()
}

func (w *RateLimiterWorker) armReset() {
	w.mu.Lock()
	ctx := TriggerContext{
		Now:           w.clock.Now(),
		HasPrevious:   w.hasPrevious,
		LastScheduled: w.lastScheduled,
		LastCompleted: w.lastCompleted,
	}
	w.mu.Unlock()

	next, ok := w.trigger.NextExecution(ctx)
	if !ok {
		return
	}
	delay := next.Sub(ctx.Now)
	if delay < 0 {
		delay = 0
	}

	w.mu.Lock()
	w.lastScheduled = next
	w.hasPrevious = true
	w.mu.Unlock()

	w.resetTimer = w.executor.Schedule(delay, w.onReset)
}

func (w *RateLimiterWorker) onReset() {
	w.mu.Lock()
	w.currentWeight = 0
	w.lastCompleted = w.clock.Now()
	w.mu.Unlock()

	if w.logger != nil {
		w.logger.Debugf("rate limiter reset fired, current weight cleared")
	}

	w.armReset()
	w.core.tryDispatch()
}

// Enable resumes dispatch and attempts to schedule the queue head.
func (w *RateLimiterWorker) Enable() { w.core.setEnabled(true) }

// Disable pauses dispatch between tasks.
func (w *RateLimiterWorker) Disable() { w.core.setEnabled(false) }

// Retire stops the reset loop and moves the worker to its terminal state.
func (w *RateLimiterWorker) Retire() {
	w.mu.Lock()
	if w.resetTimer != nil {
		w.resetTimer.Stop()
	}
	w.mu.Unlock()
	w.core.retire()
}

// Retired reports whether Retire has been called.
func (w *RateLimiterWorker) Retired() bool { return w.core.isRetired() }

// Running reports whether a task is currently executing.
func (w *RateLimiterWorker) Running() bool { return w.core.isProcessing() }

// PendingTasksCount reports the number of tasks queued but not yet
// dispatched.
func (w *RateLimiterWorker) PendingTasksCount() int { return w.core.pendingCount() }

// SubmitWeightedTask enqueues a synchronous action with the given weight;
// it is dispatched only once current_weight+weight <= limit.
func SubmitWeightedTask[T any](w *RateLimiterWorker, weight int, action func() (T, error)) *Promise[T] {
	return submitCoreGeneric(w.core, weight, action, false)
}

// SubmitWeightedAsyncTask enqueues an action returning an in-flight
// Promise, admitted under the same weight rule as SubmitWeightedTask.
func SubmitWeightedAsyncTask[T any](w *RateLimiterWorker, weight int, action func() (*Promise[T], error)) *Promise[T] {
	return submitAsyncCoreGeneric(w.core, weight, action, false)
}
