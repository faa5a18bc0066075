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
	"sync/atomic"
	"time"

	entityerrors "github.com/weaviate/weaviate-core/entities/errors"
	syncutil "github.com/weaviate/weaviate-core/entities/sync"
)

// SequentialWorkerPool is a keyed registry of SequentialWorker, one per
// key, created lazily on first Get. Every Get runs a non-blocking flush
// check; at most once per flushInterval it retires and removes every worker
// that is idle (no pending tasks, not running) at that moment, however
// recently it became idle.
type SequentialWorkerPool[K comparable] struct {
	mu       *syncutil.ReadPreferringRWMutex
	workers  map[K]*SequentialWorker
	executor Executor
	clock    Clock
	logger   panicLogger

	flushInterval time.Duration
	lastFlushed   atomic.Int64
}

type poolConfig struct {
	flushInterval time.Duration
	clock         Clock
	logger        panicLogger
}

// PoolOption configures a SequentialWorkerPool.
type PoolOption func(*poolConfig)

// WithFlushInterval overrides the default 5-second idle-reap interval.
func WithFlushInterval(d time.Duration) PoolOption {
	return func(c *poolConfig) { c.flushInterval = d }
}

// WithPoolClock overrides the pool's wall-clock source, for tests.
func WithPoolClock(clock Clock) PoolOption {
	return func(c *poolConfig) { c.clock = clock }
}

// WithPoolLogger attaches a lifecycle logger, typically a
// logrus.FieldLogger.
func WithPoolLogger(logger panicLogger) PoolOption {
	return func(c *poolConfig) { c.logger = logger }
}

// NewSequentialWorkerPool returns an empty pool. Keys are compared with
// Go's native map equality, matching the source's "arbitrary key" wording.
func NewSequentialWorkerPool[K comparable](executor Executor, opts ...PoolOption) *SequentialWorkerPool[K] {
	cfg := poolConfig{flushInterval: 5 * time.Second, clock: SystemClock{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &SequentialWorkerPool[K]{
		mu:            syncutil.NewReadPreferringRWMutex(),
		workers:       make(map[K]*SequentialWorker),
		executor:      executor,
		clock:         cfg.clock,
		logger:        cfg.logger,
		flushInterval: cfg.flushInterval,
	}
}

// Get returns the worker for key, lazily creating one if absent.
func (p *SequentialWorkerPool[K]) Get(key K) *SequentialWorker {
	p.maybeFlush()

	p.mu.RLock()
	w, ok := p.workers[key]
	p.mu.RUnlock()
	if ok {
		return w
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if w, ok := p.workers[key]; ok {
		return w
	}
	w = NewSequentialWorker(p.executor)
	p.workers[key] = w
	if p.logger != nil {
		p.logger.Debugf("worker pool: created worker for key %v", key)
	}
	return w
}

// Len reports the number of workers currently tracked by the pool.
func (p *SequentialWorkerPool[K]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.workers)
}

func (p *SequentialWorkerPool[K]) maybeFlush() {
	now := p.clock.Now().UnixNano()
	last := p.lastFlushed.Load()
	if now-last < int64(p.flushInterval) {
		return
	}
	if !p.lastFlushed.CompareAndSwap(last, now) {
		return
	}
	p.flush()
}

// flush removes and retires every worker with zero pending tasks that is
// not currently running. A non-idle worker is never removed.
func (p *SequentialWorkerPool[K]) flush() {
	p.mu.Lock()
	var reaped []*SequentialWorker
	for key, w := range p.workers {
		if w.PendingTasksCount() == 0 && !w.Running() {
			reaped = append(reaped, w)
			delete(p.workers, key)
		}
	}
	p.mu.Unlock()

	if len(reaped) == 0 {
		return
	}

	// Retire can run arbitrary Trigger/Executor callbacks during shutdown, so
	// the reap fan-out uses the panic-recovering wrapper rather than a bare
	// errgroup.Group: one misbehaving worker must not crash the flush.
	g := entityerrors.NewErrorGroupWrapper()
	for _, w := range reaped {
		g.Go(func() error {
			w.Retire()
			return nil
		})
	}
	_ = g.Wait()

	if p.logger != nil {
		p.logger.Debugf("worker pool: reaped %d idle worker(s)", len(reaped))
	}
}
