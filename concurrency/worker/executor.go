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

import "time"

// Timer is the handle returned by Executor.Schedule, satisfied by
// *time.Timer.
type Timer interface {
	Stop() bool
}

// Executor is the collaborator a worker borrows threads from. The
// sequential worker only ever calls Submit; the rate limiter additionally
// calls Schedule to arm its reset loop.
type Executor interface {
	Submit(task func())
	Schedule(delay time.Duration, task func()) Timer
}

// StdExecutor runs each submission on its own goroutine, panic-recovered
// the way entities/errors.GoWrapper recovers worker goroutines elsewhere
// in this codebase. The corpus has no bounded pool of its own to borrow
// from, so this mirrors the plain-goroutine idiom used throughout.
type StdExecutor struct {
	Logger panicLogger
}

// panicLogger is the minimal surface this package needs for panic and
// lifecycle logging; logrus.FieldLogger satisfies it, and a nil logger
// silently drops the message instead of panicking.
type panicLogger interface {
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// NewStdExecutor returns an Executor that logs recovered panics through
// logger. A nil logger is fine — panics are swallowed silently.
func NewStdExecutor(logger panicLogger) *StdExecutor {
	return &StdExecutor{Logger: logger}
}

func (e *StdExecutor) Submit(task func()) {
	go e.runRecovered(task)
}

func (e *StdExecutor) Schedule(delay time.Duration, task func()) Timer {
	return time.AfterFunc(delay, func() { e.runRecovered(task) })
}

func (e *StdExecutor) runRecovered(task func()) {
	defer func() {
		if r := recover(); r != nil && e.Logger != nil {
			e.Logger.Errorf("worker: recovered from panic: %v", r)
		}
	}()
	task()
}
