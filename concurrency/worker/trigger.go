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

// TriggerContext carries the information a Trigger needs to compute its
// next firing: the current time, and (once the reset loop has fired at
// least once) the instants of the last scheduled and last actually
// completed reset.
type TriggerContext struct {
	Now           time.Time
	HasPrevious   bool
	LastScheduled time.Time
	LastCompleted time.Time
}

// Trigger is a black box returning the next firing instant given a
// context threading the last firing through. RateLimiterWorker re-arms
// itself using this after every reset.
type Trigger interface {
	NextExecution(ctx TriggerContext) (time.Time, bool)
}

// FixedDelayTrigger fires Delay after the previous reset actually
// completed, so slow resets push later ones back by the same amount.
type FixedDelayTrigger struct {
	Delay time.Duration
}

func (t FixedDelayTrigger) NextExecution(ctx TriggerContext) (time.Time, bool) {
	if !ctx.HasPrevious {
		return ctx.Now.Add(t.Delay), true
	}
	return ctx.LastCompleted.Add(t.Delay), true
}

// PeriodicTrigger fires every Period measured from the last scheduled
// instant (not the last completion), so it drifts less than
// FixedDelayTrigger under slow resets.
type PeriodicTrigger struct {
	Period time.Duration
}

func (t PeriodicTrigger) NextExecution(ctx TriggerContext) (time.Time, bool) {
	if !ctx.HasPrevious {
		return ctx.Now.Add(t.Period), true
	}
	return ctx.LastScheduled.Add(t.Period), true
}
