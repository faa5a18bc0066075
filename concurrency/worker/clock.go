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

// Package worker implements the sequential, rate-limited, and pooled
// worker primitives: single-in-flight task serialization per key, with
// cancellation, retirement, and weighted admission control.
package worker

import "time"

// Clock is the wall-clock collaborator consumed by the pool's flush
// throttling and the rate limiter's delay computation. Tests substitute a
// manual clock; production code uses SystemClock. Timer scheduling itself
// goes through Executor.Schedule, not Clock, so a fake Clock can control
// "now" without needing to fake timer firing too.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock, backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
