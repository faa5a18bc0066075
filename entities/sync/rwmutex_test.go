//                           _       _
// __      _____  __ ___   ___  __ _| |_ ___
// \ \ /\ / / _ \/ _` \ \ / / |/ _` | __/ _ \
//  \ V  V /  __/ (_| |\ V /| | (_| | ||  __/
//   \_/\_/ \___|\__,_| \_/ |_|\__,_|\__\___|
//
//  Copyright © 2016 - 2024 Weaviate B.V. All rights reserved.
//
//  CONTACT: hello@weaviate.io
//

package sync

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReadPreferringRWMutexExcludesWriters(t *testing.T) {
	m := NewReadPreferringRWMutex()
	var counter int32

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Lock()
			v := atomic.AddInt32(&counter, 1)
			assert.Equal(t, int32(1), v)
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&counter, -1)
			m.Unlock()
		}()
	}
	wg.Wait()
}

func TestReadPreferringRWMutexAllowsConcurrentReaders(t *testing.T) {
	m := NewReadPreferringRWMutex()
	var active int32
	var maxSeen int32

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RLock()
			n := atomic.AddInt32(&active, 1)
			for {
				max := atomic.LoadInt32(&maxSeen)
				if n <= max || atomic.CompareAndSwapInt32(&maxSeen, max, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&active, -1)
			m.RUnlock()
		}()
	}
	wg.Wait()

	assert.Greater(t, atomic.LoadInt32(&maxSeen), int32(1))
}

func TestReadPreferringRWMutexTryLock(t *testing.T) {
	m := NewReadPreferringRWMutex()
	assert.True(t, m.TryLock())
	assert.False(t, m.TryLock())
	m.Unlock()
	assert.True(t, m.TryLock())
	m.Unlock()
}

func TestReadPreferringRWMutexTryRLock(t *testing.T) {
	m := NewReadPreferringRWMutex()
	assert.True(t, m.TryRLock())
	assert.True(t, m.TryRLock())
	m.RUnlock()
	m.RUnlock()
}
