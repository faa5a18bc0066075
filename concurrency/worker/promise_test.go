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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaviate/weaviate-core/entities/coreerrors"
)

func TestFailedPromiseIsAlreadySettled(t *testing.T) {
	cause := errors.New("boom")
	p := FailedPromise[int](coreerrors.NewErrInvalidState(cause))

	v, err := p.Wait(context.Background())
	assert.Equal(t, 0, v)
	var invalidState coreerrors.ErrInvalidState
	require.ErrorAs(t, err, &invalidState)
}

func TestPromiseWaitRespectsContextCancellation(t *testing.T) {
	p := newPromise[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPromiseWaitUnblocksOnSettle(t *testing.T) {
	p := newPromise[string]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		p.settle("done", nil)
	}()

	v, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestPromiseCancelSettlesAsCancelled(t *testing.T) {
	p := newPromise[int]()
	assert.True(t, p.Cancel())
	assert.False(t, p.Cancel())
	assert.True(t, p.Cancelled())

	_, err := p.Wait(context.Background())
	var cancelled coreerrors.ErrCancelled
	require.ErrorAs(t, err, &cancelled)
}

func TestPromiseOnSettleFiresForAlreadySettled(t *testing.T) {
	p := newPromise[int]()
	p.settle(42, nil)

	fired := make(chan struct{})
	p.onSettle(func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("onSettle did not fire for an already-settled promise")
	}
}
