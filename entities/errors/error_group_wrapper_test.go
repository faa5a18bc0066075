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

package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorGroupWrapperPropagatesFirstError(t *testing.T) {
	g := NewErrorGroupWrapper()
	boom := errors.New("boom")

	g.Go(func() error { return boom })
	g.Go(func() error { return nil })

	err := g.Wait()
	require.Error(t, err)
	assert.Equal(t, boom, err)
}

func TestErrorGroupWrapperRecoversPanic(t *testing.T) {
	g := NewErrorGroupWrapper()

	g.Go(func() error {
		panic("kaboom")
	})

	err := g.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic occurred")
}

func TestErrorGroupWrapperNoErrors(t *testing.T) {
	g := NewErrorGroupWrapper()
	g.Go(func() error { return nil })
	g.Go(func() error { return nil })

	assert.NoError(t, g.Wait())
}
