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

package errorcompounder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyCompounderToErrorIsNil(t *testing.T) {
	ec := New()
	assert.True(t, ec.Empty())
	assert.Zero(t, ec.Len())
	assert.NoError(t, ec.ToError())
}

func TestAddIgnoresNil(t *testing.T) {
	ec := New()
	ec.Add(nil)
	assert.True(t, ec.Empty())
}

func TestAddfAndToError(t *testing.T) {
	ec := New()
	ec.Addf("bad index %d", 3)
	ec.Addf("bad index %d", 7)

	require.False(t, ec.Empty())
	assert.Equal(t, 2, ec.Len())

	err := ec.ToError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad index 3")
	assert.Contains(t, err.Error(), "bad index 7")
}

func TestAddWrapf(t *testing.T) {
	ec := New()
	cause := errors.New("underlying")
	ec.AddWrapf(cause, "while validating segment %d", 1)

	err := ec.First()
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "while validating segment 1")
}

func TestAddGroups(t *testing.T) {
	ec := New()
	ec.AddGroups(errors.New("group error"), "segment-5")

	require.Equal(t, 1, ec.Len())
	err := ec.ToError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "segment-5")
	assert.Contains(t, err.Error(), "group error")
}
