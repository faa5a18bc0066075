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

package coreerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindsWrapAndUnwrap(t *testing.T) {
	cause := errors.New("boom")

	cases := []struct {
		name string
		err  error
	}{
		{"InvalidArgument", NewErrInvalidArgument(cause)},
		{"InvalidState", NewErrInvalidState(cause)},
		{"NotFound", NewErrNotFound(cause)},
		{"Corrupt", NewErrCorrupt(cause)},
		{"Unsupported", NewErrUnsupported(cause)},
		{"Busy", NewErrBusy(cause)},
		{"Cancelled", NewErrCancelled(cause)},
		{"TaskFailure", NewErrTaskFailure(cause)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.ErrorIs(t, c.err, cause)
			assert.Equal(t, cause.Error(), c.err.Error())
		})
	}
}

func TestErrorKindsAreDistinguishableViaAs(t *testing.T) {
	err := NewErrBusy(errors.New("worker busy"))

	var busy ErrBusy
	assert.ErrorAs(t, err, &busy)

	var notFound ErrNotFound
	assert.False(t, errors.As(err, &notFound))
}
