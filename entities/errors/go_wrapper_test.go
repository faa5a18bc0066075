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
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGoWrapperRecoversPanic(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	done := make(chan struct{})
	GoWrapper(func() {
		defer close(done)
		panic("boom")
	}, logger)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine did not run")
	}
}

func TestGoWrapperRunsFunction(t *testing.T) {
	logger := logrus.New()
	ran := make(chan struct{})

	GoWrapper(func() {
		close(ran)
	}, logger)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("function did not run")
	}
}

func TestRecoveryDisabledDefaultsFalse(t *testing.T) {
	t.Setenv("DISABLE_RECOVERY_ON_PANIC", "")
	assert.False(t, recoveryDisabled())

	t.Setenv("DISABLE_RECOVERY_ON_PANIC", "true")
	assert.True(t, recoveryDisabled())
}
