// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package util

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitForImmediate(t *testing.T) {
	calls := 0
	err := WaitFor(func() (bool, error) {
		calls++
		return true, nil
	}, time.Millisecond, time.Second)
	assert.NoError(t, err)
	assert.Equal(t, 1, calls, "Condition should be checked exactly once")
}

func TestWaitForEventually(t *testing.T) {
	calls := 0
	err := WaitFor(func() (bool, error) {
		calls++
		return calls >= 3, nil
	}, time.Millisecond, time.Second)
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWaitForTimeout(t *testing.T) {
	err := WaitFor(func() (bool, error) {
		return false, nil
	}, time.Millisecond, 10*time.Millisecond)
	assert.Equal(t, ErrWaitTimeout, err)
}

func TestWaitForError(t *testing.T) {
	boom := errors.New("boom")
	err := WaitFor(func() (bool, error) {
		return false, boom
	}, time.Millisecond, time.Second)
	assert.Equal(t, boom, err, "Condition errors should end the wait")
}
