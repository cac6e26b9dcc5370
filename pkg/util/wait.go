// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package util

import (
	"errors"
	"time"
)

// ErrWaitTimeout is returned by WaitFor when the timeout elapses before
// the condition reports done.
var ErrWaitTimeout = errors.New("timed out waiting for the condition")

// WaitFor calls cond every interval until it reports done, returns an
// error, or the timeout is reached.  The condition is always called at
// least once.  Because a single call may be long, the total runtime can
// exceed the given timeout.
func WaitFor(cond func() (bool, error), interval time.Duration, timeout time.Duration) error {
	begin := time.Now()
	for {
		done, err := cond()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if time.Since(begin) >= timeout {
			return ErrWaitTimeout
		}
		time.Sleep(interval)
	}
}
