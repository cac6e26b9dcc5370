// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package errdefs defines the error classes surfaced by the disk
// reconcilers and the image transfer engine.  Callers can classify a
// failure with errors.As.
package errdefs

import (
	"fmt"
	"time"
)

// NotFoundError is returned when a VM, disk, or storage domain that was
// referenced by name or id does not exist on the engine.
type NotFoundError struct {
	// Kind is the kind of object, e.g. "vm" or "storage domain"
	Kind string
	// Name is the name or id that failed to resolve
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// RemoteError is returned when the engine rejects a request.  The
// underlying transport or API error is preserved.
type RemoteError struct {
	// Op names the operation that was rejected, e.g. "create disk"
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote operation %s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// ChunkError is returned when the image transfer proxy answers a chunk
// PUT with a status of 400 or above.  The transfer is abandoned and
// finalized as a failure.
type ChunkError struct {
	// Offset is the first byte of the failed chunk
	Offset     int64
	StatusCode int
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("uploading chunk at offset %d failed with status %d", e.Offset, e.StatusCode)
}

// TransferError is returned when an image transfer session ends in a
// failure, cancelled, or unknown phase.
type TransferError struct {
	// Phase is the terminal phase reported by the engine
	Phase string
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("image transfer ended in phase %q", e.Phase)
}

// TimeoutError is returned when one of the bounded poll loops exceeds
// its deadline.  The operation is not retried; the caller must
// re-invoke from scratch.
type TimeoutError struct {
	// Op names the wait that timed out, e.g. "wait for disk ok"
	Op      string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %v during %s", e.Timeout, e.Op)
}
