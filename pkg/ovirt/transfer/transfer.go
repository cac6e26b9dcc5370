// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package transfer drives image transfer sessions against the engine's
// imageio proxy.  An upload moves through initializing, transferring,
// and finalizing phases; the session is always finalized, even when a
// chunk fails, so the engine can unlock the disk.
package transfer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ovirt-tools/ovdisk/pkg/constants"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/errdefs"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/disk"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/imagetransfer"
	"github.com/ovirt-tools/ovdisk/pkg/util"
)

// SessionService is the slice of the image transfer collection the
// engine uses.  It is satisfied by imagetransfer.Service.
type SessionService interface {
	Add(req *imagetransfer.CreateImageTransferRequest) (*imagetransfer.ImageTransfer, error)
	Get(id string) (*imagetransfer.ImageTransfer, error)
	Extend(id string) error
	Finalize(id string) error
	Cancel(id string) error
	Remove(id string) error
}

// DiskGetter reads back a single disk.  It is satisfied by
// disk.Service.
type DiskGetter interface {
	Get(id string) (*disk.Disk, error)
}

// ChunkPutter PUTs one chunk to the transfer proxy.  It is satisfied by
// http.ProxyClient.
type ChunkPutter interface {
	PutChunk(URL string, payload io.Reader, ticket string, start int64, end int64, total int64) (int, error)
}

// Engine uploads local image files into engine disks.
type Engine struct {
	Sessions SessionService
	Disks    DiskGetter
	Proxy    ChunkPutter

	// ChunkSize is the size of each PUT to the proxy
	ChunkSize int64

	PollInterval time.Duration
	Timeout      time.Duration
}

func (e *Engine) chunkSize() int64 {
	if e.ChunkSize > 0 {
		return e.ChunkSize
	}
	return constants.UploadChunkSize
}

func (e *Engine) pollInterval() time.Duration {
	if e.PollInterval > 0 {
		return e.PollInterval
	}
	return constants.DefaultPollInterval
}

func (e *Engine) timeout() time.Duration {
	if e.Timeout > 0 {
		return e.Timeout
	}
	return constants.DefaultTimeout
}

// Upload copies the image at imagePath into the given disk.  The disk
// must exist; its image is overwritten from offset zero.  Once a
// session reaches the transferring phase it is finalized no matter
// what, so a failed chunk still unlocks the disk.  The chunk failure
// is reported over any finalization failure.
func (e *Engine) Upload(diskID string, imagePath string) error {
	f, err := os.Open(imagePath)
	if err != nil {
		return err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}
	totalLen := fi.Size()
	if totalLen == 0 {
		return fmt.Errorf("image %s is empty", imagePath)
	}

	// The disk has to settle before a transfer can lock it
	if err := e.waitDiskOK(diskID); err != nil {
		return err
	}

	session, err := e.Sessions.Add(&imagetransfer.CreateImageTransferRequest{
		Name:          fmt.Sprintf("Upload %s to disk %s (%s)", imagePath, diskID, uuid.NewString()),
		Disk:          imagetransfer.Disk{Id: diskID},
		Direction:     imagetransfer.DirectionUpload,
		TimeoutPolicy: imagetransfer.TimeoutPolicy,
	})
	if err != nil {
		return &errdefs.RemoteError{Op: "create image transfer", Err: err}
	}

	transferID := session.Id
	log.Infof("Waiting for image transfer %s to become ready", transferID)
	session, err = e.waitPhaseLeft(transferID, imagetransfer.PhaseInitializing)
	if err != nil {
		e.cleanup(transferID)
		return err
	}
	if session.Phase != imagetransfer.PhaseTransferring {
		e.cleanup(session.Id)
		return &errdefs.TransferError{Phase: session.Phase}
	}

	log.Infof("Uploading image %s to %s", imagePath, session.ProxyUrl)
	chunkErr := e.uploadChunks(session, f, totalLen)

	// Finalize unconditionally so the engine unlocks the disk.  A
	// chunk failure takes precedence over anything finalize reports.
	if err := e.finalize(session.Id); err != nil {
		if chunkErr != nil {
			log.Errorf("Finalizing failed image transfer %s: %v", session.Id, err)
			return chunkErr
		}
		return err
	}
	if chunkErr != nil {
		return chunkErr
	}

	// Finalization triggers a verification pass that locks the disk
	if err := e.waitDiskOK(diskID); err != nil {
		return err
	}

	log.Infof("Successfully uploaded image %s to disk %s", imagePath, diskID)
	return nil
}

// uploadChunks PUTs the image to the proxy one chunk at a time.  The
// last chunk closes the backend so the engine can deactivate the
// volume; intermediate chunks skip flushing for throughput.  The
// session is extended before every chunk to keep it from timing out
// on slow links.
func (e *Engine) uploadChunks(session *imagetransfer.ImageTransfer, reader io.Reader, totalLen int64) error {
	chunkLen := e.chunkSize()
	var start int64
	var end int64 = -1

	buf := make([]byte, chunkLen)

	remainingLen := totalLen
	for remainingLen > 0 {
		if chunkLen > remainingLen {
			chunkLen = remainingLen
		}

		var url string
		if chunkLen == remainingLen {
			url = session.ProxyUrl + "?close=y"
		} else {
			url = session.ProxyUrl + "?flush=n"
		}

		// start and end are 0-based and inclusive
		// see https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/Content-Range
		start = end + 1
		end = start + chunkLen - 1
		remainingLen -= chunkLen

		if err := e.Sessions.Extend(session.Id); err != nil {
			return &errdefs.RemoteError{Op: "extend image transfer", Err: err}
		}

		b := buf[:chunkLen]
		if _, err := io.ReadFull(reader, b); err != nil {
			return err
		}

		statusCode, err := e.Proxy.PutChunk(url, bytes.NewReader(b), session.SignedTicket, start, end, totalLen)
		if err != nil {
			return fmt.Errorf("Error calling HTTP PUT to upload a chunk: %v", err)
		}
		if statusCode >= 400 {
			return &errdefs.ChunkError{Offset: start, StatusCode: statusCode}
		}
		if statusCode != 200 && statusCode != 201 && statusCode != 202 {
			return fmt.Errorf("Error calling HTTP PUT to upload a chunk: unexpected status code %d", statusCode)
		}
	}

	return nil
}

// finalize finalizes the session and waits for a terminal phase.
func (e *Engine) finalize(transferID string) error {
	if err := e.Sessions.Finalize(transferID); err != nil {
		return &errdefs.RemoteError{Op: "finalize image transfer", Err: err}
	}

	session, err := e.waitPhaseLeft(transferID, imagetransfer.PhaseTransferring, imagetransfer.PhaseFinalizingSuccess)
	if err != nil {
		return err
	}
	if session.Phase != imagetransfer.PhaseFinishedSuccess {
		return &errdefs.TransferError{Phase: session.Phase}
	}
	return nil
}

// waitPhaseLeft polls the session until its phase is none of the given
// ones, then returns the session as last read.
func (e *Engine) waitPhaseLeft(transferID string, phases ...string) (*imagetransfer.ImageTransfer, error) {
	var session *imagetransfer.ImageTransfer
	err := util.WaitFor(func() (bool, error) {
		var err error
		session, err = e.Sessions.Get(transferID)
		if err != nil {
			return false, &errdefs.RemoteError{Op: "get image transfer", Err: err}
		}
		for _, phase := range phases {
			if session.Phase == phase {
				return false, nil
			}
		}
		return true, nil
	}, e.pollInterval(), e.timeout())
	if err == util.ErrWaitTimeout {
		return nil, &errdefs.TimeoutError{Op: "wait for image transfer phase", Timeout: e.timeout()}
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (e *Engine) waitDiskOK(diskID string) error {
	err := util.WaitFor(func() (bool, error) {
		live, err := e.Disks.Get(diskID)
		if err != nil {
			return false, &errdefs.RemoteError{Op: "get disk", Err: err}
		}
		return live.Status == disk.StatusOK, nil
	}, e.pollInterval(), e.timeout())
	if err == util.ErrWaitTimeout {
		return &errdefs.TimeoutError{Op: "wait for disk ok", Timeout: e.timeout()}
	}
	return err
}

// cleanup tears down a session that never reached the transferring
// phase.  It is a best effort.
func (e *Engine) cleanup(transferID string) {
	if err := e.Sessions.Cancel(transferID); err != nil {
		log.Debugf("Cancelling image transfer %s: %v", transferID, err)
		return
	}
	if _, err := e.waitPhaseLeft(transferID, imagetransfer.PhaseTransferring, imagetransfer.PhaseInitializing); err != nil {
		return
	}
	if err := e.Sessions.Remove(transferID); err != nil {
		log.Debugf("Removing image transfer %s: %v", transferID, err)
	}
}
