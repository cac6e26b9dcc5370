// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package reconcile

import (
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/ovirt-tools/ovdisk/pkg/ovirt/errdefs"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/disk"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/vm"
)

// AttachmentService is the slice of a VM's disk attachment collection
// the reconciler uses.  It is satisfied by vm.AttachmentService.
type AttachmentService interface {
	List() ([]vm.DiskAttachment, error)
	Add(req *vm.CreateDiskAttachmentRequest) (*vm.DiskAttachment, error)
	Update(id string, req *vm.UpdateDiskAttachmentRequest) (*vm.DiskAttachment, error)
	Remove(id string) error
}

// AttachmentReconciler converges the attachment of one disk to one VM.
// It wraps a DiskReconciler because attaching through the engine can
// create the disk and the attachment in a single call, and because the
// disk attributes are converged through the attachment resource when
// the disk is attached.
type AttachmentReconciler struct {
	Disk        *DiskReconciler
	Attachments AttachmentService

	// Interface is the bus the disk is presented on, e.g. virtio
	Interface string
	Bootable  *bool
}

// Get locates the attachment of the given disk on the VM, or nil when
// the disk is not attached.  The attachment id equals the disk id, but
// the list is matched on the disk reference to stay robust against
// engines that differ.
func (r *AttachmentReconciler) Get(diskID string) (*vm.DiskAttachment, error) {
	attachments, err := r.Attachments.List()
	if err != nil {
		return nil, &errdefs.RemoteError{Op: "list disk attachments", Err: err}
	}
	for i := range attachments {
		if attachments[i].Disk.Id == diskID {
			return &attachments[i], nil
		}
	}
	return nil, nil
}

// Reconcile attaches the disk to the VM, creating the attachment if it
// is missing and converging the interface, bootable flag, and the
// attached disk's attributes otherwise.
func (r *AttachmentReconciler) Reconcile(diskID string) (Result, error) {
	var found *vm.DiskAttachment

	return Ensure(Ops{
		Find: func() (string, bool, error) {
			att, err := r.Get(diskID)
			if err != nil {
				return "", false, err
			}
			if att == nil {
				return "", false, nil
			}
			found = att
			return att.Id, true, nil
		},
		Create: func() (string, error) {
			req := &vm.CreateDiskAttachmentRequest{
				Disk:      &disk.CreateDiskRequest{Id: diskID},
				Interface: r.Interface,
				Active:    "true",
			}
			if r.Bootable != nil {
				req.Bootable = strconv.FormatBool(*r.Bootable)
			}
			log.Debugf("Attaching disk %s", diskID)
			att, err := r.Attachments.Add(req)
			if err != nil {
				return "", &errdefs.RemoteError{Op: "attach disk", Err: err}
			}
			return att.Id, nil
		},
		Equal: func(id string) (bool, error) {
			if r.Interface != "" && r.Interface != found.Interface {
				return false, nil
			}
			if r.Bootable != nil && *r.Bootable != parseBool(found.Bootable) {
				return false, nil
			}
			if r.Disk.Spec.LogicalUnit != nil {
				return true, nil
			}
			live, err := r.Disk.Disks.Get(diskID)
			if err != nil {
				return false, &errdefs.RemoteError{Op: "get disk", Err: err}
			}
			return r.Disk.Spec.updateCheck(live), nil
		},
		Update: func(id string) error {
			req := &vm.UpdateDiskAttachmentRequest{
				Interface: r.Interface,
			}
			if r.Bootable != nil {
				req.Bootable = strconv.FormatBool(*r.Bootable)
			}
			if r.Disk.Spec.LogicalUnit == nil {
				live, err := r.Disk.Disks.Get(diskID)
				if err != nil {
					return &errdefs.RemoteError{Op: "get disk", Err: err}
				}
				req.Disk = r.Disk.Spec.buildUpdateRequest(live)
			}
			log.Debugf("Updating disk attachment %s", id)
			if _, err := r.Attachments.Update(id, req); err != nil {
				return &errdefs.RemoteError{Op: "update disk attachment", Err: err}
			}
			return nil
		},
	})
}

// Detach removes the attachment of the disk from the VM.  The disk
// itself is left in place.
func (r *AttachmentReconciler) Detach(diskID string) (Result, error) {
	att, err := r.Get(diskID)
	if err != nil {
		return Result{}, err
	}
	if att == nil {
		return Result{}, nil
	}

	log.Debugf("Detaching disk %s", diskID)
	if err := r.Attachments.Remove(att.Id); err != nil {
		return Result{}, &errdefs.RemoteError{Op: "detach disk", Err: err}
	}
	return Result{ID: att.Id, Changed: true}, nil
}
