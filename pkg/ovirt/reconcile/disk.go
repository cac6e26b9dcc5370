// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package reconcile

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ovirt-tools/ovdisk/pkg/constants"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/errdefs"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/disk"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/storagedomain"
	"github.com/ovirt-tools/ovdisk/pkg/util"
)

// DiskService is the slice of the disk collection the reconciler uses.
// It is satisfied by disk.Service.
type DiskService interface {
	Get(id string) (*disk.Disk, error)
	Search(search string) ([]disk.Disk, error)
	Add(req *disk.CreateDiskRequest) (*disk.Disk, error)
	Update(id string, req *disk.UpdateDiskRequest) (*disk.Disk, error)
	Remove(id string) error
	Move(id string, storageDomainID string) error
	Copy(id string, storageDomainID string) error
}

// StorageDomainService resolves storage domain names.  It is satisfied
// by storagedomain.Service.
type StorageDomainService interface {
	Find(name string) (*storagedomain.StorageDomain, error)
}

// DiskReconciler converges a single disk to its declared state.
type DiskReconciler struct {
	Disks   DiskService
	Domains StorageDomainService
	Spec    DiskSpec

	PollInterval time.Duration
	Timeout      time.Duration
}

func (r *DiskReconciler) pollInterval() time.Duration {
	if r.PollInterval > 0 {
		return r.PollInterval
	}
	return constants.DefaultPollInterval
}

func (r *DiskReconciler) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return constants.DefaultTimeout
}

// FindByLun searches the LUN-backed disks for one wrapping the given
// logical unit.  Disk search does not match on LUN ids, so the match
// is done client side.
func (r *DiskReconciler) FindByLun(lunID string) (*disk.Disk, error) {
	disks, err := r.Disks.Search("disk_type=lun")
	if err != nil {
		return nil, &errdefs.RemoteError{Op: "search disks", Err: err}
	}
	for i := range disks {
		for _, lu := range disks[i].LunStorage.LogicalUnitList.LogicalUnits {
			if lu.Id == lunID {
				return &disks[i], nil
			}
		}
	}
	return nil, nil
}

// find locates the disk named by the spec.  When existing is non-nil
// the lookup has already happened (the LUN pre-scan) and its result is
// reused.
func (r *DiskReconciler) find(existing *disk.Disk) (string, bool, error) {
	if existing != nil {
		return existing.Id, true, nil
	}

	var search string
	if r.Spec.ID != "" {
		search = fmt.Sprintf("id=%s", r.Spec.ID)
	} else {
		search = fmt.Sprintf("name=%s", r.Spec.Name)
	}
	disks, err := r.Disks.Search(search)
	if err != nil {
		return "", false, &errdefs.RemoteError{Op: "search disks", Err: err}
	}
	if len(disks) == 0 {
		return "", false, nil
	}
	return disks[0].Id, true, nil
}

// Reconcile makes the remote disk match the spec, creating or updating
// it as needed.  A LUN-backed pre-scan result can be passed in as
// existing to avoid a second search.
func (r *DiskReconciler) Reconcile(existing *disk.Disk) (Result, error) {
	if err := r.Spec.Validate(); err != nil {
		return Result{}, err
	}

	return Ensure(Ops{
		Find: func() (string, bool, error) {
			return r.find(existing)
		},
		Create: func() (string, error) {
			return r.create()
		},
		Equal: func(id string) (bool, error) {
			// A LUN has no mutable attributes worth converging
			if r.Spec.LogicalUnit != nil {
				return true, nil
			}
			live, err := r.Disks.Get(id)
			if err != nil {
				return false, &errdefs.RemoteError{Op: "get disk", Err: err}
			}
			return r.Spec.updateCheck(live), nil
		},
		Update: func(id string) error {
			live, err := r.Disks.Get(id)
			if err != nil {
				return &errdefs.RemoteError{Op: "get disk", Err: err}
			}
			log.Debugf("Updating disk %s", id)
			_, err = r.Disks.Update(id, r.Spec.buildUpdateRequest(live))
			if err != nil {
				return &errdefs.RemoteError{Op: "update disk", Err: err}
			}
			return r.waitStatus(id, disk.StatusOK)
		},
	})
}

func (r *DiskReconciler) create() (string, error) {
	var storageDomainID string
	if r.Spec.LogicalUnit == nil && r.Spec.StorageDomain != "" {
		sd, err := r.Domains.Find(r.Spec.StorageDomain)
		if err != nil {
			return "", err
		}
		storageDomainID = sd.Id
	}

	log.Debugf("Creating disk %s", r.Spec.Name)
	created, err := r.Disks.Add(r.Spec.buildCreateRequest(storageDomainID))
	if err != nil {
		return "", &errdefs.RemoteError{Op: "create disk", Err: err}
	}

	// LUN-backed disks have no image to prepare and never leave ok
	if r.Spec.LogicalUnit == nil {
		if err := r.waitStatus(created.Id, disk.StatusOK); err != nil {
			return "", err
		}
	}
	return created.Id, nil
}

// Remove deletes the disk named by the spec.  Deleting a disk detaches
// it from any VMs first; the engine cascades the removal.  A spec that
// names nothing is rejected rather than searched: an empty name filter
// can match the whole collection on some engines.
func (r *DiskReconciler) Remove(existing *disk.Disk) (Result, error) {
	if existing == nil {
		// A LUN-backed disk is only found through the pre-scan; no
		// hit means there is nothing to remove
		if r.Spec.LogicalUnit != nil {
			return Result{}, nil
		}
		if err := r.Spec.Validate(); err != nil {
			return Result{}, err
		}
	}

	id, found, err := r.find(existing)
	if err != nil {
		return Result{}, err
	}
	if !found {
		return Result{}, nil
	}

	log.Debugf("Removing disk %s", id)
	if err := r.Disks.Remove(id); err != nil {
		return Result{}, &errdefs.RemoteError{Op: "remove disk", Err: err}
	}
	return Result{ID: id, Changed: true}, nil
}

// UpdateStoragePlacement moves the disk to its declared storage domain
// and copies it to any additional domains.  Moves are skipped when the
// disk is already in place; copies are issued every call because the
// engine offers no way to tell a previous copy apart.  LUN-backed
// disks have no placement and are left alone.
func (r *DiskReconciler) UpdateStoragePlacement(diskID string) (bool, error) {
	live, err := r.Disks.Get(diskID)
	if err != nil {
		return false, &errdefs.RemoteError{Op: "get disk", Err: err}
	}
	if live.StorageType != disk.StorageTypeImage {
		return false, nil
	}

	changed := false

	if r.Spec.StorageDomain != "" {
		sd, err := r.Domains.Find(r.Spec.StorageDomain)
		if err != nil {
			return false, err
		}
		if !diskInDomain(live, sd.Id) {
			log.Debugf("Moving disk %s to storage domain %s", diskID, sd.Name)
			if err := r.Disks.Move(diskID, sd.Id); err != nil {
				return false, &errdefs.RemoteError{Op: "move disk", Err: err}
			}
			if err := r.waitStatus(diskID, disk.StatusOK); err != nil {
				return false, err
			}
			changed = true
		}
	}

	for _, name := range r.Spec.StorageDomains {
		sd, err := r.Domains.Find(name)
		if err != nil {
			return changed, err
		}
		log.Debugf("Copying disk %s to storage domain %s", diskID, sd.Name)
		if err := r.Disks.Copy(diskID, sd.Id); err != nil {
			return changed, &errdefs.RemoteError{Op: "copy disk", Err: err}
		}
		if err := r.waitStatus(diskID, disk.StatusOK); err != nil {
			return changed, err
		}
		changed = true
	}

	return changed, nil
}

// WaitOK blocks until the disk leaves the locked state.
func (r *DiskReconciler) WaitOK(diskID string) error {
	return r.waitStatus(diskID, disk.StatusOK)
}

func (r *DiskReconciler) waitStatus(diskID string, status string) error {
	err := util.WaitFor(func() (bool, error) {
		live, err := r.Disks.Get(diskID)
		if err != nil {
			return false, &errdefs.RemoteError{Op: "get disk", Err: err}
		}
		return live.Status == status, nil
	}, r.pollInterval(), r.timeout())
	if err == util.ErrWaitTimeout {
		return &errdefs.TimeoutError{Op: fmt.Sprintf("wait for disk %s", status), Timeout: r.timeout()}
	}
	return err
}

func diskInDomain(live *disk.Disk, storageDomainID string) bool {
	for _, sd := range live.StorageDomains.StorageDomain {
		if sd.Id == storageDomainID {
			return true
		}
	}
	return false
}
