// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

// Package ensure converges a single disk, its storage placement, its
// image contents, and its VM attachment to a declared state in one
// sequential pass.
package ensure

import (
	"fmt"

	"github.com/docker/go-units"
	log "github.com/sirupsen/logrus"

	"github.com/ovirt-tools/ovdisk/pkg/constants"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/ovclient"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/reconcile"
	oDisk "github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/disk"
	ovhttp "github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/http"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/imagetransfer"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/storagedomain"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/vm"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/transfer"
)

// services collects the collaborators the driver needs, so the flow
// can be exercised without a live engine.
type services struct {
	disks       reconcile.DiskService
	domains     reconcile.StorageDomainService
	findVM      func(name string) (*vm.VM, error)
	attachments func(vmID string) reconcile.AttachmentService
	upload      func(diskID string, imagePath string) error
}

// Ensure converges the disk described by opts against the engine the
// client is bound to.  The pass is strictly sequential: LUN lookup,
// disk create or update, storage placement, image upload, then VM
// attach or detach.
func Ensure(ovcli *ovclient.Client, opts Options) (*Result, error) {
	diskSvc := oDisk.NewService(ovcli)

	var proxy *ovhttp.ProxyClient
	svcs := &services{
		disks:   diskSvc,
		domains: storagedomain.NewService(ovcli),
		findVM: func(name string) (*vm.VM, error) {
			return vm.GetVMByName(ovcli, name)
		},
		attachments: func(vmID string) reconcile.AttachmentService {
			return vm.NewAttachmentService(ovcli, vmID)
		},
		upload: func(diskID string, imagePath string) error {
			// The proxy connection is owned by this invocation and
			// opened only when an upload actually happens
			var err error
			proxy, err = ovhttp.NewProxyClient(ovcli.CAFile, ovcli.InsecureSkipTLSVerify)
			if err != nil {
				return err
			}
			engine := &transfer.Engine{
				Sessions:     imagetransfer.NewService(ovcli),
				Disks:        diskSvc,
				Proxy:        proxy,
				PollInterval: opts.PollInterval,
				Timeout:      opts.Timeout,
			}
			return engine.Upload(diskID, imagePath)
		},
	}
	defer func() {
		if proxy != nil {
			proxy.Close()
		}
	}()

	return ensureWithServices(svcs, opts)
}

func ensureWithServices(svcs *services, opts Options) (*Result, error) {
	if err := validate(&opts); err != nil {
		return nil, err
	}

	spec, err := buildSpec(&opts)
	if err != nil {
		return nil, err
	}

	dr := &reconcile.DiskReconciler{
		Disks:        svcs.disks,
		Domains:      svcs.domains,
		Spec:         *spec,
		PollInterval: opts.PollInterval,
		Timeout:      opts.Timeout,
	}

	// LUN-backed disks cannot be found through the search API, so the
	// wrapping disk is located up front by scanning the LUN disks
	var existing *oDisk.Disk
	if opts.LogicalUnit != nil {
		existing, err = dr.FindByLun(opts.LogicalUnit.ID)
		if err != nil {
			return nil, err
		}
	}

	if opts.State == StateAbsent {
		res, err := dr.Remove(existing)
		if err != nil {
			return nil, err
		}
		return &Result{ID: res.ID, Changed: res.Changed}, nil
	}

	res, err := dr.Reconcile(existing)
	if err != nil {
		return nil, err
	}
	result := &Result{ID: res.ID, Changed: res.Changed}

	if opts.LogicalUnit == nil {
		moved, err := dr.UpdateStoragePlacement(res.ID)
		if err != nil {
			return nil, err
		}
		result.Changed = result.Changed || moved
	}

	if opts.ImagePath != "" && (res.Created || opts.Force) {
		if err := svcs.upload(res.ID, opts.ImagePath); err != nil {
			return nil, err
		}
		result.Changed = true
	}

	if opts.VMID != "" || opts.VMName != "" {
		if err := reconcileAttachment(svcs, dr, &opts, result); err != nil {
			return nil, err
		}
	}

	live, err := svcs.disks.Get(res.ID)
	if err != nil {
		return nil, err
	}
	result.Disk = live

	log.Infof("Disk %s is %s (changed: %t)", result.ID, opts.State, result.Changed)
	return result, nil
}

func reconcileAttachment(svcs *services, dr *reconcile.DiskReconciler, opts *Options, result *Result) error {
	vmID := opts.VMID
	if vmID == "" {
		v, err := svcs.findVM(opts.VMName)
		if err != nil {
			return err
		}
		vmID = v.Id
	}

	ar := &reconcile.AttachmentReconciler{
		Disk:        dr,
		Attachments: svcs.attachments(vmID),
		Interface:   opts.Interface,
		Bootable:    opts.Bootable,
	}

	if opts.State == StateDetached {
		res, err := ar.Detach(result.ID)
		if err != nil {
			return err
		}
		result.Changed = result.Changed || res.Changed
		return nil
	}

	res, err := ar.Reconcile(result.ID)
	if err != nil {
		return err
	}
	result.Changed = result.Changed || res.Changed

	// Attaching can leave the disk locked while the engine prepares it
	if opts.LogicalUnit == nil {
		if err := dr.WaitOK(result.ID); err != nil {
			return err
		}
	}

	att, err := ar.Get(result.ID)
	if err != nil {
		return err
	}
	result.Attachment = att
	return nil
}

func validate(opts *Options) error {
	switch opts.State {
	case StatePresent, StateAbsent, StateAttached, StateDetached:
	case "":
		opts.State = StatePresent
	default:
		return fmt.Errorf("%s is not a valid state", opts.State)
	}

	if (opts.State == StateAttached || opts.State == StateDetached) && opts.VMID == "" && opts.VMName == "" {
		return fmt.Errorf("state %s requires a VM id or name", opts.State)
	}

	if opts.Interface == "" {
		opts.Interface = constants.DefaultDiskInterface
	}
	if opts.Format == "" {
		opts.Format = constants.DefaultDiskFormat
	}
	return nil
}

func buildSpec(opts *Options) (*reconcile.DiskSpec, error) {
	spec := &reconcile.DiskSpec{
		ID:             opts.ID,
		Name:           opts.Name,
		Description:    opts.Description,
		Format:         opts.Format,
		Shareable:      opts.Shareable,
		StorageDomain:  opts.StorageDomain,
		StorageDomains: opts.StorageDomains,
		LogicalUnit:    opts.LogicalUnit,
	}

	if opts.Size != "" {
		sizeBytes, err := units.RAMInBytes(opts.Size)
		if err != nil {
			return nil, fmt.Errorf("Error, size value %s is an invalid format", opts.Size)
		}
		spec.SizeBytes = sizeBytes
	}

	return spec, nil
}
