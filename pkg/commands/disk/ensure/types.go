// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package ensure

import (
	"time"

	"github.com/ovirt-tools/ovdisk/pkg/ovirt/reconcile"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/disk"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/vm"
)

const StatePresent string = "present"
const StateAbsent string = "absent"
const StateAttached string = "attached"
const StateDetached string = "detached"

// Options is the declared state for one invocation.
type Options struct {
	// ID and Name identify the disk; one of the two is required for an
	// image-backed disk.  LUN-backed disks are identified by the LUN id.
	ID   string
	Name string

	// VMID and VMName identify the VM to attach to or detach from.
	// The name is resolved to an id before use.
	VMID   string
	VMName string

	// State is present, absent, attached, or detached
	State string

	// Size is the provisioned size in a human-readable form, e.g. 10GiB
	Size string

	// Interface is the attachment bus, defaulted to virtio
	Interface string

	// Format is raw or cow, defaulted to cow
	Format string

	Description *string
	Bootable    *bool
	Shareable   *bool

	StorageDomain  string
	StorageDomains []string

	LogicalUnit *reconcile.LogicalUnitSpec

	// ImagePath is a local image to upload into the disk.  The upload
	// runs when the disk was created by this invocation or Force is set.
	ImagePath string
	Force     bool

	PollInterval time.Duration
	Timeout      time.Duration
}

// Result reports what the invocation did.
type Result struct {
	// ID of the disk
	ID string

	// Changed reports whether any remote state was modified
	Changed bool

	Disk       *disk.Disk
	Attachment *vm.DiskAttachment
}
