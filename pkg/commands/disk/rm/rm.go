// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package rm

import (
	"github.com/ovirt-tools/ovdisk/pkg/commands/disk/ensure"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/ovclient"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/reconcile"
)

// Options identifies the disk to remove.
type Options struct {
	ID   string
	Name string

	// LunID identifies a LUN-backed disk by its logical unit
	LunID string
}

// Remove deletes the disk.  Removing a disk that does not exist is not
// an error and reports no change.
func Remove(ovcli *ovclient.Client, opts Options) (*ensure.Result, error) {
	eopts := ensure.Options{
		ID:    opts.ID,
		Name:  opts.Name,
		State: ensure.StateAbsent,
	}
	if opts.LunID != "" {
		eopts.LogicalUnit = &reconcile.LogicalUnitSpec{ID: opts.LunID}
	}
	return ensure.Ensure(ovcli, eopts)
}
