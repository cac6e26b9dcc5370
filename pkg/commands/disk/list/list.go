// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package list

import (
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/ovclient"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/disk"
)

// List returns the disks known to the engine, optionally restricted by
// an engine search expression.
func List(ovcli *ovclient.Client, search string) ([]disk.Disk, error) {
	return disk.GetDisks(ovcli, search)
}
