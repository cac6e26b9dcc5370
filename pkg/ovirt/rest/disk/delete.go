// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package disk

import (
	"fmt"
	"net/http"

	"github.com/ovirt-tools/ovdisk/pkg/ovirt/ovclient"
)

// DeleteDisk deletes a disk resource.  Any attachments to VMs are
// removed by the engine as part of the delete.
func DeleteDisk(ovcli *ovclient.Client, diskID string) error {
	path := fmt.Sprintf("/api/disks/%s", diskID)

	h := &http.Header{}
	ovcli.REST.HeaderAcceptJSON(h)
	ovcli.REST.HeaderContentJSON(h)
	ovcli.REST.HeaderBearerToken(h, ovcli.AccessToken)
	_, err := ovcli.REST.Delete(path, h)
	if err != nil {
		err = fmt.Errorf("Error doing HTTP DELETE of the disk %s: %v", diskID, err)
		return err
	}

	return nil
}
