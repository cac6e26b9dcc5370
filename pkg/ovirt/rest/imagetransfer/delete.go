// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package imagetransfer

import (
	"fmt"
	"net/http"

	"github.com/ovirt-tools/ovdisk/pkg/ovirt/ovclient"
)

// DeleteImageTransfer deletes an imagetransfer resource.
func DeleteImageTransfer(ovcli *ovclient.Client, transferID string) error {
	path := fmt.Sprintf("/api/imagetransfers/%s", transferID)

	h := &http.Header{}
	ovcli.REST.HeaderAcceptJSON(h)
	ovcli.REST.HeaderContentJSON(h)
	ovcli.REST.HeaderBearerToken(h, ovcli.AccessToken)
	_, err := ovcli.REST.Delete(path, h)
	if err != nil {
		return err
	}

	return nil
}
