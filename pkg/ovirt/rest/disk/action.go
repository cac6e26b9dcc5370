// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package disk

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/ovirt-tools/ovdisk/pkg/ovirt/ovclient"
	"k8s.io/apimachinery/pkg/util/json"
)

const ActionMove string = "move"
const ActionCopy string = "copy"

type diskActionRequest struct {
	StorageDomain StorageDomain `json:"storage_domain"`
}

// MoveDisk moves an image-backed disk to another storage domain.
func MoveDisk(ovcli *ovclient.Client, diskID string, storageDomainID string) error {
	return doDiskAction(ovcli, diskID, ActionMove, storageDomainID)
}

// CopyDisk copies an image-backed disk to another storage domain.  The
// engine creates a new disk relationship on every call; the action is
// not idempotent.
func CopyDisk(ovcli *ovclient.Client, diskID string, storageDomainID string) error {
	return doDiskAction(ovcli, diskID, ActionCopy, storageDomainID)
}

// doDiskAction posts an action to the disk resource
func doDiskAction(ovcli *ovclient.Client, diskID string, action string, storageDomainID string) error {
	path := fmt.Sprintf("/api/disks/%s/%s", diskID, action)

	jsonPayload, err := json.Marshal(&diskActionRequest{
		StorageDomain: StorageDomain{Id: storageDomainID},
	})
	if err != nil {
		return fmt.Errorf("Error marshalling %s request for disk %s: %v", action, diskID, err)
	}

	h := &http.Header{}
	ovcli.REST.HeaderAcceptJSON(h)
	ovcli.REST.HeaderContentJSON(h)
	ovcli.REST.HeaderBearerToken(h, ovcli.AccessToken)
	_, statusCode, err := ovcli.REST.Post(path, bytes.NewReader(jsonPayload), h)
	if err != nil {
		err = fmt.Errorf("Error calling HTTP POST to %s an oVirt disk: %v", action, err)
		return err
	}

	if statusCode != 200 && statusCode != 201 && statusCode != 202 {
		err = fmt.Errorf("Error calling HTTP POST to %s an oVirt disk returned status code %v", action, statusCode)
		return err
	}

	return nil
}
