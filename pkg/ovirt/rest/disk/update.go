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

// UpdateDisk updates the mutable attributes of an existing disk.  The
// format cannot be changed after creation and is not part of the
// request.
func UpdateDisk(ovcli *ovclient.Client, diskID string, req *UpdateDiskRequest) (*Disk, error) {
	path := fmt.Sprintf("/api/disks/%s", diskID)

	jsonPayload, err := json.Marshal(req)
	if err != nil {
		err := fmt.Errorf("Error marshalling UpdateDiskRequest for disk %s: %v", diskID, err)
		return nil, err
	}

	h := &http.Header{}
	ovcli.REST.HeaderAcceptJSON(h)
	ovcli.REST.HeaderContentJSON(h)
	ovcli.REST.HeaderBearerToken(h, ovcli.AccessToken)
	body, statusCode, err := ovcli.REST.Put(path, bytes.NewReader(jsonPayload), h)
	if err != nil {
		err = fmt.Errorf("Error calling HTTP PUT to update an oVirt disk: %v", err)
		return nil, err
	}

	if statusCode != 200 && statusCode != 201 && statusCode != 202 {
		err = fmt.Errorf("Error calling HTTP PUT to update an oVirt disk returned status code %v", statusCode)
		return nil, err
	}

	disk := &Disk{}
	err = json.Unmarshal(body, disk)
	if err != nil {
		err = fmt.Errorf("Error unmarshalling update oVirt disk response: %v", err)
		return nil, err
	}

	return disk, nil
}
