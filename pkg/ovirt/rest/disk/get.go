// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package disk

import (
	"fmt"
	"net/url"

	"github.com/ovirt-tools/ovdisk/pkg/ovirt/ovclient"
	"k8s.io/apimachinery/pkg/util/json"
)

// GetDisk gets a disk resource.
func GetDisk(ovcli *ovclient.Client, diskID string) (*Disk, error) {
	path := fmt.Sprintf("/api/disks/%s", diskID)

	// call the server to get the disk
	body, err := ovcli.REST.Get(ovcli.AccessToken, path)
	if err != nil {
		err = fmt.Errorf("Error doing HTTP GET: %v", err)
		return nil, err
	}

	disk := &Disk{}
	err = json.Unmarshal(body, disk)
	if err != nil {
		err = fmt.Errorf("Error unmarshaling Disk: %v", err)
		return nil, err
	}

	return disk, nil
}

// GetDisks gets disk resources, optionally restricted by an engine
// search expression such as "name=mydisk" or "disk_type=lun".
func GetDisks(ovcli *ovclient.Client, search string) ([]Disk, error) {
	path := "/api/disks"
	if search != "" {
		path = fmt.Sprintf("%s?search=%s", path, url.QueryEscape(search))
	}

	body, err := ovcli.REST.Get(ovcli.AccessToken, path)
	if err != nil {
		err = fmt.Errorf("Error doing HTTP GET: %v", err)
		return nil, err
	}

	diskList := &DiskList{}
	err = json.Unmarshal(body, diskList)
	if err != nil {
		err = fmt.Errorf("Error unmarshaling Disks: %v", err)
		return nil, err
	}

	return diskList.Disks, nil
}
