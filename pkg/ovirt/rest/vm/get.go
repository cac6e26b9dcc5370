// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package vm

import (
	"fmt"
	"net/url"

	"github.com/ovirt-tools/ovdisk/pkg/ovirt/errdefs"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/ovclient"
	"k8s.io/apimachinery/pkg/util/json"
)

// GetVMs gets VM resources, optionally restricted by an engine search
// expression such as "name=myvm".
func GetVMs(ovcli *ovclient.Client, search string) ([]VM, error) {
	path := "/api/vms"
	if search != "" {
		path = fmt.Sprintf("%s?search=%s", path, url.QueryEscape(search))
	}

	body, err := ovcli.REST.Get(ovcli.AccessToken, path)
	if err != nil {
		err = fmt.Errorf("Error doing HTTP GET: %v", err)
		return nil, err
	}

	vmList := &VMList{}
	err = json.Unmarshal(body, vmList)
	if err != nil {
		err = fmt.Errorf("Error unmarshaling VMs: %v", err)
		return nil, err
	}

	return vmList.VMs, nil
}

// GetVMByName gets a VM by name
func GetVMByName(ovcli *ovclient.Client, vmName string) (*VM, error) {
	vms, err := GetVMs(ovcli, fmt.Sprintf("name=%s", vmName))
	if err != nil {
		return nil, err
	}

	for i, v := range vms {
		if v.Name == vmName {
			return &vms[i], nil
		}
	}

	return nil, &errdefs.NotFoundError{Kind: "vm", Name: vmName}
}
