// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package vm

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/ovirt-tools/ovdisk/pkg/ovirt/ovclient"
	"k8s.io/apimachinery/pkg/util/json"
)

// GetDiskAttachments gets the disk attachments of a VM.
func GetDiskAttachments(ovcli *ovclient.Client, vmID string) ([]DiskAttachment, error) {
	path := fmt.Sprintf("/api/vms/%s/diskattachments", vmID)

	body, err := ovcli.REST.Get(ovcli.AccessToken, path)
	if err != nil {
		err = fmt.Errorf("Error doing HTTP GET: %v", err)
		return nil, err
	}

	attList := &DiskAttachmentList{}
	err = json.Unmarshal(body, attList)
	if err != nil {
		err = fmt.Errorf("Error unmarshaling DiskAttachments: %v", err)
		return nil, err
	}

	return attList.DiskAttachments, nil
}

// CreateDiskAttachment attaches a disk to a VM.
func CreateDiskAttachment(ovcli *ovclient.Client, vmID string, req *CreateDiskAttachmentRequest) (*DiskAttachment, error) {
	path := fmt.Sprintf("/api/vms/%s/diskattachments", vmID)

	jsonPayload, err := json.Marshal(req)
	if err != nil {
		err := fmt.Errorf("Error marshalling CreateDiskAttachmentRequest for VM %s: %v", vmID, err)
		return nil, err
	}

	h := &http.Header{}
	ovcli.REST.HeaderAcceptJSON(h)
	ovcli.REST.HeaderContentJSON(h)
	ovcli.REST.HeaderBearerToken(h, ovcli.AccessToken)
	body, statusCode, err := ovcli.REST.Post(path, bytes.NewReader(jsonPayload), h)
	if err != nil {
		err = fmt.Errorf("Error calling HTTP POST to create a disk attachment: %v", err)
		return nil, err
	}

	if statusCode != 200 && statusCode != 201 && statusCode != 202 {
		err = fmt.Errorf("Error calling HTTP POST to create a disk attachment returned status code %v", statusCode)
		return nil, err
	}

	att := &DiskAttachment{}
	err = json.Unmarshal(body, att)
	if err != nil {
		err = fmt.Errorf("Error unmarshalling create disk attachment response: %v", err)
		return nil, err
	}

	return att, nil
}

// UpdateDiskAttachment updates an existing disk attachment and,
// through the embedded disk, the attached disk itself.
func UpdateDiskAttachment(ovcli *ovclient.Client, vmID string, attID string, req *UpdateDiskAttachmentRequest) (*DiskAttachment, error) {
	path := fmt.Sprintf("/api/vms/%s/diskattachments/%s", vmID, attID)

	jsonPayload, err := json.Marshal(req)
	if err != nil {
		err := fmt.Errorf("Error marshalling UpdateDiskAttachmentRequest for VM %s: %v", vmID, err)
		return nil, err
	}

	h := &http.Header{}
	ovcli.REST.HeaderAcceptJSON(h)
	ovcli.REST.HeaderContentJSON(h)
	ovcli.REST.HeaderBearerToken(h, ovcli.AccessToken)
	body, statusCode, err := ovcli.REST.Put(path, bytes.NewReader(jsonPayload), h)
	if err != nil {
		err = fmt.Errorf("Error calling HTTP PUT to update a disk attachment: %v", err)
		return nil, err
	}

	if statusCode != 200 && statusCode != 201 && statusCode != 202 {
		err = fmt.Errorf("Error calling HTTP PUT to update a disk attachment returned status code %v", statusCode)
		return nil, err
	}

	att := &DiskAttachment{}
	err = json.Unmarshal(body, att)
	if err != nil {
		err = fmt.Errorf("Error unmarshalling update disk attachment response: %v", err)
		return nil, err
	}

	return att, nil
}

// DeleteDiskAttachment detaches a disk from a VM.  The disk itself is
// left in place.
func DeleteDiskAttachment(ovcli *ovclient.Client, vmID string, attID string) error {
	path := fmt.Sprintf("/api/vms/%s/diskattachments/%s", vmID, attID)

	h := &http.Header{}
	ovcli.REST.HeaderAcceptJSON(h)
	ovcli.REST.HeaderContentJSON(h)
	ovcli.REST.HeaderBearerToken(h, ovcli.AccessToken)
	_, err := ovcli.REST.Delete(path, h)
	if err != nil {
		err = fmt.Errorf("Error doing HTTP DELETE of the disk attachment %s: %v", attID, err)
		return err
	}

	return nil
}
