// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package vm

import (
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/ovclient"
)

// AttachmentService binds the disk attachment operations of one VM to
// a client.
type AttachmentService struct {
	OV   *ovclient.Client
	VMID string
}

func NewAttachmentService(ovcli *ovclient.Client, vmID string) *AttachmentService {
	return &AttachmentService{OV: ovcli, VMID: vmID}
}

func (s *AttachmentService) List() ([]DiskAttachment, error) {
	return GetDiskAttachments(s.OV, s.VMID)
}

func (s *AttachmentService) Add(req *CreateDiskAttachmentRequest) (*DiskAttachment, error) {
	return CreateDiskAttachment(s.OV, s.VMID, req)
}

func (s *AttachmentService) Update(id string, req *UpdateDiskAttachmentRequest) (*DiskAttachment, error) {
	return UpdateDiskAttachment(s.OV, s.VMID, id, req)
}

func (s *AttachmentService) Remove(id string) error {
	return DeleteDiskAttachment(s.OV, s.VMID, id)
}
