// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package vm

import (
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/disk"
)

// see https://www.ovirt.org/documentation/doc-REST_API_Guide/#types-disk_interface
const InterfaceVirtio string = "virtio"
const InterfaceIde string = "ide"
const InterfaceVirtioScsi string = "virtio_scsi"

type VM struct {
	Status string `json:"status"`
	Memory string `json:"memory"`
	Origin string `json:"origin"`
	Cpu    struct {
		Topology struct {
			Cores   string `json:"cores"`
			Sockets string `json:"sockets"`
		} `json:"topology"`
	} `json:"cpu"`
	Cluster struct {
		Href string `json:"href"`
		Id   string `json:"id"`
	} `json:"cluster"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Href        string `json:"href"`
	Id          string `json:"id"`
}

type VMList struct {
	VMs []VM `json:"vm"`
}

// CreateDiskAttachmentRequest attaches a disk to a VM.  When the
// embedded disk carries a definition instead of just an id, the engine
// creates the disk together with the attachment.
type CreateDiskAttachmentRequest struct {
	Disk      *disk.CreateDiskRequest `json:"disk"`
	Interface string                  `json:"interface,omitempty"`
	Bootable  string                  `json:"bootable,omitempty"`
	Active    string                  `json:"active,omitempty"`
}

type UpdateDiskAttachmentRequest struct {
	Disk      *disk.UpdateDiskRequest `json:"disk,omitempty"`
	Interface string                  `json:"interface,omitempty"`
	Bootable  string                  `json:"bootable,omitempty"`
}

type DiskAttachment struct {
	Active      string `json:"active"`
	Bootable    string `json:"bootable"`
	Interface   string `json:"interface"`
	LogicalName string `json:"logical_name"`
	PassDiscard string `json:"pass_discard"`
	ReadOnly    string `json:"read_only"`
	Disk        struct {
		Href string `json:"href"`
		Id   string `json:"id"`
	} `json:"disk"`
	Vm struct {
		Href string `json:"href"`
		Id   string `json:"id"`
	} `json:"vm"`
	Href string `json:"href"`
	Id   string `json:"id"`
}

type DiskAttachmentList struct {
	DiskAttachments []DiskAttachment `json:"disk_attachment"`
}
