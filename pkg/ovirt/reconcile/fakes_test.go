// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package reconcile

import (
	"fmt"
	"strings"

	"github.com/ovirt-tools/ovdisk/pkg/ovirt/errdefs"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/disk"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/storagedomain"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/vm"
)

// fakeDisks is an in-memory stand-in for the disk collection.
type fakeDisks struct {
	disks   map[string]*disk.Disk
	added   []*disk.CreateDiskRequest
	updated []*disk.UpdateDiskRequest
	removed []string
	moves   [][2]string
	copies  [][2]string
	nextID  int
}

func newFakeDisks() *fakeDisks {
	return &fakeDisks{disks: map[string]*disk.Disk{}}
}

func (f *fakeDisks) Get(id string) (*disk.Disk, error) {
	d, ok := f.disks[id]
	if !ok {
		return nil, fmt.Errorf("no disk with id %s", id)
	}
	return d, nil
}

func (f *fakeDisks) Search(search string) ([]disk.Disk, error) {
	var out []disk.Disk
	for _, d := range f.disks {
		switch {
		case search == "disk_type=lun":
			if d.StorageType == disk.StorageTypeLun {
				out = append(out, *d)
			}
		case strings.HasPrefix(search, "id="):
			if d.Id == strings.TrimPrefix(search, "id=") {
				out = append(out, *d)
			}
		case strings.HasPrefix(search, "name="):
			// An empty filter matches everything, as on a real engine
			name := strings.TrimPrefix(search, "name=")
			if name == "" || d.Name == name {
				out = append(out, *d)
			}
		}
	}
	return out, nil
}

func (f *fakeDisks) Add(req *disk.CreateDiskRequest) (*disk.Disk, error) {
	f.added = append(f.added, req)
	f.nextID++
	id := req.Id
	if id == "" {
		id = fmt.Sprintf("disk-%d", f.nextID)
	}

	d := &disk.Disk{
		Id:              id,
		Name:            req.Name,
		Description:     req.Description,
		Format:          req.Format,
		Sparse:          req.Sparse,
		ProvisionedSize: req.ProvisionedSize,
		Shareable:       req.Shareable,
		Status:          disk.StatusOK,
		StorageType:     disk.StorageTypeImage,
	}
	if req.LunStorage != nil {
		d.StorageType = disk.StorageTypeLun
		d.LunStorage.Type = req.LunStorage.Type
		d.LunStorage.LogicalUnitList.LogicalUnits = req.LunStorage.LogicalUnitList.LogicalUnits
	}
	if req.StorageDomainList != nil {
		for _, sd := range req.StorageDomainList.StorageDomains {
			addDomain(d, sd.Id)
		}
	}
	f.disks[id] = d
	return d, nil
}

func (f *fakeDisks) Update(id string, req *disk.UpdateDiskRequest) (*disk.Disk, error) {
	d, ok := f.disks[id]
	if !ok {
		return nil, fmt.Errorf("no disk with id %s", id)
	}
	f.updated = append(f.updated, req)
	if req.Description != "" {
		d.Description = req.Description
	}
	if req.ProvisionedSize != "" {
		d.ProvisionedSize = req.ProvisionedSize
	}
	if req.Shareable != "" {
		d.Shareable = req.Shareable
	}
	return d, nil
}

func (f *fakeDisks) Remove(id string) error {
	if _, ok := f.disks[id]; !ok {
		return fmt.Errorf("no disk with id %s", id)
	}
	f.removed = append(f.removed, id)
	delete(f.disks, id)
	return nil
}

func (f *fakeDisks) Move(id string, storageDomainID string) error {
	d, ok := f.disks[id]
	if !ok {
		return fmt.Errorf("no disk with id %s", id)
	}
	f.moves = append(f.moves, [2]string{id, storageDomainID})
	d.StorageDomains.StorageDomain = nil
	addDomain(d, storageDomainID)
	return nil
}

func (f *fakeDisks) Copy(id string, storageDomainID string) error {
	d, ok := f.disks[id]
	if !ok {
		return fmt.Errorf("no disk with id %s", id)
	}
	f.copies = append(f.copies, [2]string{id, storageDomainID})
	addDomain(d, storageDomainID)
	return nil
}

func addDomain(d *disk.Disk, id string) {
	d.StorageDomains.StorageDomain = append(d.StorageDomains.StorageDomain, struct {
		Href string `json:"href"`
		Id   string `json:"id"`
	}{Id: id})
}

// fakeDomains resolves storage domain names from a fixed map.
type fakeDomains struct {
	domains map[string]string
}

func (f *fakeDomains) Find(name string) (*storagedomain.StorageDomain, error) {
	id, ok := f.domains[name]
	if !ok {
		return nil, &errdefs.NotFoundError{Kind: "storage domain", Name: name}
	}
	return &storagedomain.StorageDomain{Name: name, Id: id}, nil
}

// fakeAttachments is an in-memory stand-in for one VM's attachment
// collection.
type fakeAttachments struct {
	attachments map[string]*vm.DiskAttachment
	added       []*vm.CreateDiskAttachmentRequest
	updated     []*vm.UpdateDiskAttachmentRequest
	removed     []string
}

func newFakeAttachments() *fakeAttachments {
	return &fakeAttachments{attachments: map[string]*vm.DiskAttachment{}}
}

func (f *fakeAttachments) List() ([]vm.DiskAttachment, error) {
	var out []vm.DiskAttachment
	for _, a := range f.attachments {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAttachments) Add(req *vm.CreateDiskAttachmentRequest) (*vm.DiskAttachment, error) {
	f.added = append(f.added, req)
	a := &vm.DiskAttachment{
		Id:        req.Disk.Id,
		Interface: req.Interface,
		Bootable:  req.Bootable,
		Active:    req.Active,
	}
	a.Disk.Id = req.Disk.Id
	f.attachments[a.Id] = a
	return a, nil
}

func (f *fakeAttachments) Update(id string, req *vm.UpdateDiskAttachmentRequest) (*vm.DiskAttachment, error) {
	a, ok := f.attachments[id]
	if !ok {
		return nil, fmt.Errorf("no attachment with id %s", id)
	}
	f.updated = append(f.updated, req)
	if req.Interface != "" {
		a.Interface = req.Interface
	}
	if req.Bootable != "" {
		a.Bootable = req.Bootable
	}
	return a, nil
}

func (f *fakeAttachments) Remove(id string) error {
	if _, ok := f.attachments[id]; !ok {
		return fmt.Errorf("no attachment with id %s", id)
	}
	f.removed = append(f.removed, id)
	delete(f.attachments, id)
	return nil
}
