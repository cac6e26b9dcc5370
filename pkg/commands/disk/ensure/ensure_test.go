// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package ensure

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ovirt-tools/ovdisk/pkg/ovirt/errdefs"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/reconcile"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/disk"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/storagedomain"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/vm"
)

type fakeDisks struct {
	disks   map[string]*disk.Disk
	added   []*disk.CreateDiskRequest
	updated []*disk.UpdateDiskRequest
	removed []string
	nextID  int
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
			if d.Name == strings.TrimPrefix(search, "name=") {
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
		Format:          req.Format,
		Sparse:          req.Sparse,
		ProvisionedSize: req.ProvisionedSize,
		Status:          disk.StatusOK,
		StorageType:     disk.StorageTypeImage,
	}
	if req.LunStorage != nil {
		d.StorageType = disk.StorageTypeLun
		d.LunStorage.LogicalUnitList.LogicalUnits = req.LunStorage.LogicalUnitList.LogicalUnits
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
	if req.ProvisionedSize != "" {
		d.ProvisionedSize = req.ProvisionedSize
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

func (f *fakeDisks) Move(id string, storageDomainID string) error { return nil }
func (f *fakeDisks) Copy(id string, storageDomainID string) error { return nil }

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

type fakeAttachments struct {
	attachments map[string]*vm.DiskAttachment
	added       []*vm.CreateDiskAttachmentRequest
	removed     []string
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
	a := &vm.DiskAttachment{Id: req.Disk.Id, Interface: req.Interface, Active: req.Active}
	a.Disk.Id = req.Disk.Id
	f.attachments[a.Id] = a
	return a, nil
}

func (f *fakeAttachments) Update(id string, req *vm.UpdateDiskAttachmentRequest) (*vm.DiskAttachment, error) {
	a, ok := f.attachments[id]
	if !ok {
		return nil, fmt.Errorf("no attachment with id %s", id)
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

type harness struct {
	disks       *fakeDisks
	attachments *fakeAttachments
	uploads     []string
	svcs        *services
}

func newHarness() *harness {
	h := &harness{
		disks:       &fakeDisks{disks: map[string]*disk.Disk{}},
		attachments: &fakeAttachments{attachments: map[string]*vm.DiskAttachment{}},
	}
	h.svcs = &services{
		disks:   h.disks,
		domains: &fakeDomains{domains: map[string]string{"data": "sd-1"}},
		findVM: func(name string) (*vm.VM, error) {
			if name != "vm1" {
				return nil, &errdefs.NotFoundError{Kind: "vm", Name: name}
			}
			return &vm.VM{Id: "vm-1", Name: "vm1"}, nil
		},
		attachments: func(vmID string) reconcile.AttachmentService {
			return h.attachments
		},
		upload: func(diskID string, imagePath string) error {
			h.uploads = append(h.uploads, imagePath)
			return nil
		},
	}
	return h
}

func fastOpts(opts Options) Options {
	opts.PollInterval = time.Millisecond
	opts.Timeout = time.Second
	return opts
}

func TestEnsureCreatesAndAttaches(t *testing.T) {
	h := newHarness()
	res, err := ensureWithServices(h.svcs, fastOpts(Options{
		Name:   "d1",
		Size:   "10GiB",
		Format: disk.FormatCow,
		VMName: "vm1",
		State:  StatePresent,
	}))
	assert.NoError(t, err)
	assert.True(t, res.Changed)

	assert.Len(t, h.disks.added, 1)
	req := h.disks.added[0]
	assert.Equal(t, "true", req.Sparse)
	assert.Equal(t, fmt.Sprintf("%d", 10*1024*1024*1024), req.ProvisionedSize)

	assert.Len(t, h.attachments.added, 1)
	assert.Equal(t, vm.InterfaceVirtio, h.attachments.added[0].Interface, "The interface defaults to virtio")

	assert.NotNil(t, res.Disk)
	assert.NotNil(t, res.Attachment)
}

func TestEnsureIsIdempotent(t *testing.T) {
	h := newHarness()
	opts := fastOpts(Options{Name: "d1", Size: "1KiB", VMName: "vm1"})

	res, err := ensureWithServices(h.svcs, opts)
	assert.NoError(t, err)
	assert.True(t, res.Changed)

	res, err = ensureWithServices(h.svcs, opts)
	assert.NoError(t, err)
	assert.False(t, res.Changed, "A second identical pass reports no change")
	assert.Len(t, h.disks.added, 1)
	assert.Len(t, h.attachments.added, 1)
}

func TestEnsureAbsentRemoves(t *testing.T) {
	h := newHarness()
	h.disks.Add(&disk.CreateDiskRequest{Name: "d1"})

	res, err := ensureWithServices(h.svcs, fastOpts(Options{Name: "d1", State: StateAbsent}))
	assert.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Len(t, h.disks.removed, 1)
}

func TestEnsureAbsentRequiresIdentity(t *testing.T) {
	h := newHarness()
	h.disks.Add(&disk.CreateDiskRequest{Name: "d1"})

	_, err := ensureWithServices(h.svcs, fastOpts(Options{State: StateAbsent}))
	assert.Error(t, err, "Removal without an id, name, or LUN is rejected")
	assert.Empty(t, h.disks.removed)
}

func TestEnsureAbsentMissingDisk(t *testing.T) {
	h := newHarness()
	res, err := ensureWithServices(h.svcs, fastOpts(Options{Name: "d1", State: StateAbsent}))
	assert.NoError(t, err)
	assert.False(t, res.Changed)
}

func TestEnsureDetaches(t *testing.T) {
	h := newHarness()
	opts := fastOpts(Options{Name: "d1", VMName: "vm1"})

	res, err := ensureWithServices(h.svcs, opts)
	assert.NoError(t, err)

	opts.State = StateDetached
	res, err = ensureWithServices(h.svcs, opts)
	assert.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Len(t, h.attachments.removed, 1)

	// Disk survives the detach
	_, err = h.disks.Get(res.ID)
	assert.NoError(t, err)
}

func TestEnsureUploadsOnCreate(t *testing.T) {
	h := newHarness()
	opts := fastOpts(Options{Name: "d1", ImagePath: "/tmp/boot.qcow2"})

	_, err := ensureWithServices(h.svcs, opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"/tmp/boot.qcow2"}, h.uploads)

	// A second pass finds the disk and skips the upload
	_, err = ensureWithServices(h.svcs, opts)
	assert.NoError(t, err)
	assert.Len(t, h.uploads, 1)

	// Force re-uploads into the existing disk
	opts.Force = true
	_, err = ensureWithServices(h.svcs, opts)
	assert.NoError(t, err)
	assert.Len(t, h.uploads, 2)
}

func TestEnsureUnknownVM(t *testing.T) {
	h := newHarness()
	_, err := ensureWithServices(h.svcs, fastOpts(Options{Name: "d1", VMName: "nosuch"}))
	assert.Error(t, err)

	nfe := &errdefs.NotFoundError{}
	assert.True(t, errors.As(err, &nfe))
	assert.Equal(t, "vm", nfe.Kind)
}

func TestEnsureInvalidState(t *testing.T) {
	h := newHarness()
	_, err := ensureWithServices(h.svcs, fastOpts(Options{Name: "d1", State: "sideways"}))
	assert.Error(t, err)
}

func TestEnsureAttachedRequiresVM(t *testing.T) {
	h := newHarness()
	_, err := ensureWithServices(h.svcs, fastOpts(Options{Name: "d1", State: StateAttached}))
	assert.Error(t, err)
}

func TestEnsureInvalidSize(t *testing.T) {
	h := newHarness()
	_, err := ensureWithServices(h.svcs, fastOpts(Options{Name: "d1", Size: "ten gigs"}))
	assert.Error(t, err)
}

func TestEnsureLunDisk(t *testing.T) {
	h := newHarness()
	opts := fastOpts(Options{
		Name: "lun1",
		LogicalUnit: &reconcile.LogicalUnitSpec{
			ID:      "lu-1",
			Address: "10.0.0.5",
		},
		VMName: "vm1",
	})

	res, err := ensureWithServices(h.svcs, opts)
	assert.NoError(t, err)
	assert.True(t, res.Changed)

	res, err = ensureWithServices(h.svcs, opts)
	assert.NoError(t, err)
	assert.False(t, res.Changed, "The LUN pre-scan finds the wrapping disk")
	assert.Len(t, h.disks.added, 1)
}
