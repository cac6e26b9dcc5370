// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package reconcile

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ovirt-tools/ovdisk/pkg/ovirt/errdefs"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/disk"
)

func newDiskReconciler(disks *fakeDisks, domains *fakeDomains, spec DiskSpec) *DiskReconciler {
	return &DiskReconciler{
		Disks:        disks,
		Domains:      domains,
		Spec:         spec,
		PollInterval: time.Millisecond,
		Timeout:      time.Second,
	}
}

func TestDiskReconcileCreates(t *testing.T) {
	disks := newFakeDisks()
	domains := &fakeDomains{domains: map[string]string{"data": "sd-1"}}
	r := newDiskReconciler(disks, domains, DiskSpec{
		Name:          "d1",
		Format:        disk.FormatCow,
		SizeBytes:     10 * 1024 * 1024 * 1024,
		StorageDomain: "data",
	})

	res, err := r.Reconcile(nil)
	assert.NoError(t, err)
	assert.True(t, res.Changed)
	assert.True(t, res.Created)

	assert.Len(t, disks.added, 1)
	req := disks.added[0]
	assert.Equal(t, "d1", req.Name)
	assert.Equal(t, disk.FormatCow, req.Format)
	assert.Equal(t, "true", req.Sparse, "cow disks are thin provisioned")
	assert.Equal(t, "10737418240", req.ProvisionedSize)
	assert.Equal(t, "sd-1", req.StorageDomainList.StorageDomains[0].Id)
}

func TestDiskReconcileRawIsPreallocated(t *testing.T) {
	disks := newFakeDisks()
	r := newDiskReconciler(disks, &fakeDomains{}, DiskSpec{
		Name:   "d1",
		Format: disk.FormatRaw,
	})

	_, err := r.Reconcile(nil)
	assert.NoError(t, err)
	assert.Equal(t, "false", disks.added[0].Sparse)
}

func TestDiskReconcileNoChange(t *testing.T) {
	disks := newFakeDisks()
	disks.Add(&disk.CreateDiskRequest{Name: "d1", ProvisionedSize: "1024"})
	r := newDiskReconciler(disks, &fakeDomains{}, DiskSpec{Name: "d1", SizeBytes: 1024})

	res, err := r.Reconcile(nil)
	assert.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Empty(t, disks.updated)
}

func TestDiskReconcileGrows(t *testing.T) {
	disks := newFakeDisks()
	disks.Add(&disk.CreateDiskRequest{Name: "d1", ProvisionedSize: "1024"})
	r := newDiskReconciler(disks, &fakeDomains{}, DiskSpec{Name: "d1", SizeBytes: 4096})

	res, err := r.Reconcile(nil)
	assert.NoError(t, err)
	assert.True(t, res.Changed)
	assert.False(t, res.Created)
	assert.Len(t, disks.updated, 1)
	assert.Equal(t, "4096", disks.updated[0].ProvisionedSize)
}

func TestDiskReconcileNeverShrinks(t *testing.T) {
	disks := newFakeDisks()
	disks.Add(&disk.CreateDiskRequest{Name: "d1", ProvisionedSize: "4096"})
	r := newDiskReconciler(disks, &fakeDomains{}, DiskSpec{Name: "d1", SizeBytes: 1024})

	res, err := r.Reconcile(nil)
	assert.NoError(t, err)
	assert.False(t, res.Changed, "A smaller declared size is already satisfied")
	assert.Empty(t, disks.updated)
}

func TestDiskReconcileUpdatesDescription(t *testing.T) {
	disks := newFakeDisks()
	disks.Add(&disk.CreateDiskRequest{Name: "d1", Description: "old"})
	desc := "new"
	r := newDiskReconciler(disks, &fakeDomains{}, DiskSpec{Name: "d1", Description: &desc})

	res, err := r.Reconcile(nil)
	assert.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, "new", disks.updated[0].Description)
}

func TestDiskReconcileUnknownStorageDomain(t *testing.T) {
	disks := newFakeDisks()
	r := newDiskReconciler(disks, &fakeDomains{}, DiskSpec{Name: "d1", StorageDomain: "nosuch"})

	_, err := r.Reconcile(nil)
	assert.Error(t, err)
	nfe := &errdefs.NotFoundError{}
	assert.True(t, errors.As(err, &nfe))
	assert.Empty(t, disks.added)
}

func TestDiskReconcileLunCreate(t *testing.T) {
	disks := newFakeDisks()
	r := newDiskReconciler(disks, &fakeDomains{}, DiskSpec{
		Name: "lun1",
		LogicalUnit: &LogicalUnitSpec{
			ID:      "lu-1",
			Address: "10.0.0.5",
			Target:  "iqn.2025-01.example:storage",
		},
	})

	res, err := r.Reconcile(nil)
	assert.NoError(t, err)
	assert.True(t, res.Created)

	req := disks.added[0]
	assert.Equal(t, "iscsi", req.LunStorage.Type, "Transport type defaults to iscsi")
	lu := req.LunStorage.LogicalUnitList.LogicalUnits[0]
	assert.Equal(t, "lu-1", lu.Id)
	assert.Equal(t, "3260", lu.Port, "LUN port defaults to 3260")
	assert.Empty(t, req.ProvisionedSize, "LUN disks carry no provisioned size")
}

func TestDiskReconcileLunIsStable(t *testing.T) {
	disks := newFakeDisks()
	spec := DiskSpec{Name: "lun1", LogicalUnit: &LogicalUnitSpec{ID: "lu-1"}}
	r := newDiskReconciler(disks, &fakeDomains{}, spec)

	res, err := r.Reconcile(nil)
	assert.NoError(t, err)

	existing, err := r.FindByLun("lu-1")
	assert.NoError(t, err)
	assert.NotNil(t, existing)
	assert.Equal(t, res.ID, existing.Id)

	res, err = r.Reconcile(existing)
	assert.NoError(t, err)
	assert.False(t, res.Changed, "A second pass over the same LUN does nothing")
}

func TestFindByLunMissing(t *testing.T) {
	disks := newFakeDisks()
	r := newDiskReconciler(disks, &fakeDomains{}, DiskSpec{})

	existing, err := r.FindByLun("lu-1")
	assert.NoError(t, err)
	assert.Nil(t, existing)
}

func TestDiskRemove(t *testing.T) {
	disks := newFakeDisks()
	created, _ := disks.Add(&disk.CreateDiskRequest{Name: "d1"})
	r := newDiskReconciler(disks, &fakeDomains{}, DiskSpec{Name: "d1"})

	res, err := r.Remove(nil)
	assert.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{created.Id}, disks.removed)
}

func TestDiskRemoveMissing(t *testing.T) {
	disks := newFakeDisks()
	r := newDiskReconciler(disks, &fakeDomains{}, DiskSpec{Name: "d1"})

	res, err := r.Remove(nil)
	assert.NoError(t, err, "Removing an absent disk is not an error")
	assert.False(t, res.Changed)
}

// An empty spec must never reach the search; an empty name filter can
// match the whole collection, which would delete an arbitrary disk.
func TestDiskRemoveRequiresIdentity(t *testing.T) {
	disks := newFakeDisks()
	disks.Add(&disk.CreateDiskRequest{Name: "d1"})
	disks.Add(&disk.CreateDiskRequest{Name: "d2"})
	r := newDiskReconciler(disks, &fakeDomains{}, DiskSpec{})

	res, err := r.Remove(nil)
	assert.Error(t, err)
	assert.False(t, res.Changed)
	assert.Empty(t, disks.removed)
}

// A LUN spec with no pre-scan hit has nothing to remove; it must not
// fall back to a name search.
func TestDiskRemoveLunWithoutMatch(t *testing.T) {
	disks := newFakeDisks()
	disks.Add(&disk.CreateDiskRequest{Name: "d1"})
	r := newDiskReconciler(disks, &fakeDomains{}, DiskSpec{LogicalUnit: &LogicalUnitSpec{ID: "lu-1"}})

	res, err := r.Remove(nil)
	assert.NoError(t, err, "Removing an absent disk is not an error")
	assert.False(t, res.Changed)
	assert.Empty(t, disks.removed)
}

func TestUpdateStoragePlacementMoves(t *testing.T) {
	disks := newFakeDisks()
	domains := &fakeDomains{domains: map[string]string{"data": "sd-1", "data2": "sd-2"}}
	created, _ := disks.Add(&disk.CreateDiskRequest{
		Name:              "d1",
		StorageDomainList: &disk.StorageDomainList{StorageDomains: []disk.StorageDomain{{Id: "sd-1"}}},
	})
	r := newDiskReconciler(disks, domains, DiskSpec{Name: "d1", StorageDomain: "data2"})

	changed, err := r.UpdateStoragePlacement(created.Id)
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, [][2]string{{created.Id, "sd-2"}}, disks.moves)
}

func TestUpdateStoragePlacementAlreadyPlaced(t *testing.T) {
	disks := newFakeDisks()
	domains := &fakeDomains{domains: map[string]string{"data": "sd-1"}}
	created, _ := disks.Add(&disk.CreateDiskRequest{
		Name:              "d1",
		StorageDomainList: &disk.StorageDomainList{StorageDomains: []disk.StorageDomain{{Id: "sd-1"}}},
	})
	r := newDiskReconciler(disks, domains, DiskSpec{Name: "d1", StorageDomain: "data"})

	changed, err := r.UpdateStoragePlacement(created.Id)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, disks.moves)
}

// Copies are issued on every call; the engine offers no way to tell a
// previous copy apart, so no idempotence is expected here.
func TestUpdateStoragePlacementCopies(t *testing.T) {
	disks := newFakeDisks()
	domains := &fakeDomains{domains: map[string]string{"data2": "sd-2", "data3": "sd-3"}}
	created, _ := disks.Add(&disk.CreateDiskRequest{Name: "d1"})
	r := newDiskReconciler(disks, domains, DiskSpec{Name: "d1", StorageDomains: []string{"data2", "data3"}})

	changed, err := r.UpdateStoragePlacement(created.Id)
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, disks.copies, 2)

	_, err = r.UpdateStoragePlacement(created.Id)
	assert.NoError(t, err)
	assert.Len(t, disks.copies, 4)
}

func TestUpdateStoragePlacementSkipsLun(t *testing.T) {
	disks := newFakeDisks()
	created, _ := disks.Add(&disk.CreateDiskRequest{
		Name:       "lun1",
		LunStorage: &disk.HostStorage{Type: disk.LunTypeIscsi},
	})
	r := newDiskReconciler(disks, &fakeDomains{}, DiskSpec{Name: "lun1", StorageDomain: "data"})

	changed, err := r.UpdateStoragePlacement(created.Id)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, disks.moves)
}

func TestDiskSpecValidate(t *testing.T) {
	spec := DiskSpec{}
	assert.Error(t, spec.Validate())

	spec = DiskSpec{Name: "d1"}
	assert.NoError(t, spec.Validate())

	spec = DiskSpec{LogicalUnit: &LogicalUnitSpec{}}
	assert.Error(t, spec.Validate())

	spec = DiskSpec{LogicalUnit: &LogicalUnitSpec{ID: "lu-1"}}
	assert.NoError(t, spec.Validate())
}
