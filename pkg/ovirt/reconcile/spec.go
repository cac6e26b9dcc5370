// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package reconcile

import (
	"fmt"
	"strconv"

	"github.com/ovirt-tools/ovdisk/pkg/constants"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/rest/disk"
)

// DiskSpec is the declared state of a single disk.  A disk is either
// image-backed (lives in a storage domain) or LUN-backed (LogicalUnit
// is set); the two are mutually exclusive.
type DiskSpec struct {
	// ID of the disk.  Either ID or Name identifies an image-backed
	// disk; LUN-backed disks are identified by the LUN id instead.
	ID   string
	Name string

	Description *string

	// Format is "raw" or "cow".  A cow disk is created sparse, a raw
	// disk preallocated.  The format cannot be changed once the disk
	// exists and is ignored when deciding whether an update is needed.
	Format string

	// SizeBytes is the provisioned size.  Once a disk exists its size
	// only grows; a smaller declared size is never sent to the engine.
	SizeBytes int64

	Shareable *bool

	// StorageDomain is the domain the disk should reside in
	StorageDomain string

	// StorageDomains are additional domains the disk is copied to on
	// every invocation.  The copy action is not idempotent.
	StorageDomains []string

	LogicalUnit *LogicalUnitSpec
}

// LogicalUnitSpec describes a LUN to attach directly.
type LogicalUnitSpec struct {
	ID          string
	Address     string
	Port        int
	Target      string
	Username    string
	Password    string
	StorageType string
}

// Validate checks the fields needed to build a disk entity.
func (s *DiskSpec) Validate() error {
	if s.LogicalUnit != nil {
		if s.LogicalUnit.ID == "" {
			return fmt.Errorf("a logical unit requires an id")
		}
		return nil
	}
	if s.ID == "" && s.Name == "" {
		return fmt.Errorf("a disk requires an id or a name")
	}
	return nil
}

// sparse reports whether the disk is thin provisioned.  Everything but
// raw is sparse.
func (s *DiskSpec) sparse() bool {
	return s.Format != disk.FormatRaw
}

// buildCreateRequest constructs the full desired disk representation.
// For a LUN-backed disk the storage fields describe the LUN instead of
// a provisioned size.
func (s *DiskSpec) buildCreateRequest(storageDomainID string) *disk.CreateDiskRequest {
	req := &disk.CreateDiskRequest{
		Id:   s.ID,
		Name: s.Name,
	}
	if s.Description != nil {
		req.Description = *s.Description
	}

	if s.LogicalUnit != nil {
		lu := s.LogicalUnit
		storageType := lu.StorageType
		if storageType == "" {
			storageType = constants.DefaultLunType
		}
		port := lu.Port
		if port == 0 {
			port = constants.DefaultLunPort
		}
		req.LunStorage = &disk.HostStorage{
			Type: storageType,
			LogicalUnitList: disk.LogicalUnitList{
				LogicalUnits: []disk.LogicalUnit{
					{
						Id:       lu.ID,
						Address:  lu.Address,
						Port:     strconv.Itoa(port),
						Target:   lu.Target,
						Username: lu.Username,
						Password: lu.Password,
					},
				},
			},
		}
		return req
	}

	if s.Format != "" {
		req.Format = s.Format
		req.Sparse = strconv.FormatBool(s.sparse())
	}
	if s.SizeBytes > 0 {
		req.ProvisionedSize = strconv.FormatInt(s.SizeBytes, 10)
	}
	if s.Shareable != nil {
		req.Shareable = strconv.FormatBool(*s.Shareable)
	}
	if storageDomainID != "" {
		req.StorageDomainList = &disk.StorageDomainList{
			StorageDomains: []disk.StorageDomain{{Id: storageDomainID}},
		}
	}
	return req
}

// buildUpdateRequest constructs the update payload for an existing
// disk.  The provisioned size is only included when it grows; the
// engine cannot shrink a disk and no decrease is ever sent.
func (s *DiskSpec) buildUpdateRequest(live *disk.Disk) *disk.UpdateDiskRequest {
	req := &disk.UpdateDiskRequest{}
	if s.Description != nil {
		req.Description = *s.Description
	}
	if s.SizeBytes > parseInt(live.ProvisionedSize) {
		req.ProvisionedSize = strconv.FormatInt(s.SizeBytes, 10)
	}
	if s.Shareable != nil {
		req.Shareable = strconv.FormatBool(*s.Shareable)
	}
	return req
}

// updateCheck reports whether the live disk already matches the spec
// for update purposes.  The format is create-only and not considered.
func (s *DiskSpec) updateCheck(live *disk.Disk) bool {
	if s.Description != nil && *s.Description != live.Description {
		return false
	}
	// Sizes only grow; a smaller declared size is already satisfied
	if s.SizeBytes > parseInt(live.ProvisionedSize) {
		return false
	}
	if s.Shareable != nil && *s.Shareable != parseBool(live.Shareable) {
		return false
	}
	return true
}

// parseInt reads one of the engine's string-rendered numbers.  An
// empty or malformed value reads as zero.
func parseInt(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseBool reads one of the engine's string-rendered booleans.
func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}
