// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package disk

import (
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/ovclient"
)

// Service binds the disk collection operations to a client so that the
// reconcilers can depend on a narrow interface.
type Service struct {
	OV *ovclient.Client
}

func NewService(ovcli *ovclient.Client) *Service {
	return &Service{OV: ovcli}
}

func (s *Service) Get(id string) (*Disk, error) {
	return GetDisk(s.OV, id)
}

func (s *Service) Search(search string) ([]Disk, error) {
	return GetDisks(s.OV, search)
}

func (s *Service) Add(req *CreateDiskRequest) (*Disk, error) {
	return CreateDisk(s.OV, req)
}

func (s *Service) Update(id string, req *UpdateDiskRequest) (*Disk, error) {
	return UpdateDisk(s.OV, id, req)
}

func (s *Service) Remove(id string) error {
	return DeleteDisk(s.OV, id)
}

func (s *Service) Move(id string, storageDomainID string) error {
	return MoveDisk(s.OV, id, storageDomainID)
}

func (s *Service) Copy(id string, storageDomainID string) error {
	return CopyDisk(s.OV, id, storageDomainID)
}
