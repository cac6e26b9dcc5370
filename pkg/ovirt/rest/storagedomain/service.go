// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package storagedomain

import (
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/ovclient"
)

// Service binds the storage domain lookups to a client.
type Service struct {
	OV *ovclient.Client
}

func NewService(ovcli *ovclient.Client) *Service {
	return &Service{OV: ovcli}
}

func (s *Service) Find(name string) (*StorageDomain, error) {
	return GetStorageDomain(s.OV, name)
}
