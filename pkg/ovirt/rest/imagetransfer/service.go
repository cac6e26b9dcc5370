// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package imagetransfer

import (
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/ovclient"
)

// Service binds the image transfer session operations to a client.
type Service struct {
	OV *ovclient.Client
}

func NewService(ovcli *ovclient.Client) *Service {
	return &Service{OV: ovcli}
}

func (s *Service) Add(req *CreateImageTransferRequest) (*ImageTransfer, error) {
	return CreateImageTransfer(s.OV, req)
}

func (s *Service) Get(id string) (*ImageTransfer, error) {
	return GetImageTransfer(s.OV, id)
}

func (s *Service) Extend(id string) error {
	return DoImageTransferAction(s.OV, id, ActionExtend)
}

func (s *Service) Finalize(id string) error {
	return DoImageTransferAction(s.OV, id, ActionFinalize)
}

func (s *Service) Cancel(id string) error {
	return DoImageTransferAction(s.OV, id, ActionCancel)
}

func (s *Service) Remove(id string) error {
	return DeleteImageTransfer(s.OV, id)
}
