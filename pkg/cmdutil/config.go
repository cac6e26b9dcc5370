// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package cmdutil

import (
	"github.com/ovirt-tools/ovdisk/pkg/config"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/ovclient"
)

// GetClient reads the endpoint configuration file and returns an
// authenticated client for the engine it names.  The caller owns the
// client and must Close it.
func GetClient(configPath string) (*ovclient.Client, error) {
	cfg, err := config.ParseConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	return ovclient.GetOVClient(cfg.OVirtAPI)
}
