// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package config

import (
	"fmt"
	"os"

	"github.com/ovirt-tools/ovdisk/pkg/config/types"
	"gopkg.in/yaml.v3"
)

// ParseConfig takes a yaml-encoded string and parses it into a
// Config structure.
func ParseConfig(in string) (*types.Config, error) {
	ret := &types.Config{}
	err := yaml.Unmarshal([]byte(in), ret)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// ParseConfigFile takes the path to a file, reads the contents, and
// parses it into a Config structure.
func ParseConfigFile(configPath string) (*types.Config, error) {
	configBytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	conf, err := ParseConfig(string(configBytes))
	if err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %s", configPath, err.Error())
	}

	if conf.OVirtAPI.ServerURL == "" {
		return nil, fmt.Errorf("config file %s does not set ovirtApi.serverUrl", configPath)
	}
	return conf, nil
}
