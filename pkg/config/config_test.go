// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConfig(t *testing.T) {
	conf, err := ParseConfig(`
ovirtApi:
  serverUrl: https://engine.example.com/ovirt-engine
  caFile: /etc/pki/engine/ca.pem
`)
	assert.NoError(t, err)
	assert.Equal(t, "https://engine.example.com/ovirt-engine", conf.OVirtAPI.ServerURL)
	assert.Equal(t, "/etc/pki/engine/ca.pem", conf.OVirtAPI.CAFile)
	assert.False(t, conf.OVirtAPI.InsecureSkipTLSVerify)
}

func TestParseConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "olvm.yaml")
	err := os.WriteFile(path, []byte(`
ovirtApi:
  serverUrl: https://engine.example.com/ovirt-engine
  insecureSkipTlsVerify: true
`), 0600)
	assert.NoError(t, err)

	conf, err := ParseConfigFile(path)
	assert.NoError(t, err)
	assert.True(t, conf.OVirtAPI.InsecureSkipTLSVerify)
}

func TestParseConfigFileMissingServer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "olvm.yaml")
	err := os.WriteFile(path, []byte("ovirtApi: {}\n"), 0600)
	assert.NoError(t, err)

	_, err = ParseConfigFile(path)
	assert.Error(t, err)
}
