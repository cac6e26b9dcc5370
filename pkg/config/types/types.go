// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package types

// Config is the root of the ovdisk configuration file.
type Config struct {
	OVirtAPI OVirtAPI `yaml:"ovirtApi"`
}

// OVirtAPI describes the oVirt engine endpoint to manage.
type OVirtAPI struct {
	// ServerURL is the base URL of the oVirt engine, e.g. https://ovirt.example.com
	ServerURL string `yaml:"serverUrl"`

	// CAFile is the path to a PEM bundle that is trusted when talking
	// to the engine and to the image transfer proxy.  Ignored when
	// InsecureSkipTLSVerify is set.
	CAFile string `yaml:"caFile"`

	// InsecureSkipTLSVerify disables certificate and hostname
	// verification for the engine and the transfer proxy.
	InsecureSkipTLSVerify bool `yaml:"insecureSkipTlsVerify"`
}
