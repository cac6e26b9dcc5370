// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package constants

import "time"

const (
	// Environment variables used to pass oVirt credentials
	EnvUsername = "OVDISK_USERNAME"
	EnvPassword = "OVDISK_PASSWORD"
	EnvScope    = "OVDISK_SCOPE"

	// Default OAuth2 scope when OVDISK_SCOPE is unset
	DefaultScope = "ovirt-app-api"

	// Disk defaults
	DefaultDiskFormat    = "cow"
	DefaultDiskInterface = "virtio"
	DefaultLunPort       = 3260
	DefaultLunType       = "iscsi"

	// UploadChunkSize is the number of bytes sent per upload request
	UploadChunkSize int64 = 8 * 1024 * 1024

	// Poll defaults for the bounded wait loops
	DefaultPollInterval = 2 * time.Second
	DefaultTimeout      = 30 * time.Minute
)
