// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package constants

const (
	FlagConfig      = "config"
	FlagConfigShort = "c"
	FlagConfigHelp  = "The path to a configuration file that contains the definition of the oVirt API endpoint"

	FlagDiskID     = "id"
	FlagDiskIDHelp = "The id of the disk"

	FlagDiskName      = "name"
	FlagDiskNameShort = "n"
	FlagDiskNameHelp  = "The name of the disk"

	FlagPollInterval     = "poll-interval"
	FlagPollIntervalHelp = "The interval between polls of remote state"

	FlagTimeout     = "timeout"
	FlagTimeoutHelp = "The overall timeout for each wait on remote state"
)
