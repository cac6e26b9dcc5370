// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package rm

import (
	"github.com/ovirt-tools/ovdisk/cmd/constants"
	"github.com/ovirt-tools/ovdisk/pkg/cmdutil"
	"github.com/ovirt-tools/ovdisk/pkg/commands/disk/rm"
	"github.com/spf13/cobra"
)

const (
	CommandName = "rm"
	Alias       = "remove"
	helpShort   = "Remove a disk"
	helpLong    = `Remove a disk.  The engine detaches the disk from any VMs before deleting it.  Removing a disk that does not exist is not an error.`
	helpExample = `
ovdisk disk rm --config olvm.yaml --name d1
`
)

var configPath string
var options rm.Options

const (
	flagLunID     = "lun-id"
	flagLunIDHelp = "The id of the logical unit backing the disk"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     CommandName,
		Aliases: []string{Alias},
		Short:   helpShort,
		Long:    helpLong,
		Args:    cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return RunCmd(cmd)
	}
	cmd.Example = helpExample
	cmdutil.SilenceUsage(cmd)

	cmd.Flags().StringVarP(&configPath, constants.FlagConfig, constants.FlagConfigShort, "", constants.FlagConfigHelp)
	cmd.MarkFlagRequired(constants.FlagConfig)
	cmd.Flags().StringVarP(&options.ID, constants.FlagDiskID, "", "", constants.FlagDiskIDHelp)
	cmd.Flags().StringVarP(&options.Name, constants.FlagDiskName, constants.FlagDiskNameShort, "", constants.FlagDiskNameHelp)
	cmd.Flags().StringVarP(&options.LunID, flagLunID, "", "", flagLunIDHelp)
	cmd.MarkFlagsOneRequired(constants.FlagDiskID, constants.FlagDiskName, flagLunID)

	return cmd
}

// RunCmd runs the "ovdisk disk rm" command
func RunCmd(cmd *cobra.Command) error {
	ovcli, err := cmdutil.GetClient(configPath)
	if err != nil {
		return err
	}
	defer ovcli.Close()

	_, err = rm.Remove(ovcli, options)
	return err
}
