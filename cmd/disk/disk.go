// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package disk

import (
	"github.com/ovirt-tools/ovdisk/cmd/common"
	"github.com/ovirt-tools/ovdisk/cmd/disk/ensure"
	"github.com/ovirt-tools/ovdisk/cmd/disk/list"
	"github.com/ovirt-tools/ovdisk/cmd/disk/rm"
	"github.com/ovirt-tools/ovdisk/pkg/cmdutil"
	"github.com/spf13/cobra"
)

const (
	CommandName = "disk"
	helpShort   = "Manage oVirt disks"
	helpLong    = `Manage oVirt disks by converging them to a declared state: create, resize, relocate, upload images into, and attach or detach them.`
	helpExample = `
ovdisk disk <subcommand>
`
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       CommandName,
		Short:     helpShort,
		Long:      helpLong,
		Args:      common.ArgsCheck,
		ValidArgs: []string{ensure.CommandName, rm.CommandName, list.CommandName},
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return RunCmd(cmd)
	}
	cmdutil.SilenceUsage(cmd)
	cmd.Example = helpExample

	cmd.AddCommand(ensure.NewCmd())
	cmd.AddCommand(rm.NewCmd())
	cmd.AddCommand(list.NewCmd())

	return cmd
}

// RunCmd runs the "ovdisk disk" command
func RunCmd(cmd *cobra.Command) error {
	return nil
}
