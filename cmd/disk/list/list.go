// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package list

import (
	"fmt"
	"strconv"

	"github.com/gosuri/uitable"
	"github.com/ovirt-tools/ovdisk/cmd/constants"
	"github.com/ovirt-tools/ovdisk/pkg/cmdutil"
	"github.com/ovirt-tools/ovdisk/pkg/commands/disk/list"
	"github.com/ovirt-tools/ovdisk/pkg/util"
	"github.com/spf13/cobra"
)

const (
	CommandName = "list"
	Alias       = "ls"
	helpShort   = "List disks"
	helpLong    = `List the disks known to the engine, optionally restricted by an engine search expression.`
	helpExample = `
ovdisk disk list --config olvm.yaml
ovdisk disk list --config olvm.yaml --search name=d*
`
)

var configPath string
var search string

const (
	flagSearch      = "search"
	flagSearchShort = "s"
	flagSearchHelp  = "An engine search expression, e.g. name=d*"
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
	cmd.Flags().StringVarP(&search, flagSearch, flagSearchShort, "", flagSearchHelp)

	return cmd
}

// RunCmd runs the "ovdisk disk list" command
func RunCmd(cmd *cobra.Command) error {
	ovcli, err := cmdutil.GetClient(configPath)
	if err != nil {
		return err
	}
	defer ovcli.Close()

	disks, err := list.List(ovcli, search)
	if err != nil {
		return err
	}

	table := uitable.New()
	table.AddRow("ID", "NAME", "STATUS", "FORMAT", "SIZE", "STORAGE")

	for _, d := range disks {
		size, _ := strconv.ParseUint(d.ProvisionedSize, 10, 64)
		table.AddRow(d.Id, d.Name, d.Status, d.Format, util.HumanReadableSize(size), d.StorageType)
	}
	fmt.Println(table)

	return nil
}
