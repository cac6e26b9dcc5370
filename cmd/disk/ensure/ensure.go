// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package ensure

import (
	"strings"

	"github.com/ovirt-tools/ovdisk/cmd/constants"
	"github.com/ovirt-tools/ovdisk/pkg/cmdutil"
	"github.com/ovirt-tools/ovdisk/pkg/commands/disk/ensure"
	pkgconst "github.com/ovirt-tools/ovdisk/pkg/constants"
	"github.com/ovirt-tools/ovdisk/pkg/ovirt/reconcile"
	"github.com/spf13/cobra"
)

const (
	CommandName = "ensure"
	helpShort   = "Converge a disk to a declared state"
	helpLong    = `Converge a disk to a declared state: create it if it is missing, grow it if it is too small, move or copy it between storage domains, upload an image into it, and attach it to or detach it from a VM.`
	helpExample = `
ovdisk disk ensure --config olvm.yaml --name d1 --size 10GiB --vm-name vm1
ovdisk disk ensure --config olvm.yaml --name d1 --image ~/boot.qcow2 --force
ovdisk disk ensure --config olvm.yaml --name d1 --vm-name vm1 --state detached
`
)

var configPath string
var options ensure.Options
var lun reconcile.LogicalUnitSpec
var description string
var bootable bool
var shareable bool

const (
	flagVMID     = "vm-id"
	flagVMIDHelp = "The id of the VM to attach the disk to"

	flagVMName     = "vm-name"
	flagVMNameHelp = "The name of the VM to attach the disk to"

	flagState     = "state"
	flagStateHelp = "The desired state of the disk, one of present, absent, attached, or detached"

	flagSize      = "size"
	flagSizeShort = "s"
	flagSizeHelp  = "The provisioned size of the disk, e.g. 10GiB"

	flagInterface      = "interface"
	flagInterfaceShort = "i"
	flagInterfaceHelp  = "The bus the disk is presented on, one of virtio, ide, or virtio_scsi"

	flagFormat     = "format"
	flagFormatHelp = "The format of the disk, raw or cow"

	flagDescription     = "description"
	flagDescriptionHelp = "A description for the disk"

	flagBootable     = "bootable"
	flagBootableHelp = "Mark the disk bootable"

	flagShareable     = "shareable"
	flagShareableHelp = "Allow the disk to be attached to multiple VMs"

	flagStorageDomain     = "storage-domain"
	flagStorageDomainHelp = "The name of the storage domain the disk resides in"

	flagStorageDomains     = "storage-domains"
	flagStorageDomainsHelp = "Names of additional storage domains to copy the disk to"

	flagImage     = "image"
	flagImageHelp = "The path to a local image to upload into the disk"

	flagForce     = "force"
	flagForceHelp = "Upload the image even if the disk already exists"

	flagLunID      = "lun-id"
	flagLunIDHelp  = "The id of the logical unit backing the disk"
	flagLunAddress = "lun-address"
	flagLunAddrH   = "The address of the storage server holding the logical unit"
	flagLunPort    = "lun-port"
	flagLunPortH   = "The port of the storage server holding the logical unit"
	flagLunTarget  = "lun-target"
	flagLunTargetH = "The iSCSI target the logical unit belongs to"
	flagLunType    = "lun-type"
	flagLunTypeH   = "The transport of the logical unit, iscsi or fcp"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   CommandName,
		Short: helpShort,
		Long:  helpLong,
		Args:  cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
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
	cmd.Flags().StringVarP(&options.VMID, flagVMID, "", "", flagVMIDHelp)
	cmd.Flags().StringVarP(&options.VMName, flagVMName, "", "", flagVMNameHelp)
	cmd.Flags().StringVarP(&options.State, flagState, "", ensure.StatePresent, flagStateHelp)
	cmd.Flags().StringVarP(&options.Size, flagSize, flagSizeShort, "", flagSizeHelp)
	cmd.Flags().StringVarP(&options.Interface, flagInterface, flagInterfaceShort, pkgconst.DefaultDiskInterface, flagInterfaceHelp)
	cmd.Flags().StringVarP(&options.Format, flagFormat, "", pkgconst.DefaultDiskFormat, flagFormatHelp)
	cmd.Flags().StringVarP(&description, flagDescription, "", "", flagDescriptionHelp)
	cmd.Flags().BoolVarP(&bootable, flagBootable, "", false, flagBootableHelp)
	cmd.Flags().BoolVarP(&shareable, flagShareable, "", false, flagShareableHelp)
	cmd.Flags().StringVarP(&options.StorageDomain, flagStorageDomain, "", "", flagStorageDomainHelp)
	cmd.Flags().StringSliceVarP(&options.StorageDomains, flagStorageDomains, "", nil, flagStorageDomainsHelp)
	cmd.Flags().StringVarP(&options.ImagePath, flagImage, "", "", flagImageHelp)
	cmd.Flags().BoolVarP(&options.Force, flagForce, "", false, flagForceHelp)
	cmd.Flags().StringVarP(&lun.ID, flagLunID, "", "", flagLunIDHelp)
	cmd.Flags().StringVarP(&lun.Address, flagLunAddress, "", "", flagLunAddrH)
	cmd.Flags().IntVarP(&lun.Port, flagLunPort, "", pkgconst.DefaultLunPort, flagLunPortH)
	cmd.Flags().StringVarP(&lun.Target, flagLunTarget, "", "", flagLunTargetH)
	cmd.Flags().StringVarP(&lun.StorageType, flagLunType, "", pkgconst.DefaultLunType, flagLunTypeH)
	cmd.Flags().DurationVarP(&options.PollInterval, constants.FlagPollInterval, "", pkgconst.DefaultPollInterval, constants.FlagPollIntervalHelp)
	cmd.Flags().DurationVarP(&options.Timeout, constants.FlagTimeout, "", pkgconst.DefaultTimeout, constants.FlagTimeoutHelp)

	return cmd
}

// RunCmd runs the "ovdisk disk ensure" command
func RunCmd(cmd *cobra.Command) error {
	ovcli, err := cmdutil.GetClient(configPath)
	if err != nil {
		return err
	}
	defer ovcli.Close()

	if cmd.Flags().Changed(flagDescription) {
		options.Description = &description
	}
	if cmd.Flags().Changed(flagBootable) {
		options.Bootable = &bootable
	}
	if cmd.Flags().Changed(flagShareable) {
		options.Shareable = &shareable
	}
	if lun.ID != "" {
		options.LogicalUnit = &lun
	}
	options.State = strings.ToLower(options.State)

	_, err = ensure.Ensure(ovcli, options)
	return err
}
