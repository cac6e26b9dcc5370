// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package disk

// The engine API renders numbers and booleans as JSON strings, so the
// wire types below use strings throughout.

const FormatCow string = "cow"
const FormatRaw string = "raw"

const BackupNone string = "none"

const StatusOK string = "ok"
const StatusLocked string = "locked"

// see https://www.ovirt.org/documentation/doc-REST_API_Guide/#types-disk_storage_type
const StorageTypeImage string = "image"
const StorageTypeLun string = "lun"

const LunTypeIscsi string = "iscsi"
const LunTypeFcp string = "fcp"

type CreateDiskRequest struct {
	Id                string             `json:"id,omitempty"`
	Name              string             `json:"name,omitempty"`
	Description       string             `json:"description,omitempty"`
	ProvisionedSize   string             `json:"provisioned_size,omitempty"`
	Format            string             `json:"format,omitempty"`
	Sparse            string             `json:"sparse,omitempty"`
	Shareable         string             `json:"shareable,omitempty"`
	Backup            string             `json:"backup,omitempty"`
	StorageDomainList *StorageDomainList `json:"storage_domains,omitempty"`
	LunStorage        *HostStorage       `json:"lun_storage,omitempty"`
}

type UpdateDiskRequest struct {
	Description     string `json:"description,omitempty"`
	ProvisionedSize string `json:"provisioned_size,omitempty"`
	Shareable       string `json:"shareable,omitempty"`
}

type StorageDomainList struct {
	StorageDomains []StorageDomain `json:"storage_domain"`
}

type StorageDomain struct {
	Id string `json:"id"`
}

type HostStorage struct {
	Type            string          `json:"type"`
	LogicalUnitList LogicalUnitList `json:"logical_units"`
}

type LogicalUnitList struct {
	LogicalUnits []LogicalUnit `json:"logical_unit"`
}

type LogicalUnit struct {
	Id       string `json:"id,omitempty"`
	Address  string `json:"address,omitempty"`
	Port     string `json:"port,omitempty"`
	Target   string `json:"target,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

type Disk struct {
	ActualSize      string `json:"actual_size"`
	Alias           string `json:"alias"`
	Backup          string `json:"backup"`
	ContentType     string `json:"content_type"`
	Format          string `json:"format"`
	ImageId         string `json:"image_id"`
	PropagateErrors string `json:"propagate_errors"`
	ProvisionedSize string `json:"provisioned_size"`
	Shareable       string `json:"shareable"`
	Sparse          string `json:"sparse"`
	Status          string `json:"status"`
	StorageType     string `json:"storage_type"`
	TotalSize       string `json:"total_size"`
	WipeAfterDelete string `json:"wipe_after_delete"`
	DiskProfile     struct {
		Href string `json:"href"`
		Id   string `json:"id"`
	} `json:"disk_profile"`
	Quota struct {
		Href string `json:"href"`
		Id   string `json:"id"`
	} `json:"quota"`
	StorageDomains struct {
		StorageDomain []struct {
			Href string `json:"href"`
			Id   string `json:"id"`
		} `json:"storage_domain"`
	} `json:"storage_domains"`
	LunStorage struct {
		Type            string `json:"type"`
		LogicalUnitList struct {
			LogicalUnits []LogicalUnit `json:"logical_unit"`
		} `json:"logical_units"`
	} `json:"lun_storage"`
	Actions struct {
		Link []struct {
			Href string `json:"href"`
			Rel  string `json:"rel"`
		} `json:"link"`
	} `json:"actions"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        []struct {
		Href string `json:"href"`
		Rel  string `json:"rel"`
	} `json:"link"`
	Href string `json:"href"`
	Id   string `json:"id"`
}

type DiskList struct {
	Disks []Disk `json:"disk"`
}
