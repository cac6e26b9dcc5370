// Copyright (c) 2025, ovdisk contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package storagedomain

type StorageDomain struct {
	Local             string `json:"local"`
	QuotaMode         string `json:"quota_mode"`
	Status            string `json:"status"`
	StorageFormat     string `json:"storage_format"`
	SupportedVersions struct {
		Version []struct {
			Major string `json:"major"`
			Minor string `json:"minor"`
		} `json:"version"`
	} `json:"supported_versions"`
	Version struct {
		Major string `json:"major"`
		Minor string `json:"minor"`
	} `json:"version"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Href        string `json:"href"`
	Id          string `json:"id"`
}

type StorageDomainList struct {
	StorageDomains []StorageDomain `json:"storage_domain"`
}
