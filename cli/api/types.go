// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"github.com/netapp/vnx-blockdevice/storage"
	vnxapi "github.com/netapp/vnx-blockdevice/storage_drivers/vnx/api"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MultipleVolumeResponse struct {
	Items []*storage.Volume `json:"items"`
}

type MultipleTargetResponse struct {
	Items []vnxapi.ISCSITarget `json:"items"`
}

type DevicePath struct {
	BlockDeviceID string `json:"blockdeviceID"`
	Path          string `json:"path"`
}

type MultipleDevicePathResponse struct {
	Items []DevicePath `json:"items"`
}

type HostResponse struct {
	InstanceID     string `json:"instanceID"`
	AllocationUnit int64  `json:"allocationUnit"`
}

type Version struct {
	Version    string `json:"version"`
	APIVersion string `json:"apiVersion"`
	GoVersion  string `json:"goVersion"`
}

type VersionResponse struct {
	Server Version `json:"server"`
	Client Version `json:"client"`
}

type ClientVersionResponse struct {
	Client Version `json:"client"`
}
