// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storagedrivers

import (
	"encoding/json"
)

// CommonStorageDriverConfig holds settings in common across all StorageDrivers
type CommonStorageDriverConfig struct {
	Version           int             `json:"version"`
	StorageDriverName string          `json:"storageDriverName"`
	BackendName       string          `json:"backendName"`
	Debug             bool            `json:"debug"`           // Unsupported!
	DebugTraceFlags   map[string]bool `json:"debugTraceFlags"` // Example: {"api":false, "method":true}
	StoragePrefixRaw  json.RawMessage `json:"storagePrefix,string"`
	StoragePrefix     *string         `json:"-"`
	LimitVolumeSize   string          `json:"limitVolumeSize"`
}
