// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storagedrivers

// ConfigVersion is the expected version specified in the config file
const ConfigVersion = 1

// Debug trace flag names accepted in debugTraceFlags.
const (
	TraceMethod    = "method"
	TraceAPI       = "api"
	TraceDiscovery = "discovery"
)
