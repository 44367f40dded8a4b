// Copyright 2025 NetApp, Inc. All Rights Reserved.

package config

import (
	"fmt"
	"time"
)

type Transport string

const (
	/* Misc. orchestrator constants */
	OrchestratorName       = "vnxbd"
	OrchestratorClientName = "vnxctl"
	orchestratorVersion    = "25.10.0"
	OrchestratorAPIVersion = "1"

	/* Driver-related constants */
	VNXStorageDriverName = "emc-vnx"
	DefaultStoragePrefix = OrchestratorName
	UnknownDriver        = "UnknownDriver"

	/* Transport constants */
	TransportFC    Transport = "fc"
	TransportISCSI Transport = "iscsi"
	TransportAuto  Transport = "auto"

	/* Volume sizing constants */
	AllocationUnitBytes = int64(1) << 30

	/* REST frontend constants */
	MaxRESTRequestSize = 10240
	HTTPTimeout        = 90 * time.Second
	DefaultHTTPPort    = "8000"
	DefaultMetricsPort = "8001"
	RESTRateLimit      = 50
	RESTRateBurst      = 100

	/* naviseccli constants */
	DefaultNaviseccliPath  = "/opt/Navisphere/bin/naviseccli"
	DefaultCommandTimeout  = 120 * time.Second
	DefaultMaxSessions     = 4
	DefaultLUNReadyTimeout = 120 * time.Second

	/* Device discovery constants */
	DefaultDiscoveryAttempts     = 5
	DefaultDiscoveryStep         = 5 * time.Second
	DefaultDiscoveryPollInterval = 1 * time.Second

	REDACTED = "<REDACTED>"

	/* Config file location */
	DefaultConfigPath = "/etc/" + OrchestratorName + "/config.yaml"
)

var (
	validTransports = map[Transport]bool{
		TransportFC:    true,
		TransportISCSI: true,
		TransportAuto:  true,
	}

	// BuildHash is the git hash the binary was built from
	BuildHash = "unknown"

	// BuildType is the type of build: custom, beta or stable
	BuildType = "custom"

	// BuildTypeRev is the revision of the build
	BuildTypeRev = "0"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"

	OrchestratorVersion = version()

	/* API Server variables */
	BaseURL           = "/" + OrchestratorName + "/v" + OrchestratorAPIVersion
	VersionURL        = BaseURL + "/version"
	BackendURL        = BaseURL + "/backend"
	VolumeURL         = BaseURL + "/volume"
	InstanceURL       = BaseURL + "/instance"
	AllocationUnitURL = BaseURL + "/allocation_unit"
	TargetsURL        = BaseURL + "/targets"
)

func IsValidTransport(t Transport) bool {
	_, ok := validTransports[t]
	return ok
}

func GetValidTransportNames() []string {
	ret := make([]string, 0, len(validTransports))
	for key := range validTransports {
		ret = append(ret, string(key))
	}
	return ret
}

func version() string {
	switch BuildType {
	case "stable":
		return orchestratorVersion
	case "custom":
		return fmt.Sprintf("%v-%v+%v", orchestratorVersion, BuildType, BuildHash)
	default:
		return fmt.Sprintf("%v-%v.%v+%v", orchestratorVersion, BuildType, BuildTypeRev, BuildHash)
	}
}
