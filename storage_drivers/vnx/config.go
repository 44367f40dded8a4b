// Copyright 2025 NetApp, Inc. All Rights Reserved.

package vnx

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tridentconfig "github.com/netapp/vnx-blockdevice/config"
	. "github.com/netapp/vnx-blockdevice/logging"
	"github.com/netapp/vnx-blockdevice/pkg/await"
	"github.com/netapp/vnx-blockdevice/pkg/convert"
	"github.com/netapp/vnx-blockdevice/pkg/network"
	drivers "github.com/netapp/vnx-blockdevice/storage_drivers"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

var vnxConfigRedactList = [...]string{"Username", "Password"}

// DiscoveryConfig bounds how long attach waits for the kernel to present a device.
type DiscoveryConfig struct {
	MaxAttempts  int    `json:"maxAttempts,omitempty"`
	StepSeconds  int    `json:"stepSeconds,omitempty"`
	PollInterval string `json:"pollInterval,omitempty"`
}

// VNXStorageDriverConfig holds settings for the emc-vnx driver.
type VNXStorageDriverConfig struct {
	*drivers.CommonStorageDriverConfig

	ClusterID          string          `json:"clusterID"`
	SPAAddress         string          `json:"spaAddress"`
	NaviseccliPath     string          `json:"naviseccliPath,omitempty"`
	SecFilePath        string          `json:"secFilePath,omitempty"`
	Username           string          `json:"username,omitempty"`
	Password           string          `json:"password,omitempty"`
	Scope              string          `json:"scope,omitempty"`
	StoragePool        string          `json:"storagePool"`
	StorageGroup       string          `json:"storageGroup,omitempty"`
	Hostname           string          `json:"hostname,omitempty"`
	Transport          string          `json:"transport,omitempty"`
	CreateStorageGroup bool            `json:"createStorageGroup,omitempty"`
	CommandTimeout     string          `json:"commandTimeout,omitempty"`
	LUNReadyTimeout    string          `json:"lunReadyTimeout,omitempty"`
	MaxSessions        int             `json:"maxSessions,omitempty"`
	PortalNetworks     []string        `json:"iscsiPortalNetworks,omitempty"`
	Discovery          DiscoveryConfig `json:"discovery"`
}

// String makes VNXStorageDriverConfig satisfy the Stringer interface, redacting credentials.
func (c VNXStorageDriverConfig) String() string {
	return convert.ToStringRedacted(&c, vnxConfigRedactList[:])
}

// GoString makes VNXStorageDriverConfig satisfy the GoStringer interface.
func (c VNXStorageDriverConfig) GoString() string {
	return c.String()
}

// ParseConfig decodes a backend config, given as YAML or JSON, and validates it.
func ParseConfig(ctx context.Context, configData string) (*VNXStorageDriverConfig, error) {
	configJSON, err := drivers.ToJSON(configData)
	if err != nil {
		return nil, err
	}

	commonConfig, err := drivers.ValidateCommonSettings(ctx, configJSON)
	if err != nil {
		return nil, errors.WrapUnsupportedConfigError(err)
	}
	if commonConfig.StorageDriverName != tridentconfig.VNXStorageDriverName {
		return nil, errors.UnsupportedConfigError("unsupported storage driver %s, expected %s",
			commonConfig.StorageDriverName, tridentconfig.VNXStorageDriverName)
	}

	return InitializeVNXConfig(ctx, configJSON, commonConfig)
}

// InitializeVNXConfig decodes the driver-specific settings, applies defaults and validates the result.
func InitializeVNXConfig(
	ctx context.Context, configJSON string, commonConfig *drivers.CommonStorageDriverConfig,
) (*VNXStorageDriverConfig, error) {
	config := &VNXStorageDriverConfig{}
	config.CommonStorageDriverConfig = commonConfig

	if err := json.Unmarshal([]byte(configJSON), config); err != nil {
		return nil, fmt.Errorf("could not decode JSON configuration: %v", err)
	}
	// Unmarshalling replaces the embedded pointer; keep the parsed prefix.
	config.CommonStorageDriverConfig = commonConfig

	populateConfigurationDefaults(ctx, config)

	if err := validateConfig(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}

func populateConfigurationDefaults(ctx context.Context, config *VNXStorageDriverConfig) {
	if config.NaviseccliPath == "" {
		config.NaviseccliPath = tridentconfig.DefaultNaviseccliPath
	}
	if config.Transport == "" {
		config.Transport = string(tridentconfig.TransportAuto)
	}
	if config.CommandTimeout == "" {
		config.CommandTimeout = tridentconfig.DefaultCommandTimeout.String()
	}
	if config.LUNReadyTimeout == "" {
		config.LUNReadyTimeout = tridentconfig.DefaultLUNReadyTimeout.String()
	}
	if config.MaxSessions == 0 {
		config.MaxSessions = tridentconfig.DefaultMaxSessions
	}
	if config.Discovery.MaxAttempts == 0 {
		config.Discovery.MaxAttempts = tridentconfig.DefaultDiscoveryAttempts
	}
	if config.Discovery.StepSeconds == 0 {
		config.Discovery.StepSeconds = int(tridentconfig.DefaultDiscoveryStep / time.Second)
	}
	if config.Discovery.PollInterval == "" {
		config.Discovery.PollInterval = tridentconfig.DefaultDiscoveryPollInterval.String()
	}

	Logc(ctx).WithFields(LogFields{
		"NaviseccliPath":  config.NaviseccliPath,
		"Transport":       config.Transport,
		"CommandTimeout":  config.CommandTimeout,
		"LUNReadyTimeout": config.LUNReadyTimeout,
		"MaxSessions":     config.MaxSessions,
		"Discovery":       config.Discovery,
	}).Debugf("Configuration defaults")
}

func validateConfig(ctx context.Context, config *VNXStorageDriverConfig) error {
	if config.ClusterID == "" {
		return errors.UnsupportedConfigError("clusterID must be specified")
	}
	if config.SPAAddress == "" {
		return errors.UnsupportedConfigError("spaAddress must be specified")
	}
	if config.StoragePool == "" {
		return errors.UnsupportedConfigError("storagePool must be specified")
	}
	if config.SecFilePath == "" && (config.Username == "" || config.Password == "") {
		return errors.UnsupportedConfigError("either secFilePath or both username and password must be specified")
	}
	if !tridentconfig.IsValidTransport(tridentconfig.Transport(config.Transport)) {
		return errors.UnsupportedConfigError("invalid transport %s, expected one of %v", config.Transport,
			tridentconfig.GetValidTransportNames())
	}
	for name, value := range map[string]string{
		"commandTimeout":         config.CommandTimeout,
		"lunReadyTimeout":        config.LUNReadyTimeout,
		"discovery.pollInterval": config.Discovery.PollInterval,
	} {
		if d, err := time.ParseDuration(value); err != nil || d <= 0 {
			return errors.UnsupportedConfigError("invalid value for %s: %s", name, value)
		}
	}
	if err := network.ValidateCIDRs(ctx, config.PortalNetworks); err != nil {
		return errors.UnsupportedConfigError("invalid iscsiPortalNetworks; %v", err)
	}
	if config.MaxSessions < 1 {
		return errors.UnsupportedConfigError("maxSessions must be at least 1")
	}
	if config.Discovery.MaxAttempts < 1 {
		return errors.UnsupportedConfigError("discovery.maxAttempts must be at least 1")
	}
	if config.Discovery.StepSeconds < 1 {
		return errors.UnsupportedConfigError("discovery.stepSeconds must be at least 1")
	}
	return nil
}

// mustDuration parses a duration already checked by validateConfig.
func mustDuration(value string) time.Duration {
	d, _ := time.ParseDuration(value)
	return d
}

func (c *VNXStorageDriverConfig) commandTimeout() time.Duration {
	return mustDuration(c.CommandTimeout)
}

func (c *VNXStorageDriverConfig) lunReadyTimeout() time.Duration {
	return mustDuration(c.LUNReadyTimeout)
}

// discoveryPolicy is the escalating wait used for each phase of device discovery.
func (c *VNXStorageDriverConfig) discoveryPolicy() await.Policy {
	return await.Policy{
		MaxAttempts:  c.Discovery.MaxAttempts,
		Timeout:      await.Escalating(time.Duration(c.Discovery.StepSeconds) * time.Second),
		PollInterval: mustDuration(c.Discovery.PollInterval),
	}
}

func (c *VNXStorageDriverConfig) debugTraceFlag(name string) bool {
	if c.CommonStorageDriverConfig == nil {
		return false
	}
	return c.DebugTraceFlags[name]
}
