// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storagedrivers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"

	. "github.com/netapp/vnx-blockdevice/logging"
	"github.com/netapp/vnx-blockdevice/pkg/capacity"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

// ToJSON accepts a backend config in either YAML or JSON form and returns it as JSON.
func ToJSON(configData string) (string, error) {
	configJSON, err := yaml.YAMLToJSON([]byte(configData))
	if err != nil {
		return "", errors.InvalidInputError("could not parse configuration: %v", err)
	}
	return string(configJSON), nil
}

// ValidateCommonSettings attempts to "partially" decode the JSON into just the settings in CommonStorageDriverConfig
func ValidateCommonSettings(ctx context.Context, configJSON string) (*CommonStorageDriverConfig, error) {
	config := &CommonStorageDriverConfig{}

	// Decode configJSON into config object
	err := json.Unmarshal([]byte(configJSON), &config)
	if err != nil {
		return nil, fmt.Errorf("could not parse JSON configuration: %v", err)
	}

	// Load storage drivers and validate the one specified actually exists
	if config.StorageDriverName == "" {
		return nil, errors.New("missing storage driver name in configuration file")
	}

	// Validate config file version information
	if config.Version != ConfigVersion {
		return nil, fmt.Errorf("unexpected config file version; found %d, expected %d", config.Version, ConfigVersion)
	}

	if config.Debug {
		Logc(ctx).Warnf("The debug setting in the configuration file is now ignored; " +
			"use the command line --debug switch instead.")
	}

	var parsedStoragePrefix *string
	if parsedStoragePrefix, err = parseRawStoragePrefix(ctx, config.StoragePrefixRaw); err != nil {
		return nil, fmt.Errorf("unable to parse storage prefix: %v", err)
	}
	config.StoragePrefix = parsedStoragePrefix

	// Validate volume size limit (if set)
	if config.LimitVolumeSize != "" {
		if _, err = capacity.ParseSize(config.LimitVolumeSize); err != nil {
			return nil, fmt.Errorf("invalid value for limitVolumeSize: %v", config.LimitVolumeSize)
		}
	}

	Logc(ctx).Debugf("Parsed commonConfig: %+v", *config)

	return config, nil
}

// parseRawStoragePrefix parses a raw storage prefix and returns a pointer to a parsed prefix.
func parseRawStoragePrefix(ctx context.Context, storagePrefixRaw json.RawMessage) (*string, error) {
	// The storage prefix may have three states: nil (no prefix specified, the driver uses its
	// default prefix), "" (specified as an empty string), and "<value>".  An empty byte array,
	// or an array with the ASCII values {} or null, is interpreted as nil.  A byte array
	// containing two double-quote characters ("") is an empty string.  A byte array containing
	// characters enclosed in double quotes is a specified prefix.  Anything else is rejected.
	var storagePrefix *string

	if len(storagePrefixRaw) > 0 {
		rawPrefix := string(storagePrefixRaw)
		if rawPrefix == "{}" || rawPrefix == "null" {
			storagePrefix = nil
			Logc(ctx).Debugf("Storage prefix is %s, will use default prefix.", rawPrefix)
		} else if rawPrefix == "\"\"" {
			empty := ""
			storagePrefix = &empty
			Logc(ctx).Debug("Storage prefix is empty.")
		} else if strings.HasPrefix(rawPrefix, "\"") && strings.HasSuffix(rawPrefix, "\"") {
			prefix := string(storagePrefixRaw[1 : len(storagePrefixRaw)-1])
			storagePrefix = &prefix
			Logc(ctx).WithField("storagePrefix", prefix).Debug("Parsed storage prefix.")
		} else {
			return nil, fmt.Errorf("invalid value for storage prefix: %v", storagePrefixRaw)
		}
	} else {
		storagePrefix = nil
		Logc(ctx).Debug("Storage prefix is absent, will use default prefix.")
	}

	return storagePrefix, nil
}

// GetStoragePrefix returns the configured prefix, or defaultPrefix if none was configured.
func GetStoragePrefix(c *CommonStorageDriverConfig, defaultPrefix string) string {
	if c == nil || c.StoragePrefix == nil {
		return defaultPrefix
	}
	return *c.StoragePrefix
}

// CheckVolumeSizeLimits if a limit has been set, ensures the requestedSize is under it.
func CheckVolumeSizeLimits(
	ctx context.Context, requestedSizeBytes int64, config *CommonStorageDriverConfig,
) (bool, int64, error) {
	limitVolumeSize := config.LimitVolumeSize
	if limitVolumeSize == "" {
		Logc(ctx).Debugf("No limits specified, not limiting volume size")
		return false, 0, nil
	}

	volumeSizeLimit, err := capacity.ParseSize(limitVolumeSize)
	if err != nil {
		return false, 0, fmt.Errorf("error parsing limitVolumeSize: %v", err)
	}

	Logc(ctx).WithFields(LogFields{
		"limitVolumeSize":    limitVolumeSize,
		"volumeSizeLimit":    volumeSizeLimit,
		"requestedSizeBytes": requestedSizeBytes,
	}).Debugf("Comparing limits")

	if requestedSizeBytes > volumeSizeLimit {
		return true, volumeSizeLimit, errors.InvalidInputError("requested size: %d > the size limit: %d",
			requestedSizeBytes, volumeSizeLimit)
	}

	return true, volumeSizeLimit, nil
}
