// Copyright 2025 NetApp, Inc. All Rights Reserved.

package factory

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/netapp/vnx-blockdevice/config"
	. "github.com/netapp/vnx-blockdevice/logging"
	"github.com/netapp/vnx-blockdevice/storage"
	drivers "github.com/netapp/vnx-blockdevice/storage_drivers"
	"github.com/netapp/vnx-blockdevice/storage_drivers/vnx"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

// NewStorageBackendForConfig creates the driver named by a backend config (JSON or YAML) and wraps it in a backend.
func NewStorageBackendForConfig(ctx context.Context, configData string) (*storage.Backend, error) {
	return NewStorageBackendForDriver(ctx, configData, nil)
}

// NewStorageBackendForDriver initializes the supplied driver, or one chosen by the config's
// storageDriverName if storageDriver is nil.
func NewStorageBackendForDriver(
	ctx context.Context, configData string, storageDriver storage.Driver,
) (sb *storage.Backend, err error) {
	// Some drivers may panic during initialize if given invalid parameters,
	// so catch any panics that might occur and return an error.
	defer func() {
		if r := recover(); r != nil {
			Logc(ctx).WithField("stackTrace", string(debug.Stack())).Error("Unable to instantiate backend.")
			err = fmt.Errorf("unable to instantiate backend: %v", r)
		}
	}()

	configJSON, err := drivers.ToJSON(configData)
	if err != nil {
		return nil, err
	}

	commonConfig, err := drivers.ValidateCommonSettings(ctx, configJSON)
	if err != nil {
		return nil, errors.WrapUnsupportedConfigError(fmt.Errorf("input failed validation: %v", err))
	}

	if storageDriver == nil {
		switch commonConfig.StorageDriverName {
		case config.VNXStorageDriverName:
			storageDriver = &vnx.StorageDriver{}
		default:
			return nil, errors.UnsupportedConfigError("unknown storage driver: %v", commonConfig.StorageDriverName)
		}
	}

	Logc(ctx).WithField("driver", commonConfig.StorageDriverName).Debug("Initializing storage driver.")

	// Initialize the driver.  If this fails, return a 'failed' backend object.
	if err = storageDriver.Initialize(ctx, configJSON, commonConfig); err != nil {
		Logc(ctx).WithError(err).Error("Could not initialize storage driver.")
		return storage.NewFailedStorageBackend(ctx, storageDriver),
			fmt.Errorf("problem initializing storage driver '%s': %w", commonConfig.StorageDriverName, err)
	}
	Logc(ctx).WithField("driver", commonConfig.StorageDriverName).Info("Storage driver initialized.")

	if sb, err = storage.NewStorageBackend(ctx, storageDriver); err != nil {
		Logc(ctx).WithError(err).Error("Could not create storage backend.")
		return storage.NewFailedStorageBackend(ctx, storageDriver),
			fmt.Errorf("problem creating storage backend '%s': %v", commonConfig.StorageDriverName, err)
	}
	Logc(ctx).WithField("backend", sb.Name).Info("Created new storage backend.")

	return sb, nil
}
