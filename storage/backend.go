// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage

//go:generate mockgen -destination=../mocks/mock_storage/mock_driver.go github.com/netapp/vnx-blockdevice/storage Driver

import (
	"context"
	"fmt"

	. "github.com/netapp/vnx-blockdevice/logging"
	drivers "github.com/netapp/vnx-blockdevice/storage_drivers"
	"github.com/netapp/vnx-blockdevice/storage_drivers/vnx/api"
)

// Driver provides a common interface for storage related operations
type Driver interface {
	Name() string
	BackendName() string
	Initialize(ctx context.Context, configJSON string, commonConfig *drivers.CommonStorageDriverConfig) error
	Initialized() bool
	// Terminate tells the driver to clean up, as it won't be called again.
	Terminate(ctx context.Context)

	CreateVolume(ctx context.Context, datasetID string, sizeBytes int64) (*Volume, error)
	DestroyVolume(ctx context.Context, blockDeviceID string) error
	AttachVolume(ctx context.Context, blockDeviceID, host string) (*Volume, error)
	DetachVolume(ctx context.Context, blockDeviceID string) error
	GetDevicePath(ctx context.Context, blockDeviceID string) (string, error)
	GetVolume(ctx context.Context, blockDeviceID string) (*Volume, error)
	ListVolumes(ctx context.Context) ([]*Volume, error)

	AllocationUnit() int64
	ComputeInstanceID() string
	ISCSITargets(ctx context.Context) ([]api.ISCSITarget, error)

	// GetExternalConfig returns a version of the driver configuration that
	// lacks confidential information, such as usernames and passwords.
	GetExternalConfig(ctx context.Context) interface{}
}

type Backend struct {
	Driver Driver
	Name   string
	State  BackendState
}

type BackendState string

const (
	Unknown = BackendState("unknown")
	Online  = BackendState("online")
	Failed  = BackendState("failed")
)

func (s BackendState) String() string {
	switch s {
	case Unknown, Online, Failed:
		return string(s)
	default:
		return "unknown"
	}
}

func (s BackendState) IsOnline() bool {
	return s == Online
}

func (s BackendState) IsFailed() bool {
	return s == Failed
}

func NewStorageBackend(ctx context.Context, driver Driver) (*Backend, error) {
	if !driver.Initialized() {
		return nil, fmt.Errorf("driver %s is not initialized", driver.Name())
	}
	return &Backend{
		Driver: driver,
		Name:   driver.BackendName(),
		State:  Online,
	}, nil
}

func NewFailedStorageBackend(ctx context.Context, driver Driver) *Backend {
	backend := Backend{
		Driver: driver,
		Name:   driver.BackendName(),
		State:  Failed,
	}

	Logc(ctx).WithFields(LogFields{
		"backendName": backend.Name,
		"driver":      driver.Name(),
	}).Debug("Failed storage backend.")

	return &backend
}

func (b *Backend) GetDriverName() string {
	return b.Driver.Name()
}

func (b *Backend) ensureOnline(ctx context.Context) error {
	if b.State != Online {
		Logc(ctx).WithFields(LogFields{
			"state":         b.State,
			"expectedState": string(Online),
		}).Error("Invalid backend state.")
		return fmt.Errorf("backend %s is not Online", b.Name)
	}
	return nil
}

func (b *Backend) CreateVolume(ctx context.Context, datasetID string, sizeBytes int64) (*Volume, error) {
	Logc(ctx).WithFields(LogFields{
		"backend":   b.Name,
		"datasetID": datasetID,
		"size":      sizeBytes,
	}).Debug("Attempting volume create.")

	if err := b.ensureOnline(ctx); err != nil {
		return nil, err
	}
	return b.Driver.CreateVolume(ctx, datasetID, sizeBytes)
}

func (b *Backend) DestroyVolume(ctx context.Context, blockDeviceID string) error {
	if err := b.ensureOnline(ctx); err != nil {
		return err
	}
	return b.Driver.DestroyVolume(ctx, blockDeviceID)
}

func (b *Backend) AttachVolume(ctx context.Context, blockDeviceID, host string) (*Volume, error) {
	if err := b.ensureOnline(ctx); err != nil {
		return nil, err
	}
	return b.Driver.AttachVolume(ctx, blockDeviceID, host)
}

func (b *Backend) DetachVolume(ctx context.Context, blockDeviceID string) error {
	if err := b.ensureOnline(ctx); err != nil {
		return err
	}
	return b.Driver.DetachVolume(ctx, blockDeviceID)
}

func (b *Backend) GetDevicePath(ctx context.Context, blockDeviceID string) (string, error) {
	if err := b.ensureOnline(ctx); err != nil {
		return "", err
	}
	return b.Driver.GetDevicePath(ctx, blockDeviceID)
}

func (b *Backend) GetVolume(ctx context.Context, blockDeviceID string) (*Volume, error) {
	if err := b.ensureOnline(ctx); err != nil {
		return nil, err
	}
	return b.Driver.GetVolume(ctx, blockDeviceID)
}

func (b *Backend) ListVolumes(ctx context.Context) ([]*Volume, error) {
	if err := b.ensureOnline(ctx); err != nil {
		return nil, err
	}
	return b.Driver.ListVolumes(ctx)
}

func (b *Backend) ISCSITargets(ctx context.Context) ([]api.ISCSITarget, error) {
	if err := b.ensureOnline(ctx); err != nil {
		return nil, err
	}
	return b.Driver.ISCSITargets(ctx)
}

func (b *Backend) Terminate(ctx context.Context) {
	Logc(ctx).WithFields(LogFields{
		"backend": b.Name,
		"driver":  b.GetDriverName(),
		"state":   b.State.String(),
	}).Debug("Terminating backend.")

	if b.Driver.Initialized() {
		b.Driver.Terminate(ctx)
	}
}

type BackendExternal struct {
	Name              string       `json:"name"`
	Driver            string       `json:"driver"`
	Config            interface{}  `json:"config"`
	State             BackendState `json:"state"`
	ComputeInstanceID string       `json:"computeInstanceID"`
	AllocationUnit    int64        `json:"allocationUnit"`
}

func (b *Backend) ConstructExternal(ctx context.Context) *BackendExternal {
	return &BackendExternal{
		Name:              b.Name,
		Driver:            b.GetDriverName(),
		Config:            b.Driver.GetExternalConfig(ctx),
		State:             b.State,
		ComputeInstanceID: b.Driver.ComputeInstanceID(),
		AllocationUnit:    b.Driver.AllocationUnit(),
	}
}
