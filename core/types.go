// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

//go:generate mockgen -destination=../mocks/mock_core/mock_core.go github.com/netapp/vnx-blockdevice/core Orchestrator

import (
	"context"

	"github.com/netapp/vnx-blockdevice/frontend"
	"github.com/netapp/vnx-blockdevice/storage"
	"github.com/netapp/vnx-blockdevice/storage_drivers/vnx/api"
)

type Orchestrator interface {
	Bootstrap() error
	Terminate(ctx context.Context)
	AddFrontend(ctx context.Context, f frontend.Plugin)
	GetFrontend(ctx context.Context, name string) (frontend.Plugin, error)
	GetVersion(ctx context.Context) (string, error)
	GetBackend(ctx context.Context) (*storage.BackendExternal, error)

	CreateVolume(ctx context.Context, datasetID string, sizeBytes int64) (*storage.Volume, error)
	DestroyVolume(ctx context.Context, blockDeviceID string) error
	AttachVolume(ctx context.Context, blockDeviceID, host string) (*storage.Volume, error)
	DetachVolume(ctx context.Context, blockDeviceID string) error
	GetDevicePath(ctx context.Context, blockDeviceID string) (string, error)
	GetVolume(ctx context.Context, blockDeviceID string) (*storage.Volume, error)
	ListVolumes(ctx context.Context) ([]*storage.Volume, error)

	AllocationUnit(ctx context.Context) (int64, error)
	ComputeInstanceID(ctx context.Context) (string, error)
	ISCSITargets(ctx context.Context) ([]api.ISCSITarget, error)
}
