// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	. "github.com/netapp/vnx-blockdevice/logging"
	mockstorage "github.com/netapp/vnx-blockdevice/mocks/mock_storage"
	"github.com/netapp/vnx-blockdevice/storage"
	"github.com/netapp/vnx-blockdevice/storage_drivers/vnx/api"
)

const testBlockDeviceID = "block-6c5d4e3f-1a2b-4c3d-9e8f-0a1b2c3d4e5f"

func TestMain(m *testing.M) {
	InitLogOutput(io.Discard)
	os.Exit(m.Run())
}

func newMockDriver(t *testing.T, initialized bool) *mockstorage.MockDriver {
	mockCtrl := gomock.NewController(t)
	driver := mockstorage.NewMockDriver(mockCtrl)
	driver.EXPECT().Name().Return("emc-vnx").AnyTimes()
	driver.EXPECT().BackendName().Return("vnx_10_0_0_10").AnyTimes()
	driver.EXPECT().Initialized().Return(initialized).AnyTimes()
	return driver
}

func TestNewStorageBackend(t *testing.T) {
	backend, err := storage.NewStorageBackend(context.Background(), newMockDriver(t, true))
	require.NoError(t, err)
	assert.Equal(t, "vnx_10_0_0_10", backend.Name)
	assert.True(t, backend.State.IsOnline())
	assert.Equal(t, "emc-vnx", backend.GetDriverName())

	_, err = storage.NewStorageBackend(context.Background(), newMockDriver(t, false))
	assert.Error(t, err)
}

func TestBackendState(t *testing.T) {
	assert.Equal(t, "online", storage.Online.String())
	assert.Equal(t, "failed", storage.Failed.String())
	assert.Equal(t, "unknown", storage.BackendState("bogus").String())
	assert.True(t, storage.Failed.IsFailed())
	assert.False(t, storage.Unknown.IsOnline())
}

func TestBackend_DelegatesWhenOnline(t *testing.T) {
	ctx := context.Background()
	driver := newMockDriver(t, true)
	backend, err := storage.NewStorageBackend(ctx, driver)
	require.NoError(t, err)

	volume := &storage.Volume{BlockDeviceID: testBlockDeviceID, Size: 1 << 30}
	targets := []api.ISCSITarget{{SP: "A", PortID: 0, IQN: "iqn.1992-04.com.emc:cx.a0"}}

	driver.EXPECT().CreateVolume(ctx, "ds", int64(1<<30)).Return(volume, nil)
	driver.EXPECT().AttachVolume(ctx, testBlockDeviceID, "node1").Return(volume, nil)
	driver.EXPECT().GetDevicePath(ctx, testBlockDeviceID).Return("/dev/sdb", nil)
	driver.EXPECT().GetVolume(ctx, testBlockDeviceID).Return(volume, nil)
	driver.EXPECT().ListVolumes(ctx).Return([]*storage.Volume{volume}, nil)
	driver.EXPECT().DetachVolume(ctx, testBlockDeviceID).Return(nil)
	driver.EXPECT().DestroyVolume(ctx, testBlockDeviceID).Return(fmt.Errorf("busy"))
	driver.EXPECT().ISCSITargets(ctx).Return(targets, nil)

	got, err := backend.CreateVolume(ctx, "ds", 1<<30)
	require.NoError(t, err)
	assert.Equal(t, volume, got)

	_, err = backend.AttachVolume(ctx, testBlockDeviceID, "node1")
	assert.NoError(t, err)

	path, err := backend.GetDevicePath(ctx, testBlockDeviceID)
	assert.NoError(t, err)
	assert.Equal(t, "/dev/sdb", path)

	_, err = backend.GetVolume(ctx, testBlockDeviceID)
	assert.NoError(t, err)

	volumes, err := backend.ListVolumes(ctx)
	assert.NoError(t, err)
	assert.Len(t, volumes, 1)

	assert.NoError(t, backend.DetachVolume(ctx, testBlockDeviceID))
	assert.EqualError(t, backend.DestroyVolume(ctx, testBlockDeviceID), "busy")

	gotTargets, err := backend.ISCSITargets(ctx)
	assert.NoError(t, err)
	assert.Equal(t, targets, gotTargets)
}

func TestBackend_RejectsWhenFailed(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewFailedStorageBackend(ctx, newMockDriver(t, false))
	assert.True(t, backend.State.IsFailed())

	_, err := backend.CreateVolume(ctx, "ds", 1)
	assert.Error(t, err)
	_, err = backend.AttachVolume(ctx, testBlockDeviceID, "node1")
	assert.Error(t, err)
	assert.Error(t, backend.DetachVolume(ctx, testBlockDeviceID))
	assert.Error(t, backend.DestroyVolume(ctx, testBlockDeviceID))
	_, err = backend.GetDevicePath(ctx, testBlockDeviceID)
	assert.Error(t, err)
	_, err = backend.GetVolume(ctx, testBlockDeviceID)
	assert.Error(t, err)
	_, err = backend.ListVolumes(ctx)
	assert.Error(t, err)
	_, err = backend.ISCSITargets(ctx)
	assert.Error(t, err)
}

func TestBackend_Terminate(t *testing.T) {
	ctx := context.Background()

	initialized := newMockDriver(t, true)
	initialized.EXPECT().Terminate(ctx).Times(1)
	backend, err := storage.NewStorageBackend(ctx, initialized)
	require.NoError(t, err)
	backend.Terminate(ctx)

	// Terminate is not expected on a driver that never initialized.
	storage.NewFailedStorageBackend(ctx, newMockDriver(t, false)).Terminate(ctx)
}

func TestBackend_ConstructExternal(t *testing.T) {
	ctx := context.Background()
	driver := newMockDriver(t, true)
	driver.EXPECT().GetExternalConfig(ctx).Return(map[string]string{"storagePool": "Pool 0"})
	driver.EXPECT().ComputeInstanceID().Return("node1")
	driver.EXPECT().AllocationUnit().Return(int64(1 << 30))

	backend, err := storage.NewStorageBackend(ctx, driver)
	require.NoError(t, err)

	external := backend.ConstructExternal(ctx)
	assert.Equal(t, &storage.BackendExternal{
		Name:              "vnx_10_0_0_10",
		Driver:            "emc-vnx",
		Config:            map[string]string{"storagePool": "Pool 0"},
		State:             storage.Online,
		ComputeInstanceID: "node1",
		AllocationUnit:    1 << 30,
	}, external)
}
