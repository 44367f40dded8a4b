// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/netapp/vnx-blockdevice/config"
	. "github.com/netapp/vnx-blockdevice/logging"
	"github.com/netapp/vnx-blockdevice/mocks/mock_storage"
	"github.com/netapp/vnx-blockdevice/storage"
	"github.com/netapp/vnx-blockdevice/storage_drivers/vnx/api"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

const (
	blockDeviceID = "block-3e1a4b7c-52c4-4d3e-9a8f-0b3c6f1d2e4a"
	datasetID     = "3e1a4b7c-52c4-4d3e-9a8f-0b3c6f1d2e4a"
)

func TestMain(m *testing.M) {
	InitLogOutput(io.Discard)
	os.Exit(m.Run())
}

type fakePlugin struct {
	name string
}

func (p *fakePlugin) Activate() error   { return nil }
func (p *fakePlugin) Deactivate() error { return nil }
func (p *fakePlugin) GetName() string   { return p.name }
func (p *fakePlugin) Version() string   { return "1" }

func newMockDriver(t *testing.T) *mock_storage.MockDriver {
	mockCtrl := gomock.NewController(t)
	driver := mock_storage.NewMockDriver(mockCtrl)
	driver.EXPECT().Name().Return("emc-vnx").AnyTimes()
	driver.EXPECT().BackendName().Return("vnx_10_0_0_10").AnyTimes()
	driver.EXPECT().Initialized().Return(true).AnyTimes()
	driver.EXPECT().ComputeInstanceID().Return("node1").AnyTimes()
	return driver
}

func newBootstrappedOrchestrator(t *testing.T, driver storage.Driver) *VNXOrchestrator {
	t.Helper()
	o := NewVNXOrchestrator("{}")
	o.newBackend = func(ctx context.Context, _ string) (*storage.Backend, error) {
		return storage.NewStorageBackend(ctx, driver)
	}
	require.NoError(t, o.Bootstrap())
	return o
}

func TestNotBootstrapped(t *testing.T) {
	ctx := context.Background()
	o := NewVNXOrchestrator("{}")

	_, err := o.CreateVolume(ctx, datasetID, config.AllocationUnitBytes)
	assert.True(t, errors.IsNotReadyError(err))
	assert.True(t, errors.IsNotReadyError(o.DestroyVolume(ctx, blockDeviceID)))
	_, err = o.AttachVolume(ctx, blockDeviceID, "node1")
	assert.True(t, errors.IsNotReadyError(err))
	assert.True(t, errors.IsNotReadyError(o.DetachVolume(ctx, blockDeviceID)))
	_, err = o.GetDevicePath(ctx, blockDeviceID)
	assert.True(t, errors.IsNotReadyError(err))
	_, err = o.ListVolumes(ctx)
	assert.True(t, errors.IsNotReadyError(err))
	_, err = o.AllocationUnit(ctx)
	assert.True(t, errors.IsNotReadyError(err))
	_, err = o.ComputeInstanceID(ctx)
	assert.True(t, errors.IsNotReadyError(err))

	version, err := o.GetVersion(ctx)
	assert.Equal(t, config.OrchestratorVersion, version)
	assert.True(t, errors.IsNotReadyError(err))
}

func TestBootstrap_Failure(t *testing.T) {
	ctx := context.Background()
	o := NewVNXOrchestrator("{}")
	o.newBackend = func(context.Context, string) (*storage.Backend, error) {
		return nil, fmt.Errorf("storage pool Pool 9 not found")
	}

	err := o.Bootstrap()
	assert.True(t, errors.IsBootstrapError(err))
	assert.Contains(t, err.Error(), "Pool 9")

	_, err = o.ListVolumes(ctx)
	assert.True(t, errors.IsBootstrapError(err))
	_, err = o.GetBackend(ctx)
	assert.True(t, errors.IsBootstrapError(err))
}

func TestBootstrap_FailedBackendReported(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	driver := mock_storage.NewMockDriver(mockCtrl)
	driver.EXPECT().Name().Return("emc-vnx").AnyTimes()
	driver.EXPECT().BackendName().Return("vnx_10_0_0_10").AnyTimes()
	driver.EXPECT().ComputeInstanceID().Return("").AnyTimes()

	o := NewVNXOrchestrator("{}")
	o.newBackend = func(ctx context.Context, _ string) (*storage.Backend, error) {
		return storage.NewFailedStorageBackend(ctx, driver), fmt.Errorf("login failed")
	}

	assert.True(t, errors.IsBootstrapError(o.Bootstrap()))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(backendInfo.WithLabelValues("emc-vnx", "vnx_10_0_0_10", "failed", "")))
}

func TestBootstrap_Idempotent(t *testing.T) {
	calls := 0
	driver := newMockDriver(t)
	o := NewVNXOrchestrator("{}")
	o.newBackend = func(ctx context.Context, _ string) (*storage.Backend, error) {
		calls++
		return storage.NewStorageBackend(ctx, driver)
	}

	require.NoError(t, o.Bootstrap())
	require.NoError(t, o.Bootstrap())
	assert.Equal(t, 1, calls)

	version, err := o.GetVersion(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, config.OrchestratorVersion, version)
}

func TestBootstrap_RequestsWhileInProgress(t *testing.T) {
	ctx := context.Background()
	driver := newMockDriver(t)
	driver.EXPECT().ListVolumes(gomock.Any()).Return([]*storage.Volume{}, nil)

	building := make(chan struct{})
	release := make(chan struct{})
	o := NewVNXOrchestrator("{}")
	o.newBackend = func(ctx context.Context, _ string) (*storage.Backend, error) {
		close(building)
		<-release
		return storage.NewStorageBackend(ctx, driver)
	}

	done := make(chan error, 1)
	go func() { done <- o.Bootstrap() }()
	<-building

	_, err := o.ListVolumes(ctx)
	assert.True(t, errors.IsNotReadyError(err), "requests are not blocked by a running bootstrap")

	close(release)
	require.NoError(t, <-done)

	volumes, err := o.ListVolumes(ctx)
	assert.NoError(t, err)
	assert.Empty(t, volumes)
}

func TestFrontends(t *testing.T) {
	ctx := context.Background()
	o := NewVNXOrchestrator("{}")

	o.AddFrontend(ctx, &fakePlugin{name: "rest"})
	o.AddFrontend(ctx, &fakePlugin{name: "rest"})
	assert.Len(t, o.frontends, 1)

	fe, err := o.GetFrontend(ctx, "rest")
	require.NoError(t, err)
	assert.Equal(t, "rest", fe.GetName())

	_, err = o.GetFrontend(ctx, "metrics")
	assert.Error(t, err)
}

func TestVolumeOperations(t *testing.T) {
	ctx := context.Background()
	driver := newMockDriver(t)
	o := newBootstrappedOrchestrator(t, driver)

	created := &storage.Volume{BlockDeviceID: blockDeviceID, DatasetID: datasetID, Size: config.AllocationUnitBytes}
	host := "node1"
	attached := &storage.Volume{
		BlockDeviceID: blockDeviceID, DatasetID: datasetID, Size: config.AllocationUnitBytes, AttachedTo: &host,
	}

	driver.EXPECT().CreateVolume(gomock.Any(), datasetID, config.AllocationUnitBytes).Return(created, nil)
	driver.EXPECT().AttachVolume(gomock.Any(), blockDeviceID, host).Return(attached, nil)
	driver.EXPECT().GetDevicePath(gomock.Any(), blockDeviceID).Return("/dev/sdc", nil)
	driver.EXPECT().GetVolume(gomock.Any(), blockDeviceID).Return(attached, nil)
	driver.EXPECT().DetachVolume(gomock.Any(), blockDeviceID).Return(nil)
	driver.EXPECT().DestroyVolume(gomock.Any(), blockDeviceID).Return(nil)

	volume, err := o.CreateVolume(ctx, datasetID, config.AllocationUnitBytes)
	require.NoError(t, err)
	assert.Equal(t, created, volume)

	volume, err = o.AttachVolume(ctx, blockDeviceID, host)
	require.NoError(t, err)
	assert.True(t, volume.IsAttached())

	path, err := o.GetDevicePath(ctx, blockDeviceID)
	require.NoError(t, err)
	assert.Equal(t, "/dev/sdc", path)

	volume, err = o.GetVolume(ctx, blockDeviceID)
	require.NoError(t, err)
	assert.Equal(t, attached, volume)

	require.NoError(t, o.DetachVolume(ctx, blockDeviceID))
	require.NoError(t, o.DestroyVolume(ctx, blockDeviceID))
}

func TestVolumeOperations_ErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	driver := newMockDriver(t)
	o := newBootstrappedOrchestrator(t, driver)

	driver.EXPECT().DestroyVolume(gomock.Any(), blockDeviceID).Return(errors.UnknownVolumeError(blockDeviceID))
	driver.EXPECT().DetachVolume(gomock.Any(), blockDeviceID).Return(errors.UnattachedVolumeError(blockDeviceID))

	assert.True(t, errors.IsUnknownVolumeError(o.DestroyVolume(ctx, blockDeviceID)))
	assert.True(t, errors.IsUnattachedVolumeError(o.DetachVolume(ctx, blockDeviceID)))

	assert.Positive(t, testutil.CollectAndCount(operationDurationInMsSummary))
}

func TestListVolumes_Metrics(t *testing.T) {
	ctx := context.Background()
	driver := newMockDriver(t)
	o := newBootstrappedOrchestrator(t, driver)

	host := "node1"
	volumes := []*storage.Volume{
		{BlockDeviceID: "block-1", Size: 2 * config.AllocationUnitBytes, AttachedTo: &host},
		{BlockDeviceID: "block-2", Size: config.AllocationUnitBytes, ForeignGroups: []string{"vnxbd-node2"}},
		{BlockDeviceID: "block-3", Size: config.AllocationUnitBytes},
		{BlockDeviceID: "block-4", Size: config.AllocationUnitBytes},
	}
	driver.EXPECT().ListVolumes(gomock.Any()).Return(volumes, nil)

	listed, err := o.ListVolumes(ctx)
	require.NoError(t, err)
	assert.Equal(t, volumes, listed)

	assert.Equal(t, float64(1), testutil.ToFloat64(volumesGauge.WithLabelValues(volumeStateAttached)))
	assert.Equal(t, float64(1), testutil.ToFloat64(volumesGauge.WithLabelValues(volumeStateForeign)))
	assert.Equal(t, float64(2), testutil.ToFloat64(volumesGauge.WithLabelValues(volumeStateDetached)))
	assert.Equal(t, float64(2*config.AllocationUnitBytes),
		testutil.ToFloat64(volumeAllocatedBytesGauge.WithLabelValues(volumeStateAttached)))
}

func TestListVolumes_Error(t *testing.T) {
	driver := newMockDriver(t)
	o := newBootstrappedOrchestrator(t, driver)

	driver.EXPECT().ListVolumes(gomock.Any()).Return(nil, fmt.Errorf("naviseccli exited 1"))

	volumes, err := o.ListVolumes(context.Background())
	assert.Error(t, err)
	assert.Nil(t, volumes)
}

func TestHostQueries(t *testing.T) {
	ctx := context.Background()
	driver := newMockDriver(t)
	o := newBootstrappedOrchestrator(t, driver)

	targets := []api.ISCSITarget{{
		SP:      "A",
		PortID:  4,
		IQN:     "iqn.1992-04.com.emc:cx.apm00123.a4",
		Portals: []api.ISCSIPortal{{VirtualPortID: 0, IPAddress: "10.0.1.10"}},
	}}
	driver.EXPECT().AllocationUnit().Return(config.AllocationUnitBytes).AnyTimes()
	driver.EXPECT().ISCSITargets(gomock.Any()).Return(targets, nil)
	driver.EXPECT().GetExternalConfig(gomock.Any()).Return(map[string]string{"spaAddress": "10.0.0.10"})

	unit, err := o.AllocationUnit(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.AllocationUnitBytes, unit)

	instanceID, err := o.ComputeInstanceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "node1", instanceID)

	got, err := o.ISCSITargets(ctx)
	require.NoError(t, err)
	assert.Equal(t, targets, got)

	backend, err := o.GetBackend(ctx)
	require.NoError(t, err)
	assert.Equal(t, "vnx_10_0_0_10", backend.Name)
	assert.Equal(t, storage.Online, backend.State)
	assert.Equal(t, "node1", backend.ComputeInstanceID)
	assert.Equal(t, config.AllocationUnitBytes, backend.AllocationUnit)
}

func TestTerminate(t *testing.T) {
	ctx := context.Background()
	driver := newMockDriver(t)
	o := newBootstrappedOrchestrator(t, driver)

	driver.EXPECT().Terminate(gomock.Any())
	o.Terminate(ctx)

	_, err := o.ListVolumes(ctx)
	assert.True(t, errors.IsNotReadyError(err))
}
