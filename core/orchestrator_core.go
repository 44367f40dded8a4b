// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/netapp/vnx-blockdevice/config"
	"github.com/netapp/vnx-blockdevice/frontend"
	. "github.com/netapp/vnx-blockdevice/logging"
	"github.com/netapp/vnx-blockdevice/storage"
	"github.com/netapp/vnx-blockdevice/storage/factory"
	"github.com/netapp/vnx-blockdevice/storage_drivers/vnx/api"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

type backendCreator func(ctx context.Context, configData string) (*storage.Backend, error)

// VNXOrchestrator serves every request against the single backend built from configData.
type VNXOrchestrator struct {
	frontends      map[string]frontend.Plugin
	backend        *storage.Backend
	configData     string
	bootstrapped   bool
	bootstrapError error
	mutex          *sync.Mutex
	stateLock      *sync.RWMutex

	newBackend backendCreator
}

// NewVNXOrchestrator returns an orchestrator in a non-bootstrapped state.
func NewVNXOrchestrator(configData string) *VNXOrchestrator {
	return &VNXOrchestrator{
		frontends:      make(map[string]frontend.Plugin),
		configData:     configData,
		bootstrapped:   false,
		bootstrapError: errors.NotReadyError(),
		mutex:          &sync.Mutex{},
		stateLock:      &sync.RWMutex{},
		newBackend:     factory.NewStorageBackendForConfig,
	}
}

func (o *VNXOrchestrator) Bootstrap() error {
	ctx := GenerateRequestContext(nil, "", ContextSourceInternal, WorkflowCoreBootstrap, LogLayerCore)

	o.mutex.Lock()
	defer o.mutex.Unlock()

	if o.bootstrapped {
		return nil
	}

	if len(o.frontends) == 0 {
		Logc(ctx).Warning("Bootstrapping with no frontend.")
	}

	buildInfo.WithLabelValues(config.BuildHash, config.OrchestratorVersion, config.BuildType).Set(float64(1))

	backend, err := o.newBackend(ctx, o.configData)
	if backend != nil {
		updateBackendMetrics(backend)
	}
	if err != nil {
		Logc(ctx).WithError(err).Error("Could not initialize the storage backend.")
		bootstrapError := errors.BootstrapError(err)
		o.setState(backend, bootstrapError)
		return bootstrapError
	}

	o.bootstrapped = true
	o.setState(backend, nil)
	Logc(ctx).WithFields(LogFields{
		"backend":    backend.Name,
		"instanceID": backend.Driver.ComputeInstanceID(),
	}).Infof("%s bootstrapped successfully.", config.OrchestratorName)
	return nil
}

func (o *VNXOrchestrator) Terminate(ctx context.Context) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)

	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.stateLock.Lock()
	backend := o.backend
	o.bootstrapError = errors.NotReadyError()
	o.stateLock.Unlock()

	if backend != nil {
		backend.Terminate(ctx)
	}
	o.bootstrapped = false
}

// setState publishes the bootstrap outcome to request handlers, which may run while Bootstrap is in progress.
func (o *VNXOrchestrator) setState(backend *storage.Backend, bootstrapError error) {
	o.stateLock.Lock()
	defer o.stateLock.Unlock()
	if backend != nil {
		o.backend = backend
	}
	o.bootstrapError = bootstrapError
}

// readyBackend returns the backend, or the reason requests cannot be served yet.
func (o *VNXOrchestrator) readyBackend() (*storage.Backend, error) {
	o.stateLock.RLock()
	defer o.stateLock.RUnlock()
	if o.bootstrapError != nil {
		return nil, o.bootstrapError
	}
	return o.backend, nil
}

func updateBackendMetrics(backend *storage.Backend) {
	backendInfo.Reset()
	backendInfo.WithLabelValues(
		backend.GetDriverName(), backend.Name, backend.State.String(), backend.Driver.ComputeInstanceID(),
	).Set(float64(1))
}

func (o *VNXOrchestrator) updateVolumeMetrics(volumes []*storage.Volume) {
	counts := map[string]float64{volumeStateAttached: 0, volumeStateForeign: 0, volumeStateDetached: 0}
	bytes := map[string]float64{volumeStateAttached: 0, volumeStateForeign: 0, volumeStateDetached: 0}
	for _, volume := range volumes {
		state := volumeStateDetached
		if volume.IsAttached() {
			state = volumeStateAttached
		} else if volume.IsForeignAttached() {
			state = volumeStateForeign
		}
		counts[state]++
		bytes[state] += float64(volume.Size)
	}
	for state, count := range counts {
		volumesGauge.WithLabelValues(state).Set(count)
		volumeAllocatedBytesGauge.WithLabelValues(state).Set(bytes[state])
	}
}

func (o *VNXOrchestrator) AddFrontend(ctx context.Context, f frontend.Plugin) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)

	name := f.GetName()
	if _, ok := o.frontends[name]; ok {
		Logc(ctx).WithField("name", name).Warn("Adding frontend already present.")
		return
	}
	Logc(ctx).WithField("name", name).Info("Added frontend.")
	o.frontends[name] = f
}

func (o *VNXOrchestrator) GetFrontend(ctx context.Context, name string) (frontend.Plugin, error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)

	fe, ok := o.frontends[name]
	if !ok {
		return nil, fmt.Errorf("requested frontend %s does not exist", name)
	}

	Logc(ctx).WithField("name", name).Debug("Found requested frontend.")
	return fe, nil
}

func (o *VNXOrchestrator) GetVersion(_ context.Context) (string, error) {
	_, err := o.readyBackend()
	return config.OrchestratorVersion, err
}

func (o *VNXOrchestrator) GetBackend(ctx context.Context) (backendExternal *storage.BackendExternal, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)

	backend, err := o.readyBackend()
	if err != nil {
		return nil, err
	}

	defer recordTiming("backend_get", &err)()

	return backend.ConstructExternal(ctx), nil
}

func (o *VNXOrchestrator) CreateVolume(
	ctx context.Context, datasetID string, sizeBytes int64,
) (volume *storage.Volume, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)

	backend, err := o.readyBackend()
	if err != nil {
		return nil, err
	}

	defer recordTiming("volume_create", &err)()

	return backend.CreateVolume(ctx, datasetID, sizeBytes)
}

func (o *VNXOrchestrator) DestroyVolume(ctx context.Context, blockDeviceID string) (err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)

	backend, err := o.readyBackend()
	if err != nil {
		return err
	}

	defer recordTiming("volume_destroy", &err)()

	return backend.DestroyVolume(ctx, blockDeviceID)
}

func (o *VNXOrchestrator) AttachVolume(
	ctx context.Context, blockDeviceID, host string,
) (volume *storage.Volume, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)

	backend, err := o.readyBackend()
	if err != nil {
		return nil, err
	}

	defer recordTiming("volume_attach", &err)()

	return backend.AttachVolume(ctx, blockDeviceID, host)
}

func (o *VNXOrchestrator) DetachVolume(ctx context.Context, blockDeviceID string) (err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)

	backend, err := o.readyBackend()
	if err != nil {
		return err
	}

	defer recordTiming("volume_detach", &err)()

	return backend.DetachVolume(ctx, blockDeviceID)
}

func (o *VNXOrchestrator) GetDevicePath(ctx context.Context, blockDeviceID string) (path string, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)

	backend, err := o.readyBackend()
	if err != nil {
		return "", err
	}

	defer recordTiming("volume_get_path", &err)()

	return backend.GetDevicePath(ctx, blockDeviceID)
}

func (o *VNXOrchestrator) GetVolume(ctx context.Context, blockDeviceID string) (volume *storage.Volume, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)

	backend, err := o.readyBackend()
	if err != nil {
		return nil, err
	}

	defer recordTiming("volume_get", &err)()

	return backend.GetVolume(ctx, blockDeviceID)
}

func (o *VNXOrchestrator) ListVolumes(ctx context.Context) (volumes []*storage.Volume, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)

	backend, err := o.readyBackend()
	if err != nil {
		return nil, err
	}

	defer recordTiming("volume_list", &err)()

	volumes, err = backend.ListVolumes(ctx)
	if err != nil {
		return nil, err
	}
	o.updateVolumeMetrics(volumes)
	return volumes, nil
}

func (o *VNXOrchestrator) AllocationUnit(_ context.Context) (int64, error) {
	backend, err := o.readyBackend()
	if err != nil {
		return 0, err
	}
	return backend.Driver.AllocationUnit(), nil
}

func (o *VNXOrchestrator) ComputeInstanceID(_ context.Context) (string, error) {
	backend, err := o.readyBackend()
	if err != nil {
		return "", err
	}
	return backend.Driver.ComputeInstanceID(), nil
}

func (o *VNXOrchestrator) ISCSITargets(ctx context.Context) (targets []api.ISCSITarget, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)

	backend, err := o.readyBackend()
	if err != nil {
		return nil, err
	}

	defer recordTiming("iscsi_targets", &err)()

	return backend.ISCSITargets(ctx)
}
