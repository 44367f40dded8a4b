// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package vnx implements the block-device lifecycle backend for EMC VNX arrays. LUNs are created in a
// storage pool, masked into this host's storage group and discovered on the SCSI bus.
package vnx

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/brunoga/deep"
	"golang.org/x/sync/errgroup"
	"k8s.io/utils/clock"

	tridentconfig "github.com/netapp/vnx-blockdevice/config"
	. "github.com/netapp/vnx-blockdevice/logging"
	"github.com/netapp/vnx-blockdevice/pkg/await"
	"github.com/netapp/vnx-blockdevice/pkg/capacity"
	"github.com/netapp/vnx-blockdevice/pkg/locks"
	"github.com/netapp/vnx-blockdevice/pkg/network"
	"github.com/netapp/vnx-blockdevice/storage"
	drivers "github.com/netapp/vnx-blockdevice/storage_drivers"
	"github.com/netapp/vnx-blockdevice/storage_drivers/vnx/api"
	"github.com/netapp/vnx-blockdevice/utils/errors"
	"github.com/netapp/vnx-blockdevice/utils/osutils"
	"github.com/netapp/vnx-blockdevice/utils/scsi"
)

const (
	lunReadyPollInterval = 2 * time.Second
	alreadyInUse         = "already in use"
)

// StorageDriver is the emc-vnx backend. It is safe for concurrent use once initialized.
type StorageDriver struct {
	initialized bool
	Config      VNXStorageDriverConfig

	// API and Devices may be set before Initialize to substitute the array and host layers.
	API     api.Client
	Devices scsi.Devices

	osUtils   osutils.Utils
	names     *IdentityMapper
	allocator *HLUAllocator
	clock     clock.Clock

	hostname       string
	storageGroup   string
	portalNetworks network.Networks

	volumeLocks *locks.GCNamedMutex
	groupLocks  *locks.GCNamedMutex
}

func (d *StorageDriver) Name() string {
	return tridentconfig.VNXStorageDriverName
}

// BackendName returns the configured backend name, or one derived from the array address.
func (d *StorageDriver) BackendName() string {
	if d.Config.CommonStorageDriverConfig != nil && d.Config.BackendName != "" {
		return d.Config.BackendName
	}
	return "vnx_" + strings.ReplaceAll(d.Config.SPAAddress, ".", "_")
}

func (d *StorageDriver) trace(ctx context.Context, method string, fields LogFields) func() {
	fields["Method"] = method
	fields["Type"] = "StorageDriver"
	logger := Logd(ctx, d.Name(), d.Config.debugTraceFlag(drivers.TraceMethod))
	logger.WithFields(fields).Debug(">>>> " + method)
	return func() { logger.WithFields(fields).Debug("<<<< " + method) }
}

// Initialize parses the backend configuration, connects to the array and prepares this host's storage group.
func (d *StorageDriver) Initialize(
	ctx context.Context, configJSON string, commonConfig *drivers.CommonStorageDriverConfig,
) error {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerVNXDriver)
	Logd(ctx, d.Name(), commonConfig.DebugTraceFlags[drivers.TraceMethod]).WithFields(LogFields{
		"Method": "Initialize", "Type": "StorageDriver",
	}).Debug(">>>> Initialize")
	defer Logd(ctx, d.Name(), commonConfig.DebugTraceFlags[drivers.TraceMethod]).WithFields(LogFields{
		"Method": "Initialize", "Type": "StorageDriver",
	}).Debug("<<<< Initialize")

	config, err := InitializeVNXConfig(ctx, configJSON, commonConfig)
	if err != nil {
		return fmt.Errorf("error initializing %s driver: %v", d.Name(), err)
	}
	d.Config = *config
	if d.portalNetworks, err = network.ParseNetworks(ctx, config.PortalNetworks); err != nil {
		return fmt.Errorf("error initializing %s driver: %v", d.Name(), err)
	}

	if d.clock == nil {
		d.clock = clock.RealClock{}
	}
	if d.osUtils == nil {
		d.osUtils = osutils.New()
	}
	if d.volumeLocks == nil {
		d.volumeLocks = locks.NewGCNamedMutex()
	}
	if d.groupLocks == nil {
		d.groupLocks = locks.NewGCNamedMutex()
	}
	if d.allocator == nil {
		d.allocator = NewHLUAllocator(nil)
	}

	d.hostname = config.Hostname
	if d.hostname == "" {
		if d.hostname, err = d.osUtils.GetHostname(ctx); err != nil {
			return fmt.Errorf("error initializing %s driver; could not determine hostname: %v", d.Name(), err)
		}
	}
	d.storageGroup = config.StorageGroup
	if d.storageGroup == "" {
		d.storageGroup = tridentconfig.OrchestratorName + "-" + d.hostname
	}

	prefix := drivers.GetStoragePrefix(commonConfig, tridentconfig.DefaultStoragePrefix)
	if d.names, err = NewIdentityMapper(prefix, config.ClusterID); err != nil {
		return fmt.Errorf("error initializing %s driver: %v", d.Name(), err)
	}

	// Unit tests mock the API layer, so we only use the real API interface if it doesn't already exist.
	if d.API == nil {
		d.API = api.NewClient(api.ClientConfig{
			CLIPath:         config.NaviseccliPath,
			SPAddress:       config.SPAAddress,
			SecFilePath:     config.SecFilePath,
			Username:        config.Username,
			Password:        config.Password,
			Scope:           config.Scope,
			CommandTimeout:  config.commandTimeout(),
			MaxSessions:     config.MaxSessions,
			DebugTraceFlags: commonConfig.DebugTraceFlags,
		})
	}
	if d.Devices == nil {
		d.Devices = scsi.New(tridentconfig.Transport(config.Transport), config.discoveryPolicy())
	}

	if err = d.bootstrap(ctx); err != nil {
		return fmt.Errorf("error initializing %s driver: %w", d.Name(), err)
	}

	Logc(ctx).WithFields(LogFields{
		"backend":      d.BackendName(),
		"storagePool":  config.StoragePool,
		"storageGroup": d.storageGroup,
		"namePrefix":   d.names.NamePrefix(),
	}).Info("Initialized VNX backend.")

	d.initialized = true
	return nil
}

// bootstrap checks the pool, optionally creates and connects the storage group, and confirms the group exists.
func (d *StorageDriver) bootstrap(ctx context.Context) error {
	if err := d.API.CheckPool(ctx, d.Config.StoragePool); err != nil {
		return fmt.Errorf("could not find storage pool %s: %v", d.Config.StoragePool, err)
	}

	if d.Config.CreateStorageGroup {
		err := d.API.CreateStorageGroup(ctx, d.storageGroup)
		if err != nil && !isAlreadyInUse(err) {
			return fmt.Errorf("could not create storage group %s: %v", d.storageGroup, err)
		}
		if err = d.API.ConnectHost(ctx, d.hostname, d.storageGroup); err != nil {
			return fmt.Errorf("could not connect host %s to storage group %s: %v", d.hostname, d.storageGroup, err)
		}
		Audit().Logf(ctx, AuditGroupBootstrap, LogFields{"storageGroup": d.storageGroup, "host": d.hostname},
			"Storage group %s ready for host %s.", d.storageGroup, d.hostname)
	}

	if _, err := d.localGroup(ctx); err != nil {
		return err
	}

	switch tridentconfig.Transport(d.Config.Transport) {
	case tridentconfig.TransportISCSI, tridentconfig.TransportAuto:
		targets, err := d.API.GetISCSITargets(ctx)
		if err != nil {
			Logc(ctx).WithError(err).Warning("Could not discover iSCSI targets.")
			break
		}
		for _, target := range targets {
			Logc(ctx).WithFields(LogFields{
				"sp":      target.SP,
				"port":    target.PortID,
				"iqn":     target.IQN,
				"portals": target.Portals,
			}).Debug("Found iSCSI target.")
		}
	}
	return nil
}

func (d *StorageDriver) Initialized() bool {
	return d.initialized
}

func (d *StorageDriver) Terminate(ctx context.Context) {
	defer d.trace(ctx, "Terminate", LogFields{})()
	d.initialized = false
}

// GetExternalConfig returns a clone of this backend's config, sanitized for external consumption.
func (d *StorageDriver) GetExternalConfig(ctx context.Context) interface{} {
	cloneConfig := deep.MustCopy(d.Config)
	cloneConfig.Username = tridentconfig.REDACTED
	cloneConfig.Password = tridentconfig.REDACTED
	return cloneConfig
}

// isAlreadyInUse reports whether the array refused a create because the name exists.
func isAlreadyInUse(err error) bool {
	_, output, ok := errors.ArrayCommandFailedDetails(err)
	return ok && strings.Contains(output, alreadyInUse)
}

func isCode(err error, code int) bool {
	c, _, ok := errors.ArrayCommandFailedDetails(err)
	return ok && c == code
}

// localGroup reads this host's storage group.
func (d *StorageDriver) localGroup(ctx context.Context) (*api.StorageGroup, error) {
	group, err := d.API.GetStorageGroup(ctx, d.storageGroup)
	if err != nil {
		if errors.IsArrayCommandFailedError(err) || errors.IsNotFoundError(err) {
			return nil, errors.StorageGroupMissingError(d.storageGroup, err)
		}
		return nil, err
	}
	return group, nil
}

// lookupLUN returns the LUN backing a blockdevice ID, or an UnknownVolumeError.
func (d *StorageDriver) lookupLUN(ctx context.Context, blockDeviceID string) (*api.LUN, error) {
	if !storage.ValidBlockDeviceID(blockDeviceID) {
		return nil, errors.UnknownVolumeError(blockDeviceID)
	}
	lun, err := d.API.GetLUN(ctx, d.names.NameFor(blockDeviceID))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.UnknownVolumeError(blockDeviceID)
		}
		return nil, err
	}
	if lun.ID == nil {
		return nil, fmt.Errorf("array reported no LUN number for volume %s", blockDeviceID)
	}
	return lun, nil
}

func (d *StorageDriver) volumeFromLUN(blockDeviceID string, lun *api.LUN) *storage.Volume {
	datasetID, _ := storage.DatasetIDFromBlockDeviceID(blockDeviceID)
	volume := &storage.Volume{BlockDeviceID: blockDeviceID, DatasetID: datasetID}
	if lun.CapacityGB != nil {
		volume.Size = capacity.GiBToBytes(*lun.CapacityGB)
	}
	return volume
}

// CreateVolume creates a LUN for the dataset, rounded up to whole GiB, and waits for it to become ready.
// Creating a volume that already exists returns the existing volume.
func (d *StorageDriver) CreateVolume(ctx context.Context, datasetID string, sizeBytes int64) (
	volume *storage.Volume, err error,
) {
	defer d.trace(ctx, "CreateVolume", LogFields{"datasetID": datasetID, "size": sizeBytes})()
	defer func(start time.Time) { d.observe(opCreate, start, err) }(d.clock.Now())

	blockDeviceID, err := storage.BlockDeviceIDFromDatasetID(datasetID)
	if err != nil {
		return nil, errors.InvalidInputError("invalid dataset ID; %v", err)
	}
	if sizeBytes <= 0 {
		return nil, errors.InvalidInputError("invalid volume size %d", sizeBytes)
	}
	if _, _, err = drivers.CheckVolumeSizeLimits(ctx, sizeBytes, d.Config.CommonStorageDriverConfig); err != nil {
		return nil, err
	}

	defer d.volumeLocks.LockWithGuard(blockDeviceID)()

	name := d.names.NameFor(blockDeviceID)
	sizeGB := capacity.ToGiBCeil(sizeBytes)

	if err = d.API.CreateLUN(ctx, name, sizeGB, d.Config.StoragePool); err != nil {
		if !isAlreadyInUse(err) {
			return nil, err
		}
		Logc(ctx).WithField("name", name).Info("LUN already exists.")
	} else {
		Audit().Logf(ctx, AuditLUNCreate, LogFields{"name": name, "sizeGB": sizeGB, "pool": d.Config.StoragePool},
			"Created LUN %s.", name)
	}

	lun, err := d.waitForLUNReady(ctx, name)
	if err != nil {
		return nil, err
	}

	volume = d.volumeFromLUN(blockDeviceID, lun)
	if volume.Size == 0 {
		volume.Size = sizeGB * capacity.OneGiB
	}
	return volume, nil
}

// waitForLUNReady polls the LUN until it is Ready. A Faulted LUN ends the wait with an error.
func (d *StorageDriver) waitForLUNReady(ctx context.Context, name string) (*api.LUN, error) {
	timeout := d.Config.lunReadyTimeout()
	policy := await.Policy{
		MaxAttempts:  1,
		Timeout:      await.Fixed(timeout),
		PollInterval: min(lunReadyPollInterval, timeout),
		Clock:        d.clock,
	}

	var lun *api.LUN
	isReady := func(ctx context.Context) (bool, error) {
		var err error
		if lun, err = d.API.GetLUN(ctx, name); err != nil {
			if errors.IsNotFoundError(err) {
				return false, nil
			}
			return false, err
		}
		if lun.IsFaulted() {
			return false, fmt.Errorf("LUN %s is faulted; status: %s", name, lunStatus(lun))
		}
		return lun.IsReady(), nil
	}

	result, err := await.Await(ctx, policy, nil, isReady)
	if err != nil {
		if errors.IsMaxWaitExceededError(err) {
			return nil, errors.TimeoutError("LUN %s was not ready after %v", name, result.Elapsed)
		}
		return nil, err
	}
	return lun, nil
}

func lunStatus(lun *api.LUN) string {
	if lun.Status == nil {
		return "unknown"
	}
	return *lun.Status
}

// DestroyVolume deletes the LUN, removing it from any storage group it is masked into.
func (d *StorageDriver) DestroyVolume(ctx context.Context, blockDeviceID string) (err error) {
	defer d.trace(ctx, "DestroyVolume", LogFields{"blockDeviceID": blockDeviceID})()
	defer func(start time.Time) { d.observe(opDestroy, start, err) }(d.clock.Now())

	if !storage.ValidBlockDeviceID(blockDeviceID) {
		return errors.UnknownVolumeError(blockDeviceID)
	}

	defer d.volumeLocks.LockWithGuard(blockDeviceID)()

	name := d.names.NameFor(blockDeviceID)
	if err = d.API.DestroyLUN(ctx, name); err != nil {
		if isCode(err, api.CodeLUNNotFound) {
			return errors.UnknownVolumeError(blockDeviceID)
		}
		return err
	}

	Audit().Logf(ctx, AuditLUNDestroy, LogFields{"name": name}, "Destroyed LUN %s.", name)
	return nil
}

// AttachVolume masks the LUN into this host's storage group and waits for its block device to appear.
// A LUN that is already masked keeps its HLU.
func (d *StorageDriver) AttachVolume(ctx context.Context, blockDeviceID, host string) (
	volume *storage.Volume, err error,
) {
	defer d.trace(ctx, "AttachVolume", LogFields{"blockDeviceID": blockDeviceID, "host": host})()
	defer func(start time.Time) { d.observe(opAttach, start, err) }(d.clock.Now())

	if host != d.ComputeInstanceID() {
		return nil, errors.InvalidInputError("cannot attach to host %s from host %s", host, d.ComputeInstanceID())
	}

	defer d.volumeLocks.LockWithGuard(blockDeviceID)()

	lun, err := d.lookupLUN(ctx, blockDeviceID)
	if err != nil {
		return nil, err
	}
	alu := *lun.ID

	hlu, err := d.maskLUN(ctx, blockDeviceID, alu)
	if err != nil {
		return nil, err
	}

	devicePath, err := d.Devices.DiscoverDevice(ctx, hlu)
	if err != nil {
		return nil, err
	}

	Logc(ctx).WithFields(LogFields{
		"blockDeviceID": blockDeviceID,
		"alu":           alu,
		"hlu":           hlu,
		"device":        devicePath,
	}).Info("Volume attached.")

	volume = d.volumeFromLUN(blockDeviceID, lun)
	volume.AttachedTo = &host
	return volume, nil
}

// maskLUN returns the HLU of the ALU in the local group, adding it under a newly chosen HLU if needed.
func (d *StorageDriver) maskLUN(ctx context.Context, blockDeviceID string, alu int) (int, error) {
	defer d.groupLocks.LockWithGuard(d.storageGroup)()

	group, err := d.localGroup(ctx)
	if err != nil {
		return 0, err
	}

	if hlu, ok := group.HLUFor(alu); ok {
		Logc(ctx).WithFields(LogFields{"alu": alu, "hlu": hlu}).Debug("LUN already masked to this host.")
		return hlu, nil
	}

	hlu, err := d.allocator.ChooseHLU(group)
	if err != nil {
		return 0, err
	}

	if err = d.API.AddHLU(ctx, d.storageGroup, hlu, alu); err != nil {
		if isCode(err, api.CodeHLUAlreadyUsed) {
			return 0, errors.AlreadyAttachedVolumeError(blockDeviceID, err)
		}
		return 0, err
	}

	Audit().Logf(ctx, AuditLUNMask, LogFields{"storageGroup": d.storageGroup, "alu": alu, "hlu": hlu},
		"Masked ALU %d as HLU %d.", alu, hlu)
	return hlu, nil
}

// DetachVolume removes the host's block devices for the LUN, unmasks it and rescans.
func (d *StorageDriver) DetachVolume(ctx context.Context, blockDeviceID string) (err error) {
	defer d.trace(ctx, "DetachVolume", LogFields{"blockDeviceID": blockDeviceID})()
	defer func(start time.Time) { d.observe(opDetach, start, err) }(d.clock.Now())

	defer d.volumeLocks.LockWithGuard(blockDeviceID)()

	lun, err := d.lookupLUN(ctx, blockDeviceID)
	if err != nil {
		return err
	}
	alu := *lun.ID

	defer d.groupLocks.LockWithGuard(d.storageGroup)()

	group, err := d.localGroup(ctx)
	if err != nil {
		return err
	}
	hlu, ok := group.HLUFor(alu)
	if !ok {
		return errors.UnattachedVolumeError(blockDeviceID)
	}

	if err = d.Devices.RemoveDevice(ctx, hlu); err != nil {
		Logc(ctx).WithField("hlu", hlu).WithError(err).Warning("Could not remove all devices.")
	} else {
		Audit().Logf(ctx, AuditDeviceRemove, LogFields{"hlu": hlu}, "Removed devices for HLU %d.", hlu)
	}

	if err = d.API.RemoveHLU(ctx, d.storageGroup, hlu); err != nil {
		return err
	}
	Audit().Logf(ctx, AuditLUNUnmask, LogFields{"storageGroup": d.storageGroup, "alu": alu, "hlu": hlu},
		"Unmasked HLU %d.", hlu)

	if rescanErr := d.Devices.Rescan(ctx, hlu); rescanErr != nil {
		Logc(ctx).WithField("hlu", hlu).WithError(rescanErr).Warning("Rescan after detach failed.")
	}
	return nil
}

// GetDevicePath returns the block device of an attached volume without rescanning.
func (d *StorageDriver) GetDevicePath(ctx context.Context, blockDeviceID string) (path string, err error) {
	defer d.trace(ctx, "GetDevicePath", LogFields{"blockDeviceID": blockDeviceID})()
	defer func(start time.Time) { d.observe(opGetPath, start, err) }(d.clock.Now())

	lun, err := d.lookupLUN(ctx, blockDeviceID)
	if err != nil {
		return "", err
	}
	group, err := d.localGroup(ctx)
	if err != nil {
		return "", err
	}
	hlu, ok := group.HLUFor(*lun.ID)
	if !ok {
		return "", errors.UnattachedVolumeError(blockDeviceID)
	}

	path, err = d.Devices.ResolveDevice(ctx, hlu)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return "", errors.WrapWithUnattachedVolumeError(err, blockDeviceID)
		}
		return "", err
	}
	return path, nil
}

// GetVolume returns one volume as ListVolumes would report it, without foreign group details.
func (d *StorageDriver) GetVolume(ctx context.Context, blockDeviceID string) (*storage.Volume, error) {
	defer d.trace(ctx, "GetVolume", LogFields{"blockDeviceID": blockDeviceID})()

	lun, err := d.lookupLUN(ctx, blockDeviceID)
	if err != nil {
		return nil, err
	}
	group, err := d.localGroup(ctx)
	if err != nil {
		return nil, err
	}

	volume := d.volumeFromLUN(blockDeviceID, lun)
	if _, ok := group.HLUFor(*lun.ID); ok {
		host := d.ComputeInstanceID()
		volume.AttachedTo = &host
	}
	return volume, nil
}

// ListVolumes returns the volumes of this cluster. A volume counts as attached only if it is masked into
// this host's storage group; masking into any other group is reported in ForeignGroups.
func (d *StorageDriver) ListVolumes(ctx context.Context) (volumes []*storage.Volume, err error) {
	defer d.trace(ctx, "ListVolumes", LogFields{})()
	defer func(start time.Time) { d.observe(opList, start, err) }(d.clock.Now())

	var (
		luns   []api.LUN
		local  *api.StorageGroup
		groups []api.StorageGroup
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		luns, err = d.API.ListLUNs(gctx)
		return err
	})
	g.Go(func() (err error) {
		local, err = d.localGroup(gctx)
		return err
	})
	g.Go(func() (err error) {
		groups, err = d.API.ListStorageGroups(gctx)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	host := d.ComputeInstanceID()
	volumes = make([]*storage.Volume, 0)
	for i := range luns {
		lun := &luns[i]
		if lun.Name == nil || lun.ID == nil {
			continue
		}
		blockDeviceID, ok := d.names.BlockDeviceIDFor(*lun.Name)
		if !ok {
			continue
		}

		volume := d.volumeFromLUN(blockDeviceID, lun)
		if _, ok := local.HLUFor(*lun.ID); ok {
			volume.AttachedTo = &host
		}
		for j := range groups {
			if groups[j].Name == d.storageGroup {
				continue
			}
			if _, ok := groups[j].HLUFor(*lun.ID); ok {
				volume.ForeignGroups = append(volume.ForeignGroups, groups[j].Name)
			}
		}
		volumes = append(volumes, volume)
	}

	sort.Slice(volumes, func(i, j int) bool { return volumes[i].BlockDeviceID < volumes[j].BlockDeviceID })
	return volumes, nil
}

// AllocationUnit is the granularity of volume sizes; the array allocates whole GiB.
func (d *StorageDriver) AllocationUnit() int64 {
	return tridentconfig.AllocationUnitBytes
}

// ComputeInstanceID identifies this host; it is the host name the storage group is keyed on.
func (d *StorageDriver) ComputeInstanceID() string {
	return d.hostname
}

// StorageGroup is the name of this host's storage group.
func (d *StorageDriver) StorageGroup() string {
	return d.storageGroup
}

// ISCSITargets returns the array's iSCSI front-end ports. When portal networks are configured, only
// portals inside them are reported and targets left without a portal are dropped.
func (d *StorageDriver) ISCSITargets(ctx context.Context) ([]api.ISCSITarget, error) {
	defer d.trace(ctx, "ISCSITargets", LogFields{})()

	targets, err := d.API.GetISCSITargets(ctx)
	if err != nil || len(d.portalNetworks) == 0 {
		return targets, err
	}

	filtered := make([]api.ISCSITarget, 0, len(targets))
	for _, target := range targets {
		portals := make([]api.ISCSIPortal, 0, len(target.Portals))
		for _, portal := range target.Portals {
			if d.portalNetworks.Contains(portal.IPAddress) {
				portals = append(portals, portal)
			}
		}
		if len(portals) == 0 {
			Logc(ctx).WithField("iqn", target.IQN).Debug("No portals in the configured networks, skipping target.")
			continue
		}
		target.Portals = portals
		filtered = append(filtered, target)
	}
	return filtered, nil
}
