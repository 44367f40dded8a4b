// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package scsi makes the kernel block device behind a masked LUN appear on this host, and removes it again.
package scsi

//go:generate mockgen -destination=../../mocks/mock_utils/mock_scsi/mock_scsi.go github.com/netapp/vnx-blockdevice/utils/scsi Devices

import (
	"context"
	"fmt"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/netapp/vnx-blockdevice/config"
	. "github.com/netapp/vnx-blockdevice/logging"
	"github.com/netapp/vnx-blockdevice/pkg/await"
	"github.com/netapp/vnx-blockdevice/utils/errors"
	"github.com/netapp/vnx-blockdevice/utils/exec"
)

const (
	fcHostClass    = "/sys/class/fc_host"
	iscsiHostClass = "/sys/class/iscsi_host"
	scsiHostClass  = "/sys/class/scsi_host"
	scsiDiskClass  = "/sys/class/scsi_disk"
	sdDriverPath   = "/sys/bus/scsi/drivers/sd"

	lsblkTimeout = 10 * time.Second
)

// Devices finds and removes the block devices that back host LUN numbers.
type Devices interface {
	// Adapters returns the SCSI host numbers of the FC and/or iSCSI adapters in use.
	Adapters(ctx context.Context) ([]int, error)
	// Rescan asks every adapter to probe the given HLU.
	Rescan(ctx context.Context, hlu int) error
	// DiscoverDevice rescans until the device for hlu appears and reports a nonzero size.
	DiscoverDevice(ctx context.Context, hlu int) (string, error)
	// ResolveDevice returns the usable device for hlu without rescanning.
	ResolveDevice(ctx context.Context, hlu int) (string, error)
	// RemoveDevice deletes the kernel SCSI devices for hlu. Every adapter is attempted.
	RemoveDevice(ctx context.Context, hlu int) error
}

type Client struct {
	chrootPathPrefix string
	command          exec.Command
	osFs             afero.Fs
	transport        config.Transport
	policy           await.Policy
}

func New(transport config.Transport, policy await.Policy) *Client {
	return NewDetailed(exec.NewCommand(), afero.NewOsFs(), transport, policy)
}

func NewDetailed(command exec.Command, osFs afero.Fs, transport config.Transport, policy await.Policy) *Client {
	chrootPathPrefix := ""
	if os.Getenv("DOCKER_PLUGIN_MODE") != "" {
		chrootPathPrefix = "/host"
	}
	return &Client{
		chrootPathPrefix: chrootPathPrefix,
		command:          command,
		osFs:             osFs,
		transport:        transport,
		policy:           policy,
	}
}

func (c *Client) adapterClasses() []string {
	switch c.transport {
	case config.TransportFC:
		return []string{fcHostClass}
	case config.TransportISCSI:
		return []string{iscsiHostClass}
	default:
		return []string{fcHostClass, iscsiHostClass}
	}
}

func (c *Client) Adapters(ctx context.Context) ([]int, error) {
	seen := make(map[int]bool)
	for _, class := range c.adapterClasses() {
		matches, err := afero.Glob(c.osFs, c.chrootPathPrefix+class+"/host*")
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			hostNumber, err := strconv.Atoi(strings.TrimPrefix(path.Base(match), "host"))
			if err != nil {
				Logc(ctx).WithField("adapter", match).Debug("Ignoring adapter with unexpected name.")
				continue
			}
			seen[hostNumber] = true
		}
	}

	if len(seen) == 0 {
		return nil, errors.NotFoundError("no %s SCSI adapters found", c.transport)
	}

	hosts := make([]int, 0, len(seen))
	for host := range seen {
		hosts = append(hosts, host)
	}
	sort.Ints(hosts)
	return hosts, nil
}

func (c *Client) Rescan(ctx context.Context, hlu int) error {
	hosts, err := c.Adapters(ctx)
	if err != nil {
		return err
	}
	return c.scanTargetLUN(ctx, hlu, hosts)
}

// scanTargetLUN asks each host adapter to probe every channel and target for the given LUN number.
func (c *Client) scanTargetLUN(ctx context.Context, hlu int, hosts []int) error {
	fields := LogFields{"hosts": hosts, "hlu": hlu}
	Logc(ctx).WithFields(fields).Debug(">>>> scsi.scanTargetLUN")
	defer Logc(ctx).WithFields(fields).Debug("<<<< scsi.scanTargetLUN")

	scanCmd := fmt.Sprintf("- - %d", hlu)
	for _, hostNumber := range hosts {
		filename := fmt.Sprintf("%s%s/host%d/scan", c.chrootPathPrefix, scsiHostClass, hostNumber)
		if err := c.writeTrigger(ctx, filename, scanCmd); err != nil {
			return err
		}
		Logc(ctx).WithFields(LogFields{
			"scanCmd":  scanCmd,
			"scanFile": filename,
			"host":     hostNumber,
		}).Debug("Invoked SCSI scan for host.")
	}
	return nil
}

// writeTrigger writes to a sysfs trigger file, which must already exist.
func (c *Client) writeTrigger(ctx context.Context, filename, value string) error {
	f, err := c.osFs.OpenFile(filename, os.O_APPEND|os.O_WRONLY, 0o200)
	if err != nil {
		Logc(ctx).WithField("file", filename).Warning("Could not open file for writing.")
		return err
	}
	defer func() { _ = f.Close() }()

	if written, err := f.WriteString(value); err != nil {
		Logc(ctx).WithFields(LogFields{"file": filename, "error": err}).Warning("Could not write to file.")
		return err
	} else if written == 0 {
		Logc(ctx).WithField("file", filename).Warning("No data written to file.")
		return fmt.Errorf("no data written to %s", filename)
	}
	return nil
}

// busPattern is the scsi_disk glob for an HLU on one adapter, e.g. /sys/class/scsi_disk/3:*:*:7.
func (c *Client) busPattern(host, hlu int) string {
	return fmt.Sprintf("%s%s/%d:*:*:%d", c.chrootPathPrefix, scsiDiskClass, host, hlu)
}

func (c *Client) expectedBusPath(hosts []int, hlu int) string {
	patterns := make([]string, 0, len(hosts))
	for _, host := range hosts {
		patterns = append(patterns, c.busPattern(host, hlu))
	}
	return strings.Join(patterns, ",")
}

// findBusPath returns the first bus address for hlu whose block device pointer is populated.
func (c *Client) findBusPath(ctx context.Context, hosts []int, hlu int) (string, bool) {
	for _, host := range hosts {
		matches, err := afero.Glob(c.osFs, c.busPattern(host, hlu))
		if err != nil {
			Logc(ctx).WithError(err).Debug("Could not glob bus paths.")
			continue
		}
		sort.Strings(matches)
		for _, busPath := range matches {
			if name, ok := c.blockDeviceName(busPath); ok && name != "" {
				return busPath, true
			}
		}
	}
	return "", false
}

// blockDeviceName reads the kernel device name from <bus>/device/block.
func (c *Client) blockDeviceName(busPath string) (string, bool) {
	entries, err := afero.ReadDir(c.osFs, busPath+"/device/block")
	if err != nil || len(entries) == 0 {
		return "", false
	}
	return entries[0].Name(), true
}

// deviceSize returns the size lsblk reports for a device; zero means the kernel has not read its capacity yet.
func (c *Client) deviceSize(ctx context.Context, devicePath string) (int64, error) {
	out, err := c.command.ExecuteWithTimeout(ctx, "lsblk", lsblkTimeout, false, "-b", "-n", "-d", "-o", "SIZE",
		devicePath)
	if err != nil {
		return 0, err
	}
	size, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse size of %s; %v", devicePath, err)
	}
	return size, nil
}

func (c *Client) deviceUsable(ctx context.Context, devicePath string) bool {
	size, err := c.deviceSize(ctx, devicePath)
	if err != nil {
		Logc(ctx).WithField("device", devicePath).WithError(err).Debug("Device not usable yet.")
		return false
	}
	return size > 0
}

func (c *Client) DiscoverDevice(ctx context.Context, hlu int) (string, error) {
	Logc(ctx).WithField("hlu", hlu).Debug(">>>> scsi.DiscoverDevice")
	defer Logc(ctx).WithField("hlu", hlu).Debug("<<<< scsi.DiscoverDevice")

	hosts, err := c.Adapters(ctx)
	if err != nil {
		return "", err
	}

	// Phase A: the bus enumerates the HLU.
	var busPath string
	rescanBus := func(ctx context.Context, attempt int) error {
		return c.scanTargetLUN(ctx, hlu, hosts)
	}
	busPresent := func(ctx context.Context) (bool, error) {
		var ok bool
		busPath, ok = c.findBusPath(ctx, hosts, hlu)
		return ok, nil
	}
	result, err := await.Await(ctx, c.policy, rescanBus, busPresent)
	discoveryAttempts.WithLabelValues(phaseBus).Observe(float64(result.Attempts))
	if err != nil {
		if errors.IsMaxWaitExceededError(err) {
			return "", errors.DeviceDiscoveryTimeoutError(c.expectedBusPath(hosts, hlu), result.Elapsed,
				result.Attempts)
		}
		return "", err
	}

	busElapsed := result.Elapsed
	name, _ := c.blockDeviceName(busPath)
	devicePath := "/dev/" + name
	Logc(ctx).WithFields(LogFields{
		"busPath":  busPath,
		"device":   devicePath,
		"attempts": result.Attempts,
	}).Debug("Bus path found.")

	// Phase B: the device reports a capacity. Retry with a per-device rescan rather than a bus scan.
	rescanDevice := func(ctx context.Context, attempt int) error {
		if attempt == 1 {
			return nil
		}
		if err := c.writeTrigger(ctx, busPath+"/device/rescan", "1"); err != nil {
			Logc(ctx).WithField("busPath", busPath).WithError(err).Warning("Device rescan failed.")
		}
		return nil
	}
	usable := func(ctx context.Context) (bool, error) {
		return c.deviceUsable(ctx, devicePath), nil
	}
	result, err = await.Await(ctx, c.policy, rescanDevice, usable)
	discoveryAttempts.WithLabelValues(phaseDevice).Observe(float64(result.Attempts))
	if err != nil {
		if errors.IsMaxWaitExceededError(err) {
			// Elapsed time is reported from the start of discovery, not of this phase.
			return "", errors.DeviceDiscoveryTimeoutError(devicePath, busElapsed+result.Elapsed, result.Attempts)
		}
		return "", err
	}

	return devicePath, nil
}

func (c *Client) ResolveDevice(ctx context.Context, hlu int) (string, error) {
	hosts, err := c.Adapters(ctx)
	if err != nil {
		return "", err
	}
	busPath, ok := c.findBusPath(ctx, hosts, hlu)
	if !ok {
		return "", errors.NotFoundError("no device found at %s", c.expectedBusPath(hosts, hlu))
	}
	name, _ := c.blockDeviceName(busPath)
	devicePath := "/dev/" + name
	if !c.deviceUsable(ctx, devicePath) {
		return "", errors.NotFoundError("device %s is not usable", devicePath)
	}
	return devicePath, nil
}

func (c *Client) RemoveDevice(ctx context.Context, hlu int) error {
	Logc(ctx).WithField("hlu", hlu).Debug(">>>> scsi.RemoveDevice")
	defer Logc(ctx).WithField("hlu", hlu).Debug("<<<< scsi.RemoveDevice")

	hosts, err := c.Adapters(ctx)
	if err != nil {
		return err
	}

	var errs error
	for _, host := range hosts {
		pattern := fmt.Sprintf("%s%s/%d:*:*:%d", c.chrootPathPrefix, sdDriverPath, host, hlu)
		matches, err := afero.Glob(c.osFs, pattern)
		if err != nil {
			errs = errors.Append(errs, err)
			continue
		}
		for _, device := range matches {
			if err := c.writeTrigger(ctx, device+"/delete", "1"); err != nil {
				errs = errors.Append(errs, fmt.Errorf("could not delete %s; %v", device, err))
				continue
			}
			Logc(ctx).WithField("device", device).Debug("Deleted SCSI device.")
		}
	}
	return errs
}
