// Copyright 2025 NetApp, Inc. All Rights Reserved.

package scsi

import (
	"context"
	"io"
	"os"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	clocktesting "k8s.io/utils/clock/testing"

	"github.com/netapp/vnx-blockdevice/config"
	. "github.com/netapp/vnx-blockdevice/logging"
	mockexec "github.com/netapp/vnx-blockdevice/mocks/mock_utils/mock_exec"
	"github.com/netapp/vnx-blockdevice/pkg/await"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

func TestMain(m *testing.M) {
	InitLogOutput(io.Discard)
	os.Exit(m.Run())
}

func testPolicy() await.Policy {
	return await.Policy{
		MaxAttempts:  5,
		Timeout:      await.Escalating(5 * time.Second),
		PollInterval: time.Second,
		Clock:        clocktesting.NewFakeClock(time.Unix(0, 0)),
	}
}

func newTestClient(t *testing.T, transport config.Transport) (*Client, afero.Fs, *mockexec.MockCommand) {
	fs := afero.NewMemMapFs()
	command := mockexec.NewMockCommand(gomock.NewController(t))
	client := NewDetailed(command, fs, transport, testPolicy())
	client.chrootPathPrefix = ""
	return client, fs, command
}

func addFCHost(t *testing.T, fs afero.Fs, host string) {
	require.NoError(t, fs.MkdirAll("/sys/class/fc_host/host"+host, 0o755))
	touch(t, fs, "/sys/class/scsi_host/host"+host+"/scan")
}

func addDisk(t *testing.T, fs afero.Fs, address, name string) {
	require.NoError(t, fs.MkdirAll("/sys/class/scsi_disk/"+address+"/device/block/"+name, 0o755))
	touch(t, fs, "/sys/class/scsi_disk/"+address+"/device/rescan")
}

func expectSize(command *mockexec.MockCommand, device, size string) *gomock.Call {
	return command.EXPECT().ExecuteWithTimeout(gomock.Any(), "lsblk", gomock.Any(), false,
		"-b", "-n", "-d", "-o", "SIZE", device).Return([]byte(size), nil)
}

func touch(t *testing.T, fs afero.Fs, name string) {
	require.NoError(t, fs.MkdirAll(path.Dir(name), 0o755))
	require.NoError(t, afero.WriteFile(fs, name, nil, 0o200))
}

func readFile(t *testing.T, fs afero.Fs, name string) string {
	content, err := afero.ReadFile(fs, name)
	require.NoError(t, err)
	return string(content)
}

func TestAdapters(t *testing.T) {
	tests := []struct {
		name      string
		transport config.Transport
		expected  []int
		wantErr   bool
	}{
		{"fc only", config.TransportFC, []int{1, 3}, false},
		{"iscsi only", config.TransportISCSI, []int{5}, false},
		{"auto", config.TransportAuto, []int{1, 3, 5}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client, fs, _ := newTestClient(t, test.transport)
			require.NoError(t, fs.MkdirAll("/sys/class/fc_host/host3", 0o755))
			require.NoError(t, fs.MkdirAll("/sys/class/fc_host/host1", 0o755))
			require.NoError(t, fs.MkdirAll("/sys/class/fc_host/hostX", 0o755))
			require.NoError(t, fs.MkdirAll("/sys/class/iscsi_host/host5", 0o755))

			hosts, err := client.Adapters(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, test.expected, hosts)
		})
	}
}

func TestAdapters_None(t *testing.T) {
	client, _, _ := newTestClient(t, config.TransportFC)
	_, err := client.Adapters(context.Background())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRescan(t *testing.T) {
	client, fs, _ := newTestClient(t, config.TransportFC)
	addFCHost(t, fs, "3")
	addFCHost(t, fs, "4")

	assert.NoError(t, client.Rescan(context.Background(), 7))
	assert.Equal(t, "- - 7", readFile(t, fs, "/sys/class/scsi_host/host3/scan"))
	assert.Equal(t, "- - 7", readFile(t, fs, "/sys/class/scsi_host/host4/scan"))
}

func TestRescan_MissingScanFile(t *testing.T) {
	client, fs, _ := newTestClient(t, config.TransportFC)
	require.NoError(t, fs.MkdirAll("/sys/class/fc_host/host3", 0o755))

	assert.Error(t, client.Rescan(context.Background(), 7))
}

func TestDiscoverDevice(t *testing.T) {
	client, fs, command := newTestClient(t, config.TransportFC)
	addFCHost(t, fs, "3")
	addDisk(t, fs, "3:0:0:7", "sdc")
	expectSize(command, "/dev/sdc", "8589934592\n")

	device, err := client.DiscoverDevice(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, "/dev/sdc", device)
	assert.Equal(t, "- - 7", readFile(t, fs, "/sys/class/scsi_host/host3/scan"))
	assert.Empty(t, readFile(t, fs, "/sys/class/scsi_disk/3:0:0:7/device/rescan"))
}

func TestDiscoverDevice_IgnoresOtherHLUs(t *testing.T) {
	client, fs, _ := newTestClient(t, config.TransportFC)
	addFCHost(t, fs, "3")
	addDisk(t, fs, "3:0:0:17", "sdd")
	addDisk(t, fs, "4:0:0:7", "sde")

	_, err := client.DiscoverDevice(context.Background(), 7)
	assert.True(t, errors.IsDeviceDiscoveryTimeoutError(err))
}

func TestDiscoverDevice_BusTimeout(t *testing.T) {
	client, fs, _ := newTestClient(t, config.TransportFC)
	addFCHost(t, fs, "3")
	// A bus entry without a block device pointer is not enough
	require.NoError(t, fs.MkdirAll("/sys/class/scsi_disk/3:0:0:7/device/block", 0o755))

	_, err := client.DiscoverDevice(context.Background(), 7)

	require.Error(t, err)
	expected, elapsed, attempts, ok := errors.DeviceDiscoveryTimeoutDetails(err)
	assert.True(t, ok)
	assert.Equal(t, "/sys/class/scsi_disk/3:*:*:7", expected)
	assert.Equal(t, 5, attempts)
	assert.GreaterOrEqual(t, elapsed, 75*time.Second)
	assert.Equal(t, strings.Repeat("- - 7", 5), readFile(t, fs, "/sys/class/scsi_host/host3/scan"))
}

func TestDiscoverDevice_DeviceTimeout(t *testing.T) {
	client, fs, command := newTestClient(t, config.TransportFC)
	addFCHost(t, fs, "3")
	addDisk(t, fs, "3:0:0:7", "sdc")
	expectSize(command, "/dev/sdc", "0\n").AnyTimes()

	_, err := client.DiscoverDevice(context.Background(), 7)

	expected, elapsed, attempts, ok := errors.DeviceDiscoveryTimeoutDetails(err)
	assert.True(t, ok)
	assert.Equal(t, "/dev/sdc", expected)
	assert.Equal(t, 5, attempts)
	assert.GreaterOrEqual(t, elapsed, 75*time.Second)
	// The device is rescanned before every attempt but the first, and the bus only once
	assert.Equal(t, "1111", readFile(t, fs, "/sys/class/scsi_disk/3:0:0:7/device/rescan"))
	assert.Equal(t, "- - 7", readFile(t, fs, "/sys/class/scsi_host/host3/scan"))
}

// lateDiskFs adds a disk to the bus once the adapter scan file has been opened a given number of times.
type lateDiskFs struct {
	afero.Fs
	scans   int
	appear  int
	addDisk func()
}

func (f *lateDiskFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if strings.HasSuffix(name, "/scan") {
		f.scans++
		if f.scans == f.appear {
			f.addDisk()
		}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func TestDiscoverDevice_DeviceTimeoutReportsTotalElapsed(t *testing.T) {
	memFs := afero.NewMemMapFs()
	fs := &lateDiskFs{Fs: memFs, appear: 3}
	fs.addDisk = func() { addDisk(t, memFs, "3:0:0:7", "sdc") }
	command := mockexec.NewMockCommand(gomock.NewController(t))
	client := NewDetailed(command, fs, config.TransportFC, testPolicy())
	client.chrootPathPrefix = ""

	addFCHost(t, memFs, "3")
	expectSize(command, "/dev/sdc", "0\n").AnyTimes()

	_, err := client.DiscoverDevice(context.Background(), 7)

	expected, elapsed, attempts, ok := errors.DeviceDiscoveryTimeoutDetails(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, "/dev/sdc", expected)
	assert.Equal(t, 5, attempts)
	// Two bus attempts of 5s and 10s precede the 75s device phase
	assert.GreaterOrEqual(t, elapsed, 90*time.Second)
	assert.Equal(t, strings.Repeat("- - 7", 3), readFile(t, memFs, "/sys/class/scsi_host/host3/scan"))
}

func TestDiscoverDevice_UsableAfterDeviceRescan(t *testing.T) {
	client, fs, command := newTestClient(t, config.TransportFC)
	addFCHost(t, fs, "3")
	addDisk(t, fs, "3:0:0:7", "sdc")

	command.EXPECT().ExecuteWithTimeout(gomock.Any(), "lsblk", gomock.Any(), false,
		"-b", "-n", "-d", "-o", "SIZE", "/dev/sdc").DoAndReturn(
		func(context.Context, string, time.Duration, bool, ...string) ([]byte, error) {
			if readFile(t, fs, "/sys/class/scsi_disk/3:0:0:7/device/rescan") == "" {
				return []byte("0"), nil
			}
			return []byte("1073741824"), nil
		}).AnyTimes()

	device, err := client.DiscoverDevice(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, "/dev/sdc", device)
	assert.Equal(t, "1", readFile(t, fs, "/sys/class/scsi_disk/3:0:0:7/device/rescan"))
}

func TestDiscoverDevice_LsblkErrorsAreRetried(t *testing.T) {
	client, fs, command := newTestClient(t, config.TransportFC)
	addFCHost(t, fs, "3")
	addDisk(t, fs, "3:0:0:7", "sdc")

	gomock.InOrder(
		command.EXPECT().ExecuteWithTimeout(gomock.Any(), "lsblk", gomock.Any(), false,
			"-b", "-n", "-d", "-o", "SIZE", "/dev/sdc").Return(nil, errors.New("not a block device")),
		expectSize(command, "/dev/sdc", "garbage"),
		expectSize(command, "/dev/sdc", "1073741824"),
	)

	device, err := client.DiscoverDevice(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "/dev/sdc", device)
}

func TestResolveDevice(t *testing.T) {
	client, fs, command := newTestClient(t, config.TransportFC)
	addFCHost(t, fs, "3")

	_, err := client.ResolveDevice(context.Background(), 7)
	assert.True(t, errors.IsNotFoundError(err))

	addDisk(t, fs, "3:0:0:7", "sdc")
	expectSize(command, "/dev/sdc", "0")
	_, err = client.ResolveDevice(context.Background(), 7)
	assert.True(t, errors.IsNotFoundError(err))

	expectSize(command, "/dev/sdc", "1073741824")
	device, err := client.ResolveDevice(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "/dev/sdc", device)

	// Resolving never rescans
	assert.Empty(t, readFile(t, fs, "/sys/class/scsi_host/host3/scan"))
}

func TestRemoveDevice(t *testing.T) {
	client, fs, _ := newTestClient(t, config.TransportFC)
	addFCHost(t, fs, "3")
	addFCHost(t, fs, "4")
	touch(t, fs, "/sys/bus/scsi/drivers/sd/3:0:0:7/delete")
	touch(t, fs, "/sys/bus/scsi/drivers/sd/4:0:1:7/delete")
	touch(t, fs, "/sys/bus/scsi/drivers/sd/4:0:1:8/delete")
	// Devices on adapters we do not use are left alone
	touch(t, fs, "/sys/bus/scsi/drivers/sd/9:0:0:7/delete")

	assert.NoError(t, client.RemoveDevice(context.Background(), 7))

	assert.Equal(t, "1", readFile(t, fs, "/sys/bus/scsi/drivers/sd/3:0:0:7/delete"))
	assert.Equal(t, "1", readFile(t, fs, "/sys/bus/scsi/drivers/sd/4:0:1:7/delete"))
	assert.Empty(t, readFile(t, fs, "/sys/bus/scsi/drivers/sd/4:0:1:8/delete"))
	assert.Empty(t, readFile(t, fs, "/sys/bus/scsi/drivers/sd/9:0:0:7/delete"))
}

func TestRemoveDevice_BestEffort(t *testing.T) {
	client, fs, _ := newTestClient(t, config.TransportFC)
	addFCHost(t, fs, "3")
	addFCHost(t, fs, "4")
	// host3's device has no delete trigger
	require.NoError(t, fs.MkdirAll("/sys/bus/scsi/drivers/sd/3:0:0:7", 0o755))
	touch(t, fs, "/sys/bus/scsi/drivers/sd/4:0:0:7/delete")

	err := client.RemoveDevice(context.Background(), 7)

	assert.Error(t, err)
	assert.Len(t, errors.Errors(err), 1)
	assert.Equal(t, "1", readFile(t, fs, "/sys/bus/scsi/drivers/sd/4:0:0:7/delete"))
}
