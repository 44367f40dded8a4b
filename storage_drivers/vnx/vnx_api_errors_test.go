// Copyright 2025 NetApp, Inc. All Rights Reserved.

package vnx

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/netapp/vnx-blockdevice/mocks/mock_storage_drivers/mock_vnx"
	"github.com/netapp/vnx-blockdevice/mocks/mock_utils/mock_scsi"
	drivers "github.com/netapp/vnx-blockdevice/storage_drivers"
	"github.com/netapp/vnx-blockdevice/storage_drivers/vnx/api"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

func initializeWithMockAPI(t *testing.T, client *mock_vnx.MockClient) (*StorageDriver, error) {
	t.Helper()
	ctx := context.Background()
	driver := &StorageDriver{API: client, Devices: mock_scsi.NewMockDevices(gomock.NewController(t))}

	configJSON := testConfigJSON("")
	commonConfig, err := drivers.ValidateCommonSettings(ctx, configJSON)
	require.NoError(t, err)
	return driver, driver.Initialize(ctx, configJSON, commonConfig)
}

func newMockAPIDriver(t *testing.T) (*StorageDriver, *mock_vnx.MockClient) {
	t.Helper()
	client := mock_vnx.NewMockClient(gomock.NewController(t))
	client.EXPECT().CheckPool(gomock.Any(), testPool).Return(nil)
	client.EXPECT().GetStorageGroup(gomock.Any(), testGroup).
		Return(&api.StorageGroup{Name: testGroup, LUNMap: map[int]int{}}, nil)

	driver, err := initializeWithMockAPI(t, client)
	require.NoError(t, err)
	return driver, client
}

func TestInitialize_PoolMissing(t *testing.T) {
	client := mock_vnx.NewMockClient(gomock.NewController(t))
	client.EXPECT().CheckPool(gomock.Any(), testPool).Return(errors.NotFoundError("pool %s not found", testPool))

	driver, err := initializeWithMockAPI(t, client)
	assert.Error(t, err)
	assert.False(t, driver.Initialized())
}

func TestInitialize_StorageGroupMissing(t *testing.T) {
	client := mock_vnx.NewMockClient(gomock.NewController(t))
	client.EXPECT().CheckPool(gomock.Any(), testPool).Return(nil)
	client.EXPECT().GetStorageGroup(gomock.Any(), testGroup).
		Return(nil, errors.ArrayCommandFailedError("storagegroup -list", 83, "The group name is invalid"))

	driver, err := initializeWithMockAPI(t, client)
	assert.True(t, errors.IsStorageGroupMissingError(err), "got %v", err)
	assert.False(t, driver.Initialized())
}

func TestCreateVolume_ArrayFailure(t *testing.T) {
	driver, client := newMockAPIDriver(t)
	client.EXPECT().CreateLUN(gomock.Any(), gomock.Any(), int64(1), testPool).
		Return(errors.ArrayCommandFailedError("lun -create", 4, "Insufficient space in pool"))

	_, err := driver.CreateVolume(context.Background(), uuid.NewString(), 1)

	assert.True(t, errors.IsArrayCommandFailedError(err))
}

func TestListVolumes_ArrayFailure(t *testing.T) {
	driver, client := newMockAPIDriver(t)
	client.EXPECT().ListLUNs(gomock.Any()).Return(nil, fmt.Errorf("connection reset"))
	client.EXPECT().GetStorageGroup(gomock.Any(), testGroup).
		Return(&api.StorageGroup{Name: testGroup, LUNMap: map[int]int{}}, nil).AnyTimes()
	client.EXPECT().ListStorageGroups(gomock.Any()).Return([]api.StorageGroup{}, nil).AnyTimes()

	volumes, err := driver.ListVolumes(context.Background())

	assert.EqualError(t, err, "connection reset")
	assert.Nil(t, volumes)
}

func TestISCSITargets_ArrayFailure(t *testing.T) {
	driver, client := newMockAPIDriver(t)
	client.EXPECT().GetISCSITargets(gomock.Any()).Return(nil, fmt.Errorf("timed out"))

	_, err := driver.ISCSITargets(context.Background())

	assert.Error(t, err)
}

func TestAttachVolume_LookupFailures(t *testing.T) {
	authFailed := errors.ArrayCommandFailedError("lun -list -name", 2, "Security file not found. Authentication failed.")

	tests := map[string]struct {
		getLUNErr error
		check     func(t *testing.T, err error)
	}{
		"array unreadable": {
			getLUNErr: authFailed,
			check: func(t *testing.T, err error) {
				assert.False(t, errors.IsUnknownVolumeError(err), "got %v", err)
				code, _, ok := errors.ArrayCommandFailedDetails(err)
				assert.True(t, ok)
				assert.Equal(t, 2, code)
			},
		},
		"lun missing": {
			getLUNErr: errors.WrapWithNotFoundError(
				errors.ArrayCommandFailedError("lun -list -name", api.CodeLUNNotFound, "Could not retrieve"),
				"LUN not found"),
			check: func(t *testing.T, err error) {
				assert.True(t, errors.IsUnknownVolumeError(err), "got %v", err)
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			driver, client := newMockAPIDriver(t)
			client.EXPECT().GetLUN(gomock.Any(), gomock.Any()).Return(nil, test.getLUNErr)

			blockDeviceID := "block-" + uuid.NewString()
			_, err := driver.AttachVolume(context.Background(), blockDeviceID, testHost)

			test.check(t, err)
		})
	}
}

func TestCreateVolume_ReadyCheckArrayFailure(t *testing.T) {
	driver, client := newMockAPIDriver(t)
	client.EXPECT().CreateLUN(gomock.Any(), gomock.Any(), int64(1), testPool).Return(nil)
	client.EXPECT().GetLUN(gomock.Any(), gomock.Any()).
		Return(nil, errors.ArrayCommandFailedError("lun -list -name", 2, "Authentication failed.")).Times(1)

	_, err := driver.CreateVolume(context.Background(), uuid.NewString(), 1)

	assert.True(t, errors.IsArrayCommandFailedError(err), "got %v", err)
	assert.False(t, errors.IsTimeoutError(err))
}
