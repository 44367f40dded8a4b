// Copyright 2025 NetApp, Inc. All Rights Reserved.

package fake

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/netapp/vnx-blockdevice/logging"
	"github.com/netapp/vnx-blockdevice/storage_drivers/vnx/api"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

func TestMain(m *testing.M) {
	InitLogOutput(io.Discard)
	os.Exit(m.Run())
}

func TestLUNLifecycle(t *testing.T) {
	ctx := context.Background()
	array := NewArray("Pool 0")

	require.NoError(t, array.CreateLUN(ctx, "vol1", 8, "Pool 0"))

	err := array.CreateLUN(ctx, "vol1", 8, "Pool 0")
	_, output, ok := errors.ArrayCommandFailedDetails(err)
	assert.True(t, ok)
	assert.Contains(t, output, "already in use")

	lun, err := array.GetLUN(ctx, "vol1")
	require.NoError(t, err)
	assert.Equal(t, 1, *lun.ID)
	assert.Equal(t, 8.0, *lun.CapacityGB)
	assert.True(t, lun.IsReady())

	require.NoError(t, array.DestroyLUN(ctx, "vol1"))

	code, _, _ := errors.ArrayCommandFailedDetails(array.DestroyLUN(ctx, "vol1"))
	assert.Equal(t, api.CodeLUNNotFound, code)

	_, err = array.GetLUN(ctx, "vol1")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	array := NewArray("Pool 0")
	require.NoError(t, array.CreateLUN(ctx, "vol1", 1, "Pool 0"))
	array.AddStorageGroup("g1", nil)

	lun, err := array.GetLUN(ctx, "vol1")
	require.NoError(t, err)
	*lun.Name = "changed"

	group, err := array.GetStorageGroup(ctx, "g1")
	require.NoError(t, err)
	group.LUNMap[1] = 1

	lun, _ = array.GetLUN(ctx, "vol1")
	assert.Equal(t, "vol1", *lun.Name)
	group, _ = array.GetStorageGroup(ctx, "g1")
	assert.Empty(t, group.LUNMap)
}

func TestMasking(t *testing.T) {
	ctx := context.Background()
	array := NewArray("Pool 0")
	require.NoError(t, array.CreateLUN(ctx, "vol1", 1, "Pool 0"))
	require.NoError(t, array.CreateLUN(ctx, "vol2", 1, "Pool 0"))
	require.NoError(t, array.CreateStorageGroup(ctx, "g1"))

	code, output, _ := errors.ArrayCommandFailedDetails(array.CreateStorageGroup(ctx, "g1"))
	assert.NotZero(t, code)
	assert.Contains(t, output, "already in use")

	require.NoError(t, array.AddHLU(ctx, "g1", 5, 1))

	code, _, _ = errors.ArrayCommandFailedDetails(array.AddHLU(ctx, "g1", 5, 2))
	assert.Equal(t, api.CodeHLUAlreadyUsed, code, "HLU taken by another ALU")
	code, _, _ = errors.ArrayCommandFailedDetails(array.AddHLU(ctx, "g1", 6, 1))
	assert.Equal(t, api.CodeHLUAlreadyUsed, code, "ALU already masked")

	group, err := array.GetStorageGroup(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 5}, group.LUNMap)

	require.NoError(t, array.RemoveHLU(ctx, "g1", 5))
	assert.Error(t, array.RemoveHLU(ctx, "g1", 5))
}

func TestDestroyLUN_ForceDetach(t *testing.T) {
	ctx := context.Background()
	array := NewArray("Pool 0")
	require.NoError(t, array.CreateLUN(ctx, "vol1", 1, "Pool 0"))
	array.AddStorageGroup("g1", nil)
	require.NoError(t, array.AddHLU(ctx, "g1", 3, 1))

	require.NoError(t, array.DestroyLUN(ctx, "vol1"))

	group, _ := array.GetStorageGroup(ctx, "g1")
	assert.Empty(t, group.LUNMap)
}

func TestCheckPoolAndConnect(t *testing.T) {
	ctx := context.Background()
	array := NewArray("Pool 0")

	assert.NoError(t, array.CheckPool(ctx, "Pool 0"))
	assert.True(t, errors.IsNotFoundError(array.CheckPool(ctx, "Pool 9")))

	assert.Error(t, array.ConnectHost(ctx, "node1", "g1"))
	require.NoError(t, array.CreateStorageGroup(ctx, "g1"))
	require.NoError(t, array.ConnectHost(ctx, "node1", "g1"))

	group, ok := array.ConnectedGroup("node1")
	assert.True(t, ok)
	assert.Equal(t, "g1", group)
	assert.Equal(t, 2, array.Calls("ConnectHost"))
}
