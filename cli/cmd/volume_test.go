// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/vnx-blockdevice/frontend/rest"
	"github.com/netapp/vnx-blockdevice/storage"
)

const (
	testBlockDeviceID  = "block-3e1a4b7c-52c4-4d3e-9a8f-0b3c6f1d2e4a"
	testDatasetID      = "3e1a4b7c-52c4-4d3e-9a8f-0b3c6f1d2e4a"
	otherBlockDevice   = "block-9c0d1e2f-3a4b-4c5d-8e6f-7a8b9c0d1e2f"
	foreignBlockDevice = "block-0a1b2c3d-4e5f-4a6b-9c7d-8e9f0a1b2c3d"
)

func testVolumes() []*storage.Volume {
	host := "node1"
	return []*storage.Volume{
		{BlockDeviceID: testBlockDeviceID, DatasetID: testDatasetID, Size: 1 << 30},
		{BlockDeviceID: otherBlockDevice, Size: 2 << 30, AttachedTo: &host},
		{BlockDeviceID: foreignBlockDevice, Size: 1 << 30, ForeignGroups: []string{"vnxbd-node2"}},
	}
}

func TestGetVolumes(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder(http.MethodGet, BaseURL()+"/volume",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, rest.ListVolumesResponse{Volumes: testVolumes()}))

	volumes, err := GetVolumes()
	require.NoError(t, err)
	assert.Equal(t, testVolumes(), volumes)

	for _, format := range []string{FormatJSON, FormatYAML, FormatWide, FormatName, ""} {
		OutputFormat = format
		assert.NoError(t, volumeList(nil))
	}
}

func TestGetVolume(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder(http.MethodGet, BaseURL()+"/volume/"+testBlockDeviceID,
		httpmock.NewJsonResponderOrPanic(http.StatusOK, rest.GetVolumeResponse{Volume: testVolumes()[0]}))
	httpmock.RegisterResponder(http.MethodGet, BaseURL()+"/volume/"+otherBlockDevice,
		httpmock.NewStringResponder(http.StatusNotFound, `{"volume": null, "error": "volume not found"}`))

	volume, err := GetVolume(testBlockDeviceID)
	require.NoError(t, err)
	assert.Equal(t, testDatasetID, volume.DatasetID)

	_, err = GetVolume(otherBlockDevice)
	assert.ErrorContains(t, err, "volume not found")

	assert.Error(t, volumeList([]string{testBlockDeviceID, otherBlockDevice}))
}

func TestCreateVolume(t *testing.T) {
	setupHTTPMock(t)
	defer func() { datasetID, volumeSize = "", "" }()

	var received rest.AddVolumeRequest
	httpmock.RegisterResponder(http.MethodPost, BaseURL()+"/volume",
		func(request *http.Request) (*http.Response, error) {
			body, err := io.ReadAll(request.Body)
			if err != nil {
				return nil, err
			}
			if err = json.Unmarshal(body, &received); err != nil {
				return nil, err
			}
			return httpmock.NewJsonResponse(http.StatusCreated, rest.AddVolumeResponse{Volume: testVolumes()[0]})
		})

	datasetID, volumeSize = testDatasetID, "8GiB"
	require.NoError(t, volumeCreate())
	assert.Equal(t, testDatasetID, received.DatasetID)
	assert.Equal(t, int64(8<<30), received.Size)

	datasetID, volumeSize = "", "1G"
	require.NoError(t, volumeCreate())
	assert.NotEmpty(t, received.DatasetID)
	assert.Equal(t, int64(1000000000), received.Size)
}

func TestCreateVolume_Errors(t *testing.T) {
	setupHTTPMock(t)
	defer func() { datasetID, volumeSize = "", "" }()

	datasetID, volumeSize = testDatasetID, ""
	assert.ErrorContains(t, volumeCreate(), "size not specified")

	volumeSize = "lots"
	assert.ErrorContains(t, volumeCreate(), "invalid volume size")

	httpmock.RegisterResponder(http.MethodPost, BaseURL()+"/volume",
		httpmock.NewStringResponder(http.StatusBadRequest, `{"error": "invalid volume size"}`))
	volumeSize = "0"
	assert.ErrorContains(t, volumeCreate(), "400")
}

func TestDeleteVolume(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder(http.MethodDelete, BaseURL()+"/volume/"+testBlockDeviceID,
		httpmock.NewStringResponder(http.StatusOK, `{}`))
	httpmock.RegisterResponder(http.MethodDelete, BaseURL()+"/volume/"+otherBlockDevice,
		httpmock.NewStringResponder(http.StatusInternalServerError, `{"error": "volume is attached"}`))

	assert.NoError(t, volumeDelete([]string{testBlockDeviceID}))
	assert.ErrorContains(t, volumeDelete([]string{otherBlockDevice}), "volume is attached")
	assert.ErrorContains(t, volumeDelete(nil), "not specified")
}

func TestDeleteVolume_All(t *testing.T) {
	setupHTTPMock(t)
	defer func() { allVolumes = false }()

	httpmock.RegisterResponder(http.MethodGet, BaseURL()+"/volume",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, rest.ListVolumesResponse{Volumes: testVolumes()}))
	httpmock.RegisterResponder(http.MethodDelete, BaseURL()+"/volume/"+testBlockDeviceID,
		httpmock.NewStringResponder(http.StatusOK, `{}`))

	allVolumes = true
	assert.Error(t, volumeDelete([]string{testBlockDeviceID}))

	require.NoError(t, volumeDelete(nil))
	info := httpmock.GetCallCountInfo()
	assert.Equal(t, 1, info["DELETE "+BaseURL()+"/volume/"+testBlockDeviceID])
	assert.Zero(t, info["DELETE "+BaseURL()+"/volume/"+otherBlockDevice])
	assert.Zero(t, info["DELETE "+BaseURL()+"/volume/"+foreignBlockDevice])
}

func TestAttachVolume_DefaultHost(t *testing.T) {
	setupHTTPMock(t)

	var received rest.AttachVolumeRequest
	host := "node1"
	httpmock.RegisterResponder(http.MethodGet, BaseURL()+"/instance",
		httpmock.NewStringResponder(http.StatusOK, `{"instanceID": "node1"}`))
	httpmock.RegisterResponder(http.MethodPost, BaseURL()+"/volume/"+testBlockDeviceID+"/attach",
		func(request *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(request.Body).Decode(&received); err != nil {
				return nil, err
			}
			volume := testVolumes()[0]
			volume.AttachedTo = &host
			return httpmock.NewJsonResponse(http.StatusOK, rest.AttachVolumeResponse{Volume: volume})
		})

	require.NoError(t, volumeAttach(testBlockDeviceID))
	assert.Equal(t, "node1", received.Host)
}

func TestAttachVolume_Conflict(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder(http.MethodPost, BaseURL()+"/volume/"+testBlockDeviceID+"/attach",
		httpmock.NewStringResponder(http.StatusConflict, `{"error": "volume is already attached"}`))

	_, err := AttachVolume(testBlockDeviceID, "node1")
	assert.ErrorContains(t, err, "already attached")
}

func TestDetachVolume(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder(http.MethodPost, BaseURL()+"/volume/"+testBlockDeviceID+"/detach",
		httpmock.NewStringResponder(http.StatusOK, `{"volume": "`+testBlockDeviceID+`"}`))
	httpmock.RegisterResponder(http.MethodPost, BaseURL()+"/volume/"+otherBlockDevice+"/detach",
		httpmock.NewStringResponder(http.StatusConflict, `{"error": "volume is not attached"}`))

	assert.NoError(t, DetachVolume(testBlockDeviceID))
	assert.ErrorContains(t, DetachVolume(otherBlockDevice), "not attached")
}

func TestGetDevicePath(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder(http.MethodGet, BaseURL()+"/volume/"+testBlockDeviceID+"/path",
		httpmock.NewStringResponder(http.StatusOK, `{"path": "/dev/sdc"}`))

	path, err := GetDevicePath(testBlockDeviceID)
	require.NoError(t, err)
	assert.Equal(t, "/dev/sdc", path)

	assert.NoError(t, pathList([]string{testBlockDeviceID}))
	assert.Error(t, pathList(nil))
}
