// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/netapp/vnx-blockdevice/cli/api"
	"github.com/netapp/vnx-blockdevice/frontend/rest"
	"github.com/netapp/vnx-blockdevice/storage"
)

var (
	datasetID  string
	volumeSize string
)

func init() {
	createCmd.AddCommand(createVolumeCmd)
	createVolumeCmd.Flags().StringVar(&datasetID, "dataset", "", "Dataset UUID (generated if not set)")
	createVolumeCmd.Flags().StringVar(&volumeSize, "size", "", "Volume size, e.g. 8GiB or 10G")
}

var createVolumeCmd = &cobra.Command{
	Use:     "volume",
	Short:   "Create a volume",
	Aliases: []string{"v"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return volumeCreate()
	},
}

func volumeCreate() error {
	if volumeSize == "" {
		return errors.New("volume size not specified")
	}
	sizeBytes, err := humanize.ParseBytes(volumeSize)
	if err != nil {
		return fmt.Errorf("invalid volume size %s; %v", volumeSize, err)
	}

	if datasetID == "" {
		datasetID = uuid.NewString()
	}

	request, err := json.Marshal(rest.AddVolumeRequest{DatasetID: datasetID, Size: int64(sizeBytes)})
	if err != nil {
		return err
	}

	volume, err := CreateVolume(request)
	if err != nil {
		return err
	}

	WriteVolumes([]*storage.Volume{volume})

	return nil
}

func CreateVolume(request []byte) (*storage.Volume, error) {
	url := BaseURL() + "/volume"

	response, responseBody, err := api.InvokeRESTAPI(http.MethodPost, url, request)
	if err != nil {
		return nil, err
	} else if response.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("could not create volume: %v", GetErrorFromHTTPResponse(response, responseBody))
	}

	var addVolumeResponse rest.AddVolumeResponse
	if err = json.Unmarshal(responseBody, &addVolumeResponse); err != nil {
		return nil, err
	}
	if addVolumeResponse.Volume == nil {
		return nil, errors.New("could not create volume: empty response")
	}

	return addVolumeResponse.Volume, nil
}
