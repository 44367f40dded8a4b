// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/netapp/vnx-blockdevice/cli/api"
	"github.com/netapp/vnx-blockdevice/frontend/rest"
	"github.com/netapp/vnx-blockdevice/storage"
)

var attachHost string

func init() {
	RootCmd.AddCommand(attachCmd)
	attachCmd.Flags().StringVar(&attachHost, "host", "", "Compute instance ID to attach to (defaults to the server's own)")
}

var attachCmd = &cobra.Command{
	Use:               "attach <blockdevice ID>",
	Short:             "Attach a volume to the vnxbd host",
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: preRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		return volumeAttach(args[0])
	},
}

func volumeAttach(blockDeviceID string) error {
	host := attachHost
	if host == "" {
		var err error
		if host, err = GetInstanceID(); err != nil {
			return err
		}
	}

	volume, err := AttachVolume(blockDeviceID, host)
	if err != nil {
		return err
	}

	WriteVolumes([]*storage.Volume{volume})

	return nil
}

func AttachVolume(blockDeviceID, host string) (*storage.Volume, error) {
	url := BaseURL() + "/volume/" + blockDeviceID + "/attach"

	request, err := json.Marshal(rest.AttachVolumeRequest{Host: host})
	if err != nil {
		return nil, err
	}

	response, responseBody, err := api.InvokeRESTAPI(http.MethodPost, url, request)
	if err != nil {
		return nil, err
	} else if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("could not attach volume %s: %v", blockDeviceID,
			GetErrorFromHTTPResponse(response, responseBody))
	}

	var attachResponse rest.AttachVolumeResponse
	if err = json.Unmarshal(responseBody, &attachResponse); err != nil {
		return nil, err
	}
	if attachResponse.Volume == nil {
		return nil, errors.New("could not attach volume: empty response")
	}

	return attachResponse.Volume, nil
}
