// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/netapp/vnx-blockdevice/cli/api"
)

var allVolumes bool

func init() {
	deleteCmd.AddCommand(deleteVolumeCmd)
	deleteVolumeCmd.Flags().BoolVarP(&allVolumes, "all", "", false, "Delete all unattached volumes")
}

var deleteVolumeCmd = &cobra.Command{
	Use:     "volume <blockdevice ID> [<blockdevice ID>...]",
	Short:   "Delete one or more volumes",
	Aliases: []string{"v", "volumes"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return volumeDelete(args)
	},
}

func volumeDelete(blockDeviceIDs []string) error {
	if allVolumes {
		// Make sure --all isn't being used along with specific volumes
		if len(blockDeviceIDs) > 0 {
			return errors.New("cannot use --all switch and specify individual volumes")
		}

		volumes, err := GetVolumes()
		if err != nil {
			return err
		}
		for _, volume := range volumes {
			if !volume.IsAttached() && !volume.IsForeignAttached() {
				blockDeviceIDs = append(blockDeviceIDs, volume.BlockDeviceID)
			}
		}
	} else {
		// Not using --all, so make sure one or more volumes were specified
		if len(blockDeviceIDs) == 0 {
			return errors.New("blockdevice ID not specified")
		}
	}

	for _, blockDeviceID := range blockDeviceIDs {
		url := BaseURL() + "/volume/" + blockDeviceID

		response, responseBody, err := api.InvokeRESTAPI(http.MethodDelete, url, nil)
		if err != nil {
			return err
		} else if response.StatusCode != http.StatusOK {
			return fmt.Errorf("could not delete volume %s: %v", blockDeviceID,
				GetErrorFromHTTPResponse(response, responseBody))
		}
	}

	return nil
}
