// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/netapp/vnx-blockdevice/cli/api"
)

func init() {
	RootCmd.AddCommand(detachCmd)
}

var detachCmd = &cobra.Command{
	Use:               "detach <blockdevice ID> [<blockdevice ID>...]",
	Short:             "Detach one or more volumes from the vnxbd host",
	Args:              cobra.MinimumNArgs(1),
	PersistentPreRunE: preRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, blockDeviceID := range args {
			if err := DetachVolume(blockDeviceID); err != nil {
				return err
			}
		}
		return nil
	},
}

func DetachVolume(blockDeviceID string) error {
	url := BaseURL() + "/volume/" + blockDeviceID + "/detach"

	response, responseBody, err := api.InvokeRESTAPI(http.MethodPost, url, nil)
	if err != nil {
		return err
	} else if response.StatusCode != http.StatusOK {
		return fmt.Errorf("could not detach volume %s: %v", blockDeviceID,
			GetErrorFromHTTPResponse(response, responseBody))
	}

	return nil
}
