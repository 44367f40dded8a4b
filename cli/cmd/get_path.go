// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/vnx-blockdevice/cli/api"
	"github.com/netapp/vnx-blockdevice/frontend/rest"
)

func init() {
	getCmd.AddCommand(getPathCmd)
}

var getPathCmd = &cobra.Command{
	Use:     "path <blockdevice ID> [<blockdevice ID>...]",
	Short:   "Get the local device path of one or more attached volumes",
	Aliases: []string{"p", "paths"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return pathList(args)
	},
}

func pathList(blockDeviceIDs []string) error {
	if len(blockDeviceIDs) == 0 {
		return errors.New("blockdevice ID not specified")
	}

	paths := make([]api.DevicePath, 0, len(blockDeviceIDs))
	for _, blockDeviceID := range blockDeviceIDs {
		path, err := GetDevicePath(blockDeviceID)
		if err != nil {
			return err
		}
		paths = append(paths, api.DevicePath{BlockDeviceID: blockDeviceID, Path: path})
	}

	WritePaths(paths)

	return nil
}

func GetDevicePath(blockDeviceID string) (string, error) {
	url := BaseURL() + "/volume/" + blockDeviceID + "/path"

	response, responseBody, err := api.InvokeRESTAPI(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	} else if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("could not get device path for volume %s: %v", blockDeviceID,
			GetErrorFromHTTPResponse(response, responseBody))
	}

	var pathResponse rest.GetDevicePathResponse
	if err = json.Unmarshal(responseBody, &pathResponse); err != nil {
		return "", err
	}

	return pathResponse.Path, nil
}

func WritePaths(paths []api.DevicePath) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(api.MultipleDevicePathResponse{Items: paths})
	case FormatYAML:
		WriteYAML(api.MultipleDevicePathResponse{Items: paths})
	case FormatName:
		for _, path := range paths {
			fmt.Println(path.Path)
		}
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Blockdevice ID", "Path"})
		for _, path := range paths {
			table.Append([]string{path.BlockDeviceID, path.Path})
		}
		table.Render()
	}
}
