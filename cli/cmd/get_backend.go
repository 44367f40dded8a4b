// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/vnx-blockdevice/cli/api"
	"github.com/netapp/vnx-blockdevice/frontend/rest"
	"github.com/netapp/vnx-blockdevice/storage"
)

func init() {
	getCmd.AddCommand(getBackendCmd)
}

var getBackendCmd = &cobra.Command{
	Use:     "backend",
	Short:   "Get the storage backend served by vnxbd",
	Aliases: []string{"b"},
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := GetBackend()
		if err != nil {
			return err
		}
		WriteBackend(backend)
		return nil
	},
}

func GetBackend() (*storage.BackendExternal, error) {
	url := BaseURL() + "/backend"

	response, responseBody, err := api.InvokeRESTAPI(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	} else if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("could not get backend: %v", GetErrorFromHTTPResponse(response, responseBody))
	}

	var getBackendResponse rest.GetBackendResponse
	if err = json.Unmarshal(responseBody, &getBackendResponse); err != nil {
		return nil, err
	}
	if getBackendResponse.Backend == nil {
		return nil, fmt.Errorf("could not get backend: empty response")
	}

	return getBackendResponse.Backend, nil
}

func WriteBackend(backend *storage.BackendExternal) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(backend)
	case FormatYAML:
		WriteYAML(backend)
	case FormatName:
		fmt.Println(backend.Name)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Name", "Storage Driver", "State", "Instance ID", "Allocation Unit"})
		table.Append([]string{
			backend.Name,
			backend.Driver,
			backend.State.String(),
			backend.ComputeInstanceID,
			humanize.IBytes(uint64(backend.AllocationUnit)),
		})
		table.Render()
	}
}
