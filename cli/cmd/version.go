// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/vnx-blockdevice/cli/api"
	"github.com/netapp/vnx-blockdevice/config"
	"github.com/netapp/vnx-blockdevice/frontend/rest"
)

var clientOnly bool

func init() {
	RootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&clientOnly, "client", false, "Client version only (no server required).")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of vnxbd",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		initCmdLogging()
		if !clientOnly {
			err = discoverServer(cmd)
		}
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if clientOnly {
			writeVersion(getClientVersion())
			return nil
		}

		serverVersion, err := getVersionFromRest()
		if err != nil {
			return err
		}

		versions := &api.VersionResponse{
			Server: api.Version{
				Version:    serverVersion.Version,
				APIVersion: config.OrchestratorAPIVersion,
				GoVersion:  serverVersion.GoVersion,
			},
			Client: getClientVersion().Client,
		}
		writeVersions(versions)

		return nil
	},
}

// getVersionFromRest retrieves the server version using the REST API
func getVersionFromRest() (*rest.GetVersionResponse, error) {
	url := BaseURL() + "/version"

	response, responseBody, err := api.InvokeRESTAPI(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	} else if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("could not get version: %v", GetErrorFromHTTPResponse(response, responseBody))
	}

	var getVersionResponse rest.GetVersionResponse
	if err = json.Unmarshal(responseBody, &getVersionResponse); err != nil {
		return nil, err
	}

	return &getVersionResponse, nil
}

func getClientVersion() *api.ClientVersionResponse {
	return &api.ClientVersionResponse{
		Client: api.Version{
			Version:    config.OrchestratorVersion,
			APIVersion: config.OrchestratorAPIVersion,
			GoVersion:  runtime.Version(),
		},
	}
}

func writeVersion(version *api.ClientVersionResponse) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(version)
	case FormatYAML:
		WriteYAML(version)
	case FormatWide:
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Client Version", "Client API Version", "Client Go Version"})
		table.Append([]string{version.Client.Version, version.Client.APIVersion, version.Client.GoVersion})
		table.Render()
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Client Version"})
		table.Append([]string{version.Client.Version})
		table.Render()
	}
}

func writeVersions(versions *api.VersionResponse) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(versions)
	case FormatYAML:
		WriteYAML(versions)
	case FormatWide:
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{
			"Server Version", "Server API Version", "Server Go Version",
			"Client Version", "Client API Version", "Client Go Version",
		})
		table.Append([]string{
			versions.Server.Version, versions.Server.APIVersion, versions.Server.GoVersion,
			versions.Client.Version, versions.Client.APIVersion, versions.Client.GoVersion,
		})
		table.Render()
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Server Version", "Client Version"})
		table.Append([]string{versions.Server.Version, versions.Client.Version})
		table.Render()
	}
}
