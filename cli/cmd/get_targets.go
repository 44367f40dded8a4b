// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/vnx-blockdevice/cli/api"
	"github.com/netapp/vnx-blockdevice/frontend/rest"
	vnxapi "github.com/netapp/vnx-blockdevice/storage_drivers/vnx/api"
)

func init() {
	getCmd.AddCommand(getTargetsCmd)
}

var getTargetsCmd = &cobra.Command{
	Use:     "targets",
	Short:   "Get the iSCSI target portals of the array",
	Aliases: []string{"t", "target"},
	RunE: func(cmd *cobra.Command, args []string) error {
		targets, err := GetTargets()
		if err != nil {
			return err
		}
		WriteTargets(targets)
		return nil
	},
}

func GetTargets() ([]vnxapi.ISCSITarget, error) {
	url := BaseURL() + "/targets"

	response, responseBody, err := api.InvokeRESTAPI(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	} else if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("could not get iSCSI targets: %v", GetErrorFromHTTPResponse(response, responseBody))
	}

	var targetsResponse rest.ListISCSITargetsResponse
	if err = json.Unmarshal(responseBody, &targetsResponse); err != nil {
		return nil, err
	}

	return targetsResponse.Targets, nil
}

func WriteTargets(targets []vnxapi.ISCSITarget) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(api.MultipleTargetResponse{Items: targets})
	case FormatYAML:
		WriteYAML(api.MultipleTargetResponse{Items: targets})
	case FormatName:
		for _, target := range targets {
			fmt.Println(target.IQN)
		}
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"SP", "Port", "IQN", "Portals"})
		for _, target := range targets {
			portals := make([]string, 0, len(target.Portals))
			for _, portal := range target.Portals {
				portals = append(portals, portal.IPAddress)
			}
			table.Append([]string{
				target.SP,
				strconv.Itoa(target.PortID),
				target.IQN,
				strings.Join(portals, ","),
			})
		}
		table.Render()
	}
}
