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
	"github.com/netapp/vnx-blockdevice/config"
	"github.com/netapp/vnx-blockdevice/frontend/rest"
)

func init() {
	getCmd.AddCommand(getInstanceCmd)
	getCmd.AddCommand(getAllocationUnitCmd)
}

var getInstanceCmd = &cobra.Command{
	Use:     "instance",
	Short:   "Get the compute instance ID of the vnxbd host",
	Aliases: []string{"host"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return hostGet(true)
	},
}

var getAllocationUnitCmd = &cobra.Command{
	Use:     "allocation_unit",
	Short:   "Get the granularity volume sizes are rounded up to",
	Aliases: []string{"allocation-unit", "au"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return hostGet(false)
	},
}

func hostGet(instanceOnly bool) error {
	host := api.HostResponse{}

	instanceID, err := GetInstanceID()
	if err != nil {
		return err
	}
	host.InstanceID = instanceID

	if !instanceOnly {
		if host.AllocationUnit, err = GetAllocationUnit(); err != nil {
			return err
		}
	}

	WriteHost(host, instanceOnly)

	return nil
}

func GetInstanceID() (string, error) {
	url := BaseURL() + "/instance"

	response, responseBody, err := api.InvokeRESTAPI(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	} else if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("could not get compute instance ID: %v",
			GetErrorFromHTTPResponse(response, responseBody))
	}

	var instanceResponse rest.GetInstanceResponse
	if err = json.Unmarshal(responseBody, &instanceResponse); err != nil {
		return "", err
	}

	return instanceResponse.InstanceID, nil
}

func GetAllocationUnit() (int64, error) {
	url := BaseURL() + "/allocation_unit"

	response, responseBody, err := api.InvokeRESTAPI(http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	} else if response.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("could not get allocation unit: %v", GetErrorFromHTTPResponse(response, responseBody))
	}

	var allocationUnitResponse rest.GetAllocationUnitResponse
	if err = json.Unmarshal(responseBody, &allocationUnitResponse); err != nil {
		return 0, err
	}

	return allocationUnitResponse.AllocationUnit, nil
}

func WriteHost(host api.HostResponse, instanceOnly bool) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(host)
	case FormatYAML:
		WriteYAML(host)
	case FormatName:
		if instanceOnly {
			fmt.Println(host.InstanceID)
		} else {
			fmt.Println(host.AllocationUnit)
		}
	default:
		table := tablewriter.NewWriter(os.Stdout)
		if instanceOnly {
			table.SetHeader([]string{"Instance ID"})
			table.Append([]string{host.InstanceID})
		} else {
			table.SetHeader([]string{"Instance ID", "Allocation Unit", "Driver"})
			table.Append([]string{
				host.InstanceID,
				humanize.IBytes(uint64(host.AllocationUnit)),
				config.VNXStorageDriverName,
			})
		}
		table.Render()
	}
}
