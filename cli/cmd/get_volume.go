// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/vnx-blockdevice/cli/api"
	"github.com/netapp/vnx-blockdevice/frontend/rest"
	"github.com/netapp/vnx-blockdevice/storage"
)

func init() {
	getCmd.AddCommand(getVolumeCmd)
}

var getVolumeCmd = &cobra.Command{
	Use:     "volume [<blockdevice ID>...]",
	Short:   "Get one or more volumes from vnxbd",
	Aliases: []string{"v", "volumes"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return volumeList(args)
	},
}

func volumeList(blockDeviceIDs []string) error {
	var volumes []*storage.Volume

	// If no volumes were specified, we'll get all of them
	if len(blockDeviceIDs) == 0 {
		var err error
		if volumes, err = GetVolumes(); err != nil {
			return err
		}
	} else {
		volumes = make([]*storage.Volume, 0, len(blockDeviceIDs))
		for _, blockDeviceID := range blockDeviceIDs {
			volume, err := GetVolume(blockDeviceID)
			if err != nil {
				return err
			}
			volumes = append(volumes, volume)
		}
	}

	WriteVolumes(volumes)

	return nil
}

func GetVolumes() ([]*storage.Volume, error) {
	url := BaseURL() + "/volume"

	response, responseBody, err := api.InvokeRESTAPI(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	} else if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("could not get volumes: %v", GetErrorFromHTTPResponse(response, responseBody))
	}

	var listVolumesResponse rest.ListVolumesResponse
	err = json.Unmarshal(responseBody, &listVolumesResponse)
	if err != nil {
		return nil, err
	}

	return listVolumesResponse.Volumes, nil
}

func GetVolume(blockDeviceID string) (*storage.Volume, error) {
	url := BaseURL() + "/volume/" + blockDeviceID

	response, responseBody, err := api.InvokeRESTAPI(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	} else if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("could not get volume %s: %v", blockDeviceID,
			GetErrorFromHTTPResponse(response, responseBody))
	}

	var getVolumeResponse rest.GetVolumeResponse
	err = json.Unmarshal(responseBody, &getVolumeResponse)
	if err != nil {
		return nil, err
	}
	if getVolumeResponse.Volume == nil {
		return nil, fmt.Errorf("could not get volume %s: empty response", blockDeviceID)
	}

	return getVolumeResponse.Volume, nil
}

func WriteVolumes(volumes []*storage.Volume) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(api.MultipleVolumeResponse{Items: volumes})
	case FormatYAML:
		WriteYAML(api.MultipleVolumeResponse{Items: volumes})
	case FormatName:
		writeVolumeNames(volumes)
	case FormatWide:
		writeWideVolumeTable(volumes)
	default:
		writeVolumeTable(volumes)
	}
}

// attachment describes where a volume is masked, as shown in the tables.
func attachment(volume *storage.Volume) string {
	switch {
	case volume.IsAttached():
		return *volume.AttachedTo
	case volume.IsForeignAttached():
		return "foreign"
	default:
		return ""
	}
}

func writeVolumeTable(volumes []*storage.Volume) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Blockdevice ID", "Size", "Attached To"})

	for _, volume := range volumes {
		table.Append([]string{
			volume.BlockDeviceID,
			humanize.IBytes(uint64(volume.Size)),
			attachment(volume),
		})
	}

	table.Render()
}

func writeWideVolumeTable(volumes []*storage.Volume) {
	table := tablewriter.NewWriter(os.Stdout)
	header := []string{
		"Blockdevice ID",
		"Dataset ID",
		"Size",
		"Attached To",
		"Foreign Groups",
	}
	table.SetHeader(header)

	for _, volume := range volumes {
		attachedTo := ""
		if volume.IsAttached() {
			attachedTo = *volume.AttachedTo
		}
		table.Append([]string{
			volume.BlockDeviceID,
			volume.DatasetID,
			humanize.IBytes(uint64(volume.Size)),
			attachedTo,
			strings.Join(volume.ForeignGroups, ","),
		})
	}

	table.Render()
}

func writeVolumeNames(volumes []*storage.Volume) {
	for _, volume := range volumes {
		fmt.Println(volume.BlockDeviceID)
	}
}
