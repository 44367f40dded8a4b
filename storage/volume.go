// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage

import (
	"fmt"
	"strings"

	"github.com/brunoga/deep"
	"github.com/google/uuid"
)

// BlockDeviceIDPrefix precedes the dataset UUID in every blockdevice ID.
const BlockDeviceIDPrefix = "block-"

// Volume is the orchestrator's view of a LUN owned by this cluster.
type Volume struct {
	BlockDeviceID string `json:"blockdeviceID"`
	DatasetID     string `json:"datasetID"`
	Size          int64  `json:"size"`
	// AttachedTo is set only when the LUN is masked to this host's storage group.
	AttachedTo *string `json:"attachedTo,omitempty"`
	// ForeignGroups names the other storage groups the LUN is masked to.
	ForeignGroups []string `json:"foreignGroups,omitempty"`
}

func (v *Volume) IsAttached() bool {
	return v.AttachedTo != nil
}

// IsForeignAttached reports whether the LUN is masked to another host.
func (v *Volume) IsForeignAttached() bool {
	return len(v.ForeignGroups) > 0
}

func (v *Volume) SmartCopy() *Volume {
	return deep.MustCopy(v)
}

// BlockDeviceIDFromDatasetID returns the blockdevice ID for a dataset. The dataset ID must be a UUID.
func BlockDeviceIDFromDatasetID(datasetID string) (string, error) {
	parsed, err := uuid.Parse(datasetID)
	if err != nil {
		return "", fmt.Errorf("dataset ID %s is not a UUID; %v", datasetID, err)
	}
	return BlockDeviceIDPrefix + parsed.String(), nil
}

// DatasetIDFromBlockDeviceID reverses BlockDeviceIDFromDatasetID.
func DatasetIDFromBlockDeviceID(blockDeviceID string) (string, bool) {
	datasetID, found := strings.CutPrefix(blockDeviceID, BlockDeviceIDPrefix)
	if !found {
		return "", false
	}
	parsed, err := uuid.Parse(datasetID)
	if err != nil || parsed.String() != datasetID {
		return "", false
	}
	return datasetID, true
}

// ValidBlockDeviceID reports whether id has the form block-<lowercase dataset UUID>.
func ValidBlockDeviceID(id string) bool {
	_, ok := DatasetIDFromBlockDeviceID(id)
	return ok
}
