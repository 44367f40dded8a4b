// Copyright 2025 NetApp, Inc. All Rights Reserved.

package vnx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/netapp/vnx-blockdevice/storage"
	"github.com/netapp/vnx-blockdevice/storage_drivers/vnx/api"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

const (
	nameSeparator = "--"

	// A uint64 needs at most 13 base-36 digits.
	clusterFragmentMaxLength = 13
	clusterFragmentMinLength = 8

	blockDeviceIDLength = len(storage.BlockDeviceIDPrefix) + 36
)

// IdentityMapper converts between blockdevice IDs and LUN names of the form
// <prefix>--<cluster fragment>--<blockdevice ID>.
type IdentityMapper struct {
	namePrefix string
}

// NewIdentityMapper returns a mapper for one cluster. The cluster fragment is a hash of the cluster ID,
// shortened only as far as the array's name length limit requires.
func NewIdentityMapper(prefix, clusterID string) (*IdentityMapper, error) {
	if clusterID == "" {
		return nil, errors.InvalidInputError("cluster ID must be specified")
	}
	if strings.Contains(prefix, nameSeparator) {
		return nil, errors.InvalidInputError("storage prefix %s may not contain %q", prefix, nameSeparator)
	}

	fragment, err := clusterFragment(clusterID)
	if err != nil {
		return nil, err
	}

	overhead := len(nameSeparator) + blockDeviceIDLength
	if prefix != "" {
		overhead += len(prefix) + len(nameSeparator)
	}
	available := api.MaxLUNNameLength - overhead
	if available < clusterFragmentMinLength {
		return nil, errors.InvalidInputError("storage prefix %s is too long; at most %d characters fit",
			prefix, len(prefix)-(clusterFragmentMinLength-available))
	}
	if available < len(fragment) {
		fragment = fragment[:available]
	}

	namePrefix := fragment + nameSeparator
	if prefix != "" {
		namePrefix = prefix + nameSeparator + namePrefix
	}
	return &IdentityMapper{namePrefix: namePrefix}, nil
}

func clusterFragment(clusterID string) (string, error) {
	hash, err := hashstructure.Hash(clusterID, hashstructure.FormatV2, nil)
	if err != nil {
		return "", fmt.Errorf("could not hash cluster ID; %v", err)
	}
	fragment := strconv.FormatUint(hash, 36)
	return strings.Repeat("0", clusterFragmentMaxLength-len(fragment)) + fragment, nil
}

// NameFor returns the LUN name for a blockdevice ID.
func (m *IdentityMapper) NameFor(blockDeviceID string) string {
	return m.namePrefix + blockDeviceID
}

// BlockDeviceIDFor recovers the blockdevice ID from a LUN name. Names that belong to another cluster,
// or were not created by this mapper, yield false.
func (m *IdentityMapper) BlockDeviceIDFor(name string) (string, bool) {
	blockDeviceID, found := strings.CutPrefix(name, m.namePrefix)
	if !found || !storage.ValidBlockDeviceID(blockDeviceID) {
		return "", false
	}
	return blockDeviceID, true
}

// NamePrefix is the part shared by every LUN name of this cluster.
func (m *IdentityMapper) NamePrefix() string {
	return m.namePrefix
}
