// Copyright 2025 NetApp, Inc. All Rights Reserved.

package config

import (
	"io"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	// Disable any standard log output; don't import our logging package here or else an import cycle will occur.
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestIsValidTransport(t *testing.T) {
	for _, transport := range []Transport{TransportFC, TransportISCSI, TransportAuto} {
		assert.True(t, IsValidTransport(transport), "expected valid transport")
	}
	for _, transport := range []Transport{"", "nvme", "FC "} {
		assert.False(t, IsValidTransport(transport), "expected invalid transport")
	}
}

func TestGetValidTransportNames(t *testing.T) {
	assert.ElementsMatch(t, []string{"fc", "iscsi", "auto"}, GetValidTransportNames())
}

func TestVersion(t *testing.T) {
	defer func(buildType, rev, hash string) {
		BuildType, BuildTypeRev, BuildHash = buildType, rev, hash
	}(BuildType, BuildTypeRev, BuildHash)

	BuildHash = "abc123"

	BuildType = "stable"
	assert.Equal(t, orchestratorVersion, version())

	BuildType = "custom"
	assert.Equal(t, orchestratorVersion+"-custom+abc123", version())

	BuildType = "beta"
	BuildTypeRev = "2"
	assert.Equal(t, orchestratorVersion+"-beta.2+abc123", version())
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "/vnxbd/v1", BaseURL)
	assert.Equal(t, "/vnxbd/v1/volume", VolumeURL)
	assert.Equal(t, "/vnxbd/v1/allocation_unit", AllocationUnitURL)
}
