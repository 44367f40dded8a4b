// Copyright 2025 NetApp, Inc. All Rights Reserved.

package main

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/netapp/vnx-blockdevice/config"
	"github.com/netapp/vnx-blockdevice/frontend"
	. "github.com/netapp/vnx-blockdevice/logging"
	mockcore "github.com/netapp/vnx-blockdevice/mocks/mock_core"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

func TestMain(m *testing.M) {
	InitLogOutput(io.Discard)
	os.Exit(m.Run())
}

func TestParseArgs_Defaults(t *testing.T) {
	opts, err := parseArgs(nil)
	require.NoError(t, err)

	assert.False(t, opts.debug)
	assert.Equal(t, "info", opts.logLevel)
	assert.Equal(t, TextFormat, opts.logFormat)
	assert.Equal(t, config.DefaultConfigPath, opts.configPath)
	assert.Equal(t, config.DefaultHTTPPort, opts.port)
	assert.Equal(t, config.DefaultMetricsPort, opts.metricsPort)
	assert.Equal(t, config.HTTPTimeout, opts.httpWriteTimeout)
	assert.True(t, opts.enableREST)
	assert.True(t, opts.enableMetrics)
}

func TestParseArgs_Overrides(t *testing.T) {
	opts, err := parseArgs([]string{
		"--debug", "--log_format=json", "--config", "/tmp/vnx.yaml",
		"--address=0.0.0.0", "--port=9000", "--metrics=false", "--http_request_timeout=5s",
	})
	require.NoError(t, err)

	assert.True(t, opts.debug)
	assert.Equal(t, JSONFormat, opts.logFormat)
	assert.Equal(t, "/tmp/vnx.yaml", opts.configPath)
	assert.Equal(t, "0.0.0.0", opts.address)
	assert.Equal(t, "9000", opts.port)
	assert.False(t, opts.enableMetrics)
	assert.Equal(t, 5*time.Second, opts.httpWriteTimeout)
}

func TestParseArgs_Invalid(t *testing.T) {
	tests := map[string][]string{
		"unknown flag":      {"--k8s_pod"},
		"positional arg":    {"serve"},
		"bad log format":    {"--log_format=xml"},
		"empty config":      {"--config="},
		"bad port":          {"--port=http"},
		"port out of range": {"--port=70000"},
		"bad metrics port":  {"--metrics_port=0"},
		"zero timeout":      {"--http_request_timeout=0s"},
		"shared endpoint":   {"--address=", "--port=8001"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseArgs(args)
			assert.Error(t, err)
		})
	}
}

func TestParseArgs_DisabledEndpointsSkipValidation(t *testing.T) {
	_, err := parseArgs([]string{"--rest=false", "--port=bogus", "--metrics=false", "--metrics_port=bogus"})
	assert.NoError(t, err)
}

func TestReadBackendConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/vnxbd/config.yaml", []byte("version: 1\n"), 0o600))
	require.NoError(t, afero.WriteFile(fs, "/etc/vnxbd/empty.yaml", []byte(" \n"), 0o600))

	data, err := readBackendConfig(fs, "/etc/vnxbd/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "version: 1\n", data)

	_, err = readBackendConfig(fs, "/etc/vnxbd/empty.yaml")
	assert.True(t, errors.IsInvalidInputError(err))

	_, err = readBackendConfig(fs, "/etc/vnxbd/missing.yaml")
	assert.Error(t, err)
}

func TestBuildFrontends(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	orchestrator := mockcore.NewMockOrchestrator(mockCtrl)

	var added []frontend.Plugin
	orchestrator.EXPECT().AddFrontend(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, f frontend.Plugin) { added = append(added, f) }).Times(2)

	opts, err := parseArgs(nil)
	require.NoError(t, err)

	frontends := buildFrontends(context.Background(), orchestrator, opts)
	require.Len(t, frontends, 2)
	assert.Equal(t, frontends, added)
	assert.Equal(t, "HTTP REST", frontends[0].GetName())
	assert.Equal(t, "metrics", frontends[1].GetName())
}

func TestBuildFrontends_RESTDisabled(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	orchestrator := mockcore.NewMockOrchestrator(mockCtrl)
	orchestrator.EXPECT().AddFrontend(gomock.Any(), gomock.Any()).Times(1)

	opts, err := parseArgs([]string{"--rest=false"})
	require.NoError(t, err)

	frontends := buildFrontends(context.Background(), orchestrator, opts)
	require.Len(t, frontends, 1)
	assert.Equal(t, "metrics", frontends[0].GetName())
}
