// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/netapp/vnx-blockdevice/cli/api"
	"github.com/netapp/vnx-blockdevice/config"
	. "github.com/netapp/vnx-blockdevice/logging"
)

const (
	FormatJSON = "json"
	FormatName = "name"
	FormatWide = "wide"
	FormatYAML = "yaml"

	DefaultServer = "127.0.0.1:" + config.DefaultHTTPPort
	ServerEnvVar  = "VNXBD_SERVER"

	ExitCodeSuccess = 0
	ExitCodeFailure = 1
)

var (
	ExitCode int

	Debug        bool
	Server       string
	OutputFormat string
)

var RootCmd = &cobra.Command{
	SilenceUsage: true,
	Use:          config.OrchestratorClientName,
	Short:        "A CLI tool for the VNX block device backend",
	Long:         `A CLI tool for creating, attaching and inspecting VNX-backed block devices through the vnxbd REST API`,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&Debug, "debug", "d", false, "Debug output")
	RootCmd.PersistentFlags().StringVarP(&Server, "server", "s", "",
		"Address/port of the vnxbd REST interface (default "+DefaultServer+")")
	RootCmd.PersistentFlags().StringVarP(&OutputFormat, "output", "o", "",
		"Output format. One of json|yaml|name|wide|ps (default)")
}

// discoverServer resolves the REST endpoint. A command line flag takes precedence over the environment.
func discoverServer(_ *cobra.Command) error {
	if Server == "" {
		Server = os.Getenv(ServerEnvVar)
	}
	if Server == "" {
		Server = DefaultServer
	}

	if Debug {
		fmt.Printf("Server = %s\n", Server)
	}

	switch OutputFormat {
	case "", FormatJSON, FormatName, FormatWide, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %s", OutputFormat)
	}
}

func initCmdLogging() {
	logLevel := "warn"
	if Debug {
		logLevel = "debug"
	}
	_ = InitLogLevel(Debug, logLevel)
}

func preRun(cmd *cobra.Command, _ []string) error {
	initCmdLogging()
	return discoverServer(cmd)
}

func BaseURL() string {
	url := fmt.Sprintf("http://%s%s", Server, config.BaseURL)

	if Debug {
		fmt.Printf("vnxbd URL: %s\n", url)
	}

	return url
}

func GetErrorFromHTTPResponse(response *http.Response, responseBody []byte) error {
	var errorResponse api.ErrorResponse
	if err := json.Unmarshal(responseBody, &errorResponse); err == nil && errorResponse.Error != "" {
		return fmt.Errorf("%s (%s)", errorResponse.Error, response.Status)
	}
	return errors.New(response.Status)
}

func SetExitCodeFromError(err error) {
	ExitCode = GetExitCodeFromError(err)
}

func GetExitCodeFromError(err error) int {
	if err == nil {
		return ExitCodeSuccess
	} else {

		// Default to 1 in case we can't determine a process exit code
		code := ExitCodeFailure

		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			if ws, ok := exitError.Sys().(syscall.WaitStatus); ok {
				code = ws.ExitStatus()
			}
		}

		return code
	}
}
