// Copyright 2025 NetApp, Inc. All Rights Reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"

	"github.com/netapp/vnx-blockdevice/config"
	"github.com/netapp/vnx-blockdevice/core"
	"github.com/netapp/vnx-blockdevice/frontend"
	"github.com/netapp/vnx-blockdevice/frontend/metrics"
	"github.com/netapp/vnx-blockdevice/frontend/rest"
	. "github.com/netapp/vnx-blockdevice/logging"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

type daemonOptions struct {
	// Logging
	debug     bool
	logLevel  string
	logFormat string
	logName   string
	logToFile bool

	// Backend
	configPath string

	// HTTP REST interface
	address          string
	port             string
	enableREST       bool
	httpWriteTimeout time.Duration

	// Metrics
	metricsAddress string
	metricsPort    string
	enableMetrics  bool
}

func newFlagSet(opts *daemonOptions) *flag.FlagSet {
	fs := flag.NewFlagSet(config.OrchestratorName, flag.ContinueOnError)

	fs.BoolVar(&opts.debug, "debug", false, "Enable debugging output")
	fs.StringVar(&opts.logLevel, "log_level", "info", "Logging level (trace, debug, info, warn, error, fatal)")
	fs.StringVar(&opts.logFormat, "log_format", TextFormat, "Logging format (text, json)")
	fs.StringVar(&opts.logName, "log_name", config.OrchestratorName, "Name of the log file under "+LogRoot)
	fs.BoolVar(&opts.logToFile, "log_to_file", true, "Write logs to a file as well as the console")

	fs.StringVar(&opts.configPath, "config", config.DefaultConfigPath, "Path to the backend configuration file")

	fs.StringVar(&opts.address, "address", "127.0.0.1", "HTTP REST API address")
	fs.StringVar(&opts.port, "port", config.DefaultHTTPPort, "HTTP REST API port")
	fs.BoolVar(&opts.enableREST, "rest", true, "Enable HTTP REST interface")
	fs.DurationVar(&opts.httpWriteTimeout, "http_request_timeout", config.HTTPTimeout,
		"Write timeout for HTTP REST responses")

	fs.StringVar(&opts.metricsAddress, "metrics_address", "", "Prometheus metrics address")
	fs.StringVar(&opts.metricsPort, "metrics_port", config.DefaultMetricsPort, "Prometheus metrics port")
	fs.BoolVar(&opts.enableMetrics, "metrics", true, "Enable Prometheus metrics endpoint")

	return fs
}

// parseArgs parses the daemon command line and validates the result.
func parseArgs(args []string) (*daemonOptions, error) {
	opts := &daemonOptions{}
	fs := newFlagSet(opts)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *daemonOptions) validate() error {
	if o.logFormat != TextFormat && o.logFormat != JSONFormat {
		return fmt.Errorf("unknown log format: %s", o.logFormat)
	}
	if o.configPath == "" {
		return fmt.Errorf("a backend configuration file is required")
	}
	if o.enableREST {
		if err := validatePort("port", o.port); err != nil {
			return err
		}
		if o.httpWriteTimeout <= 0 {
			return fmt.Errorf("http_request_timeout must be positive")
		}
	}
	if o.enableMetrics {
		if err := validatePort("metrics_port", o.metricsPort); err != nil {
			return err
		}
	}
	if o.enableREST && o.enableMetrics && o.port == o.metricsPort && o.address == o.metricsAddress {
		return fmt.Errorf("REST and metrics endpoints cannot share %s:%s", o.address, o.port)
	}
	return nil
}

func validatePort(name, port string) error {
	p, err := strconv.Atoi(port)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("invalid %s %q", name, port)
	}
	return nil
}

// readBackendConfig returns the contents of the backend config file, which may be JSON or YAML.
func readBackendConfig(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("could not read backend config %s; %v", path, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.InvalidInputError("backend config %s is empty", path)
	}
	return string(data), nil
}

func printFlag(f *flag.Flag) {
	Log().WithFields(LogFields{
		"name":  f.Name,
		"value": f.Value,
	}).Debug("Flag")
}

func initLogging(opts *daemonOptions) error {
	if err := InitLogLevel(opts.debug, opts.logLevel); err != nil {
		return err
	}
	if opts.logToFile {
		return InitLoggingForDaemon(opts.logName, opts.logFormat)
	}
	return InitLogFormat(opts.logFormat)
}

// buildFrontends creates the enabled frontends and registers them with the orchestrator.
func buildFrontends(ctx context.Context, orchestrator core.Orchestrator, opts *daemonOptions) []frontend.Plugin {
	frontends := make([]frontend.Plugin, 0)

	if opts.enableREST {
		httpServer := rest.NewHTTPServer(orchestrator, opts.address, opts.port, opts.httpWriteTimeout)
		frontends = append(frontends, httpServer)
	} else {
		Logc(ctx).Warning("HTTP REST interface disabled.")
	}

	if opts.enableMetrics {
		frontends = append(frontends, metrics.NewMetricsServer(opts.metricsAddress, opts.metricsPort))
	}

	for _, f := range frontends {
		orchestrator.AddFrontend(ctx, f)
		Logc(ctx).WithField("name", f.GetName()).Info("Added frontend.")
	}
	return frontends
}

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	opts := &daemonOptions{}
	fs := newFlagSet(opts)
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if err := opts.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := initLogging(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	InitAuditLogger(false)
	fs.Visit(printFlag)

	ctx := GenerateRequestContext(context.Background(), "", ContextSourceInternal, WorkflowCoreBootstrap, LogLayerCore)

	Logc(ctx).WithFields(LogFields{
		"version":    config.OrchestratorVersion,
		"build_time": config.BuildTime,
		"binary":     os.Args[0],
	}).Info("Running VNX block device service.")

	configData, err := readBackendConfig(afero.NewOsFs(), opts.configPath)
	if err != nil {
		Logc(ctx).Fatal(err)
	}

	orchestrator := core.NewVNXOrchestrator(configData)
	frontends := buildFrontends(ctx, orchestrator, opts)

	// Frontends come up first so the REST API can report bootstrap failures.
	for _, f := range frontends {
		if err := f.Activate(); err != nil {
			Logc(ctx).WithError(err).WithField("name", f.GetName()).Fatal("Could not activate frontend.")
		}
	}
	if err := orchestrator.Bootstrap(); err != nil {
		Logc(ctx).Error(err.Error())
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	Logc(ctx).Info("Shutting down.")
	for _, f := range frontends {
		if err := f.Deactivate(); err != nil {
			Logc(ctx).WithError(err).WithField("name", f.GetName()).Warning("Could not deactivate frontend.")
		}
	}
	orchestrator.Terminate(ctx)
	Logc(ctx).Info("Shutdown complete.")
}
