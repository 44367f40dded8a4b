// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package api drives an EMC VNX array through naviseccli and parses what it prints.
package api

//go:generate mockgen -destination=../../../mocks/mock_storage_drivers/mock_vnx/mock_api.go github.com/netapp/vnx-blockdevice/storage_drivers/vnx/api Client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/netapp/vnx-blockdevice/config"
	. "github.com/netapp/vnx-blockdevice/logging"
	"github.com/netapp/vnx-blockdevice/utils/errors"
	"github.com/netapp/vnx-blockdevice/utils/exec"
	"github.com/netapp/vnx-blockdevice/utils/limiter"
)

const defaultScope = "0"

// Client is the set of array operations the backend needs. Commands that the array rejects return an
// ArrayCommandFailedError carrying the naviseccli exit code and output.
type Client interface {
	// CheckPool verifies that the named storage pool exists.
	CheckPool(ctx context.Context, pool string) error
	CreateLUN(ctx context.Context, name string, sizeGB int64, pool string) error
	DestroyLUN(ctx context.Context, name string) error
	// GetLUN returns a NotFoundError if the array has no LUN with the name.
	GetLUN(ctx context.Context, name string) (*LUN, error)
	ListLUNs(ctx context.Context) ([]LUN, error)
	GetStorageGroup(ctx context.Context, group string) (*StorageGroup, error)
	ListStorageGroups(ctx context.Context) ([]StorageGroup, error)
	CreateStorageGroup(ctx context.Context, group string) error
	ConnectHost(ctx context.Context, host, group string) error
	AddHLU(ctx context.Context, group string, hlu, alu int) error
	RemoveHLU(ctx context.Context, group string, hlu int) error
	GetISCSITargets(ctx context.Context) ([]ISCSITarget, error)
}

// ClientConfig holds what is needed to reach one array.
type ClientConfig struct {
	CLIPath   string
	SPAddress string

	// Either a security file directory, or explicit credentials.
	SecFilePath string
	Username    string
	Password    string
	Scope       string

	CommandTimeout time.Duration
	// MaxSessions caps concurrent naviseccli processes against the array.
	MaxSessions     int
	DebugTraceFlags map[string]bool
}

// NaviSecCLI runs naviseccli against the array's storage processor.
type NaviSecCLI struct {
	config   ClientConfig
	command  exec.Command
	sessions *limiter.SemaphoreN
}

func NewClient(clientConfig ClientConfig) *NaviSecCLI {
	return NewClientDetailed(clientConfig, exec.NewCommand())
}

func NewClientDetailed(clientConfig ClientConfig, command exec.Command) *NaviSecCLI {
	if clientConfig.CLIPath == "" {
		clientConfig.CLIPath = config.DefaultNaviseccliPath
	}
	if clientConfig.Scope == "" {
		clientConfig.Scope = defaultScope
	}
	if clientConfig.CommandTimeout <= 0 {
		clientConfig.CommandTimeout = config.DefaultCommandTimeout
	}
	if clientConfig.MaxSessions <= 0 {
		clientConfig.MaxSessions = config.DefaultMaxSessions
	}
	return &NaviSecCLI{
		config:   clientConfig,
		command:  command,
		sessions: limiter.NewSemaphoreN("naviseccli-"+clientConfig.SPAddress, limiter.WithSize(clientConfig.MaxSessions)),
	}
}

func (c *NaviSecCLI) baseArgs() []string {
	args := []string{"-h", c.config.SPAddress}
	if c.config.SecFilePath != "" {
		return append(args, "-secfilepath", c.config.SecFilePath)
	}
	if c.config.Username != "" {
		args = append(args, "-user", c.config.Username, "-password", c.config.Password, "-scope", c.config.Scope)
	}
	return args
}

func (c *NaviSecCLI) secrets() map[string]string {
	if c.config.Password == "" {
		return nil
	}
	return map[string]string{c.config.Password: config.REDACTED}
}

// run invokes naviseccli and returns its output. A nonzero exit code becomes an ArrayCommandFailedError.
func (c *NaviSecCLI) run(ctx context.Context, args ...string) (string, error) {
	subcommand := strings.Join(args[:min(2, len(args))], " ")

	if err := c.sessions.Wait(ctx); err != nil {
		return "", err
	}
	defer c.sessions.Release(ctx)

	cmdCtx, cancel := context.WithTimeout(ctx, c.config.CommandTimeout)
	defer cancel()

	start := time.Now()
	out, err := c.command.ExecuteRedacted(cmdCtx, c.config.CLIPath, append(c.baseArgs(), args...), c.secrets())
	arrayCommandDuration.WithLabelValues(subcommand).Observe(float64(time.Since(start).Milliseconds()))
	output := string(out)

	if err == nil {
		arrayCommandsTotal.WithLabelValues(subcommand, "0").Inc()
		return output, nil
	}

	if cmdCtx.Err() == context.DeadlineExceeded {
		arrayCommandsTotal.WithLabelValues(subcommand, "timeout").Inc()
		return output, errors.TimeoutError("naviseccli %s timed out after %v", subcommand, c.config.CommandTimeout)
	}

	code, ok := exec.ExitCode(err)
	if !ok {
		arrayCommandsTotal.WithLabelValues(subcommand, "error").Inc()
		return output, fmt.Errorf("could not run naviseccli %s; %v", subcommand, err)
	}
	arrayCommandsTotal.WithLabelValues(subcommand, strconv.Itoa(code)).Inc()

	Logc(ctx).WithFields(LogFields{
		"command": strings.Join(args, " "),
		"code":    code,
		"output":  output,
	}).Debug("Array command failed.")

	return output, errors.ArrayCommandFailedError(strings.Join(args, " "), code, output)
}

func (c *NaviSecCLI) trace(ctx context.Context, method string, fields LogFields) func() {
	fields["Method"] = method
	fields["Type"] = "NaviSecCLI"
	Logd(ctx, config.VNXStorageDriverName, c.config.DebugTraceFlags["api"]).WithFields(fields).Debug(">>>> " + method)
	return func() {
		Logd(ctx, config.VNXStorageDriverName, c.config.DebugTraceFlags["api"]).WithFields(fields).
			Debug("<<<< " + method)
	}
}

// isNotFoundCode reports whether naviseccli exited with the code it uses for a missing object.
// Any other failure, such as an authentication or connectivity error, is not a missing object.
func isNotFoundCode(err error) bool {
	code, _, ok := errors.ArrayCommandFailedDetails(err)
	return ok && code == CodeLUNNotFound
}

func (c *NaviSecCLI) CheckPool(ctx context.Context, pool string) error {
	defer c.trace(ctx, "CheckPool", LogFields{"pool": pool})()

	out, err := c.run(ctx, "storagepool", "-list", "-name", pool)
	if err != nil {
		if isNotFoundCode(err) {
			return errors.WrapWithNotFoundError(err, "storage pool %s not found", pool)
		}
		return err
	}
	if name := ParsePoolName(out); name == nil || *name != pool {
		return errors.NotFoundError("storage pool %s not found", pool)
	}
	return nil
}

func (c *NaviSecCLI) CreateLUN(ctx context.Context, name string, sizeGB int64, pool string) error {
	defer c.trace(ctx, "CreateLUN", LogFields{"name": name, "sizeGB": sizeGB, "pool": pool})()

	if len(name) > MaxLUNNameLength {
		return errors.InvalidInputError("LUN name %s exceeds the maximum length of %d characters", name,
			MaxLUNNameLength)
	}

	_, err := c.run(ctx, "lun", "-create", "-capacity", strconv.FormatInt(sizeGB, 10), "-sq", "gb",
		"-poolName", pool, "-name", name)
	return err
}

func (c *NaviSecCLI) DestroyLUN(ctx context.Context, name string) error {
	defer c.trace(ctx, "DestroyLUN", LogFields{"name": name})()

	_, err := c.run(ctx, "lun", "-destroy", "-name", name, "-forceDetach", "-o")
	return err
}

func (c *NaviSecCLI) GetLUN(ctx context.Context, name string) (*LUN, error) {
	defer c.trace(ctx, "GetLUN", LogFields{"name": name})()

	out, err := c.run(ctx, "lun", "-list", "-name", name)
	if err != nil {
		if isNotFoundCode(err) {
			return nil, errors.WrapWithNotFoundError(err, "LUN %s not found", name)
		}
		return nil, err
	}

	lun := ParseLUN(out)
	if lun.ID == nil {
		return nil, fmt.Errorf("LUN %s has no logical unit number in array output", name)
	}
	return lun, nil
}

func (c *NaviSecCLI) ListLUNs(ctx context.Context) ([]LUN, error) {
	defer c.trace(ctx, "ListLUNs", LogFields{})()

	out, err := c.run(ctx, "lun", "-list")
	if err != nil {
		return nil, err
	}
	return ParseLUNList(out), nil
}

func (c *NaviSecCLI) GetStorageGroup(ctx context.Context, group string) (*StorageGroup, error) {
	defer c.trace(ctx, "GetStorageGroup", LogFields{"group": group})()

	out, err := c.run(ctx, "storagegroup", "-list", "-gname", group, "-host", "-iscsiAttributes")
	if err != nil {
		return nil, err
	}
	return ParseStorageGroup(group, out), nil
}

func (c *NaviSecCLI) ListStorageGroups(ctx context.Context) ([]StorageGroup, error) {
	defer c.trace(ctx, "ListStorageGroups", LogFields{})()

	out, err := c.run(ctx, "storagegroup", "-list", "-host", "-iscsiAttributes")
	if err != nil {
		return nil, err
	}
	return ParseStorageGroupList(out), nil
}

func (c *NaviSecCLI) CreateStorageGroup(ctx context.Context, group string) error {
	defer c.trace(ctx, "CreateStorageGroup", LogFields{"group": group})()

	_, err := c.run(ctx, "storagegroup", "-create", "-gname", group)
	return err
}

func (c *NaviSecCLI) ConnectHost(ctx context.Context, host, group string) error {
	defer c.trace(ctx, "ConnectHost", LogFields{"host": host, "group": group})()

	_, err := c.run(ctx, "storagegroup", "-connecthost", "-host", host, "-gname", group, "-o")
	return err
}

func (c *NaviSecCLI) AddHLU(ctx context.Context, group string, hlu, alu int) error {
	defer c.trace(ctx, "AddHLU", LogFields{"group": group, "hlu": hlu, "alu": alu})()

	_, err := c.run(ctx, "storagegroup", "-addhlu", "-hlu", strconv.Itoa(hlu), "-alu", strconv.Itoa(alu),
		"-gname", group, "-o")
	return err
}

func (c *NaviSecCLI) RemoveHLU(ctx context.Context, group string, hlu int) error {
	defer c.trace(ctx, "RemoveHLU", LogFields{"group": group, "hlu": hlu})()

	_, err := c.run(ctx, "storagegroup", "-removehlu", "-hlu", strconv.Itoa(hlu), "-gname", group, "-o")
	return err
}

func (c *NaviSecCLI) GetISCSITargets(ctx context.Context) ([]ISCSITarget, error) {
	defer c.trace(ctx, "GetISCSITargets", LogFields{})()

	out, err := c.run(ctx, "connection", "-getport", "-address", "-vlanid")
	if err != nil {
		return nil, err
	}
	return ParseISCSITargets(out), nil
}
