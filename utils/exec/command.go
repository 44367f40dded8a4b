// Copyright 2025 NetApp, Inc. All Rights Reserved.

package exec

//go:generate mockgen -destination=../../mocks/mock_utils/mock_exec/mock_command.go github.com/netapp/vnx-blockdevice/utils/exec Command

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"regexp"
	"strings"
	"time"

	. "github.com/netapp/vnx-blockdevice/logging"
	"github.com/netapp/vnx-blockdevice/pkg/convert"
	vnxerrors "github.com/netapp/vnx-blockdevice/utils/errors"
)

var xtermControlRegex = regexp.MustCompile(`\x1B\[[0-9;]*[a-zA-Z]`)

// Command runs host commands such as naviseccli and lsblk.
type Command interface {
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)
	ExecuteRedacted(
		ctx context.Context, name string, args []string, secretsToRedact map[string]string,
	) ([]byte, error)
	ExecuteWithTimeout(
		ctx context.Context, name string, timeout time.Duration, logOutput bool, args ...string,
	) ([]byte, error)
	ExecuteWithTimeoutAndInput(
		ctx context.Context, name string, timeout time.Duration, logOutput bool, stdin string, args ...string,
	) ([]byte, error)
}

type command struct {
	executor func(ctx context.Context, name string, args ...string) *exec.Cmd
}

func NewCommand() Command {
	return &command{executor: exec.CommandContext}
}

// ExitCode extracts the process exit code from an error returned by a Command, if it carries one.
func ExitCode(err error) (int, bool) {
	var exitErr interface{ ExitCode() int }
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}

// Execute invokes an external process and returns its combined output, even on failure.
func (c *command) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	return c.ExecuteRedacted(ctx, name, args, nil)
}

// ExecuteRedacted invokes an external process, replacing each key of secretsToRedact with its value when
// logging the arguments.
func (c *command) ExecuteRedacted(
	ctx context.Context, name string, args []string, secretsToRedact map[string]string,
) ([]byte, error) {
	Logc(ctx).WithFields(LogFields{
		"command": name,
		"args":    convert.RedactSecretsFromString(strings.Join(args, " "), secretsToRedact),
	}).Debug(">>>> exec.Execute")

	out, err := c.executor(ctx, name, args...).CombinedOutput()

	Logc(ctx).WithFields(LogFields{
		"command": name,
		"output":  sanitizeExecOutput(string(out)),
		"error":   err,
	}).Debug("<<<< exec.Execute")

	return out, err
}

// ExecuteWithTimeout invokes an external process, killing it and returning a timeout error if it does not
// complete within the given duration.
func (c *command) ExecuteWithTimeout(
	ctx context.Context, name string, timeout time.Duration, logOutput bool, args ...string,
) ([]byte, error) {
	return c.ExecuteWithTimeoutAndInput(ctx, name, timeout, logOutput, "", args...)
}

func (c *command) ExecuteWithTimeoutAndInput(
	ctx context.Context, name string, timeout time.Duration, logOutput bool, stdin string, args ...string,
) ([]byte, error) {
	Logc(ctx).WithFields(LogFields{
		"command": name,
		"timeout": timeout,
		"args":    args,
	}).Debug(">>>> exec.ExecuteWithTimeout")
	defer Logc(ctx).Debug("<<<< exec.ExecuteWithTimeout")

	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := c.executor(cmdCtx, name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	if cmdCtx.Err() == context.DeadlineExceeded {
		Logc(ctx).WithFields(LogFields{
			"process": name,
			"timeout": timeout,
		}).Error("Process did not finish in time, it was killed.")
		return nil, vnxerrors.TimeoutError("process %s killed after timeout of %v", name, timeout)
	}

	out := []byte(sanitizeExecOutput(output.String()))
	logFields := LogFields{"command": name, "error": err}
	if logOutput {
		logFields["output"] = string(out)
	}
	Logc(ctx).WithFields(logFields).Debug("Process finished.")

	return out, err
}

// sanitizeExecOutput strips terminal control sequences and a single trailing newline.
func sanitizeExecOutput(s string) string {
	s = xtermControlRegex.ReplaceAllString(s, "")
	return strings.TrimSuffix(s, "\n")
}
