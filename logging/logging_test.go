// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	InitLogOutput(io.Discard)
	os.Exit(m.Run())
}

func TestInitLogLevel(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	tests := []struct {
		name     string
		debug    bool
		level    string
		expected log.Level
		wantErr  bool
	}{
		{"debug flag wins", true, "error", log.DebugLevel, false},
		{"trace", false, "trace", log.TraceLevel, false},
		{"warn", false, "warn", log.WarnLevel, false},
		{"bad level", false, "chatty", log.InfoLevel, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			log.SetLevel(log.InfoLevel)
			err := InitLogLevel(test.debug, test.level)
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, test.expected, log.GetLevel())
		})
	}
}

func TestInitLogFormat(t *testing.T) {
	defer log.SetFormatter(&log.TextFormatter{})

	assert.NoError(t, InitLogFormat(JSONFormat))
	assert.IsType(t, &JSONFormatter{}, log.StandardLogger().Formatter)
	assert.NoError(t, InitLogFormat(TextFormat))
	assert.Error(t, InitLogFormat("xml"))
}

func TestGenerateRequestContext(t *testing.T) {
	ctx := GenerateRequestContext(context.Background(), "req-1", ContextSourceREST,
		WorkflowVolumeAttach, LogLayerVNXDriver)

	assert.Equal(t, "req-1", ctx.Value(ContextKeyRequestID))
	assert.Equal(t, ContextSourceREST, ctx.Value(ContextKeyRequestSource))
	assert.Equal(t, WorkflowVolumeAttach, ctx.Value(ContextKeyWorkflow))
	assert.Equal(t, LogLayerVNXDriver, ctx.Value(ContextKeyLogLayer))

	// Parent values are kept
	child := GenerateRequestContext(ctx, "req-2", ContextSourceCLI, WorkflowNone, LogLayerNone)
	assert.Equal(t, "req-1", child.Value(ContextKeyRequestID))
	assert.Equal(t, ContextSourceREST, child.Value(ContextKeyRequestSource))
	assert.Equal(t, WorkflowVolumeAttach, child.Value(ContextKeyWorkflow))
}

func TestGenerateRequestContext_Defaults(t *testing.T) {
	//nolint:staticcheck
	ctx := GenerateRequestContext(nil, "", "", WorkflowNone, LogLayerNone)
	id, ok := ctx.Value(ContextKeyRequestID).(string)
	require.True(t, ok)
	assert.Len(t, id, 36)
	assert.Equal(t, "Unknown", ctx.Value(ContextKeyRequestSource))
	assert.Nil(t, ctx.Value(ContextKeyWorkflow))
}

func TestLogc_Fields(t *testing.T) {
	ctx := GenerateRequestContext(context.Background(), "abc", ContextSourceInternal,
		WorkflowVolumeCreate, LogLayerVNXAPI)

	entry := Logc(ctx).WithField("lun", "vnxbd--x--block-y")

	v, ok := entry.Data(string(ContextKeyRequestID))
	assert.True(t, ok)
	assert.Equal(t, "abc", v)
	v, ok = entry.Data(string(ContextKeyLogLayer))
	assert.True(t, ok)
	assert.Equal(t, LogLayerVNXAPI, v)
	v, ok = entry.Data("lun")
	assert.True(t, ok)
	assert.Equal(t, "vnxbd--x--block-y", v)
}

func TestLogd_DemotesDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetLevel(log.DebugLevel)
	defer func() {
		log.SetOutput(io.Discard)
		log.SetLevel(log.InfoLevel)
	}()

	Logd(context.Background(), "emc-vnx", false).WithField("method", "Create").Debug("hidden")
	assert.Empty(t, buf.String())

	Logd(context.Background(), "emc-vnx", true).WithField("method", "Create").Debug("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "driver=emc-vnx")
}

func TestAuditLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	defer log.SetOutput(io.Discard)

	InitAuditLogger(true)
	Audit().Log(context.Background(), AuditRESTAccess, LogFields{"route": "AttachVolume"}, "attach")
	assert.Empty(t, buf.String())

	InitAuditLogger(false)
	Audit().Logf(context.Background(), AuditRESTAccess, LogFields{"route": "AttachVolume"}, "attach %s", "v1")
	assert.Contains(t, buf.String(), "audit=rest")
	assert.Contains(t, buf.String(), "attach v1")
}

func TestPlainTextFormatter(t *testing.T) {
	entry := &log.Entry{
		Time:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   log.WarnLevel,
		Message: "rescan failed",
		Data:    log.Fields{"host": "host3", "err": errors.New("no such file")},
	}

	out, err := (&PlainTextFormatter{}).Format(entry)
	require.NoError(t, err)

	line := string(out)
	assert.True(t, strings.HasPrefix(line, "WARN[2025-01-02T03:04:05Z] rescan failed"))
	assert.Contains(t, line, `err="no such file"`)
	assert.Contains(t, line, "host=host3")
	assert.True(t, strings.Index(line, "err=") < strings.Index(line, "host="))
}

func TestJSONFormatter(t *testing.T) {
	entry := &log.Entry{
		Time:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   log.ErrorLevel,
		Message: "boom",
		Data:    log.Fields{"error": errors.New("bad"), "hlu": 7},
	}

	out, err := (&JSONFormatter{}).Format(entry)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "boom", decoded["message"])
	assert.Equal(t, "error", decoded["level"])
	assert.Equal(t, "bad", decoded["error"])
	assert.Equal(t, "7", decoded["hlu"])
	assert.Equal(t, "2025-01-02T03:04:05Z", decoded["@timestamp"])
}

func TestWriteTruncated(t *testing.T) {
	buf := &bytes.Buffer{}
	long := bytes.Repeat([]byte("a"), MaxLogEntryLength+10)
	require.NoError(t, writeTruncated(buf, long))
	assert.True(t, strings.HasSuffix(buf.String(), "<truncated>\n"))
	assert.Equal(t, MaxLogEntryLength+len("<truncated>\n"), buf.Len())
}

func TestListLogLayers(t *testing.T) {
	assert.Contains(t, ListLogLayers(), "vnx_driver")
	assert.Equal(t, "volume=attach", WorkflowVolumeAttach.String())
}
