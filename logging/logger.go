// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type logEntry struct {
	entry *log.Entry
}

// Logc returns a log entry populated with the request metadata carried by the context.
func Logc(ctx context.Context) LogEntry {
	if ctx == nil {
		ctx = context.Background()
	}

	fields := log.Fields{}
	if v := ctx.Value(ContextKeyRequestID); v != nil {
		fields[string(ContextKeyRequestID)] = v
	}
	if v := ctx.Value(ContextKeyRequestSource); v != nil {
		fields[string(ContextKeyRequestSource)] = v
	}
	if v, ok := ctx.Value(ContextKeyWorkflow).(Workflow); ok && v != WorkflowNone {
		fields[string(ContextKeyWorkflow)] = v
	}
	if v, ok := ctx.Value(ContextKeyLogLayer).(LogLayer); ok && v != LogLayerNone {
		fields[string(ContextKeyLogLayer)] = v
	}

	return &logEntry{entry: log.WithFields(fields)}
}

// Log returns a log entry with no request context, for code that has none.
func Log() LogEntry {
	return Logc(context.Background())
}

// Logd returns a log entry for driver method tracing. Entries are emitted at trace level unless the
// driver's debug trace flag for the method category is enabled, in which case they are promoted to debug.
func Logd(ctx context.Context, driverName string, debugTraceFlagEnabled bool) LogEntry {
	entry := Logc(ctx).WithField("driver", driverName)
	if debugTraceFlagEnabled {
		return entry
	}
	return &traceEntry{LogEntry: entry}
}

// GenerateRequestContext returns a context seeded with a request ID, source, workflow and log layer.
// Values already present in the parent context win over the supplied arguments.
func GenerateRequestContext(
	ctx context.Context, requestID, requestSource string, workflow Workflow, logLayer LogLayer,
) context.Context {
	if ctx == nil {
		ctx = context.Background()
	} else {
		if v := ctx.Value(ContextKeyRequestID); v != nil {
			requestID = fmt.Sprint(v)
		}
		if v := ctx.Value(ContextKeyRequestSource); v != nil {
			requestSource = fmt.Sprint(v)
		}
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	if requestSource == "" {
		requestSource = "Unknown"
	}
	ctx = context.WithValue(ctx, ContextKeyRequestID, requestID)
	ctx = context.WithValue(ctx, ContextKeyRequestSource, requestSource)
	ctx = SetContextWorkflow(ctx, workflow)
	ctx = SetContextLogLayer(ctx, logLayer)
	return ctx
}

// GenerateRequestContextForLayer is a shortcut for internal callers that only know their layer.
func GenerateRequestContextForLayer(ctx context.Context, logLayer LogLayer) context.Context {
	return GenerateRequestContext(ctx, "", ContextSourceInternal, WorkflowNone, logLayer)
}

func SetContextWorkflow(ctx context.Context, workflow Workflow) context.Context {
	if workflow == WorkflowNone {
		return ctx
	}
	return context.WithValue(ctx, ContextKeyWorkflow, workflow)
}

func SetContextLogLayer(ctx context.Context, logLayer LogLayer) context.Context {
	if logLayer == LogLayerNone || logLayer == "" {
		return ctx
	}
	return context.WithValue(ctx, ContextKeyLogLayer, logLayer)
}

func (l *logEntry) WithField(key string, value interface{}) LogEntry {
	return &logEntry{entry: l.entry.WithField(key, value)}
}

func (l *logEntry) WithFields(fields LogFields) LogEntry {
	return &logEntry{entry: l.entry.WithFields(log.Fields(fields))}
}

func (l *logEntry) WithError(err error) LogEntry {
	return &logEntry{entry: l.entry.WithError(err)}
}

func (l *logEntry) Data(key string) (interface{}, bool) {
	v, ok := l.entry.Data[key]
	return v, ok
}

func (l *logEntry) Fatal(args ...interface{})                   { l.entry.Fatal(args...) }
func (l *logEntry) Fatalf(format string, args ...interface{})   { l.entry.Fatalf(format, args...) }
func (l *logEntry) Error(args ...interface{})                   { l.entry.Error(args...) }
func (l *logEntry) Errorf(format string, args ...interface{})   { l.entry.Errorf(format, args...) }
func (l *logEntry) Warn(args ...interface{})                    { l.entry.Warn(args...) }
func (l *logEntry) Warnf(format string, args ...interface{})    { l.entry.Warnf(format, args...) }
func (l *logEntry) Warning(args ...interface{})                 { l.entry.Warning(args...) }
func (l *logEntry) Warningf(format string, args ...interface{}) { l.entry.Warningf(format, args...) }
func (l *logEntry) Info(args ...interface{})                    { l.entry.Info(args...) }
func (l *logEntry) Infof(format string, args ...interface{})    { l.entry.Infof(format, args...) }
func (l *logEntry) Debug(args ...interface{})                   { l.entry.Debug(args...) }
func (l *logEntry) Debugf(format string, args ...interface{})   { l.entry.Debugf(format, args...) }
func (l *logEntry) Trace(args ...interface{})                   { l.entry.Trace(args...) }
func (l *logEntry) Tracef(format string, args ...interface{})   { l.entry.Tracef(format, args...) }

// traceEntry demotes debug messages to trace level.
type traceEntry struct {
	LogEntry
}

func (t *traceEntry) WithField(key string, value interface{}) LogEntry {
	return &traceEntry{LogEntry: t.LogEntry.WithField(key, value)}
}

func (t *traceEntry) WithFields(fields LogFields) LogEntry {
	return &traceEntry{LogEntry: t.LogEntry.WithFields(fields)}
}

func (t *traceEntry) WithError(err error) LogEntry {
	return &traceEntry{LogEntry: t.LogEntry.WithError(err)}
}

func (t *traceEntry) Debug(args ...interface{})                 { t.LogEntry.Trace(args...) }
func (t *traceEntry) Debugf(format string, args ...interface{}) { t.LogEntry.Tracef(format, args...) }
