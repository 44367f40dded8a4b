// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"context"
)

const auditKey = "audit"

var auditor AuditLogger = newAuditLogger(false)

type AuditEvent string

// AuditLogger records operations that mutate array or host state, such as masking a LUN or deleting a device.
type AuditLogger interface {
	Log(ctx context.Context, event AuditEvent, fields LogFields, message string)
	Logf(ctx context.Context, event AuditEvent, fields LogFields, format string, args ...interface{})
}

type auditLogger struct {
	enabled bool
}

func InitAuditLogger(disabled bool) {
	auditor = newAuditLogger(disabled)
}

func Audit() AuditLogger {
	return auditor
}

func newAuditLogger(disabled bool) AuditLogger {
	return &auditLogger{enabled: !disabled}
}

func (a *auditLogger) Log(ctx context.Context, event AuditEvent, fields LogFields, message string) {
	if a.enabled {
		Logc(ctx).WithField(auditKey, event).WithFields(fields).Info(message)
	}
}

func (a *auditLogger) Logf(ctx context.Context, event AuditEvent, fields LogFields, format string, args ...interface{}) {
	if a.enabled {
		Logc(ctx).WithField(auditKey, event).WithFields(fields).Infof(format, args...)
	}
}
