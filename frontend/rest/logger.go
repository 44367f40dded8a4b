// Copyright 2025 NetApp, Inc. All Rights Reserved.

package rest

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	. "github.com/netapp/vnx-blockdevice/logging"
)

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func Logger(inner http.Handler, routeName string, logLevel log.Level) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx := GenerateRequestContext(r.Context(), r.Header.Get("X-Request-ID"), ContextSourceREST,
			WorkflowRESTTrace, LogLayerRESTFrontend)
		r = r.WithContext(ctx)
		logRestCallInfo("REST API call received.", r, start, routeName, 0, logLevel)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		inner.ServeHTTP(recorder, r)

		restOpsTotal.WithLabelValues(r.Method, routeName).Inc()
		restOpsSecondsTotal.WithLabelValues(r.Method, routeName).Observe(time.Since(start).Seconds())
		logRestCallInfo("REST API call complete.", r, start, routeName, recorder.status, logLevel)
	})
}

func logRestCallInfo(msg string, r *http.Request, start time.Time, routeName string, status int, logLevel log.Level) {
	fields := LogFields{
		"method":   r.Method,
		"uri":      r.RequestURI,
		"route":    routeName,
		"duration": time.Since(start),
	}
	if status != 0 {
		fields["status"] = status
	}

	logger := Logc(r.Context()).WithFields(fields)
	switch logLevel {
	case log.TraceLevel:
		logger.Trace(msg)
	case log.DebugLevel:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
