// Copyright 2025 NetApp, Inc. All Rights Reserved.

package vnx

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/netapp/vnx-blockdevice/config"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

const (
	opCreate  = "create"
	opDestroy = "destroy"
	opAttach  = "attach"
	opDetach  = "detach"
	opGetPath = "get_path"
	opList    = "list"

	outcomeSuccess = "success"
)

var (
	volumeOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.OrchestratorName,
			Subsystem: "backend",
			Name:      "operations_total",
			Help:      "The total number of backend volume operations by outcome",
		},
		[]string{"operation", "outcome"},
	)
	volumeOperationDuration = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  config.OrchestratorName,
			Subsystem:  "backend",
			Name:       "operation_duration_milliseconds",
			Help:       "The duration of backend volume operations",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"operation"},
	)
)

// outcome names the error kind an operation ended with.
func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.IsUnknownVolumeError(err):
		return "unknown_volume"
	case errors.IsUnattachedVolumeError(err):
		return "unattached_volume"
	case errors.IsAlreadyAttachedVolumeError(err):
		return "already_attached"
	case errors.IsStorageGroupMissingError(err):
		return "storage_group_missing"
	case errors.IsStorageGroupExhaustedError(err):
		return "storage_group_exhausted"
	case errors.IsDeviceDiscoveryTimeoutError(err):
		return "discovery_timeout"
	case errors.IsInvalidInputError(err):
		return "invalid_input"
	case errors.IsTimeoutError(err):
		return "timeout"
	case errors.IsArrayCommandFailedError(err):
		return "array_command_failed"
	default:
		return "error"
	}
}

func (d *StorageDriver) observe(operation string, start time.Time, err error) {
	volumeOperationsTotal.WithLabelValues(operation, outcome(err)).Inc()
	volumeOperationDuration.WithLabelValues(operation).Observe(
		float64(d.clock.Since(start).Milliseconds()))
}
