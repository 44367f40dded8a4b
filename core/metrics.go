// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/netapp/vnx-blockdevice/config"
)

const (
	volumeStateAttached = "attached"
	volumeStateForeign  = "foreign"
	volumeStateDetached = "detached"
)

var (
	buildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: config.OrchestratorName,
			Name:      "build_info",
			Help:      "Build and release information",
		},
		[]string{"revision", "version", "build_type"},
	)
	backendInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: config.OrchestratorName,
			Name:      "backend_info",
			Help:      "Backend information",
		},
		[]string{"backend_type", "backend_name", "backend_state", "instance_id"},
	)
	volumesGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: config.OrchestratorName,
			Name:      "volume_count",
			Help:      "The number of volumes by attachment state, as of the last listing",
		},
		[]string{"volume_state"},
	)
	volumeAllocatedBytesGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: config.OrchestratorName,
			Name:      "volume_allocated_bytes",
			Help:      "The allocated number of bytes by attachment state, as of the last listing",
		},
		[]string{"volume_state"},
	)
	operationDurationInMsSummary = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  config.OrchestratorName,
			Name:       "operation_duration_milliseconds",
			Help:       "The duration of orchestrator operations",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"operation", "success"},
	)
)
