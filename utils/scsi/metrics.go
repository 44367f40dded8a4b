// Copyright 2025 NetApp, Inc. All Rights Reserved.

package scsi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/netapp/vnx-blockdevice/config"
)

const (
	phaseBus    = "bus"
	phaseDevice = "device"
)

var discoveryAttempts = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: config.OrchestratorName,
		Subsystem: "scsi",
		Name:      "discovery_attempts",
		Help:      "The number of attempts needed for each phase of device discovery",
		Buckets:   []float64{1, 2, 3, 4, 5, 10},
	},
	[]string{"phase"},
)
