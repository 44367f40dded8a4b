// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/netapp/vnx-blockdevice/config"
)

var (
	arrayCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.OrchestratorName,
			Subsystem: "array",
			Name:      "commands_total",
			Help:      "The total number of naviseccli invocations by subcommand and exit code",
		},
		[]string{"subcommand", "code"},
	)
	arrayCommandDuration = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  config.OrchestratorName,
			Subsystem:  "array",
			Name:       "command_duration_milliseconds",
			Help:       "The duration of naviseccli invocations by subcommand",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"subcommand"},
	)
)
