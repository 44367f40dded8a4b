// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

const (
	LogLayerSeparator = ","

	LogLayerCore            = LogLayer("core")
	LogLayerRESTFrontend    = LogLayer("rest_frontend")
	LogLayerMetricsFrontend = LogLayer("metrics_frontend")
	LogLayerVNXDriver       = LogLayer("vnx_driver")
	LogLayerVNXAPI          = LogLayer("vnx_api")
	LogLayerSCSI            = LogLayer("scsi")
	LogLayerCLI             = LogLayer("cli")
	LogLayerAll             = LogLayer("all")
	LogLayerNone            = LogLayer("none")
)

var layers = []LogLayer{
	LogLayerCore,
	LogLayerRESTFrontend,
	LogLayerMetricsFrontend,
	LogLayerVNXDriver,
	LogLayerVNXAPI,
	LogLayerSCSI,
	LogLayerCLI,
	LogLayerAll,
}

// ListLogLayers returns the names of all log layers that may be selected.
func ListLogLayers() []string {
	names := make([]string, 0, len(layers))
	for _, l := range layers {
		names = append(names, l.String())
	}
	return names
}
