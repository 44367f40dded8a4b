// Copyright 2025 NetApp, Inc. All Rights Reserved.

package frontend

// Plugin is an outer surface of the orchestrator, such as the REST API or the metrics endpoint.
type Plugin interface {
	Activate() error
	Deactivate() error
	GetName() string
	Version() string
}
