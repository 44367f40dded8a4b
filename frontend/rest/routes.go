// Copyright 2025 NetApp, Inc. All Rights Reserved.

package rest

import (
	"net/http"
	"strings"

	"github.com/netapp/vnx-blockdevice/config"
)

type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

type Routes []Route

var controllerRoutes = Routes{
	Route{
		"GetVersion",
		"GET",
		strings.Replace(config.VersionURL, "/v"+config.OrchestratorAPIVersion, "", 1),
		GetVersion,
	},
	Route{
		"GetVersion",
		"GET",
		config.VersionURL,
		GetVersion,
	},
	Route{
		"GetBackend",
		"GET",
		config.BackendURL,
		GetBackend,
	},
	Route{
		"AddVolume",
		"POST",
		config.VolumeURL,
		AddVolume,
	},
	Route{
		"ListVolumes",
		"GET",
		config.VolumeURL,
		ListVolumes,
	},
	Route{
		"GetVolume",
		"GET",
		config.VolumeURL + "/{volume}",
		GetVolume,
	},
	Route{
		"DeleteVolume",
		"DELETE",
		config.VolumeURL + "/{volume}",
		DeleteVolume,
	},
	Route{
		"AttachVolume",
		"POST",
		config.VolumeURL + "/{volume}/attach",
		AttachVolume,
	},
	Route{
		"DetachVolume",
		"POST",
		config.VolumeURL + "/{volume}/detach",
		DetachVolume,
	},
	Route{
		"GetDevicePath",
		"GET",
		config.VolumeURL + "/{volume}/path",
		GetDevicePath,
	},
	Route{
		"GetInstance",
		"GET",
		config.InstanceURL,
		GetInstance,
	},
	Route{
		"GetAllocationUnit",
		"GET",
		config.AllocationUnitURL,
		GetAllocationUnit,
	},
	Route{
		"ListISCSITargets",
		"GET",
		config.TargetsURL,
		ListISCSITargets,
	},
}
