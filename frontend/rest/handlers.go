// Copyright 2025 NetApp, Inc. All Rights Reserved.

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"runtime"

	"github.com/gorilla/mux"

	"github.com/netapp/vnx-blockdevice/config"
	. "github.com/netapp/vnx-blockdevice/logging"
	"github.com/netapp/vnx-blockdevice/storage"
	"github.com/netapp/vnx-blockdevice/storage_drivers/vnx/api"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

// httpStatusCodeForError maps the error taxonomy onto HTTP status codes. successCode is returned for a nil error.
func httpStatusCodeForError(err error, successCode int) int {
	switch {
	case err == nil:
		return successCode
	case errors.IsNotReadyError(err):
		return http.StatusServiceUnavailable
	case errors.IsBootstrapError(err):
		return http.StatusInternalServerError
	case errors.IsUnknownVolumeError(err), errors.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.IsInvalidInputError(err), errors.IsUnsupportedConfigError(err):
		return http.StatusBadRequest
	case errors.IsAlreadyAttachedVolumeError(err), errors.IsUnattachedVolumeError(err):
		return http.StatusConflict
	case errors.IsStorageGroupExhaustedError(err):
		return http.StatusInsufficientStorage
	case errors.IsDeviceDiscoveryTimeoutError(err), errors.IsTimeoutError(err):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func httpStatusCodeForAdd(err error) int {
	return httpStatusCodeForError(err, http.StatusCreated)
}

func httpStatusCodeForGetUpdateList(err error) int {
	return httpStatusCodeForError(err, http.StatusOK)
}

func httpStatusCodeForDelete(err error) int {
	return httpStatusCodeForError(err, http.StatusOK)
}

func writeHTTPResponse(ctx context.Context, w http.ResponseWriter, response interface{}, httpStatusCode int) {
	if _, err := json.Marshal(response); err != nil {
		Logc(ctx).WithFields(LogFields{
			"response": response,
			"error":    err,
		}).Error("Failed to marshal HTTP response.")
		w.WriteHeader(http.StatusInternalServerError)
	} else {
		w.WriteHeader(httpStatusCode)
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		Logc(ctx).WithFields(LogFields{
			"response": response,
			"error":    err,
		}).Error("Failed to write HTTP response.")
	}
}

func GetGeneric(
	w http.ResponseWriter,
	r *http.Request,
	varName string,
	response interface{},
	getter func(string) int,
) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")

	vars := mux.Vars(r)
	target := vars[varName]
	httpStatusCode := getter(target)

	writeHTTPResponse(r.Context(), w, response, httpStatusCode)
}

func GetGenericNoArg(
	w http.ResponseWriter,
	r *http.Request,
	response interface{},
	getter func() int,
) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")

	httpStatusCode := getter()

	writeHTTPResponse(r.Context(), w, response, httpStatusCode)
}

type httpResponse interface {
	setError(err error)
	isError() bool
	logSuccess(context.Context)
	logFailure(context.Context)
}

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, config.MaxRESTRequestSize))
	if err != nil {
		return nil, err
	}
	if err := r.Body.Close(); err != nil {
		return nil, err
	}
	return body, nil
}

func AddGeneric(
	w http.ResponseWriter,
	r *http.Request,
	response httpResponse,
	adder func([]byte) int,
) {
	var httpStatusCode int

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")

	defer func() {
		if response.isError() {
			response.logFailure(r.Context())
		} else {
			response.logSuccess(r.Context())
		}

		writeHTTPResponse(r.Context(), w, response, httpStatusCode)
	}()

	body, err := readBody(r)
	if err != nil {
		response.setError(err)
		httpStatusCode = httpStatusCodeForAdd(err)
		return
	}
	httpStatusCode = adder(body)
}

func UpdateGeneric(
	w http.ResponseWriter,
	r *http.Request,
	varName string,
	response httpResponse,
	updater func(string, []byte) int,
) {
	var httpStatusCode int

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")

	defer func() {
		if response.isError() {
			response.logFailure(r.Context())
		} else {
			response.logSuccess(r.Context())
		}
		writeHTTPResponse(r.Context(), w, response, httpStatusCode)
	}()

	vars := mux.Vars(r)
	target := vars[varName]
	body, err := readBody(r)
	if err != nil {
		response.setError(err)
		httpStatusCode = httpStatusCodeForGetUpdateList(err)
		return
	}
	httpStatusCode = updater(target, body)
}

type DeleteResponse struct {
	Error string `json:"error,omitempty"`
}

type deleteFunc func(ctx context.Context, name string) error

func DeleteGeneric(
	w http.ResponseWriter,
	r *http.Request,
	deleter deleteFunc,
	varName string,
) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	response := DeleteResponse{}

	vars := mux.Vars(r)
	toDelete := vars[varName]

	err := deleter(r.Context(), toDelete)
	if err != nil {
		response.Error = err.Error()
	}
	httpStatusCode := httpStatusCodeForDelete(err)

	writeHTTPResponse(r.Context(), w, response, httpStatusCode)
}

type GetVersionResponse struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	Error     string `json:"error,omitempty"`
}

func GetVersion(w http.ResponseWriter, r *http.Request) {
	response := &GetVersionResponse{}
	GetGenericNoArg(w, r, response,
		func() int {
			response.GoVersion = runtime.Version()
			version, err := orchestrator.GetVersion(r.Context())
			if err != nil {
				response.Error = err.Error()
			}
			response.Version = version
			return httpStatusCodeForGetUpdateList(err)
		},
	)
}

type GetBackendResponse struct {
	Backend *storage.BackendExternal `json:"backend"`
	Error   string                   `json:"error,omitempty"`
}

func GetBackend(w http.ResponseWriter, r *http.Request) {
	response := &GetBackendResponse{}
	GetGenericNoArg(w, r, response,
		func() int {
			backend, err := orchestrator.GetBackend(r.Context())
			if err != nil {
				response.Error = err.Error()
			}
			response.Backend = backend
			return httpStatusCodeForGetUpdateList(err)
		},
	)
}

// AddVolumeRequest is the body of a volume create call. Size is in bytes.
type AddVolumeRequest struct {
	DatasetID string `json:"datasetID"`
	Size      int64  `json:"size"`
}

type AddVolumeResponse struct {
	Volume *storage.Volume `json:"volume,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func (r *AddVolumeResponse) setError(err error) {
	r.Error = err.Error()
}

func (r *AddVolumeResponse) isError() bool {
	return r.Error != ""
}

func (r *AddVolumeResponse) logSuccess(ctx context.Context) {
	Logc(ctx).WithFields(LogFields{
		"volume":  r.Volume.BlockDeviceID,
		"handler": "AddVolume",
	}).Info("Added a new volume.")
}

func (r *AddVolumeResponse) logFailure(ctx context.Context) {
	Logc(ctx).WithField("handler", "AddVolume").Error(r.Error)
}

func AddVolume(w http.ResponseWriter, r *http.Request) {
	response := &AddVolumeResponse{}
	AddGeneric(w, r, response,
		func(body []byte) int {
			request := new(AddVolumeRequest)
			if err := json.Unmarshal(body, request); err != nil {
				err = errors.InvalidInputError("invalid JSON: %v", err)
				response.setError(err)
				return httpStatusCodeForAdd(err)
			}
			volume, err := orchestrator.CreateVolume(r.Context(), request.DatasetID, request.Size)
			if err != nil {
				response.setError(err)
			}
			response.Volume = volume
			return httpStatusCodeForAdd(err)
		},
	)
}

type ListVolumesResponse struct {
	Volumes []*storage.Volume `json:"volumes"`
	Error   string            `json:"error,omitempty"`
}

func ListVolumes(w http.ResponseWriter, r *http.Request) {
	response := &ListVolumesResponse{}
	GetGenericNoArg(w, r, response,
		func() int {
			volumes, err := orchestrator.ListVolumes(r.Context())
			if err != nil {
				response.Error = err.Error()
			}
			response.Volumes = volumes
			if response.Volumes == nil {
				response.Volumes = make([]*storage.Volume, 0)
			}
			return httpStatusCodeForGetUpdateList(err)
		},
	)
}

type GetVolumeResponse struct {
	Volume *storage.Volume `json:"volume"`
	Error  string          `json:"error,omitempty"`
}

func GetVolume(w http.ResponseWriter, r *http.Request) {
	response := &GetVolumeResponse{}
	GetGeneric(w, r, "volume", response,
		func(blockDeviceID string) int {
			volume, err := orchestrator.GetVolume(r.Context(), blockDeviceID)
			if err != nil {
				response.Error = err.Error()
			}
			response.Volume = volume
			return httpStatusCodeForGetUpdateList(err)
		},
	)
}

func DeleteVolume(w http.ResponseWriter, r *http.Request) {
	DeleteGeneric(w, r, orchestrator.DestroyVolume, "volume")
}

// AttachVolumeRequest is the body of an attach call. Host must be this backend's compute instance id.
type AttachVolumeRequest struct {
	Host string `json:"host"`
}

type AttachVolumeResponse struct {
	Volume *storage.Volume `json:"volume,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func (r *AttachVolumeResponse) setError(err error) {
	r.Error = err.Error()
}

func (r *AttachVolumeResponse) isError() bool {
	return r.Error != ""
}

func (r *AttachVolumeResponse) logSuccess(ctx context.Context) {
	Logc(ctx).WithFields(LogFields{
		"volume":  r.Volume.BlockDeviceID,
		"handler": "AttachVolume",
	}).Info("Attached a volume.")
}

func (r *AttachVolumeResponse) logFailure(ctx context.Context) {
	Logc(ctx).WithField("handler", "AttachVolume").Error(r.Error)
}

func AttachVolume(w http.ResponseWriter, r *http.Request) {
	response := &AttachVolumeResponse{}
	UpdateGeneric(w, r, "volume", response,
		func(blockDeviceID string, body []byte) int {
			request := new(AttachVolumeRequest)
			if err := json.Unmarshal(body, request); err != nil {
				err = errors.InvalidInputError("invalid JSON: %v", err)
				response.setError(err)
				return httpStatusCodeForGetUpdateList(err)
			}
			volume, err := orchestrator.AttachVolume(r.Context(), blockDeviceID, request.Host)
			if err != nil {
				response.setError(err)
			}
			response.Volume = volume
			return httpStatusCodeForGetUpdateList(err)
		},
	)
}

type DetachVolumeResponse struct {
	BlockDeviceID string `json:"volume"`
	Error         string `json:"error,omitempty"`
}

func (r *DetachVolumeResponse) setError(err error) {
	r.Error = err.Error()
}

func (r *DetachVolumeResponse) isError() bool {
	return r.Error != ""
}

func (r *DetachVolumeResponse) logSuccess(ctx context.Context) {
	Logc(ctx).WithFields(LogFields{
		"volume":  r.BlockDeviceID,
		"handler": "DetachVolume",
	}).Info("Detached a volume.")
}

func (r *DetachVolumeResponse) logFailure(ctx context.Context) {
	Logc(ctx).WithFields(LogFields{
		"volume":  r.BlockDeviceID,
		"handler": "DetachVolume",
	}).Error(r.Error)
}

func DetachVolume(w http.ResponseWriter, r *http.Request) {
	response := &DetachVolumeResponse{}
	UpdateGeneric(w, r, "volume", response,
		func(blockDeviceID string, _ []byte) int {
			response.BlockDeviceID = blockDeviceID
			err := orchestrator.DetachVolume(r.Context(), blockDeviceID)
			if err != nil {
				response.setError(err)
			}
			return httpStatusCodeForGetUpdateList(err)
		},
	)
}

type GetDevicePathResponse struct {
	Path  string `json:"path,omitempty"`
	Error string `json:"error,omitempty"`
}

func GetDevicePath(w http.ResponseWriter, r *http.Request) {
	response := &GetDevicePathResponse{}
	GetGeneric(w, r, "volume", response,
		func(blockDeviceID string) int {
			path, err := orchestrator.GetDevicePath(r.Context(), blockDeviceID)
			if err != nil {
				response.Error = err.Error()
			}
			response.Path = path
			return httpStatusCodeForGetUpdateList(err)
		},
	)
}

type GetInstanceResponse struct {
	InstanceID string `json:"instanceID,omitempty"`
	Error      string `json:"error,omitempty"`
}

func GetInstance(w http.ResponseWriter, r *http.Request) {
	response := &GetInstanceResponse{}
	GetGenericNoArg(w, r, response,
		func() int {
			instanceID, err := orchestrator.ComputeInstanceID(r.Context())
			if err != nil {
				response.Error = err.Error()
			}
			response.InstanceID = instanceID
			return httpStatusCodeForGetUpdateList(err)
		},
	)
}

type GetAllocationUnitResponse struct {
	AllocationUnit int64  `json:"allocationUnit,omitempty"`
	Error          string `json:"error,omitempty"`
}

func GetAllocationUnit(w http.ResponseWriter, r *http.Request) {
	response := &GetAllocationUnitResponse{}
	GetGenericNoArg(w, r, response,
		func() int {
			allocationUnit, err := orchestrator.AllocationUnit(r.Context())
			if err != nil {
				response.Error = err.Error()
			}
			response.AllocationUnit = allocationUnit
			return httpStatusCodeForGetUpdateList(err)
		},
	)
}

type ListISCSITargetsResponse struct {
	Targets []api.ISCSITarget `json:"targets"`
	Error   string            `json:"error,omitempty"`
}

func ListISCSITargets(w http.ResponseWriter, r *http.Request) {
	response := &ListISCSITargetsResponse{}
	GetGenericNoArg(w, r, response,
		func() int {
			targets, err := orchestrator.ISCSITargets(r.Context())
			if err != nil {
				response.Error = err.Error()
			}
			response.Targets = targets
			if response.Targets == nil {
				response.Targets = make([]api.ISCSITarget, 0)
			}
			return httpStatusCodeForGetUpdateList(err)
		},
	)
}
