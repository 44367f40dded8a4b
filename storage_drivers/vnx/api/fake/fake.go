// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package fake is an in-memory VNX array. It answers like naviseccli does, including the exit codes and
// messages the backend classifies.
package fake

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/brunoga/deep"

	"github.com/netapp/vnx-blockdevice/storage_drivers/vnx/api"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

const (
	codeGeneric           = 4
	codeNameInUse         = 4
	codeGroupNotFound     = 83
	codeStorageGroupInUse = 66

	msgLUNNameInUse   = "Unable to create the LUN because the specified name is already in use."
	msgGroupNameInUse = "Storage Group name already in use"
	msgHLUInUse       = "Requested Host LUN Number is already in use"
	msgLUNNotFound    = "Could not retrieve the specified (pool lun). The (pool lun) may not exist"
	msgGroupNotFound  = "Storage Group does not exist"
)

// Array is a thread-safe in-memory array. Records handed out are deep copies.
type Array struct {
	mutex sync.Mutex

	pools   map[string]bool
	luns    map[string]*api.LUN
	groups  map[string]*api.StorageGroup
	hosts   map[string]string
	targets []api.ISCSITarget
	nextALU int

	// InitialState is the Current State given to new LUNs.
	InitialState string
	calls        map[string]int
}

var _ api.Client = &Array{}

func NewArray(pools ...string) *Array {
	a := &Array{
		pools:        make(map[string]bool),
		luns:         make(map[string]*api.LUN),
		groups:       make(map[string]*api.StorageGroup),
		hosts:        make(map[string]string),
		nextALU:      1,
		InitialState: api.LUNStateReady,
		calls:        make(map[string]int),
	}
	for _, pool := range pools {
		a.pools[pool] = true
	}
	return a
}

func failed(command string, code int, output string) error {
	return errors.ArrayCommandFailedError(command, code, output)
}

func (a *Array) record(method string) {
	a.calls[method]++
}

// Calls reports how many times a method has been invoked.
func (a *Array) Calls(method string) int {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	return a.calls[method]
}

// SetLUNState changes the Current State of an existing LUN.
func (a *Array) SetLUNState(name, state string) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	if lun, ok := a.luns[name]; ok {
		lun.State = &state
	}
}

// AddStorageGroup creates a group directly, as another host's administrator would.
func (a *Array) AddStorageGroup(name string, lunMap map[int]int) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	uid := fmt.Sprintf("%032X", len(a.groups)+1)
	group := &api.StorageGroup{Name: name, UID: &uid, LUNMap: make(map[int]int)}
	for alu, hlu := range lunMap {
		group.LUNMap[alu] = hlu
	}
	a.groups[name] = group
}

func (a *Array) SetISCSITargets(targets []api.ISCSITarget) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.targets = deep.MustCopy(targets)
}

func (a *Array) CheckPool(_ context.Context, pool string) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.record("CheckPool")
	if !a.pools[pool] {
		return errors.WrapWithNotFoundError(failed("storagepool -list", api.CodeLUNNotFound,
			"The specified pool does not exist"), "storage pool %s not found", pool)
	}
	return nil
}

func (a *Array) CreateLUN(_ context.Context, name string, sizeGB int64, pool string) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.record("CreateLUN")

	if len(name) > api.MaxLUNNameLength {
		return errors.InvalidInputError("LUN name %s exceeds the maximum length of %d characters", name,
			api.MaxLUNNameLength)
	}
	if !a.pools[pool] {
		return failed("lun -create", codeGeneric, "The specified pool does not exist")
	}
	if _, ok := a.luns[name]; ok {
		return failed("lun -create", codeNameInUse, msgLUNNameInUse)
	}

	id := a.nextALU
	a.nextALU++
	capacity := float64(sizeGB)
	state := a.InitialState
	status := "OK(0x0)"
	uid := fmt.Sprintf("6006016012345678%016x", id)
	lunName := name
	a.luns[name] = &api.LUN{
		ID:         &id,
		Name:       &lunName,
		CapacityGB: &capacity,
		State:      &state,
		Status:     &status,
		UID:        &uid,
	}
	return nil
}

func (a *Array) DestroyLUN(_ context.Context, name string) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.record("DestroyLUN")

	lun, ok := a.luns[name]
	if !ok {
		return failed("lun -destroy", api.CodeLUNNotFound, msgLUNNotFound)
	}
	// -forceDetach removes the LUN from every group.
	for _, group := range a.groups {
		delete(group.LUNMap, *lun.ID)
	}
	delete(a.luns, name)
	return nil
}

func (a *Array) GetLUN(_ context.Context, name string) (*api.LUN, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.record("GetLUN")

	lun, ok := a.luns[name]
	if !ok {
		return nil, errors.WrapWithNotFoundError(failed("lun -list", api.CodeLUNNotFound, msgLUNNotFound),
			"LUN %s not found", name)
	}
	return deep.Copy(lun)
}

func (a *Array) ListLUNs(_ context.Context) ([]api.LUN, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.record("ListLUNs")

	luns := make([]api.LUN, 0, len(a.luns))
	for _, lun := range a.luns {
		luns = append(luns, deep.MustCopy(*lun))
	}
	sort.Slice(luns, func(i, j int) bool { return *luns[i].ID < *luns[j].ID })
	return luns, nil
}

func (a *Array) GetStorageGroup(_ context.Context, group string) (*api.StorageGroup, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.record("GetStorageGroup")

	sg, ok := a.groups[group]
	if !ok {
		return nil, failed("storagegroup -list", codeGroupNotFound, msgGroupNotFound)
	}
	return deep.Copy(sg)
}

func (a *Array) ListStorageGroups(_ context.Context) ([]api.StorageGroup, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.record("ListStorageGroups")

	groups := make([]api.StorageGroup, 0, len(a.groups))
	for _, sg := range a.groups {
		groups = append(groups, deep.MustCopy(*sg))
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups, nil
}

func (a *Array) CreateStorageGroup(_ context.Context, group string) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.record("CreateStorageGroup")

	if _, ok := a.groups[group]; ok {
		return failed("storagegroup -create", codeStorageGroupInUse, msgGroupNameInUse)
	}
	uid := fmt.Sprintf("%032X", len(a.groups)+1)
	a.groups[group] = &api.StorageGroup{Name: group, UID: &uid, LUNMap: make(map[int]int)}
	return nil
}

func (a *Array) ConnectHost(_ context.Context, host, group string) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.record("ConnectHost")

	if _, ok := a.groups[group]; !ok {
		return failed("storagegroup -connecthost", codeGroupNotFound, msgGroupNotFound)
	}
	a.hosts[host] = group
	return nil
}

// ConnectedGroup returns the group a host was connected to.
func (a *Array) ConnectedGroup(host string) (string, bool) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	group, ok := a.hosts[host]
	return group, ok
}

func (a *Array) AddHLU(_ context.Context, group string, hlu, alu int) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.record("AddHLU")

	sg, ok := a.groups[group]
	if !ok {
		return failed("storagegroup -addhlu", codeGroupNotFound, msgGroupNotFound)
	}
	if hlu < api.MinHLU || hlu > api.MaxHLU {
		return failed("storagegroup -addhlu", codeGeneric, "Invalid HLU number")
	}
	if !a.aluExists(alu) {
		return failed("storagegroup -addhlu", codeGeneric, "The specified LUN does not exist")
	}
	if _, masked := sg.LUNMap[alu]; masked {
		return failed("storagegroup -addhlu", api.CodeHLUAlreadyUsed, msgHLUInUse)
	}
	for _, used := range sg.LUNMap {
		if used == hlu {
			return failed("storagegroup -addhlu", api.CodeHLUAlreadyUsed, msgHLUInUse)
		}
	}
	sg.LUNMap[alu] = hlu
	return nil
}

func (a *Array) aluExists(alu int) bool {
	for _, lun := range a.luns {
		if *lun.ID == alu {
			return true
		}
	}
	return false
}

func (a *Array) RemoveHLU(_ context.Context, group string, hlu int) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.record("RemoveHLU")

	sg, ok := a.groups[group]
	if !ok {
		return failed("storagegroup -removehlu", codeGroupNotFound, msgGroupNotFound)
	}
	for alu, used := range sg.LUNMap {
		if used == hlu {
			delete(sg.LUNMap, alu)
			return nil
		}
	}
	return failed("storagegroup -removehlu", codeGeneric, "The specified HLU is not in the storage group")
}

func (a *Array) GetISCSITargets(_ context.Context) ([]api.ISCSITarget, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.record("GetISCSITargets")
	return deep.MustCopy(a.targets), nil
}
