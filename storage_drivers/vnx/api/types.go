// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

const (
	LUNStateReady   = "Ready"
	LUNStateFaulted = "Faulted"

	// MinHLU and MaxHLU bound the host LUN numbers a storage group can expose.
	MinHLU = 1
	MaxHLU = 255

	// MaxLUNNameLength is the longest LUN name the array accepts.
	MaxLUNNameLength = 64
)

// Reserved naviseccli exit codes.
const (
	CodeLUNNotFound    = 9
	CodeHLUAlreadyUsed = 66
)

// LUN is one record of `lun -list`. A field the array did not report, or reported in a form that
// could not be read, is nil.
type LUN struct {
	ID         *int     `json:"id,omitempty"`
	Name       *string  `json:"name,omitempty"`
	CapacityGB *float64 `json:"capacityGB,omitempty"`
	State      *string  `json:"state,omitempty"`
	Status     *string  `json:"status,omitempty"`
	UID        *string  `json:"uid,omitempty"`
}

// IsReady reports whether the array has finished initializing the LUN.
func (l *LUN) IsReady() bool {
	return l.State != nil && *l.State == LUNStateReady
}

func (l *LUN) IsFaulted() bool {
	return l.State != nil && *l.State == LUNStateFaulted
}

// StorageGroup is a masking view. LUNMap maps each ALU to the HLU it is exposed as.
type StorageGroup struct {
	Name   string      `json:"name"`
	UID    *string     `json:"uid,omitempty"`
	LUNMap map[int]int `json:"lunMap"`
}

// HLUFor returns the HLU an ALU is exposed as in this group.
func (g *StorageGroup) HLUFor(alu int) (int, bool) {
	if g == nil || g.LUNMap == nil {
		return 0, false
	}
	hlu, ok := g.LUNMap[alu]
	return hlu, ok
}

// UsedHLUs lists the HLUs currently occupied in the group.
func (g *StorageGroup) UsedHLUs() []int {
	if g == nil {
		return nil
	}
	used := make([]int, 0, len(g.LUNMap))
	for _, hlu := range g.LUNMap {
		used = append(used, hlu)
	}
	return used
}

// ISCSIPortal is one reachable address of an SP iSCSI port.
type ISCSIPortal struct {
	VirtualPortID int    `json:"virtualPortID"`
	IPAddress     string `json:"ipAddress"`
}

// ISCSITarget is an SP front-end port and the portals it listens on.
type ISCSITarget struct {
	SP      string        `json:"sp"`
	PortID  int           `json:"portID"`
	IQN     string        `json:"iqn"`
	Portals []ISCSIPortal `json:"portals"`
}
