// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"regexp"
	"strconv"
	"strings"
)

// lunField binds a labelled line of `lun -list` output to a LUN field. The assign function
// receives the captured text and leaves the field nil if the text cannot be converted.
type lunField struct {
	pattern *regexp.Regexp
	assign  func(lun *LUN, raw string)
}

var lunFields = []lunField{
	{
		pattern: regexp.MustCompile(`(?m)^LOGICAL UNIT NUMBER[ \t]*(\d+)`),
		assign: func(lun *LUN, raw string) {
			if id, err := strconv.Atoi(raw); err == nil {
				lun.ID = &id
			}
		},
	},
	{
		pattern: regexp.MustCompile(`(?m)^Name:[ \t]*([^\r\n]*)`),
		assign:  func(lun *LUN, raw string) { lun.Name = &raw },
	},
	{
		pattern: regexp.MustCompile(`(?m)^User Capacity \(GBs\):[ \t]*([^\r\n]*)`),
		assign: func(lun *LUN, raw string) {
			if capacity, err := strconv.ParseFloat(raw, 64); err == nil {
				lun.CapacityGB = &capacity
			}
		},
	},
	{
		pattern: regexp.MustCompile(`(?m)^Current State:[ \t]*([^\r\n]*)`),
		assign:  func(lun *LUN, raw string) { lun.State = &raw },
	},
	{
		pattern: regexp.MustCompile(`(?m)^Status:[ \t]*([^\r\n]*)`),
		assign:  func(lun *LUN, raw string) { lun.Status = &raw },
	},
	{
		pattern: regexp.MustCompile(`(?m)^UID:[ \t]*([0-9A-Fa-f:]+)`),
		assign: func(lun *LUN, raw string) {
			uid := strings.ToLower(strings.ReplaceAll(raw, ":", ""))
			lun.UID = &uid
		},
	},
}

var (
	recordSeparator = regexp.MustCompile(`\n[ \t]*\n`)

	storageGroupNameLabel = "Storage Group Name:"
	storageGroupUID       = regexp.MustCompile(`(?m)^Storage Group UID:[ \t]*([^\r\n]*)`)
	storageGroupPairs     = regexp.MustCompile(`HLU/ALU Pairs:\s*HLU Number\s*ALU Number\s*[-\s]*((?:\d+\s*)+)`)

	poolName = regexp.MustCompile(`(?m)^Pool Name:[ \t]*([^\r\n]*)`)

	spSeparator  = regexp.MustCompile(`(?m)^SP:[ \t]*`)
	spPort       = regexp.MustCompile(`(?i)^(A|B)\s*Port ID:\s+(\d+)\s*Port WWN:\s+(iqn\S+)`)
	spVirtualIPs = regexp.MustCompile(`Virtual Port ID:\s+(\d+)\s*VLAN ID:\s*\S*\s*IP Address:\s+(\S+)`)
)

func normalize(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// captured returns the trimmed first capture group of pattern, or false if the label is missing
// or carries no value.
func captured(pattern *regexp.Regexp, text string) (string, bool) {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	value := strings.TrimSpace(match[1])
	return value, value != ""
}

// ParseLUN reads a single `lun -list` record.
func ParseLUN(text string) *LUN {
	text = normalize(text)
	lun := &LUN{}
	for _, field := range lunFields {
		if raw, ok := captured(field.pattern, text); ok {
			field.assign(lun, raw)
		}
	}
	return lun
}

// ParseLUNList reads every record of `lun -list` output. Blank-line separated chunks that carry
// neither a LUN number nor a name are skipped.
func ParseLUNList(text string) []LUN {
	records := recordSeparator.Split(normalize(text), -1)
	luns := make([]LUN, 0, len(records))
	for _, record := range records {
		if strings.TrimSpace(record) == "" {
			continue
		}
		lun := ParseLUN(record)
		if lun.ID == nil && lun.Name == nil {
			continue
		}
		luns = append(luns, *lun)
	}
	return luns
}

// ParseStorageGroup reads `storagegroup -list -gname <name>` output. A group without any masked
// LUN has an empty, non-nil LUNMap.
func ParseStorageGroup(name, text string) *StorageGroup {
	text = normalize(text)
	group := &StorageGroup{Name: name, LUNMap: make(map[int]int)}

	if uid, ok := captured(storageGroupUID, text); ok {
		group.UID = &uid
	}

	match := storageGroupPairs.FindStringSubmatch(text)
	if match == nil {
		return group
	}
	values := strings.Fields(match[1])
	for i := 0; i+1 < len(values); i += 2 {
		hlu, err := strconv.Atoi(values[i])
		if err != nil {
			continue
		}
		alu, err := strconv.Atoi(values[i+1])
		if err != nil {
			continue
		}
		group.LUNMap[alu] = hlu
	}
	return group
}

// ParseStorageGroupList reads `storagegroup -list` output covering several groups.
func ParseStorageGroupList(text string) []StorageGroup {
	chunks := strings.Split(normalize(text), storageGroupNameLabel)
	groups := make([]StorageGroup, 0, len(chunks))
	for _, chunk := range chunks[1:] {
		name, body, _ := strings.Cut(chunk, "\n")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		groups = append(groups, *ParseStorageGroup(name, body))
	}
	return groups
}

// ParsePoolName returns the pool named in `storagepool -list -name <pool>` output.
func ParsePoolName(text string) *string {
	if name, ok := captured(poolName, normalize(text)); ok {
		return &name
	}
	return nil
}

// ParseISCSITargets reads `connection -getport -address -vlanid` output. Ports that are not
// iSCSI, and portals without an address, are skipped.
func ParseISCSITargets(text string) []ISCSITarget {
	var targets []ISCSITarget
	for _, chunk := range spSeparator.Split(normalize(text), -1) {
		port := spPort.FindStringSubmatch(chunk)
		if port == nil {
			continue
		}
		portID, err := strconv.Atoi(port[2])
		if err != nil {
			continue
		}
		target := ISCSITarget{
			SP:      strings.ToUpper(port[1]),
			PortID:  portID,
			IQN:     port[3],
			Portals: []ISCSIPortal{},
		}
		for _, vport := range spVirtualIPs.FindAllStringSubmatch(chunk, -1) {
			if strings.Contains(vport[2], "N/A") {
				continue
			}
			vportID, err := strconv.Atoi(vport[1])
			if err != nil {
				continue
			}
			target.Portals = append(target.Portals, ISCSIPortal{VirtualPortID: vportID, IPAddress: vport[2]})
		}
		targets = append(targets, target)
	}
	return targets
}
