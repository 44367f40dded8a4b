// Copyright 2025 NetApp, Inc. All Rights Reserved.

package network

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strings"

	"go.uber.org/multierr"

	. "github.com/netapp/vnx-blockdevice/logging"
)

// Networks is a parsed set of CIDR blocks. An empty set contains nothing.
type Networks []*net.IPNet

// ParseNetworks parses a list of CIDR blocks and returns a multi error naming every block that is invalid.
func ParseNetworks(ctx context.Context, cidrs []string) (Networks, error) {
	var errs error
	networks := make(Networks, 0, len(cidrs))
	for _, cidr := range cidrs {
		_, ipNet, err := net.ParseCIDR(strings.TrimSpace(cidr))
		if err != nil {
			Logc(ctx).WithField("CIDR", cidr).WithError(err).Error("Found an invalid CIDR.")
			errs = multierr.Append(errs, err)
			continue
		}
		networks = append(networks, ipNet)
	}
	if errs != nil {
		return nil, errs
	}
	return networks, nil
}

// ValidateCIDRs checks a list of CIDR blocks, returning a multi error containing every parse failure.
func ValidateCIDRs(ctx context.Context, cidrs []string) error {
	_, err := ParseNetworks(ctx, cidrs)
	return err
}

// Contains reports whether any network in the set holds the address. Unparseable addresses never match.
func (n Networks) Contains(ip string) bool {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return false
	}
	for _, network := range n {
		if network.Contains(parsed) {
			return true
		}
	}
	return false
}

// FilterIPs returns the sorted list of IPs that fall within one or more of the CIDRs.
func FilterIPs(ctx context.Context, ips, cidrs []string) ([]string, error) {
	networks, err := ParseNetworks(ctx, cidrs)
	if err != nil {
		return nil, fmt.Errorf("error parsing CIDR; %v", err)
	}

	filtered := make([]string, 0)
	for _, ip := range ips {
		ip = strings.TrimSpace(ip)
		if networks.Contains(ip) {
			filtered = append(filtered, ip)
		} else {
			Logc(ctx).WithField("IP", ip).Trace("IP not found in any network.")
		}
	}
	sort.Strings(filtered)
	return filtered, nil
}
