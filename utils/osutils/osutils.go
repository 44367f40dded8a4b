// Copyright 2025 NetApp, Inc. All Rights Reserved.

package osutils

//go:generate mockgen -destination=../../mocks/mock_utils/mock_osutils/mock_osutils.go github.com/netapp/vnx-blockdevice/utils/osutils Utils

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/elastic/go-sysinfo"
	"github.com/elastic/go-sysinfo/types"
	"github.com/spf13/afero"

	. "github.com/netapp/vnx-blockdevice/logging"
)

var ChrootPathPrefix string

// HostSystem describes the node running the backend; it is reported by the version endpoint.
type HostSystem struct {
	Hostname      string `json:"hostname"`
	OS            string `json:"os"`
	OSVersion     string `json:"osVersion"`
	KernelVersion string `json:"kernelVersion"`
	Architecture  string `json:"architecture"`
}

type Utils interface {
	GetHostname(ctx context.Context) (string, error)
	GetHostSystemInfo(ctx context.Context) (*HostSystem, error)
	PathExists(path string) (bool, error)
}

type OSUtils struct {
	osFs     afero.Fs
	hostInfo func() (types.HostInfo, error)
}

func New() *OSUtils {
	return NewDetailed(afero.NewOsFs(), hostInfo)
}

func NewDetailed(osFs afero.Fs, info func() (types.HostInfo, error)) *OSUtils {
	return &OSUtils{
		osFs:     osFs,
		hostInfo: info,
	}
}

func init() {
	if os.Getenv("DOCKER_PLUGIN_MODE") != "" {
		SetChrootPathPrefix("/host")
	} else {
		SetChrootPathPrefix("")
	}
}

func SetChrootPathPrefix(prefix string) {
	Logc(context.Background()).Debugf("SetChrootPathPrefix = '%s'", prefix)
	ChrootPathPrefix = prefix
}

func hostInfo() (types.HostInfo, error) {
	host, err := sysinfo.Host()
	if err != nil {
		return types.HostInfo{}, err
	}
	return host.Info(), nil
}

// GetHostname returns the short host name, which is the default compute instance ID and storage group key.
func (o *OSUtils) GetHostname(ctx context.Context) (string, error) {
	info, err := o.hostInfo()
	if err != nil {
		return "", fmt.Errorf("could not read host info; %v", err)
	}
	hostname := strings.TrimSpace(info.Hostname)
	if i := strings.Index(hostname, "."); i > 0 {
		hostname = hostname[:i]
	}
	if hostname == "" {
		return "", fmt.Errorf("host reported an empty hostname")
	}
	Logc(ctx).WithField("hostname", hostname).Debug("Discovered hostname.")
	return hostname, nil
}

func (o *OSUtils) GetHostSystemInfo(ctx context.Context) (*HostSystem, error) {
	info, err := o.hostInfo()
	if err != nil {
		Logc(ctx).WithError(err).Error("Could not read host info.")
		return nil, err
	}

	system := &HostSystem{
		Hostname:      info.Hostname,
		KernelVersion: info.KernelVersion,
		Architecture:  info.Architecture,
	}
	if info.OS != nil {
		system.OS = info.OS.Name
		system.OSVersion = info.OS.Version
	}
	return system, nil
}

// PathExists reports whether path can be stat'ed under the chroot prefix.
func (o *OSUtils) PathExists(path string) (bool, error) {
	if _, err := o.osFs.Stat(ChrootPathPrefix + path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
