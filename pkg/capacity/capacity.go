// Copyright 2025 NetApp, Inc. All Rights Reserved.

package capacity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	OneGiB = int64(1) << 30
)

// ParseSize converts a human-readable size to bytes. Bare numbers are bytes; single-letter suffixes
// (k, m, g, t, p, e) are binary units, while explicit SI suffixes such as "GB" are decimal.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("size %s must be greater than or equal to 0", s)
		}
		return n, nil
	}

	lower := strings.ToLower(s)
	if last := lower[len(lower)-1]; strings.ContainsRune("kmgtpe", rune(last)) {
		lower += "ib"
	} else if strings.HasSuffix(lower, "i") {
		lower += "b"
	}

	n, err := humanize.ParseBytes(lower)
	if err != nil {
		return 0, fmt.Errorf("invalid size %s; %v", s, err)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("size %s is too large", s)
	}
	return int64(n), nil
}

// ToGiBCeil returns the smallest whole number of GiB that holds sizeBytes.
func ToGiBCeil(sizeBytes int64) int64 {
	if sizeBytes <= 0 {
		return 0
	}
	return (sizeBytes + OneGiB - 1) / OneGiB
}

// GiBToBytes converts a GiB figure reported by the array into bytes.
func GiBToBytes(gib float64) int64 {
	return int64(gib * float64(OneGiB))
}

// Format renders a byte count for humans, e.g. "8.0 GiB".
func Format(sizeBytes int64) string {
	if sizeBytes < 0 {
		return strconv.FormatInt(sizeBytes, 10)
	}
	return humanize.IBytes(uint64(sizeBytes))
}
