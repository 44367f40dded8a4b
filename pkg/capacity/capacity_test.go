// Copyright 2025 NetApp, Inc. All Rights Reserved.

package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	tests := map[string]int64{
		"512":  512,
		"1KB":  1000,
		"1Ki":  1024,
		"1KiB": 1024,
		"4k":   4096,
		"1gi":  OneGiB,
		"1Gi":  OneGiB,
		"1GiB": OneGiB,
		"1gb":  1000000000,
		"1g":   OneGiB,
		"8G":   8 * OneGiB,
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			got, err := ParseSize(input)
			assert.NoError(t, err)
			assert.Equal(t, expected, got)
		})
	}
}

func TestParseSize_Invalid(t *testing.T) {
	for _, input := range []string{"", "-1", "lots", "1XB"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSize(input)
			assert.Error(t, err)
		})
	}
}

func TestToGiBCeil(t *testing.T) {
	assert.Equal(t, int64(0), ToGiBCeil(0))
	assert.Equal(t, int64(0), ToGiBCeil(-5))
	assert.Equal(t, int64(1), ToGiBCeil(1))
	assert.Equal(t, int64(1), ToGiBCeil(OneGiB))
	assert.Equal(t, int64(2), ToGiBCeil(OneGiB+1))
	assert.Equal(t, int64(8), ToGiBCeil(8*OneGiB))
}

func TestGiBToBytes(t *testing.T) {
	assert.Equal(t, 8*OneGiB, GiBToBytes(8.0))
	assert.Equal(t, OneGiB/2, GiBToBytes(0.5))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "8.0 GiB", Format(8*OneGiB))
	assert.Equal(t, "-1", Format(-1))
}
