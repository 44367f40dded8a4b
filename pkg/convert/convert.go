// Copyright 2025 NetApp, Inc. All Rights Reserved.

package convert

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/netapp/vnx-blockdevice/config"
	. "github.com/netapp/vnx-blockdevice/logging"
)

// ToPtr converts any value into a pointer to that value.
func ToPtr[T any](v T) *T {
	return &v
}

// PtrToString converts any value into its string representation, or nil
func PtrToString[T any](v *T) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", *v)
}

// ToStringRedacted renders the fields of a struct, replacing the values of any field named in redactList.
func ToStringRedacted(structPointer interface{}, redactList []string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			Log().Errorf("Panic in convert#ToStringRedacted; err: %v", r)
			out = "<panic>"
		}
	}()

	elements := reflect.ValueOf(structPointer).Elem()

	var output strings.Builder
	for i := 0; i < elements.NumField(); i++ {
		fieldName := elements.Type().Field(i).Name
		if slices.Contains(redactList, fieldName) {
			output.WriteString(fmt.Sprintf("%v:%v ", fieldName, config.REDACTED))
		} else {
			output.WriteString(fmt.Sprintf("%v:%#v ", fieldName, elements.Field(i)))
		}
	}

	out = output.String()
	return
}

// RedactSecretsFromString replaces every occurrence of each key of replacements with its value.
func RedactSecretsFromString(stringToSanitize string, replacements map[string]string) string {
	for key, value := range replacements {
		if key == "" {
			continue
		}
		stringToSanitize = strings.ReplaceAll(stringToSanitize, key, value)
	}
	return stringToSanitize
}

func TruncateString(s string, maxLength int) string {
	if len(s) > maxLength {
		return s[:maxLength]
	}
	return s
}
