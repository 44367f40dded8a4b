// Copyright 2025 NetApp, Inc. All Rights Reserved.

package errors

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// ///////////////////////////////////////////////////////////////////////////
// Wrappers for standard library errors package
// ///////////////////////////////////////////////////////////////////////////

func New(message string) error {
	return errors.New(message)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Append combines errors from a series of best-effort steps; nil inputs are ignored.
func Append(left, right error) error {
	return multierr.Append(left, right)
}

// Errors returns the individual errors combined by Append.
func Errors(err error) []error {
	return multierr.Errors(err)
}

func formatMessage(message string, a ...any) string {
	if len(a) == 0 {
		return message
	}
	return fmt.Sprintf(message, a...)
}

func joinMessage(message string, inner error) string {
	if inner == nil || inner.Error() == "" {
		return message
	} else if message == "" {
		return inner.Error()
	}
	return fmt.Sprintf("%v; %v", message, inner.Error())
}

// ///////////////////////////////////////////////////////////////////////////
// bootstrapError
// ///////////////////////////////////////////////////////////////////////////

type bootstrapError struct {
	inner   error
	message string
}

func (e *bootstrapError) Error() string { return e.message }

func (e *bootstrapError) Unwrap() error { return e.inner }

func BootstrapError(err error) error {
	return &bootstrapError{
		inner:   err,
		message: fmt.Sprintf("backend initialization failed; %s", err.Error()),
	}
}

func IsBootstrapError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *bootstrapError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// notFoundError
// ///////////////////////////////////////////////////////////////////////////

type notFoundError struct {
	inner   error
	message string
}

func (e *notFoundError) Error() string { return joinMessage(e.message, e.inner) }

func (e *notFoundError) Unwrap() error { return e.inner }

func NotFoundError(message string, a ...any) error {
	return &notFoundError{message: formatMessage(message, a...)}
}

func WrapWithNotFoundError(err error, message string, a ...any) error {
	return &notFoundError{inner: err, message: formatMessage(message, a...)}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *notFoundError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// notReadyError
// ///////////////////////////////////////////////////////////////////////////

type notReadyError struct {
	message string
}

func (e *notReadyError) Error() string { return e.message }

func NotReadyError() error {
	return &notReadyError{"backend is initializing, please try again later"}
}

func IsNotReadyError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *notReadyError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// timeoutError
// ///////////////////////////////////////////////////////////////////////////

type timeoutError struct {
	message string
}

func (e *timeoutError) Error() string { return e.message }

func TimeoutError(message string, a ...any) error {
	return &timeoutError{message: formatMessage(message, a...)}
}

func IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *timeoutError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// maxWaitExceededError
// ///////////////////////////////////////////////////////////////////////////

type maxWaitExceededError struct {
	message string
}

func (e *maxWaitExceededError) Error() string { return e.message }

func MaxWaitExceededError(message string, a ...any) error {
	return &maxWaitExceededError{message: formatMessage(message, a...)}
}

func IsMaxWaitExceededError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *maxWaitExceededError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// unsupportedConfigError
// ///////////////////////////////////////////////////////////////////////////

type unsupportedConfigError struct {
	inner   error
	message string
}

func (e *unsupportedConfigError) Error() string { return joinMessage(e.message, e.inner) }

func (e *unsupportedConfigError) Unwrap() error { return e.inner }

func UnsupportedConfigError(message string, a ...any) error {
	return &unsupportedConfigError{message: formatMessage(message, a...)}
}

func WrapUnsupportedConfigError(err error) error {
	if err == nil {
		return nil
	}
	return &unsupportedConfigError{inner: err}
}

func IsUnsupportedConfigError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *unsupportedConfigError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// invalidInputError
// ///////////////////////////////////////////////////////////////////////////

type invalidInputError struct {
	message string
}

func (e *invalidInputError) Error() string { return e.message }

func InvalidInputError(message string, a ...any) error {
	return &invalidInputError{message: formatMessage(message, a...)}
}

func IsInvalidInputError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *invalidInputError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// unknownVolumeError
// ///////////////////////////////////////////////////////////////////////////

type unknownVolumeError struct {
	blockDeviceID string
}

func (e *unknownVolumeError) Error() string {
	return fmt.Sprintf("volume %s does not exist", e.blockDeviceID)
}

func (e *unknownVolumeError) BlockDeviceID() string { return e.blockDeviceID }

func UnknownVolumeError(blockDeviceID string) error {
	return &unknownVolumeError{blockDeviceID: blockDeviceID}
}

func IsUnknownVolumeError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *unknownVolumeError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// unattachedVolumeError
// ///////////////////////////////////////////////////////////////////////////

type unattachedVolumeError struct {
	blockDeviceID string
	inner         error
}

func (e *unattachedVolumeError) Error() string {
	return joinMessage(fmt.Sprintf("volume %s is not attached to this host", e.blockDeviceID), e.inner)
}

func (e *unattachedVolumeError) Unwrap() error { return e.inner }

func (e *unattachedVolumeError) BlockDeviceID() string { return e.blockDeviceID }

func UnattachedVolumeError(blockDeviceID string) error {
	return &unattachedVolumeError{blockDeviceID: blockDeviceID}
}

func WrapWithUnattachedVolumeError(err error, blockDeviceID string) error {
	return &unattachedVolumeError{blockDeviceID: blockDeviceID, inner: err}
}

func IsUnattachedVolumeError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *unattachedVolumeError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// alreadyAttachedVolumeError
// ///////////////////////////////////////////////////////////////////////////

// alreadyAttachedVolumeError is returned when the array refuses to mask a LUN because the HLU slot
// or the LUN is already in use. Callers may retry the whole attach.
type alreadyAttachedVolumeError struct {
	blockDeviceID string
	inner         error
}

func (e *alreadyAttachedVolumeError) Error() string {
	return joinMessage(fmt.Sprintf("volume %s is already attached", e.blockDeviceID), e.inner)
}

func (e *alreadyAttachedVolumeError) Unwrap() error { return e.inner }

func AlreadyAttachedVolumeError(blockDeviceID string, err error) error {
	return &alreadyAttachedVolumeError{blockDeviceID: blockDeviceID, inner: err}
}

func IsAlreadyAttachedVolumeError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *alreadyAttachedVolumeError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// storageGroupMissingError
// ///////////////////////////////////////////////////////////////////////////

type storageGroupMissingError struct {
	group string
	inner error
}

func (e *storageGroupMissingError) Error() string {
	return joinMessage(fmt.Sprintf("storage group %s could not be read", e.group), e.inner)
}

func (e *storageGroupMissingError) Unwrap() error { return e.inner }

func StorageGroupMissingError(group string, err error) error {
	return &storageGroupMissingError{group: group, inner: err}
}

func IsStorageGroupMissingError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *storageGroupMissingError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// storageGroupExhaustedError
// ///////////////////////////////////////////////////////////////////////////

type storageGroupExhaustedError struct {
	group string
}

func (e *storageGroupExhaustedError) Error() string {
	if e.group == "" {
		return "no free host LUN numbers remain in the storage group"
	}
	return fmt.Sprintf("no free host LUN numbers remain in storage group %s", e.group)
}

func StorageGroupExhaustedError(group string) error {
	return &storageGroupExhaustedError{group: group}
}

func IsStorageGroupExhaustedError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *storageGroupExhaustedError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// deviceDiscoveryTimeoutError
// ///////////////////////////////////////////////////////////////////////////

type deviceDiscoveryTimeoutError struct {
	path     string
	elapsed  time.Duration
	attempts int
}

func (e *deviceDiscoveryTimeoutError) Error() string {
	return fmt.Sprintf("device %s did not become available after %d attempts (%v elapsed)",
		e.path, e.attempts, e.elapsed)
}

func (e *deviceDiscoveryTimeoutError) Path() string { return e.path }

func (e *deviceDiscoveryTimeoutError) Elapsed() time.Duration { return e.elapsed }

func (e *deviceDiscoveryTimeoutError) Attempts() int { return e.attempts }

func DeviceDiscoveryTimeoutError(path string, elapsed time.Duration, attempts int) error {
	return &deviceDiscoveryTimeoutError{path: path, elapsed: elapsed, attempts: attempts}
}

func IsDeviceDiscoveryTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *deviceDiscoveryTimeoutError
	return errors.As(err, &errPtr)
}

// DeviceDiscoveryTimeoutDetails returns the diagnostics carried by a discovery timeout anywhere in the chain.
func DeviceDiscoveryTimeoutDetails(err error) (path string, elapsed time.Duration, attempts int, ok bool) {
	var errPtr *deviceDiscoveryTimeoutError
	if !errors.As(err, &errPtr) {
		return "", 0, 0, false
	}
	return errPtr.path, errPtr.elapsed, errPtr.attempts, true
}

// ///////////////////////////////////////////////////////////////////////////
// arrayCommandFailedError
// ///////////////////////////////////////////////////////////////////////////

type arrayCommandFailedError struct {
	command string
	code    int
	output  string
}

func (e *arrayCommandFailedError) Error() string {
	return fmt.Sprintf("array command %q failed with code %d: %s", e.command, e.code, e.output)
}

func (e *arrayCommandFailedError) Code() int { return e.code }

func (e *arrayCommandFailedError) Output() string { return e.output }

func ArrayCommandFailedError(command string, code int, output string) error {
	return &arrayCommandFailedError{command: command, code: code, output: output}
}

func IsArrayCommandFailedError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *arrayCommandFailedError
	return errors.As(err, &errPtr)
}

// ArrayCommandFailedDetails returns the result code and raw output of a failed array command.
func ArrayCommandFailedDetails(err error) (code int, output string, ok bool) {
	var errPtr *arrayCommandFailedError
	if !errors.As(err, &errPtr) {
		return 0, "", false
	}
	return errPtr.code, errPtr.output, true
}
