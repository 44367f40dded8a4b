// Copyright 2025 NetApp, Inc. All Rights Reserved.

package mock_exec

import "fmt"

// MockExitError stands in for *exec.ExitError so tests can drive specific naviseccli result codes.
type MockExitError struct {
	code    int
	Message string
}

func NewMockExitError(code int, message string) *MockExitError {
	return &MockExitError{
		code:    code,
		Message: message,
	}
}

func (e *MockExitError) Error() string {
	return fmt.Sprintf("exit status %v", e.code)
}

// ExitCode satisfies the interface exec.ExitCode looks for.
func (e *MockExitError) ExitCode() int {
	return e.code
}
