// Copyright 2025 NetApp, Inc. All Rights Reserved.

// Package limiter bounds how many callers may use a shared resource at once.
package limiter

import (
	"context"

	. "github.com/netapp/vnx-blockdevice/logging"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

const defaultBufferSize = 10

type SemaphoreN struct {
	id     string
	tokens chan struct{}
}

type Option func(*SemaphoreN)

// NewSemaphoreN creates a counting semaphore; use options to customize it.
func NewSemaphoreN(id string, options ...Option) *SemaphoreN {
	s := &SemaphoreN{
		id:     id,
		tokens: make(chan struct{}, defaultBufferSize),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// WithSize sets the number of holders allowed at once. Values below one are ignored.
func WithSize(size int) Option {
	return func(s *SemaphoreN) {
		if size > 0 {
			s.tokens = make(chan struct{}, size)
		}
	}
}

// Wait blocks until a token is free or the context ends.
func (s *SemaphoreN) Wait(ctx context.Context) error {
	select {
	case s.tokens <- struct{}{}:
		Logc(ctx).WithField("ID", s.id).Trace("SemaphoreN acquired.")
		return nil
	case <-ctx.Done():
		return errors.TimeoutError("gave up waiting for %s; %v", s.id, ctx.Err())
	}
}

// Release should always be called after Wait, otherwise it may lead to deadlock.
func (s *SemaphoreN) Release(ctx context.Context) {
	select {
	case <-s.tokens:
		Logc(ctx).WithField("ID", s.id).Trace("SemaphoreN released.")
	default:
		Logc(ctx).WithField("ID", s.id).Warn("Release() was called before Wait().")
	}
}

// Capacity returns the number of holders allowed at once.
func (s *SemaphoreN) Capacity() int {
	return cap(s.tokens)
}

// InUse returns the number of tokens currently held.
func (s *SemaphoreN) InUse() int {
	return len(s.tokens)
}
