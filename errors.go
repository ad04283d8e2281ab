package eventqueue

import (
	"errors"
)

// Standard errors.
//
// Errors originating from a failed system call wrap both the relevant
// sentinel and the underlying [golang.org/x/sys/unix.Errno], so either may be
// matched using [errors.Is].
var (
	// ErrContextCreationFailed indicates the native notification context
	// (epoll or kqueue instance) could not be allocated.
	ErrContextCreationFailed = errors.New("eventqueue: failed to create notification context")

	// ErrAlreadyRegistered indicates Add was called for a descriptor that is
	// already in the registry.
	ErrAlreadyRegistered = errors.New("eventqueue: fd already registered")

	// ErrNotRegistered indicates Remove was called for a descriptor that is
	// not in the registry.
	ErrNotRegistered = errors.New("eventqueue: fd not registered")

	// ErrRegistrationFailed indicates the native facility rejected the
	// descriptor, e.g. because it is invalid, or of an unsupported type.
	ErrRegistrationFailed = errors.New("eventqueue: fd registration failed")

	// ErrWaitFailed indicates the blocking wait itself failed. This includes
	// interruption by a signal (EINTR), which is not retried.
	ErrWaitFailed = errors.New("eventqueue: wait failed")

	// ErrCloseFailed indicates a removed descriptor could not be closed. The
	// descriptor is no longer registered when this is returned.
	ErrCloseFailed = errors.New("eventqueue: fd close failed")

	// ErrClosed is returned by methods called after Queue.Close.
	ErrClosed = errors.New("eventqueue: queue closed")

	// ErrUnsupportedPlatform indicates the host has neither epoll nor kqueue.
	ErrUnsupportedPlatform = errors.New("eventqueue: platform not supported")

	// ErrInvalidOption indicates an Option was given an invalid value.
	ErrInvalidOption = errors.New("eventqueue: invalid option")
)
