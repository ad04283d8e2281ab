package eventqueue

import (
	"fmt"
)

// Flags is the platform-reported condition bitfield attached to an [Event]
// by [Queue.Listen].
//
// The bits are passed through verbatim from the native facility, and are not
// interpreted by this package:
//   - Linux (epoll): the epoll_event.events mask, e.g. EPOLLIN | EPOLLHUP
//   - Darwin/BSD (kqueue): the kevent flags field, e.g. EV_EOF
type Flags uint32

// Event is a single watched descriptor, and the flags reported for it by the
// most recent listen cycle.
//
// The zero value refers to descriptor 0 (stdin), use [NewEvent].
type Event struct {
	fd    int
	flags Flags
}

// NewEvent returns an Event for fd, with no flags set.
func NewEvent(fd int) Event {
	return Event{fd: fd}
}

// FD returns the descriptor, which never changes after construction.
func (e Event) FD() int {
	return e.fd
}

// Flags returns the flags from the last listen cycle that reported this
// descriptor, or zero if it has not been reported since it was registered.
func (e Event) Flags() Flags {
	return e.flags
}

// SetFlags overwrites the flags. No validation is performed.
func (e *Event) SetFlags(flags Flags) {
	e.flags = flags
}

func (e Event) String() string {
	return fmt.Sprintf("fd=%d flags=%#x", e.fd, uint32(e.flags))
}
