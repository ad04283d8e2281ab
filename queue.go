package eventqueue

import (
	"errors"
	"fmt"

	"github.com/joeycumines/logiface"
)

// Queue watches a set of descriptors for read readiness, using the native
// notification facility of the host platform (epoll or kqueue).
//
// A Queue owns every descriptor registered with it: [Queue.Remove] and
// [Queue.Close] close them. Callers must not close a descriptor while it is
// registered.
//
// NOT THREAD SAFE: there is no internal locking, and calls must be serialized
// by the caller.
type Queue struct {
	poller   poller
	closeFD  func(fd int) error
	logger   *logiface.Logger[logiface.Event]
	registry map[int]*Event
	batch    []Event
	closed   bool
}

// New opens a new native notification context, and returns a Queue that
// owns it. The error wraps [ErrContextCreationFailed] if the context could not
// be allocated, which callers should generally treat as fatal.
func New(opts ...Option) (*Queue, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	p, err := openPoller(cfg.batchSize)
	if err != nil {
		cfg.logger.Err().
			Err(err).
			Log("failed to create notification context")
		return nil, fmt.Errorf("%w: %w", ErrContextCreationFailed, err)
	}

	return newQueue(p, cfg), nil
}

// MustNew is like New, but panics on error.
func MustNew(opts ...Option) *Queue {
	q, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return q
}

func newQueue(p poller, cfg *queueOptions) *Queue {
	return &Queue{
		poller:   p,
		closeFD:  closeFD,
		logger:   cfg.logger,
		registry: make(map[int]*Event),
		batch:    make([]Event, cfg.batchSize),
	}
}

// Add registers fd for read readiness notification.
//
// Returns an error wrapping [ErrAlreadyRegistered] if fd is already
// registered, or [ErrRegistrationFailed] if the native facility rejected it.
// The registry is unchanged on error.
func (q *Queue) Add(fd int) error {
	if q.closed {
		return ErrClosed
	}
	if _, ok := q.registry[fd]; ok {
		return fmt.Errorf("%w: fd %d", ErrAlreadyRegistered, fd)
	}

	if err := q.poller.attach(fd); err != nil {
		q.logger.Debug().
			Int("fd", fd).
			Err(err).
			Log("fd registration rejected")
		return fmt.Errorf("%w: fd %d: %w", ErrRegistrationFailed, fd, err)
	}

	ev := NewEvent(fd)
	q.registry[fd] = &ev

	q.logger.Debug().
		Int("fd", fd).
		Int("registered", len(q.registry)).
		Log("fd registered")

	return nil
}

// AddAll calls Add for each fd, in order, stopping at the first error.
//
// This is NOT atomic: descriptors registered prior to a failure remain
// registered.
func (q *Queue) AddAll(fds ...int) error {
	for _, fd := range fds {
		if err := q.Add(fd); err != nil {
			return err
		}
	}
	return nil
}

// Remove unregisters fd, and closes it. The descriptor must not be used by
// the caller afterward.
//
// Returns an error wrapping [ErrNotRegistered] if fd is not registered, in
// which case nothing is closed. An error wrapping [ErrCloseFailed] indicates
// closing fd failed. The registry entry is dropped in that case too, since
// the descriptor is unusable either way, and retrying Remove will return
// [ErrNotRegistered].
func (q *Queue) Remove(fd int) error {
	if q.closed {
		return ErrClosed
	}
	if _, ok := q.registry[fd]; !ok {
		return fmt.Errorf("%w: fd %d", ErrNotRegistered, fd)
	}
	return q.release(fd)
}

// RemoveAll calls Remove for each fd, in order, stopping at the first error.
//
// Like AddAll, this is NOT atomic.
func (q *Queue) RemoveAll(fds ...int) error {
	for _, fd := range fds {
		if err := q.Remove(fd); err != nil {
			return err
		}
	}
	return nil
}

// release drops the registry entry for fd, then detaches and closes it.
// The entry is always dropped, and fd is always closed, regardless of errors.
func (q *Queue) release(fd int) error {
	delete(q.registry, fd)

	if err := q.poller.detach(fd); err != nil {
		q.logger.Warning().
			Int("fd", fd).
			Err(err).
			Log("failed to detach fd, closing anyway")
	}

	if err := q.closeFD(fd); err != nil {
		return fmt.Errorf("%w: fd %d: %w", ErrCloseFailed, fd, err)
	}

	q.logger.Debug().
		Int("fd", fd).
		Int("registered", len(q.registry)).
		Log("fd removed")

	return nil
}

// Listen blocks until at least one registered descriptor is ready for
// reading, then returns the ready descriptors, with the flags reported by the
// native facility. The flags of the corresponding registry entries (see
// [Queue.Events]) are updated in place.
//
// There is no timeout. At most the configured batch size (see
// [WithBatchSize]) are returned per call, any others are left for subsequent
// calls. No ordering is guaranteed.
//
// Returns an error wrapping [ErrWaitFailed] if the native wait failed,
// including if it was interrupted by a signal. It is not retried.
func (q *Queue) Listen() ([]Event, error) {
	if q.closed {
		return nil, ErrClosed
	}

	for {
		n, err := q.poller.wait(q.batch)
		if err != nil {
			q.logger.Err().
				Int("registered", len(q.registry)).
				Err(err).
				Log("wait failed")
			return nil, fmt.Errorf("%w: %w", ErrWaitFailed, err)
		}

		ready := make([]Event, 0, n)
		for i := range q.batch[:n] {
			record := &q.batch[i]
			ev, ok := q.registry[record.fd]
			if !ok {
				q.logger.Debug().
					Int("fd", record.fd).
					Log("dropped readiness record for unregistered fd")
				continue
			}
			ev.SetFlags(record.flags)
			ready = append(ready, *ev)
			q.logger.Trace().
				Int("fd", ev.fd).
				Uint64("flags", uint64(ev.flags)).
				Log("fd ready")
		}

		if len(ready) != 0 {
			q.logger.Debug().
				Int("ready", len(ready)).
				Int("registered", len(q.registry)).
				Log("listen cycle")
			return ready, nil
		}
	}
}

// Events returns a copy of every registered Event, in no particular order.
func (q *Queue) Events() []Event {
	events := make([]Event, 0, len(q.registry))
	for _, ev := range q.registry {
		events = append(events, *ev)
	}
	return events
}

// Len returns the number of registered descriptors.
func (q *Queue) Len() int {
	return len(q.registry)
}

// Close closes every registered descriptor, then releases the native
// notification context. Subsequent calls to Close are no-ops, and all other
// methods that may fail will return [ErrClosed].
func (q *Queue) Close() error {
	if q.closed {
		return nil
	}
	q.closed = true

	var errs []error
	for fd := range q.registry {
		if err := q.release(fd); err != nil {
			errs = append(errs, err)
		}
	}

	if err := q.poller.close(); err != nil {
		errs = append(errs, fmt.Errorf("eventqueue: close notification context: %w", err))
	}

	return errors.Join(errs...)
}
