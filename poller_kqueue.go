//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package eventqueue

import (
	"golang.org/x/sys/unix"
)

// kqueuePoller implements poller using kqueue (Darwin/BSD).
//
// Each descriptor is attached with a single EVFILT_READ filter, so every
// record returned by kevent is a read readiness record, and the reported
// flags are those of the record, e.g. EV_EOF once the peer has hung up.
type kqueuePoller struct {
	eventBuf []unix.Kevent_t // owned, sized to the batch bound
	kq       int
}

func openPoller(batchSize int) (poller, error) {
	kq, err := unix.Kqueue()
	if err != nil {
		return nil, err
	}
	unix.CloseOnExec(kq)
	return &kqueuePoller{
		eventBuf: make([]unix.Kevent_t, batchSize),
		kq:       kq,
	}, nil
}

func (p *kqueuePoller) attach(fd int) error {
	return p.change(fd, unix.EV_ADD|unix.EV_ENABLE)
}

func (p *kqueuePoller) detach(fd int) error {
	return p.change(fd, unix.EV_DELETE)
}

// change applies a single EVFILT_READ change. With no event list, kevent
// reports a failed change as the call's error.
func (p *kqueuePoller) change(fd int, flags int) error {
	var changes [1]unix.Kevent_t
	unix.SetKevent(&changes[0], fd, unix.EVFILT_READ, flags)
	_, err := unix.Kevent(p.kq, changes[:], nil, nil)
	return err
}

func (p *kqueuePoller) wait(buf []Event) (int, error) {
	events := p.eventBuf
	if len(buf) < len(events) {
		events = events[:len(buf)]
	}

	// nil timeout blocks indefinitely
	n, err := unix.Kevent(p.kq, nil, events, nil)
	if err != nil {
		return 0, err
	}

	var count int
	for i := 0; i < n; i++ {
		if events[i].Filter != unix.EVFILT_READ {
			continue
		}
		buf[count] = Event{
			fd:    int(events[i].Ident),
			flags: Flags(events[i].Flags),
		}
		count++
	}
	return count, nil
}

func (p *kqueuePoller) close() error {
	return unix.Close(p.kq)
}
