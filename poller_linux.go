//go:build linux

package eventqueue

import (
	"golang.org/x/sys/unix"
)

// epollReadEvents are the epoll conditions reported as read readiness.
// A hung up or errored descriptor is readable, in that a read will return
// EOF or the pending error, without blocking.
const epollReadEvents = unix.EPOLLIN | unix.EPOLLRDHUP | unix.EPOLLHUP | unix.EPOLLERR

// epollPoller implements poller using epoll (Linux).
type epollPoller struct {
	eventBuf []unix.EpollEvent // owned, sized to the batch bound
	epfd     int
}

func openPoller(batchSize int) (poller, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, err
	}
	return &epollPoller{
		eventBuf: make([]unix.EpollEvent, batchSize),
		epfd:     epfd,
	}, nil
}

func (p *epollPoller) attach(fd int) error {
	ev := unix.EpollEvent{
		Events: unix.EPOLLIN | unix.EPOLLRDHUP,
		Fd:     int32(fd),
	}
	return unix.EpollCtl(p.epfd, unix.EPOLL_CTL_ADD, fd, &ev)
}

func (p *epollPoller) detach(fd int) error {
	return unix.EpollCtl(p.epfd, unix.EPOLL_CTL_DEL, fd, nil)
}

func (p *epollPoller) wait(buf []Event) (int, error) {
	events := p.eventBuf
	if len(buf) < len(events) {
		events = events[:len(buf)]
	}

	n, err := unix.EpollWait(p.epfd, events, -1)
	if err != nil {
		return 0, err
	}

	var count int
	for i := 0; i < n; i++ {
		if events[i].Events&epollReadEvents == 0 {
			continue
		}
		buf[count] = Event{
			fd:    int(events[i].Fd),
			flags: Flags(events[i].Events),
		}
		count++
	}
	return count, nil
}

func (p *epollPoller) close() error {
	return unix.Close(p.epfd)
}
