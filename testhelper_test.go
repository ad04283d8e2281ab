package eventqueue

import (
	"bytes"
	"errors"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// fakePoller is a scripted poller, for exercising Queue without the kernel.
type fakePoller struct {
	attachErr map[int]error
	detachErr error
	closeErr  error
	attached  map[int]bool
	waits     []fakeWait
	detached  []int
	closed    int
}

type fakeWait struct {
	err     error
	records []Event
}

var errFakeWaitsExhausted = errors.New("fake poller: no more scripted waits")

func newFakePoller() *fakePoller {
	return &fakePoller{
		attachErr: make(map[int]error),
		attached:  make(map[int]bool),
	}
}

func (p *fakePoller) attach(fd int) error {
	if err := p.attachErr[fd]; err != nil {
		return err
	}
	p.attached[fd] = true
	return nil
}

func (p *fakePoller) detach(fd int) error {
	p.detached = append(p.detached, fd)
	delete(p.attached, fd)
	return p.detachErr
}

func (p *fakePoller) wait(buf []Event) (int, error) {
	if len(p.waits) == 0 {
		return 0, errFakeWaitsExhausted
	}
	w := p.waits[0]
	p.waits = p.waits[1:]
	if w.err != nil {
		return 0, w.err
	}
	return copy(buf, w.records), nil
}

func (p *fakePoller) close() error {
	p.closed++
	return p.closeErr
}

// fakeCloser records closed descriptors, in place of closeFD.
type fakeCloser struct {
	err    map[int]error
	closed []int
}

func (c *fakeCloser) closeFD(fd int) error {
	c.closed = append(c.closed, fd)
	return c.err[fd]
}

// newFakeQueue returns a Queue backed by a fakePoller, which never touches
// real descriptors.
func newFakeQueue(t *testing.T, opts ...Option) (*Queue, *fakePoller, *fakeCloser) {
	t.Helper()
	cfg, err := resolveOptions(opts)
	if err != nil {
		t.Fatal("resolveOptions failed:", err)
	}
	p := newFakePoller()
	c := &fakeCloser{err: make(map[int]error)}
	q := newQueue(p, cfg)
	q.closeFD = c.closeFD
	return q, p, c
}

// newBufferLogger returns a debug level JSON logger writing to the returned
// buffer.
func newBufferLogger() (*logiface.Logger[logiface.Event], *bytes.Buffer) {
	var buf bytes.Buffer
	logger := stumpy.L.New(
		stumpy.L.WithStumpy(
			stumpy.WithWriter(&buf),
			stumpy.WithTimeField(``),
		),
		stumpy.L.WithLevel(logiface.LevelTrace),
	)
	return logger.Logger(), &buf
}

func eventFDs(events []Event) []int {
	fds := make([]int, len(events))
	for i, ev := range events {
		fds[i] = ev.FD()
	}
	return fds
}
