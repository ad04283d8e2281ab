//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package eventqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// kqueue has no dedicated "readable" flag, the EVFILT_READ filter is the
// condition, so only the absence of EV_ERROR is checked.
func assertReadable(t *testing.T, ev Event) {
	t.Helper()
	assert.Zero(t, ev.Flags()&unix.EV_ERROR, "%v", ev)
}

func assertHangup(t *testing.T, ev Event) {
	t.Helper()
	assert.NotZero(t, ev.Flags()&unix.EV_EOF, "%v", ev)
}

// sabotagePoller closes the kqueue fd out from under the queue, so the next
// wait fails with EBADF.
func sabotagePoller(t *testing.T, q *Queue) {
	t.Helper()
	p := q.poller.(*kqueuePoller)
	require.NoError(t, unix.Close(p.kq))
	p.kq = -1
}

func TestKqueuePoller_waitTruncatesToBuffer(t *testing.T) {
	p, err := openPoller(4)
	require.NoError(t, err)
	defer p.close()

	var fds []int
	for i := 0; i < 3; i++ {
		r, w := testPipe(t)
		defer unix.Close(r)
		writeByte(t, w)
		require.NoError(t, p.attach(r))
		fds = append(fds, r)
	}

	buf := make([]Event, 2)
	n, err := p.wait(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	for _, ev := range buf[:n] {
		assert.Contains(t, fds, ev.FD())
	}
}
