//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package eventqueue

// openPoller fails, there is no epoll or kqueue on this platform.
func openPoller(int) (poller, error) {
	return nil, ErrUnsupportedPlatform
}

func closeFD(int) error {
	return ErrUnsupportedPlatform
}
