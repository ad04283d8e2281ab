package eventqueue

// poller is the native readiness notification facility backing a Queue.
//
// Implementations are platform-specific, and selected by build constraints:
//   - poller_linux.go (epoll)
//   - poller_kqueue.go (kqueue, Darwin and the BSDs)
//   - poller_other.go (unsupported, openPoller always fails)
//
// Each implementation provides openPoller(batchSize int) (poller, error),
// which allocates the native context, and an owned result buffer holding at
// most batchSize records.
//
// NOT THREAD SAFE, same as Queue.
type poller interface {
	// attach registers fd for read readiness notification.
	attach(fd int) error

	// detach removes fd from the native context. It may fail if fd was
	// already closed, which is harmless, as closing a descriptor also
	// removes it.
	detach(fd int) error

	// wait blocks without timeout, until at least one attached fd is ready,
	// then writes up to len(buf) (fd, flags) records into buf, returning the
	// number written. Interruption (EINTR) is returned as an error.
	wait(buf []Event) (int, error)

	// close releases the native context.
	close() error
}
