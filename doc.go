// Package eventqueue provides a minimal, cross-platform event queue, for
// read readiness notification of file descriptors.
//
// # Platform Support
//
// The native facility is selected at build time:
//   - Linux: epoll
//   - Darwin/BSD: kqueue
//
// Other platforms compile, but [New] always fails with
// [ErrUnsupportedPlatform].
//
// # Usage
//
//	q, err := eventqueue.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer q.Close()
//
//	if err := q.Add(fd); err != nil {
//	    // handle
//	}
//
//	for {
//	    ready, err := q.Listen()
//	    if err != nil {
//	        // e.g. interrupted by a signal, may be retried by the caller
//	    }
//	    for _, ev := range ready {
//	        // read from ev.FD()
//	    }
//	}
//
// # Ownership
//
// Descriptors passed to [Queue.Add] belong to the queue until they are closed
// by [Queue.Remove] or [Queue.Close]. The flags reported by [Queue.Listen] are
// passed through from the platform, and are not interpreted.
package eventqueue
