//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package eventqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_unsupportedPlatform(t *testing.T) {
	q, err := New()
	assert.Nil(t, q)
	assert.ErrorIs(t, err, ErrContextCreationFailed)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.Panics(t, func() { MustNew() })
}
