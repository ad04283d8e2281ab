// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package eventqueue

import (
	"fmt"

	"github.com/joeycumines/logiface"
)

// DefaultBatchSize is the maximum number of ready descriptors reported by a
// single [Queue.Listen] call, unless configured using [WithBatchSize].
const DefaultBatchSize = 64

// queueOptions holds configuration options for Queue creation.
type queueOptions struct {
	logger    *logiface.Logger[logiface.Event]
	batchSize int
}

// Option configures a Queue instance.
type Option interface {
	applyQueue(*queueOptions) error
}

// optionImpl implements Option.
type optionImpl struct {
	applyQueueFunc func(*queueOptions) error
}

func (o *optionImpl) applyQueue(opts *queueOptions) error {
	return o.applyQueueFunc(opts)
}

// WithBatchSize sets the maximum number of ready descriptors observed per
// [Queue.Listen] call. Descriptors that are ready in excess of this bound are
// left for subsequent calls. The size must be at least 1.
func WithBatchSize(size int) Option {
	return &optionImpl{func(opts *queueOptions) error {
		if size < 1 {
			return fmt.Errorf("%w: batch size must be at least 1, got %d", ErrInvalidOption, size)
		}
		opts.batchSize = size
		return nil
	}}
}

// WithLogger sets the structured logger used by the Queue.
// A nil logger (the default) disables logging.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *queueOptions) error {
		opts.logger = logger
		return nil
	}}
}

// resolveOptions applies Option instances to queueOptions.
func resolveOptions(opts []Option) (*queueOptions, error) {
	cfg := &queueOptions{
		batchSize: DefaultBatchSize,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyQueue(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
