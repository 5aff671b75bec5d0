package stream

import (
	"log"

	"github.com/tutils/mrgrand/counter"
)

// ServerOptions is server options
type ServerOptions struct {
	addr     string
	counter  counter.Counter
	errorLog *log.Logger
	maxCount int
}

// ServerOption is option setter for server
type ServerOption func(*ServerOptions)

// default server options
var (
	DefaultListenAddress = "ws://0.0.0.0:8080/stream"
	DefaultMaxCount      = 1000000
)

func newServerOptions(opts ...ServerOption) *ServerOptions {
	opt := &ServerOptions{}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}
	if opt.maxCount <= 0 {
		opt.maxCount = DefaultMaxCount
	}

	return opt
}

// WithListenAddress sets server listen address opt, e.g. ws://0.0.0.0:8080/stream
func WithListenAddress(addr string) ServerOption {
	return func(opts *ServerOptions) {
		opts.addr = addr
	}
}

// WithCounter sets a counter incremented by the number of values sent
func WithCounter(c counter.Counter) ServerOption {
	return func(opts *ServerOptions) {
		opts.counter = c
	}
}

// WithErrorLogger sets the logger for per-connection errors
func WithErrorLogger(l *log.Logger) ServerOption {
	return func(opts *ServerOptions) {
		opts.errorLog = l
	}
}

// WithMaxCount caps the number of values a single request may ask for
func WithMaxCount(n int) ServerOption {
	return func(opts *ServerOptions) {
		opts.maxCount = n
	}
}
