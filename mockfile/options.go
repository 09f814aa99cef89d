package mockfile

import (
	"fmt"

	"github.com/michelangelo13/rethinkdb/internal/mem"
	"github.com/michelangelo13/rethinkdb/sched"
	"github.com/ncw/directio"
)

// DeviceBlockSize is the default alignment unit for offsets, lengths and
// buffer addresses.
const DeviceBlockSize = directio.BlockSize

type options struct {
	scheduler        sched.Scheduler
	logger           *Logger
	metrics          MetricsCollector
	blockSize        int
	semanticChecking bool
	memoryLimit      int64
}

// Option configures openers and standalone files.
type Option func(*options)

// WithScheduler sets the scheduler that receives completion callbacks.
// If nil is passed, a private sched.Loop is used.
func WithScheduler(s sched.Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithLogger configures structured logging.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithDeviceBlockSize overrides DeviceBlockSize for alignment verification.
// n must be a positive power of two.
func WithDeviceBlockSize(n int) Option {
	return func(o *options) {
		o.blockSize = n
	}
}

// WithSemanticChecking enables FileOpener.OpenSemanticCheckingFile.
func WithSemanticChecking() Option {
	return func(o *options) {
		o.semanticChecking = true
	}
}

// WithMemoryLimit caps the bytes a FileOpener's buffers may hold in total.
// Growing past the limit is a fatal violation. 0 means unlimited.
//
// Files built with NewMockFile or NewSemanticCheckingFile use the budget of
// the Buffer they are given and ignore this option.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// env is the resolved configuration shared by an opener and its handles.
type env struct {
	scheduler sched.Scheduler
	logger    *Logger
	metrics   MetricsCollector
	blockSize int
}

func buildOptions(opts []Option) options {
	o := options{
		blockSize: DeviceBlockSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scheduler == nil {
		o.scheduler = sched.NewLoop()
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}
	return o
}

func newEnv(o options) *env {
	e := &env{
		scheduler: o.scheduler,
		logger:    o.logger,
		metrics:   o.metrics,
		blockSize: o.blockSize,
	}
	if !mem.IsPowerOfTwo(e.blockSize) {
		e.violate("Configure", "device block size %d is not a positive power of two", e.blockSize)
	}
	return e
}

// violate logs and raises a fatal contract violation. It never returns.
func (e *env) violate(op, format string, args ...any) {
	err := &ViolationError{Op: op, Reason: fmt.Sprintf(format, args...)}
	e.logger.LogViolation(err)
	panic(err)
}
