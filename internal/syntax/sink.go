package syntax

import (
	"log/slog"
	"sync"
)

// Sink receives diagnostics from the lexer and the parser.
// Implementations must not block.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(d Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

// Discard is a Sink that drops every diagnostic.
var Discard Sink = SinkFunc(func(Diagnostic) {})

// ChannelSink is a bounded, ordered diagnostic channel. Reports made
// while the buffer is full or after Close are dropped and counted.
type ChannelSink struct {
	mu      sync.Mutex
	ch      chan Diagnostic
	closed  bool
	dropped int
}

// NewChannelSink returns a sink buffering up to size diagnostics.
func NewChannelSink(size int) *ChannelSink {
	if size < 1 {
		size = 1
	}
	return &ChannelSink{ch: make(chan Diagnostic, size)}
}

// C returns the receive side of the sink.
func (s *ChannelSink) C() <-chan Diagnostic {
	return s.ch
}

func (s *ChannelSink) Report(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		s.dropped++
		return
	}
	select {
	case s.ch <- d:
	default:
		s.dropped++
	}
}

// Close closes the channel. It is safe to call more than once.
func (s *ChannelSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// Dropped returns the number of diagnostics that could not be delivered.
func (s *ChannelSink) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// ----------------------------------------------------------------------------
// Options

type options struct {
	source string
	sink   Sink
	logger *slog.Logger
}

// Option configures a Lexer or a Parser.
type Option func(*options)

// WithSource sets the source label used in positions.
func WithSource(label string) Option {
	return func(o *options) { o.source = label }
}

// WithSink routes diagnostics to s.
func WithSink(s Sink) Option {
	return func(o *options) { o.sink = s }
}

// WithLogger enables debug tracing through l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{source: DefaultSource}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sink == nil {
		o.sink = Discard
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
