package shell

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/you-not-fish/blaze/internal/syntax"
)

// Console prints diagnostics on a background goroutine. Producers report
// to Sink without blocking; Close flushes everything still buffered.
type Console struct {
	out    io.Writer
	styles Styles
	sink   *syntax.ChannelSink

	mu      sync.Mutex // serializes writes to out
	started atomic.Bool
	once    sync.Once
	done    chan struct{}
}

// NewConsole creates a Console writing to w with a diagnostic buffer of
// the given size.
func NewConsole(w io.Writer, buffer int, styles Styles) *Console {
	return &Console{
		out:    w,
		styles: styles,
		sink:   syntax.NewChannelSink(buffer),
		done:   make(chan struct{}),
	}
}

// Sink returns the sink feeding the console.
func (c *Console) Sink() syntax.Sink {
	return c.sink
}

// Start launches the printer goroutine. Later calls do nothing.
func (c *Console) Start() {
	if c.started.Swap(true) {
		return
	}
	go func() {
		defer close(c.done)
		for d := range c.sink.C() {
			c.Println(c.styles.Diagnostic(d))
		}
	}()
}

// Println writes one line under the console's lock.
func (c *Console) Println(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, line)
}

// Close stops accepting diagnostics and waits until the printer has
// drained the buffer. It returns the number of dropped diagnostics.
func (c *Console) Close() int {
	c.once.Do(func() {
		c.sink.Close()
		if c.started.Load() {
			<-c.done
		}
	})
	return c.sink.Dropped()
}
