package audio

import (
	"errors"
	"io"
	"sync"
)

var ErrNoDevice = errors.New("audio: no output device")

// Output pulls samples from the engine into a sound device.
type Output interface {
	Play(r io.Reader) error
	Close() error
}

// Context is the process-wide audio device: one engine feeding one output.
// It is created once and closed once; a nil *Context is valid and silent.
type Context struct {
	engine *Engine
	out    Output

	once sync.Once
	err  error
}

// Open starts the platform output at sampleRate. On machines without a
// sound device (or in headless builds) it returns ErrNoDevice.
func Open(sampleRate int) (*Context, error) {
	out, err := newDeviceOutput(sampleRate)
	if err != nil {
		return nil, err
	}
	return NewContext(NewEngine(sampleRate), out)
}

// NewContext wires an engine to an arbitrary output and starts it.
func NewContext(e *Engine, out Output) (*Context, error) {
	if err := out.Play(e); err != nil {
		_ = out.Close()
		return nil, err
	}
	return &Context{engine: e, out: out}, nil
}

// Graph is nil for a nil context, which turns every cue into a no-op.
func (c *Context) Graph() Graph {
	if c == nil {
		return nil
	}
	return c.engine
}

func (c *Context) Close() error {
	if c == nil {
		return nil
	}
	c.once.Do(func() { c.err = c.out.Close() })
	return c.err
}
