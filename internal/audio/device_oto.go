//go:build !headless

package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

type otoOutput struct {
	ctx *oto.Context

	mu     sync.Mutex
	player *oto.Player
}

func newDeviceOutput(sampleRate int) (Output, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   40 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	<-ready
	return &otoOutput{ctx: ctx}, nil
}

func (o *otoOutput) Play(r io.Reader) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.player != nil {
		return nil
	}
	o.player = o.ctx.NewPlayer(r)
	o.player.Play()
	return nil
}

func (o *otoOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.player != nil {
		if err := o.player.Close(); err != nil {
			return err
		}
		o.player = nil
	}
	return o.ctx.Suspend()
}
