package audio

import (
	"errors"
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// renderTail keeps a little silence after the last voice so players do not
// clip the decay.
const renderTail = 50 * time.Millisecond

// RenderCue renders a cue offline, from its first tone to its last.
func RenderCue(c Cue, sampleRate int) []float32 {
	tones := c.Tones()
	e := NewEngine(sampleRate)
	ScheduleTones(e, tones)
	return render(e, Span(tones)+renderTail)
}

// RenderAmbientLoop renders one pass of the background progression through
// the ambient master level.
func RenderAmbientLoop(sampleRate int) []float32 {
	e := NewEngine(sampleRate)
	scheduleProgression(e, e.NewBus(AmbientLevel), 0)
	return render(e, LoopLength)
}

func render(e *Engine, d time.Duration) []float32 {
	out := make([]float32, int(d.Seconds()*float64(e.SampleRate())))
	e.Mix(out)
	return out
}

// EncodeWAV writes 16-bit mono PCM.
func EncodeWAV(w io.WriteSeeker, samples []float32, sampleRate int) error {
	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 1,
		Precision:   2,
	}
	pos := 0
	s := beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copy2(buf, samples[pos:])
		pos += n
		return n, true
	})
	return wav.Encode(w, s, format)
}

func copy2(dst [][2]float64, src []float32) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		v := float64(src[i])
		dst[i] = [2]float64{v, v}
	}
	return n
}

// WAV encodes samples into an in-memory WAV file.
func WAV(samples []float32, sampleRate int) ([]byte, error) {
	var b seekBuffer
	if err := EncodeWAV(&b, samples, sampleRate); err != nil {
		return nil, err
	}
	return b.buf, nil
}

// seekBuffer is the io.WriteSeeker the WAV encoder needs to patch its header.
type seekBuffer struct {
	buf []byte
	pos int
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	end := b.pos + len(p)
	if end > len(b.buf) {
		b.buf = append(b.buf, make([]byte, end-len(b.buf))...)
	}
	copy(b.buf[b.pos:], p)
	b.pos = end
	return len(p), nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(b.pos) + offset
	case io.SeekEnd:
		abs = int64(len(b.buf)) + offset
	default:
		return 0, errors.New("seekBuffer: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("seekBuffer: negative position")
	}
	b.pos = int(abs)
	return abs, nil
}
