package audio

import (
	"encoding/binary"
	"math"
	"sync"
	"time"
)

const DefaultSampleRate = 44100

type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
	Triangle
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	}
	return "unknown"
}

// at returns the oscillator value for a phase in [0,1).
func (w Waveform) at(phase float64) float64 {
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*phase - 1
	case Triangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Graph is the scheduling surface shared by cues and the ambient loop.
// Times are seconds on the graph clock.
type Graph interface {
	Now() float64
	NewBus(gain float64) *Bus
	Schedule(bus *Bus, freq float64, wave Waveform, gain *Param, start, stop float64) *Voice
}

// Bus is a gain stage between voices and the output.
type Bus struct {
	Gain *Param
}

// Voice is one scheduled oscillator with its own gain envelope.
type Voice struct {
	Freq  float64
	Wave  Waveform
	Gain  *Param
	bus   *Bus
	start float64

	mu   sync.Mutex
	stop float64
}

func (v *Voice) Start() float64 { return v.start }

func (v *Voice) StopTime() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stop
}

// StopAt moves the stop time earlier. Stopping a voice that already ended,
// or asking for a later stop, changes nothing.
func (v *Voice) StopAt(t float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if t < v.stop {
		v.stop = t
	}
}

func (v *Voice) sample(t float64) float64 {
	_, phase := math.Modf(v.Freq * (t - v.start))
	g := v.Gain.ValueAt(t)
	if v.bus != nil {
		g *= v.bus.Gain.ValueAt(t)
	}
	return v.Wave.at(phase) * g
}

// Engine mixes scheduled voices into mono float32 samples. The clock only
// moves when samples are pulled, either by a device player or by Advance.
type Engine struct {
	rate int

	mu     sync.Mutex
	frame  int64
	voices []*Voice
	buf    []float32
}

func NewEngine(sampleRate int) *Engine {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Engine{rate: sampleRate}
}

func (e *Engine) SampleRate() int { return e.rate }

func (e *Engine) Now() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return float64(e.frame) / float64(e.rate)
}

func (e *Engine) NewBus(gain float64) *Bus { return &Bus{Gain: NewParam(gain)} }

func (e *Engine) Schedule(bus *Bus, freq float64, wave Waveform, gain *Param, start, stop float64) *Voice {
	v := &Voice{Freq: freq, Wave: wave, Gain: gain, bus: bus, start: start, stop: stop}
	e.mu.Lock()
	e.voices = append(e.voices, v)
	e.mu.Unlock()
	return v
}

// Active counts voices that have not reached their stop time.
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := float64(e.frame) / float64(e.rate)
	n := 0
	for _, v := range e.voices {
		if v.StopTime() > now {
			n++
		}
	}
	return n
}

// Mix renders len(dst) samples and advances the clock by that many frames.
func (e *Engine) Mix(dst []float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range dst {
		dst[i] = 0
	}
	rate := float64(e.rate)
	for _, v := range e.voices {
		stop := v.StopTime()
		for i := range dst {
			t := float64(e.frame+int64(i)) / rate
			if t < v.start || t >= stop {
				continue
			}
			dst[i] += float32(v.sample(t))
		}
	}
	for i, s := range dst {
		dst[i] = float32(math.Max(-1, math.Min(1, float64(s))))
	}
	e.frame += int64(len(dst))

	now := float64(e.frame) / rate
	live := e.voices[:0]
	for _, v := range e.voices {
		if v.StopTime() > now {
			live = append(live, v)
		}
	}
	for i := len(live); i < len(e.voices); i++ {
		e.voices[i] = nil
	}
	e.voices = live
}

// Read implements io.Reader as float32 little-endian mono PCM, which is what
// the device player pulls. It never returns io.EOF: silence is a valid
// stream.
func (e *Engine) Read(p []byte) (int, error) {
	n := len(p) / 4
	if cap(e.buf) < n {
		e.buf = make([]float32, n)
	}
	samples := e.buf[:n]
	e.Mix(samples)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s))
	}
	return n * 4, nil
}

// Advance renders and discards d worth of samples.
func (e *Engine) Advance(d time.Duration) {
	frames := int(d.Seconds() * float64(e.rate))
	chunk := make([]float32, 1024)
	for frames > 0 {
		n := min(frames, len(chunk))
		e.Mix(chunk[:n])
		frames -= n
	}
}
