package audio

import (
	"fmt"
	"log"
	"time"
)

type Cue string

const (
	CueClick   Cue = "click"
	CueSubmit  Cue = "submit"
	CueSuccess Cue = "success"
	CueNeutral Cue = "neutral"
)

// Cues lists every cue in a stable order.
var Cues = []Cue{CueClick, CueSubmit, CueSuccess, CueNeutral}

func ParseCue(s string) (Cue, error) {
	for _, c := range Cues {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown cue %q", s)
}

var cueTones = map[Cue][]Tone{
	CueClick: {
		{Freq: 800, Wave: Sine, Duration: 100 * time.Millisecond, Peak: 0.3},
	},
	// C major triad, each note 50ms after the previous
	CueSubmit: arpeggio(Sine, 50*time.Millisecond, 300*time.Millisecond, 0.2,
		523.25, 659.25, 783.99),
	// triad plus the octave
	CueSuccess: arpeggio(Triangle, 100*time.Millisecond, 400*time.Millisecond, 0.25,
		523.25, 659.25, 783.99, 1046.50),
	CueNeutral: arpeggio(Sine, 100*time.Millisecond, 300*time.Millisecond, 0.2,
		440, 523.25),
}

func arpeggio(w Waveform, step, dur time.Duration, peak float64, freqs ...float64) []Tone {
	out := make([]Tone, len(freqs))
	for i, f := range freqs {
		out[i] = Tone{Freq: f, Wave: w, Offset: time.Duration(i) * step, Duration: dur, Peak: peak}
	}
	return out
}

// Tones returns a copy of the tone list behind a cue.
func (c Cue) Tones() []Tone {
	return append([]Tone(nil), cueTones[c]...)
}

// SoundBank plays cues on a shared graph. A bank without a graph is silent.
type SoundBank struct {
	g Graph
}

func NewSoundBank(g Graph) *SoundBank { return &SoundBank{g: g} }

// Play is fire-and-forget. Scheduling faults are logged and swallowed so a
// broken device never interrupts the caller.
func (b *SoundBank) Play(c Cue) {
	if b == nil || b.g == nil {
		return
	}
	tones, ok := cueTones[c]
	if !ok {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("audio: cue %s: %v", c, r)
		}
	}()
	ScheduleTones(b.g, tones)
}
