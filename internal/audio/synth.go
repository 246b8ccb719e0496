package audio

import "time"

// Tone fully describes one burst: where it starts relative to the call,
// how long it lasts, and how loud it peaks.
type Tone struct {
	Freq     float64
	Wave     Waveform
	Offset   time.Duration
	Duration time.Duration
	Peak     float64
}

// decayFloor is where the exponential decay lands at the end of a tone.
const decayFloor = 0.01

// ScheduleTones starts one voice per tone at now+Offset. Each voice attacks
// straight to Peak, decays exponentially towards decayFloor and stops
// exactly at Offset+Duration. Every call allocates its own voices, so
// overlapping calls do not interfere.
func ScheduleTones(g Graph, tones []Tone) []*Voice {
	now := g.Now()
	voices := make([]*Voice, 0, len(tones))
	for _, t := range tones {
		start := now + t.Offset.Seconds()
		end := start + t.Duration.Seconds()
		gain := NewParam(0)
		gain.SetValueAt(t.Peak, start)
		gain.ExponentialRampTo(decayFloor, end)
		voices = append(voices, g.Schedule(nil, t.Freq, t.Wave, gain, start, end))
	}
	return voices
}

// Span is the time from the first tone start to the last tone end.
func Span(tones []Tone) time.Duration {
	var end time.Duration
	for _, t := range tones {
		end = max(end, t.Offset+t.Duration)
	}
	return end
}
