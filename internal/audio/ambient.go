package audio

import (
	"log"
	"sync"
	"time"

	"github.com/mind-engage/mindengage-media/internal/schedule"
)

// Chord progression for the background loop: C major, D minor, A minor over
// a B bass, back to C major.
var progression = [][]float64{
	{261.63, 329.63, 392.00},
	{293.66, 349.23, 440.00},
	{246.94, 329.63, 392.00},
	{261.63, 329.63, 392.00},
}

const (
	AmbientLevel = 0.08

	chordLength = 4.0
	chordFadeIn = 0.5
	chordHold   = 3.0
	chordPeak   = 0.3
	chordTail   = 0.1

	stopFade = 0.5

	// LoopLength is four back-to-back chords.
	LoopLength   = 16 * time.Second
	releaseDelay = 600 * time.Millisecond
)

// scheduleProgression lays out one pass of the progression starting at at.
// Each chord fades in over 0.5s, holds until 3s and fades out to reach zero
// exactly on its 4s boundary.
func scheduleProgression(g Graph, bus *Bus, at float64) []*Voice {
	voices := make([]*Voice, 0, len(progression)*3)
	for i, chord := range progression {
		start := at + float64(i)*chordLength
		for _, f := range chord {
			gain := NewParam(0)
			gain.SetValueAt(0, start)
			gain.LinearRampTo(chordPeak, start+chordFadeIn)
			gain.SetValueAt(chordPeak, start+chordHold)
			gain.LinearRampTo(0, start+chordLength)
			voices = append(voices, g.Schedule(bus, f, Sine, gain, start, start+chordLength+chordTail))
		}
	}
	return voices
}

type ambientLoop struct {
	master *Bus
	voices []*Voice
}

func (l *ambientLoop) release(at float64) {
	for _, v := range l.voices {
		v.StopAt(at)
	}
}

// Ambient owns the background loop. While playing it re-arms itself at
// every loop boundary; each arming carries a generation number so a timer
// from a stopped loop can never restart it.
type Ambient struct {
	g     Graph
	sched schedule.Scheduler

	mu        sync.Mutex
	loop      *ambientLoop
	gen       int
	timer     schedule.Timer
	releasing map[*ambientLoop]schedule.Timer
}

func NewAmbient(g Graph, s schedule.Scheduler) *Ambient {
	if s == nil {
		s = schedule.Real{}
	}
	return &Ambient{g: g, sched: s, releasing: map[*ambientLoop]schedule.Timer{}}
}

func (a *Ambient) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loop != nil
}

// Start is a no-op when a loop is already live or there is no graph.
func (a *Ambient) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.g == nil || a.loop != nil {
		return
	}
	a.startLocked()
}

func (a *Ambient) startLocked() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("audio: ambient start: %v", r)
			a.loop = nil
		}
	}()
	master := a.g.NewBus(AmbientLevel)
	a.loop = &ambientLoop{master: master, voices: scheduleProgression(a.g, master, a.g.Now())}
	a.gen++
	gen := a.gen
	a.timer = a.sched.AfterFunc(LoopLength, func() { a.rearm(gen) })
}

func (a *Ambient) rearm(gen int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.loop == nil || a.gen != gen {
		return
	}
	a.loop = nil
	a.startLocked()
}

// Stop fades the master bus to silence over 0.5s and releases the voices
// once the fade is done. Safe at any point of the loop, including while a
// chord is still fading in; a no-op when nothing plays.
func (a *Ambient) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

func (a *Ambient) stopLocked() {
	if a.loop == nil {
		return
	}
	l := a.loop
	a.loop = nil
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	now := a.g.Now()
	l.master.Gain.HoldAt(now)
	l.master.Gain.LinearRampTo(0, now+stopFade)
	a.releasing[l] = a.sched.AfterFunc(releaseDelay, func() {
		a.mu.Lock()
		delete(a.releasing, l)
		a.mu.Unlock()
		l.release(a.g.Now())
	})
}

// Toggle flips between playing and stopped and reports the new state.
func (a *Ambient) Toggle() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.loop != nil {
		a.stopLocked()
	} else if a.g != nil {
		a.startLocked()
	}
	return a.loop != nil
}

// Close silences everything right away, including loops still fading out.
func (a *Ambient) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.gen++
	if a.g == nil {
		return
	}
	now := a.g.Now()
	if a.loop != nil {
		a.loop.release(now)
		a.loop = nil
	}
	for l, t := range a.releasing {
		t.Stop()
		l.release(now)
		delete(a.releasing, l)
	}
}
