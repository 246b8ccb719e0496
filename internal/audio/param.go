package audio

import (
	"math"
	"sort"
	"sync"
)

type rampKind int

const (
	setValue rampKind = iota
	linearRamp
	exponentialRamp
)

type paramEvent struct {
	kind  rampKind
	at    float64
	value float64
}

// Param is a gain value automated along the engine clock. Events are kept
// in time order; ramps interpolate from the previous event.
type Param struct {
	mu      sync.Mutex
	initial float64
	events  []paramEvent
}

func NewParam(v float64) *Param { return &Param{initial: v} }

func (p *Param) SetValueAt(v, at float64) { p.insert(paramEvent{setValue, at, v}) }

func (p *Param) LinearRampTo(v, at float64) { p.insert(paramEvent{linearRamp, at, v}) }

// ExponentialRampTo needs a positive target and a positive starting value;
// otherwise the segment holds the previous value until at.
func (p *Param) ExponentialRampTo(v, at float64) { p.insert(paramEvent{exponentialRamp, at, v}) }

// HoldAt drops every event after at and pins the current value there, so a
// new ramp can start from wherever the automation happens to be.
func (p *Param) HoldAt(at float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := p.valueAtLocked(at)
	keep := p.events[:0]
	for _, e := range p.events {
		if e.at <= at {
			keep = append(keep, e)
		}
	}
	p.events = append(keep, paramEvent{setValue, at, v})
}

func (p *Param) ValueAt(t float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.valueAtLocked(t)
}

func (p *Param) insert(e paramEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := sort.Search(len(p.events), func(i int) bool { return p.events[i].at > e.at })
	p.events = append(p.events, paramEvent{})
	copy(p.events[i+1:], p.events[i:])
	p.events[i] = e
}

func (p *Param) valueAtLocked(t float64) float64 {
	v, vt := p.initial, 0.0
	for _, e := range p.events {
		if e.at <= t {
			v, vt = e.value, e.at
			continue
		}
		switch e.kind {
		case linearRamp:
			return v + (e.value-v)*(t-vt)/(e.at-vt)
		case exponentialRamp:
			if v > 0 && e.value > 0 {
				return v * math.Pow(e.value/v, (t-vt)/(e.at-vt))
			}
		}
		return v
	}
	return v
}
