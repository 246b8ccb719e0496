package audio

import (
	"bytes"
	"testing"
)

func TestRenderCueLength(t *testing.T) {
	samples := RenderCue(CueClick, 8000)
	if want := int((0.1 + renderTail.Seconds()) * 8000); len(samples) != want {
		t.Fatalf("len = %d, want %d", len(samples), want)
	}
	var peak float32
	for _, s := range samples[:800] {
		peak = max(peak, s)
	}
	if peak < 0.2 || peak > 0.3001 {
		t.Fatalf("peak = %v", peak)
	}
	for i, s := range samples[800:] {
		if s != 0 {
			t.Fatalf("tail sample %d = %v", i, s)
		}
	}
}

func TestRenderAmbientLoopStaysQuiet(t *testing.T) {
	samples := RenderAmbientLoop(4000)
	if len(samples) != 16*4000 {
		t.Fatalf("len = %d", len(samples))
	}
	var peak float32
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		peak = max(peak, s)
	}
	// three voices at 0.3 through the 0.08 master
	if peak == 0 || peak > 3*0.3*AmbientLevel+1e-6 {
		t.Fatalf("peak = %v", peak)
	}
}

func TestWAVHeader(t *testing.T) {
	samples := RenderCue(CueNeutral, 8000)
	b, err := WAV(samples, 8000)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("RIFF")) || string(b[8:12]) != "WAVE" {
		t.Fatalf("header = %q", b[:12])
	}
	if len(b) < 2*len(samples) {
		t.Fatalf("wav too short: %d bytes for %d samples", len(b), len(samples))
	}
}

func TestSeekBufferPatchesInPlace(t *testing.T) {
	var b seekBuffer
	_, _ = b.Write([]byte("abcdef"))
	if _, err := b.Seek(1, 0); err != nil {
		t.Fatal(err)
	}
	_, _ = b.Write([]byte("XY"))
	if string(b.buf) != "aXYdef" {
		t.Fatalf("buf = %q", b.buf)
	}
	if _, err := b.Seek(-1, 0); err == nil {
		t.Fatal("negative seek should fail")
	}
}
