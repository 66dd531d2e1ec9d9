package audio

import (
	"math"
)

// tone is an endless 16-bit little-endian mono sine wave. Each sound id gets
// its own frequency, standing in for real sample playback the same way the
// original engine stubbed it.
type tone struct {
	freq       float64
	sampleRate int
	pos        int64 // sample position, carried across reads
}

// toneAmplitude leaves headroom so several simultaneous tones don't clip.
const toneAmplitude = 0.3

// toneFrequency derives the stub frequency for a sound id.
func toneFrequency(id int) float64 {
	return 100.0 + float64(id)*50.0
}

func newTone(id, sampleRate int) *tone {
	return &tone{freq: toneFrequency(id), sampleRate: sampleRate}
}

// Read fills p with signed 16-bit LE mono samples. It never returns io.EOF;
// the player loops forever until paused or closed.
func (t *tone) Read(p []byte) (int, error) {
	n := len(p) / 2 * 2 // whole samples only
	for i := 0; i < n; i += 2 {
		v := math.Sin(2 * math.Pi * t.freq * float64(t.pos) / float64(t.sampleRate))
		sample := int16(v * toneAmplitude * math.MaxInt16)
		p[i] = byte(sample)
		p[i+1] = byte(sample >> 8)
		t.pos++
	}
	return n, nil
}
