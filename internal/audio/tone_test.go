package audio

import "testing"

func TestToneFrequencyPerID(t *testing.T) {
	if f := toneFrequency(1); f != 150.0 {
		t.Errorf("Expected 150Hz for id 1, got %v", f)
	}
	if toneFrequency(3) == toneFrequency(4) {
		t.Error("Adjacent ids must get distinct frequencies")
	}
}

func TestToneReadProducesSamples(t *testing.T) {
	tn := newTone(1, 44100)

	buf := make([]byte, 4096)
	n, err := tn.Read(buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if n != len(buf) {
		t.Errorf("Expected a full buffer, got %d bytes", n)
	}

	// A sine wave is not silence.
	allZero := true
	for _, b := range buf[:n] {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Error("Tone produced only silence")
	}
}

func TestToneReadOddBuffer(t *testing.T) {
	tn := newTone(2, 44100)
	n, err := tn.Read(make([]byte, 5))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if n != 4 {
		t.Errorf("Expected whole samples only (4 bytes), got %d", n)
	}
}

func TestToneIsContinuousAcrossReads(t *testing.T) {
	// Position carries over between reads: reading 2x2048 bytes must equal
	// one 4096-byte read of a fresh tone.
	a := newTone(5, 44100)
	b := newTone(5, 44100)

	one := make([]byte, 4096)
	a.Read(one)

	two := make([]byte, 4096)
	b.Read(two[:2048])
	b.Read(two[2048:])

	for i := range one {
		if one[i] != two[i] {
			t.Fatalf("Discontinuity at byte %d", i)
		}
	}
}
