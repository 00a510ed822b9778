package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveNoise
)

// tone is a mono voice that sweeps linearly from one frequency to another
// with a short attack and a linear release.
type tone struct {
	sr       beep.SampleRate
	wave     int
	from, to float64
	volume   float64
	total    int
	pos      int
	phase    float64
	rng      *rand.Rand
}

func newTone(sr beep.SampleRate, wave int, from, to float64, d time.Duration, volume float64) *tone {
	return &tone{
		sr:     sr,
		wave:   wave,
		from:   from,
		to:     to,
		volume: volume,
		total:  sr.N(d),
		rng:    rand.New(rand.NewSource(1)),
	}
}

func (t *tone) sample() float64 {
	switch t.wave {
	case waveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case waveNoise:
		return t.rng.Float64()*2 - 1
	}
	return math.Sin(2 * math.Pi * t.phase)
}

func (t *tone) envelope() float64 {
	attack := t.total / 20
	if attack > 0 && t.pos < attack {
		return float64(t.pos) / float64(attack)
	}
	return float64(t.total-t.pos) / float64(t.total-attack)
}

// Stream implements beep.Streamer.
func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress

		v := t.sample() * t.envelope() * t.volume
		samples[i][0] = v
		samples[i][1] = v

		t.phase += freq / float64(t.sr)
		if t.phase >= 1 {
			t.phase -= math.Floor(t.phase)
		}
		t.pos++
		n++
	}
	return n, true
}

// Err implements beep.Streamer.
func (t *tone) Err() error { return nil }

// cueStreamer builds the sound for c. Every call returns a fresh streamer.
func cueStreamer(sr beep.SampleRate, c Cue) beep.Streamer {
	ms := time.Millisecond
	switch c {
	case CueEat:
		return beep.Seq(
			newTone(sr, waveSine, 520, 780, 60*ms, 0.3),
			newTone(sr, waveSine, 780, 1040, 60*ms, 0.3),
		)
	case CueFreeze:
		return beep.Seq(
			newTone(sr, waveSine, 1400, 900, 120*ms, 0.2),
			newTone(sr, waveNoise, 0, 0, 180*ms, 0.08),
		)
	case CueShock:
		return beep.Seq(
			newTone(sr, waveSquare, 180, 900, 90*ms, 0.15),
			newTone(sr, waveNoise, 0, 0, 90*ms, 0.12),
			newTone(sr, waveSquare, 900, 180, 90*ms, 0.15),
		)
	case CueChoose:
		return newTone(sr, waveSquare, 660, 660, 50*ms, 0.12)
	case CueWin:
		return beep.Seq(
			newTone(sr, waveSine, 523, 523, 150*ms, 0.3),
			newTone(sr, waveSine, 659, 659, 150*ms, 0.3),
			newTone(sr, waveSine, 784, 784, 150*ms, 0.3),
			newTone(sr, waveSine, 1047, 1047, 400*ms, 0.3),
		)
	}
	return newTone(sr, waveSine, 0, 0, 0, 0)
}
