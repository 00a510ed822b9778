package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// theme is the background melody in Hz, one note per beat.
var theme = []float64{
	262, 330, 392, 330, 294, 349, 440, 349,
	262, 330, 392, 523, 494, 392, 330, 294,
}

const beat = 180 * time.Millisecond

// loop plays theme forever. It never reports the end of the stream.
type loop struct {
	sr   beep.SampleRate
	note int
	cur  beep.Streamer
}

func musicStreamer(sr beep.SampleRate) beep.Streamer {
	return &loop{sr: sr}
}

func (l *loop) next() beep.Streamer {
	f := theme[l.note%len(theme)]
	l.note = (l.note + 1) % len(theme)
	return newTone(l.sr, waveSine, f, f, beat, 0.06)
}

// Stream implements beep.Streamer.
func (l *loop) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if l.cur == nil {
			l.cur = l.next()
		}
		sn, sok := l.cur.Stream(samples[n:])
		n += sn
		if !sok || sn == 0 {
			l.cur = nil
		}
	}
	return n, true
}

// Err implements beep.Streamer.
func (l *loop) Err() error { return nil }
