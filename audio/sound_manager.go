package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	log "github.com/sirupsen/logrus"
)

const (
	sampleRate = beep.SampleRate(44100)
	// recentCues is how many requested cues Played keeps.
	recentCues = 16
)

// SoundManager manages all game audio. Until Initialize succeeds every Play
// call is silently dropped, so the game runs fine without a sound device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      []Cue

	music   *beep.Ctrl
	musicOn bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device. A failure leaves the manager silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		log.WithError(err).Warn("no audio device, sound disabled")
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetMuted turns sound off and on without releasing the device.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
}

// Play mixes the sound for c into the output.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.played = append(sm.played, c)
	if len(sm.played) > recentCues {
		sm.played = append(sm.played[:0], sm.played[len(sm.played)-recentCues:]...)
	}
	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(cueStreamer(sampleRate, c))
	speaker.Unlock()
}

// PlayEvents plays the cue of every event that has one. The end of a match
// also stops the music.
func (sm *SoundManager) PlayEvents(events []rules.Event) {
	for _, e := range events {
		if c, ok := CueForEvent(e); ok {
			sm.Play(c)
		}
		if e.Kind == rules.EventMatchEnded {
			sm.StopMusic()
		}
	}
}

// StartMusic starts or resumes the background loop.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicOn = true
	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	if sm.music == nil {
		sm.music = &beep.Ctrl{Streamer: musicStreamer(sampleRate)}
		sm.mixer.Add(sm.music)
	}
	sm.music.Paused = false
	speaker.Unlock()
}

// StopMusic pauses the background loop.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicOn = false
	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

// MusicPlaying reports whether the background loop was started and not
// stopped since.
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.musicOn
}

// Played returns and clears the most recent cues requested.
func (sm *SoundManager) Played() []Cue {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	out := sm.played
	sm.played = nil
	return out
}

// Cleanup stops all sounds and closes the audio device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.music = nil
	sm.musicOn = false
	sm.initialized = false
}
