package audio

import (
	"math"
	"testing"
	"time"

	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	"github.com/stretchr/testify/require"
)

func TestCueForEvent(t *testing.T) {
	tests := []struct {
		event rules.Event
		cue   Cue
		ok    bool
	}{
		{rules.Event{Kind: rules.EventFoodEaten, Food: rules.FoodNormal}, CueEat, true},
		{rules.Event{Kind: rules.EventFoodEaten, Food: rules.FoodSilver}, CueEat, true},
		{rules.Event{Kind: rules.EventFoodEaten, Food: rules.FoodGolden}, CueEat, true},
		{rules.Event{Kind: rules.EventFoodEaten, Food: rules.FoodSlow, Effect: rules.EffectSlow}, CueFreeze, true},
		{rules.Event{Kind: rules.EventFoodEaten, Food: rules.FoodFast, Effect: rules.EffectFast}, CueShock, true},
		{rules.Event{Kind: rules.EventMatchEnded, Winner: rules.PlayerOne}, CueWin, true},
		{rules.Event{Kind: "unknown"}, 0, false},
	}

	for _, tt := range tests {
		cue, ok := CueForEvent(tt.event)
		require.Equal(t, tt.ok, ok, "%+v", tt.event)
		if ok {
			require.Equal(t, tt.cue, cue, "%+v", tt.event)
		}
	}
}

func drain(t *testing.T, c Cue) int {
	s := cueStreamer(sampleRate, c)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			require.False(t, math.IsNaN(sample[0]))
			require.True(t, math.Abs(sample[0]) <= 1, "sample out of range: %v", sample[0])
			require.Equal(t, sample[0], sample[1])
		}
		total += n
		if !ok {
			return total
		}
	}
}

func TestCueStreamerLength(t *testing.T) {
	require.Equal(t, 2*sampleRate.N(60*time.Millisecond), drain(t, CueEat))
	require.Equal(t, sampleRate.N(50*time.Millisecond), drain(t, CueChoose))
	require.Equal(t, 3*sampleRate.N(150*time.Millisecond)+sampleRate.N(400*time.Millisecond), drain(t, CueWin))

	for c := CueEat; c <= CueWin; c++ {
		require.NotZero(t, drain(t, c), c.String())
	}
}

func TestSoundManagerSilent(t *testing.T) {
	sm := NewSoundManager()

	// Never initialized, nothing reaches a device but requests are tracked.
	sm.PlayEvents([]rules.Event{
		{Kind: rules.EventFoodEaten, Food: rules.FoodFast},
		{Kind: rules.EventMatchEnded},
	})
	sm.Play(CueChoose)
	require.Equal(t, []Cue{CueShock, CueWin, CueChoose}, sm.Played())
	require.Empty(t, sm.Played())

	sm.Cleanup()
}

func TestCueString(t *testing.T) {
	require.Equal(t, "freeze", CueFreeze.String())
	require.Equal(t, "unknown", Cue(42).String())
}

func TestPlayedKeepsRecentCues(t *testing.T) {
	sm := NewSoundManager()
	for i := 0; i < 40; i++ {
		sm.Play(CueEat)
	}
	sm.Play(CueWin)

	played := sm.Played()
	require.Len(t, played, recentCues)
	require.Equal(t, CueWin, played[len(played)-1])
}

func TestMusicLoops(t *testing.T) {
	s := musicStreamer(sampleRate)
	buf := make([][2]float64, 1024)
	melody := len(theme) * sampleRate.N(beat)

	total := 0
	for total < 2*melody+1 {
		n, ok := s.Stream(buf)
		require.True(t, ok)
		require.Equal(t, len(buf), n)
		for _, sample := range buf {
			require.True(t, math.Abs(sample[0]) <= 1)
		}
		total += n
	}
}

func TestMusicStopsWhenMatchEnds(t *testing.T) {
	sm := NewSoundManager()
	require.False(t, sm.MusicPlaying())

	sm.StartMusic()
	require.True(t, sm.MusicPlaying())

	sm.PlayEvents([]rules.Event{{Kind: rules.EventFoodEaten, Food: rules.FoodSilver}})
	require.True(t, sm.MusicPlaying())

	sm.PlayEvents([]rules.Event{{Kind: rules.EventMatchEnded, Winner: rules.PlayerOne}})
	require.False(t, sm.MusicPlaying())
	require.Equal(t, []Cue{CueEat, CueWin}, sm.Played())
}
