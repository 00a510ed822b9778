package commands

import (
	"github.com/jrissiusp/SnakeGameMultiplayer/render"
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	termbox "github.com/nsf/termbox-go"
)

type screen int

const (
	screenStart screen = iota
	screenSkinOne
	screenSkinTwo
	screenBattle
	screenWin
	screenQuit
)

type action int

const (
	actionNone action = iota
	actionRedraw
	actionStartMatch
	actionQuit
)

// menu walks the screens around a battle: start, skin choice for each
// player, the battle itself and the win screen.
type menu struct {
	screen screen
	skins  [2]rules.Skin
	preset [2]bool
	winner rules.Player
	scores [2]int
}

// newMenu skips the skin choice of every player with a valid preset skin.
func newMenu(presets [2]rules.Skin) *menu {
	m := &menu{}
	for i, s := range presets {
		if s.Valid() {
			m.skins[i] = s
			m.preset[i] = true
		}
	}
	return m
}

func (m *menu) afterStart() action {
	switch {
	case !m.preset[0]:
		m.screen = screenSkinOne
	case !m.preset[1]:
		m.screen = screenSkinTwo
	default:
		m.screen = screenBattle
		return actionStartMatch
	}
	return actionRedraw
}

func skinKey(ev termbox.Event) (rules.Skin, bool) {
	if ev.Ch < '1' || ev.Ch > '9' {
		return 0, false
	}
	s := rules.Skin(ev.Ch - '0')
	return s, s.Valid()
}

// key handles a key press outside of a battle.
func (m *menu) key(ev termbox.Event) action {
	if ev.Type != termbox.EventKey {
		return actionNone
	}
	if ev.Key == termbox.KeyEsc {
		m.screen = screenQuit
		return actionQuit
	}

	switch m.screen {
	case screenStart:
		if ev.Key == termbox.KeySpace {
			return m.afterStart()
		}
	case screenSkinOne:
		if s, ok := skinKey(ev); ok {
			m.skins[0] = s
			if m.preset[1] {
				m.screen = screenBattle
				return actionStartMatch
			}
			m.screen = screenSkinTwo
			return actionRedraw
		}
	case screenSkinTwo:
		if s, ok := skinKey(ev); ok {
			m.skins[1] = s
			m.screen = screenBattle
			return actionStartMatch
		}
	case screenWin:
		switch ev.Key {
		case termbox.KeySpace:
			m.screen = screenStart
			return actionRedraw
		case termbox.KeyEnter:
			m.screen = screenQuit
			return actionQuit
		}
	}
	return actionNone
}

// finish moves to the win screen.
func (m *menu) finish(snap rules.Snapshot) {
	m.screen = screenWin
	m.winner = snap.Winner
	m.scores = [2]int{snap.Snakes[0].Score, snap.Snakes[1].Score}
}

func (m *menu) draw(c render.Canvas) error {
	switch m.screen {
	case screenSkinOne:
		return render.SkinScreen(c, rules.PlayerOne)
	case screenSkinTwo:
		return render.SkinScreen(c, rules.PlayerTwo)
	case screenWin:
		return render.WinScreen(c, m.winner, m.scores)
	case screenStart:
		return render.StartScreen(c)
	}
	return nil
}
