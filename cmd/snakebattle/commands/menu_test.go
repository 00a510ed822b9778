package commands

import (
	"testing"

	"github.com/jrissiusp/SnakeGameMultiplayer/render"
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

func TestMenu_FullFlow(t *testing.T) {
	m := newMenu([2]rules.Skin{})
	require.Equal(t, screenStart, m.screen)

	require.Equal(t, actionNone, m.key(charEvent('1')))
	require.Equal(t, actionRedraw, m.key(keyEvent(termbox.KeySpace)))
	require.Equal(t, screenSkinOne, m.screen)

	require.Equal(t, actionNone, m.key(charEvent('7')))
	require.Equal(t, actionRedraw, m.key(charEvent('3')))
	require.Equal(t, screenSkinTwo, m.screen)

	require.Equal(t, actionStartMatch, m.key(charEvent('5')))
	require.Equal(t, screenBattle, m.screen)
	require.Equal(t, [2]rules.Skin{rules.SkinBlue, rules.SkinYellow}, m.skins)

	m.finish(rules.Snapshot{
		Winner: rules.PlayerOne,
		Snakes: [2]rules.SnakeState{{Score: 10}, {Score: 7}},
	})
	require.Equal(t, screenWin, m.screen)
	require.Equal(t, [2]int{10, 7}, m.scores)

	require.Equal(t, actionRedraw, m.key(keyEvent(termbox.KeySpace)))
	require.Equal(t, screenStart, m.screen)
}

func TestMenu_EnterQuitsFromWinScreen(t *testing.T) {
	m := newMenu([2]rules.Skin{})
	m.finish(rules.Snapshot{Winner: rules.PlayerTwo})
	require.Equal(t, actionQuit, m.key(keyEvent(termbox.KeyEnter)))
	require.Equal(t, screenQuit, m.screen)
}

func TestMenu_EscQuitsAnywhere(t *testing.T) {
	for _, s := range []screen{screenStart, screenSkinOne, screenSkinTwo, screenWin} {
		m := newMenu([2]rules.Skin{})
		m.screen = s
		require.Equal(t, actionQuit, m.key(keyEvent(termbox.KeyEsc)))
	}
}

func TestMenu_Presets(t *testing.T) {
	m := newMenu([2]rules.Skin{rules.SkinRed, rules.SkinWhite})
	require.Equal(t, actionStartMatch, m.key(keyEvent(termbox.KeySpace)))
	require.Equal(t, [2]rules.Skin{rules.SkinRed, rules.SkinWhite}, m.skins)

	m = newMenu([2]rules.Skin{rules.SkinRed, 0})
	require.Equal(t, actionRedraw, m.key(keyEvent(termbox.KeySpace)))
	require.Equal(t, screenSkinTwo, m.screen)

	m = newMenu([2]rules.Skin{0, rules.SkinRed})
	m.key(keyEvent(termbox.KeySpace))
	require.Equal(t, screenSkinOne, m.screen)
	require.Equal(t, actionStartMatch, m.key(charEvent('2')))
	require.Equal(t, [2]rules.Skin{rules.SkinWhite, rules.SkinRed}, m.skins)

	m = newMenu([2]rules.Skin{9, 0})
	require.False(t, m.preset[0])
}

func TestMenu_Draw(t *testing.T) {
	buf := render.NewBuffer(60, 20)
	m := newMenu([2]rules.Skin{})

	require.NoError(t, m.draw(buf))
	require.Contains(t, buf.String(), "Press SPACE to start")

	m.key(keyEvent(termbox.KeySpace))
	require.NoError(t, m.draw(buf))
	require.Contains(t, buf.String(), "Player 1, choose your skin")

	m.finish(rules.Snapshot{Winner: rules.PlayerOne, Snakes: [2]rules.SnakeState{{Score: 4}, {Score: 2}}})
	require.NoError(t, m.draw(buf))
	require.Contains(t, buf.String(), "PLAYER 1 WINS")
}
