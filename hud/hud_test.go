package hud

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/content"
	"github.com/lixenwraith/orrery/sim"
)

func newHUD() *HUD {
	return New(rand.New(rand.NewPCG(4, 2)))
}

func TestWrap(t *testing.T) {
	lines := Wrap("the quick brown fox jumps over the lazy dog", 10)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 10, l)
	}
	assert.Equal(t, "the quick brown fox jumps over the lazy dog", strings.Join(lines, " "))

	assert.Equal(t, []string{"a", "", "b"}, Wrap("a\n\nb", 20))
	assert.Equal(t, []string{"abcd"}, Wrap("abcdefgh", 4))
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab  ", Fit("ab", 4))
	assert.Equal(t, 5, len([]rune(Fit("Neptune", 5))))
}

func TestOverlay_Transitions(t *testing.T) {
	h := newHUD()
	assert.Equal(t, OverlayNone, h.Overlay())
	assert.Nil(t, h.Lines(40))

	a := h.ShowArticle()
	assert.Equal(t, OverlayArticle, h.Overlay())
	assert.Equal(t, a.Title, h.Lines(40)[0])

	h.ToggleHelp()
	assert.Equal(t, OverlayHelp, h.Overlay())
	h.ToggleHelp()
	assert.Equal(t, OverlayNone, h.Overlay())

	ev := h.ShowEvent(content.Solstice, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Winter Solstice", ev.Name)
	lines := h.Lines(60)
	assert.Equal(t, "Winter Solstice", lines[0])
	assert.Equal(t, "Sunday, December 21, 2025", lines[1])

	h.Close()
	assert.Equal(t, OverlayNone, h.Overlay())
}

func TestQuizOverlay(t *testing.T) {
	h := newHUD()
	_, err := h.Answer(0)
	assert.ErrorIs(t, err, ErrQuizClosed)

	q := h.StartQuiz()
	require.NotNil(t, q)
	assert.Equal(t, OverlayQuiz, h.Overlay())

	cur := q.Current()
	assert.ErrorIs(t, h.NextQuestion(false), content.ErrNotAnswered)

	answer := -1
	for i, o := range cur.Options {
		if o == cur.Answer {
			answer = i
		}
	}
	require.GreaterOrEqual(t, answer, 0)
	res, err := h.Answer(answer)
	require.NoError(t, err)
	assert.True(t, res.Correct)

	lines := h.Lines(60)
	assert.Equal(t, "Quiz  score 1/1", lines[0])
	assert.Contains(t, lines, "Correct!")

	require.NoError(t, h.NextQuestion(false))
	require.NoError(t, h.NextQuestion(true))
	assert.Contains(t, h.Lines(60), "1-4 answer  s skip  esc close")
}

func TestInfoLines(t *testing.T) {
	c := catalog.Default()
	e, ok := c.Entry("Mars")
	require.True(t, ok)

	lines := InfoLines(e, 40)
	assert.Equal(t, "Mars", lines[0])
	assert.Equal(t, "Radius: 0.53 (Earth = 1)", lines[1])
	assert.Equal(t, "Distance from Sun: 25 units", lines[2])
	assert.Contains(t, lines, "Moons: 2 (Phobos & Deimos)")

	assert.Equal(t, "Solar System Explorer", InfoLines(nil, 40)[0])
}

func TestStatusLine(t *testing.T) {
	fr := sim.Frame{Speed: 1.5, Paused: true, Selected: "Earth", Focus: camera.Focusing, LowQuality: true}
	assert.Equal(t, "speed 1.5x  PAUSED  Earth (focusing)  24 fps  low detail", StatusLine(fr, 24))
	assert.Equal(t, "speed 1.0x", StatusLine(sim.Frame{Speed: 1}, 0))
}
