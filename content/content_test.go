package content

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/orrery/vmath"
)

func TestArticles(t *testing.T) {
	require.Len(t, Articles(), 6)

	a, ok := ArticleByID("orbits")
	require.True(t, ok)
	assert.Equal(t, "Planetary Orbits", a.Title)

	_, ok = ArticleByID("comets")
	assert.False(t, ok)

	rng := rand.New(rand.NewPCG(1, 2))
	seen := map[string]bool{}
	for range 200 {
		seen[RandomArticle(rng).ID] = true
	}
	assert.Len(t, seen, 6)
}

func TestNextEvent(t *testing.T) {
	utc := time.UTC
	tests := []struct {
		name string
		kind EventKind
		now  time.Time
		want string
		year int
	}{
		{"any early year", AnyEvent, time.Date(2025, 1, 5, 12, 0, 0, 0, utc), "Spring Equinox", 2025},
		{"equinox after spring", Equinox, time.Date(2025, 4, 1, 0, 0, 0, 0, utc), "Autumn Equinox", 2025},
		{"solstice after spring", Solstice, time.Date(2025, 4, 1, 0, 0, 0, 0, utc), "Summer Solstice", 2025},
		{"equinox rollover", Equinox, time.Date(2025, 10, 1, 0, 0, 0, 0, utc), "Spring Equinox", 2026},
		{"solstice rollover", Solstice, time.Date(2025, 12, 22, 0, 0, 0, 0, utc), "Summer Solstice", 2026},
		{"exact day is not future", AnyEvent, time.Date(2025, 3, 20, 0, 0, 0, 0, utc), "Summer Solstice", 2025},
		{"any rollover", AnyEvent, time.Date(2025, 12, 31, 0, 0, 0, 0, utc), "Spring Equinox", 2026},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextEvent(tt.kind, tt.now)
			assert.Equal(t, tt.want, got.Name)
			assert.Equal(t, tt.year, got.Date.Year())
			assert.Equal(t, got.Month, got.Date.Month())
			assert.Equal(t, got.Day, got.Date.Day())
			assert.True(t, got.Date.After(tt.now))
		})
	}
}

func TestParseEventKind(t *testing.T) {
	k, err := ParseEventKind("solstice")
	require.NoError(t, err)
	assert.Equal(t, Solstice, k)

	k, err = ParseEventKind("")
	require.NoError(t, err)
	assert.Equal(t, AnyEvent, k)

	_, err = ParseEventKind("eclipse")
	assert.Error(t, err)
}

func TestQuiz_AnswerFlow(t *testing.T) {
	q := NewQuiz(nil, rand.New(rand.NewPCG(3, 4)))
	require.Len(t, Questions(), 15)

	assert.ErrorIs(t, q.Next(), ErrNotAnswered)

	cur := q.Current()
	_, err := q.Answer("Pluto")
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Nil(t, q.Answered())

	r, err := q.Answer(cur.Answer)
	require.NoError(t, err)
	assert.True(t, r.Correct)

	_, err = q.Answer(cur.Options[0])
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	correct, asked := q.Score()
	assert.Equal(t, 1, correct)
	assert.Equal(t, 1, asked)

	prev := q.Index()
	require.NoError(t, q.Next())
	assert.NotEqual(t, prev, q.Index())
	assert.Nil(t, q.Answered())
}

func TestQuiz_WrongAnswerRevealsCorrect(t *testing.T) {
	bank := []Question{
		{"Q1", []string{"a", "b"}, "a"},
		{"Q2", []string{"c", "d"}, "d"},
	}
	q := NewQuiz(bank, rand.New(rand.NewPCG(9, 9)))
	cur := q.Current()
	var wrong string
	for _, o := range cur.Options {
		if o != cur.Answer {
			wrong = o
		}
	}
	r, err := q.Answer(wrong)
	require.NoError(t, err)
	assert.False(t, r.Correct)
	assert.Equal(t, cur.Answer, r.Answer)

	correct, asked := q.Score()
	assert.Equal(t, 0, correct)
	assert.Equal(t, 1, asked)
}

func TestQuiz_NextNeverRepeats(t *testing.T) {
	q := NewQuiz(nil, rand.New(rand.NewPCG(5, 6)))
	for range 100 {
		prev := q.Index()
		q.Skip()
		assert.NotEqual(t, prev, q.Index())
	}
}

func TestQuiz_SingleQuestion(t *testing.T) {
	q := NewQuiz([]Question{{"only", []string{"x"}, "x"}}, rand.New(rand.NewPCG(1, 1)))
	_, err := q.AnswerIndex(0)
	require.NoError(t, err)
	require.NoError(t, q.Next())
	assert.Equal(t, 0, q.Index())

	_, err = q.AnswerIndex(3)
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestConstellations(t *testing.T) {
	cs := Constellations()
	require.Len(t, cs, 5)

	counts := map[string]int{}
	for _, c := range cs {
		counts[c.Name] = len(c.Segments())
		assert.Len(t, c.Segments(), len(c.Lines), c.Name)
	}
	assert.Equal(t, 6, counts["Ursa Major (Big Dipper)"])
	assert.Equal(t, 8, counts["Orion"])
	assert.Equal(t, 4, counts["Cassiopeia"])
	assert.Equal(t, 6, counts["Cygnus (Northern Cross)"])
	assert.Equal(t, 5, counts["Lyra"])

	lyra := cs[4]
	c := lyra.Centroid()
	assert.InDelta(t, -20.0, c.X, 1e-9)
	assert.InDelta(t, 114.0, c.Y, 1e-9)
	assert.InDelta(t, -230.0, c.Z, 1e-9)
}

func TestConstellation_Degenerate(t *testing.T) {
	var empty Constellation
	assert.Equal(t, vmath.Vec3F{}, empty.Centroid())

	bad := Constellation{Stars: []vmath.Vec3F{{}}, Lines: [][2]int{{0, 4}}}
	assert.Empty(t, bad.Segments())
}
