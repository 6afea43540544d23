// Package hud holds the text overlays shown over the scene: body info, articles,
// seasonal events, the quiz, key help and the status line
package hud

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/content"
	"github.com/lixenwraith/orrery/sim"
)

// ErrQuizClosed is returned by quiz commands while the quiz overlay is not open
var ErrQuizClosed = errors.New("quiz not open")

// Overlay is the panel currently covering the scene
type Overlay uint8

const (
	OverlayNone Overlay = iota
	OverlayArticle
	OverlayEvent
	OverlayQuiz
	OverlayHelp
)

func (o Overlay) String() string {
	switch o {
	case OverlayArticle:
		return "article"
	case OverlayEvent:
		return "event"
	case OverlayQuiz:
		return "quiz"
	case OverlayHelp:
		return "help"
	default:
		return "none"
	}
}

// HUD is the overlay state machine
// At most one overlay is open; the info panel is separate and follows the selection
type HUD struct {
	overlay Overlay
	rng     *rand.Rand

	article content.Article
	event   content.Occurrence
	quiz    *content.Quiz
}

// New creates a HUD with no overlay open
func New(rng *rand.Rand) *HUD {
	return &HUD{rng: rng}
}

// Overlay returns the open overlay
func (h *HUD) Overlay() Overlay {
	return h.overlay
}

// Close dismisses any overlay; the quiz score is kept for the next session
func (h *HUD) Close() {
	h.overlay = OverlayNone
}

// ShowArticle opens a random article
func (h *HUD) ShowArticle() content.Article {
	h.article = content.RandomArticle(h.rng)
	h.overlay = OverlayArticle
	return h.article
}

// ShowEvent opens the next seasonal event of the kind after now
func (h *HUD) ShowEvent(kind content.EventKind, now time.Time) content.Occurrence {
	h.event = content.NextEvent(kind, now)
	h.overlay = OverlayEvent
	return h.event
}

// StartQuiz opens the quiz at a random question
func (h *HUD) StartQuiz() *content.Quiz {
	h.quiz = content.NewQuiz(nil, h.rng)
	h.overlay = OverlayQuiz
	return h.quiz
}

// Quiz returns the running quiz, nil before the first start
func (h *HUD) Quiz() *content.Quiz {
	return h.quiz
}

// Answer submits option i of the current question
func (h *HUD) Answer(i int) (content.Result, error) {
	if h.overlay != OverlayQuiz || h.quiz == nil {
		return content.Result{}, ErrQuizClosed
	}
	return h.quiz.AnswerIndex(i)
}

// NextQuestion advances after an answer, or skips when skip is set
func (h *HUD) NextQuestion(skip bool) error {
	if h.overlay != OverlayQuiz || h.quiz == nil {
		return ErrQuizClosed
	}
	if skip {
		h.quiz.Skip()
		return nil
	}
	return h.quiz.Next()
}

// ToggleHelp opens or closes the key help
func (h *HUD) ToggleHelp() {
	if h.overlay == OverlayHelp {
		h.overlay = OverlayNone
		return
	}
	h.overlay = OverlayHelp
}

// Lines renders the open overlay wrapped to width
func (h *HUD) Lines(width int) []string {
	switch h.overlay {
	case OverlayArticle:
		return append([]string{h.article.Title, ""}, Wrap(h.article.Body, width)...)
	case OverlayEvent:
		return h.eventLines(width)
	case OverlayQuiz:
		return h.quizLines(width)
	case OverlayHelp:
		return helpLines
	}
	return nil
}

func (h *HUD) eventLines(width int) []string {
	e := h.event
	lines := []string{e.Name, e.Date.Format("Monday, January 2, 2006"), ""}
	return append(lines, Wrap(e.Description, width)...)
}

func (h *HUD) quizLines(width int) []string {
	q := h.quiz.Current()
	res := h.quiz.Answered()
	correct, asked := h.quiz.Score()

	lines := append([]string{fmt.Sprintf("Quiz  score %d/%d", correct, asked), ""}, Wrap(q.Prompt, width)...)
	lines = append(lines, "")
	for i, o := range q.Options {
		mark := " "
		if res != nil {
			switch {
			case o == res.Answer:
				mark = "+"
			case o == res.Chosen:
				mark = "x"
			}
		}
		lines = append(lines, fmt.Sprintf("%s %d) %s", mark, i+1, o))
	}
	lines = append(lines, "")
	if res == nil {
		lines = append(lines, "1-4 answer  s skip  esc close")
	} else {
		verdict := "Incorrect"
		if res.Correct {
			verdict = "Correct!"
		}
		lines = append(lines, verdict, "n next  esc close")
	}
	return lines
}

var helpLines = []string{
	"Keys",
	"",
	"arrows / drag   orbit camera",
	"shift+arrows    pan",
	"+ - / wheel     zoom",
	"click / 1-8     select planet",
	"esc             clear focus / close",
	"space           pause",
	"[ ]             speed",
	"l o c           labels orbits constellations",
	"t               reset to now",
	"e E             next equinox / solstice",
	"a               article",
	"z               quiz",
	"?               help",
	"q               quit",
}

// InfoLines describes a catalog entry for the side panel
func InfoLines(e *catalog.Entry, width int) []string {
	if e == nil {
		return []string{"Solar System Explorer", "", "Click on a planet to learn more."}
	}
	lines := []string{
		e.Name,
		fmt.Sprintf("Radius: %g (Earth = 1)", e.Radius),
		fmt.Sprintf("Distance from Sun: %g units", e.Distance),
	}
	if e.Summary != "" {
		lines = append(lines, "")
		lines = append(lines, Wrap(e.Summary, width)...)
	}
	if e.Description != "" {
		lines = append(lines, "")
		lines = append(lines, Wrap(e.Description, width)...)
	}
	if len(e.Facts) > 0 {
		lines = append(lines, "")
		for _, f := range e.Facts {
			lines = append(lines, Wrap(f.Label+": "+f.Value, width)...)
		}
	}
	return lines
}

// StatusLine summarizes the frame in one row
func StatusLine(fr sim.Frame, fps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "speed %.1fx", fr.Speed)
	if fr.Paused {
		b.WriteString("  PAUSED")
	}
	if fr.Selected != "" {
		fmt.Fprintf(&b, "  %s", fr.Selected)
		if fr.Focus == camera.Focusing {
			b.WriteString(" (focusing)")
		}
	}
	if fps > 0 {
		fmt.Fprintf(&b, "  %.0f fps", fps)
	}
	if fr.LowQuality {
		b.WriteString("  low detail")
	}
	return b.String()
}
