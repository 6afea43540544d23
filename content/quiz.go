package content

import (
	"errors"
	"math/rand/v2"
	"slices"
)

var (
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotAnswered     = errors.New("question not answered")
	ErrUnknownOption   = errors.New("option not offered")
)

// Question is one multiple-choice item
type Question struct {
	Prompt  string
	Options []string
	Answer  string
}

// Questions returns the built-in question bank
func Questions() []Question {
	return questions
}

// Result of a submitted answer
type Result struct {
	Chosen  string
	Correct bool
	Answer  string
}

// Quiz walks the question bank in random order
// Each question accepts one answer; Next is gated on it, Skip is not
type Quiz struct {
	bank   []Question
	rng    *rand.Rand
	index  int
	result *Result

	asked   int
	correct int
}

// NewQuiz starts at a random question; an empty bank falls back to the built-in one
func NewQuiz(bank []Question, rng *rand.Rand) *Quiz {
	if len(bank) == 0 {
		bank = questions
	}
	return &Quiz{
		bank:  bank,
		rng:   rng,
		index: rng.IntN(len(bank)),
	}
}

// Current returns the question on display
func (q *Quiz) Current() Question {
	return q.bank[q.index]
}

// Index of the current question in the bank
func (q *Quiz) Index() int {
	return q.index
}

// Answered reports the result of the current question, nil before answering
func (q *Quiz) Answered() *Result {
	return q.result
}

// Answer submits an option by text
func (q *Quiz) Answer(option string) (Result, error) {
	if q.result != nil {
		return *q.result, ErrAlreadyAnswered
	}
	cur := q.Current()
	if !slices.Contains(cur.Options, option) {
		return Result{}, ErrUnknownOption
	}
	r := Result{Chosen: option, Correct: option == cur.Answer, Answer: cur.Answer}
	q.result = &r
	q.asked++
	if r.Correct {
		q.correct++
	}
	return r, nil
}

// AnswerIndex submits the option at position i of the current question
func (q *Quiz) AnswerIndex(i int) (Result, error) {
	cur := q.Current()
	if i < 0 || i >= len(cur.Options) {
		return Result{}, ErrUnknownOption
	}
	return q.Answer(cur.Options[i])
}

// Next moves to a different random question once the current one is answered
func (q *Quiz) Next() error {
	if q.result == nil {
		return ErrNotAnswered
	}
	q.advance()
	return nil
}

// Skip moves on without answering
func (q *Quiz) Skip() {
	q.advance()
}

func (q *Quiz) advance() {
	q.result = nil
	if len(q.bank) < 2 {
		return
	}
	next := q.rng.IntN(len(q.bank) - 1)
	if next >= q.index {
		next++
	}
	q.index = next
}

// Score returns correct and total answered
func (q *Quiz) Score() (correct, asked int) {
	return q.correct, q.asked
}

var questions = []Question{
	{"Which planet is closest to the Sun?", []string{"Venus", "Earth", "Mercury", "Mars"}, "Mercury"},
	{"What is the largest planet in our solar system?", []string{"Earth", "Jupiter", "Saturn", "Neptune"}, "Jupiter"},
	{"How many known moons does Jupiter have?", []string{"67", "79", "82", "95"}, "95"},
	{"Which planet is known for its beautiful rings?", []string{"Jupiter", "Saturn", "Uranus", "Neptune"}, "Saturn"},
	{"The Sun is a:", []string{"Planet", "Star", "Asteroid", "Meteor"}, "Star"},
	{"Which planet is known as the 'Red Planet'?", []string{"Mercury", "Venus", "Mars", "Jupiter"}, "Mars"},
	{"How many planets in our solar system have rings?", []string{"1", "2", "4", "6"}, "4"},
	{"Earth's orbit around the Sun takes approximately:", []string{"30 days", "365 days", "24 hours", "12 months"}, "365 days"},
	{"Which of these is NOT a terrestrial planet?", []string{"Mercury", "Venus", "Neptune", "Mars"}, "Neptune"},
	{"What is the hottest planet in our solar system?", []string{"Mercury", "Venus", "Earth", "Mars"}, "Venus"},
	{"Which constellation contains the Big Dipper?", []string{"Orion", "Ursa Major", "Cassiopeia", "Cygnus"}, "Ursa Major"},
	{"What causes the seasons on Earth?", []string{"Distance from the Sun", "Earth's axial tilt", "The Moon's gravity", "Solar flares"}, "Earth's axial tilt"},
	{"Which planet rotates on its side?", []string{"Earth", "Mars", "Uranus", "Venus"}, "Uranus"},
	{"What is the largest moon in our solar system?", []string{"Europa", "Titan", "Ganymede", "Earth's Moon"}, "Ganymede"},
	{"How many stars are in our solar system?", []string{"1", "8", "9", "Thousands"}, "1"},
}
