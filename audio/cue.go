// Package audio plays short synthesized cues for selection and quiz feedback
// Playback is optional: without an audio device every call is a no-op
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/orrery/parameter"
)

// SampleRate of every generated cue
const SampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Cue identifies a sound
type Cue uint8

const (
	CueSelect Cue = iota
	CueCorrect
	CueIncorrect
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueSelect:
		return "select"
	case CueCorrect:
		return "correct"
	case CueIncorrect:
		return "incorrect"
	}
	return "unknown"
}

type wave uint8

const (
	waveSine wave = iota
	waveSquare
)

// samples is mono audio at unity gain
type samples []float64

func tone(w wave, freq float64, d time.Duration) samples {
	n := SampleRate.N(d)
	if w == waveSine {
		return sine(freq, n)
	}
	buf := make(samples, n)
	step := freq / float64(SampleRate)
	phase := 0.0
	for i := range buf {
		if phase < 0.5 {
			buf[i] = 1
		} else {
			buf[i] = -1
		}
		phase += step
		if phase >= 1 {
			phase--
		}
	}
	return buf
}

// sine renders n samples of the beep sine generator, silence if freq is out of range
func sine(freq float64, n int) samples {
	buf := make(samples, n)
	gen, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return buf
	}
	stereo := make([][2]float64, n)
	got, _ := beep.Take(n, gen).Stream(stereo)
	for i := range got {
		buf[i] = stereo[i][0]
	}
	return buf
}

// shape applies a linear attack and release in place
func (s samples) shape(attack, release time.Duration) samples {
	a := SampleRate.N(attack)
	r := SampleRate.N(release)
	total := len(s)
	relStart := max(total-r, a)
	for i := range s {
		switch {
		case a > 0 && i < a:
			s[i] *= float64(i) / float64(a)
		case r > 0 && i >= relStart:
			s[i] *= float64(total-i) / float64(r)
		}
	}
	return s
}

func (s samples) gain(g float64) samples {
	for i := range s {
		s[i] *= g
	}
	return s
}

func concat(parts ...samples) samples {
	var out samples
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// synth renders a cue at unity gain
func synth(c Cue) samples {
	const env = parameter.CueAttack
	switch c {
	case CueSelect:
		return concat(
			tone(waveSine, 660, parameter.SelectNote1Duration).shape(env, parameter.SelectNote1Release),
			tone(waveSine, 990, parameter.SelectNote2Duration).shape(env, parameter.SelectNote2Release),
		).gain(0.6)
	case CueCorrect:
		return concat(
			tone(waveSine, 523.25, parameter.CorrectNoteDuration).shape(env, parameter.CorrectNoteRelease),
			tone(waveSine, 659.25, parameter.CorrectNoteDuration).shape(env, parameter.CorrectNoteRelease),
			tone(waveSine, 783.99, parameter.CorrectFinalDuration).shape(env, parameter.CorrectFinalRelease),
		).gain(0.6)
	case CueIncorrect:
		return tone(waveSquare, parameter.IncorrectSoundFreq, parameter.IncorrectSoundDuration).
			shape(env, parameter.IncorrectSoundRelease).gain(0.25)
	}
	return nil
}

// streamer plays a sample buffer once in stereo
func (s samples) streamer() beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(s) {
			return 0, false
		}
		n := copy2(out, s[pos:])
		pos += n
		return n, true
	})
}

func copy2(dst [][2]float64, src samples) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i][0] = src[i]
		dst[i][1] = src[i]
	}
	return n
}
