package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer, trading latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultAudioVolume is the linear cue volume when the config omits it
	DefaultAudioVolume = 0.3
)

// Shared envelope attack for every cue
const CueAttack = 5 * time.Millisecond

// Select sound, a rising two-note chirp
const (
	SelectNote1Duration = 60 * time.Millisecond
	SelectNote2Duration = 90 * time.Millisecond
	SelectNote1Release  = 20 * time.Millisecond
	SelectNote2Release  = 60 * time.Millisecond
)

// Correct sound, a major arpeggio
const (
	CorrectNoteDuration  = 80 * time.Millisecond
	CorrectNoteRelease   = 20 * time.Millisecond
	CorrectFinalDuration = 160 * time.Millisecond
	CorrectFinalRelease  = 100 * time.Millisecond
)

// Incorrect sound, a low buzz
const (
	IncorrectSoundDuration = 250 * time.Millisecond
	IncorrectSoundRelease  = 120 * time.Millisecond
	IncorrectSoundFreq     = 150.0
)
