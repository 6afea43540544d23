package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/orrery/parameter"
)

// Player plays cues
type Player interface {
	Play(c Cue)
	Close()
}

// Nop discards every cue
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Close()   {}

// BeepPlayer mixes cues into the speaker
// Cue buffers are synthesized once on first use
type BeepPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	cache  [cueCount]samples
	ready  bool
}

// NewBeepPlayer creates an idle player; volume is linear in [0,1]
func NewBeepPlayer(volume float64) *BeepPlayer {
	return &BeepPlayer{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker; on error the player stays silent
func (p *BeepPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

func (p *BeepPlayer) buffer(c Cue) samples {
	if p.cache[c] == nil {
		p.cache[c] = synth(c)
	}
	return p.cache[c]
}

// stream builds the volume-scaled streamer for c
func (p *BeepPlayer) stream(c Cue) beep.Streamer {
	s := p.buffer(c).streamer()
	if p.volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(p.volume)}
}

// Play queues c on the mixer; no-op before Init succeeds
func (p *BeepPlayer) Play(c Cue) {
	if c >= cueCount {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	st := p.stream(c)
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// Close drops pending cues
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}
