// Package audio plays short synthesized cues for game feedback events.
// Missing audio hardware degrades to silence; the game never depends on it.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyfolio/engine"
	"github.com/lixenwraith/skyfolio/input"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager mixes one-shot cues onto the speaker
// It is an engine.Sink; events arrive on the tick goroutine, playback runs on beep's
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	log         zerolog.Logger
}

// NewSoundManager creates an uninitialized manager, every cue is a no-op until Initialize
func NewSoundManager(log zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		log:   log.With().Str("component", "audio").Logger(),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Debug().Int("sample_rate", int(sampleRate)).Msg("Speaker initialized")
	return nil
}

// Cleanup drops queued cues
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close, an empty mixer is silent
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// ToggleMute flips cue playback without releasing the speaker and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	sm.log.Debug().Bool("muted", sm.muted).Msg("Mute toggled")
	return sm.muted
}

// Muted reports whether cues are suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// HandleIntent consumes the mute intent, anything else is left for the game
func (sm *SoundManager) HandleIntent(i input.Intent) bool {
	if i != input.IntentMute {
		return false
	}
	sm.ToggleMute()
	return true
}

// Emit maps feedback events to cues
func (sm *SoundManager) Emit(ev engine.Event) {
	switch ev.Kind {
	case engine.EventCollect:
		sm.PlayCollect()
	case engine.EventCrash:
		sm.PlayCrash()
	case engine.EventFlap:
		sm.PlayFlap()
	case engine.EventPoint:
		sm.PlayPoint()
	}
}

// PlayCollect plays a rising two-tone chirp
func (sm *SoundManager) PlayCollect() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*180), NewChirpGenerator(sampleRate, 880, 1320)))
}

// PlayPoint plays a short high blip
func (sm *SoundManager) PlayPoint() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*60), NewChirpGenerator(sampleRate, 1046, 1046)))
}

// PlayFlap plays a short low buzz
func (sm *SoundManager) PlayFlap() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*70), NewBuzzGenerator(sampleRate, 220)))
}

// PlayCrash plays the crackling impact
func (sm *SoundManager) PlayCrash() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*400), NewDecayGenerator(sampleRate, time.Now().UnixNano())))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ChirpGenerator sweeps linearly from one frequency to another over its first 150ms
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	phase    float64
}

// NewChirpGenerator creates a chirp generator
func NewChirpGenerator(sr beep.SampleRate, from, to float64) *ChirpGenerator {
	return &ChirpGenerator{sr: sr, from: from, to: to}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	sweep := float64(g.sr.N(time.Millisecond * 150))
	for i := range samples {
		progress := math.Min(float64(g.pos)/sweep, 1.0)
		freq := g.from + (g.to-g.from)*progress

		// Phase accumulation keeps the sweep click-free
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := 1.0 - progress*0.7
		sample := 0.2 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)

		// Envelope to fade in
		envelope := math.Min(t/0.01, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// DecayGenerator generates a crackling impact with a low rumble
type DecayGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewDecayGenerator creates a decay sound generator
func NewDecayGenerator(sr beep.SampleRate, seed int64) *DecayGenerator {
	return &DecayGenerator{
		sr:   sr,
		seed: seed,
	}
}

func (g *DecayGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slower decay
		envelope := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*60*t)

		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DecayGenerator) Err() error {
	return nil
}
