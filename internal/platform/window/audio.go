package window

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/tui-scene/internal/gfx"
)

// SampleRate is the output rate of the audio context.
const SampleRate = 44100

// toneVolume is the square-wave amplitude as a fraction of full scale.
const toneVolume = 0.1

// Audio plays sounds through the Ebitengine audio context.
// It implements gfx.Audio.
type Audio struct {
	ctx    *audio.Context
	logger *log.Logger

	mu      sync.Mutex
	players []*audio.Player
}

// sound is decoded 16-bit little-endian stereo PCM at SampleRate.
type sound struct {
	name string
	pcm  []byte
}

func (s *sound) Name() string { return s.name }

// NewAudio returns an Audio bound to the process-wide audio context.
func NewAudio(logger *log.Logger) *Audio {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &Audio{ctx: ctx, logger: logger}
}

// Load decodes a WAV file into memory.
func (a *Audio) Load(path string) (gfx.Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound: %w", err)
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(SampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("decode sound %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read sound %s: %w", path, err)
	}
	return &sound{name: filepath.Base(path), pcm: pcm}, nil
}

// Tone synthesizes a square-wave beep.
func (a *Audio) Tone(name string, freq float64, d time.Duration) gfx.Sound {
	return &sound{name: name, pcm: SquareWave(freq, d)}
}

// Play starts s on a new player. Sounds from another backend are ignored.
func (a *Audio) Play(s gfx.Sound) {
	snd, ok := s.(*sound)
	if !ok {
		a.logger.Warn("cannot play foreign sound", "name", s.Name())
		return
	}

	p := a.ctx.NewPlayerFromBytes(snd.pcm)
	p.Play()

	a.mu.Lock()
	defer a.mu.Unlock()
	live := a.players[:0]
	for _, old := range a.players {
		if old.IsPlaying() {
			live = append(live, old)
			continue
		}
		old.Close()
	}
	a.players = append(live, p)
}

// Stop silences every playing sound.
func (a *Audio) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, p := range a.players {
		p.Pause()
		p.Close()
	}
	a.players = nil
}

// SquareWave renders a square wave as 16-bit little-endian stereo PCM.
// A non-positive frequency yields silence of the same length.
func SquareWave(freq float64, d time.Duration) []byte {
	frames := int(d.Seconds() * SampleRate)
	buf := make([]byte, frames*4)

	amp := int16(toneVolume * math.MaxInt16)
	for i := range frames {
		var v int16
		if freq > 0 {
			v = amp
			if int(float64(i)*freq*2/SampleRate)%2 == 1 {
				v = -amp
			}
		}
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(v >> 8)
	}
	return buf
}

var _ gfx.Audio = (*Audio)(nil)
