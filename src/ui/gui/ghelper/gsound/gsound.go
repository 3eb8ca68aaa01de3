package gsound

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// Player plays the short click used for a snapped tile.
type Player struct {
	enabled bool
	ctx     *audio.Context
	click   []byte
	last    *audio.Player
}

// NewPlayer reuses the process audio context; ebiten allows only one.
func NewPlayer(enabled bool) *Player {
	p := &Player{enabled: enabled}
	if !enabled {
		return p
	}
	p.ctx = audio.CurrentContext()
	if p.ctx == nil {
		p.ctx = audio.NewContext(sampleRate)
	}
	p.click = ClickPCM(sampleRate, 880, 0.06)
	return p
}

func (p *Player) Enabled() bool {
	return p.enabled
}

func (p *Player) SetEnabled(v bool) {
	if v && p.ctx == nil {
		*p = *NewPlayer(true)
		return
	}
	p.enabled = v
}

func (p *Player) Click() {
	if !p.enabled || p.ctx == nil {
		return
	}
	// keep the last player referenced until the next click replaces it
	pl := p.ctx.NewPlayerFromBytes(p.click)
	pl.SetVolume(0.4)
	pl.Play()
	p.last = pl
}

// ClickPCM renders an exponentially decaying sine as 16-bit little endian stereo.
func ClickPCM(rate int, freq, seconds float64) []byte {
	n := int(float64(rate) * seconds)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(rate)
		env := math.Exp(-t * 60)
		v := int16(math.Sin(2*math.Pi*freq*t) * env * math.MaxInt16 * 0.8)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
