package notify

import (
	"encoding/binary"
	"math"
	"os"
)

// Player emits the audible cue for new notifications. Failures are
// always swallowed; a missed ding must never affect a poll cycle.
type Player interface {
	Play()
}

// BellPlayer rings the terminal bell. Best-effort local cue for anyone
// running the console in a terminal; the browser UI fetches the
// synthesized tone instead.
type BellPlayer struct{}

func (BellPlayer) Play() {
	_, _ = os.Stdout.Write([]byte{'\a'})
}

const (
	toneSampleRate = 44100
	toneDuration   = 0.8 // seconds

	// Two sines a major third apart make the "ding": C6 plus E6.
	toneMainHz     = 1046.50
	toneOvertoneHz = 1318.51

	toneAttack = 0.01 // seconds to peak
	tonePeak   = 0.15
	toneFloor  = 0.001
)

// ChimeWAV synthesizes the two-tone notification cue as a 16-bit mono
// WAV, fast attack then exponential decay. The browser plays it when
// the poller reports fresh items.
func ChimeWAV() []byte {
	samples := int(toneSampleRate * toneDuration)
	decayRate := math.Log(toneFloor/tonePeak) / (toneDuration - toneAttack)

	pcm := make([]byte, samples*2)
	for i := 0; i < samples; i++ {
		t := float64(i) / toneSampleRate

		var amp float64
		if t < toneAttack {
			amp = tonePeak * t / toneAttack
		} else {
			amp = tonePeak * math.Exp(decayRate*(t-toneAttack))
		}

		v := amp * (math.Sin(2*math.Pi*toneMainHz*t) + math.Sin(2*math.Pi*toneOvertoneHz*t)) / 2
		sample := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(sample))
	}

	return wrapWAV(pcm)
}

func wrapWAV(pcm []byte) []byte {
	header := make([]byte, 44)
	copy(header[0:], "RIFF")
	binary.LittleEndian.PutUint32(header[4:], uint32(36+len(pcm)))
	copy(header[8:], "WAVE")
	copy(header[12:], "fmt ")
	binary.LittleEndian.PutUint32(header[16:], 16)
	binary.LittleEndian.PutUint16(header[20:], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:], 1) // mono
	binary.LittleEndian.PutUint32(header[24:], toneSampleRate)
	binary.LittleEndian.PutUint32(header[28:], toneSampleRate*2) // byte rate
	binary.LittleEndian.PutUint16(header[32:], 2)                // block align
	binary.LittleEndian.PutUint16(header[34:], 16)               // bits per sample
	copy(header[36:], "data")
	binary.LittleEndian.PutUint32(header[40:], uint32(len(pcm)))
	return append(header, pcm...)
}
