// Package alert provides the audible half of the completion signal.
// The visual half (the banner) lives with the UI; implementations here
// only need to cover Fire from the engine's Notifier capability.
package alert

import (
	"log"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const (
	toneHz     = 880
	toneLength = 450 * time.Millisecond

	sampleRate = beep.SampleRate(44100)
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Speaker plays a short decaying sine tone through the default audio
// device. The zero value is ready to use; the device is initialized on
// first Fire. Audio failures are logged and swallowed so the visual
// banner still lands on machines with no sound.
type Speaker struct{}

func (Speaker) Fire() {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	if speakerErr != nil {
		log.Printf("alert: speaker unavailable: %v", speakerErr)
		return
	}

	tone, err := generators.SinTone(sampleRate, toneHz)
	if err != nil {
		log.Printf("alert: tone generation failed: %v", err)
		return
	}

	n := sampleRate.N(toneLength)
	speaker.Play(&decay{Streamer: beep.Take(n, tone), total: n})
}

// Nop is the silent notifier behind --silent; it also stands in for the
// speaker in tests.
type Nop struct{}

func (Nop) Fire() {}

// decay fades the tone out linearly over its lifetime so it ends
// without a click.
type decay struct {
	beep.Streamer
	total int
	pos   int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1 - float64(d.pos)/float64(d.total)
		if gain < 0 {
			gain = 0
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok
}
