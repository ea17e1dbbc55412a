package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// beeper plays short tones. A nil beeper is silent.
type beeper struct{}

func newBeeper() (*beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &beeper{}, nil
}

// playClear rises in pitch and length with the number of lines cleared.
func (b *beeper) playClear(lines int) {
	if b == nil {
		return
	}

	sine, err := generators.SineTone(sampleRate, clearTone(lines))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(time.Duration(lines)*60*time.Millisecond), sine))
}

func (b *beeper) close() {
	if b == nil {
		return
	}
	speaker.Close()
}

func clearTone(lines int) float64 {
	return 440 + 220*float64(lines)
}
