package yars

import (
	"fmt"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Tone is a short sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Speaker plays tones. BeepSpeaker is the real one.
type Speaker interface {
	Play(Tone) error
}

var (
	toneLaunch     = Tone{Freq: 220, Duration: 150 * time.Millisecond}
	toneQotileDied = Tone{Freq: 880, Duration: 400 * time.Millisecond}
	toneYarDied    = Tone{Freq: 110, Duration: 500 * time.Millisecond}
	toneShieldHit  = Tone{Freq: 440, Duration: 60 * time.Millisecond}
)

// SoundSystem turns gameplay messages into tones, at most one per kind per frame.
type SoundSystem struct {
	A       *Arena
	Speaker Speaker

	queued []Tone
}

func (s *SoundSystem) New(*ecs.World) {
	s.Listen()
}

func (s *SoundSystem) Listen() {
	s.A.listen(CannonLaunchedMessage{}, func(engo.Message) { s.queue(toneLaunch) })
	s.A.listen(QotileDiedMessage{}, func(engo.Message) { s.queue(toneQotileDied) })
	s.A.listen(YarDiedMessage{}, func(engo.Message) { s.queue(toneYarDied) })
	s.A.listen(ShieldHitMessage{}, func(engo.Message) { s.queue(toneShieldHit) })
}

func (s *SoundSystem) queue(t Tone) {
	for _, q := range s.queued {
		if q == t {
			return
		}
	}
	s.queued = append(s.queued, t)
}

func (*SoundSystem) Priority() int { return prioritySound }

func (*SoundSystem) Remove(ecs.BasicEntity) {}

func (s *SoundSystem) Update(dt float32) {
	if s.Speaker == nil {
		s.queued = s.queued[:0]
		return
	}
	for _, t := range s.queued {
		if err := s.Speaker.Play(t); err != nil {
			log.Printf("Unable to play tone %+v: %v", t, err)
		}
	}
	s.queued = s.queued[:0]
}

type BeepSpeaker struct {
	rate beep.SampleRate
}

// NewBeepSpeaker opens the audio device.
func NewBeepSpeaker() (*BeepSpeaker, error) {
	rate := beep.SampleRate(44100)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initialising speaker: %w", err)
	}
	return &BeepSpeaker{rate: rate}, nil
}

func (bs *BeepSpeaker) Play(t Tone) error {
	sine, err := generators.SineTone(bs.rate, t.Freq)
	if err != nil {
		return fmt.Errorf("sine tone %v: %w", t.Freq, err)
	}
	speaker.Play(beep.Take(bs.rate.N(t.Duration), sine))
	return nil
}

func (bs *BeepSpeaker) Close() {
	speaker.Close()
}
