package yars

import (
	"errors"
	"testing"
)

type fakeSpeaker struct {
	played []Tone
	err    error
}

func (fs *fakeSpeaker) Play(t Tone) error {
	fs.played = append(fs.played, t)
	return fs.err
}

func TestSoundPlaysOncePerKindPerFrame(t *testing.T) {
	a := newTestArena()
	sp := &fakeSpeaker{}
	s := &SoundSystem{A: a, Speaker: sp}
	s.Listen()

	a.dispatch(ShieldHitMessage{Health: 5})
	a.dispatch(ShieldHitMessage{Health: 0})
	a.dispatch(QotileDiedMessage{})
	s.Update(frame)

	if len(sp.played) != 2 {
		t.Fatalf("played %v, want two tones", sp.played)
	}
	if sp.played[0] != toneShieldHit || sp.played[1] != toneQotileDied {
		t.Errorf("played %v", sp.played)
	}

	s.Update(frame)
	if len(sp.played) != 2 {
		t.Errorf("tones replayed on an idle frame")
	}
}

func TestSoundSurvivesSpeakerErrors(t *testing.T) {
	a := newTestArena()
	sp := &fakeSpeaker{err: errors.New("no device")}
	s := &SoundSystem{A: a, Speaker: sp}
	s.Listen()

	a.dispatch(YarDiedMessage{})
	a.dispatch(CannonLaunchedMessage{})
	s.Update(frame)

	if len(sp.played) != 2 {
		t.Errorf("played %v, want both tones attempted", sp.played)
	}
}

func TestSoundWithoutSpeakerDropsQueue(t *testing.T) {
	a := newTestArena()
	s := &SoundSystem{A: a}
	s.Listen()

	a.dispatch(YarDiedMessage{})
	s.Update(frame)

	if len(s.queued) != 0 {
		t.Errorf("queue kept %v", s.queued)
	}
}
