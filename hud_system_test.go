package yars

import "testing"

func TestHudText(t *testing.T) {
	a := newTestArena()
	a.Score = 1069
	a.Trons = 2

	if got, want := hudText(a), "SCORE 001069  LIVES 4  TRONS 2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	a.GameOver = true
	if got, want := hudText(a), "SCORE 001069  LIVES 4  TRONS 2  GAME OVER"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHudRefreshTracksScore(t *testing.T) {
	a := newTestArena()
	hs := &HudSystem{A: a}
	hs.New(nil)

	a.Score = 1000
	hs.Update(frame)

	if hs.text != hudText(a) {
		t.Errorf("hud shows %q", hs.text)
	}
}
