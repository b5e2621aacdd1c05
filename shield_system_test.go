package yars

import (
	"image/color"
	"testing"
)

func TestShieldRemovesBrokenBlocks(t *testing.T) {
	a := newTestArena()
	ss := &ShieldSystem{A: a}
	healthy := placeShield(a, 0, 0, 10)
	placeShield(a, 0, 30, 0)
	placeShield(a, 0, 60, -5)

	ss.Update(frame)

	if len(a.Shields) != 1 || a.Shields[0] != healthy {
		t.Errorf("got %d blocks, want only the healthy one", len(a.Shields))
	}
}

func TestShieldFollowsQotile(t *testing.T) {
	a := newTestArena()
	ss := &ShieldSystem{A: a}
	q := placeQotile(a, 400, 0)
	a.ResetShield()
	first := a.Shields[0]

	q.Pos[1] = 100
	ss.Update(frame)

	if want := q.Pos.Add(first.Offset); first.Pos != want {
		t.Errorf("block at %v, want %v", first.Pos, want)
	}
}

func TestShieldColor(t *testing.T) {
	if got := shieldColor(10, 10); got != color.White {
		t.Errorf("full health got %v", got)
	}
	if got := shieldColor(5, 10); got != (color.RGBA{255, 127, 127, 255}) {
		t.Errorf("half health got %v", got)
	}
	if got := shieldColor(-3, 10); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("broken got %v", got)
	}
}
