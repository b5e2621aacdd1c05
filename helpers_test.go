package yars

import (
	"github.com/EngoEngine/engo"
	"github.com/go-gl/mathgl/mgl32"
)

const frame float32 = 1.0 / 60

func newTestArena() *Arena {
	return NewArena(DefaultConfig(), &engo.MessageManager{})
}

// recorder collects the types of messages dispatched on an arena's mailbox.
type recorder struct {
	got []string
}

func record(a *Arena, msgs ...engo.Message) *recorder {
	r := &recorder{}
	for _, m := range msgs {
		a.listen(m, func(msg engo.Message) { r.got = append(r.got, msg.Type()) })
	}
	return r
}

func (r *recorder) count(msg engo.Message) int {
	n := 0
	for _, t := range r.got {
		if t == msg.Type() {
			n++
		}
	}
	return n
}

func placeYar(a *Arena, x, y float32) *Yar {
	a.Yar = &Yar{Transform: Transform{Pos: mgl32.Vec3{x, y, 0}}}
	return a.Yar
}

func placeCannon(a *Arena, x, y float32, launched bool) *Cannon {
	a.Cannon = &Cannon{
		Transform:    Transform{Pos: mgl32.Vec3{x, y, 0}},
		ZorlonCannon: ZorlonCannon{Launched: launched},
	}
	return a.Cannon
}

func placeQotile(a *Arena, x, y float32) *Qotile {
	a.Qotile = &Qotile{Transform: Transform{Pos: mgl32.Vec3{x, y, 0}}, Dir: 1}
	return a.Qotile
}

func placeShield(a *Arena, x, y float32, health int) *ShieldBlock {
	b := &ShieldBlock{
		Transform:    Transform{Pos: mgl32.Vec3{x, y, 0}},
		ShieldHealth: ShieldHealth{Health: health},
	}
	a.Shields = append(a.Shields, b)
	return b
}

// scriptedInput replays a fixed list of frames, then stays idle.
type scriptedInput struct {
	frames []PlayerInput
}

func (si *scriptedInput) Poll() PlayerInput {
	if len(si.frames) == 0 {
		return PlayerInput{}
	}
	p := si.frames[0]
	si.frames = si.frames[1:]
	return p
}

func approx(a, b float32) bool {
	return mgl32.Abs(a-b) < 1e-3
}
