package yars

import (
	"image/color"

	"github.com/EngoEngine/ecs"
)

// ShieldSystem keeps the shield glued to the Qotile and clears out blocks the
// cannon has broken.
type ShieldSystem struct {
	A *Arena
}

func (*ShieldSystem) Priority() int { return priorityShield }

func (*ShieldSystem) Remove(ecs.BasicEntity) {}

func (ss *ShieldSystem) Update(dt float32) {
	ss.A.removeShields(func(b *ShieldBlock) bool {
		if b.Health > 0 {
			return false
		}
		log.Debugf("Shield block broken at %+v", b.Pos)
		return true
	})

	q := ss.A.Qotile
	for _, b := range ss.A.Shields {
		if q != nil {
			b.Pos = q.Pos.Add(b.Offset)
		}
		b.Color = shieldColor(b.Health, ss.A.Config.ShieldHealth)
		ss.A.place(b.Transform, &b.SpaceComponent)
	}
}

// shieldColor fades a block from white towards red as it loses health.
func shieldColor(health, full int) color.Color {
	if full <= 0 || health >= full {
		return color.White
	}
	if health < 0 {
		health = 0
	}
	shade := uint8(255 * health / full)
	return color.RGBA{255, shade, shade, 255}
}
