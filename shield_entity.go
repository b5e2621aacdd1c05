package yars

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo/common"
	"github.com/go-gl/mathgl/mgl32"
)

type ShieldHealth struct {
	Health int
}

// ShieldBlock is one cell of the wall in front of the Qotile. Offset is its
// place relative to the Qotile, which it follows.
type ShieldBlock struct {
	ecs.BasicEntity
	common.SpaceComponent
	common.RenderComponent
	Transform
	ShieldHealth

	Offset mgl32.Vec3
}

// ResetShield throws away what is left of the shield and builds a full one,
// ShieldCols blocks deep, to the left of the Qotile.
func (a *Arena) ResetShield() {
	for _, b := range a.Shields {
		a.removeEntity(b.BasicEntity)
	}
	a.Shields = nil

	cfg := a.Config
	block := cfg.ShieldBounds()
	qotile := cfg.QotileBounds()

	var anchor mgl32.Vec3
	if a.Qotile != nil {
		anchor = a.Qotile.Pos
	}

	for col := 0; col < cfg.ShieldCols; col++ {
		for row := 0; row < cfg.ShieldRows; row++ {
			offset := mgl32.Vec3{
				-qotile.X()/2 - block.X()*(float32(col)+0.5),
				block.Y() * (float32(row) - float32(cfg.ShieldRows-1)/2),
				0,
			}
			b := &ShieldBlock{
				BasicEntity:     ecs.NewBasic(),
				RenderComponent: a.sprite(cfg.ShieldSprite),
				SpaceComponent:  common.SpaceComponent{Width: block.X(), Height: block.Y()},
				Transform:       Transform{Pos: anchor.Add(offset)},
				ShieldHealth:    ShieldHealth{Health: cfg.ShieldHealth},
				Offset:          offset,
			}
			b.RenderComponent.SetZIndex(zShield)
			a.place(b.Transform, &b.SpaceComponent)
			a.Shields = append(a.Shields, b)
			a.addSprite(&b.BasicEntity, &b.RenderComponent, &b.SpaceComponent)
		}
	}
}

// removeShields drops every block for which drop returns true and reports how
// many went.
func (a *Arena) removeShields(drop func(*ShieldBlock) bool) int {
	kept := a.Shields[:0]
	for _, b := range a.Shields {
		if !drop(b) {
			kept = append(kept, b)
			continue
		}
		a.removeEntity(b.BasicEntity)
	}
	removed := len(a.Shields) - len(kept)
	for i := len(kept); i < len(a.Shields); i++ {
		a.Shields[i] = nil
	}
	a.Shields = kept
	return removed
}
