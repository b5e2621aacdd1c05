package yars

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Qotile is the boss hiding behind the shield on the right edge.
type Qotile struct {
	ecs.BasicEntity
	common.SpaceComponent
	common.RenderComponent
	Transform

	// Dir is +1 moving down the screen, -1 moving up.
	Dir float32
}

func (a *Arena) NewQotile() *Qotile {
	cfg := a.Config
	bounds := cfg.QotileBounds()

	q := &Qotile{
		BasicEntity:     ecs.NewBasic(),
		RenderComponent: a.sprite(cfg.QotileSprite),
		SpaceComponent:  common.SpaceComponent{Width: bounds.X(), Height: bounds.Y()},
		Transform: Transform{
			Pos: mgl32.Vec3{cfg.ScreenWidth/2 - bounds.X(), 0, 0},
		},
		Dir: 1,
	}
	q.RenderComponent.SetZIndex(zQotile)
	a.place(q.Transform, &q.SpaceComponent)

	return q
}
