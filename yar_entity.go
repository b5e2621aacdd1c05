package yars

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Yar is the player.
type Yar struct {
	ecs.BasicEntity
	common.SpaceComponent
	common.RenderComponent
	Transform

	// Sheet is the sprite sheet the Yar was cut from; the cannon borrows it.
	Sheet *common.Spritesheet
}

func (a *Arena) NewYar() *Yar {
	cfg := a.Config
	bounds := cfg.YarBounds()

	yar := &Yar{
		BasicEntity:     ecs.NewBasic(),
		RenderComponent: a.sprite(cfg.YarSprite),
		SpaceComponent:  common.SpaceComponent{Width: bounds.X(), Height: bounds.Y()},
		Transform: Transform{
			Pos: mgl32.Vec3{-cfg.ScreenWidth/2 + 2*bounds.X(), 0, 0},
		},
		Sheet: a.Sheet,
	}
	yar.RenderComponent.SetZIndex(zYar)
	a.place(yar.Transform, &yar.SpaceComponent)

	return yar
}
