package yars

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
)

// SpriteAdder is satisfied by common.RenderSystem. A nil SpriteAdder runs the
// arena without graphics.
type SpriteAdder interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
}

// Arena is the shared state every gameplay system reads: the handful of
// entities on screen and the running score.
type Arena struct {
	Config  Config
	Mailbox *engo.MessageManager
	World   *ecs.World
	Render  SpriteAdder
	Sheet   *common.Spritesheet

	Yar     *Yar
	Qotile  *Qotile
	Shields []*ShieldBlock
	Cannon  *Cannon

	Score    int
	Lives    int
	Trons    int
	GameOver bool
}

func NewArena(cfg Config, mailbox *engo.MessageManager) *Arena {
	return &Arena{
		Config:  cfg,
		Mailbox: mailbox,
		Lives:   cfg.Lives,
	}
}

func (a *Arena) dispatch(msg engo.Message) {
	log.Debugf("Dispatch %s", msg.Type())
	a.Mailbox.Dispatch(msg)
}

func (a *Arena) listen(msg engo.Message, fn func(engo.Message)) {
	a.Mailbox.Listen(msg.Type(), fn)
}

// place moves a SpaceComponent so that its centre sits on t, converting from
// world space to screen space.
func (a *Arena) place(t Transform, sc *common.SpaceComponent) {
	sc.Position = engo.Point{
		X: t.Pos.X() + a.Config.ScreenWidth/2 - sc.Width/2,
		Y: t.Pos.Y() + a.Config.ScreenHeight/2 - sc.Height/2,
	}
}

func (a *Arena) sprite(index int) common.RenderComponent {
	rc := common.RenderComponent{
		Scale: engo.Point{X: a.Config.ScreenScale, Y: a.Config.ScreenScale},
	}
	if a.Sheet != nil {
		rc.Drawable = a.Sheet.Drawable(index)
	}
	return rc
}

func (a *Arena) addSprite(basic *ecs.BasicEntity, rc *common.RenderComponent, sc *common.SpaceComponent) {
	if a.Render == nil || rc.Drawable == nil {
		return
	}
	a.Render.Add(basic, rc, sc)
}

func (a *Arena) removeEntity(basic ecs.BasicEntity) {
	if a.World != nil {
		a.World.RemoveEntity(basic)
	}
}
