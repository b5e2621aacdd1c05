package yars

import (
	"fmt"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
)

type HudElement struct {
	ecs.BasicEntity
	common.SpaceComponent
	common.RenderComponent
}

// HudSystem keeps the score line in the top left corner up to date.
type HudSystem struct {
	A    *Arena
	Font *common.Font

	Offset engo.Point
	text   string
	line   *HudElement
}

func (hs *HudSystem) New(*ecs.World) {
	hs.line = &HudElement{
		BasicEntity:    ecs.NewBasic(),
		SpaceComponent: common.SpaceComponent{Position: hs.Offset},
		RenderComponent: common.RenderComponent{
			Scale: engo.Point{X: 1, Y: 1},
		},
	}
	hs.line.RenderComponent.SetZIndex(zHud)
	hs.refresh()
	if hs.A.Render != nil && hs.Font != nil {
		hs.A.Render.Add(&hs.line.BasicEntity, &hs.line.RenderComponent, &hs.line.SpaceComponent)
	}
}

func (*HudSystem) Priority() int { return priorityHud }

func (*HudSystem) Remove(ecs.BasicEntity) {}

func (hs *HudSystem) Update(dt float32) {
	hs.refresh()
}

func (hs *HudSystem) refresh() {
	text := hudText(hs.A)
	if text == hs.text || hs.line == nil {
		return
	}
	hs.text = text
	if hs.Font != nil {
		hs.line.Drawable = common.Text{Font: hs.Font, Text: text}
	}
}

func hudText(a *Arena) string {
	text := fmt.Sprintf("SCORE %06d  LIVES %d  TRONS %d", a.Score, a.Lives, a.Trons)
	if a.GameOver {
		text += "  GAME OVER"
	}
	return text
}
