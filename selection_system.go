package yars

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
)

var (
	colorIdle     = color.RGBA{255, 255, 255, 255}
	colorSelected = color.RGBA{255, 0, 0, 255}
)

type selectable struct {
	*ecs.BasicEntity
	*common.RenderComponent
	exec func()
}

// SelectionSystem is a vertical menu: Up and Down move the highlight and
// Enter or Fire runs the highlighted entry.
type SelectionSystem struct {
	selectables []selectable
	current     int
}

func (ss *SelectionSystem) Reset() {
	ss.selectables = []selectable{}
	ss.current = 0
}

func (*SelectionSystem) Remove(ecs.BasicEntity) {}

func (ss *SelectionSystem) Update(dt float32) {
	up := engo.Input.Button("Up").JustReleased()
	down := engo.Input.Button("Down").JustReleased()
	enter := engo.Input.Button("Enter").JustReleased() || engo.Input.Button("Fire").JustReleased()
	ss.step(up, down, enter)
}

func (ss *SelectionSystem) step(up, down, enter bool) {
	if len(ss.selectables) == 0 {
		return
	}
	ss.selectables[ss.current].RenderComponent.Color = colorIdle
	if up {
		ss.current--
	}
	if down {
		ss.current++
	}
	if ss.current < 0 {
		ss.current = len(ss.selectables) - 1
	}
	if ss.current >= len(ss.selectables) {
		ss.current = 0
	}
	if enter {
		log.Debugf("Menu entry %d selected", ss.current)
		ss.selectables[ss.current].exec()
		return
	}
	ss.selectables[ss.current].RenderComponent.Color = colorSelected
}

func (ss *SelectionSystem) Add(e *ecs.BasicEntity, rc *common.RenderComponent, exec func()) {
	ss.selectables = append(ss.selectables, selectable{e, rc, exec})
}
