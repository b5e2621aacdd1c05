package yars

import (
	"fmt"

	"github.com/EngoEngine/ecs"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// keyHold is how long a terminal key press counts as held. Terminals only
// report presses, so movement keys latch for a short while.
const keyHold float32 = 0.15

// TerminalInput reads key events from a tcell screen and serves them as
// PlayerInput.
type TerminalInput struct {
	Screen tcell.Screen
	Quit   func()

	events chan tcell.Event
	up     float32
	down   float32
	left   float32
	right  float32
	fire   bool
}

// New starts the goroutine that polls the screen for events.
func (ti *TerminalInput) New(*ecs.World) {
	ti.events = make(chan tcell.Event, 64)
	go func() {
		for {
			ev := ti.Screen.PollEvent()
			if ev == nil {
				close(ti.events)
				return
			}
			ti.events <- ev
		}
	}()
}

func (*TerminalInput) Priority() int { return priorityTerminalInput }

func (*TerminalInput) Remove(ecs.BasicEntity) {}

func (ti *TerminalInput) Update(dt float32) {
	ti.up -= dt
	ti.down -= dt
	ti.left -= dt
	ti.right -= dt

	for {
		select {
		case ev, ok := <-ti.events:
			if !ok {
				ti.events = nil
				return
			}
			ti.HandleEvent(ev)
		default:
			return
		}
	}
}

func (ti *TerminalInput) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	switch key.Key() {
	case tcell.KeyUp:
		ti.up = keyHold
	case tcell.KeyDown:
		ti.down = keyHold
	case tcell.KeyLeft:
		ti.left = keyHold
	case tcell.KeyRight:
		ti.right = keyHold
	case tcell.KeyEscape, tcell.KeyCtrlC:
		ti.quit()
	case tcell.KeyRune:
		switch key.Rune() {
		case 'w', 'k':
			ti.up = keyHold
		case 's', 'j':
			ti.down = keyHold
		case 'a', 'h':
			ti.left = keyHold
		case 'd', 'l':
			ti.right = keyHold
		case ' ':
			ti.fire = true
		case 'q':
			ti.quit()
		}
	}
}

func (ti *TerminalInput) quit() {
	if ti.Quit != nil {
		ti.Quit()
	}
}

func (ti *TerminalInput) Poll() PlayerInput {
	p := PlayerInput{
		Up:    ti.up > 0,
		Down:  ti.down > 0,
		Left:  ti.left > 0,
		Right: ti.right > 0,
		Fire:  ti.fire,
	}
	ti.fire = false
	return p
}

// Canvas is the part of tcell.Screen the terminal renderer draws on.
type Canvas interface {
	Clear()
	Size() (int, int)
	SetContent(x int, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// TerminalSystem draws the arena as text, one rune per entity, with a status
// line on the bottom row.
type TerminalSystem struct {
	A      *Arena
	Canvas Canvas
}

func (*TerminalSystem) Priority() int { return priorityTerminalDraw }

func (*TerminalSystem) Remove(ecs.BasicEntity) {}

var (
	styleYar    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleQotile = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleShield = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleCannon = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

func (ts *TerminalSystem) Update(dt float32) {
	ts.Canvas.Clear()
	cols, rows := ts.Canvas.Size()
	if cols <= 0 || rows <= 1 {
		ts.Canvas.Show()
		return
	}
	rows--

	for _, b := range ts.A.Shields {
		r := '#'
		if b.Health < ts.A.Config.ShieldHealth {
			r = '+'
		}
		ts.plot(b.Pos, cols, rows, r, styleShield)
	}
	if q := ts.A.Qotile; q != nil {
		ts.plot(q.Pos, cols, rows, 'Q', styleQotile)
	}
	if y := ts.A.Yar; y != nil {
		ts.plot(y.Pos, cols, rows, '>', styleYar)
	}
	if c := ts.A.Cannon; c != nil {
		r := '|'
		if c.Launched {
			r = '='
		}
		ts.plot(c.Pos, cols, rows, r, styleCannon)
	}

	status := fmt.Sprintf(" SCORE %06d  LIVES %d  TRONS %d ", ts.A.Score, ts.A.Lives, ts.A.Trons)
	if ts.A.GameOver {
		status += " GAME OVER "
	}
	for i, r := range status {
		if i >= cols {
			break
		}
		ts.Canvas.SetContent(i, rows, r, nil, styleStatus)
	}
	ts.Canvas.Show()
}

func (ts *TerminalSystem) plot(pos mgl32.Vec3, cols, rows int, r rune, style tcell.Style) {
	x, y, ok := cellFor(pos, ts.A.Config.Screen(), cols, rows)
	if !ok {
		return
	}
	ts.Canvas.SetContent(x, y, r, nil, style)
}

// cellFor maps a world position onto a cols x rows character grid.
func cellFor(pos mgl32.Vec3, screen mgl32.Vec2, cols, rows int) (int, int, bool) {
	if IsOffscreen(pos, screen) {
		return 0, 0, false
	}
	fx := (pos.X() + screen.X()/2) / screen.X()
	fy := (pos.Y() + screen.Y()/2) / screen.Y()
	x := int(fx * float32(cols))
	y := int(fy * float32(rows))
	if x >= cols {
		x = cols - 1
	}
	if y >= rows {
		y = rows - 1
	}
	return x, y, true
}
