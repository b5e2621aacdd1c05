package yars

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// grid is a Canvas backed by a slice of runes.
type grid struct {
	cols, rows int
	cells      []rune
	shown      int
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: cols, rows: rows, cells: make([]rune, cols*rows)}
	g.Clear()
	return g
}

func (g *grid) Clear() {
	for i := range g.cells {
		g.cells[i] = ' '
	}
}

func (g *grid) Size() (int, int) { return g.cols, g.rows }

func (g *grid) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return
	}
	g.cells[y*g.cols+x] = r
}

func (g *grid) Show() { g.shown++ }

func (g *grid) at(x, y int) rune { return g.cells[y*g.cols+x] }

func (g *grid) row(y int) string { return string(g.cells[y*g.cols : (y+1)*g.cols]) }

func TestCellFor(t *testing.T) {
	screen := mgl32.Vec2{100, 100}
	var tests = []struct {
		pos  mgl32.Vec3
		x, y int
		ok   bool
	}{
		{mgl32.Vec3{0, 0, 0}, 5, 5, true},
		{mgl32.Vec3{-50, -50, 0}, 0, 0, true},
		{mgl32.Vec3{50, 50, 0}, 9, 9, true},
		{mgl32.Vec3{60, 0, 0}, 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := cellFor(tt.pos, screen, 10, 10)
		if x != tt.x || y != tt.y || ok != tt.ok {
			t.Errorf("cellFor(%v) = %d,%d,%v, want %d,%d,%v", tt.pos, x, y, ok, tt.x, tt.y, tt.ok)
		}
	}
}

func TestTerminalDrawsArena(t *testing.T) {
	a := newTestArena()
	a.Score = 42
	placeYar(a, -a.Config.ScreenWidth/4, 0)
	placeQotile(a, a.Config.ScreenWidth/4, 0)
	placeCannon(a, 0, -a.Config.ScreenHeight/4, true)
	g := newGrid(40, 21)
	ts := &TerminalSystem{A: a, Canvas: g}

	ts.Update(frame)

	if g.shown != 1 {
		t.Errorf("shown %d times, want 1", g.shown)
	}
	if r := g.at(10, 10); r != '>' {
		t.Errorf("yar cell has %q", r)
	}
	if r := g.at(30, 10); r != 'Q' {
		t.Errorf("qotile cell has %q", r)
	}
	if r := g.at(20, 5); r != '=' {
		t.Errorf("cannon cell has %q", r)
	}
	if status := g.row(20); !strings.Contains(status, "SCORE 000042") {
		t.Errorf("status line %q", status)
	}
}

func TestTerminalInputLatchesKeys(t *testing.T) {
	ti := &TerminalInput{}

	ti.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	ti.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	p := ti.Poll()
	if !p.Up || !p.Fire || p.Down {
		t.Fatalf("got %+v", p)
	}

	p = ti.Poll()
	if !p.Up || p.Fire {
		t.Errorf("fire should be an edge and up should be held: %+v", p)
	}

	ti.Update(keyHold * 2)
	if p := ti.Poll(); p.Up {
		t.Errorf("up still held after release time: %+v", p)
	}
}

func TestTerminalInputQuit(t *testing.T) {
	quit := 0
	ti := &TerminalInput{Quit: func() { quit++ }}

	ti.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	ti.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))

	if quit != 2 {
		t.Errorf("quit called %d times, want 2", quit)
	}
}
