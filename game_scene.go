package yars

import (
	"bytes"
	"image/color"
	"math/rand"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// FontURL is the name the gofont small caps face is registered under.
const FontURL = "go.ttf"

// LoadFont registers the built in font with engo's file loader.
func LoadFont() error {
	return engo.Files.LoadReaderData(FontURL, bytes.NewReader(gosmallcaps.TTF))
}

// GameScene wires the gameplay systems into an engo world. With Terminal set
// the game draws to that screen and reads keys from it; otherwise it renders
// sprites through engo.
type GameScene struct {
	Config   Config
	Terminal tcell.Screen
	Speaker  Speaker
	Seed     int64

	Arena *Arena
}

func (*GameScene) Type() string { return "Game" }

func (gs *GameScene) Preload() {
	if gs.Terminal != nil {
		return
	}
	if err := LoadFont(); err != nil {
		log.Printf("Unable to load font: %v", err)
	}
	if err := engo.Files.Load(gs.Config.SpriteSheet); err != nil {
		log.Printf("Unable to load sprite sheet %s: %v", gs.Config.SpriteSheet, err)
	}
}

func (gs *GameScene) Setup(u engo.Updater) {
	w, _ := u.(*ecs.World)

	a := NewArena(gs.Config, engo.Mailbox)
	a.World = w
	gs.Arena = a

	var input InputSource
	if gs.Terminal != nil {
		ti := &TerminalInput{Screen: gs.Terminal, Quit: engo.Exit}
		w.AddSystem(ti)
		w.AddSystem(&TerminalSystem{A: a, Canvas: gs.Terminal})
		input = ti
	} else {
		input = gs.setupGraphics(w, a)
	}

	w.AddSystem(&YarSystem{A: a, Input: input})
	w.AddSystem(&QotileSystem{A: a, Rand: rand.New(rand.NewSource(gs.Seed))})
	w.AddSystem(&ZorlonCannonSystem{A: a})
	w.AddSystem(&ShieldSystem{A: a})
	w.AddSystem(&SoundSystem{A: a, Speaker: gs.Speaker})

	log.Printf("Game scene ready, %d lives", a.Lives)
}

func (gs *GameScene) setupGraphics(w *ecs.World, a *Arena) InputSource {
	cfg := gs.Config

	common.SetBackground(color.Black)
	rs := &common.RenderSystem{}
	w.AddSystem(rs)
	a.Render = rs

	a.Sheet = common.NewSpritesheetFromFile(cfg.SpriteSheet, cfg.SpriteCell, cfg.SpriteCell)
	if a.Sheet == nil {
		log.Printf("No sprite sheet, entities will be invisible")
	}

	font := &common.Font{URL: FontURL, FG: color.White, Size: 24}
	if err := font.CreatePreloaded(); err != nil {
		log.Printf("Unable to create font: %v", err)
		font = nil
	}
	w.AddSystem(&HudSystem{A: a, Font: font, Offset: engo.Point{X: 8, Y: 8}})

	RegisterButtons()
	return KeyboardInput{}
}
