package main

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"github.com/ScottBrooks/yars"
	log "github.com/sirupsen/logrus"
)

type MainMenuScene struct {
	Font *common.Font
}

type Text struct {
	ecs.BasicEntity
	common.SpaceComponent
	common.RenderComponent
}

func newText(font *common.Font, text string, pos engo.Point) *Text {
	return &Text{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Drawable:    common.Text{Font: font, Text: text},
			Scale:       engo.Point{X: 1, Y: 1},
			StartZIndex: 100,
		},
		SpaceComponent: common.SpaceComponent{
			Position: pos,
			Width:    400,
			Height:   64,
		},
	}
}

func (mm *MainMenuScene) Setup(u engo.Updater) {
	w, _ := u.(*ecs.World)

	yars.RegisterButtons()

	common.SetBackground(color.Black)
	rs := common.RenderSystem{}
	ss := yars.SelectionSystem{}
	w.AddSystem(&rs)
	w.AddSystem(&ss)

	mm.Font = &common.Font{
		URL:  yars.FontURL,
		FG:   color.White,
		Size: 64,
	}
	if err := mm.Font.CreatePreloaded(); err != nil {
		log.Fatalf("Unable to create menu font: %v", err)
	}

	title := newText(mm.Font, "Yars' Revenge", engo.Point{X: 260, Y: 80})
	start := newText(mm.Font, "Start", engo.Point{X: 400, Y: 320})
	exit := newText(mm.Font, "Exit", engo.Point{X: 400, Y: 440})

	for _, t := range []*Text{title, start, exit} {
		rs.Add(&t.BasicEntity, &t.RenderComponent, &t.SpaceComponent)
	}

	ss.Add(&start.BasicEntity, &start.RenderComponent, func() {
		ss.Reset()
		engo.SetSceneByName("Game", true)
	})
	ss.Add(&exit.BasicEntity, &exit.RenderComponent, func() {
		engo.Exit()
	})
}

func (*MainMenuScene) Preload() {
	if err := yars.LoadFont(); err != nil {
		log.Fatalf("Error loading font: %v", err)
	}
}

func (*MainMenuScene) Type() string { return "Menu" }
