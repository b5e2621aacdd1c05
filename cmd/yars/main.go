package main

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/EngoEngine/engo"
	"github.com/ScottBrooks/yars"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"
)

// findAssets changes into the executable's directory when the assets folder
// is not next to us.
func findAssets() {
	if _, err := os.Stat("assets"); !os.IsNotExist(err) {
		return
	}
	ex, err := os.Executable()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Can't find assets folder, changing our directory to path of exe.")
	if err := os.Chdir(filepath.Dir(ex)); err != nil {
		log.Fatal(err)
	}
	if _, err := os.Stat("assets"); os.IsNotExist(err) {
		log.Fatal("Still can't find assets folder, quitting")
	}
}

func main() {
	configPath := flag.String("config", "", "yaml file overriding the default tunables")
	terminal := flag.Bool("terminal", false, "play in the terminal instead of a window")
	mute := flag.Bool("mute", false, "disable sound")
	debug := flag.Bool("debug", false, "verbose logging")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for the Qotile")
	flag.Parse()

	if *debug {
		yars.SetLevel(log.DebugLevel)
	}

	cfg := yars.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = yars.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	gs := &yars.GameScene{Config: cfg, Seed: *seed}

	if !*mute {
		sp, err := yars.NewBeepSpeaker()
		if err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			defer sp.Close()
			gs.Speaker = sp
		}
	}

	useGraphics := !*terminal && (os.Getenv("DISPLAY") != "" || runtime.GOOS == "windows" || runtime.GOOS == "darwin")
	opts := engo.RunOptions{
		Title:          "Yars' Revenge",
		Width:          int(cfg.ScreenWidth),
		Height:         int(cfg.ScreenHeight),
		StandardInputs: true,
		HeadlessMode:   !useGraphics,
		FPSLimit:       cfg.FPS,
	}

	if !useGraphics {
		screen, err := tcell.NewScreen()
		if err != nil {
			log.Fatal(err)
		}
		if err := screen.Init(); err != nil {
			log.Fatal(err)
		}
		defer screen.Fini()
		// Keep log lines off the game screen.
		log.SetOutput(colorable.NewNonColorable(os.Stderr))
		if !*debug {
			log.SetLevel(log.WarnLevel)
		}
		gs.Terminal = screen

		session := yars.NewSession()
		log.Printf("Session %s starting in the terminal", session)
		engo.Run(opts, gs)
		return
	}

	log.SetOutput(colorable.NewColorableStdout())
	session := yars.NewSession()
	log.Printf("Session %s starting", session)

	findAssets()
	engo.RegisterScene(gs)
	engo.Run(opts, &MainMenuScene{})
}
