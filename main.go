package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/doomerang-interp/config"
	"github.com/automoto/doomerang-interp/fonts"
	"github.com/automoto/doomerang-interp/scenes"
	"github.com/automoto/doomerang-interp/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewSandboxScene(),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	noInterp := flag.Bool("nointerp", false, "Start with render interpolation off")
	debug := flag.Bool("debug", false, "Start with the keyframe overlay on")
	tps := flag.Int("tps", config.Loop.TPS, "Simulation steps per second")
	prof := flag.String("profile", "", "Write a profile to the working directory: cpu|mem")
	seed := flag.Int64("seed", config.Debug.Seed, "Arena random seed")
	flag.Parse()

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown profile mode %q, want cpu or mem", *prof)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Saved settings first, then the command line on top
	if err := systems.InitPersistence(); err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if *noInterp {
		config.Interp.Enabled = false
	}
	if *debug {
		config.Debug.Overlay = true
	}
	if *tps > 0 {
		config.Loop.TPS = *tps
	}
	config.Debug.Seed = *seed

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.Loop.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
