// cmd/painter/main.go
package main

import (
	"flag"
	"log"
	"time"

	"pixel-favicon/internal/app"
	"pixel-favicon/internal/config"
	"pixel-favicon/internal/event"
	"pixel-favicon/internal/export"
	"pixel-favicon/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settingsPath := flag.String("config", "", "path to a TOML settings file")
	outDir := flag.String("out", "", "directory for exported files (overrides output_dir)")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}
	if *outDir != "" {
		settings.OutputDir = *outDir
	}
	palette, err := settings.PaletteColors()
	if err != nil {
		log.Fatal(err)
	}

	dispatcher := event.NewDispatcher()
	exporter := export.NewExporter(export.DefaultSaver(settings.OutputDir))
	painter, err := app.NewPainter(settings, exporter, dispatcher)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewEditorState(sm, painter, dispatcher, palette))
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	log.Printf("grid %dx%d, exporting %dx%d to %s", settings.GridSize, settings.GridSize,
		settings.ExportSize, settings.ExportSize, settings.OutputDir)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Pixel Art Favicon Generator")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
