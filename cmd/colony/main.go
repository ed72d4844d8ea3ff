//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cellview/internal/app"
	"cellview/internal/core"
	_ "cellview/internal/sims/colony"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(nil)
	world, ok := sim.(app.RenderWorld)
	if !ok {
		log.Fatalf("sim %q does not expose the render query interfaces", cfg.Sim)
	}
	world.Reset(cfg.Seed)

	game := app.New(world, cfg.Zoom, cfg.Seed)
	size := world.Size()

	ebiten.SetWindowTitle("cellview — " + world.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Zoom, size.H*cfg.Zoom)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
