package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"cellview/internal/core"
	"cellview/internal/render"
	"cellview/internal/sims/colony"
)

type options struct {
	width    int
	height   int
	zoom     int
	steps    int
	every    int
	runs     int
	workers  int
	tps      int
	seed     int64
	out      string
	heatmap  bool
	contours bool
	activity bool
}

func main() {
	var opt options
	flag.IntVar(&opt.width, "w", 160, "grid width")
	flag.IntVar(&opt.height, "h", 160, "grid height")
	flag.IntVar(&opt.zoom, "zoom", 4, "pixel zoom factor")
	flag.IntVar(&opt.steps, "steps", 200, "ticks to simulate per run")
	flag.IntVar(&opt.every, "every", 20, "write a frame every N ticks")
	flag.IntVar(&opt.runs, "runs", 1, "number of seeds to render")
	flag.IntVar(&opt.workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	flag.IntVar(&opt.tps, "tps", 0, "pace each run at N ticks per second (0 runs flat out)")
	flag.Int64Var(&opt.seed, "seed", 42, "base seed; run i uses seed+i")
	flag.StringVar(&opt.out, "out", "snapshots", "output directory")
	flag.BoolVar(&opt.heatmap, "heatmap", false, "render the scent heatmap layer")
	flag.BoolVar(&opt.contours, "contours", false, "render the scent contour layer")
	flag.BoolVar(&opt.activity, "activity", false, "render the activity layer")
	flag.Parse()

	if opt.every <= 0 {
		opt.every = 1
	}
	if opt.workers <= 0 {
		opt.workers = 1
	}

	jobs := make(chan int64)
	var wg sync.WaitGroup
	for i := 0; i < opt.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				frames, err := renderRun(opt, seed)
				if err != nil {
					log.Printf("seed %d: %v", seed, err)
					continue
				}
				log.Printf("seed %d: wrote %d frames", seed, frames)
			}
		}()
	}
	for i := 0; i < opt.runs; i++ {
		jobs <- opt.seed + int64(i)
	}
	close(jobs)
	wg.Wait()
}

// renderRun simulates one seed and exports numbered PNG frames. Each run
// owns its world and surface, so runs render independently in parallel.
func renderRun(opt options, seed int64) (int, error) {
	cfg := colony.DefaultConfig()
	cfg.Width = opt.width
	cfg.Height = opt.height
	cfg.Seed = seed

	world := colony.NewWithConfig(cfg)
	world.Reset(seed)

	surface := render.NewSurface(opt.width, opt.height, opt.zoom)
	surface.SetWrap(opt.width, opt.height)

	dir := filepath.Join(opt.out, fmt.Sprintf("seed-%d", seed))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}

	// Each run paces itself, so parallel workers stay independent.
	var pacer *core.FixedStep
	if opt.tps > 0 {
		pacer = core.NewFixedStep(opt.tps)
	}

	frames := 0
	for step := 0; step <= opt.steps; step++ {
		if step > 0 {
			if pacer != nil {
				for !pacer.ShouldStep() {
					time.Sleep(time.Millisecond)
				}
			}
			world.Step()
		}
		if step%opt.every != 0 {
			continue
		}
		if err := renderFrame(opt, world, surface); err != nil {
			return frames, err
		}
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", frames))
		if err := render.WriteImage(surface, path); err != nil {
			return frames, err
		}
		frames++
	}
	return frames, nil
}

func renderFrame(opt options, world *colony.World, surface *render.Surface) error {
	err := surface.Acquire(func(fb *render.Frame) error {
		fb.Clear(render.RGB{R: 12, G: 12, B: 16}, 1)
		return nil
	})
	if err != nil {
		return err
	}

	if opt.heatmap {
		r := render.FieldRenderer{Surface: surface}
		if err := r.DrawHeatmap(world.Scent(), render.MustHex("2E8B57")); err != nil {
			return err
		}
	}
	entities := render.EntityRenderer{Surface: surface, Entities: world, Index: world}
	if err := entities.DrawEntities(-1, render.PerEntity(render.HashColor)); err != nil {
		return err
	}
	if opt.activity {
		r := render.ActivityRenderer{
			Surface:     surface,
			Labels:      world.Labels(),
			Entities:    world,
			Constraints: world.Constraints(),
		}
		if err := r.DrawActivity(-1, nil, nil); err != nil {
			return err
		}
	}
	borders := render.BorderRenderer{Surface: surface, Labels: world.Labels(), Entities: world}
	if err := borders.DrawBorders(-1, render.MustHex("FFFFFF")); err != nil {
		return err
	}
	if opt.contours {
		r := render.FieldRenderer{Surface: surface}
		if err := r.DrawContours(world.Scent(), 10, render.MustHex("FF8030")); err != nil {
			return err
		}
	}
	return nil
}
