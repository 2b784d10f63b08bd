package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/olivierh59500/cellfield/field"
	"github.com/olivierh59500/cellfield/raster"
	"github.com/pkg/profile"
)

var (
	widthFlag      = flag.Int("width", 800, "window width in logical pixels")
	heightFlag     = flag.Int("height", 600, "window height in logical pixels")
	configFlag     = flag.String("config", "config.json", "tuning file loaded at startup and by the L/S keys")
	seedFlag       = flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	reducedFlag    = flag.Bool("reduced-motion", false, "disable animation and show a static background")
	turbulenceFlag = flag.Float64("turbulence", -1, "override turbulence strength (0 disables)")
	snapshotFlag   = flag.String("snapshot", "", "render headless to this PNG file instead of opening a window")
	ticksFlag      = flag.Int("ticks", 120, "ticks to run before writing the snapshot")
	profileFlag    = flag.String("profile", "", "write a cpu or mem profile to the working directory")
)

// envBool reads a boolean environment override
func envBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("ignoring %s=%q: not a boolean", key, v)
	}
	return fallback
}

// envInt64 reads an integer environment override
func envInt64(key string, fallback int64) int64 {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		log.Printf("ignoring %s=%q: not an integer", key, v)
	}
	return fallback
}

// loadConfig falls back to the defaults when the file is missing or broken
func loadConfig(path string) field.Config {
	if _, err := os.Stat(path); err != nil {
		return field.DefaultConfig()
	}
	cfg, err := field.LoadConfig(path)
	if err != nil {
		log.Printf("using default config: %v", err)
		return field.DefaultConfig()
	}
	log.Printf("config loaded from %s", path)
	return cfg
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run does the work of main and returns instead of exiting, so deferred
// profile writers always flush
func run() error {
	switch *profileFlag {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		log.Printf("unknown profile mode %q, profiling disabled", *profileFlag)
	}

	cfg := loadConfig(*configFlag)
	if *turbulenceFlag >= 0 {
		cfg.Turbulence.Strength = *turbulenceFlag
	}
	opts := field.Options{
		Width:         float64(*widthFlag),
		Height:        float64(*heightFlag),
		Scale:         1,
		Seed:          envInt64("CELLFIELD_SEED", *seedFlag),
		ReducedMotion: envBool("CELLFIELD_REDUCED_MOTION", *reducedFlag),
	}

	if *snapshotFlag != "" {
		return snapshot(cfg, opts, *snapshotFlag, *ticksFlag)
	}

	sim := NewSimulation(cfg, opts, *configFlag)

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("Cell Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	return ebiten.RunGame(sim)
}

// snapshot renders headless on the software rasterizer and writes a PNG
func snapshot(cfg field.Config, opts field.Options, path string, ticks int) error {
	surface, sched, err := raster.Snapshot(cfg, opts, ticks)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()
	if err := surface.WritePNG(f); err != nil {
		return err
	}
	log.Printf("wrote %s after %d ticks (%s)", path, sched.Context().Ticks, sched.State())
	return nil
}
