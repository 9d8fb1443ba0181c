package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/rossum/config"
	"github.com/pthm-cable/rossum/island"
	"github.com/pthm-cable/rossum/sim"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	mapPath := flag.String("map", "", "Path to island map file (empty = built-in demo island)")
	popPath := flag.String("population", "", "Path to YAML population file (empty = built-in demo population)")
	years := flag.Int("years", 0, "Years to simulate (0 = use config)")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = use config; config 0 = time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot (empty = use config)")
	logYears := flag.Bool("log-years", false, "Log the census of every year via slog")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.Simulation.Seed
	}
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	numYears := *years
	if numYears == 0 {
		numYears = cfg.Simulation.Years
	}

	mapStr := demoIsland
	if *mapPath != "" {
		var err error
		mapStr, err = sim.LoadMap(*mapPath)
		if err != nil {
			slog.Error("failed to load map", "error", err)
			os.Exit(1)
		}
	}

	population := demoPopulation()
	if *popPath != "" {
		var err error
		population, err = sim.LoadPopulation(*popPath)
		if err != nil {
			slog.Error("failed to load population", "error", err)
			os.Exit(1)
		}
	}

	s, err := sim.New(mapStr, cfg, rngSeed)
	if err != nil {
		slog.Error("failed to build island", "error", err)
		os.Exit(1)
	}
	if err := s.AddPopulation(population); err != nil {
		slog.Error("failed to insert population", "error", err)
		os.Exit(1)
	}

	dir := *outputDir
	if dir == "" {
		dir = cfg.Telemetry.OutputDir
	}
	output, err := telemetryOutput(dir, cfg)
	if err != nil {
		slog.Error("failed to set up output", "error", err)
		os.Exit(1)
	}
	defer output.Close()

	herbs, carns := s.Island().Counts()
	slog.Info("starting simulation",
		"seed", rngSeed,
		"years", numYears,
		"rows", s.Island().Rows(),
		"cols", s.Island().Cols(),
		"herbivores", herbs,
		"carnivores", carns,
	)

	start := time.Now()
	for i := 0; i < numYears; i++ {
		ys, counts := s.AdvanceYear()
		if *logYears {
			slog.Info("year complete",
				"year", ys.Year,
				"herbivores", ys.Herbivores,
				"carnivores", ys.Carnivores,
			)
		}
		if err := output.WriteYear(ys); err != nil {
			slog.Error("failed to write census", "error", err)
			os.Exit(1)
		}
		if cfg.Telemetry.CellCounts {
			if err := output.WriteCells(counts); err != nil {
				slog.Error("failed to write cell counts", "error", err)
				os.Exit(1)
			}
		}
		if s.NumAnimals() == 0 {
			slog.Warn("island is extinct", "year", ys.Year)
			break
		}
	}

	herbs, carns = s.Island().Counts()
	slog.Info("simulation finished",
		"years", s.Year(),
		"herbivores", herbs,
		"carnivores", carns,
		"elapsed", time.Since(start).String(),
	)
}

// demoPopulation seeds the demo island with the canonical starting herd.
func demoPopulation() []island.PopulationEntry {
	herd := make([]island.AnimalRecord, 0, 250)
	for i := 0; i < 200; i++ {
		herd = append(herd, island.AnimalRecord{Species: "Herbivore", Age: 5, Weight: 20})
	}
	for i := 0; i < 50; i++ {
		herd = append(herd, island.AnimalRecord{Species: "Carnivore", Age: 5, Weight: 20})
	}
	return []island.PopulationEntry{{Loc: [2]int{2, 7}, Pop: herd}}
}
