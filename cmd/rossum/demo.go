package main

import (
	"github.com/pthm-cable/rossum/config"
	"github.com/pthm-cable/rossum/telemetry"
)

// demoIsland is the geography used when no map file is given.
const demoIsland = `
WWWWWWWWWWWWWWWWWWWWW
WHHHHHLLLLWWLLLLLLLWW
WHHHHHLLLLWWLLLLLLLWW
WHHHHHLLLLWWLLLLLLLWW
WWHHLLLLLLLWWLLLLLLLW
WWHHLLLLLLLWWLLLLLLLW
WWWWWWWWHWWWWLLLLLLLW
WHHHHHLLLLWWLLLLLLLWW
WHHHHHHHHHWWLLLLLLWWW
WHHHHHDDDDDLLLLLLLWWW
WHHHHHDDDDDLLLLLLLWWW
WHHHHHDDDDDLLLLLLLWWW
WHHHHHDDDDDWWLLLLLWWW
WHHHHDDDDDDLLLLWWWWWW
WWHHHHDDDDDDLWWWWWWWW
WWHHHHDDDDDLLLWWWWWWW
WHHHHHDDDDDLLLLLLLWWW
WHHHHDDDDDDLLLLWWWWWW
WWHHHHDDDDDLLLWWWWWWW
WWWHHHHLLLLLLLWWWWWWW
WWWHHHHHHWWWWWWWWWWWW
WWWWWWWWWWWWWWWWWWWWW
`

// telemetryOutput opens the run's output directory, if any, and snapshots
// the effective configuration into it.
func telemetryOutput(dir string, cfg *config.Config) (*telemetry.OutputManager, error) {
	output, err := telemetry.NewOutputManager(dir, cfg.Telemetry.CellCounts)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, err
	}
	return output, nil
}
