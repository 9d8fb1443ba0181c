package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/rossum/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir       string
	yearsFile *os.File
	cellsFile *os.File

	// Track if headers have been written
	yearsHeaderWritten bool
	cellsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the
// output directory. Returns nil if dir is empty (output disabled).
// cellCounts enables the per-cell counts file.
func NewOutputManager(dir string, cellCounts bool) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "years.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating years.csv: %w", err)
	}
	om.yearsFile = f

	if cellCounts {
		f, err = os.Create(filepath.Join(dir, "cells.csv"))
		if err != nil {
			om.yearsFile.Close()
			return nil, fmt.Errorf("creating cells.csv: %w", err)
		}
		om.cellsFile = f
	}

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteYear appends a per-year census row to years.csv.
func (om *OutputManager) WriteYear(stats YearStats) error {
	if om == nil {
		return nil
	}

	records := []YearStats{stats}

	if !om.yearsHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.yearsFile); err != nil {
			return fmt.Errorf("writing years: %w", err)
		}
		om.yearsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.yearsFile); err != nil {
			return fmt.Errorf("writing years: %w", err)
		}
	}

	return nil
}

// WriteCells appends per-cell count rows to cells.csv, if enabled.
func (om *OutputManager) WriteCells(counts []CellCount) error {
	if om == nil || om.cellsFile == nil {
		return nil
	}

	if !om.cellsHeaderWritten {
		if err := gocsv.Marshal(counts, om.cellsFile); err != nil {
			return fmt.Errorf("writing cells: %w", err)
		}
		om.cellsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(counts, om.cellsFile); err != nil {
			return fmt.Errorf("writing cells: %w", err)
		}
	}

	return nil
}

// Close closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	if om.yearsFile != nil {
		if err := om.yearsFile.Close(); err != nil {
			firstErr = err
		}
	}
	if om.cellsFile != nil {
		if err := om.cellsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
