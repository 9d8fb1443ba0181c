// Package telemetry aggregates per-year population statistics and writes
// run artifacts.
package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/rossum/components"
	"github.com/pthm-cable/rossum/fauna"
	"github.com/pthm-cable/rossum/island"
)

// YearStats is one row of the per-year census.
type YearStats struct {
	Year       int `csv:"year"`
	Herbivores int `csv:"herbivores"`
	Carnivores int `csv:"carnivores"`

	HerbAgeMean     float64 `csv:"herb_age_mean"`
	HerbWeightMean  float64 `csv:"herb_weight_mean"`
	HerbWeightStd   float64 `csv:"herb_weight_std"`
	HerbFitnessMean float64 `csv:"herb_fitness_mean"`

	CarnAgeMean     float64 `csv:"carn_age_mean"`
	CarnWeightMean  float64 `csv:"carn_weight_mean"`
	CarnWeightStd   float64 `csv:"carn_weight_std"`
	CarnFitnessMean float64 `csv:"carn_fitness_mean"`
}

// CellCount is one row of the optional per-cell census.
type CellCount struct {
	Year       int `csv:"year"`
	Row        int `csv:"row"`
	Col        int `csv:"col"`
	Herbivores int `csv:"herbivores"`
	Carnivores int `csv:"carnivores"`
}

// Details holds the raw per-animal distributions of one species.
type Details struct {
	Ages    []float64
	Weights []float64
	Fitness []float64
}

// Collect gathers the distributions of one species across the island.
func Collect(isl *island.Island, params *fauna.Set, k components.Kind) Details {
	var d Details
	cells := isl.Cells()
	for idx := range cells {
		c := &cells[idx]
		for _, e := range *c.Bucket(k) {
			a := isl.Animal(e)
			d.Ages = append(d.Ages, float64(a.Age))
			d.Weights = append(d.Weights, a.Weight)
			d.Fitness = append(d.Fitness, params.FitnessOf(a))
		}
	}
	return d
}

// Census builds the per-year stats row and the per-cell counts after a
// completed year.
func Census(year int, isl *island.Island, params *fauna.Set) (YearStats, []CellCount) {
	herbs := Collect(isl, params, components.KindHerbivore)
	carns := Collect(isl, params, components.KindCarnivore)

	ys := YearStats{
		Year:       year,
		Herbivores: len(herbs.Weights),
		Carnivores: len(carns.Weights),

		HerbAgeMean:     meanOrZero(herbs.Ages),
		HerbWeightMean:  meanOrZero(herbs.Weights),
		HerbWeightStd:   stdOrZero(herbs.Weights),
		HerbFitnessMean: meanOrZero(herbs.Fitness),

		CarnAgeMean:     meanOrZero(carns.Ages),
		CarnWeightMean:  meanOrZero(carns.Weights),
		CarnWeightStd:   stdOrZero(carns.Weights),
		CarnFitnessMean: meanOrZero(carns.Fitness),
	}

	cells := isl.Cells()
	counts := make([]CellCount, 0, len(cells))
	for idx := range cells {
		c := &cells[idx]
		counts = append(counts, CellCount{
			Year:       year,
			Row:        c.Row,
			Col:        c.Col,
			Herbivores: len(c.Herbs),
			Carnivores: len(c.Carns),
		})
	}
	return ys, counts
}

func meanOrZero(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

func stdOrZero(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}
