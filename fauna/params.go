// Package fauna holds the per-species parameter sets and the condition
// model driving every stochastic decision in the simulation.
package fauna

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/rossum/components"
)

// ErrInvalidParameter reports an out-of-domain parameter value.
var ErrInvalidParameter = errors.New("invalid parameter")

// Params is the shared parameter set for one species. All animals of a
// species see the same values; changes apply between years, never mid-year.
type Params struct {
	WBirth     float64 `yaml:"w_birth"`     // mean birth weight
	SigmaBirth float64 `yaml:"sigma_birth"` // birth weight std-dev
	Beta       float64 `yaml:"beta"`        // weight gained per unit eaten
	Eta        float64 `yaml:"eta"`         // yearly fractional weight loss
	AHalf      float64 `yaml:"a_half"`      // fitness age midpoint
	PhiAge     float64 `yaml:"phi_age"`     // fitness age steepness
	WHalf      float64 `yaml:"w_half"`      // fitness weight midpoint
	PhiWeight  float64 `yaml:"phi_weight"`  // fitness weight steepness
	Mu         float64 `yaml:"mu"`          // migration probability scale
	Gamma      float64 `yaml:"gamma"`       // birth probability scale
	Zeta       float64 `yaml:"zeta"`        // birth weight gate multiplier
	Xi         float64 `yaml:"xi"`          // parent mass cost per unit newborn
	Omega      float64 `yaml:"omega"`       // death probability scale
	Appetite   float64 `yaml:"f"`           // yearly food demand F
	// DeltaPhiMax saturates the carnivore kill probability. Unused for
	// herbivores and must be positive for carnivores.
	DeltaPhiMax float64 `yaml:"delta_phi_max"`
}

// HerbivoreDefaults returns the default Herbivore parameter set.
func HerbivoreDefaults() Params {
	return Params{
		WBirth:     8,
		SigmaBirth: 1.5,
		Beta:       0.9,
		Eta:        0.05,
		AHalf:      40,
		PhiAge:     0.6,
		WHalf:      10,
		PhiWeight:  0.1,
		Mu:         0.25,
		Gamma:      0.2,
		Zeta:       3.5,
		Xi:         1.2,
		Omega:      0.4,
		Appetite:   10,
	}
}

// CarnivoreDefaults returns the default Carnivore parameter set.
func CarnivoreDefaults() Params {
	return Params{
		WBirth:      6,
		SigmaBirth:  1,
		Beta:        0.75,
		Eta:         0.125,
		AHalf:       40,
		PhiAge:      0.3,
		WHalf:       4,
		PhiWeight:   0.4,
		Mu:          0.4,
		Gamma:       0.8,
		Zeta:        3.5,
		Xi:          1.1,
		Omega:       0.8,
		Appetite:    50,
		DeltaPhiMax: 10,
	}
}

// Defaults returns the default parameter set for a species.
func Defaults(k components.Kind) Params {
	if k == components.KindCarnivore {
		return CarnivoreDefaults()
	}
	return HerbivoreDefaults()
}

// Validate checks that every parameter lies in its legal domain.
func (p *Params) Validate(k components.Kind) error {
	named := []struct {
		name  string
		value float64
	}{
		{"w_birth", p.WBirth},
		{"sigma_birth", p.SigmaBirth},
		{"beta", p.Beta},
		{"a_half", p.AHalf},
		{"phi_age", p.PhiAge},
		{"w_half", p.WHalf},
		{"phi_weight", p.PhiWeight},
		{"mu", p.Mu},
		{"gamma", p.Gamma},
		{"zeta", p.Zeta},
		{"xi", p.Xi},
		{"omega", p.Omega},
		{"f", p.Appetite},
	}
	for _, n := range named {
		if n.value < 0 {
			return fmt.Errorf("%w: %s %s must be >= 0, got %v", ErrInvalidParameter, k, n.name, n.value)
		}
	}
	if p.Eta < 0 || p.Eta > 1 {
		return fmt.Errorf("%w: %s eta must be in [0, 1], got %v", ErrInvalidParameter, k, p.Eta)
	}
	if p.WBirth <= 0 {
		return fmt.Errorf("%w: %s w_birth must be > 0, got %v", ErrInvalidParameter, k, p.WBirth)
	}
	if k == components.KindCarnivore && p.DeltaPhiMax <= 0 {
		return fmt.Errorf("%w: carnivore delta_phi_max must be > 0, got %v", ErrInvalidParameter, p.DeltaPhiMax)
	}
	if p.DeltaPhiMax < 0 {
		return fmt.Errorf("%w: %s delta_phi_max must be >= 0, got %v", ErrInvalidParameter, k, p.DeltaPhiMax)
	}
	return nil
}

// Set holds one parameter set per species, indexed by Kind.
type Set [components.NumKinds]Params

// DefaultSet returns the parameter sets both species start with.
func DefaultSet() Set {
	return Set{
		components.KindHerbivore: HerbivoreDefaults(),
		components.KindCarnivore: CarnivoreDefaults(),
	}
}

// For returns the parameter set for a species.
func (s *Set) For(k components.Kind) *Params {
	return &s[k]
}
