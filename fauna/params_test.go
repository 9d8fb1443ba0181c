package fauna

import (
	"errors"
	"testing"

	"github.com/pthm-cable/rossum/components"
)

func TestValidateDefaults(t *testing.T) {
	h := HerbivoreDefaults()
	if err := h.Validate(components.KindHerbivore); err != nil {
		t.Errorf("herbivore defaults invalid: %v", err)
	}
	c := CarnivoreDefaults()
	if err := c.Validate(components.KindCarnivore); err != nil {
		t.Errorf("carnivore defaults invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		kind   components.Kind
		mutate func(*Params)
	}{
		{"negative omega", components.KindHerbivore, func(p *Params) { p.Omega = -0.1 }},
		{"negative gamma", components.KindHerbivore, func(p *Params) { p.Gamma = -1 }},
		{"negative appetite", components.KindCarnivore, func(p *Params) { p.Appetite = -5 }},
		{"eta above one", components.KindHerbivore, func(p *Params) { p.Eta = 1.5 }},
		{"zero birth weight", components.KindHerbivore, func(p *Params) { p.WBirth = 0 }},
		{"carnivore without delta_phi_max", components.KindCarnivore, func(p *Params) { p.DeltaPhiMax = 0 }},
		{"negative delta_phi_max", components.KindHerbivore, func(p *Params) { p.DeltaPhiMax = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Defaults(tt.kind)
			tt.mutate(&p)
			err := p.Validate(tt.kind)
			if err == nil {
				t.Fatal("Validate accepted an out-of-domain value")
			}
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("error %v does not wrap ErrInvalidParameter", err)
			}
		})
	}
}

func TestDefaultSetIndexing(t *testing.T) {
	set := DefaultSet()
	if set.For(components.KindHerbivore).Appetite != 10 {
		t.Errorf("herbivore appetite = %v, want 10", set.For(components.KindHerbivore).Appetite)
	}
	if set.For(components.KindCarnivore).Appetite != 50 {
		t.Errorf("carnivore appetite = %v, want 50", set.For(components.KindCarnivore).Appetite)
	}
}
