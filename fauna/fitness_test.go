package fauna

import (
	"math"
	"testing"

	"github.com/pthm-cable/rossum/components"
)

func TestFitnessBounds(t *testing.T) {
	for _, kind := range []components.Kind{components.KindHerbivore, components.KindCarnivore} {
		p := Defaults(kind)
		for age := 0; age <= 100; age += 5 {
			for _, weight := range []float64{0, 0.1, 1, 5, 10, 20, 50, 100, 1000} {
				phi := Fitness(age, weight, &p)
				if phi < 0 || phi > 1 {
					t.Errorf("%s Fitness(age=%d, weight=%v) = %v, want in [0, 1]", kind, age, weight, phi)
				}
			}
		}
	}
}

func TestFitnessZeroWeight(t *testing.T) {
	p := HerbivoreDefaults()
	for _, age := range []int{0, 1, 10, 40, 200} {
		if phi := Fitness(age, 0, &p); phi != 0 {
			t.Errorf("Fitness(age=%d, weight=0) = %v, want 0", age, phi)
		}
	}
}

func TestFitnessHalfpoints(t *testing.T) {
	// At age = a_half the age term is exactly 1/2; with weight far above
	// w_half the weight term approaches 1, so fitness approaches 1/2.
	p := HerbivoreDefaults()
	phi := Fitness(int(p.AHalf), 1e6, &p)
	if math.Abs(phi-0.5) > 1e-6 {
		t.Errorf("Fitness(a_half, huge weight) = %v, want ~0.5", phi)
	}
}

func TestFitnessMonotonicity(t *testing.T) {
	p := HerbivoreDefaults()

	// Heavier is fitter at fixed age.
	prev := -1.0
	for _, w := range []float64{1, 5, 10, 20, 40} {
		phi := Fitness(5, w, &p)
		if phi <= prev {
			t.Fatalf("fitness not increasing in weight: Fitness(5, %v) = %v, prev %v", w, phi, prev)
		}
		prev = phi
	}

	// Older is less fit at fixed weight.
	prev = 2.0
	for _, a := range []int{0, 10, 20, 40, 80} {
		phi := Fitness(a, 20, &p)
		if phi >= prev {
			t.Fatalf("fitness not decreasing in age: Fitness(%d, 20) = %v, prev %v", a, phi, prev)
		}
		prev = phi
	}
}

func TestFitnessOfUsesSpeciesParams(t *testing.T) {
	set := DefaultSet()
	herb := &components.Animal{Kind: components.KindHerbivore, Age: 5, Weight: 20}
	carn := &components.Animal{Kind: components.KindCarnivore, Age: 5, Weight: 20}

	if got, want := set.FitnessOf(herb), Fitness(5, 20, set.For(components.KindHerbivore)); got != want {
		t.Errorf("herbivore FitnessOf = %v, want %v", got, want)
	}
	if got, want := set.FitnessOf(carn), Fitness(5, 20, set.For(components.KindCarnivore)); got != want {
		t.Errorf("carnivore FitnessOf = %v, want %v", got, want)
	}
	if set.FitnessOf(herb) == set.FitnessOf(carn) {
		t.Error("species with different parameters should differ in fitness at the same age and weight")
	}
}
