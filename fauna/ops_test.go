package fauna

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/pthm-cable/rossum/components"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestBirthWeightPositive(t *testing.T) {
	rng := testRNG(1)
	// Wide sigma relative to the mean forces the redraw path.
	p := Params{WBirth: 2, SigmaBirth: 4}
	for i := 0; i < 10000; i++ {
		if w := BirthWeight(&p, rng); w <= 0 {
			t.Fatalf("BirthWeight returned %v, want > 0", w)
		}
	}
}

func TestBirthWeightDistribution(t *testing.T) {
	rng := testRNG(2)
	p := HerbivoreDefaults()
	var sum float64
	const n = 20000
	for i := 0; i < n; i++ {
		sum += BirthWeight(&p, rng)
	}
	mean := sum / n
	// sigma_birth is small against w_birth, so clipping barely shifts
	// the mean.
	if math.Abs(mean-p.WBirth) > 0.1 {
		t.Errorf("mean birth weight = %v, want ~%v", mean, p.WBirth)
	}
}

func TestDiesCertainAtZeroWeight(t *testing.T) {
	rng := testRNG(3)
	p := HerbivoreDefaults()
	a := &components.Animal{Kind: components.KindHerbivore, Age: 3, Weight: 0}
	for i := 0; i < 1000; i++ {
		if !Dies(a, &p, rng) {
			t.Fatal("animal at weight 0 survived, want certain death")
		}
	}
}

func TestDiesNeverWithZeroOmega(t *testing.T) {
	rng := testRNG(4)
	p := HerbivoreDefaults()
	p.Omega = 0
	a := &components.Animal{Kind: components.KindHerbivore, Age: 3, Weight: 20}
	for i := 0; i < 1000; i++ {
		if Dies(a, &p, rng) {
			t.Fatal("animal died with omega = 0")
		}
	}
}

func TestDiesRate(t *testing.T) {
	rng := testRNG(5)
	p := HerbivoreDefaults()
	a := &components.Animal{Kind: components.KindHerbivore, Age: 5, Weight: 20}
	want := p.Omega * (1 - Fitness(a.Age, a.Weight, &p))

	deaths := 0
	const n = 50000
	for i := 0; i < n; i++ {
		if Dies(a, &p, rng) {
			deaths++
		}
	}
	got := float64(deaths) / n
	if math.Abs(got-want) > 0.01 {
		t.Errorf("death rate = %v, want ~%v", got, want)
	}
}

func TestGrowOlder(t *testing.T) {
	a := &components.Animal{Age: 7}
	GrowOlder(a)
	if a.Age != 8 {
		t.Errorf("age = %d, want 8", a.Age)
	}
}

func TestLoseWeight(t *testing.T) {
	p := HerbivoreDefaults()
	a := &components.Animal{Weight: 20}
	LoseWeight(a, &p)
	if want := 20 * (1 - p.Eta); math.Abs(a.Weight-want) > 1e-12 {
		t.Errorf("weight = %v, want %v", a.Weight, want)
	}

	// Repeated loss approaches but never crosses zero.
	for i := 0; i < 10000; i++ {
		LoseWeight(a, &p)
		if a.Weight < 0 {
			t.Fatalf("weight went negative: %v", a.Weight)
		}
	}
}

func TestGainWeight(t *testing.T) {
	p := HerbivoreDefaults()
	a := &components.Animal{Weight: 20}
	GainWeight(a, &p, 10)
	if want := 20 + p.Beta*10; math.Abs(a.Weight-want) > 1e-12 {
		t.Errorf("weight = %v, want %v", a.Weight, want)
	}
}

func TestWantsToMove(t *testing.T) {
	rng := testRNG(6)
	p := HerbivoreDefaults()

	moved := &components.Animal{Weight: 20, Age: 5, Moved: true}
	for i := 0; i < 100; i++ {
		if WantsToMove(moved, &p, rng) {
			t.Fatal("animal that already moved wanted to move again")
		}
	}

	// mu = 0 never moves, regardless of fitness.
	p.Mu = 0
	fresh := &components.Animal{Weight: 50, Age: 2}
	for i := 0; i < 100; i++ {
		if WantsToMove(fresh, &p, rng) {
			t.Fatal("animal moved with mu = 0")
		}
	}
}
