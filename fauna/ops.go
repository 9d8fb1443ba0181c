package fauna

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pthm-cable/rossum/components"
)

// BirthWeight samples the weight of a newborn from a normal distribution
// with the species' birth mean and std-dev, redrawing until positive.
func BirthWeight(p *Params, rng *rand.Rand) float64 {
	dist := distuv.Normal{Mu: p.WBirth, Sigma: p.SigmaBirth, Src: rng}
	for {
		if w := dist.Rand(); w > 0 {
			return w
		}
	}
}

// Dies draws whether an animal dies this year. Death is certain at weight
// zero, otherwise happens with probability omega * (1 - fitness).
func Dies(a *components.Animal, p *Params, rng *rand.Rand) bool {
	if a.Weight <= 0 {
		return true
	}
	return rng.Float64() < p.Omega*(1-Fitness(a.Age, a.Weight, p))
}

// WantsToMove draws whether an animal attempts migration this year.
// Animals that already moved never attempt a second move.
func WantsToMove(a *components.Animal, p *Params, rng *rand.Rand) bool {
	if a.Moved {
		return false
	}
	return rng.Float64() < p.Mu*Fitness(a.Age, a.Weight, p)
}

// GrowOlder advances an animal's age by one year.
func GrowOlder(a *components.Animal) {
	a.Age++
}

// LoseWeight applies the yearly metabolic loss eta * weight. The weight
// decreases monotonically and cannot go negative.
func LoseWeight(a *components.Animal, p *Params) {
	a.Weight -= a.Weight * p.Eta
	if a.Weight < 0 {
		a.Weight = 0
	}
}

// GainWeight adds beta * intake to an animal's weight.
func GainWeight(a *components.Animal, p *Params, intake float64) {
	a.Weight += p.Beta * intake
}
