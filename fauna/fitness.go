package fauna

import (
	"math"

	"github.com/pthm-cable/rossum/components"
)

// Fitness computes the condition Phi of an animal from its age and weight.
// Phi is the product of a decreasing logistic in age and an increasing
// logistic in weight, so it always lies in [0, 1]. An animal at weight
// zero has fitness zero regardless of age.
func Fitness(age int, weight float64, p *Params) float64 {
	if weight <= 0 {
		return 0
	}
	qAge := 1 / (1 + math.Exp(p.PhiAge*(float64(age)-p.AHalf)))
	qWeight := 1 / (1 + math.Exp(-p.PhiWeight*(weight-p.WHalf)))
	return qAge * qWeight
}

// FitnessOf computes the fitness of an animal using its species parameters.
func (s *Set) FitnessOf(a *components.Animal) float64 {
	return Fitness(a.Age, a.Weight, s.For(a.Kind))
}
