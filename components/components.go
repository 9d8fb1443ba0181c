// Package components defines ECS components for the simulation.
package components

import "fmt"

// Kind identifies one of the two simulated species.
type Kind uint8

const (
	KindHerbivore Kind = iota
	KindCarnivore
	// NumKinds is the size of the closed species set.
	NumKinds = 2
)

// String returns the species name used in population records and output.
func (k Kind) String() string {
	switch k {
	case KindHerbivore:
		return "Herbivore"
	case KindCarnivore:
		return "Carnivore"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps a species name to its Kind.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "Herbivore":
		return KindHerbivore, true
	case "Carnivore":
		return KindCarnivore, true
	default:
		return 0, false
	}
}

// Animal holds the complete per-animal state.
// Fitness is never stored; it is recomputed from Age and Weight on demand.
type Animal struct {
	Kind   Kind
	Age    int
	Weight float64
	// Moved marks an animal that has already used its migration for the
	// current year. Newborns are created with Moved set so they sit out
	// the migration pass of their birth year.
	Moved bool
}
