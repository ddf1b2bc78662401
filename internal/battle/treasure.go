package battle

import "math/rand"

type Outcome string

const (
	OutcomeNone   Outcome = ""
	OutcomePotion Outcome = "potion"
	OutcomePoison Outcome = "poison"
)

// Rand is the randomness source for treasure draws. Injectable so tests can
// force either outcome.
type Rand interface {
	Float64() float64
}

func DefaultRand() Rand {
	return rand.New(rand.NewSource(rand.Int63()))
}

// Draw picks the treasure outcome with uniform probability.
func Draw(r Rand) Outcome {
	if r.Float64() < 0.5 {
		return OutcomePotion
	}
	return OutcomePoison
}
