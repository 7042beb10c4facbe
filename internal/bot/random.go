package bot

import "math/rand"

// RandomName is the registered name of the random player.
const RandomName = "random"

// Random picks uniformly among the placements that can be reached.
// Useful as a baseline for bench runs.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random player seeded from opts.Seed.
func NewRandom(opts Options) *Random {
	return &Random{rng: rand.New(rand.NewSource(opts.Seed))}
}

// Name returns "random".
func (p *Random) Name() string {
	return RandomName
}

// ChooseActions returns a random legal placement, or nil if there is none.
func (p *Random) ChooseActions(b Board) []Action {
	center, err := b.Center()
	if err != nil {
		return nil
	}

	var legal [][]Action
	for _, cand := range candidates(center, b.Width()) {
		if _, ok := simulate(b, cand.moves); ok {
			legal = append(legal, cand.moves)
		}
	}
	if len(legal) == 0 {
		return nil
	}
	return legal[p.rng.Intn(len(legal))]
}
