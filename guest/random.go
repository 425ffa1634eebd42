package guest

import (
	"fmt"
	"math/rand"
)

// RandomConfig controls random roster generation.
type RandomConfig struct {
	NumPeople    int // guests in the roster
	NumInterests int // size of the interest universe
	MinInterests int // minimum interests per guest (default 1)
	MaxInterests int // maximum interests per guest (default NumInterests)
	MaxLevel     int // interest levels are drawn from [1, MaxLevel] (default 5)
}

// RandomPerson creates a person with a random subset of possibleInterests,
// between minInterests and maxInterests of them, each at a level in
// [1, maxLevel].
func RandomPerson(name string, possibleInterests []string, minInterests, maxInterests, maxLevel int, rng *rand.Rand) Person {
	if minInterests < 1 {
		minInterests = 1
	}
	if maxInterests > len(possibleInterests) {
		maxInterests = len(possibleInterests)
	}
	if maxInterests < minInterests {
		maxInterests = minInterests
	}

	count := minInterests + rng.Intn(maxInterests-minInterests+1)
	interests := make(map[string]int, count)
	for _, idx := range rng.Perm(len(possibleInterests))[:count] {
		interests[possibleInterests[idx]] = 1 + rng.Intn(maxLevel)
	}
	return NewPerson(name, interests)
}

// RandomRoster generates a roster by sampling unique names and an interest
// universe from the built-in pools, then giving each guest random interests.
func RandomRoster(cfg RandomConfig, rng *rand.Rand) (*Roster, error) {
	if cfg.NumPeople > len(NamePool) {
		return nil, fmt.Errorf("not enough names: need %d, have %d", cfg.NumPeople, len(NamePool))
	}
	if cfg.NumInterests > len(InterestPool) {
		return nil, fmt.Errorf("not enough interests: need %d, have %d", cfg.NumInterests, len(InterestPool))
	}
	if cfg.MaxLevel <= 0 {
		cfg.MaxLevel = 5
	}
	if cfg.MaxInterests <= 0 {
		cfg.MaxInterests = cfg.NumInterests
	}

	names := sampleStrings(NamePool, cfg.NumPeople, rng)
	universe := sampleStrings(InterestPool, cfg.NumInterests, rng)

	people := make([]Person, cfg.NumPeople)
	for i, name := range names {
		people[i] = RandomPerson(name, universe, cfg.MinInterests, cfg.MaxInterests, cfg.MaxLevel, rng)
	}
	return NewRoster(people, universe)
}

// sampleStrings draws n distinct elements from pool, uniformly without
// replacement.
func sampleStrings(pool []string, n int, rng *rand.Rand) []string {
	out := make([]string, n)
	for i, idx := range rng.Perm(len(pool))[:n] {
		out[i] = pool[idx]
	}
	return out
}
