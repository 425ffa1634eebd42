package rules

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/qemqemqem/dinnerbench/guest"
)

// Variant type names, used by serialization and the composer registry.
const (
	TypeEachPersonSpeaks                 = "each_person_speaks"
	TypeSingleInterest                   = "single_interest"
	TypeWellRoundedInterests             = "well_rounded_interests"
	TypeNicheInterests                   = "niche_interests"
	TypeAlphabeticHostInterest           = "alphabetic_host_interest"
	TypeLargestInterestValue             = "largest_interest_value"
	TypeMostCommonInterest               = "most_common_interest"
	TypeMostCommonInterestExceptPrevious = "most_common_interest_except_previous"
	TypeFewestInterestsHost              = "fewest_interests_host"
	TypeFewestInterestsLargestValue      = "fewest_interests_largest_value"
)

// hostCandidates returns the selected guests who have not yet hosted. When
// everyone has hosted, the exclusion list is reset and all selected guests
// become eligible again.
func hostCandidates(selected []guest.Person, ctx *Context) []guest.Person {
	var avail []guest.Person
	for _, p := range selected {
		if !ctx.HasHosted(p.Name) {
			avail = append(avail, p)
		}
	}
	if len(avail) == 0 {
		ctx.resetHosts()
		avail = append(avail, selected...)
	}
	return avail
}

// alphabeticalHost picks the alphabetically earliest candidate.
func alphabeticalHost(candidates []guest.Person) guest.Person {
	host := candidates[0]
	for _, p := range candidates[1:] {
		if p.Name < host.Name {
			host = p
		}
	}
	return host
}

// fewestInterestsHost picks the candidate with the fewest interests, breaking
// ties toward the alphabetically earlier name.
func fewestInterestsHost(candidates []guest.Person) guest.Person {
	host := candidates[0]
	for _, p := range candidates[1:] {
		if len(p.Interests) < len(host.Interests) ||
			(len(p.Interests) == len(host.Interests) && p.Name < host.Name) {
			host = p
		}
	}
	return host
}

// EachPersonSpeaks: each guest scores their highest-valued interest that has
// not yet been discussed, or 0 if none remain. The spoken interests are
// deliberately not reported as discussed, so this rule never shrinks the
// undiscussed pool for later rounds.
type EachPersonSpeaks struct{}

func (EachPersonSpeaks) ScoreRound(selected []guest.Person, ctx *Context) (map[string]float64, Metadata) {
	scores := make(map[string]float64, len(selected))
	for _, p := range selected {
		best := 0
		for interest, level := range p.Interests {
			if ctx.IsDiscussed(interest) {
				continue
			}
			if level > best {
				best = level
			}
		}
		scores[p.Name] = float64(best)
	}
	return scores, Metadata{}
}

func (EachPersonSpeaks) Complexity() int  { return 1 }
func (EachPersonSpeaks) TypeName() string { return TypeEachPersonSpeaks }
func (EachPersonSpeaks) Describe() string {
	return "Each guest speaks about their highest-level interest that has not yet been discussed, and scores that level."
}

// SingleInterest: one interest, fixed when the rule is constructed, is
// discussed; each guest scores their level in it.
type SingleInterest struct {
	Interest string
}

// NewRandomSingleInterest picks the rule's interest uniformly from the
// roster's interest universe.
func NewRandomSingleInterest(roster *guest.Roster, rng *rand.Rand) SingleInterest {
	universe := roster.InterestUniverse()
	if len(universe) == 0 {
		return SingleInterest{}
	}
	return SingleInterest{Interest: universe[rng.Intn(len(universe))]}
}

func (r SingleInterest) ScoreRound(selected []guest.Person, _ *Context) (map[string]float64, Metadata) {
	scores := make(map[string]float64, len(selected))
	for _, p := range selected {
		scores[p.Name] = float64(p.Interests[r.Interest])
	}
	return scores, Metadata{Interest: r.Interest}
}

func (SingleInterest) Complexity() int  { return 1 }
func (SingleInterest) TypeName() string { return TypeSingleInterest }
func (r SingleInterest) Describe() string {
	return fmt.Sprintf("The guests discuss %s, and each guest scores their level of interest in it.", r.Interest)
}

// WellRoundedInterests: each guest scores 10 minus the spread between their
// strongest and weakest interest, floored at 0. Guests with no interests
// score 0.
type WellRoundedInterests struct{}

func (WellRoundedInterests) ScoreRound(selected []guest.Person, _ *Context) (map[string]float64, Metadata) {
	scores := make(map[string]float64, len(selected))
	for _, p := range selected {
		if len(p.Interests) == 0 {
			scores[p.Name] = 0
			continue
		}
		min, max := 0, 0
		first := true
		for _, level := range p.Interests {
			if first {
				min, max = level, level
				first = false
				continue
			}
			if level < min {
				min = level
			}
			if level > max {
				max = level
			}
		}
		score := 10 - (max - min)
		if score < 0 {
			score = 0
		}
		scores[p.Name] = float64(score)
	}
	return scores, Metadata{}
}

func (WellRoundedInterests) Complexity() int  { return 1 }
func (WellRoundedInterests) TypeName() string { return TypeWellRoundedInterests }
func (WellRoundedInterests) Describe() string {
	return "Each guest scores 10 minus the gap between their strongest and weakest interest levels (minimum 0)."
}

// NicheInterests: the 3 interests with the lowest total level across the
// selected guests are the niche topics; each guest scores a fixed bonus per
// niche topic they hold. The niche topics are reported in metadata but do not
// join the discussed-interest history.
type NicheInterests struct {
	Bonus int
}

// NewRandomNicheInterests randomizes the per-interest bonus in [3, 7].
func NewRandomNicheInterests(rng *rand.Rand) NicheInterests {
	return NicheInterests{Bonus: 3 + rng.Intn(5)}
}

func (r NicheInterests) ScoreRound(selected []guest.Person, _ *Context) (map[string]float64, Metadata) {
	totals := make(map[string]int)
	for _, p := range selected {
		for interest, level := range p.Interests {
			totals[interest] += level
		}
	}
	if len(totals) == 0 {
		return zeroScores(selected), Metadata{}
	}

	names := make([]string, 0, len(totals))
	for interest := range totals {
		names = append(names, interest)
	}
	sort.Slice(names, func(i, j int) bool {
		if totals[names[i]] != totals[names[j]] {
			return totals[names[i]] < totals[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > 3 {
		names = names[:3]
	}

	scores := make(map[string]float64, len(selected))
	for _, p := range selected {
		held := 0
		for _, interest := range names {
			if p.Interests[interest] > 0 {
				held++
			}
		}
		scores[p.Name] = float64(r.Bonus * held)
	}
	return scores, Metadata{NicheInterests: names}
}

func (NicheInterests) Complexity() int  { return 2 }
func (NicheInterests) TypeName() string { return TypeNicheInterests }
func (r NicheInterests) Describe() string {
	return fmt.Sprintf("The 3 interests with the lowest total level at the table are the niche topics, and each guest scores %d points per niche topic they hold.", r.Bonus)
}

// AlphabeticHostInterest: the alphabetically earliest guest who has not yet
// hosted becomes host; every other guest scores 2 points per interest shared
// with the host.
type AlphabeticHostInterest struct{}

func (AlphabeticHostInterest) ScoreRound(selected []guest.Person, ctx *Context) (map[string]float64, Metadata) {
	if len(selected) == 0 {
		return map[string]float64{}, Metadata{}
	}
	host := alphabeticalHost(hostCandidates(selected, ctx))

	scores := make(map[string]float64, len(selected))
	for _, p := range selected {
		if p.Name == host.Name {
			scores[p.Name] = 0
			continue
		}
		scores[p.Name] = float64(2 * p.SharedInterests(host))
	}
	return scores, Metadata{Host: host.Name}
}

func (AlphabeticHostInterest) Complexity() int  { return 3 }
func (AlphabeticHostInterest) TypeName() string { return TypeAlphabeticHostInterest }
func (AlphabeticHostInterest) Describe() string {
	return "The alphabetically first guest who has not yet hosted becomes the host, and every other guest scores 2 points per interest they share with the host."
}

// LargestInterestValue: the single highest (guest, interest) level among
// undiscussed interests picks the topic, ties broken alphabetically by
// interest name; every guest scores their own level in that topic.
type LargestInterestValue struct{}

func (LargestInterestValue) ScoreRound(selected []guest.Person, ctx *Context) (map[string]float64, Metadata) {
	topic := ""
	best := 0
	found := false
	for _, p := range selected {
		for interest, level := range p.Interests {
			if ctx.IsDiscussed(interest) {
				continue
			}
			if !found || level > best || (level == best && interest < topic) {
				topic, best, found = interest, level, true
			}
		}
	}
	if !found {
		return zeroScores(selected), Metadata{}
	}

	scores := make(map[string]float64, len(selected))
	for _, p := range selected {
		scores[p.Name] = float64(p.Interests[topic])
	}
	return scores, Metadata{Interest: topic}
}

func (LargestInterestValue) Complexity() int  { return 3 }
func (LargestInterestValue) TypeName() string { return TypeLargestInterestValue }
func (LargestInterestValue) Describe() string {
	return "The single highest interest level at the table (among interests not yet discussed) picks the topic, and each guest scores their own level in it."
}

// MostCommonInterest: the interest held by the most guests is discussed and
// each guest scores their raw level in it. With IgnorePrevious set,
// already-discussed interests are excluded from the count entirely.
type MostCommonInterest struct {
	IgnorePrevious bool
}

func (r MostCommonInterest) ScoreRound(selected []guest.Person, ctx *Context) (map[string]float64, Metadata) {
	counts := make(map[string]int)
	for _, p := range selected {
		for interest, level := range p.Interests {
			if level <= 0 {
				continue
			}
			if r.IgnorePrevious && ctx.IsDiscussed(interest) {
				continue
			}
			counts[interest]++
		}
	}

	topic, ok := mostCommonKey(counts)
	if !ok {
		return zeroScores(selected), Metadata{}
	}

	scores := make(map[string]float64, len(selected))
	for _, p := range selected {
		scores[p.Name] = float64(p.Interests[topic])
	}
	return scores, Metadata{Interest: topic}
}

func (MostCommonInterest) Complexity() int { return 3 }

func (r MostCommonInterest) TypeName() string {
	if r.IgnorePrevious {
		return TypeMostCommonInterestExceptPrevious
	}
	return TypeMostCommonInterest
}

func (r MostCommonInterest) Describe() string {
	desc := "The interest shared by the most guests is discussed, and each guest scores their level in it."
	if r.IgnorePrevious {
		desc += " Interests discussed in previous rounds are excluded."
	}
	return desc
}

// FewestInterestsHost: the guest with the fewest interests who has not yet
// hosted becomes host; each guest scores a fixed multiplier per interest
// shared with the host.
type FewestInterestsHost struct {
	Multiplier int
}

// NewRandomFewestInterestsHost randomizes the per-shared-interest multiplier
// in [2, 5].
func NewRandomFewestInterestsHost(rng *rand.Rand) FewestInterestsHost {
	return FewestInterestsHost{Multiplier: 2 + rng.Intn(4)}
}

func (r FewestInterestsHost) ScoreRound(selected []guest.Person, ctx *Context) (map[string]float64, Metadata) {
	if len(selected) == 0 {
		return map[string]float64{}, Metadata{}
	}
	host := fewestInterestsHost(hostCandidates(selected, ctx))

	scores := make(map[string]float64, len(selected))
	for _, p := range selected {
		scores[p.Name] = float64(r.Multiplier * p.SharedInterests(host))
	}
	return scores, Metadata{Host: host.Name}
}

func (FewestInterestsHost) Complexity() int  { return 4 }
func (FewestInterestsHost) TypeName() string { return TypeFewestInterestsHost }
func (r FewestInterestsHost) Describe() string {
	return fmt.Sprintf("The guest with the fewest interests who has not yet hosted becomes the host, and each guest scores %d points per interest they share with the host.", r.Multiplier)
}

// FewestInterestsLargestValue: the host is selected as in FewestInterestsHost,
// and the host's own highest-valued interest becomes the topic; every guest
// scores their level in that topic.
type FewestInterestsLargestValue struct{}

func (FewestInterestsLargestValue) ScoreRound(selected []guest.Person, ctx *Context) (map[string]float64, Metadata) {
	if len(selected) == 0 {
		return map[string]float64{}, Metadata{}
	}
	host := fewestInterestsHost(hostCandidates(selected, ctx))

	topic, _, ok := bestInterest(host.Interests)
	if !ok {
		return zeroScores(selected), Metadata{Host: host.Name}
	}

	scores := make(map[string]float64, len(selected))
	for _, p := range selected {
		scores[p.Name] = float64(p.Interests[topic])
	}
	return scores, Metadata{Host: host.Name, Interest: topic}
}

func (FewestInterestsLargestValue) Complexity() int  { return 4 }
func (FewestInterestsLargestValue) TypeName() string { return TypeFewestInterestsLargestValue }
func (FewestInterestsLargestValue) Describe() string {
	return "The guest with the fewest interests who has not yet hosted becomes the host, their strongest interest becomes the topic, and each guest scores their level in it."
}
