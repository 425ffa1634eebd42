// Package task builds dinner-party evaluation tasks: the puzzle prompt, the
// target-score calibration against random candidate sets, score statistics
// for model answers, and the persisted JSONL record format.
package task

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/qemqemqem/dinnerbench/guest"
	"github.com/qemqemqem/dinnerbench/rules"
)

// DinnerParty is one guest-selection puzzle: a roster, the number of guests
// to pick, and the scoring configuration used to judge a selection. Scoring
// is either a composed rule sequence or, when Scoring is nil, the classic
// top-3-interests method.
type DinnerParty struct {
	TaskDescription string
	Roster          *guest.Roster
	SetSize         int
	Scoring         *rules.GameScoring
	TargetScore     float64

	// storedScores holds the calibration sample, sorted descending.
	storedScores []float64
}

// Config controls random puzzle generation.
type Config struct {
	NumPeople        int
	NumInterests     int
	SetSize          int
	MinInterests     int // per guest; default 1
	MaxInterests     int // per guest; default NumInterests
	TargetComplexity int // 0 means classic scoring with no rule rounds
	TargetRounds     int // composer round quota; default 3
	Samples          int // calibration samples; default 1000
	Kth              int // the kth-highest sample becomes the target; default 3
}

// NewDinnerParty wraps a roster and scoring configuration into a puzzle.
// Scoring may be nil for the classic method.
func NewDinnerParty(description string, roster *guest.Roster, setSize int, scoring *rules.GameScoring) *DinnerParty {
	return &DinnerParty{
		TaskDescription: description,
		Roster:          roster,
		SetSize:         setSize,
		Scoring:         scoring,
	}
}

// Random generates a puzzle: a random roster, a composed rule configuration
// when a complexity budget is given, and a calibrated target score.
func Random(cfg Config, rng *rand.Rand) (*DinnerParty, error) {
	roster, err := guest.RandomRoster(guest.RandomConfig{
		NumPeople:    cfg.NumPeople,
		NumInterests: cfg.NumInterests,
		MinInterests: cfg.MinInterests,
		MaxInterests: cfg.MaxInterests,
	}, rng)
	if err != nil {
		return nil, err
	}

	var scoring *rules.GameScoring
	if cfg.TargetComplexity > 0 {
		scoring = rules.Compose(rules.ComposeConfig{
			TargetComplexity:  cfg.TargetComplexity,
			TargetRounds:      cfg.TargetRounds,
			WeightingExponent: 2.0,
		}, roster, rng)
	}

	description := fmt.Sprintf("Select %d people for a dinner party that will have the most engaging conversations.", cfg.SetSize)
	party := NewDinnerParty(description, roster, cfg.SetSize, scoring)

	samples := cfg.Samples
	if samples <= 0 {
		samples = 1000
	}
	kth := cfg.Kth
	if kth <= 0 {
		kth = 3
	}
	party.CalibrateTarget(samples, kth, rng)
	return party, nil
}

// ScoreSet scores a candidate list of guest names. Names not on the roster
// contribute nothing.
func (p *DinnerParty) ScoreSet(names []string) float64 {
	if p.Scoring != nil {
		return p.Scoring.ScoreNames(p.Roster, names)
	}
	return p.classicScore(names)
}

// classicScore is the original fixed method: collect the selected guests'
// interests, rank interests by (number of holders, total level, name), and
// sum every level of the top 3. Repeated names count their guest once.
func (p *DinnerParty) classicScore(names []string) float64 {
	counts := make(map[string]int)
	sums := make(map[string]int)
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		person, ok := p.Roster.Find(name)
		if !ok {
			continue
		}
		for interest, level := range person.Interests {
			counts[interest]++
			sums[interest] += level
		}
	}

	interests := make([]string, 0, len(counts))
	for interest := range counts {
		interests = append(interests, interest)
	}
	sort.Slice(interests, func(i, j int) bool {
		a, b := interests[i], interests[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		if sums[a] != sums[b] {
			return sums[a] > sums[b]
		}
		return a < b
	})
	if len(interests) > 3 {
		interests = interests[:3]
	}

	total := 0
	for _, interest := range interests {
		total += sums[interest]
	}
	return float64(total)
}

// RandomSet draws a uniformly random candidate set of guest names.
func (p *DinnerParty) RandomSet(rng *rand.Rand) []string {
	names := p.Roster.Names()
	set := make([]string, p.SetSize)
	for i, idx := range rng.Perm(len(names))[:p.SetSize] {
		set[i] = names[idx]
	}
	return set
}

// CalibrateTarget samples random candidate sets, scores each, and takes the
// kth highest as the target score to beat. The sample is kept for the
// statistics of later answers.
func (p *DinnerParty) CalibrateTarget(samples, kth int, rng *rand.Rand) float64 {
	p.storedScores = make([]float64, 0, samples)
	for i := 0; i < samples; i++ {
		p.storedScores = append(p.storedScores, p.ScoreSet(p.RandomSet(rng)))
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(p.storedScores)))

	if kth <= len(p.storedScores) {
		p.TargetScore = p.storedScores[kth-1]
	} else if len(p.storedScores) > 0 {
		p.TargetScore = p.storedScores[len(p.storedScores)-1]
	}
	return p.TargetScore
}

// Prompt renders the question text: the roster, the selection request, the
// scoring explanation, and the target score.
func (p *DinnerParty) Prompt() string {
	var b strings.Builder
	b.WriteString(p.TaskDescription)
	b.WriteString("\n\nPeople and their interests:\n")
	for i, person := range p.Roster.People() {
		parts := make([]string, 0, len(person.Interests))
		for _, interest := range person.InterestNames() {
			parts = append(parts, fmt.Sprintf("%s (level %d)", interest, person.Interests[interest]))
		}
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, person.Name, strings.Join(parts, ", "))
	}
	fmt.Fprintf(&b, "\nPlease choose %d people that would create the most engaging dinner party.\n", p.SetSize)

	b.WriteString("\nScoring Explanation:\n")
	if p.Scoring != nil {
		b.WriteString("The party is scored over several rounds of conversation. In each round:\n")
		b.WriteString(p.Scoring.Describe())
		b.WriteString("Each guest's points accumulate across rounds, and the final score is the sum over all guests.\n")
	} else {
		b.WriteString("The dinner party is scored based on the interests of the selected people. ")
		b.WriteString("The scoring process works as follows:\n")
		b.WriteString("1. All interests of the selected people are collected.\n")
		b.WriteString("2. Interests are sorted by: number of people sharing the interest (descending), ")
		b.WriteString("sum of interest levels (descending), and alphabetically.\n")
		b.WriteString("3. The top 3 interests are selected.\n")
		b.WriteString("4. The final score is the sum of all interest levels for these top 3 interests.\n")
		b.WriteString("Your goal is to maximize this score by selecting a diverse group with strong, shared interests.\n")
	}
	fmt.Fprintf(&b, "\nYour score to beat is: %g.", p.TargetScore)
	return b.String()
}
