package task

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/qemqemqem/dinnerbench/guest"
	"github.com/qemqemqem/dinnerbench/rules"
)

// PersonJSON is the persisted form of one guest.
type PersonJSON struct {
	Name      string         `json:"name"`
	Interests map[string]int `json:"interests"`
}

// ScoringGuide carries everything needed to rebuild an identically scoring
// puzzle: the roster, the set size, and the rule configuration when one was
// composed. The interest universe is persisted explicitly because it can be
// wider than the union of the guests' interests.
type ScoringGuide struct {
	TaskDescription  string          `json:"task_description"`
	People           []PersonJSON    `json:"people"`
	InterestUniverse []string        `json:"interest_universe,omitempty"`
	SetSize          int             `json:"set_size"`
	ScoringRules     json.RawMessage `json:"scoring_rules,omitempty"`
}

// Record is one line of a generated JSONL task file.
type Record struct {
	QuestionID   string       `json:"question_id"`
	Question     string       `json:"question"`
	TargetScore  float64      `json:"target_score"`
	ScoringGuide ScoringGuide `json:"scoring_guide"`
}

// Record converts the puzzle into its persisted form, tagging it with a
// fresh question ID.
func (p *DinnerParty) Record() (Record, error) {
	guide := ScoringGuide{
		TaskDescription:  p.TaskDescription,
		SetSize:          p.SetSize,
		InterestUniverse: p.Roster.InterestUniverse(),
	}
	for _, person := range p.Roster.People() {
		guide.People = append(guide.People, PersonJSON{Name: person.Name, Interests: person.Interests})
	}
	if p.Scoring != nil {
		data, err := json.Marshal(p.Scoring)
		if err != nil {
			return Record{}, fmt.Errorf("failed to marshal scoring rules: %w", err)
		}
		guide.ScoringRules = data
	}

	return Record{
		QuestionID:   uuid.NewString(),
		Question:     p.Prompt(),
		TargetScore:  p.TargetScore,
		ScoringGuide: guide,
	}, nil
}

// FromRecord rebuilds a puzzle from its persisted form. The rebuilt puzzle
// scores any candidate set exactly as the original did; it has no calibration
// sample until CalibrateTarget is run again.
func FromRecord(rec Record) (*DinnerParty, error) {
	people := make([]guest.Person, len(rec.ScoringGuide.People))
	for i, pj := range rec.ScoringGuide.People {
		people[i] = guest.NewPerson(pj.Name, pj.Interests)
	}
	roster, err := guest.NewRoster(people, rec.ScoringGuide.InterestUniverse)
	if err != nil {
		return nil, err
	}

	var scoring *rules.GameScoring
	if len(rec.ScoringGuide.ScoringRules) > 0 {
		scoring, err = rules.UnmarshalGameScoring(rec.ScoringGuide.ScoringRules)
		if err != nil {
			return nil, err
		}
	}

	party := NewDinnerParty(rec.ScoringGuide.TaskDescription, roster, rec.ScoringGuide.SetSize, scoring)
	party.TargetScore = rec.TargetScore
	return party, nil
}
