// Package guest provides the dinner-party roster model: named guests with
// leveled interests, and the roster's interest universe.
package guest

import (
	"fmt"
	"sort"
)

// Person is a dinner-party guest with a set of leveled interests.
// Interest levels are always positive; entries with zero or negative levels
// are dropped at construction. A Person is never mutated after construction.
type Person struct {
	Name      string
	Interests map[string]int
}

// NewPerson creates a Person, dropping any interest with a non-positive level.
func NewPerson(name string, interests map[string]int) Person {
	cleaned := make(map[string]int, len(interests))
	for interest, level := range interests {
		if level > 0 {
			cleaned[interest] = level
		}
	}
	return Person{Name: name, Interests: cleaned}
}

// InterestNames returns the person's interest names in alphabetical order.
func (p Person) InterestNames() []string {
	names := make([]string, 0, len(p.Interests))
	for interest := range p.Interests {
		names = append(names, interest)
	}
	sort.Strings(names)
	return names
}

// SharedInterests counts interests held by both people.
func (p Person) SharedInterests(other Person) int {
	count := 0
	for interest := range p.Interests {
		if other.Interests[interest] > 0 {
			count++
		}
	}
	return count
}

// Roster is an ordered collection of uniquely named guests, plus the full
// universe of interest names available in the puzzle. The universe is a
// superset of any single guest's interests; rules that pick a global topic
// draw from it rather than from one guest.
type Roster struct {
	people   []Person
	universe []string
	byName   map[string]Person
}

// NewRoster builds a roster from people and an interest universe. Names must
// be unique. If universe is nil, it defaults to the union of the guests'
// interests, alphabetically ordered.
func NewRoster(people []Person, universe []string) (*Roster, error) {
	byName := make(map[string]Person, len(people))
	for _, p := range people {
		if _, ok := byName[p.Name]; ok {
			return nil, fmt.Errorf("duplicate guest name %q", p.Name)
		}
		byName[p.Name] = p
	}

	if universe == nil {
		seen := make(map[string]bool)
		for _, p := range people {
			for interest := range p.Interests {
				seen[interest] = true
			}
		}
		for interest := range seen {
			universe = append(universe, interest)
		}
		sort.Strings(universe)
	}

	return &Roster{
		people:   append([]Person(nil), people...),
		universe: append([]string(nil), universe...),
		byName:   byName,
	}, nil
}

// People returns the guests in roster order.
func (r *Roster) People() []Person {
	return r.people
}

// Names returns the guest names in roster order.
func (r *Roster) Names() []string {
	names := make([]string, len(r.people))
	for i, p := range r.people {
		names[i] = p.Name
	}
	return names
}

// Find returns the guest with the given name, if present.
func (r *Roster) Find(name string) (Person, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// InterestUniverse returns all interest names available in the puzzle.
func (r *Roster) InterestUniverse() []string {
	return r.universe
}

// Size returns the number of guests.
func (r *Roster) Size() int {
	return len(r.people)
}
