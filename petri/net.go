// Package petri implements the 1-safe place/transition net model used
// as the intermediate representation between grounded planning tasks
// and their finite-domain encoding. Places and transitions are value
// types compared structurally; the net keeps insertion order for
// deterministic output while enforcing set-like membership.
package petri

import (
	"fmt"
	"sort"
	"strings"
)

// Place is a binary-valued state slot. After net construction the
// token count is always 0 or 1; the translation guarantees 1-safety by
// construction rather than checking it at runtime.
type Place struct {
	Name   string
	Tokens int
}

// NewPlace creates a place with zero tokens.
func NewPlace(name string) *Place {
	return &Place{Name: name}
}

// AddToken adds a single token to the place.
func (p *Place) AddToken() {
	p.Tokens++
}

// Equal reports structural equality by (name, tokens).
func (p *Place) Equal(other *Place) bool {
	return p.Name == other.Name && p.Tokens == other.Tokens
}

// String returns a human-readable representation.
func (p *Place) String() string {
	return fmt.Sprintf("Place(%s, %d)", p.Name, p.Tokens)
}

// Transition is a state-change rule that consumes a token from every
// origin place and produces a token in every destination place.
// Identity is by the *set* of origins, the set of destinations, and
// cost; order and duplicates are irrelevant.
type Transition struct {
	Name         string
	Origins      []*Place
	Destinations []*Place
	Cost         int
}

// NewTransition creates a transition. Origins and destinations are
// collapsed by place name so no place appears twice on either side.
func NewTransition(name string, origins, destinations []*Place, cost int) *Transition {
	return &Transition{
		Name:         name,
		Origins:      dedupeByName(origins),
		Destinations: dedupeByName(destinations),
		Cost:         cost,
	}
}

// Signature returns a canonical key for set-based identity: the sorted
// unique origin names, sorted unique destination names, and cost.
func (t *Transition) Signature() string {
	return fmt.Sprintf("%s|%s|%d",
		strings.Join(sortedNames(t.Origins), "\x00"),
		strings.Join(sortedNames(t.Destinations), "\x00"),
		t.Cost)
}

// Equal reports set-based structural equality.
func (t *Transition) Equal(other *Transition) bool {
	return t.Signature() == other.Signature()
}

// String returns a human-readable representation.
func (t *Transition) String() string {
	return fmt.Sprintf("Transition(%s, %v -> %v, %d)",
		t.Name, sortedNames(t.Origins), sortedNames(t.Destinations), t.Cost)
}

func dedupeByName(places []*Place) []*Place {
	seen := make(map[string]bool, len(places))
	out := make([]*Place, 0, len(places))
	for _, p := range places {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		out = append(out, p)
	}
	return out
}

func sortedNames(places []*Place) []string {
	names := make([]string, 0, len(places))
	for _, p := range places {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// Net is an ordered set of places and transitions. Membership is
// set-like: a duplicate place name is rejected, a structurally
// duplicate transition is absorbed.
type Net struct {
	places      []*Place
	transitions []*Transition
	placeIndex  map[string]*Place
	transSeen   map[string]bool
}

// NewNet creates an empty net.
func NewNet() *Net {
	return &Net{
		placeIndex: make(map[string]*Place),
		transSeen:  make(map[string]bool),
	}
}

// AddPlace inserts a place. Each place must correspond to exactly one
// atom, so a duplicate name is a construction bug.
func (n *Net) AddPlace(p *Place) error {
	if _, exists := n.placeIndex[p.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePlace, p.Name)
	}
	n.places = append(n.places, p)
	n.placeIndex[p.Name] = p
	return nil
}

// AddTransition inserts a transition. A transition that is
// structurally identical to one already present is skipped, keeping
// membership set-like.
func (n *Net) AddTransition(t *Transition) {
	sig := t.Signature()
	if n.transSeen[sig] {
		return
	}
	n.transSeen[sig] = true
	n.transitions = append(n.transitions, t)
}

// Place returns the place with the given name, or nil.
func (n *Net) Place(name string) *Place {
	return n.placeIndex[name]
}

// Places returns the places in insertion order.
func (n *Net) Places() []*Place {
	return n.places
}

// Transitions returns the transitions in insertion order.
func (n *Net) Transitions() []*Transition {
	return n.transitions
}

// Equal reports set-based equality of places and transitions,
// ignoring insertion order.
func (n *Net) Equal(other *Net) bool {
	if len(n.places) != len(other.places) {
		return false
	}
	for _, p := range n.places {
		op := other.placeIndex[p.Name]
		if op == nil || !p.Equal(op) {
			return false
		}
	}
	if len(n.transitions) != len(other.transitions) {
		return false
	}
	for _, t := range n.transitions {
		if !other.transSeen[t.Signature()] {
			return false
		}
	}
	return true
}
