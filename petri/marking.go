package petri

// Marking is a token assignment over all places, keyed by place name.
type Marking map[string]int

// InitialMarking derives the marking set at construction time.
func (n *Net) InitialMarking() Marking {
	m := make(Marking, len(n.places))
	for _, p := range n.places {
		m[p.Name] = p.Tokens
	}
	return m
}

// Clone creates a deep copy of the marking.
func (m Marking) Clone() Marking {
	clone := make(Marking, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// Equals checks if two markings are identical.
func (m Marking) Equals(other Marking) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		if other[k] != v {
			return false
		}
	}
	return true
}

// Enabled reports whether every origin of the transition holds a token.
func (m Marking) Enabled(t *Transition) bool {
	for _, orig := range t.Origins {
		if m[orig.Name] < 1 {
			return false
		}
	}
	return true
}

// Fire consumes a token from every origin and produces one in every
// destination, returning the successor marking. The receiver is left
// unchanged.
func (m Marking) Fire(t *Transition) (Marking, error) {
	if !m.Enabled(t) {
		return nil, ErrTransitionNotEnabled
	}
	next := m.Clone()
	for _, orig := range t.Origins {
		next[orig.Name]--
	}
	for _, dest := range t.Destinations {
		next[dest.Name]++
	}
	return next, nil
}
