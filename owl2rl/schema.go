package owl2rl

import "github.com/arkadyh/rdflow/triple"

// Restriction holds the fragments of an owl:Restriction class the gadgets
// below recognize: onProperty plus whichever of someValuesFrom,
// allValuesFrom, or a qualified cardinality-1 restriction (onClass +
// maxQualifiedCardinality "1") was declared on it. A restriction class may
// accumulate these fields across several T-Box triples, so Restriction is
// built incrementally as ExtractSchema walks the canonical T-Box.
type Restriction struct {
	OnProperty     uint32
	SomeValuesFrom *uint32
	AllValuesFrom  *uint32
	OnClass        *uint32
	MaxQC1         bool
}

// Schema is the canonical T-Box's OWL 2 RL-relevant facts, pre-extracted
// once so every gadget below is a pure function over the current round's
// A-Box snapshot plus this fixed schema — the Go equivalent of the Rust
// Property/Class records' OnceCell-lazy indices, just built eagerly since
// Go has no shared lazy-dataflow-index abstraction to piggyback on.
type Schema struct {
	FunctionalProps        map[uint32]bool
	InverseFunctionalProps map[uint32]bool
	SymmetricProps         map[uint32]bool
	PropertyChains         map[uint32][]uint32 // property -> chain of sub-properties, in order
	HasKey                 map[uint32]uint32   // class -> single key property (multi-property keys unsupported, per original_source)
	IntersectionOf         map[uint32][]uint32 // class -> member classes
	Restrictions           map[uint32]*Restriction
}

// ExtractSchema reads every OWL 2 RL-relevant declaration out of a
// canonical T-Box's triples, grounded on the pattern matches
// original_source/src/owl2rl/build_dataflow.rs performs while digesting
// the T-Box ahead of attaching rule gadgets.
func ExtractSchema(ts []triple.Triple) *Schema {
	s := &Schema{
		FunctionalProps:        map[uint32]bool{},
		InverseFunctionalProps: map[uint32]bool{},
		SymmetricProps:         map[uint32]bool{},
		PropertyChains:         map[uint32][]uint32{},
		HasKey:                 map[uint32]uint32{},
		IntersectionOf:         map[uint32][]uint32{},
		Restrictions:           map[uint32]*Restriction{},
	}

	first := map[uint32]uint32{}
	rest := map[uint32]uint32{}
	for _, t := range ts {
		switch t.P {
		case triple.First:
			first[t.S] = t.O
		case triple.Rest:
			rest[t.S] = t.O
		}
	}
	members := listWalker(first, rest)

	restriction := func(x uint32) *Restriction {
		r := s.Restrictions[x]
		if r == nil {
			r = &Restriction{}
			s.Restrictions[x] = r
		}
		return r
	}

	for _, t := range ts {
		switch t.P {
		case triple.Type:
			switch t.O {
			case triple.FunctionalProp:
				s.FunctionalProps[t.S] = true
			case triple.InverseFuncProp:
				s.InverseFunctionalProps[t.S] = true
			case triple.SymmetricProp:
				s.SymmetricProps[t.S] = true
			}
		case triple.PropertyChain:
			s.PropertyChains[t.S] = members(t.O)
		case triple.HasKey:
			if list := members(t.O); len(list) == 1 {
				s.HasKey[t.S] = list[0]
			}
			// Multi-property keys are not supported, matching
			// original_source/src/owl2rl/property_rules.rs's prp_key
			// assertion that property_list.len() == 1.
		case triple.IntersectionOf:
			s.IntersectionOf[t.S] = members(t.O)
		case triple.OnProperty:
			restriction(t.S).OnProperty = t.O
		case triple.SomeValuesFrom:
			v := t.O
			restriction(t.S).SomeValuesFrom = &v
		case triple.AllValuesFrom:
			v := t.O
			restriction(t.S).AllValuesFrom = &v
		case triple.OnClass:
			v := t.O
			restriction(t.S).OnClass = &v
		case triple.MaxQualCard:
			if t.O == triple.NonNegOne {
				restriction(t.S).MaxQC1 = true
			}
		}
	}
	return s
}
