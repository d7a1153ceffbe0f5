package argparse

import "strconv"

type arityKind int

const (
	arityFixed arityKind = iota
	arityOneOrMore
	arityCollect
)

// Arity describes how many value tokens an option consumes once invoked.
type Arity struct {
	kind arityKind
	n    int
}

// Fixed returns an arity of exactly n values. Fixed(0) is a presence flag.
func Fixed(n int) Arity {
	if n < 0 {
		n = 0
	}
	return Arity{kind: arityFixed, n: n}
}

// OneOrMore consumes values until the next token that looks like a flag.
// At least one value is required.
func OneOrMore() Arity {
	return Arity{kind: arityOneOrMore}
}

// CollectUntilNextKnown consumes every following token, including ones that
// look like flags, up to the next registered alias or the end of input.
// An empty collection is valid.
func CollectUntilNextKnown() Arity {
	return Arity{kind: arityCollect}
}

// IsCollect reports whether a is CollectUntilNextKnown.
func (a Arity) IsCollect() bool {
	return a.kind == arityCollect
}

// Count returns the number of values of a Fixed arity and -1 otherwise.
func (a Arity) Count() int {
	switch a.kind {
	case arityFixed:
		return a.n
	case arityOneOrMore, arityCollect:
		return -1
	}
	panic("argparse: unknown arity kind " + strconv.Itoa(int(a.kind)))
}

func (a Arity) String() string {
	switch a.kind {
	case arityFixed:
		return strconv.Itoa(a.n)
	case arityOneOrMore:
		return "+"
	case arityCollect:
		return "..."
	}
	panic("argparse: unknown arity kind " + strconv.Itoa(int(a.kind)))
}
