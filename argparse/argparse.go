// Package argparse parses a command line whose grammar mixes ordinary
// options with options that collect every following token, flag-like or
// not, up to the next registered alias.
//
// Parsing runs in two passes. Marker tokens, built from a prefix character
// no real alias uses, are injected twice after every collect alias. The
// primary pass treats each collect option as taking exactly one value and
// so stores the first marker as a placeholder; the second marker and every
// token the primary pass does not recognize land in the residual. The
// secondary pass knows only the markers, so it gathers everything between
// them regardless of how it looks. Finally the placeholders are replaced by
// the gathered lists.
//
// Injection does not know where values end, so a collect alias is always
// taken for an option, even behind "--" or inside another collection. A
// second occurrence of the same collect option replaces the first one's
// tokens.
package argparse

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Result is the outcome of one parse.
type Result struct {
	values *orderedmap.OrderedMap[string, []string]
	// Unknown holds the tokens no option consumed, in their original order.
	Unknown []string
}

// Lookup returns the values of name and whether the option occurred or
// has a default.
func (r *Result) Lookup(name string) ([]string, bool) {
	return r.values.Get(name)
}

// Has reports whether name occurred or has a default.
func (r *Result) Has(name string) bool {
	_, ok := r.values.Get(name)
	return ok
}

// Strings returns the values of name, nil if absent.
func (r *Result) Strings(name string) []string {
	v, _ := r.values.Get(name)
	return v
}

// String returns the first value of name, or "" if there is none.
func (r *Result) String(name string) string {
	if v, _ := r.values.Get(name); len(v) > 0 {
		return v[0]
	}
	return ""
}

// Names returns the names present in the result, in registration order.
func (r *Result) Names() []string {
	names := make([]string, 0, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Parse is ParseKnown that also fails on tokens no option consumed.
func (r *Registry) Parse(args []string) (*Result, error) {
	res, err := r.ParseKnown(args)
	if err != nil {
		return nil, err
	}
	if len(res.Unknown) > 0 {
		return nil, &UnrecognizedArgumentsError{Args: res.Unknown}
	}
	return res, nil
}

// ParseKnown parses args against the registry. Tokens that no option
// consumed are returned in Result.Unknown. Every call builds its own marker
// set and parsers; args and the registry are left untouched.
func (r *Registry) ParseKnown(args []string) (*Result, error) {
	prefix, err := SelectPrefix(r.PrefixChars())
	if err != nil {
		return nil, err
	}
	markers := newMarkerSet(r, prefix)

	injected := Inject(args, markers.aliases(r))

	primary, residual, err := r.primaryParser().parse(injected)
	if err != nil {
		return nil, err
	}
	collected, unknown, err := markers.parser().parse(residual)
	if err != nil {
		return nil, err
	}
	return &Result{
		values:  merge(primary, collected, markers),
		Unknown: unknown,
	}, nil
}

// primaryParser builds the first pass: every registered alias, with collect
// options lowered to a single placeholder value.
func (r *Registry) primaryParser() *parser {
	p := newParser(r.PrefixChars(), true, true)
	for _, opt := range r.options {
		po := &parserOption{
			name:     opt.Name,
			arity:    opt.Arity,
			inline:   true,
			required: opt.Required,
			def:      opt.Default,
		}
		if opt.Accumulate && opt.Arity.Count() != 0 && !opt.Arity.IsCollect() {
			po.accumulate = true
		}
		if opt.Arity.IsCollect() {
			po.arity = Fixed(1)
			po.inline = false
		}
		p.add(po, opt.Aliases...)
	}
	return p
}

// parser builds the second pass, which recognizes nothing but the markers.
func (m *markerSet) parser() *parser {
	p := newParser(string(m.prefix), false, false)
	for _, name := range m.names {
		p.add(&parserOption{name: name, arity: CollectUntilNextKnown()}, m.byName[name])
	}
	return p
}

// merge replaces every placeholder value in primary with the list the
// secondary pass collected for the same option.
func merge(primary, collected *orderedmap.OrderedMap[string, []string], markers *markerSet) *orderedmap.OrderedMap[string, []string] {
	out := orderedmap.New[string, []string]()
	for pair := primary.Oldest(); pair != nil; pair = pair.Next() {
		value := pair.Value
		if len(value) == 1 && markers.isMarker(value[0]) {
			value, _ = collected.Get(markers.byMark[value[0]])
			if value == nil {
				value = []string{}
			}
		}
		out.Set(pair.Key, value)
	}
	return out
}
