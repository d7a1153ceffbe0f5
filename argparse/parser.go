package argparse

import (
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// parserOption is an option as seen by a single parser pass.
type parserOption struct {
	name     string
	display  string
	arity    Arity
	inline   bool
	required bool
	def      []string
	// accumulate appends each occurrence to the earlier ones.
	accumulate bool
}

// parser is a plain single-pass flag parser. Both passes of ParseKnown use
// it: the primary one with the registered aliases, the secondary one with
// the marker tokens only.
type parser struct {
	prefixes   string
	options    []*parserOption
	byAlias    map[string]*parserOption
	inlineForm bool // recognize alias=value
	dashdash   bool // "--" ends option recognition
}

func newParser(prefixes string, inlineForm, dashdash bool) *parser {
	return &parser{
		prefixes:   prefixes,
		byAlias:    make(map[string]*parserOption),
		inlineForm: inlineForm,
		dashdash:   dashdash,
	}
}

func (p *parser) add(opt *parserOption, aliases ...string) {
	if opt.display == "" && len(aliases) > 0 {
		opt.display = aliases[0]
	}
	p.options = append(p.options, opt)
	for _, alias := range aliases {
		p.byAlias[alias] = opt
	}
}

// parse consumes tokens and returns the values of every option that occurred
// or has a default, in option order, plus the tokens nothing consumed.
func (p *parser) parse(tokens []string) (*orderedmap.OrderedMap[string, []string], []string, error) {
	got := make(map[string][]string)
	var residual []string

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if p.dashdash && tok == "--" {
			residual = append(residual, tokens[i:]...)
			break
		}
		opt, inline, hasInline := p.match(tok)
		if opt == nil {
			residual = append(residual, tok)
			i++
			continue
		}
		i++
		if hasInline {
			if err := checkInline(opt, tok); err != nil {
				return nil, nil, err
			}
			record(got, opt, []string{inline})
			continue
		}
		n, err := p.consume(opt, tokens[i:])
		if err != nil {
			return nil, nil, err
		}
		record(got, opt, tokens[i:i+n])
		i += n
	}

	var missing []string
	for _, opt := range p.options {
		if _, ok := got[opt.name]; !ok && opt.required {
			missing = append(missing, opt.display)
		}
	}
	if len(missing) > 0 {
		return nil, nil, &MissingRequiredOptionError{Options: missing}
	}

	values := orderedmap.New[string, []string]()
	for _, opt := range p.options {
		if v, ok := got[opt.name]; ok {
			values.Set(opt.name, v)
		} else if opt.def != nil && opt.arity.Count() != 0 {
			values.Set(opt.name, append([]string{}, opt.def...))
		}
	}
	return values, residual, nil
}

// record stores the values of one occurrence of opt. Without accumulation
// the last occurrence wins.
func record(got map[string][]string, opt *parserOption, values []string) {
	if opt.accumulate {
		got[opt.name] = append(got[opt.name], values...)
		return
	}
	got[opt.name] = append([]string{}, values...)
}

// match resolves tok to an option, either exactly or in the alias=value form.
func (p *parser) match(tok string) (opt *parserOption, inline string, hasInline bool) {
	if opt, ok := p.byAlias[tok]; ok {
		return opt, "", false
	}
	if !p.inlineForm {
		return nil, "", false
	}
	name, value, ok := strings.Cut(tok, "=")
	if !ok {
		return nil, "", false
	}
	if opt, found := p.byAlias[name]; found {
		return opt, value, true
	}
	return nil, "", false
}

func checkInline(opt *parserOption, tok string) error {
	if !opt.inline {
		return &UnknownFlagFormatError{Token: tok, Reason: "does not accept an inline value"}
	}
	switch n := opt.arity.Count(); {
	case n == 0:
		return &UnknownFlagFormatError{Token: tok, Reason: "ignored explicit argument"}
	case n > 1:
		return &UnknownFlagFormatError{Token: tok, Reason: "expected " + strconv.Itoa(n) + " arguments, got one inline value"}
	}
	return nil
}

// consume returns how many of rest belong to opt.
func (p *parser) consume(opt *parserOption, rest []string) (int, error) {
	switch opt.arity.kind {
	case arityFixed:
		for j := 0; j < opt.arity.n; j++ {
			if j >= len(rest) || p.looksLikeFlag(rest[j]) {
				return 0, &ArityError{Alias: opt.display, Arity: opt.arity}
			}
		}
		return opt.arity.n, nil
	case arityOneOrMore:
		n := 0
		for n < len(rest) && !p.looksLikeFlag(rest[n]) {
			n++
		}
		if n == 0 {
			return 0, &ArityError{Alias: opt.display, Arity: opt.arity}
		}
		return n, nil
	case arityCollect:
		n := 0
		for n < len(rest) && !p.isAlias(rest[n]) {
			n++
		}
		return n, nil
	}
	panic("argparse: unknown arity kind " + strconv.Itoa(int(opt.arity.kind)))
}

func (p *parser) isAlias(tok string) bool {
	opt, _, _ := p.match(tok)
	return opt != nil
}

// looksLikeFlag reports whether tok would be read as an option by this
// parser's grammar, known or not. Negative numbers are values.
func (p *parser) looksLikeFlag(tok string) bool {
	if p.isAlias(tok) {
		return true
	}
	if len(tok) < 2 || strings.IndexByte(p.prefixes, tok[0]) < 0 {
		return false
	}
	return !(tok[0] == '-' && isNegativeNumber(tok[1:]))
}

// isNegativeNumber reports whether s, the part after the dash, has the form
// of \d+ or \d*\.\d+.
func isNegativeNumber(s string) bool {
	intPart, frac, hasDot := strings.Cut(s, ".")
	if hasDot {
		return allDigits(intPart, true) && allDigits(frac, false)
	}
	return allDigits(intPart, false)
}

func allDigits(s string, allowEmpty bool) bool {
	if s == "" {
		return allowEmpty
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
