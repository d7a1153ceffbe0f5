package argparse

// OptionSpec declares one option of a grammar.
type OptionSpec struct {
	// Name is the canonical name results are keyed by.
	Name string
	// Aliases are the literal tokens that invoke the option, e.g. "-x", "--x".
	Aliases  []string
	Arity    Arity
	Required bool
	// Default is used when the option is absent. Ignored for Fixed(0).
	Default []string
	// Accumulate appends the values of every occurrence instead of keeping
	// the last one. It applies to Fixed(n) with n > 0 and OneOrMore; collect
	// options always keep their last occurrence.
	Accumulate bool
	Help       string
}

// Registry holds the options of one grammar, in registration order.
// Registration is its only mutation; parsing never changes it.
type Registry struct {
	options []OptionSpec
	byAlias map[string]int
	byName  map[string]int
}

func NewRegistry() *Registry {
	return &Registry{
		byAlias: make(map[string]int),
		byName:  make(map[string]int),
	}
}

// Register adds spec to the grammar. It fails if the name or any alias is
// already taken, or if an alias collides with a marker token.
func (r *Registry) Register(spec OptionSpec) error {
	if spec.Name == "" {
		return &DuplicateOptionError{}
	}
	if _, ok := r.byName[spec.Name]; ok {
		return &DuplicateOptionError{Name: spec.Name}
	}
	if len(spec.Aliases) == 0 {
		return &InvalidAliasError{Option: spec.Name}
	}
	seen := make(map[string]bool, len(spec.Aliases))
	for _, alias := range spec.Aliases {
		if alias == "" || isAlphanumeric(alias[0]) {
			return &InvalidAliasError{Alias: alias, Option: spec.Name}
		}
		if seen[alias] {
			return &DuplicateAliasError{Alias: alias, Option: spec.Name, Existing: spec.Name}
		}
		seen[alias] = true
		if i, ok := r.byAlias[alias]; ok {
			return &DuplicateAliasError{Alias: alias, Option: spec.Name, Existing: r.options[i].Name}
		}
		if r.reserved(alias, spec) {
			return &DuplicateAliasError{Alias: alias, Option: spec.Name, Reserved: true}
		}
	}
	// A new collect option reserves markers that existing aliases may already use.
	if spec.Arity.IsCollect() {
		for _, opt := range r.options {
			for _, alias := range opt.Aliases {
				if isMarkerOf(alias, spec.Name) {
					return &DuplicateAliasError{Alias: alias, Option: opt.Name, Reserved: true}
				}
			}
		}
	}

	spec.Aliases = append([]string(nil), spec.Aliases...)
	if spec.Default != nil {
		spec.Default = append([]string{}, spec.Default...)
	}
	idx := len(r.options)
	r.options = append(r.options, spec)
	r.byName[spec.Name] = idx
	for _, alias := range spec.Aliases {
		r.byAlias[alias] = idx
	}
	return nil
}

// reserved reports whether alias could equal the marker of a collect option,
// counting pending as if it were already registered.
func (r *Registry) reserved(alias string, pending OptionSpec) bool {
	if pending.Arity.IsCollect() && isMarkerOf(alias, pending.Name) {
		return true
	}
	for _, opt := range r.options {
		if opt.Arity.IsCollect() && isMarkerOf(alias, opt.Name) {
			return true
		}
	}
	return false
}

// Options returns a copy of the registered specs in registration order.
func (r *Registry) Options() []OptionSpec {
	return append([]OptionSpec(nil), r.options...)
}

// Lookup returns the spec registered under name.
func (r *Registry) Lookup(name string) (OptionSpec, bool) {
	i, ok := r.byName[name]
	if !ok {
		return OptionSpec{}, false
	}
	return r.options[i], true
}

// PrefixChars returns the distinct first characters of every alias, in the
// order they were first registered.
func (r *Registry) PrefixChars() string {
	var chars []byte
	for _, opt := range r.options {
		for _, alias := range opt.Aliases {
			if !containsByte(chars, alias[0]) {
				chars = append(chars, alias[0])
			}
		}
	}
	return string(chars)
}

func isAlphanumeric(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func containsByte(s []byte, c byte) bool {
	for _, b := range s {
		if b == c {
			return true
		}
	}
	return false
}
