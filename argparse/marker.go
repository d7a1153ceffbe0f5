package argparse

import "strings"

// MarkerPrefixCandidates is the ordered pool SelectPrefix draws from.
const MarkerPrefixCandidates = "?!#$%&()*+,-./:;<=>@[]^_{|}"

const markerInfix = "dummy"

// SelectPrefix returns the first candidate in MarkerPrefixCandidates that
// does not appear in forbidden. The result depends only on forbidden.
func SelectPrefix(forbidden string) (byte, error) {
	for i := 0; i < len(MarkerPrefixCandidates); i++ {
		c := MarkerPrefixCandidates[i]
		if strings.IndexByte(forbidden, c) < 0 {
			return c, nil
		}
	}
	return 0, ErrNoAvailablePrefix
}

// MarkerFor returns the marker token of the collect option name.
//
// A wrapped command argument that is literally equal to a marker token is
// taken for the marker and breaks the parse. The grammar does not guard
// against this; pick option names that make such a collision implausible.
// Likewise a collect alias behind "--" still gets its markers and starts a
// new collection.
func MarkerFor(prefix byte, name string) string {
	return string(prefix) + markerInfix + name
}

// isMarkerOf reports whether alias equals the marker of name for any
// candidate prefix.
func isMarkerOf(alias, name string) bool {
	if len(alias) < 1 || strings.IndexByte(MarkerPrefixCandidates, alias[0]) < 0 {
		return false
	}
	return alias[1:] == markerInfix+name
}

// markerSet maps every collect option to its marker and back.
type markerSet struct {
	prefix byte
	names  []string          // collect option names, registration order
	byName map[string]string // name -> marker
	byMark map[string]string // marker -> name
}

func newMarkerSet(r *Registry, prefix byte) *markerSet {
	m := &markerSet{
		prefix: prefix,
		byName: make(map[string]string),
		byMark: make(map[string]string),
	}
	for _, opt := range r.options {
		if !opt.Arity.IsCollect() {
			continue
		}
		marker := MarkerFor(prefix, opt.Name)
		m.names = append(m.names, opt.Name)
		m.byName[opt.Name] = marker
		m.byMark[marker] = opt.Name
	}
	return m
}

// aliases maps every alias of every collect option to its marker, the form
// Inject expects.
func (m *markerSet) aliases(r *Registry) map[string]string {
	out := make(map[string]string)
	for _, opt := range r.options {
		if marker, ok := m.byName[opt.Name]; ok {
			for _, alias := range opt.Aliases {
				out[alias] = marker
			}
		}
	}
	return out
}

func (m *markerSet) isMarker(tok string) bool {
	_, ok := m.byMark[tok]
	return ok
}
