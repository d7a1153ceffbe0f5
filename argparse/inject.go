package argparse

// Inject copies raw and appends the marker twice after every token that is
// exactly an alias in collect. The first copy becomes the option's value in
// the primary pass; the second survives into the residual for the secondary
// pass. raw is not modified.
func Inject(raw []string, collect map[string]string) []string {
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		out = append(out, tok)
		if marker, ok := collect[tok]; ok {
			out = append(out, marker, marker)
		}
	}
	return out
}
