package argparse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		description string
		existing    []OptionSpec
		spec        OptionSpec
		expectErr   string
	}{
		{
			description: "ok",
			spec:        OptionSpec{Name: "a", Aliases: []string{"-a", "--a"}, Arity: Fixed(1)},
		},
		{
			description: "empty name",
			spec:        OptionSpec{Aliases: []string{"-a"}},
			expectErr:   "argparse: option name must not be empty",
		},
		{
			description: "repeated name",
			existing:    []OptionSpec{{Name: "a", Aliases: []string{"-a"}}},
			spec:        OptionSpec{Name: "a", Aliases: []string{"-b"}},
			expectErr:   `argparse: option "a" already registered`,
		},
		{
			description: "no aliases",
			spec:        OptionSpec{Name: "a"},
			expectErr:   `argparse: option "a" needs at least one non-empty alias`,
		},
		{
			description: "alias without prefix",
			spec:        OptionSpec{Name: "a", Aliases: []string{"a"}},
			expectErr:   `argparse: alias "a" of option "a" must start with a prefix character`,
		},
		{
			description: "alias taken by another option",
			existing:    []OptionSpec{{Name: "a", Aliases: []string{"-a", "--x"}}},
			spec:        OptionSpec{Name: "b", Aliases: []string{"-b", "--x"}},
			expectErr:   `argparse: alias "--x" of option "b" conflicts with option "a"`,
		},
		{
			description: "alias repeated in one spec",
			spec:        OptionSpec{Name: "b", Aliases: []string{"-b", "-b"}},
			expectErr:   `argparse: alias "-b" of option "b" conflicts with option "b"`,
		},
		{
			description: "alias equal to an existing marker",
			existing:    []OptionSpec{{Name: "exec", Aliases: []string{"--exec"}, Arity: CollectUntilNextKnown()}},
			spec:        OptionSpec{Name: "b", Aliases: []string{"?dummyexec"}},
			expectErr:   `argparse: alias "?dummyexec" of option "b" is reserved for marker tokens`,
		},
		{
			description: "collect option whose marker an alias already uses",
			existing:    []OptionSpec{{Name: "b", Aliases: []string{"+dummyexec"}}},
			spec:        OptionSpec{Name: "exec", Aliases: []string{"--exec"}, Arity: CollectUntilNextKnown()},
			expectErr:   `argparse: alias "+dummyexec" of option "b" is reserved for marker tokens`,
		},
		{
			description: "collect option aliasing its own marker",
			spec:        OptionSpec{Name: "exec", Aliases: []string{"#dummyexec"}, Arity: CollectUntilNextKnown()},
			expectErr:   `argparse: alias "#dummyexec" of option "exec" is reserved for marker tokens`,
		},
		{
			description: "marker-like alias of a plain option is fine",
			existing:    []OptionSpec{{Name: "a", Aliases: []string{"-a"}}},
			spec:        OptionSpec{Name: "b", Aliases: []string{"?dummya"}},
		},
	} {
		tc := tc // enable parallel sub-tests
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()
			r := NewRegistry()
			for _, spec := range tc.existing {
				require.NoError(t, r.Register(spec))
			}
			err := r.Register(tc.spec)
			assertEqualError(t, tc.expectErr, err)
		})
	}
}

func TestRegisterErrorTypes(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	require.NoError(t, r.Register(OptionSpec{Name: "a", Aliases: []string{"-a"}}))

	err := r.Register(OptionSpec{Name: "b", Aliases: []string{"-a"}})
	var dup *DuplicateAliasError
	require.True(t, errors.As(err, &dup))
	require.Equal(t, "a", dup.Existing)
	require.False(t, dup.Reserved)
	require.NotErrorIs(t, err, ErrUsage)

	var invalid *InvalidAliasError
	require.True(t, errors.As(r.Register(OptionSpec{Name: "c", Aliases: []string{"c"}}), &invalid))
}

func TestRegistryCopiesSpec(t *testing.T) {
	t.Parallel()
	aliases := []string{"-a"}
	def := []string{"x"}
	r := NewRegistry()
	require.NoError(t, r.Register(OptionSpec{Name: "a", Aliases: aliases, Arity: Fixed(1), Default: def}))
	aliases[0] = "-z"
	def[0] = "y"

	spec, ok := r.Lookup("a")
	require.True(t, ok)
	require.Equal(t, []string{"-a"}, spec.Aliases)
	require.Equal(t, []string{"x"}, spec.Default)

	res, err := r.Parse(nil)
	require.NoError(t, err)
	res.Strings("a")[0] = "mutated"
	res, err = r.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, res.Strings("a"))
}

func TestPrefixChars(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	require.NoError(t, r.Register(OptionSpec{Name: "a", Aliases: []string{"-a", "+a"}}))
	require.NoError(t, r.Register(OptionSpec{Name: "b", Aliases: []string{"/b", "--b"}}))
	require.Equal(t, "-+/", r.PrefixChars())
	require.Len(t, r.Options(), 2)
}

func assertEqualError(t *testing.T, expected string, err error) {
	t.Helper()
	if expected == "" {
		if err != nil {
			t.Error("Unexpected error:", err)
		}
		return
	}

	if err == nil {
		t.Error("Expected error, got nil")
		return
	}
	message := err.Error()
	if expected != message {
		t.Errorf("Unexpected error message: %q != %q", expected, message)
	}
}
