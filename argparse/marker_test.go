package argparse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelectPrefix(t *testing.T) {
	t.Parallel()
	tests := []struct {
		forbidden string
		expect    byte
	}{
		{"", '?'},
		{"-", '?'},
		{"-?", '!'},
		{"?!#", '$'},
		{"-+/", '?'},
		{MarkerPrefixCandidates[:len(MarkerPrefixCandidates)-1], '}'},
	}
	for i, test := range tests {
		got, err := SelectPrefix(test.forbidden)
		if err != nil {
			t.Errorf("[%d] unexpected error: %v", i, err)
			continue
		}
		if got != test.expect {
			t.Errorf("[%d] incorrect prefix for %q; expected %q, got %q.", i, test.forbidden, test.expect, got)
		}
	}
}

func TestSelectPrefixExhausted(t *testing.T) {
	t.Parallel()
	_, err := SelectPrefix(MarkerPrefixCandidates)
	if !errors.Is(err, ErrNoAvailablePrefix) {
		t.Fatalf("expected ErrNoAvailablePrefix, got %v", err)
	}

	r := NewRegistry()
	for i := 0; i < len(MarkerPrefixCandidates); i++ {
		alias := string(MarkerPrefixCandidates[i]) + "opt"
		if err := r.Register(OptionSpec{Name: alias, Aliases: []string{alias}, Arity: Fixed(0)}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := r.Parse(nil); !errors.Is(err, ErrNoAvailablePrefix) {
		t.Fatalf("expected ErrNoAvailablePrefix from Parse, got %v", err)
	}
}

func TestMarkerFor(t *testing.T) {
	t.Parallel()
	if got := MarkerFor('?', "exec"); got != "?dummyexec" {
		t.Errorf("unexpected marker %q", got)
	}
}

func TestInject(t *testing.T) {
	t.Parallel()
	collect := map[string]string{"-exec": "?dummyexec", "--exec": "?dummyexec"}
	for _, tc := range []struct {
		name   string
		raw    []string
		expect []string
	}{
		{
			name:   "empty",
			raw:    nil,
			expect: []string{},
		},
		{
			name:   "no collect alias",
			raw:    []string{"--get_params", "/a"},
			expect: []string{"--get_params", "/a"},
		},
		{
			name:   "every occurrence gets two markers",
			raw:    []string{"--exec", "a", "-exec"},
			expect: []string{"--exec", "?dummyexec", "?dummyexec", "a", "-exec", "?dummyexec", "?dummyexec"},
		},
		{
			name:   "exact match only",
			raw:    []string{"--exec=a", "x--exec", "--exe", "--execs"},
			expect: []string{"--exec=a", "x--exec", "--exe", "--execs"},
		},
	} {
		tc := tc // enable parallel sub-tests
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			before := append([]string(nil), tc.raw...)
			got := Inject(tc.raw, collect)
			if diff := cmp.Diff(tc.expect, got); diff != "" {
				t.Errorf("unexpected injection (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(before, tc.raw); diff != "" {
				t.Errorf("raw tokens modified (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArityString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		arity  Arity
		expect string
		count  int
	}{
		{Fixed(0), "0", 0},
		{Fixed(2), "2", 2},
		{Fixed(-1), "0", 0},
		{OneOrMore(), "+", -1},
		{CollectUntilNextKnown(), "...", -1},
	}
	for i, test := range tests {
		if got := test.arity.String(); got != test.expect {
			t.Errorf("[%d] incorrect string; expected %q, got %q.", i, test.expect, got)
		}
		if got := test.arity.Count(); got != test.count {
			t.Errorf("[%d] incorrect count; expected %d, got %d.", i, test.count, got)
		}
	}
}
