package argparse

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUsage is matched by every error caused by the command line itself
	// rather than by the grammar.
	ErrUsage = errors.New("usage error")

	// ErrNoAvailablePrefix is returned when every marker prefix candidate is
	// already used as a prefix by a registered alias.
	ErrNoAvailablePrefix = errors.New("argparse: could not find a suitable prefix character for marker tokens")
)

// DuplicateAliasError is returned by Register when an alias is already taken
// by another option or is reserved for marker tokens.
type DuplicateAliasError struct {
	Alias    string
	Option   string
	Existing string // option that owns Alias, empty when Reserved
	Reserved bool
}

func (e *DuplicateAliasError) Error() string {
	if e.Reserved {
		return fmt.Sprintf("argparse: alias %q of option %q is reserved for marker tokens", e.Alias, e.Option)
	}
	return fmt.Sprintf("argparse: alias %q of option %q conflicts with option %q", e.Alias, e.Option, e.Existing)
}

// DuplicateOptionError is returned by Register for an empty or repeated name.
type DuplicateOptionError struct {
	Name string
}

func (e *DuplicateOptionError) Error() string {
	if e.Name == "" {
		return "argparse: option name must not be empty"
	}
	return fmt.Sprintf("argparse: option %q already registered", e.Name)
}

// InvalidAliasError is returned by Register for an alias that cannot be told
// apart from a plain value.
type InvalidAliasError struct {
	Alias  string
	Option string
}

func (e *InvalidAliasError) Error() string {
	if e.Alias == "" {
		return fmt.Sprintf("argparse: option %q needs at least one non-empty alias", e.Option)
	}
	return fmt.Sprintf("argparse: alias %q of option %q must start with a prefix character", e.Alias, e.Option)
}

// MissingRequiredOptionError lists every required option absent from the
// command line, in registration order.
type MissingRequiredOptionError struct {
	Options []string
}

func (e *MissingRequiredOptionError) Error() string {
	return "the following arguments are required: " + strings.Join(e.Options, ", ")
}

func (e *MissingRequiredOptionError) Is(target error) bool { return target == ErrUsage }

// UnknownFlagFormatError is returned for an alias written in a form its
// option does not accept, such as an inline value on a presence flag.
type UnknownFlagFormatError struct {
	Token  string
	Reason string
}

func (e *UnknownFlagFormatError) Error() string {
	return fmt.Sprintf("argument %s: %s", e.Token, e.Reason)
}

func (e *UnknownFlagFormatError) Is(target error) bool { return target == ErrUsage }

// ArityError is returned when an option receives fewer values than its arity
// demands.
type ArityError struct {
	Alias string
	Arity Arity
}

func (e *ArityError) Error() string {
	switch n := e.Arity.Count(); {
	case n == 1:
		return fmt.Sprintf("argument %s: expected one argument", e.Alias)
	case n > 1:
		return fmt.Sprintf("argument %s: expected %d arguments", e.Alias, n)
	default:
		return fmt.Sprintf("argument %s: expected at least one argument", e.Alias)
	}
}

func (e *ArityError) Is(target error) bool { return target == ErrUsage }

// UnrecognizedArgumentsError is returned by Parse when tokens are left over.
type UnrecognizedArgumentsError struct {
	Args []string
}

func (e *UnrecognizedArgumentsError) Error() string {
	return "unrecognized arguments: " + strings.Join(e.Args, " ")
}

func (e *UnrecognizedArgumentsError) Is(target error) bool { return target == ErrUsage }
