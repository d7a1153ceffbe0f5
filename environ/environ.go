// Package environ holds the environment handed to a child process. It is a
// plain value built once from os.Environ, never the live process
// environment.
package environ

import (
	"fmt"
	"log/slog"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Policy decides what happens when a parameter names a variable that is
// already set.
type Policy int

const (
	// Override replaces the existing value.
	Override Policy = iota
	// KeepExisting leaves the existing value in place.
	KeepExisting
)

func (p Policy) String() string {
	switch p {
	case Override:
		return "override"
	case KeepExisting:
		return "keep"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy accepts "override" and "keep".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "override":
		return Override, nil
	case "keep":
		return KeepExisting, nil
	}
	return 0, fmt.Errorf("invalid conflict policy %q: must be 'override' or 'keep'", s)
}

// Env is an ordered set of environment variables. Variables keep the
// position of their first assignment.
type Env struct {
	vars *orderedmap.OrderedMap[string, string]
}

func New() *Env {
	return &Env{vars: orderedmap.New[string, string]()}
}

// FromList builds an Env from KEY=VALUE entries. Entries without '=' are
// skipped; a later entry for the same key wins.
func FromList(list []string) *Env {
	e := New()
	for _, keyValue := range list {
		key, value, ok := strings.Cut(keyValue, "=")
		if !ok || key == "" {
			continue
		}
		e.vars.Set(key, value)
	}
	return e
}

func (e *Env) Lookup(key string) (string, bool) {
	return e.vars.Get(key)
}

func (e *Env) Set(key, value string) {
	e.vars.Set(key, value)
}

func (e *Env) Delete(key string) {
	e.vars.Delete(key)
}

func (e *Env) Len() int {
	return e.vars.Len()
}

// Keys returns the variable names in order.
func (e *Env) Keys() []string {
	keys := make([]string, 0, e.vars.Len())
	for pair := e.vars.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// List renders the environment as KEY=VALUE entries for exec.Cmd.Env.
func (e *Env) List() []string {
	list := make([]string, 0, e.vars.Len())
	for pair := e.vars.Oldest(); pair != nil; pair = pair.Next() {
		list = append(list, pair.Key+"="+pair.Value)
	}
	return list
}

// RemovePrefixes deletes every variable whose name starts with one of
// prefixes and returns how many were removed.
func (e *Env) RemovePrefixes(prefixes []string) int {
	var doomed []string
	for pair := e.vars.Oldest(); pair != nil; pair = pair.Next() {
		for _, prefix := range prefixes {
			if strings.HasPrefix(pair.Key, prefix) {
				doomed = append(doomed, pair.Key)
				break
			}
		}
	}
	for _, key := range doomed {
		e.vars.Delete(key)
	}
	return len(doomed)
}

// Apply sets key to value under policy. Only a variable with a non-empty
// value counts as existing; a collision with one is always logged as a
// warning. It reports whether the value was written.
func (e *Env) Apply(key, value string, policy Policy, logger *slog.Logger) bool {
	if existing, ok := e.vars.Get(key); ok && existing != "" {
		switch policy {
		case KeepExisting:
			logger.Warn("Parameter ignored, using existing environment variable", "name", key)
			return false
		case Override:
			logger.Warn("Environment variable will be overwritten by parameter", "name", key)
		}
	}
	e.vars.Set(key, value)
	return true
}
