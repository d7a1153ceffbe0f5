// Package paramstore reads groups of key/value parameters from a remote
// parameter store.
package paramstore

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// fetchLimit bounds concurrent requests to the store.
const fetchLimit = 4

// Parameter is a single key/value pair. Name is relative to the path it was
// fetched under.
type Parameter struct {
	Name  string
	Value string
}

// Store is a source of parameters grouped by path.
type Store interface {
	Parameters(ctx context.Context, path string) ([]Parameter, error)
}

// Group holds the parameters found under one path.
type Group struct {
	Path       string
	Parameters []Parameter
}

// FetchAll reads every path concurrently. Groups are returned in the order of
// paths; the first failure cancels the remaining requests.
func FetchAll(ctx context.Context, store Store, paths []string) ([]Group, error) {
	groups := make([]Group, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchLimit)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			params, err := store.Parameters(ctx, path)
			if err != nil {
				return fmt.Errorf("error in fetching parameters under %s: %w", path, err)
			}
			groups[i] = Group{Path: path, Parameters: params}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return groups, nil
}

// EnvName turns a parameter name into an environment variable name:
// upper case, with every byte outside [A-Z0-9_] replaced by '_'.
func EnvName(name string) string {
	b := []byte(strings.ToUpper(strings.Trim(name, "/")))
	for i, c := range b {
		if !(c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_') {
			b[i] = '_'
		}
	}
	return string(b)
}

// relativeName strips path from name. ok is false when name is not below
// path, or, unless recursive, when it is nested deeper than one level.
func relativeName(path, name string, recursive bool) (string, bool) {
	prefix := strings.TrimSuffix(path, "/") + "/"
	if !strings.HasPrefix(name, prefix) {
		return "", false
	}
	rel := strings.TrimPrefix(name, prefix)
	if rel == "" || (!recursive && strings.Contains(rel, "/")) {
		return "", false
	}
	return rel, true
}

func sortParameters(params []Parameter) {
	sort.Slice(params, func(i, j int) bool { return params[i].Name < params[j].Name })
}

// MemoryStore serves parameters from a map of full names to values.
type MemoryStore struct {
	Params    map[string]string
	Recursive bool
}

func (m MemoryStore) Parameters(_ context.Context, path string) ([]Parameter, error) {
	var out []Parameter
	for name, value := range m.Params {
		if rel, ok := relativeName(path, name, m.Recursive); ok {
			out = append(out, Parameter{Name: rel, Value: value})
		}
	}
	sortParameters(out)
	return out, nil
}
