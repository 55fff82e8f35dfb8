package jsonref

import (
	"fmt"

	"github.com/jacksmith15/json-ref-dict/uri"
)

type materializer struct {
	include  map[string]bool
	exclude  map[string]bool
	valueMap func(any) any
	labeller func(uri.URI) (string, any)

	// visited maps the resolved location of each container under
	// construction to the concrete container allocated for it. Scoped to
	// one Materialize call.
	visited map[string]any
}

type MaterializeOption func(*materializer)

// WithIncludeKeys keeps only the named mapping keys, at every level.
// Mutually exclusive with WithExcludeKeys.
func WithIncludeKeys(keys ...string) MaterializeOption {
	return func(m *materializer) {
		m.include = keySet(keys)
	}
}

// WithExcludeKeys drops the named mapping keys, at every level. Dropped
// subtrees are never resolved, so references reachable only through an
// excluded key trigger no document loads.
func WithExcludeKeys(keys ...string) MaterializeOption {
	return func(m *materializer) {
		m.exclude = keySet(keys)
	}
}

// WithValueMap applies fn to every resolved scalar leaf. It is never
// applied to sequences or mappings.
func WithValueMap(fn func(any) any) MaterializeOption {
	return func(m *materializer) {
		m.valueMap = fn
	}
}

// WithContextLabeller attaches an annotation to every constructed
// mapping: fn receives the mapping's originating location and returns
// the key and value to set.
func WithContextLabeller(fn func(u uri.URI) (string, any)) MaterializeOption {
	return func(m *materializer) {
		m.labeller = fn
	}
}

func keySet(keys []string) map[string]bool {
	res := make(map[string]bool, len(keys))
	for _, k := range keys {
		res[k] = true
	}
	return res
}

// Materialize flattens a lazy view into a concrete structure of
// map[string]any, []any and Go scalars, resolving every reachable
// reference eagerly. Structural cycles in the reference graph become
// genuine cycles in the output: when the walk reaches a container whose
// location is already under construction, the same concrete container is
// reused, so the nested occurrence is identity-equal to the outer one.
//
// Each call walks with its own visited set; distinct calls over
// overlapping subgraphs do not share identity.
func Materialize(v View, opts ...MaterializeOption) (any, error) {
	m := &materializer{visited: map[string]any{}}
	for _, opt := range opts {
		opt(m)
	}
	if m.include != nil && m.exclude != nil {
		return nil, fmt.Errorf("include and exclude keys are mutually exclusive")
	}
	return m.walk(v)
}

func (m *materializer) walk(v any) (any, error) {
	switch t := v.(type) {
	case *Map:
		return m.walkMap(t)
	case *List:
		return m.walkList(t)
	default:
		if m.valueMap != nil {
			return m.valueMap(t), nil
		}
		return t, nil
	}
}

func (m *materializer) walkMap(v *Map) (any, error) {
	key := v.URI().String()
	if done, ok := m.visited[key]; ok {
		return done, nil
	}
	out := make(map[string]any, v.Len())
	// Record before populating so descendant backreferences reuse the
	// still-being-populated container.
	m.visited[key] = out
	if m.labeller != nil {
		k, val := m.labeller(v.URI())
		out[k] = val
	}
	for _, k := range v.Keys() {
		if m.skip(k) {
			continue
		}
		child, err := v.Get(k)
		if err != nil {
			return nil, err
		}
		got, err := m.walk(child)
		if err != nil {
			return nil, err
		}
		out[k] = got
	}
	return out, nil
}

func (m *materializer) walkList(v *List) (any, error) {
	key := v.URI().String()
	if done, ok := m.visited[key]; ok {
		return done, nil
	}
	out := make([]any, v.Len())
	m.visited[key] = out
	for i := range out {
		child, err := v.At(i)
		if err != nil {
			return nil, err
		}
		got, err := m.walk(child)
		if err != nil {
			return nil, err
		}
		out[i] = got
	}
	return out, nil
}

// skip applies key filtering before the value is resolved.
func (m *materializer) skip(key string) bool {
	if m.include != nil {
		return !m.include[key]
	}
	return m.exclude[key]
}
