package jsonref

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jacksmith15/json-ref-dict/ir"
	"github.com/jacksmith15/json-ref-dict/loader"
	"github.com/jacksmith15/json-ref-dict/uri"
)

// Session owns the document cache for one set of interlinked documents.
// Every view derived from a Session shares its cache: a document is
// loaded at most once per Session, and a load failure is recorded and
// replayed on repeat access rather than retried. Discarding the Session
// discards the cache.
//
// Sessions are safe for concurrent use. Concurrent first accesses to the
// same document identifier are deduplicated, so no document is parsed
// twice and no reader observes a partially populated entry.
type Session struct {
	loader loader.Loader
	group  singleflight.Group

	mu      sync.RWMutex
	docs    map[string]*document
	targets map[string]*target
}

// document is a cached raw tree, or the recorded failure to produce one.
type document struct {
	node *ir.Node
	err  error
}

// target is a memoized reference-resolution result: the terminal
// non-reference node and its location.
type target struct {
	node *ir.Node
	uri  uri.URI
	err  error
}

type SessionOption func(*Session)

// WithLoader replaces the default filesystem/network loader.
func WithLoader(l loader.Loader) SessionOption {
	return func(s *Session) {
		s.loader = l
	}
}

func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		loader:  &loader.Default{},
		docs:    map[string]*document{},
		targets: map[string]*target{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Document returns the raw tree for a canonical document identifier,
// loading and decoding it on first access.
func (s *Session) Document(root string) (*ir.Node, error) {
	s.mu.RLock()
	d, ok := s.docs[root]
	s.mu.RUnlock()
	if ok {
		return d.node, d.err
	}
	v, _, _ := s.group.Do(root, func() (any, error) {
		s.mu.RLock()
		d, ok := s.docs[root]
		s.mu.RUnlock()
		if ok {
			return d, nil
		}
		node, err := s.load(root)
		d = &document{node: node, err: err}
		s.mu.Lock()
		s.docs[root] = d
		s.mu.Unlock()
		return d, nil
	})
	d = v.(*document)
	return d.node, d.err
}

func (s *Session) load(root string) (*ir.Node, error) {
	data, hint, err := s.loader.Load(root)
	if err != nil {
		return nil, fmt.Errorf("could not load %q: %w", root, err)
	}
	node, err := loader.Decode(data, hint)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", root, err)
	}
	return node, nil
}
