package jsonref

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksmith15/json-ref-dict/ir"
	"github.com/jacksmith15/json-ref-dict/uri"
)

// ResolveURI returns the terminal non-reference node addressed by u,
// together with its location. Reference links met anywhere along the
// pointer walk are followed transparently, across any number of
// documents. Results, including failures, are memoized per Session, so a
// pointer target is resolved at most once.
func (s *Session) ResolveURI(u uri.URI) (*ir.Node, uri.URI, error) {
	key := u.String()
	s.mu.RLock()
	t, ok := s.targets[key]
	s.mu.RUnlock()
	if ok {
		return t.node, t.uri, t.err
	}
	node, turi, err := s.resolve(u, map[string]bool{key: true})
	s.mu.Lock()
	s.targets[key] = &target{node: node, uri: turi, err: err}
	s.mu.Unlock()
	return node, turi, err
}

// resolve walks u's pointer within its document. Whenever the current
// node is a reference link, the walk hands off to the referenced
// location with the remaining segments appended. seen holds every
// location visited in this resolution call: an exact repeat means the
// chain is a direct non-terminating cycle. A structural cycle (a
// container whose descendants refer back to it) never repeats a location
// in a single call and is left to lazy access or materialization.
func (s *Session) resolve(u uri.URI, seen map[string]bool) (*ir.Node, uri.URI, error) {
	doc, err := s.Document(u.Root)
	if err != nil {
		return nil, uri.URI{}, err
	}
	node := doc
	for i := 0; ; i++ {
		if ref, ok := ir.RefTarget(node); ok {
			return s.handoff(u, ref, u.Pointer[i:], seen)
		}
		if i >= len(u.Pointer) {
			break
		}
		node, err = child(node, u.Pointer[i], u)
		if err != nil {
			return nil, uri.URI{}, err
		}
	}
	return node, u, nil
}

func (s *Session) handoff(u uri.URI, ref string, rest uri.Pointer, seen map[string]bool) (*ir.Node, uri.URI, error) {
	remote, err := u.Relative(ref)
	if err != nil {
		return nil, uri.URI{}, fmt.Errorf("%w: bad target %q at %s: %w", ErrUnresolvableReference, ref, u, err)
	}
	remote = remote.Get(rest...)
	key := remote.String()
	if seen[key] {
		return nil, uri.URI{}, fmt.Errorf("%w: reference chain at %s revisits %s", ErrUnresolvableReference, u, remote)
	}
	seen[key] = true
	node, turi, err := s.resolve(remote, seen)
	if err != nil && (errors.Is(err, ErrKeyNotFound) || errors.Is(err, ErrIndexOutOfRange)) {
		return nil, uri.URI{}, fmt.Errorf("%w: target %q of %s: %w", ErrUnresolvableReference, ref, u, err)
	}
	return node, turi, err
}

// child steps one pointer segment into a container node. The segment is
// tried as given; if the lookup fails and the segment carries
// percent-encoding, the decoded form is tried before failing, since
// segments may legitimately contain literal '%'.
func child(node *ir.Node, seg string, u uri.URI) (*ir.Node, error) {
	res, err := step(node, seg, u)
	if err == nil || !strings.Contains(seg, "%") {
		return res, err
	}
	decoded, decErr := uri.DecodeSegment(seg)
	if decErr != nil {
		return nil, decErr
	}
	if decoded == seg {
		return nil, err
	}
	res, retryErr := step(node, decoded, u)
	if retryErr != nil {
		return nil, err
	}
	return res, nil
}

func step(node *ir.Node, seg string, u uri.URI) (*ir.Node, error) {
	switch node.Type {
	case ir.ObjectType:
		res := ir.Get(node, seg)
		if res == nil {
			return nil, fmt.Errorf("%w: %q in %s", ErrKeyNotFound, seg, u)
		}
		return res, nil
	case ir.ArrayType:
		idx, err := strconv.Atoi(seg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an index in %s", ErrIndexOutOfRange, seg, u)
		}
		if idx < 0 || idx >= len(node.Values) {
			return nil, fmt.Errorf("%w: %d (len %d) in %s", ErrIndexOutOfRange, idx, len(node.Values), u)
		}
		return node.Values[idx], nil
	default:
		return nil, fmt.Errorf("%w: %q: cannot index %s value in %s", ErrKeyNotFound, seg, node.Type, u)
	}
}
