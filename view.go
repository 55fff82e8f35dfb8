package jsonref

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/jacksmith15/json-ref-dict/ir"
	"github.com/jacksmith15/json-ref-dict/uri"
)

// View is a lazy container facade over a node in the merged document
// graph: a *Map or a *List. Keyed access resolves references on demand;
// iteration, length, display and raw equality never do.
type View interface {
	// URI is the resolved location of the viewed container.
	URI() uri.URI
	// Raw is the unresolved tree under the view. Shared, read-only.
	Raw() *ir.Node
	Len() int
	// Equal compares raw content, references literal. Resolved
	// comparison is done explicitly, by materializing both sides.
	Equal(o View) bool
	fmt.Stringer
}

// Open constructs the root view for a location using a fresh Session.
// Callers wanting to share a document cache across roots construct a
// Session and use its Open method.
func Open(location string, opts ...SessionOption) (View, error) {
	return NewSession(opts...).Open(location)
}

// Open constructs a view over the container addressed by location,
// following any reference links on the way.
func (s *Session) Open(location string) (View, error) {
	u, err := uri.Parse(location)
	if err != nil {
		return nil, err
	}
	node, turi, err := s.ResolveURI(u)
	if err != nil {
		return nil, err
	}
	switch node.Type {
	case ir.ObjectType:
		return &Map{sess: s, uri: turi, node: node}, nil
	case ir.ArrayType:
		return &List{sess: s, uri: turi, node: node}, nil
	default:
		return nil, fmt.Errorf("%w: value at %q is a %s, not a container", ErrInvalidRoot, location, node.Type)
	}
}

// wrap turns a raw child node into the value handed to the caller:
// reference links are resolved to their terminal location first, then
// containers become views and leaves become Go scalars.
func (s *Session) wrap(u uri.URI, node *ir.Node) (any, error) {
	if ref, ok := ir.RefTarget(node); ok {
		var err error
		node, u, err = s.handoff(u, ref, nil, map[string]bool{u.String(): true})
		if err != nil {
			return nil, err
		}
	}
	return s.rawWrap(u, node), nil
}

func (s *Session) rawWrap(u uri.URI, node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		return &Map{sess: s, uri: u, node: node}
	case ir.ArrayType:
		return &List{sess: s, uri: u, node: node}
	default:
		return ir.ToGo(node)
	}
}

// Map is the mapping view.
type Map struct {
	sess *Session
	uri  uri.URI
	node *ir.Node
}

func (m *Map) URI() uri.URI  { return m.uri }
func (m *Map) Raw() *ir.Node { return m.node }
func (m *Map) Len() int      { return len(m.node.Values) }

// Get returns the resolved member value: a *Map, *List or Go scalar.
func (m *Map) Get(key string) (any, error) {
	child := ir.Get(m.node, key)
	if child == nil {
		return nil, fmt.Errorf("%w: %q in %s", ErrKeyNotFound, key, m.uri)
	}
	return m.sess.wrap(m.uri.Get(key), child)
}

// Has reports member presence without resolving anything.
func (m *Map) Has(key string) bool {
	return ir.Get(m.node, key) != nil
}

// Keys returns the member names in deterministic (sorted) order.
func (m *Map) Keys() []string {
	return ir.Keys(m.node)
}

// Items iterates over (key, unresolved child) pairs. Children are
// wrapped as views or scalars but references are not followed: a
// reference link iterates as a literal one-member map. The sequence is
// restartable.
func (m *Map) Items() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for i, f := range m.node.Fields {
			v := m.sess.rawWrap(m.uri.Get(f.String), m.node.Values[i])
			if !yield(f.String, v) {
				return
			}
		}
	}
}

// String renders the raw, unresolved structure as JSON with references
// shown literally. It never triggers a document load.
func (m *Map) String() string {
	return rawString(m.node)
}

func (m *Map) Equal(o View) bool {
	return o != nil && ir.Compare(m.node, o.Raw()) == 0
}

// List is the sequence view.
type List struct {
	sess *Session
	uri  uri.URI
	node *ir.Node
}

func (l *List) URI() uri.URI  { return l.uri }
func (l *List) Raw() *ir.Node { return l.node }
func (l *List) Len() int      { return len(l.node.Values) }

// At returns the resolved element value: a *Map, *List or Go scalar.
func (l *List) At(i int) (any, error) {
	if i < 0 || i >= len(l.node.Values) {
		return nil, fmt.Errorf("%w: %d (len %d) in %s", ErrIndexOutOfRange, i, len(l.node.Values), l.uri)
	}
	return l.sess.wrap(l.uri.Get(strconv.Itoa(i)), l.node.Values[i])
}

// Items iterates over (index, unresolved element) pairs without
// following references. The sequence is restartable.
func (l *List) Items() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, v := range l.node.Values {
			if !yield(i, l.sess.rawWrap(l.uri.Get(strconv.Itoa(i)), v)) {
				return
			}
		}
	}
}

func (l *List) String() string {
	return rawString(l.node)
}

func (l *List) Equal(o View) bool {
	return o != nil && ir.Compare(l.node, o.Raw()) == 0
}

func rawString(node *ir.Node) string {
	d, err := node.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(d)
}
