package jsonref

import (
	"fmt"
	"sync"

	"github.com/jacksmith15/json-ref-dict/loader"
)

// memLoader serves documents from memory and counts loads per location,
// so tests can assert that no document is fetched twice.
type memLoader struct {
	mu     sync.Mutex
	docs   map[string]string
	counts map[string]int
}

func newMemLoader(docs map[string]string) *memLoader {
	return &memLoader{docs: docs, counts: map[string]int{}}
}

func (l *memLoader) Load(location string) ([]byte, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counts[location]++
	d, ok := l.docs[location]
	if !ok {
		return nil, "", fmt.Errorf("%w: no such document %q", loader.ErrDocumentLoad, location)
	}
	return []byte(d), ".json", nil
}

func (l *memLoader) count(location string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[location]
}

// testDocs mirrors the fixture set exercised throughout: two documents
// referring to each other, plus edge-case documents.
func testDocs() map[string]string {
	return map[string]string{
		"base/file1.json": `{
			"definitions": {
				"foo": {"type": "string"},
				"remote_ref": {"$ref": "file2.json#/definitions/bar"},
				"local_ref": {"$ref": "#/definitions/baz"},
				"baz": {"type": "number"},
				"backref": {"$ref": "file2.json#/definitions/nested_back/back"},
				"qux": {"type": "null"},
				"remote_nested": {"$ref": "file2.json#/definitions/nested_remote"}
			}
		}`,
		"base/file2.json": `{
			"definitions": {
				"bar": {"type": "integer"},
				"nested_back": {"back": {"$ref": "file1.json#/definitions/qux"}},
				"nested_remote": {"foo": {"$ref": "#/definitions/mux"}},
				"mux": {"type": "array"}
			}
		}`,
		"base/reflist.json": `{
			"definitions": {
				"foo": {"not": [{"$ref": "#/definitions/baz"}]},
				"baz": {"type": "object"}
			}
		}`,
		"base/nonref.json": `{"definitions": {"$ref": {"type": "string"}}}`,
		"base/with-spaces.json": `{
			"top": {
				"with spaces": {"foo": "bar"},
				"ref to spaces": {"$ref": "#/top/with spaces"}
			}
		}`,
		"base/with-percent.json": `{
			"top": {
				"/foo": {"foo": "bar"},
				"ref": {"$ref": "#/top/%2Ffoo"}
			}
		}`,
		"base/ref-to-primitive.json": `{
			"top": {
				"primitive": "foo",
				"ref_to_primitive": {"$ref": "#/top/primitive"}
			}
		}`,
		"base/chain.json": `{
			"a": {"$ref": "#/b"},
			"b": {"$ref": "#/c"},
			"c": {"$ref": "file1.json#/definitions/foo"}
		}`,
		"base/cycle.json": `{
			"self": {"$ref": "#/self"},
			"ping": {"$ref": "#/pong"},
			"pong": {"$ref": "#/ping"}
		}`,
		"base/circular.json": `{
			"definitions": {
				"foo": {"$ref": "circular.json#/"}
			}
		}`,
	}
}

func testSession() (*Session, *memLoader) {
	l := newMemLoader(testDocs())
	return NewSession(WithLoader(l)), l
}
