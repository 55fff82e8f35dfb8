package jsonref

import (
	"errors"
	"sync"
	"testing"

	"github.com/jacksmith15/json-ref-dict/loader"
)

func TestSessionLoadsDocumentOnce(t *testing.T) {
	sess, l := testSession()
	v, err := sess.Open("base/file1.json")
	if err != nil {
		t.Fatal(err)
	}
	m := v.(*Map)
	defs, err := m.Get("definitions")
	if err != nil {
		t.Fatal(err)
	}
	// Several lookups resolve into file2.json; it is fetched once.
	for _, key := range []string{"remote_ref", "backref", "remote_nested", "remote_ref"} {
		if _, err := defs.(*Map).Get(key); err != nil {
			t.Fatalf("get %q: %v", key, err)
		}
	}
	if got := l.count("base/file2.json"); got != 1 {
		t.Errorf("file2.json loaded %d times, want 1", got)
	}
	if got := l.count("base/file1.json"); got != 1 {
		t.Errorf("file1.json loaded %d times, want 1", got)
	}
}

func TestSessionReplaysLoadFailure(t *testing.T) {
	sess, l := testSession()
	for range 3 {
		_, err := sess.Open("base/absent.json")
		if !errors.Is(err, loader.ErrDocumentLoad) {
			t.Fatalf("err = %v, want ErrDocumentLoad", err)
		}
	}
	if got := l.count("base/absent.json"); got != 1 {
		t.Errorf("failed document fetched %d times, want 1", got)
	}
}

func TestSessionConcurrentOpen(t *testing.T) {
	sess, l := testSession()
	var wg sync.WaitGroup
	errc := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := sess.Open("base/file1.json#/definitions")
			if err != nil {
				errc <- err
				return
			}
			if _, err := v.(*Map).Get("remote_ref"); err != nil {
				errc <- err
			}
		}()
	}
	wg.Wait()
	close(errc)
	for err := range errc {
		t.Fatal(err)
	}
	if got := l.count("base/file1.json"); got != 1 {
		t.Errorf("file1.json loaded %d times, want 1", got)
	}
	if got := l.count("base/file2.json"); got != 1 {
		t.Errorf("file2.json loaded %d times, want 1", got)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	l := newMemLoader(testDocs())
	for range 2 {
		if _, err := NewSession(WithLoader(l)).Open("base/file1.json"); err != nil {
			t.Fatal(err)
		}
	}
	if got := l.count("base/file1.json"); got != 2 {
		t.Errorf("independent sessions share a cache: %d loads, want 2", got)
	}
}
