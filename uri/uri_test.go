package uri

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		want    URI
		wantStr string
		wantErr error
	}{
		{
			name:    "document with pointer",
			s:       "base/file1.json#/definitions/foo",
			want:    URI{Root: "base/file1.json", Pointer: Pointer{"definitions", "foo"}},
			wantStr: "base/file1.json#/definitions/foo",
		},
		{
			name:    "document only denotes root",
			s:       "foobar",
			want:    URI{Root: "foobar"},
			wantStr: "foobar#/",
		},
		{
			name:    "empty fragment denotes root",
			s:       "foobar#",
			want:    URI{Root: "foobar"},
			wantStr: "foobar#/",
		},
		{
			name:    "absolute url",
			s:       "http://example.com/schema.json#/a",
			want:    URI{Root: "http://example.com/schema.json", Pointer: Pointer{"a"}},
			wantStr: "http://example.com/schema.json#/a",
		},
		{
			name:    "relative path is cleaned",
			s:       "./base/../base/file1.json#/a",
			want:    URI{Root: "base/file1.json", Pointer: Pointer{"a"}},
			wantStr: "base/file1.json#/a",
		},
		{
			name:    "fragment without slash",
			s:       "foobar#definitions",
			wantErr: ErrPointerSyntax,
		},
		{
			name:    "no document part",
			s:       "#/definitions",
			wantErr: ErrParse,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.s)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("got error %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("uri mismatch (-want +got):\n%s", d)
			}
			if got.String() != tc.wantStr {
				t.Errorf("String() = %q, want %q", got.String(), tc.wantStr)
			}
		})
	}
}

func TestRelative(t *testing.T) {
	tests := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{
			name: "local reference",
			base: "base/file1.json#/definitions/local_ref",
			ref:  "#/definitions/baz",
			want: "base/file1.json#/definitions/baz",
		},
		{
			name: "sibling document",
			base: "base/file1.json#/definitions/remote_ref",
			ref:  "file2.json#/definitions/bar",
			want: "base/file2.json#/definitions/bar",
		},
		{
			name: "sibling document without fragment",
			base: "base/file1.json#/",
			ref:  "file2.json",
			want: "base/file2.json#/",
		},
		{
			name: "parent directory",
			base: "base/sub/file1.json#/",
			ref:  "../file2.json#/a",
			want: "base/file2.json#/a",
		},
		{
			name: "absolute reference wins",
			base: "base/file1.json#/",
			ref:  "http://example.com/schema.json#/a",
			want: "http://example.com/schema.json#/a",
		},
		{
			name: "relative against absolute base",
			base: "http://example.com/schemas/file1.json#/",
			ref:  "file2.json#/a",
			want: "http://example.com/schemas/file2.json#/a",
		},
		{
			name: "root relative path",
			base: "base/file1.json#/",
			ref:  "/etc/schema.json#/a",
			want: "/etc/schema.json#/a",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base, err := Parse(tc.base)
			if err != nil {
				t.Fatalf("parse base: %v", err)
			}
			got, err := base.Relative(tc.ref)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("got %q, want %q", got.String(), tc.want)
			}
		})
	}
}

func TestGetBackEqual(t *testing.T) {
	u, err := Parse("base/file1.json#/definitions")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	child := u.Get("foo")
	if child.String() != "base/file1.json#/definitions/foo" {
		t.Errorf("Get: got %q", child.String())
	}
	if !child.Back().Equal(u) {
		t.Errorf("Back of child should equal parent")
	}
	other, err := Parse("base/../base/file1.json#/definitions")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !u.Equal(other) {
		t.Errorf("canonicalized locations should be equal")
	}
	if u.Equal(child) {
		t.Errorf("distinct pointers should not be equal")
	}
}
