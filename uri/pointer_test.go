package uri

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePointer(t *testing.T) {
	tests := []struct {
		name    string
		frag    string
		want    Pointer
		wantErr error
	}{
		{
			name: "empty fragment is root",
			frag: "",
			want: nil,
		},
		{
			name: "slash only is root",
			frag: "/",
			want: nil,
		},
		{
			name: "simple segments",
			frag: "/definitions/foo",
			want: Pointer{"definitions", "foo"},
		},
		{
			name: "empty segments dropped",
			frag: "/definitions//foo/",
			want: Pointer{"definitions", "foo"},
		},
		{
			name: "escaped slash",
			frag: "/a~1b",
			want: Pointer{"a/b"},
		},
		{
			name: "escaped tilde",
			frag: "/a~0b",
			want: Pointer{"a~b"},
		},
		{
			name: "tilde zero one does not re-apply",
			frag: "/a~01b",
			want: Pointer{"a~1b"},
		},
		{
			name: "segment with spaces",
			frag: "/top/with spaces",
			want: Pointer{"top", "with spaces"},
		},
		{
			name:    "missing leading slash",
			frag:    "definitions",
			wantErr: ErrPointerSyntax,
		},
		{
			name:    "dangling tilde",
			frag:    "/a~",
			wantErr: ErrPointerSyntax,
		},
		{
			name:    "invalid escape",
			frag:    "/a~2b",
			wantErr: ErrPointerSyntax,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePointer(tc.frag)
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
				t.Errorf("pointer mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestPointerString(t *testing.T) {
	tests := []struct {
		name string
		p    Pointer
		want string
	}{
		{name: "root", p: nil, want: "/"},
		{name: "segments", p: Pointer{"definitions", "foo"}, want: "/definitions/foo"},
		{name: "escapes round trip", p: Pointer{"a/b", "c~d"}, want: "/a~1b/c~0d"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
			if tc.p == nil {
				return
			}
			back, err := ParsePointer(tc.want)
			if err != nil {
				t.Fatalf("reparse: %v", err)
			}
			if d := cmp.Diff(tc.p, back); d != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestPointerAppendBack(t *testing.T) {
	p := Pointer{"a"}
	q := p.Append("b", "c")
	if d := cmp.Diff(Pointer{"a", "b", "c"}, q); d != "" {
		t.Errorf("append mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(Pointer{"a"}, p); d != "" {
		t.Errorf("append mutated receiver (-want +got):\n%s", d)
	}
	if d := cmp.Diff(Pointer{"a", "b"}, q.Back()); d != "" {
		t.Errorf("back mismatch (-want +got):\n%s", d)
	}
	if got := Pointer(nil).Back(); got != nil {
		t.Errorf("back of root should be root, got %v", got)
	}
}

func TestDecodeSegment(t *testing.T) {
	got, err := DecodeSegment("%2Ffoo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/foo" {
		t.Errorf("got %q, want %q", got, "/foo")
	}
	if _, err := DecodeSegment("%zz"); !errors.Is(err, ErrPointerSyntax) {
		t.Errorf("got %v, want ErrPointerSyntax", err)
	}
}
