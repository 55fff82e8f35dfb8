package uri

import (
	"fmt"
	"net/url"
	"strings"
)

// Pointer is a document-internal path: an ordered sequence of unescaped
// segments. The empty pointer addresses the document root.
type Pointer []string

// ParsePointer parses a pointer fragment such as "/definitions/foo".
// The fragment must be empty or begin with "/". Empty segments are
// dropped, so "#/" addresses the document root. Segments are unescaped
// per RFC 6901 ("~1" then "~0").
func ParsePointer(frag string) (Pointer, error) {
	if frag == "" {
		return nil, nil
	}
	if !strings.HasPrefix(frag, "/") {
		return nil, fmt.Errorf("%w: pointer %q must start with '/'", ErrPointerSyntax, frag)
	}
	var res Pointer
	for part := range strings.SplitSeq(frag[1:], "/") {
		if part == "" {
			continue
		}
		seg, err := UnescapeSegment(part)
		if err != nil {
			return nil, err
		}
		res = append(res, seg)
	}
	return res, nil
}

// UnescapeSegment applies the RFC 6901 escape rules: "~1" becomes "/",
// then "~0" becomes "~". Any other use of "~" is malformed.
func UnescapeSegment(seg string) (string, error) {
	for i := 0; i < len(seg); i++ {
		if seg[i] != '~' {
			continue
		}
		if i+1 >= len(seg) || (seg[i+1] != '0' && seg[i+1] != '1') {
			return "", fmt.Errorf("%w: invalid escape in segment %q", ErrPointerSyntax, seg)
		}
		i++
	}
	seg = strings.ReplaceAll(seg, "~1", "/")
	return strings.ReplaceAll(seg, "~0", "~"), nil
}

// EscapeSegment is the inverse of UnescapeSegment.
func EscapeSegment(seg string) string {
	seg = strings.ReplaceAll(seg, "~", "~0")
	return strings.ReplaceAll(seg, "/", "~1")
}

// DecodeSegment applies URL percent-decoding to a segment. Used as a
// lookup fallback: segments may legitimately contain literal '%', so the
// segment is always tried as given first.
func DecodeSegment(seg string) (string, error) {
	decoded, err := url.PathUnescape(seg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPointerSyntax, err)
	}
	return decoded, nil
}

// String renders the pointer as a fragment. The empty pointer renders as
// "/", matching the canonical root form.
func (p Pointer) String() string {
	if len(p) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, seg := range p {
		sb.WriteByte('/')
		sb.WriteString(EscapeSegment(seg))
	}
	return sb.String()
}

// Append returns a new pointer extended by the given segments.
func (p Pointer) Append(segs ...string) Pointer {
	res := make(Pointer, 0, len(p)+len(segs))
	res = append(res, p...)
	return append(res, segs...)
}

// Back returns the pointer with its last segment removed.
func (p Pointer) Back() Pointer {
	if len(p) == 0 {
		return nil
	}
	res := make(Pointer, len(p)-1)
	copy(res, p[:len(p)-1])
	return res
}

// Equal reports whether two pointers have the same segment sequence.
func (p Pointer) Equal(o Pointer) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}
