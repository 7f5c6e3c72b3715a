package docspan

import (
	"strconv"
	"strings"
)

const nthOfType = "nth-of-type("

// Segment is one step of a path: a kind name with an optional 1-based
// nth-of-type ordinal. Nth is zero when the segment has no pseudo-selector.
type Segment struct {
	Kind Kind
	Nth  int
}

func (s Segment) String() string {
	if s.Nth == 0 {
		return string(s.Kind)
	}
	return string(s.Kind) + ":" + nthOfType + strconv.Itoa(s.Nth) + ")"
}

// Path is a chain of segments, each one a direct child of the previous.
//
//	path    := segment (">" segment)*
//	segment := kindName (":" pseudo)?
//	pseudo  := "nth-of-type(" integer ")"
type Path struct {
	Segments []Segment
}

// String returns the canonical form of the path, the one stored in
// template definitions.
func (p Path) String() string {
	parts := make([]string, len(p.Segments))
	for i, seg := range p.Segments {
		parts[i] = seg.String()
	}
	return strings.Join(parts, " > ")
}

// IsZero reports whether the path has no segments.
func (p Path) IsZero() bool {
	return len(p.Segments) == 0
}

// ParsePath parses a path expression. Whitespace around ">" is ignored.
// Returns EINVALID for malformed expressions.
func ParsePath(expr string) (Path, error) {
	if strings.TrimSpace(expr) == "" {
		return Path{}, Errorf(EINVALID, "empty path")
	}

	var p Path
	for _, raw := range strings.Split(expr, ">") {
		seg, err := parseSegment(strings.TrimSpace(raw))
		if err != nil {
			return Path{}, Errorf(EINVALID, "invalid path %q: %s", expr, ErrorMessage(err))
		}
		p.Segments = append(p.Segments, seg)
	}
	return p, nil
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(expr string) Path {
	p, err := ParsePath(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func parseSegment(raw string) (Segment, error) {
	if raw == "" {
		return Segment{}, Errorf(EINVALID, "empty segment")
	}

	name, pseudo, hasPseudo := strings.Cut(raw, ":")
	if err := validateKindName(name); err != nil {
		return Segment{}, err
	}
	seg := Segment{Kind: Kind(name)}
	if !hasPseudo {
		return seg, nil
	}

	arg, ok := strings.CutPrefix(pseudo, nthOfType)
	if !ok {
		return Segment{}, Errorf(EINVALID, "unsupported pseudo-selector %q", pseudo)
	}
	arg, ok = strings.CutSuffix(arg, ")")
	if !ok {
		return Segment{}, Errorf(EINVALID, "unterminated pseudo-selector %q", pseudo)
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return Segment{}, Errorf(EINVALID, "nth-of-type needs a positive integer, got %q", arg)
	}
	seg.Nth = n
	return seg, nil
}

func validateKindName(name string) error {
	if name == "" {
		return Errorf(EINVALID, "missing kind name")
	}
	if i := strings.IndexAny(name, " \t\r\n()>:"); i >= 0 {
		return Errorf(EINVALID, "unexpected %q in kind name %q", name[i], name)
	}
	return nil
}
