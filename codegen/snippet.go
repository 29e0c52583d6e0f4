package codegen

import "strings"

// Snippet is a leaf node holding an ordered list of fully-wrapped text lines.
// The header and footer are fixed at construction and applied when a line is
// added, not when the snippet renders; rendering only prepends the snippet's
// indentation to each stored line.
type Snippet struct {
	indent Indent
	header string
	footer string
	kind   Kind
	lines  []string
}

// NewLine creates a snippet for plain lines, with no header or footer.
func NewLine(opts ...Option) *Snippet {
	o := buildOptions(opts)
	return &Snippet{indent: o.indent, kind: KindLine}
}

// NewSystemInclude creates a snippet that wraps each added line as a system
// include directive: Add("vector") stores `#include <vector>`.
func NewSystemInclude(opts ...Option) *Snippet {
	o := buildOptions(opts)
	return &Snippet{
		indent: o.indent,
		header: "#include <",
		footer: ">",
		kind:   KindSystemInclude,
	}
}

// NewLocalInclude creates a snippet that wraps each added line as a local
// include directive relative to baseDir: with baseDir "geometry/",
// Add("point.h") stores `#include "geometry/point.h"`.
func NewLocalInclude(baseDir string, opts ...Option) *Snippet {
	o := buildOptions(opts)
	return &Snippet{
		indent: o.indent,
		header: `#include "` + baseDir,
		footer: `"`,
		kind:   KindLocalInclude,
	}
}

// Add appends header+line+footer as one new line. It never fails; a line
// containing "\n" is stored as-is and will render as multiple physical lines.
func (s *Snippet) Add(line string) {
	s.lines = append(s.lines, s.header+line+s.footer)
}

// AddLines appends each line in order, wrapping every one like [Snippet.Add].
func (s *Snippet) AddLines(lines ...string) {
	for _, line := range lines {
		s.Add(line)
	}
}

// Absorb renders n, splits the result into physical lines, and appends each
// line verbatim, without this snippet's header and footer. The absorbed
// node's structure is flattened away; only its text survives, to be indented
// by this snippet at render time.
func (s *Snippet) Absorb(n Node) {
	out := n.Render()
	if out == "" {
		return
	}
	out = strings.TrimSuffix(out, "\n")
	s.lines = append(s.lines, strings.Split(out, "\n")...)
}

// Render returns every stored line in insertion order, each prefixed with
// the snippet's indentation and terminated with "\n". An empty snippet
// renders as the empty string.
func (s *Snippet) Render() string {
	prefix := s.indent.String()
	var b strings.Builder
	for _, line := range s.lines {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Kind reports the snippet's variant.
func (s *Snippet) Kind() Kind {
	return s.kind
}

// IncreaseIndent deepens the snippet by the given number of levels.
// Non-positive values are ignored; indentation only moves forward.
func (s *Snippet) IncreaseIndent(by int) {
	if by <= 0 {
		return
	}
	s.indent.level += by
}
