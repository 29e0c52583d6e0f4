package codegen

import "strings"

// DefaultWidth is the number of fill characters per indent level.
const DefaultWidth = 2

// DefaultFill is the fill character used when none is specified.
const DefaultFill = ' '

// Indent computes the depth-dependent prefix for a node: the fill character
// repeated width times per nesting level. The per-level unit string is built
// once at construction and reused on every call to String.
//
// The level only moves forward: containers deepen their children via
// IncreaseIndent, and no operation shallows a node.
type Indent struct {
	level int
	width int
	fill  byte
	unit  string
}

// NewIndent creates an indent at the given nesting level with width fill
// characters per level. Negative values are clamped to zero.
func NewIndent(level, width int, fill byte) Indent {
	if level < 0 {
		level = 0
	}
	if width < 0 {
		width = 0
	}
	return Indent{
		level: level,
		width: width,
		fill:  fill,
		unit:  strings.Repeat(string(fill), width),
	}
}

// DefaultIndent returns a level-0 indent with [DefaultWidth] spaces per level.
func DefaultIndent() Indent {
	return NewIndent(0, DefaultWidth, DefaultFill)
}

// String returns the prefix for the current level: the unit string repeated
// level times. A level or width of zero yields the empty string.
func (i Indent) String() string {
	return strings.Repeat(i.unit, i.level)
}

// Level returns the current nesting level.
func (i Indent) Level() int {
	return i.level
}

// Width returns the number of fill characters per level.
func (i Indent) Width() int {
	return i.width
}

// child returns an indent one level deeper with the same width and fill,
// used when a container creates snippets for its children.
func (i Indent) child() Indent {
	return NewIndent(i.level+1, i.width, i.fill)
}
