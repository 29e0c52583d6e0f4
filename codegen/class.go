package codegen

import "strings"

// Class is a container whose children live in three visibility partitions
// instead of one flat list. Partitions always render public, then protected,
// then private, regardless of insertion order; an empty partition
// contributes nothing, not even its access label.
type Class struct {
	indent     Indent
	name       string
	partitions [numAccessSpecifiers][]*Snippet
}

// NewClass creates a class-shaped container named name, rendered as
//
//	class name {
//	 public:
//	  ...
//	};
func NewClass(name string, opts ...Option) *Class {
	o := buildOptions(opts)
	return &Class{indent: o.indent, name: name}
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Add absorbs each node into the private partition, the default visibility
// for class members.
func (c *Class) Add(nodes ...Node) {
	c.AddTo(Private, nodes...)
}

// AddTo absorbs each node into the given partition. Every node gets a fresh
// snippet one level deeper than the class, in argument order.
func (c *Class) AddTo(access AccessSpecifier, nodes ...Node) {
	for _, n := range nodes {
		child := NewLine(WithIndent(c.indent.child()))
		child.Absorb(n)
		c.partitions[access] = append(c.partitions[access], child)
	}
}

// AddLines adds raw lines to the private partition.
func (c *Class) AddLines(lines ...string) {
	c.AddLinesTo(Private, lines...)
}

// AddLinesTo adds each line of raw text to the given partition as a plain
// line one level deeper than the class.
func (c *Class) AddLinesTo(access AccessSpecifier, lines ...string) {
	for _, line := range lines {
		child := NewLine(WithIndent(c.indent.child()))
		child.Add(line)
		c.partitions[access] = append(c.partitions[access], child)
	}
}

// Render returns the class declaration, the non-empty partitions in fixed
// public/protected/private order, and the closing "};". Each partition is
// introduced by its access label indented one literal space past the class,
// matching conventional C++ formatter output.
func (c *Class) Render() string {
	prefix := c.indent.String()
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString("class ")
	sb.WriteString(c.name)
	sb.WriteString(" {\n")
	for access := Public; access < numAccessSpecifiers; access++ {
		snippets := c.partitions[access]
		if len(snippets) == 0 {
			continue
		}
		sb.WriteString(prefix)
		sb.WriteString(" ")
		sb.WriteString(access.String())
		sb.WriteString(":\n")
		for _, s := range snippets {
			sb.WriteString(s.Render())
		}
	}
	sb.WriteString(prefix)
	sb.WriteString("};\n")
	return sb.String()
}

// Kind reports [KindClass].
func (c *Class) Kind() Kind {
	return KindClass
}

// IncreaseIndent deepens the class and every snippet across all three
// partitions by the same number of levels. Non-positive values are ignored.
func (c *Class) IncreaseIndent(by int) {
	if by <= 0 {
		return
	}
	c.indent.level += by
	for _, snippets := range c.partitions {
		for _, s := range snippets {
			s.IncreaseIndent(by)
		}
	}
}
