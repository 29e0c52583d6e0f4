package codegen

import "strings"

// Block is a container node: a header/footer pair around an ordered list of
// owned snippets, each rendered one level deeper than the block itself.
// The header and footer carry their own trailing newlines and are emitted at
// the block's indent level.
type Block struct {
	indent   Indent
	header   string
	footer   string
	kind     Kind
	snippets []*Snippet
}

// NewCodeBlock creates a bare brace-delimited block.
func NewCodeBlock(opts ...Option) *Block {
	o := buildOptions(opts)
	return &Block{
		indent: o.indent,
		header: "{\n",
		footer: "}\n",
		kind:   KindCodeBlock,
	}
}

// NewDefinition creates a block introduced by a declaration, e.g.
// NewDefinition("int add(int a, int b)") renders as
//
//	int add(int a, int b) {
//	  ...
//	}
func NewDefinition(declaration string, opts ...Option) *Block {
	o := buildOptions(opts)
	return &Block{
		indent: o.indent,
		header: declaration + " {\n",
		footer: "}\n",
		kind:   KindDefinition,
	}
}

// NewNamespace creates a block wrapping its children in a namespace
// declaration.
func NewNamespace(name string, opts ...Option) *Block {
	o := buildOptions(opts)
	return &Block{
		indent: o.indent,
		header: "namespace " + name + " {\n",
		footer: "}\n",
		kind:   KindNamespace,
	}
}

// Add absorbs each node into a fresh snippet created one level deeper than
// the block, in argument order. The nodes themselves are not retained; their
// rendered text is.
func (b *Block) Add(nodes ...Node) {
	for _, n := range nodes {
		child := NewLine(WithIndent(b.indent.child()))
		child.Absorb(n)
		b.snippets = append(b.snippets, child)
	}
}

// AddLines adds each line of raw text as a plain line one level deeper than
// the block.
func (b *Block) AddLines(lines ...string) {
	for _, line := range lines {
		child := NewLine(WithIndent(b.indent.child()))
		child.Add(line)
		b.snippets = append(b.snippets, child)
	}
}

// Render returns the header, every owned snippet's output in insertion
// order, and the footer. Header and footer are prefixed at the block's own
// level; children carry their own deeper indentation.
func (b *Block) Render() string {
	prefix := b.indent.String()
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(b.header)
	for _, s := range b.snippets {
		sb.WriteString(s.Render())
	}
	sb.WriteString(prefix)
	sb.WriteString(b.footer)
	return sb.String()
}

// Kind reports the block's variant.
func (b *Block) Kind() Kind {
	return b.kind
}

// IncreaseIndent deepens the block and every snippet it already owns by the
// same number of levels, keeping children exactly one level below the block.
// Non-positive values are ignored.
func (b *Block) IncreaseIndent(by int) {
	if by <= 0 {
		return
	}
	b.indent.level += by
	for _, s := range b.snippets {
		s.IncreaseIndent(by)
	}
}
