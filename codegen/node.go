package codegen

// Kind identifies the variant of a node, for callers that need to branch on
// structure without type assertions.
type Kind int

const (
	KindLine Kind = iota
	KindSystemInclude
	KindLocalInclude
	KindCodeBlock
	KindDefinition
	KindNamespace
	KindClass
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindSystemInclude:
		return "system-include"
	case KindLocalInclude:
		return "local-include"
	case KindCodeBlock:
		return "code-block"
	case KindDefinition:
		return "definition"
	case KindNamespace:
		return "namespace"
	case KindClass:
		return "class"
	default:
		return "unknown"
	}
}

// AccessSpecifier selects a visibility partition of a [Class].
// The zero value is Public; partitions always render in declaration order
// below, regardless of insertion order.
type AccessSpecifier int

const (
	Public AccessSpecifier = iota
	Protected
	Private

	numAccessSpecifiers
)

// String returns the C++ access specifier keyword.
func (a AccessSpecifier) String() string {
	switch a {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "unknown"
	}
}

// Node is any renderable entity in a code tree. Snippet, Block, and Class
// all implement it, which is what lets containers accept nested structures
// of any variant.
type Node interface {
	// Render returns the node's full text, one "\n"-terminated physical
	// line at a time, prefixed with the node's own indentation. Render is
	// pure: calling it twice on an unmutated node yields identical output.
	Render() string

	// Kind reports which variant the node is.
	Kind() Kind
}

// Option configures node construction.
type Option func(*options)

type options struct {
	indent Indent
}

// WithIndent sets the node's indentation. Without it, nodes start at level 0
// with [DefaultWidth] spaces per level.
func WithIndent(indent Indent) Option {
	return func(o *options) {
		o.indent = indent
	}
}

func buildOptions(opts []Option) options {
	o := options{indent: DefaultIndent()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
