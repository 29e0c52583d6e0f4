package manifest

import (
	"github.com/Torimune29/cppcodegen/codegen"
)

// Build compiles the document into a codegen tree. The returned node renders
// the full document body: includes first, then top-level lines, namespaces,
// classes, and blocks, in declaration order. Include guards are applied by
// [Document.Render], not here.
func (d *Document) Build() (codegen.Node, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	base := d.baseIndent()
	root := codegen.NewLine(codegen.WithIndent(base))

	hasIncludes := len(d.Includes.System) > 0 || d.Includes.Local != nil
	if len(d.Includes.System) > 0 {
		inc := codegen.NewSystemInclude()
		inc.AddLines(d.Includes.System...)
		root.Absorb(inc)
	}
	if d.Includes.Local != nil {
		inc := codegen.NewLocalInclude(d.Includes.Local.Base)
		inc.AddLines(d.Includes.Local.Files...)
		root.Absorb(inc)
	}

	hasBody := len(d.Lines) > 0 || len(d.Namespaces) > 0 ||
		len(d.Classes) > 0 || len(d.Blocks) > 0
	if hasIncludes && hasBody {
		root.Add("")
	}

	root.AddLines(d.Lines...)
	for _, ns := range d.Namespaces {
		root.Absorb(buildNamespace(ns, base))
	}
	for _, c := range d.Classes {
		root.Absorb(buildClass(c, base))
	}
	for _, b := range d.Blocks {
		root.Absorb(buildBlock(b, base))
	}
	return root, nil
}

// Render builds the document and returns its full text, wrapped in
// "#pragma once" or an #ifndef guard when the document asks for one.
func (d *Document) Render() (string, error) {
	node, err := d.Build()
	if err != nil {
		return "", err
	}
	body := node.Render()

	switch {
	case d.PragmaOnce:
		return "#pragma once\n\n" + body, nil
	case d.Guard != "":
		return "#ifndef " + d.Guard + "\n" +
			"#define " + d.Guard + "\n\n" +
			body +
			"\n#endif  // " + d.Guard + "\n", nil
	default:
		return body, nil
	}
}

// baseIndent returns the level-0 indent every node in the document is built
// from. A zero width selects the codegen default.
func (d *Document) baseIndent() codegen.Indent {
	width := d.Indent.Width
	if width == 0 {
		width = codegen.DefaultWidth
	}
	fill := byte(codegen.DefaultFill)
	if d.Indent.Fill != "" {
		fill = d.Indent.Fill[0]
	}
	return codegen.NewIndent(0, width, fill)
}

func buildNamespace(ns Namespace, base codegen.Indent) codegen.Node {
	block := codegen.NewNamespace(ns.Name, codegen.WithIndent(base))
	block.AddLines(ns.Lines...)
	for _, c := range ns.Classes {
		block.Add(buildClass(c, base))
	}
	for _, b := range ns.Blocks {
		block.Add(buildBlock(b, base))
	}
	for _, nested := range ns.Namespaces {
		block.Add(buildNamespace(nested, base))
	}
	return block
}

func buildClass(c Class, base codegen.Indent) codegen.Node {
	cls := codegen.NewClass(c.Name, codegen.WithIndent(base))
	cls.AddLinesTo(codegen.Public, c.Public...)
	cls.AddLinesTo(codegen.Protected, c.Protected...)
	cls.AddLinesTo(codegen.Private, c.Private...)
	return cls
}

func buildBlock(b Block, base codegen.Indent) codegen.Node {
	var block *codegen.Block
	if b.Kind == BlockDefinition {
		block = codegen.NewDefinition(b.Declaration, codegen.WithIndent(base))
	} else {
		block = codegen.NewCodeBlock(codegen.WithIndent(base))
	}
	block.AddLines(b.Lines...)
	return block
}
