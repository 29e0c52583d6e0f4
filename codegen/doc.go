// Package codegen provides composable building blocks for emitting indented
// C++ source text.
//
// Callers build a tree of nodes bottom-up and render the root to obtain the
// final text:
//
//   - [Snippet]: a leaf holding an ordered list of already-wrapped lines
//     (plain lines, #include directives)
//   - [Block]: a header/footer pair around owned snippets, rendered one
//     indent level deeper (braces, definitions, namespaces)
//   - [Class]: a Block variant whose children live in public/protected/private
//     partitions, rendered in that fixed order
//
// Every node implements [Node], so any node can be absorbed into a [Snippet]
// or added to a [Block] or [Class]; absorbing flattens the node's rendered
// text into plain lines.
//
// # Quick Start
//
//	ns := codegen.NewNamespace("geometry")
//	cls := codegen.NewClass("Point")
//	cls.AddLinesTo(codegen.Public, "Point() = default;")
//	cls.AddLines("double x_;", "double y_;")
//	ns.Add(cls)
//	fmt.Print(ns.Render())
//
// All operations are pure in-memory appends and never fail. Lines containing
// embedded newlines are not validated; they will split into multiple physical
// lines when absorbed, which is almost never what you want.
//
// Nodes are not safe for concurrent mutation; each tree is exclusively owned
// by the caller that built it.
package codegen
