// Package cppcodegen generates indented C++ source text from composable
// building blocks.
//
// cppcodegen is a structural string assembler, not a compiler backend: it
// never parses or validates the text it emits and has no knowledge of C++
// grammar. Each subpackage can be used independently:
//
//   - codegen: Snippets, blocks, classes, and the indentation rules
//     that tie them together
//   - manifest: Declarative YAML/TOML documents compiled into codegen trees
//   - emit: Writing rendered output to disk and watch-and-regenerate
//
// # Quick Start
//
// Building a tree by hand:
//
//	import "github.com/Torimune29/cppcodegen/codegen"
//	ns := codegen.NewNamespace("geometry")
//	ns.AddLines("class Point;")
//	text := ns.Render()
//
// Generating from a manifest:
//
//	import "github.com/Torimune29/cppcodegen/manifest"
//	doc, _ := manifest.Load("geometry.yaml")
//	text, _ := doc.Render()
//
// The cppcodegen command wraps both for use from build scripts:
//
//	cppcodegen generate geometry.yaml
//	cppcodegen watch geometry.yaml
//
// # Design Philosophy
//
//   - The core never fails: every operation is a pure in-memory append
//   - Trees are exclusively owned; no locking, no sharing
//   - Rendering is idempotent and free of side effects
//   - Validation lives at the manifest boundary, never in the core
package cppcodegen
