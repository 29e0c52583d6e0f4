// Package manifest compiles declarative documents into codegen trees.
//
// A manifest describes one generated header: its include directives,
// namespaces, classes with visibility partitions, and free-form blocks.
// Documents are written in YAML or TOML and compiled with [Document.Build],
// or rendered straight to text with [Document.Render].
//
// # Document Format
//
//	path: include/geometry.hpp
//	pragma_once: true
//	indent:
//	  width: 2
//	includes:
//	  system: [vector, string]
//	  local:
//	    base: "geometry/"
//	    files: [point.h]
//	namespaces:
//	  - name: geometry
//	    classes:
//	      - name: Point
//	        public:
//	          - "Point() = default;"
//	        private:
//	          - "double x_;"
//	          - "double y_;"
//	    blocks:
//	      - kind: definition
//	        declaration: "inline int add(int a, int b)"
//	        lines: ["return a + b;"]
//
// [Schema] returns a JSON Schema for the format, suitable for editor
// validation of manifest files.
//
// Validation covers the document structure only. The C++ fragments inside it
// are copied through verbatim; nothing checks that they parse.
package manifest
