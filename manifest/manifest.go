package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Document is the root of a manifest: one generated header file.
type Document struct {
	// Path is the output file the document renders to, relative to the
	// working directory. Required by emit.Generate; optional when the
	// caller only wants the rendered text.
	Path string `yaml:"path,omitempty" toml:"path" json:"path,omitempty"`

	// PragmaOnce emits "#pragma once" at the top of the file.
	PragmaOnce bool `yaml:"pragma_once,omitempty" toml:"pragma_once" json:"pragma_once,omitempty"`

	// Guard wraps the file in an #ifndef include guard with the given
	// macro name. Mutually exclusive with PragmaOnce.
	Guard string `yaml:"guard,omitempty" toml:"guard" json:"guard,omitempty"`

	// Indent configures indentation for the whole document.
	Indent IndentSpec `yaml:"indent,omitempty" toml:"indent" json:"indent,omitempty"`

	// Includes are emitted first, system includes before local ones.
	Includes Includes `yaml:"includes,omitempty" toml:"includes" json:"includes,omitempty"`

	// Lines are free-form top-level lines emitted after the includes.
	Lines []string `yaml:"lines,omitempty" toml:"lines" json:"lines,omitempty"`

	// Namespaces, Classes, and Blocks follow, in that order.
	Namespaces []Namespace `yaml:"namespaces,omitempty" toml:"namespaces" json:"namespaces,omitempty"`
	Classes    []Class     `yaml:"classes,omitempty" toml:"classes" json:"classes,omitempty"`
	Blocks     []Block     `yaml:"blocks,omitempty" toml:"blocks" json:"blocks,omitempty"`
}

// IndentSpec configures the indent unit shared by every node built from the
// document.
type IndentSpec struct {
	// Width is the number of fill characters per level. Zero means the
	// codegen default.
	Width int `yaml:"width,omitempty" toml:"width" json:"width,omitempty"`

	// Fill is the fill character as a one-character string, default " ".
	Fill string `yaml:"fill,omitempty" toml:"fill" json:"fill,omitempty"`
}

// Includes lists the document's include directives.
type Includes struct {
	System []string      `yaml:"system,omitempty" toml:"system" json:"system,omitempty"`
	Local  *LocalInclude `yaml:"local,omitempty" toml:"local" json:"local,omitempty"`
}

// LocalInclude lists local include files resolved against a base directory.
type LocalInclude struct {
	Base  string   `yaml:"base,omitempty" toml:"base" json:"base,omitempty"`
	Files []string `yaml:"files" toml:"files" json:"files"`
}

// Namespace is a named namespace block. Contents render in field order:
// lines, classes, blocks, nested namespaces.
type Namespace struct {
	Name       string      `yaml:"name" toml:"name" json:"name"`
	Lines      []string    `yaml:"lines,omitempty" toml:"lines" json:"lines,omitempty"`
	Classes    []Class     `yaml:"classes,omitempty" toml:"classes" json:"classes,omitempty"`
	Blocks     []Block     `yaml:"blocks,omitempty" toml:"blocks" json:"blocks,omitempty"`
	Namespaces []Namespace `yaml:"namespaces,omitempty" toml:"namespaces" json:"namespaces,omitempty"`
}

// Class is a class declaration with its three visibility partitions.
// Partitions always render public, protected, private, matching the core.
type Class struct {
	Name      string   `yaml:"name" toml:"name" json:"name"`
	Public    []string `yaml:"public,omitempty" toml:"public" json:"public,omitempty"`
	Protected []string `yaml:"protected,omitempty" toml:"protected" json:"protected,omitempty"`
	Private   []string `yaml:"private,omitempty" toml:"private" json:"private,omitempty"`
}

// Block kinds accepted in a manifest.
const (
	BlockCodeBlock  = "code-block"
	BlockDefinition = "definition"
)

// Block is a free-form brace block, optionally introduced by a declaration.
type Block struct {
	// Kind is BlockCodeBlock or BlockDefinition.
	Kind string `yaml:"kind" toml:"kind" json:"kind"`

	// Declaration introduces the block, e.g. "inline int add(int a, int b)".
	// Required for BlockDefinition, ignored otherwise.
	Declaration string `yaml:"declaration,omitempty" toml:"declaration" json:"declaration,omitempty"`

	Lines []string `yaml:"lines,omitempty" toml:"lines" json:"lines,omitempty"`
}

// Load reads and decodes a manifest file. The format is chosen by file
// extension: .yaml and .yml decode as YAML, .toml as TOML. The decoded
// document is validated before being returned.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var doc Document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Parse decodes a YAML manifest from memory and validates it.
func Parse(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the document structure. It does not inspect the C++
// fragments the document carries.
func (d *Document) Validate() error {
	if d.PragmaOnce && d.Guard != "" {
		return fmt.Errorf("%w: pragma_once and guard are mutually exclusive", ErrInvalid)
	}
	if d.Indent.Width < 0 {
		return fmt.Errorf("%w: indent width %d is negative", ErrInvalid, d.Indent.Width)
	}
	if len(d.Indent.Fill) > 1 {
		return fmt.Errorf("%w: indent fill %q is not a single character", ErrInvalid, d.Indent.Fill)
	}
	if d.Includes.Local != nil && len(d.Includes.Local.Files) == 0 {
		return fmt.Errorf("%w: local includes declared with no files", ErrInvalid)
	}
	for _, ns := range d.Namespaces {
		if err := ns.validate(); err != nil {
			return err
		}
	}
	for _, c := range d.Classes {
		if err := c.validate(); err != nil {
			return err
		}
	}
	for _, b := range d.Blocks {
		if err := b.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (n *Namespace) validate() error {
	if n.Name == "" {
		return fmt.Errorf("%w: namespace without a name", ErrInvalid)
	}
	for _, c := range n.Classes {
		if err := c.validate(); err != nil {
			return err
		}
	}
	for _, b := range n.Blocks {
		if err := b.validate(); err != nil {
			return err
		}
	}
	for _, nested := range n.Namespaces {
		if err := nested.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Class) validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: class without a name", ErrInvalid)
	}
	return nil
}

func (b *Block) validate() error {
	switch b.Kind {
	case BlockCodeBlock:
		return nil
	case BlockDefinition:
		if b.Declaration == "" {
			return fmt.Errorf("%w: definition block without a declaration", ErrInvalid)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown block kind %q", ErrInvalid, b.Kind)
	}
}
