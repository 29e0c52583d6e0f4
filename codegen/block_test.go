package codegen

import "testing"

func TestBlock_Render(t *testing.T) {
	tests := []struct {
		name  string
		block *Block
		lines []string
		want  string
	}{
		{
			name:  "empty code block",
			block: NewCodeBlock(),
			want:  "{\n}\n",
		},
		{
			name:  "code block with one line",
			block: NewCodeBlock(),
			lines: []string{"x"},
			want:  "{\n  x\n}\n",
		},
		{
			name:  "definition",
			block: NewDefinition("int add(int a, int b)"),
			lines: []string{"return a + b;"},
			want:  "int add(int a, int b) {\n  return a + b;\n}\n",
		},
		{
			name:  "namespace",
			block: NewNamespace("geometry"),
			lines: []string{"class Point;"},
			want:  "namespace geometry {\n  class Point;\n}\n",
		},
		{
			name:  "indented code block",
			block: NewCodeBlock(WithIndent(NewIndent(1, 2, ' '))),
			lines: []string{"x"},
			want:  "  {\n    x\n  }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.block.AddLines(tt.lines...)
			if got := tt.block.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlock_Kind(t *testing.T) {
	tests := []struct {
		block *Block
		want  Kind
	}{
		{NewCodeBlock(), KindCodeBlock},
		{NewDefinition("void f()"), KindDefinition},
		{NewNamespace("n"), KindNamespace},
	}

	for _, tt := range tests {
		if got := tt.block.Kind(); got != tt.want {
			t.Errorf("Kind() = %v, want %v", got, tt.want)
		}
	}
}

func TestBlock_AddNestsChildrenOneLevelDeeper(t *testing.T) {
	inner := NewCodeBlock()
	inner.AddLines("x")

	outer := NewCodeBlock()
	outer.Add(inner)

	// The inner block rendered at its own level 0, then was flattened into
	// a child snippet at level 1.
	want := "{\n  {\n    x\n  }\n}\n"
	if got := outer.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestBlock_AddMultipleNodes(t *testing.T) {
	includes := NewSystemInclude()
	includes.AddLines("vector", "string")

	body := NewLine()
	body.Add("int x = 0;")

	block := NewNamespace("demo")
	block.Add(includes, body)

	want := "namespace demo {\n" +
		"  #include <vector>\n" +
		"  #include <string>\n" +
		"  int x = 0;\n" +
		"}\n"
	if got := block.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestBlock_RenderIdempotent(t *testing.T) {
	block := NewNamespace("demo")
	block.AddLines("int x;")

	if first, second := block.Render(), block.Render(); first != second {
		t.Errorf("Render() not idempotent: %q then %q", first, second)
	}
}

func TestBlock_IncreaseIndentPropagates(t *testing.T) {
	block := NewCodeBlock()
	block.AddLines("x")

	block.IncreaseIndent(1)

	// Header and footer at level 1, the child line at level 2.
	want := "  {\n    x\n  }\n"
	if got := block.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestBlock_IncreaseIndentReachesNestedStructure(t *testing.T) {
	inner := NewCodeBlock()
	inner.AddLines("x")

	outer := NewCodeBlock()
	outer.Add(inner)
	outer.IncreaseIndent(2)

	want := "    {\n" +
		"      {\n" +
		"        x\n" +
		"      }\n" +
		"    }\n"
	if got := outer.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
