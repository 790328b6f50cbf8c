package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vanderheijden86/pickpack/pkg/picker"
	"github.com/vanderheijden86/pickpack/pkg/tree"
)

// resetFlags restores the package flag state after a test mutated it.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		inputFile = ""
		jsonInput = false
		pathSep = ""
		title = ""
		rootName = ""
		indicator = picker.DefaultIndicator
		bracketLeft = picker.DefaultBracketL
		bracketRight = picker.DefaultBracketR
		noBrackets = false
		defaultIndex = 0
		multiselect = false
		minSelection = 0
		includeDesc = false
		leavesOnly = false
		outputMode = picker.NameOnly.String()
		jsonOut = false
		copyOut = false
		indexed = false
	})
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestBuildTreeFromArgs(t *testing.T) {
	resetFlags(t)
	root, err := buildTree([]string{"apple", "banana"})
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	if root.Name != tree.DefaultRootName {
		t.Errorf("root name = %q, want %q", root.Name, tree.DefaultRootName)
	}
	if len(root.Children) != 2 || root.Children[0].Name != "apple" || root.Children[1].Name != "banana" {
		t.Fatalf("unexpected children: %#v", root.Children)
	}
}

func TestBuildTreeSingleArgIsRoot(t *testing.T) {
	resetFlags(t)
	root, err := buildTree([]string{"only"})
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	if root.Name != "only" || len(root.Children) != 0 {
		t.Fatalf("single entry should become the root, got %#v", root)
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	resetFlags(t)
	if _, err := buildTree(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestBuildTreeFromFile(t *testing.T) {
	resetFlags(t)
	inputFile = writeTempFile(t, "options.txt", "one\n\n  two  \nthree\n")

	root, err := buildTree(nil)
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	want := []string{"one", "two", "three"}
	if len(root.Children) != len(want) {
		t.Fatalf("got %d children, want %d", len(root.Children), len(want))
	}
	for i, name := range want {
		if root.Children[i].Name != name {
			t.Errorf("child %d = %q, want %q", i, root.Children[i].Name, name)
		}
	}
}

func TestBuildTreeFromPaths(t *testing.T) {
	resetFlags(t)
	pathSep = "/"

	root, err := buildTree([]string{"a/x", "a/y", "b", "a/x/deep"})
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("got %d top-level entries, want 2", len(root.Children))
	}
	a := root.Children[0]
	if a.Name != "a" || len(a.Children) != 2 {
		t.Fatalf("unexpected subtree for a: %#v", a)
	}
	if a.Children[0].Name != "x" || a.Children[1].Name != "y" {
		t.Errorf("a's children = %q, %q", a.Children[0].Name, a.Children[1].Name)
	}
	if len(a.Children[0].Children) != 1 || a.Children[0].Children[0].Name != "deep" {
		t.Errorf("a/x should contain deep, got %#v", a.Children[0].Children)
	}
	if root.Children[1].Name != "b" {
		t.Errorf("second top-level entry = %q, want b", root.Children[1].Name)
	}
	if a.Children[0].Parent != a || a.Parent != root {
		t.Error("parent links not wired")
	}
}

func TestBuildTreePathsOnlySeparators(t *testing.T) {
	resetFlags(t)
	pathSep = "/"
	if _, err := buildTree([]string{"//", "/"}); err == nil {
		t.Fatal("expected error when every entry splits into empty segments")
	}
}

func TestBuildTreeFromJSON(t *testing.T) {
	resetFlags(t)
	jsonInput = true
	inputFile = writeTempFile(t, "tree.json",
		`{"name":"root","children":[{"name":"left","children":[{"name":"leaf"}]},{"name":"right"}]}`)

	root, err := buildTree(nil)
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	if root.Name != "root" || len(root.Children) != 2 {
		t.Fatalf("unexpected root: %#v", root)
	}
	left := root.Children[0]
	if left.Name != "left" || len(left.Children) != 1 || left.Children[0].Name != "leaf" {
		t.Fatalf("unexpected left subtree: %#v", left)
	}
	if left.Parent != root || left.Children[0].Parent != left {
		t.Error("parent links not wired")
	}
}

func TestBuildTreeJSONRequiresInput(t *testing.T) {
	resetFlags(t)
	jsonInput = true
	if _, err := buildTree(nil); err == nil {
		t.Fatal("expected error when --json is given without --input")
	}
}

func TestPickerOptionsTranslation(t *testing.T) {
	resetFlags(t)
	title = "choose"
	multiselect = true
	minSelection = 2
	leavesOnly = true
	noBrackets = true

	opts, err := pickerOptions()
	if err != nil {
		t.Fatalf("pickerOptions: %v", err)
	}
	p, err := picker.New(tree.New("r", tree.New("a"), tree.New("b"), tree.New("c")), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Title() != "choose" {
		t.Errorf("title = %q", p.Title())
	}
	if !p.Multiselect() || p.MinSelection() != 2 {
		t.Errorf("multiselect = %v, min = %d", p.Multiselect(), p.MinSelection())
	}
	if _, _, _, brackets := p.Indicator(); brackets {
		t.Error("brackets should be disabled")
	}
	if p.Mode() != picker.NameOnly {
		t.Errorf("mode = %v, want NameOnly", p.Mode())
	}
}

func TestPickerOptionsIndexedUpgradesMode(t *testing.T) {
	tests := []struct {
		mode string
		want picker.OutputMode
	}{
		{"nameonly", picker.NameIndex},
		{"nodeonly", picker.NodeIndex},
		{"nameindex", picker.NameIndex},
	}
	for _, tt := range tests {
		resetFlags(t)
		outputMode = tt.mode
		indexed = true

		opts, err := pickerOptions()
		if err != nil {
			t.Fatalf("pickerOptions(%s): %v", tt.mode, err)
		}
		p, err := picker.New(tree.New("r"), opts...)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if p.Mode() != tt.want {
			t.Errorf("--indexed with %s gave mode %v, want %v", tt.mode, p.Mode(), tt.want)
		}
	}
}

func TestPickerOptionsInvalidMode(t *testing.T) {
	resetFlags(t)
	outputMode = "bogus"
	if _, err := pickerOptions(); err == nil {
		t.Fatal("expected error for invalid output mode")
	}
}

func TestRenderResultPlain(t *testing.T) {
	resetFlags(t)
	out, err := renderResult([]picker.Item{
		{Name: "one", Index: -1},
		{Name: "two", Index: 4},
	})
	if err != nil {
		t.Fatalf("renderResult: %v", err)
	}
	want := "one\ntwo\t4\n"
	if out != want {
		t.Errorf("renderResult = %q, want %q", out, want)
	}
}

func TestRenderResultJSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	out, err := renderResult([]picker.Item{
		{Name: "one", Index: 0},
		{Name: "two", Index: -1},
	})
	if err != nil {
		t.Fatalf("renderResult: %v", err)
	}
	want := "[\n  {\n    \"name\": \"one\",\n    \"index\": 0\n  },\n  {\n    \"name\": \"two\"\n  }\n]\n"
	if out != want {
		t.Errorf("renderResult = %q, want %q", out, want)
	}
}
