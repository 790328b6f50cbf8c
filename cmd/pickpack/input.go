package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/vanderheijden86/pickpack/pkg/tree"
)

// jsonNode is the nested input format accepted with --json.
type jsonNode struct {
	Name     string     `json:"name"`
	Children []jsonNode `json:"children,omitempty"`
}

func (j jsonNode) toTree() *tree.Node {
	children := make([]*tree.Node, len(j.Children))
	for i, child := range j.Children {
		children[i] = child.toTree()
	}
	return tree.New(j.Name, children...)
}

// buildTree assembles the option tree from the positional arguments or
// the input file, applying --json and --sep interpretation.
func buildTree(args []string) (*tree.Node, error) {
	if jsonInput {
		if inputFile == "" {
			return nil, fmt.Errorf("--json requires --input")
		}
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", inputFile, err)
		}
		var root jsonNode
		if err := json.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", inputFile, err)
		}
		if root.Name == "" {
			return nil, fmt.Errorf("parsing %s: root entry has no name", inputFile)
		}
		return root.toTree(), nil
	}

	entries := args
	if inputFile != "" {
		lines, err := readLines(inputFile)
		if err != nil {
			return nil, err
		}
		entries = lines
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no options given; pass arguments or --input")
	}

	if pathSep != "" {
		root := treeFromPaths(entries, pathSep)
		if len(root.Children) == 0 {
			return nil, fmt.Errorf("no options given; every entry is empty after splitting on %q", pathSep)
		}
		return root, nil
	}

	children := make([]*tree.Node, len(entries))
	for i, entry := range entries {
		children[i] = tree.New(entry)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return tree.New(tree.DefaultRootName, children...), nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// treeFromPaths folds separator-delimited paths into a hierarchy.
// Segments sharing a prefix share a node; first appearance fixes the
// order.
func treeFromPaths(paths []string, sep string) *tree.Node {
	root := tree.New(tree.DefaultRootName)
	index := map[*tree.Node]map[string]*tree.Node{root: {}}

	for _, path := range paths {
		cur := root
		for _, segment := range strings.Split(path, sep) {
			if segment == "" {
				continue
			}
			child, ok := index[cur][segment]
			if !ok {
				child = tree.New(segment)
				child.Parent = cur
				cur.Children = append(cur.Children, child)
				index[cur][segment] = child
				index[child] = map[string]*tree.Node{}
			}
			cur = child
		}
	}
	return root
}
