package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/goccy/go-json"

	"github.com/vanderheijden86/pickpack/pkg/picker"
)

// resultEntry is the JSON shape of one picked entry.
type resultEntry struct {
	Name  string `json:"name"`
	Index *int   `json:"index,omitempty"`
}

// renderResult formats the picked items: JSON array with --json-out,
// otherwise one entry per line with a tab-separated index when the
// output mode carries one.
func renderResult(items []picker.Item) (string, error) {
	if jsonOut {
		entries := make([]resultEntry, len(items))
		for i, item := range items {
			entries[i].Name = item.Name
			if item.Index >= 0 {
				index := item.Index
				entries[i].Index = &index
			}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding result: %w", err)
		}
		return string(data) + "\n", nil
	}

	var b strings.Builder
	for _, item := range items {
		b.WriteString(item.Name)
		if item.Index >= 0 {
			fmt.Fprintf(&b, "\t%d", item.Index)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func emit(w io.Writer, items []picker.Item) error {
	out, err := renderResult(items)
	if err != nil {
		return err
	}
	if copyOut {
		if err := clipboard.WriteAll(strings.TrimSuffix(out, "\n")); err != nil {
			return fmt.Errorf("copying result: %w", err)
		}
	}
	_, err = io.WriteString(w, out)
	return err
}
