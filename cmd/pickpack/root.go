package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanderheijden86/pickpack/pkg/picker"
	"github.com/vanderheijden86/pickpack/pkg/ui"
)

var (
	inputFile string
	jsonInput bool
	pathSep   string

	title        string
	rootName     string
	indicator    string
	bracketLeft  string
	bracketRight string
	noBrackets   bool
	defaultIndex int
	multiselect  bool
	minSelection int
	includeDesc  bool
	leavesOnly   bool
	outputMode   string

	jsonOut bool
	copyOut bool
	indexed bool
)

var rootCmd = &cobra.Command{
	Use:   "pickpack [options...]",
	Short: "Pick entries from a tree of options in the terminal",
	Long: `pickpack shows an interactive tree of options and prints the
entries chosen. Options come from positional arguments, from a file
(one entry per line, or a nested JSON tree with --json), or from a
separator-delimited path list built into a hierarchy with --sep.

Example:
  pickpack apple banana cherry
  pickpack --input fruits.txt --multiselect --min 1
  pickpack --input paths.txt --sep / --leaves-only --multiselect
  pickpack --input tree.json --json --json-out`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&inputFile, "input", "i", "", "Read options from a file instead of arguments")
	f.BoolVar(&jsonInput, "json", false, "Treat the input file as a nested JSON tree")
	f.StringVar(&pathSep, "sep", "", "Build a hierarchy by splitting each entry on this separator")

	f.StringVarP(&title, "title", "t", "", "Title shown above the options")
	f.StringVar(&rootName, "root-name", "", "Display name of the root entry")
	f.StringVar(&indicator, "indicator", picker.DefaultIndicator, "Cursor indicator glyph")
	f.StringVar(&bracketLeft, "bracket-left", picker.DefaultBracketL, "Left bracket around the indicator")
	f.StringVar(&bracketRight, "bracket-right", picker.DefaultBracketR, "Right bracket around the indicator")
	f.BoolVar(&noBrackets, "no-brackets", false, "Draw the indicator without brackets")
	f.IntVar(&defaultIndex, "default-index", 0, "Entry the cursor starts on")
	f.BoolVarP(&multiselect, "multiselect", "m", false, "Allow selecting multiple entries")
	f.IntVar(&minSelection, "min", 0, "Minimum number of selected entries (with --multiselect)")
	f.BoolVar(&includeDesc, "include-descendants", false, "Single-select result includes the chosen entry's subtree")
	f.BoolVar(&leavesOnly, "leaves-only", false, "Result contains only leaf entries")
	f.StringVar(&outputMode, "output-mode", picker.NameOnly.String(), "Result shape: nodeindex, nameindex, nodeonly, nameonly")

	f.BoolVar(&jsonOut, "json-out", false, "Print the result as JSON")
	f.BoolVar(&copyOut, "copy", false, "Copy the result to the clipboard")
	f.BoolVar(&indexed, "indexed", false, "Include entry indices in the output")
}

// pickerOptions translates the flag values into construction options.
func pickerOptions() ([]picker.Option, error) {
	mode, err := picker.ParseOutputMode(outputMode)
	if err != nil {
		return nil, err
	}
	if indexed {
		switch mode {
		case picker.NameOnly:
			mode = picker.NameIndex
		case picker.NodeOnly:
			mode = picker.NodeIndex
		}
	}

	opts := []picker.Option{
		picker.WithOutputMode(mode),
		picker.WithDefaultIndex(defaultIndex),
	}
	if title != "" {
		opts = append(opts, picker.WithTitle(title))
	}
	if rootName != "" {
		opts = append(opts, picker.WithRootName(rootName))
	}
	if indicator != picker.DefaultIndicator {
		opts = append(opts, picker.WithIndicator(indicator))
	}
	if noBrackets {
		opts = append(opts, picker.WithoutBrackets())
	} else if bracketLeft != picker.DefaultBracketL || bracketRight != picker.DefaultBracketR {
		opts = append(opts, picker.WithBrackets(bracketLeft, bracketRight))
	}
	if multiselect {
		opts = append(opts, picker.WithMultiselect(minSelection))
	}
	if includeDesc {
		opts = append(opts, picker.WithIncludeDescendants())
	}
	if leavesOnly {
		opts = append(opts, picker.WithLeavesOnly())
	}
	return opts, nil
}

func run(args []string) error {
	root, err := buildTree(args)
	if err != nil {
		return err
	}

	opts, err := pickerOptions()
	if err != nil {
		return err
	}
	p, err := picker.New(root, opts...)
	if err != nil {
		return err
	}

	items, err := ui.Run(p)
	if errors.Is(err, ui.ErrCancelled) {
		os.Exit(130)
	}
	if err != nil {
		return err
	}
	return emit(os.Stdout, items)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
