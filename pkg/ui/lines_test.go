package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanderheijden86/pickpack/pkg/picker"
	"github.com/vanderheijden86/pickpack/pkg/tree"
)

func parentChildTree() *tree.Node {
	return tree.New("parent", tree.New("child1"), tree.New("child2"))
}

func textsOf(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestLinesDefaultFormat(t *testing.T) {
	p, err := picker.New(parentChildTree())
	require.NoError(t, err)

	lines, current := Lines(p)
	assert.Equal(t, []string{
		"(*)  parent",
		"( ) ├──  child1",
		"( ) └──  child2",
	}, textsOf(lines))
	assert.Equal(t, 1, current)
}

func TestLinesCursorMoves(t *testing.T) {
	p, err := picker.New(parentChildTree())
	require.NoError(t, err)
	p.MoveDown()

	lines, current := Lines(p)
	assert.Equal(t, []string{
		"( )  parent",
		"(*) ├──  child1",
		"( ) └──  child2",
	}, textsOf(lines))
	assert.Equal(t, 2, current)
}

func TestLinesWithoutBrackets(t *testing.T) {
	p, err := picker.New(parentChildTree(), picker.WithoutBrackets())
	require.NoError(t, err)

	lines, _ := Lines(p)
	assert.Equal(t, []string{
		"*  parent",
		"  ├──  child1",
		"  └──  child2",
	}, textsOf(lines))
}

func TestLinesCustomBrackets(t *testing.T) {
	p, err := picker.FromItems([]string{"option1", "option2"}, nil,
		picker.WithBrackets(">>", "<<"))
	require.NoError(t, err)

	lines, _ := Lines(p)
	assert.Equal(t, []string{
		">>*<<  Select all",
		">> << ├──  option1",
		">> << └──  option2",
	}, textsOf(lines))
}

func TestLinesTitleShiftsCurrentLine(t *testing.T) {
	p, err := picker.New(parentChildTree(), picker.WithTitle("pick one\nwisely"))
	require.NoError(t, err)

	lines, current := Lines(p)
	require.Len(t, lines, 6)
	assert.Equal(t, "pick one", lines[0].Text)
	assert.Equal(t, "wisely", lines[1].Text)
	assert.Equal(t, "", lines[2].Text)
	assert.Equal(t, "(*)  parent", lines[3].Text)
	assert.Equal(t, 4, current)
}

func TestLinesHighlightOnlyInMultiselect(t *testing.T) {
	single, err := picker.New(parentChildTree())
	require.NoError(t, err)
	lines, _ := Lines(single)
	for _, l := range lines {
		assert.False(t, l.Selected)
	}

	multi, err := picker.New(parentChildTree(), picker.WithMultiselect(0))
	require.NoError(t, err)
	multi.ToggleAt(1)
	lines, _ = Lines(multi)
	assert.False(t, lines[0].Selected)
	assert.True(t, lines[1].Selected)
	assert.False(t, lines[2].Selected)
}

func TestScrollOffset(t *testing.T) {
	cases := []struct {
		name                       string
		currentLine, maxRows, prev int
		want                       int
	}{
		{"at top", 1, 10, 0, 0},
		{"cursor above offset resets", 3, 10, 5, 0},
		{"cursor equals offset resets", 5, 10, 5, 0},
		{"within window keeps offset", 8, 10, 2, 2},
		{"past window pushes down", 15, 10, 2, 5},
		{"exactly at bottom edge", 12, 10, 2, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ScrollOffset(tc.currentLine, tc.maxRows, tc.prev))
		})
	}
}

func TestScrollOffsetFollowsCursorDown(t *testing.T) {
	// Walking the cursor down a long list one line at a time must keep
	// the cursor line inside [offset+1, offset+maxRows] at every step.
	const maxRows = 5
	offset := 0
	for line := 1; line <= 40; line++ {
		offset = ScrollOffset(line, maxRows, offset)
		assert.Greater(t, line, offset, "line %d", line)
		assert.LessOrEqual(t, line, offset+maxRows, "line %d", line)
	}
}
