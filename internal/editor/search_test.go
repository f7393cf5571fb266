package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchRowForwardFindsFirstOccurrence(t *testing.T) {
	r := newRow([]byte("the quick brown fox"))
	rx, ok := searchRow(&r, "quick", 1, false, 0)
	assert.True(t, ok)
	assert.Equal(t, 4, rx)
}

func TestSearchRowBackwardFindsOccurrenceLeftOfBound(t *testing.T) {
	r := newRow([]byte("foo bar foo baz foo"))
	// Bound at the second "foo" (index 8): backward search must land on
	// the first "foo" (index 0), not rescan past the bound.
	rx, ok := searchRow(&r, "foo", -1, true, 8)
	assert.True(t, ok)
	assert.Equal(t, 0, rx)
}

func TestSearchRowBackwardFindsNothingBeforeFirstOccurrence(t *testing.T) {
	r := newRow([]byte("foo bar"))
	_, ok := searchRow(&r, "foo", -1, true, 0)
	assert.False(t, ok)
}

func TestOnSearchInputWrapsAroundToFirstRow(t *testing.T) {
	ed, _ := newTestEditor(24, 80)
	ed.rows.InsertRow(0, []byte("QQfirst"))
	ed.rows.InsertRow(1, []byte("middle"))
	ed.rows.InsertRow(2, []byte("QQlast"))

	ed.search = searchState{lastMatch: 2, direction: 1}
	ed.cy, ed.cx = 2, 0

	ed.onSearchInput("QQ", ArrowDown)

	assert.Equal(t, 0, ed.cy)
	assert.Equal(t, 0, ed.cx)
}

func TestFindRestoresCursorOnCancel(t *testing.T) {
	ed, term := newTestEditor(24, 80)
	ed.rows.InsertRow(0, []byte("alpha"))
	ed.rows.InsertRow(1, []byte("beta"))
	ed.cy, ed.cx = 1, 2

	term.keys = []int{'a', ESC}

	ed.Find()

	assert.Equal(t, 1, ed.cy)
	assert.Equal(t, 2, ed.cx)
}
