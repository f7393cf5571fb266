package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertNewlineSplitsRowAtCursor(t *testing.T) {
	ed, _ := newTestEditor(24, 80)
	ed.rows.InsertRow(0, []byte("hello world"))
	ed.cy, ed.cx = 0, 5

	ed.InsertNewline()

	assert.Equal(t, 2, ed.RowCount())
	assert.Equal(t, "hello", string(ed.Row(0).Chars()))
	assert.Equal(t, " world", string(ed.Row(1).Chars()))
	assert.Equal(t, 1, ed.cy)
	assert.Equal(t, 0, ed.cx)
	assert.True(t, ed.Dirty())
}

func TestDeleteCharJoinsRowsAtColumnZero(t *testing.T) {
	ed, _ := newTestEditor(24, 80)
	ed.rows.InsertRow(0, []byte("hello"))
	ed.rows.InsertRow(1, []byte("world"))
	ed.cy, ed.cx = 1, 0

	ed.DeleteChar()

	assert.Equal(t, 1, ed.RowCount())
	assert.Equal(t, "helloworld", string(ed.Row(0).Chars()))
	assert.Equal(t, 0, ed.cy)
	assert.Equal(t, 5, ed.cx)
}

func TestDeleteCharAtOriginIsNoOp(t *testing.T) {
	ed, _ := newTestEditor(24, 80)
	ed.rows.InsertRow(0, []byte("hi"))
	ed.cy, ed.cx = 0, 0

	ed.DeleteChar()

	assert.Equal(t, "hi", string(ed.Row(0).Chars()))
	assert.False(t, ed.Dirty())
}

func TestInsertCharOnVirtualRowMaterializesRow(t *testing.T) {
	ed, _ := newTestEditor(24, 80)
	ed.cy, ed.cx = 0, 0

	ed.InsertChar('x')

	assert.Equal(t, 1, ed.RowCount())
	assert.Equal(t, "x", string(ed.Row(0).Chars()))
	assert.Equal(t, 1, ed.cx)
}
