package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuitRequiresThreeConfirmationsWhenDirty(t *testing.T) {
	ed, term := newTestEditor(24, 80)
	ed.rows.InsertRow(0, []byte("unsaved"))
	ed.dirty = true

	quit := CtrlKey('q')
	term.keys = []int{quit, quit, quit, quit}

	for i := 0; i < 3; i++ {
		cont, err := ed.ProcessKeypress()
		require.NoError(t, err)
		assert.True(t, cont, "iteration %d should not quit yet", i)
	}

	cont, err := ed.ProcessKeypress()
	require.NoError(t, err)
	assert.False(t, cont, "fourth Ctrl-Q should quit")
}

func TestQuitCounterResetsOnOtherKeypress(t *testing.T) {
	ed, term := newTestEditor(24, 80)
	ed.rows.InsertRow(0, []byte("unsaved"))
	ed.dirty = true

	quit := CtrlKey('q')
	term.keys = []int{quit, ArrowLeft, quit, quit, quit, quit}

	for i := 0; i < 5; i++ {
		cont, err := ed.ProcessKeypress()
		require.NoError(t, err)
		assert.True(t, cont)
	}
	cont, err := ed.ProcessKeypress()
	require.NoError(t, err)
	assert.False(t, cont)
}

func TestQuitWithoutDirtyBufferExitsImmediately(t *testing.T) {
	ed, term := newTestEditor(24, 80)
	term.keys = []int{CtrlKey('q')}

	cont, err := ed.ProcessKeypress()
	require.NoError(t, err)
	assert.False(t, cont)
}

func TestBackspaceDeletesPreviousChar(t *testing.T) {
	ed, term := newTestEditor(24, 80)
	ed.rows.InsertRow(0, []byte("ab"))
	ed.cy, ed.cx = 0, 2
	term.keys = []int{BACKSPACE}

	_, err := ed.ProcessKeypress()
	require.NoError(t, err)

	assert.Equal(t, "a", string(ed.Row(0).Chars()))
}
