package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowRenderExpandsTabs(t *testing.T) {
	TabStop = 4
	r := newRow([]byte("a\tbc"))
	assert.Equal(t, "a   bc", string(r.Render()))
}

func TestCxToRxRoundTrip(t *testing.T) {
	TabStop = 4
	r := newRow([]byte("ab\tcd\tef"))
	for cx := 0; cx <= r.Size(); cx++ {
		rx := CxToRx(&r, cx)
		assert.Equal(t, cx, RxToCx(&r, rx), "cx=%d rx=%d", cx, rx)
	}
}

func TestRowStoreInsertDeleteGrowsCapacityMonotonically(t *testing.T) {
	var store RowStore
	lastCap := store.Cap()
	for i := 0; i < 20; i++ {
		store.InsertRow(store.Count(), []byte("line"))
		require.GreaterOrEqual(t, store.Cap(), lastCap)
		lastCap = store.Cap()
	}
	assert.Equal(t, 20, store.Count())

	store.DeleteRow(0)
	assert.Equal(t, 19, store.Count())
	assert.GreaterOrEqual(t, store.Cap(), 19)
}

func TestRowStoreInsertIgnoresOutOfRangeIndex(t *testing.T) {
	var store RowStore
	store.InsertRow(5, []byte("a"))
	store.InsertRow(-1, []byte("b"))
	assert.Equal(t, 0, store.Count())
}

func TestRowInsertCharClampsOutOfRangeOffset(t *testing.T) {
	r := newRow([]byte("ab"))
	RowInsertChar(&r, 99, 'x')
	assert.Equal(t, "abx", string(r.Chars()))
}

func TestRowDeleteCharIgnoresOutOfRangeOffset(t *testing.T) {
	r := newRow([]byte("ab"))
	RowDeleteChar(&r, 99)
	assert.Equal(t, "ab", string(r.Chars()))
}
