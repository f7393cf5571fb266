package editor

import (
	"golang.org/x/exp/slices"
)

// TabStop is the column width a tab character advances to. It defaults
// to 4 and can be overridden at startup via Editor.SetTabStop, exposed
// on the CLI as --tab-stop.
var TabStop = 4

// Row is a single line of the edited file: its raw bytes plus a
// rendered mirror with tabs expanded to spaces.
type Row struct {
	chars  []byte
	render []byte
}

// Size returns the raw byte length of the row.
func (r *Row) Size() int { return len(r.chars) }

// RenderSize returns the rendered byte length of the row.
func (r *Row) RenderSize() int { return len(r.render) }

// Chars returns the row's raw content. Callers must not retain it
// across a mutation of the row.
func (r *Row) Chars() []byte { return r.chars }

// Render returns the row's rendered content.
func (r *Row) Render() []byte { return r.render }

func newRow(data []byte) Row {
	r := Row{chars: append([]byte(nil), data...)}
	r.updateRender()
	return r
}

// updateRender recomputes render from chars, expanding tabs so each one
// advances the render column to the next multiple of TabStop.
func (r *Row) updateRender() {
	render := make([]byte, 0, len(r.chars))
	col := 0
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			col++
			for col%TabStop != 0 {
				render = append(render, ' ')
				col++
			}
		} else {
			render = append(render, c)
			col++
		}
	}
	r.render = render
}

// RowStore is an ordered, owning sequence of Rows with explicit count
// and capacity, growing by geometric doubling.
type RowStore struct {
	rows []Row
}

// Count returns the number of rows currently stored.
func (s *RowStore) Count() int { return len(s.rows) }

// Cap returns the current backing capacity.
func (s *RowStore) Cap() int { return cap(s.rows) }

// At returns a pointer to the row at index i. The caller must ensure
// i is in [0, Count()).
func (s *RowStore) At(i int) *Row { return &s.rows[i] }

// grow doubles capacity (starting at 1) if the store is full.
func (s *RowStore) grow() {
	if len(s.rows) < cap(s.rows) {
		return
	}
	newCap := cap(s.rows) * 2
	if newCap == 0 {
		newCap = 1
	}
	grown := make([]Row, len(s.rows), newCap)
	copy(grown, s.rows)
	s.rows = grown
}

// InsertRow inserts a new row at index at holding data. at must be in
// [0, Count()]; any other index is a no-op.
func (s *RowStore) InsertRow(at int, data []byte) {
	if at < 0 || at > len(s.rows) {
		return
	}
	s.grow()
	row := newRow(data)
	s.rows = slices.Insert(s.rows, at, row)
}

// DeleteRow removes the row at index i. Invalid indices are a no-op.
func (s *RowStore) DeleteRow(i int) {
	if i < 0 || i >= len(s.rows) {
		return
	}
	s.rows = slices.Delete(s.rows, i, i+1)
}

// RowInsertChar inserts c into row at byte offset at, clamping an
// out-of-range at to row.Size().
func RowInsertChar(row *Row, at int, c byte) {
	if at < 0 || at > row.Size() {
		at = row.Size()
	}
	row.chars = slices.Insert(row.chars, at, c)
	row.updateRender()
}

// RowDeleteChar removes the byte at offset at. Out-of-range at is a
// no-op.
func RowDeleteChar(row *Row, at int) {
	if at < 0 || at >= row.Size() {
		return
	}
	row.chars = slices.Delete(row.chars, at, at+1)
	row.updateRender()
}

// RowAppendString appends s to the end of row's content.
func RowAppendString(row *Row, s []byte) {
	row.chars = append(row.chars, s...)
	row.updateRender()
}

// RowTruncate shrinks row's content to its first n bytes.
func RowTruncate(row *Row, n int) {
	row.chars = row.chars[:n]
	row.updateRender()
}

// CxToRx converts a raw column cx into its rendered column, honoring
// tab stops.
func CxToRx(row *Row, cx int) int {
	rx := 0
	for _, c := range row.chars[:cx] {
		if c == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// RxToCx converts a rendered column rx back into a raw column, the
// inverse of CxToRx.
func RxToCx(row *Row, rx int) int {
	curRx := 0
	for cx, c := range row.chars {
		if c == '\t' {
			curRx += (TabStop - 1) - (curRx % TabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return row.Size()
}
