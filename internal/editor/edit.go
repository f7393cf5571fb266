package editor

// InsertChar inserts c at the cursor, materializing a new row first if
// the cursor sits on the virtual empty row past the end of the buffer.
func (e *Editor) InsertChar(c byte) {
	if e.cy == e.rows.Count() {
		e.rows.InsertRow(e.rows.Count(), nil)
	}
	RowInsertChar(e.rows.At(e.cy), e.cx, c)
	e.cx++
	e.dirty = true
}

// InsertNewline splits the current row at the cursor, or inserts a
// blank row above it if the cursor is at column 0.
func (e *Editor) InsertNewline() {
	if e.cx == 0 {
		e.rows.InsertRow(e.cy, nil)
	} else {
		row := e.rows.At(e.cy)
		tail := append([]byte(nil), row.Chars()[e.cx:]...)
		e.rows.InsertRow(e.cy+1, tail)
		RowTruncate(e.rows.At(e.cy), e.cx)
	}
	e.cy++
	e.cx = 0
	e.dirty = true
}

// DeleteChar deletes the character left of the cursor, joining the
// current row into the previous one when the cursor is at column 0.
func (e *Editor) DeleteChar() {
	if e.cy == e.rows.Count() {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	row := e.rows.At(e.cy)
	if e.cx > 0 {
		RowDeleteChar(row, e.cx-1)
		e.cx--
	} else {
		prev := e.rows.At(e.cy - 1)
		e.cx = prev.Size()
		RowAppendString(prev, row.Chars())
		e.rows.DeleteRow(e.cy)
		e.cy--
	}
	e.dirty = true
}
