package editor

// scroll recomputes the render cursor and clamps the viewport offsets
// so the cursor stays visible.
func (e *Editor) scroll() {
	e.rx = 0
	if e.cy < e.rows.Count() {
		e.rx = CxToRx(e.rows.At(e.cy), e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}

	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}

// MoveCursor applies the movement semantics for one of the navigation
// key codes (arrows, page up/down, home, end).
func (e *Editor) MoveCursor(key int) {
	switch key {
	case ArrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.rows.At(e.cy).Size()
		}
	case ArrowRight:
		if e.cy < e.rows.Count() {
			row := e.rows.At(e.cy)
			if e.cx < row.Size() {
				e.cx++
			} else if e.cy < e.rows.Count()-1 {
				e.cy++
				e.cx = 0
			}
		}
	case ArrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case ArrowDown:
		if e.cy < e.rows.Count() {
			e.cy++
		}
	case PageUp:
		e.cy = e.rowOffset
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(ArrowUp)
		}
	case PageDown:
		e.cy = e.rowOffset + e.screenRows - 1
		if e.cy > e.rows.Count() {
			e.cy = e.rows.Count()
		}
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(ArrowDown)
		}
	case HomeKey:
		e.cx = 0
	case EndKey:
		// On the virtual empty row past the last line there is nothing
		// to jump to.
		if e.cy < e.rows.Count() {
			e.cx = e.rows.At(e.cy).Size()
		}
	}

	rowLen := 0
	if e.cy < e.rows.Count() {
		rowLen = e.rows.At(e.cy).Size()
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}
