package editor

import "strings"

// Find runs an incremental forward/backward search, restoring the
// pre-search cursor and viewport if the user cancels with ESC.
func (e *Editor) Find() {
	origCx, origCy := e.cx, e.cy
	origColOff, origRowOff := e.colOffset, e.rowOffset

	e.search = searchState{lastMatch: -1, direction: 1}

	_, err := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", e.onSearchInput)
	if err != nil {
		e.cx, e.cy = origCx, origCy
		e.colOffset, e.rowOffset = origColOff, origRowOff
	}
}

// onSearchInput is the Prompt callback driving incremental search
// state across keystrokes.
func (e *Editor) onSearchInput(input string, key int) {
	switch key {
	case '\r', ESC:
		e.search.lastMatch = -1
		e.search.direction = 1
		return
	case ArrowDown, ArrowRight:
		e.search.direction = 1
	case ArrowUp, ArrowLeft:
		e.search.direction = -1
	default:
		e.search.lastMatch = -1
		e.search.direction = 1
	}

	if e.search.lastMatch == -1 {
		e.search.direction = 1
	}

	count := e.rows.Count()
	if input == "" || count == 0 {
		return
	}

	origLastMatch := e.search.lastMatch
	current := e.search.lastMatch
	if current == -1 && e.search.direction == 1 {
		current++
	}

	for i := 0; i < count; i++ {
		if current < 0 {
			current = count - 1
		} else if current >= count {
			current = 0
		}

		row := e.rows.At(current)
		isLastMatchRow := current == origLastMatch
		if rx, ok := searchRow(row, input, e.search.direction, isLastMatchRow, e.cx); ok {
			e.search.lastMatch = current
			e.cy = current
			e.cx = RxToCx(row, rx)
			// Force scroll() to reframe so the match lands on screen.
			e.rowOffset = e.rows.Count()
			return
		}

		current += e.search.direction
	}
}

// searchRow looks for query in row's rendered text, returning the
// render column of the match. Forward search starts one column past
// the previous match on the row that produced it, else at column 0.
// Backward search finds the last match strictly left of the bound
// column (the previous match column on that row, else the row's
// length) in a single linear pass — no repeated strstr rescans.
func searchRow(row *Row, query string, direction int, isLastMatchRow bool, prevCx int) (rx int, ok bool) {
	render := string(row.Render())

	if direction == 1 {
		start := 0
		if isLastMatchRow {
			start = CxToRx(row, prevCx) + 1
		}
		if start < 0 {
			start = 0
		}
		if start > len(render) {
			return 0, false
		}
		idx := strings.Index(render[start:], query)
		if idx == -1 {
			return 0, false
		}
		return start + idx, true
	}

	bound := len(render)
	if isLastMatchRow {
		bound = CxToRx(row, prevCx)
	}
	if bound < 0 {
		return 0, false
	}

	upTo := bound - 1 + len(query)
	if upTo > len(render) {
		upTo = len(render)
	}
	if upTo < 0 {
		return 0, false
	}

	idx := strings.LastIndex(render[:upTo], query)
	if idx == -1 || idx >= bound {
		return 0, false
	}
	return idx, true
}
