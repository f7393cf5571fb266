package editor

import (
	"fmt"
	"time"
)

// Version is the display string shown in the empty-buffer welcome
// banner. It is a compile-time constant owned by cmd/tte, injected
// here so the core never hard-codes a release string.
var Version = ""

const gutterBackground = "\x1b[48;2;31;31;40m"
const gutterReset = "\x1b[49m"

// displayLine is one pre-computed screen row: either a gutter'd slice
// of row content (possibly a wrap continuation with no line number),
// a blank-buffer welcome banner, or a past-end-of-file tilde.
type displayLine struct {
	lineNumber int
	hasNumber  bool
	content    []byte
	isWelcome  bool
	isTilde    bool
}

// RefreshScreen recomputes scroll, composes one frame (hide cursor,
// home, rows, status bar, message bar, cursor position, show cursor)
// and writes it atomically.
func (e *Editor) RefreshScreen() error {
	e.scroll()

	var buf appendBuffer
	buf.WriteString("\x1b[?25l")
	buf.WriteString("\x1b[H")

	e.drawRows(&buf)
	e.drawStatusBar(&buf)
	e.drawMessageBar(&buf)

	buf.WriteString(fmt.Sprintf("\x1b[%d;%dH", (e.cy-e.rowOffset)+1, (e.rx-e.colOffset)+1+GutterWidth))
	buf.WriteString("\x1b[?25h")

	return e.term.WriteFrame(buf.String())
}

// ClearScreen wipes the display and homes the cursor, used on the
// quit path before the process exits.
func (e *Editor) ClearScreen() error {
	return e.term.WriteFrame("\x1b[2J\x1b[H")
}

// buildDisplayLines lays out exactly screenRows worth of content,
// chunking wrapped rows and truncating a row that would overflow the
// viewport bottom rather than letting it consume lines that belong to
// later rows.
func (e *Editor) buildDisplayLines() []displayLine {
	lines := make([]displayLine, 0, e.screenRows)
	fileRow := e.rowOffset

	for len(lines) < e.screenRows && fileRow < e.rows.Count() {
		row := e.rows.At(fileRow)
		if !e.wrapMode {
			lines = append(lines, displayLine{
				lineNumber: fileRow + 1,
				hasNumber:  true,
				content:    sliceRow(row, e.colOffset, e.screenCols),
			})
		} else {
			for ci, chunk := range chunkRender(row.Render(), e.screenCols) {
				if len(lines) >= e.screenRows {
					break
				}
				lines = append(lines, displayLine{
					lineNumber: fileRow + 1,
					hasNumber:  ci == 0,
					content:    chunk,
				})
			}
		}
		fileRow++
	}

	for len(lines) < e.screenRows {
		y := len(lines)
		if e.rows.Count() == 0 && y == e.screenRows/2 {
			lines = append(lines, displayLine{isWelcome: true})
		} else {
			lines = append(lines, displayLine{isTilde: true})
		}
	}

	return lines
}

func sliceRow(row *Row, coloff, screenCols int) []byte {
	render := row.Render()
	if coloff >= len(render) {
		return nil
	}
	end := coloff + screenCols
	if end > len(render) {
		end = len(render)
	}
	if end < coloff {
		return nil
	}
	return render[coloff:end]
}

func chunkRender(render []byte, width int) [][]byte {
	if width <= 0 || len(render) == 0 {
		return [][]byte{{}}
	}
	chunks := make([][]byte, 0, len(render)/width+1)
	for i := 0; i < len(render); i += width {
		end := i + width
		if end > len(render) {
			end = len(render)
		}
		chunks = append(chunks, render[i:end])
	}
	return chunks
}

func (e *Editor) drawRows(buf *appendBuffer) {
	lines := e.buildDisplayLines()
	for _, line := range lines {
		buf.WriteString(gutterBackground)
		if line.hasNumber {
			buf.WriteString(fmt.Sprintf("%4d ", line.lineNumber))
		} else {
			buf.WriteString("     ")
		}
		buf.WriteString(gutterReset)

		buf.WriteString("\x1b[K")
		switch {
		case line.isWelcome:
			buf.WriteString(e.welcomeMessage())
		case line.isTilde:
			buf.WriteByte('~')
		default:
			buf.Write(line.content)
		}

		buf.WriteString("\r\n")
	}
}

func (e *Editor) welcomeMessage() string {
	msg := "tte editor"
	if Version != "" {
		msg = fmt.Sprintf("tte editor -- version %s", Version)
	}
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	padding := (e.screenCols - len(msg)) / 2
	out := ""
	if padding > 0 {
		out += "~"
		padding--
	}
	for ; padding > 0; padding-- {
		out += " "
	}
	return out + msg
}

func (e *Editor) drawStatusBar(buf *appendBuffer) {
	buf.WriteString("\x1b[7m")
	totalWidth := GutterWidth + e.screenCols

	dirtyChar := " "
	if e.dirty {
		dirtyChar = "*"
	}

	name := e.filename
	switch {
	case name == "":
		name = "[No Name]"
	case len(name) > 20:
		name = name[:17] + "..."
	}

	left := dirtyChar + name
	if len(left) > totalWidth {
		left = left[:totalWidth]
	}
	right := fmt.Sprintf("%d:%d ", e.cy+1, e.rx+1)

	buf.WriteString(left)
	used := len(left)
	for used < totalWidth {
		if totalWidth-used == len(right) {
			buf.WriteString(right)
			used += len(right)
			break
		}
		buf.WriteByte(' ')
		used++
	}

	buf.WriteString("\x1b[m")
	buf.WriteString("\r\n")
}

func (e *Editor) drawMessageBar(buf *appendBuffer) {
	buf.WriteString("\x1b[K")
	buf.WriteByte(' ')

	width := GutterWidth + e.screenCols - 1
	msg := e.statusMsg
	if len(msg) > width {
		msg = msg[:width]
	}
	if len(msg) > 0 && time.Since(e.statusMsgTime) < MessageTimeout {
		buf.WriteString(msg)
	}
}
