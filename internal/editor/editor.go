// Package editor implements the interactive editing engine: the text
// buffer, cursor/viewport kinematics, edit operations, incremental
// search and the frame compositor described in SPEC_FULL.md.
package editor

import (
	"time"
)

// MessageTimeout is how long a status message stays visible.
const MessageTimeout = 5 * time.Second

// QuitTimes is how many additional Ctrl-Q presses are required to
// discard unsaved changes.
const QuitTimes = 3

// GutterWidth is the fixed width of the line-number gutter.
const GutterWidth = 5

// DebugSink stands in for the out-of-scope debug log file writer: it
// collects one entry per input cycle and flushes them on exit.
type DebugSink interface {
	Log(frame int, cx, cy int, key int, dirty bool)
	Flush() error
}

// nopSink discards everything; used when no debug sink is configured.
type nopSink struct{}

func (nopSink) Log(int, int, int, int, bool) {}
func (nopSink) Flush() error                 { return nil }

// searchState is the incremental-search state retained across prompt
// callback invocations.
type searchState struct {
	lastMatch int
	direction int
}

// Editor holds all editor state explicitly. No package-level globals:
// callers construct a handle with New, so tests can drive an in-memory
// instance without touching process-wide state.
type Editor struct {
	term Terminal
	sink DebugSink

	rows RowStore

	cx, cy int
	rx     int

	rowOffset, colOffset int
	screenRows, screenCols int

	wrapMode bool
	tabStop  int

	filename string

	statusMsg     string
	statusMsgTime time.Time

	dirty     bool
	quitTimes int

	search searchState

	frameCount int
}

// New constructs an Editor bound to the given terminal and debug sink.
// Pass a nil sink to discard debug entries.
func New(term Terminal, sink DebugSink) *Editor {
	if sink == nil {
		sink = nopSink{}
	}
	return &Editor{
		term:      term,
		sink:      sink,
		tabStop:   TabStop,
		quitTimes: QuitTimes,
		search:    searchState{lastMatch: -1, direction: 1},
	}
}

// Init queries the terminal size and reserves the status bar and
// status-message bar rows.
func (e *Editor) Init() error {
	rows, cols, err := e.term.WindowSize()
	if err != nil {
		return err
	}
	e.screenRows = rows - 2
	e.screenCols = cols - GutterWidth
	return nil
}

// RowCount returns the number of rows in the buffer.
func (e *Editor) RowCount() int { return e.rows.Count() }

// Row returns the row at index i. Callers must ensure i is valid.
func (e *Editor) Row(i int) *Row { return e.rows.At(i) }

// Cursor returns the logical cursor position.
func (e *Editor) Cursor() (cx, cy int) { return e.cx, e.cy }

// Dirty reports whether the buffer differs from the last successful
// open/save.
func (e *Editor) Dirty() bool { return e.dirty }

// Filename returns the current filename, empty if none is set.
func (e *Editor) Filename() string { return e.filename }

// WrapMode reports whether soft-wrap rendering is enabled.
func (e *Editor) WrapMode() bool { return e.wrapMode }

// SetTabStop overrides the tab width used for rendering and coordinate
// mapping. Values less than 1 are ignored.
func (e *Editor) SetTabStop(n int) {
	if n < 1 {
		return
	}
	e.tabStop = n
	TabStop = n
}

// SetStatusMessage sets the status-message bar text and resets its
// fade timer.
func (e *Editor) SetStatusMessage(msg string) {
	e.statusMsg = msg
	e.statusMsgTime = time.Now()
}
