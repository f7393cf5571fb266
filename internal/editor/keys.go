package editor

import "fmt"

// ProcessKeypress reads one key and dispatches it to the appropriate
// edit/nav/save/search/quit/wrap action. It returns false when the
// editor should exit.
func (e *Editor) ProcessKeypress() (bool, error) {
	key, err := e.term.ReadKey()
	if err != nil {
		return false, err
	}
	e.frameCount++

	cont, err := e.dispatch(key)
	if err != nil {
		return cont, err
	}

	if key != CtrlKey('q') {
		e.quitTimes = QuitTimes
	}

	e.sink.Log(e.frameCount, e.cx, e.cy, key, e.dirty)

	return cont, nil
}

func (e *Editor) dispatch(key int) (bool, error) {
	switch key {
	case '\r':
		e.InsertNewline()

	case CtrlKey('q'):
		if e.dirty && e.quitTimes > 0 {
			e.SetStatusMessage(statusQuitWarning(e.quitTimes))
			e.quitTimes--
			return true, nil
		}
		return false, nil

	case CtrlKey('s'):
		e.Save()

	case CtrlKey('f'):
		e.Find()

	case CtrlKey('w'):
		e.wrapMode = !e.wrapMode

	case HomeKey:
		e.cx = 0

	case EndKey:
		if e.cy < e.rows.Count() {
			e.cx = e.rows.At(e.cy).Size()
		}

	case BACKSPACE, CtrlKey('h'), DelKey:
		if key == DelKey {
			e.MoveCursor(ArrowRight)
		}
		e.DeleteChar()

	case PageUp, PageDown:
		e.MoveCursor(key)

	case ArrowUp, ArrowDown, ArrowLeft, ArrowRight:
		e.MoveCursor(key)

	case CtrlKey('l'), ESC:
		// Ignored: Ctrl-L would refresh the terminal screen, but the
		// compositor redraws every cycle anyway.

	default:
		if key >= 0 && key < 256 && !isControlByte(byte(key)) {
			e.InsertChar(byte(key))
		}
	}

	return true, nil
}

func isControlByte(b byte) bool {
	return b < 0x20 || b == 0x7f
}

func statusQuitWarning(quitTimes int) string {
	return fmt.Sprintf("HEY!! The file has unsaved changes. Press Ctrl-Q %d more times to quit.", quitTimes)
}
