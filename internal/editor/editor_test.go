package editor

import "errors"

// fakeTerminal is an in-memory Terminal for tests, avoiding any real
// tty or subprocess.
type fakeTerminal struct {
	rows, cols int
	keys       []int
	keyErr     error
	frames     []string
	rawEnabled bool
}

func newFakeTerminal(rows, cols int) *fakeTerminal {
	return &fakeTerminal{rows: rows, cols: cols}
}

func (f *fakeTerminal) EnableRawMode() error  { f.rawEnabled = true; return nil }
func (f *fakeTerminal) DisableRawMode() error { f.rawEnabled = false; return nil }

func (f *fakeTerminal) ReadKey() (int, error) {
	if len(f.keys) == 0 {
		if f.keyErr != nil {
			return 0, f.keyErr
		}
		return 0, errors.New("no more keys queued")
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, nil
}

func (f *fakeTerminal) WindowSize() (int, int, error) {
	return f.rows, f.cols, nil
}

func (f *fakeTerminal) WriteFrame(frame string) error {
	f.frames = append(f.frames, frame)
	return nil
}

// newTestEditor builds an Editor over a fakeTerminal sized rows x
// cols, already initialized.
func newTestEditor(rows, cols int) (*Editor, *fakeTerminal) {
	term := newFakeTerminal(rows, cols)
	ed := New(term, nil)
	_ = ed.Init()
	return ed, term
}
