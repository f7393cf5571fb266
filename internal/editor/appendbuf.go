package editor

import "strings"

// appendBuffer is a growable scratch area used to stage one screen
// frame before a single display write. Constructed fresh each frame.
//
// Unlike a hand-rolled C append buffer, which can tolerate an
// allocation failure by leaving the buffer untouched and dropping the
// fragment, strings.Builder cannot observe allocation failure the same
// way: an OOM here panics like any other Go allocation would, so that
// tolerance is structurally unreachable rather than re-implemented.
type appendBuffer struct {
	buf strings.Builder
}

func (a *appendBuffer) WriteString(s string) {
	a.buf.WriteString(s)
}

func (a *appendBuffer) Write(b []byte) {
	a.buf.Write(b)
}

func (a *appendBuffer) WriteByte(b byte) {
	a.buf.WriteByte(b)
}

func (a *appendBuffer) String() string {
	return a.buf.String()
}

func (a *appendBuffer) Reset() {
	a.buf.Reset()
}
