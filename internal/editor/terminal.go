package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// Key codes for decoded keypresses. Raw printable bytes and control
// bytes (including BACKSPACE = 0x7f) are returned as their own byte
// value; these synthetic codes are assigned well above any byte value
// to avoid collision.
const (
	BACKSPACE = 0x7f
	ESC       = 0x1b

	ArrowLeft = 1000 + iota
	ArrowRight
	ArrowUp
	ArrowDown
	DelKey
	HomeKey
	EndKey
	PageUp
	PageDown
)

// CtrlKey masks k the way a terminal driver does for control
// sequences: strip bits 5 and 6.
func CtrlKey(k byte) int {
	return int(k) & 0x1f
}

// Terminal is the seam over raw terminal I/O so tests can substitute
// an in-memory or pty-backed fake for os.Stdin/os.Stdout.
type Terminal interface {
	// EnableRawMode snapshots current attributes and installs raw
	// settings. DisableRawMode must be called exactly once to restore
	// them.
	EnableRawMode() error
	DisableRawMode() error
	// ReadKey blocks until one logical key is available, decoding
	// escape sequences into the synthetic key codes above.
	ReadKey() (int, error)
	// WindowSize returns the visible terminal size in rows and
	// columns.
	WindowSize() (rows, cols int, err error)
	// WriteFrame emits one composed frame atomically.
	WriteFrame(frame string) error
}

// unixTerminal is the production Terminal backed by real file
// descriptors.
type unixTerminal struct {
	inFd, outFd int
	in          io.Reader
	out         io.Writer
	reader      *bufio.Reader
	orig        *unix.Termios
}

// NewUnixTerminal builds a Terminal over the given input/output file
// descriptors and the readers/writers wrapping them.
func NewUnixTerminal(inFd, outFd int, in io.Reader, out io.Writer) Terminal {
	return &unixTerminal{
		inFd:   inFd,
		outFd:  outFd,
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

func (t *unixTerminal) EnableRawMode() error {
	orig, err := unix.IoctlGetTermios(t.inFd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("getting terminal attributes: %w", err)
	}
	t.orig = orig

	raw := *orig
	raw.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(t.inFd, unix.TCSETS, &raw); err != nil {
		return fmt.Errorf("setting terminal attributes: %w", err)
	}
	return nil
}

func (t *unixTerminal) DisableRawMode() error {
	if t.orig == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(t.inFd, unix.TCSETS, t.orig); err != nil {
		return fmt.Errorf("restoring terminal attributes: %w", err)
	}
	return nil
}

func (t *unixTerminal) ReadKey() (int, error) {
	var b byte
	var err error
	for {
		b, err = t.reader.ReadByte()
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("reading from terminal: %w", err)
		}
		if err == nil {
			break
		}
	}

	if b != ESC {
		return int(b), nil
	}

	var seq [3]byte
	seq[0], err = t.reader.ReadByte()
	if err != nil {
		return ESC, nil
	}
	seq[1], err = t.reader.ReadByte()
	if err != nil {
		return ESC, nil
	}

	if seq[0] == '[' {
		if seq[1] >= '0' && seq[1] <= '9' {
			seq[2], err = t.reader.ReadByte()
			if err != nil {
				return ESC, nil
			}
			if seq[2] == '~' {
				switch seq[1] {
				case '1':
					return HomeKey, nil
				case '3':
					return DelKey, nil
				case '4':
					return EndKey, nil
				case '5':
					return PageUp, nil
				case '6':
					return PageDown, nil
				case '7':
					return HomeKey, nil
				case '8':
					return EndKey, nil
				}
			}
			return ESC, nil
		}
		switch seq[1] {
		case 'A':
			return ArrowUp, nil
		case 'B':
			return ArrowDown, nil
		case 'C':
			return ArrowRight, nil
		case 'D':
			return ArrowLeft, nil
		case 'H':
			return HomeKey, nil
		case 'F':
			return EndKey, nil
		}
		return ESC, nil
	} else if seq[0] == 'O' {
		switch seq[1] {
		case 'H':
			return HomeKey, nil
		case 'F':
			return EndKey, nil
		}
	}
	return ESC, nil
}

func (t *unixTerminal) getCursorPosition() (row, col int, err error) {
	if _, err := io.WriteString(t.out, "\x1b[6n"); err != nil {
		return 0, 0, err
	}

	var buf [32]byte
	n := 0
	for n < len(buf) {
		b, err := t.reader.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, 0, err
		}
		buf[n] = b
		n++
		if b == 'R' {
			break
		}
	}

	if n < 2 || buf[0] != ESC || buf[1] != '[' {
		return 0, 0, errors.New("improper cursor position response")
	}
	if _, err := fmt.Sscanf(string(buf[2:n-1]), "%d;%d", &row, &col); err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func (t *unixTerminal) WindowSize() (rows, cols int, err error) {
	ws, ioctlErr := unix.IoctlGetWinsize(t.outFd, unix.TIOCGWINSZ)
	if ioctlErr == nil && ws.Col != 0 && ws.Row != 0 {
		return int(ws.Row), int(ws.Col), nil
	}

	// Fallback: shove the cursor to the bottom-right corner and ask
	// the terminal where it landed.
	if _, err := io.WriteString(t.out, "\x1b[999C\x1b[999B"); err != nil {
		return 0, 0, fmt.Errorf("querying window size: %w", err)
	}
	row, col, err := t.getCursorPosition()
	if err != nil {
		return 0, 0, fmt.Errorf("querying window size: %w", err)
	}
	return row, col, nil
}

func (t *unixTerminal) WriteFrame(frame string) error {
	_, err := io.WriteString(t.out, frame)
	return err
}
