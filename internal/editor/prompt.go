package editor

import (
	"errors"
	"fmt"
)

// ErrPromptCancelled is returned by Prompt when the user presses ESC.
var ErrPromptCancelled = errors.New("prompt cancelled")

// PromptCallback is invoked after every keystroke of a Prompt, so
// callers like Find can update match highlighting/position live.
type PromptCallback func(input string, key int)

// Prompt shows template (with %s replaced by the growing input) on the
// status-message bar and reads one key per frame until the user
// accepts (\r) or cancels (ESC).
func (e *Editor) Prompt(template string, onInput PromptCallback) (string, error) {
	var input string

	for {
		e.SetStatusMessage(fmt.Sprintf(template, input))
		if err := e.RefreshScreen(); err != nil {
			return "", err
		}

		key, err := e.term.ReadKey()
		if err != nil {
			return "", err
		}

		switch {
		case key == DelKey || key == CtrlKey('h') || key == BACKSPACE:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case key == ESC:
			e.SetStatusMessage("")
			if onInput != nil {
				onInput(input, key)
			}
			return "", ErrPromptCancelled
		case key == '\r':
			if len(input) > 0 {
				e.SetStatusMessage("")
				if onInput != nil {
					onInput(input, key)
				}
				return input, nil
			}
		case key >= 0 && key < 128 && !isControlByte(byte(key)):
			input += string(byte(key))
		}

		if onInput != nil {
			onInput(input, key)
		}
	}
}
