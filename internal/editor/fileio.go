package editor

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Open reads path line by line into the Row Store, stripping trailing
// \r or \n, and clears the dirty flag.
func (e *Editor) Open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	e.filename = path
	e.rows = RowStore{}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimRight(scanner.Bytes(), "\r")
		e.rows.InsertRow(e.rows.Count(), line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	e.dirty = false
	return nil
}

// rowsToBytes flattens the Row Store into the on-disk representation:
// each row's chars followed by \n, including after the last row.
func (e *Editor) rowsToBytes() []byte {
	var buf bytes.Buffer
	for i := 0; i < e.rows.Count(); i++ {
		buf.Write(e.rows.At(i).Chars())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Save writes the buffer to e.filename, prompting for a name if none
// is set and confirming overwrite of an existing file. It reports
// failures through the status message rather than returning an error,
// since a failed save should leave the editor running, not exit it.
func (e *Editor) Save() {
	if e.filename == "" {
		name, err := e.Prompt("Save as: %s", nil)
		if err != nil {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.filename = name
	}

	if _, err := os.Stat(e.filename); err == nil {
		answer, err := e.Prompt(fmt.Sprintf("Overwrite %s? (y/N): %%s", e.filename), nil)
		if err != nil || (answer != "y" && answer != "Y") {
			e.SetStatusMessage("save aborted")
			e.filename = ""
			return
		}
	}

	data := e.rowsToBytes()
	if err := atomicWriteFile(e.filename, data, 0o644); err != nil {
		e.SetStatusMessage(fmt.Sprintf("Can't save! I/O error: %s", err.Error()))
		return
	}

	e.dirty = false
	e.SetStatusMessage(fmt.Sprintf("%d bytes written to disk", len(data)))
}

// atomicWriteFile writes data to a temp file in path's directory,
// fsyncs it, then renames it over path — the existing file is never
// left partially written.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := tmp.Truncate(int64(len(data))); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("truncating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}
