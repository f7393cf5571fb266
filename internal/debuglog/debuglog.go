// Package debuglog implements the editor's DebugSink: one JSON line per
// input cycle, written to a single file. A debug session has no notion
// of a "day boundary" worth rotating on, so unlike a long-lived service
// logger this is a single non-rotating file.
package debuglog

import (
	"log/slog"
	"os"
)

// Sink writes one slog JSON record per call to Log.
type Sink struct {
	file   *os.File
	logger *slog.Logger
}

// Open creates (or truncates) path and returns a Sink writing to it.
func Open(path string) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &Sink{file: f, logger: slog.New(handler)}, nil
}

// Log records one input cycle's cursor position, key and dirty state.
func (s *Sink) Log(frame int, cx, cy int, key int, dirty bool) {
	s.logger.Debug("cycle",
		slog.Int("frame", frame),
		slog.Int("cx", cx),
		slog.Int("cy", cy),
		slog.Int("key", key),
		slog.Bool("dirty", dirty),
	)
}

// Flush syncs and closes the underlying file.
func (s *Sink) Flush() error {
	if err := s.file.Sync(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
