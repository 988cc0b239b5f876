package testutil

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/dtroode/myflix-server/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(int(slog.LevelDebug), io.Discard)
}

// MakeBufferLogger returns a debug logger writing into the returned buffer.
func MakeBufferLogger() (*logger.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return logger.NewWithWriter(int(slog.LevelDebug), buf), buf
}
