package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

type Options struct {
	// terminal output, human readable
	Writer io.Writer
	Level  slog.Level

	// when set, records are also appended to this file as JSON
	File string
}

// New builds a logger writing text to opts.Writer and, if configured, JSON to
// opts.File. The returned close function releases the file.
func New(opts Options) (*slog.Logger, func() error, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	handlerOptions := &slog.HandlerOptions{
		Level: opts.Level,
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(writer, handlerOptions),
	}

	closeFn := func() error { return nil }
	if opts.File != "" {
		file, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", opts.File, err)
		}
		handlers = append(handlers, slog.NewJSONHandler(file, handlerOptions))
		closeFn = file.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}
