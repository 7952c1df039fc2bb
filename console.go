package solelog

import (
	"io"
	"os"
	"sync"
)

// Per-level display styles. Codes wrap the whole record and are stripped when
// colour is disabled or the destination is not an interactive terminal.
var levelStyles = map[int64]string{
	LevelDebug:    "\033[2m",    // dim
	LevelInfo:     "\033[36m",   // cyan
	LevelWarning:  "\033[33m",   // yellow
	LevelError:    "\033[31m",   // red
	LevelCritical: "\033[1;31m", // bold red
}

const styleReset = "\033[0m"

// consoleSink mirrors formatted records to a standard stream. Mirroring is
// best-effort: write failures are counted and otherwise ignored, and never
// propagate to the file write path.
type consoleSink struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

func newConsoleSink(cfg *Config) *consoleSink {
	var w io.Writer
	if cfg.ConsoleTarget == "stderr" {
		w = os.Stderr
	} else {
		w = os.Stdout
	}

	return &consoleSink{
		w:     w,
		color: cfg.ConsoleColor && isTerminal(w),
	}
}

// Write mirrors one formatted record. Reports whether the write succeeded.
func (cs *consoleSink) Write(p []byte, level int64) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.color {
		_, err := cs.w.Write(p)
		return err == nil
	}

	style, ok := levelStyles[level]
	if !ok {
		style = ""
	}

	// Record bytes end with a newline; the reset code goes before it so the
	// terminal line is fully styled.
	body := p
	if n := len(p); n > 0 && p[n-1] == '\n' {
		body = p[:n-1]
	}

	line := make([]byte, 0, len(style)+len(body)+len(styleReset)+1)
	line = append(line, style...)
	line = append(line, body...)
	line = append(line, styleReset...)
	line = append(line, '\n')

	_, err := cs.w.Write(line)
	return err == nil
}

// isTerminal reports whether the writer is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
