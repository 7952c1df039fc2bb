package solelog

import (
	"strings"
)

// Log level constants, ordered by severity.
const (
	LevelDebug    int64 = -4
	LevelInfo     int64 = 0
	LevelWarning  int64 = 4
	LevelError    int64 = 8
	LevelCritical int64 = 12
)

// ParseLevel converts a level string to its numeric constant.
func ParseLevel(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical":
		return LevelCritical, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use debug, info, warning, error, critical)", levelStr)
	}
}

// levelToString returns the canonical upper-case name for a level.
func levelToString(level int64) string {
	switch level {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "INFO"
	}
}
