package solelog

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// fmtErrorf wrapper, keeps the package prefix uniform
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "solelog: ") {
		format = "solelog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// dumper renders arbitrary values for Dump calls, compact and deterministic
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// formatValue converts an arbitrary value to a log-friendly string.
// Simple types render directly; composite types go through spew.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return val
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprintf("%v", val)
	default:
		var b bytes.Buffer
		dumper.Fdump(&b, val)
		return string(bytes.TrimSpace(b.Bytes()))
	}
}
