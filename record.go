package solelog

import (
	"time"
)

// Record is a single log entry. It is constructed once per level call and is
// immutable from the formatter's point of view.
type Record struct {
	Level     int64
	Message   string
	TimeStamp time.Time // zero when timestamps are disabled
	Sequence  uint64
}
