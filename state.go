package solelog

import (
	"sync/atomic"
)

// State encapsulates the runtime state of the engine. Lifecycle flags and
// counters are atomics so level calls never contend on them.
type State struct {
	Closing atomic.Bool // no new calls accepted, in-flight calls draining
	Closed  atomic.Bool // terminal, all sink handles released

	Sequence       atomic.Uint64 // strictly increasing, never reused
	TotalRecords   atomic.Uint64 // records accepted by the file sink
	BytesWritten   atomic.Uint64
	DroppedConsole atomic.Uint64 // best-effort console writes that failed
}
