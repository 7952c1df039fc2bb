// Package solelog is an embedded, process-local logging engine. Application
// code emits leveled messages; the engine records them to a size-rotated file
// in txt or JSON-lines format, optionally mirrored to a console stream.
//
// The write path is synchronous: a level method formats the record and appends
// it to the active file under a single exclusive lock, so concurrent callers
// are serialized into one consistent write order and no record is ever split
// across a rotation boundary. Durability is governed by the flush interval: a
// zero interval syncs after every append, a positive interval flushes on a
// background timer, and Close always performs a final flush.
//
// A minimal session:
//
//	engine, err := solelog.NewBuilder().
//		Directory("/var/log/app").
//		Name("app").
//		Format("json").
//		MaxSizeMB(64).
//		Build()
//	if err != nil {
//		// configuration or directory problem, engine was never created
//	}
//	defer engine.Close()
//
//	engine.Info("service started")
//	engine.Errorf("listen failed: %v", err)
//
// Rotated files are kept beside the active file with a timestamp and a
// monotonic suffix; the engine never deletes anything. Retention is the
// caller's concern.
package solelog
