package solelog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/trviph/collection"
)

// fileSink owns the active log file. A single exclusive lock covers append,
// size accounting and rotation, so a rotation decision and the write that
// triggered it execute atomically with respect to other callers.
type fileSink struct {
	mu sync.Mutex

	dir    string
	name   string
	ext    string
	policy rotationPolicy

	syncOnWrite bool // flush+sync inside every append (flush interval 0)

	file     *os.File
	w        *bufio.Writer
	size     int64 // exact byte count accepted since the file was opened
	openedAt time.Time

	archiveSeq int
	rotations  uint64
	archives   *collection.List[string]
	closed     bool

	errlog func(format string, args ...any)
}

func newFileSink(cfg *Config, errlog func(string, ...any)) (*fileSink, error) {
	if err := os.MkdirAll(cfg.Directory, 0755); err != nil {
		return nil, fmtErrorf("failed to create log directory '%s': %w", cfg.Directory, err)
	}

	s := &fileSink{
		dir:         cfg.Directory,
		name:        cfg.Name,
		ext:         cfg.extension(),
		policy:      newRotationPolicy(cfg.maxSizeBytes()),
		syncOnWrite: cfg.flushInterval() == 0,
		archives:    collection.NewList[string](),
		errlog:      errlog,
	}

	file, err := s.openActiveFile()
	if err != nil {
		return nil, err
	}
	s.file = file
	s.w = bufio.NewWriterSize(file, int(cfg.BufferSizeKB)*1024)
	s.openedAt = time.Now()

	// The active file may carry bytes from a previous run; those count
	// toward the rotation limit.
	if fi, err := file.Stat(); err == nil {
		s.size = fi.Size()
	}

	return s, nil
}

// Append writes one formatted record to the active file, rotating first when
// the record would push the file past its size limit. A failed rotation is
// surfaced to the caller as ErrRotationFailed after the record lands in the
// oversized current file; losing data is worse than exceeding the limit.
// Rotation is skipped while the file is empty, so a single record larger than
// the limit never archives a zero-byte file.
func (s *fileSink) Append(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	var rotationErr error
	if s.policy.enabled() && s.size > 0 && s.policy.shouldRotate(s.size, int64(len(p))) {
		if err := s.rotateLocked(); err != nil {
			s.errlog("rotation failed, continuing with current file: %v\n", err)
			rotationErr = fmt.Errorf("%w: %w", ErrRotationFailed, err)
		}
	}

	n, err := s.w.Write(p)
	s.size += int64(n)
	if err != nil {
		return fmtErrorf("failed to append to log file '%s': %w", s.path(), err)
	}

	if s.syncOnWrite {
		if err := s.flushLocked(); err != nil {
			return err
		}
	}
	return rotationErr
}

// Rotate archives the active file and opens a fresh one, regardless of size.
func (s *fileSink) Rotate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	return s.rotateLocked()
}

// rotateLocked implements the rename-on-rotate strategy: flush, rename the
// active file to its archive name, open a new file at the static path.
func (s *fileSink) rotateLocked() error {
	if err := s.w.Flush(); err != nil {
		return fmtErrorf("failed to flush log file before rotation: %w", err)
	}

	archiveName := s.nextArchiveNameLocked(time.Now())
	archivePath := filepath.Join(s.dir, archiveName)
	activePath := s.path()

	// The open handle stays valid across the rename, so nothing is lost if
	// the steps below fail.
	if err := os.Rename(activePath, archivePath); err != nil {
		return fmtErrorf("failed to archive log file '%s': %w", activePath, err)
	}

	newFile, err := s.openActiveFile()
	if err != nil {
		// Put the old file back and keep appending to it.
		if rbErr := os.Rename(archivePath, activePath); rbErr != nil {
			s.errlog("failed to restore log file after aborted rotation: %v\n", rbErr)
		}
		return fmtErrorf("failed to open new log file during rotation: %w", err)
	}

	if err := s.file.Sync(); err != nil {
		s.errlog("failed to sync archived log file '%s': %v\n", archivePath, err)
	}
	if err := s.file.Close(); err != nil {
		s.errlog("failed to close archived log file '%s': %v\n", archivePath, err)
	}

	s.file = newFile
	s.w.Reset(newFile)
	s.size = 0
	s.openedAt = time.Now()
	s.rotations++
	s.archives.Append(archiveName)

	return nil
}

// Rotations returns the number of completed rotations.
func (s *fileSink) Rotations() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rotations
}

// nextArchiveNameLocked generates a timestamped archive name with a monotonic
// suffix counter, probing until the name does not collide with an existing
// file. Archives are never overwritten.
func (s *fileSink) nextArchiveNameLocked(timestamp time.Time) string {
	tsFormat := timestamp.Format("060102_150405")
	for {
		s.archiveSeq++
		candidate := fmt.Sprintf("%s_%s_%03d.%s", s.name, tsFormat, s.archiveSeq, s.ext)
		if _, err := os.Stat(filepath.Join(s.dir, candidate)); os.IsNotExist(err) {
			return candidate
		}
	}
}

// Flush forces buffered bytes to stable storage.
func (s *fileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	return s.flushLocked()
}

func (s *fileSink) flushLocked() error {
	if err := s.w.Flush(); err != nil {
		return fmtErrorf("failed to flush log file '%s': %w", s.path(), err)
	}
	if err := s.file.Sync(); err != nil {
		return fmtErrorf("failed to sync log file '%s': %w", s.path(), err)
	}
	return nil
}

// Close flushes and releases the active file handle. Safe to call twice.
func (s *fileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var finalErr error
	if err := s.w.Flush(); err != nil {
		finalErr = fmtErrorf("failed to flush log file during close: %w", err)
	}
	if err := s.file.Sync(); err != nil {
		finalErr = combineErrors(finalErr, fmtErrorf("failed to sync log file during close: %w", err))
	}
	if err := s.file.Close(); err != nil {
		finalErr = combineErrors(finalErr, fmtErrorf("failed to close log file: %w", err))
	}
	return finalErr
}

// Size returns the exact byte count of the active file.
func (s *fileSink) Size() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Path returns the full path of the active log file.
func (s *fileSink) Path() string {
	return s.path()
}

func (s *fileSink) path() string {
	return filepath.Join(s.dir, s.name+"."+s.ext)
}

// Archives returns the names of files rotated out by this sink, oldest first.
func (s *fileSink) Archives() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.archives.Length()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name, err := s.archives.Dequeue()
		if err != nil {
			break
		}
		out = append(out, name)
		s.archives.Append(name)
	}
	return out
}

func (s *fileSink) openActiveFile() (*os.File, error) {
	fullPath := s.path()
	file, err := os.OpenFile(fullPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmtErrorf("failed to open/create log file '%s': %w", fullPath, err)
	}
	return file, nil
}
