package solelog

// rotationPolicy decides when the active file must be replaced. The limit is
// resolved once at construction; a non-positive limit disables rotation.
type rotationPolicy struct {
	maxSize int64
}

func newRotationPolicy(maxSizeBytes int64) rotationPolicy {
	if maxSizeBytes < 0 {
		maxSizeBytes = 0
	}
	return rotationPolicy{maxSize: maxSizeBytes}
}

// enabled reports whether size-based rotation is active.
func (p rotationPolicy) enabled() bool {
	return p.maxSize > 0
}

// shouldRotate is checked before the write is committed, so the active file
// never exceeds the limit unless a single record is itself larger than it.
func (p rotationPolicy) shouldRotate(currentSize, nextRecordSize int64) bool {
	if p.maxSize <= 0 {
		return false
	}
	return currentSize+nextRecordSize > p.maxSize
}
