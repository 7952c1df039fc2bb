package solelog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end scenarios exercising the full pipeline: level gate, formatting,
// buffered file writes, rotation and shutdown together.

func TestPipelineTxtRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	engine, err := NewBuilder().
		Directory(tmpDir).
		Name("app").
		Level(LevelInfo).
		EnableConsole(false).
		Build()
	require.NoError(t, err)

	require.NoError(t, engine.Debug("invisible"))
	require.NoError(t, engine.Info("service started"))
	require.NoError(t, engine.Errorf("backend %s unreachable", "db-1"))
	require.NoError(t, engine.Close())

	content, err := os.ReadFile(filepath.Join(tmpDir, "app.txt"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "INFO: service started")
	assert.Contains(t, lines[1], "ERROR: backend db-1 unreachable")
	assert.NotContains(t, string(content), "invisible")
}

func TestPipelineJSONLines(t *testing.T) {
	tmpDir := t.TempDir()

	engine, err := NewBuilder().
		Directory(tmpDir).
		Name("app").
		Format("json").
		IncludeSession(true).
		EnableConsole(false).
		Build()
	require.NoError(t, err)

	session := engine.Session()

	for i := 0; i < 5; i++ {
		require.NoError(t, engine.Warningf("event %d", i))
	}
	require.NoError(t, engine.Close())

	content, err := os.ReadFile(filepath.Join(tmpDir, "app.json"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 5)

	for _, line := range lines {
		var obj map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &obj))
		assert.Equal(t, "WARNING", obj["level"])
		assert.Equal(t, session, obj["session"])
	}
}

func TestPipelineRotationUnderLoad(t *testing.T) {
	tmpDir := t.TempDir()

	engine, err := NewBuilder().
		Directory(tmpDir).
		Name("rotated").
		MaxSizeMB(1).
		EnableConsole(false).
		Build()
	require.NoError(t, err)

	// ~2 KB per record, enough volume to force at least one rotation
	payload := strings.Repeat("x", 2048)
	for i := 0; i < 1024; i++ {
		require.NoError(t, engine.Info(payload))
	}

	stats := engine.Stats()
	assert.Greater(t, stats.Rotations, uint64(0))

	archives := engine.Archives()
	assert.Len(t, archives, int(stats.Rotations))

	// Active file is back under the limit after rotating
	assert.LessOrEqual(t, stats.ActiveFileSize, int64(1024*1024))

	// Every archive the engine reports exists and respects the limit too
	for _, name := range archives {
		fi, err := os.Stat(filepath.Join(tmpDir, name))
		require.NoError(t, err)
		assert.LessOrEqual(t, fi.Size(), int64(1024*1024))
		assert.Greater(t, fi.Size(), int64(0))
	}

	require.NoError(t, engine.Close())
}

func TestPipelineNoRecordLossAcrossRotation(t *testing.T) {
	tmpDir := t.TempDir()

	engine, err := NewBuilder().
		Directory(tmpDir).
		Name("complete").
		Format("json").
		MaxSizeMB(1).
		EnableConsole(false).
		Build()
	require.NoError(t, err)

	const total = 2000
	payload := strings.Repeat("y", 1024)
	for i := 0; i < total; i++ {
		require.NoError(t, engine.Infof("%d %s", i, payload))
	}
	require.NoError(t, engine.Close())

	// Union of archives plus active file holds every record exactly once
	var lines []string
	paths := []string{filepath.Join(tmpDir, "complete.json")}
	for _, name := range engine.Archives() {
		paths = append(paths, filepath.Join(tmpDir, name))
	}
	for _, p := range paths {
		content, err := os.ReadFile(p)
		require.NoError(t, err)
		trimmed := strings.TrimRight(string(content), "\n")
		if trimmed == "" {
			continue
		}
		lines = append(lines, strings.Split(trimmed, "\n")...)
	}

	assert.Len(t, lines, total)
	for _, line := range lines {
		var obj map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &obj), "corrupt record: %q", line)
	}
}

func TestPipelinePeriodicFlush(t *testing.T) {
	tmpDir := t.TempDir()

	engine, err := NewBuilder().
		Directory(tmpDir).
		Name("deferred").
		FlushIntervalMs(20).
		EnableConsole(false).
		Build()
	require.NoError(t, err)
	defer engine.Close()

	require.NoError(t, engine.Info("arrives within one interval"))

	assert.Eventually(t, func() bool {
		content, err := os.ReadFile(filepath.Join(tmpDir, "deferred.txt"))
		return err == nil && strings.Contains(string(content), "arrives within one interval")
	}, time.Second, 10*time.Millisecond)
}

func TestPipelineCloseFlushesBuffered(t *testing.T) {
	tmpDir := t.TempDir()

	engine, err := NewBuilder().
		Directory(tmpDir).
		Name("final").
		FlushIntervalMs(60_000). // ticker will not fire during the test
		EnableConsole(false).
		Build()
	require.NoError(t, err)

	require.NoError(t, engine.Critical("must survive shutdown"))
	require.NoError(t, engine.Close())

	content, err := os.ReadFile(filepath.Join(tmpDir, "final.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "CRITICAL: must survive shutdown")
}

func TestPipelineTimestampDisabled(t *testing.T) {
	tmpDir := t.TempDir()

	engine, err := NewBuilder().
		Directory(tmpDir).
		Name("bare").
		ShowTimestamp(false).
		EnableConsole(false).
		Build()
	require.NoError(t, err)

	require.NoError(t, engine.Info("no clock"))
	require.NoError(t, engine.Close())

	content, err := os.ReadFile(filepath.Join(tmpDir, "bare.txt"))
	require.NoError(t, err)
	assert.Equal(t, "INFO: no clock\n", string(content))
}
