package solelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderDefaults(t *testing.T) {
	cfg, err := NewBuilder().Config()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestBuilderChaining(t *testing.T) {
	cfg, err := NewBuilder().
		Level(LevelWarning).
		Name("app").
		Directory("/var/log/app").
		Format("json").
		MaxSizeMB(32).
		FlushIntervalMs(200).
		ShowTimestamp(false).
		PrettyJSON(true).
		IncludeSession(true).
		EnableConsole(false).
		ConsoleTarget("stderr").
		RotateCron("0 0 * * *").
		BufferSizeKB(128).
		Config()
	require.NoError(t, err)

	assert.Equal(t, LevelWarning, cfg.Level)
	assert.Equal(t, "app", cfg.Name)
	assert.Equal(t, "/var/log/app", cfg.Directory)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, int64(32), cfg.MaxSizeMB)
	assert.Equal(t, int64(200), cfg.FlushIntervalMs)
	assert.False(t, cfg.ShowTimestamp)
	assert.True(t, cfg.PrettyJSON)
	assert.True(t, cfg.IncludeSession)
	assert.False(t, cfg.EnableConsole)
	assert.Equal(t, "stderr", cfg.ConsoleTarget)
	assert.Equal(t, "0 0 * * *", cfg.RotateCron)
	assert.Equal(t, int64(128), cfg.BufferSizeKB)
}

func TestBuilderLevelString(t *testing.T) {
	cfg, err := NewBuilder().LevelString("error").Config()
	require.NoError(t, err)
	assert.Equal(t, LevelError, cfg.Level)
}

func TestBuilderLevelStringInvalid(t *testing.T) {
	b := NewBuilder().LevelString("verbose")

	_, err := b.Config()
	assert.Error(t, err)

	_, err = b.Build()
	assert.Error(t, err)

	// Later calls do not clear the accumulated error
	_, err = b.Level(LevelInfo).Config()
	assert.Error(t, err)
}

func TestBuilderBuild(t *testing.T) {
	engine, err := NewBuilder().
		Directory(t.TempDir()).
		Name("built").
		EnableConsole(false).
		Build()
	require.NoError(t, err)
	defer engine.Close()

	require.NoError(t, engine.Info("from builder"))
}

func TestBuilderBuildInvalidConfig(t *testing.T) {
	_, err := NewBuilder().Format("csv").Build()
	assert.Error(t, err)
}

func TestBuilderConfigIsCopy(t *testing.T) {
	b := NewBuilder().Name("one")

	cfg, err := b.Config()
	require.NoError(t, err)
	cfg.Name = "tampered"

	again, err := b.Config()
	require.NoError(t, err)
	assert.Equal(t, "one", again.Name)
}
