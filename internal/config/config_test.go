package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Success(t *testing.T) {
	path := writeConfig(t, `{"resume": "resume.txt", "port": 9090, "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "resume.txt", cfg.Resume)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_PolicyOverride(t *testing.T) {
	path := writeConfig(t, `{"policy": {"max_score": 90, "gap_penalty": 0.8}}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Policy)
	assert.Equal(t, 90, cfg.Policy.MaxScore)
	assert.InDelta(t, 0.8, cfg.Policy.GapPenalty, 1e-9)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"port": `)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveJobSources(t *testing.T) {
	cfg := &Config{Job: "job.txt", JobURL: "https://example.com/job"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: 8080}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "missing.txt")}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Lexicon: filepath.Join(t.TempDir(), "missing.json")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeRateLimits(t *testing.T) {
	cfg := &Config{RateLimitRPS: -1}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Resume: "mine.txt"}
	defaults := Config{Resume: "default.txt", Job: "job.txt", Port: 8080, RateLimitRPS: 10}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.txt", merged.Resume) // explicit value wins
	assert.Equal(t, "job.txt", merged.Job)     // empty filled from defaults
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, 10, merged.RateLimitRPS)
}

func TestMergeWithDefaults_BoolsNotMerged(t *testing.T) {
	cfg := Config{}
	merged := cfg.MergeWithDefaults(Config{Verbose: true, RateLimit: true})

	assert.False(t, merged.Verbose)
	assert.False(t, merged.RateLimit)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 10, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
}
