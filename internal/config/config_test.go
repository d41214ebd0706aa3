// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Classifier.Enabled)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "data/catalog.csv", cfg.Catalog.Path)
	assert.Equal(t, 20, cfg.API.SummaryBuckets)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_PATH", "/data/hulu.csv")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CLASSIFIER_ENABLED", "true")
	t.Setenv("CLASSIFIER_URL", "http://classifier:8000")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/hulu.csv", cfg.Catalog.Path)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Classifier.Enabled)
	assert.Equal(t, "http://classifier:8000", cfg.Classifier.URL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.CORSOrigins)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7070\nlogging:\n  format: console\n"), 0o600))
	t.Setenv("CATALOGUS_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestEnvBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7070\n"), 0o600))
	t.Setenv("CATALOGUS_CONFIG", path)
	t.Setenv("HTTP_PORT", "9191")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Server.Port)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"empty catalog path", func(c *Config) { c.Catalog.Path = "" }, "CATALOG_PATH"},
		{"classifier enabled without url", func(c *Config) { c.Classifier.Enabled = true }, "CLASSIFIER_URL"},
		{"classifier bad scheme", func(c *Config) {
			c.Classifier.Enabled = true
			c.Classifier.URL = "ftp://classifier"
		}, "CLASSIFIER_URL"},
		{"port out of range", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"non-positive timeout", func(c *Config) { c.Server.Timeout = 0 }, "SERVER_TIMEOUT"},
		{"max page below default", func(c *Config) { c.API.MaxPageSize = 1 }, "API_MAX_PAGE_SIZE"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestFindConfigFilePrefersEnvVar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))
	t.Setenv("CATALOGUS_CONFIG", path)

	assert.Equal(t, path, findConfigFile())
}

func TestEnvTransformFunc(t *testing.T) {
	assert.Equal(t, "catalog.path", envTransformFunc("CATALOG_PATH"))
	assert.Equal(t, "server.port", envTransformFunc("HTTP_PORT"))
	assert.Equal(t, "logging.level", envTransformFunc("LOG_LEVEL"))
	assert.Empty(t, envTransformFunc("PATH"), "unmapped variables are dropped")
}

func TestClassifierDefaults(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, 10*time.Second, cfg.Classifier.Timeout)
	assert.Equal(t, 3, cfg.Classifier.MaxRetries)
	assert.Equal(t, time.Second, cfg.Classifier.RetryBaseDelay)
}
