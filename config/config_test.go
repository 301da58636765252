package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte{}, 0o644))
}

func TestParse_PositionalArgsAndDefaults(t *testing.T) {
	dir := t.TempDir()
	tboxPath := filepath.Join(dir, "tbox.ntenc")
	aboxPath := filepath.Join(dir, "abox.ntenc")
	touch(t, tboxPath)
	touch(t, aboxPath)

	cfg, err := Parse("rdflow", []string{tboxPath, aboxPath, "rdfspp", "4", "1000", "1"})
	require.NoError(t, err)
	require.Equal(t, tboxPath, cfg.TBoxPath)
	require.Equal(t, aboxPath, cfg.ABoxPath)
	require.Equal(t, RDFSPP, cfg.Expressivity)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, 1000, cfg.BatchSize)
	require.Equal(t, uint64(1), cfg.StepCount)
	require.False(t, cfg.Encode)
	require.Equal(t, "", cfg.MetricsAddr)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestParse_RejectsUnknownExpressivity(t *testing.T) {
	dir := t.TempDir()
	tboxPath := filepath.Join(dir, "tbox.ntenc")
	aboxPath := filepath.Join(dir, "abox.ntenc")
	touch(t, tboxPath)
	touch(t, aboxPath)

	_, err := Parse("rdflow", []string{tboxPath, aboxPath, "owl-full", "4", "1000", "1"})
	require.Error(t, err)
}

func TestParse_RejectsMissingFile(t *testing.T) {
	dir := t.TempDir()
	aboxPath := filepath.Join(dir, "abox.ntenc")
	touch(t, aboxPath)

	_, err := Parse("rdflow", []string{filepath.Join(dir, "missing.ntenc"), aboxPath, "rdfs", "1", "1", "1"})
	require.Error(t, err)
}

func TestParse_RejectsZeroWorkers(t *testing.T) {
	dir := t.TempDir()
	tboxPath := filepath.Join(dir, "tbox.ntenc")
	aboxPath := filepath.Join(dir, "abox.ntenc")
	touch(t, tboxPath)
	touch(t, aboxPath)

	_, err := Parse("rdflow", []string{tboxPath, aboxPath, "rdfs", "0", "1000", "1"})
	require.Error(t, err)
}

func TestParse_AmbientFlags(t *testing.T) {
	dir := t.TempDir()
	tboxPath := filepath.Join(dir, "tbox.ntenc")
	aboxPath := filepath.Join(dir, "abox.ntenc")
	touch(t, tboxPath)
	touch(t, aboxPath)

	cfg, err := Parse("rdflow", []string{
		tboxPath, aboxPath, "owl2rl", "8", "5000", "2",
		"--encode", "--metrics-addr=:9090", "--log-level=debug",
	})
	require.NoError(t, err)
	require.True(t, cfg.Encode)
	require.Equal(t, ":9090", cfg.MetricsAddr)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, OWL2RL, cfg.Expressivity)
}
