package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaths(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	paths, err := GetPaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data", "vgsales.csv"), paths.DataFile)
	assert.Equal(t, filepath.Join(dir, "charts"), paths.ChartsDir)
	assert.Equal(t, filepath.Join(dir, "logs"), paths.LogsDir)
}

func TestPaths_EnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	paths, err := GetPaths()
	require.NoError(t, err)
	require.NoError(t, paths.EnsureDirectories())

	for _, d := range []string{paths.ChartsDir, paths.LogsDir} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestPaths_GetChartPath(t *testing.T) {
	paths := &Paths{ChartsDir: filepath.Join("out", "charts")}

	assert.Equal(t, filepath.Join("out", "charts", GenreSalesChart), paths.GetChartPath(GenreSalesChart))
	assert.Equal(t, filepath.Join("out", "charts", TopGamesCSV), paths.GetChartPath(TopGamesCSV))
}

// chdir switches the working directory for the test and restores it afterwards.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
