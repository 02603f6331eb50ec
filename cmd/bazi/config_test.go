package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarium-dev/ganzhi/cycle"
	"github.com/lunarium-dev/ganzhi/interact"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("BAZI_DB_PATH", "")
	os.Unsetenv("BAZI_DB_PATH")
	t.Setenv("BAZI_DEBUG", "")
	os.Unsetenv("BAZI_DEBUG")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "charts.db", c.DBPath)
	assert.False(t, c.Debug)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("BAZI_DB_PATH", "/tmp/alt.db")
	t.Setenv("BAZI_DEBUG", "true")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/alt.db", c.DBPath)
	assert.True(t, c.Debug)
}

func TestLoadTables_NoFile(t *testing.T) {
	tables, err := loadTables("")
	require.NoError(t, err)
	assert.Equal(t, interact.DefaultTables(), tables)
}

func TestLoadTables_WuWeiOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := "combinations:\n  - pair: [Wu, Wei]\n    element: earth\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	tables, err := loadTables(path)
	require.NoError(t, err)

	// Wu is branch 6, Wei is branch 7.
	assert.Equal(t, cycle.Earth, tables.Combinations[interact.Pair{6, 7}])
	// Stock tables keep the Fire reading.
	assert.Equal(t, cycle.Fire, interact.DefaultTables().Combinations[interact.Pair{6, 7}])
}

func TestLoadTables_BadInput(t *testing.T) {
	dir := t.TempDir()

	unknownBranch := filepath.Join(dir, "branch.yaml")
	require.NoError(t, os.WriteFile(unknownBranch, []byte("combinations:\n  - pair: [Wu, Nope]\n    element: fire\n"), 0o600))
	_, err := loadTables(unknownBranch)
	assert.ErrorIs(t, err, cycle.ErrUnknownBranch)

	unknownElement := filepath.Join(dir, "element.yaml")
	require.NoError(t, os.WriteFile(unknownElement, []byte("combinations:\n  - pair: [Wu, Wei]\n    element: plasma\n"), 0o600))
	_, err = loadTables(unknownElement)
	assert.Error(t, err)

	notCombination := filepath.Join(dir, "pair.yaml")
	require.NoError(t, os.WriteFile(notCombination, []byte("combinations:\n  - pair: [Zi, Wu]\n    element: fire\n"), 0o600))
	_, err = loadTables(notCombination)
	assert.ErrorIs(t, err, interact.ErrUnknownPair)

	_, err = loadTables(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
