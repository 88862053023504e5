package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GameItem-Admin/GameItem-Admin/internal/item"
	"github.com/GameItem-Admin/GameItem-Admin/internal/upload"
)

const (
	sword = `{"id": "sword", "name": "Sword", "description": "Sharp", "stackSize": 1,
		"equipableSlot": "MAINHAND", "targettable": true, "consumable": false,
		"effects": {"attributes": {"strength": 4}}}`
	potion = `{"id": "potion", "name": "Potion", "description": "Heals", "stackSize": 10,
		"equipableSlot": "POCKET", "targettable": false, "consumable": true,
		"effects": {"vitals": {"health": {"current": 25}}}}`
	arrows = `{"id": "arrows", "name": "Arrows", "description": "Pointy", "stackSize": 50,
		"equipableSlot": "AMMO", "targettable": false, "consumable": true,
		"effects": {"inventory": {"slots": 0, "items": []}}}`
	broken = `{"id": "broken", "name": "Broken", "description": "No slot", "stackSize": 1,
		"equipableSlot": "TAIL", "targettable": false, "consumable": false,
		"effects": {"attributes": {"strength": 1}}}`
)

// writeConfig writes a main.toml using sqlite and disk staging under a temp dir.
func writeConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	content := fmt.Sprintf(`
[Webserver]
Port = 3000
URL = "http://localhost:3000"

[DB]
GormEngine = "sqlite"
Path = %q

[Upload]
OnConflict = "ignore"
Staging = "disk"
TempDir = %q

[Log]
LogLevel = "error"
AppName = "test"
ServiceName = "test"
`, filepath.Join(dir, "items.db"), filepath.Join(dir, "staging"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600))

	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	exportOutput = ""

	var stdout, stderr bytes.Buffer

	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestImportThenExport(t *testing.T) {
	cfgDir := writeConfig(t)
	single := writeFile(t, t.TempDir(), "sword.json", sword)
	many := writeFile(t, t.TempDir(), "consumables.json", "["+potion+","+arrows+"]")

	out, _, err := run(t, "import", "--config", cfgDir, single, many)
	require.NoError(t, err)

	var report upload.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.Files)
	assert.Equal(t, 3, report.Records)
	assert.Equal(t, 3, report.Inserted)
	assert.NotEmpty(t, report.BatchID)

	out, _, err = run(t, "export", "--config", cfgDir)
	require.NoError(t, err)

	var exported []item.Item
	require.NoError(t, json.Unmarshal([]byte(out), &exported))
	require.Len(t, exported, 3)

	ids := make([]string, 0, len(exported))
	for _, it := range exported {
		ids = append(ids, it.ID)
	}

	assert.ElementsMatch(t, []string{"sword", "potion", "arrows"}, ids)

	target := filepath.Join(t.TempDir(), "items.json")

	out, _, err = run(t, "export", "--config", cfgDir, "-o", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(target)
	require.NoError(t, err)

	var fromFile []item.Item
	require.NoError(t, json.Unmarshal(written, &fromFile))
	assert.Equal(t, exported, fromFile)
}

func TestImportStopsAtInvalidRecord(t *testing.T) {
	cfgDir := writeConfig(t)
	file := writeFile(t, t.TempDir(), "mixed.json", "["+sword+","+broken+","+potion+"]")

	out, stderr, err := run(t, "import", "--config", cfgDir, file)
	require.Error(t, err)
	require.ErrorIs(t, err, upload.ErrInvalidItem)
	assert.Contains(t, err.Error(), "import stopped")
	assert.Contains(t, stderr, "import stopped")

	var report upload.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 3, report.Records)
	assert.Equal(t, 1, report.Inserted)

	out, _, err = run(t, "export", "--config", cfgDir)
	require.NoError(t, err)

	var exported []item.Item
	require.NoError(t, json.Unmarshal([]byte(out), &exported))
	require.Len(t, exported, 1)
	assert.Equal(t, "sword", exported[0].ID)
}

func TestImportErrors(t *testing.T) {
	cfgDir := writeConfig(t)

	_, _, err := run(t, "import", "--config", cfgDir, filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "import", "--config", t.TempDir(), writeFile(t, t.TempDir(), "a.json", sword))
	require.Error(t, err, "no main.toml in the config directory")

	_, _, err = run(t, "import", "--config", cfgDir)
	require.Error(t, err, "at least one file is required")
}

func TestExportEmpty(t *testing.T) {
	out, _, err := run(t, "export", "--config", writeConfig(t))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}
