package controller

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPackID      = "5c830391-0937-44d6-9774-ebe2f8c631a1"
	otherTestPackID = "66c6e9a8-3093-462a-9c36-09fd39bb0099"
)

func newTestCatalog(t *testing.T) (*levelCatalog, string) {
	t.Helper()

	dataDir := t.TempDir()
	worldsDir := filepath.Join(dataDir, worldsDirName)
	require.NoError(t, os.MkdirAll(worldsDir, 0o755))

	return newLevelCatalog(dataDir), worldsDir
}

func addLevel(t *testing.T, worldsDir, levelName string, files map[string]string) {
	t.Helper()

	levelDir := filepath.Join(worldsDir, levelName)
	require.NoError(t, os.MkdirAll(levelDir, 0o755))

	for name, content := range files {
		require.NoError(t, ioutil.WriteFile(filepath.Join(levelDir, name), []byte(content), 0o644))
	}
}

func TestListLevelsSkipsNonDirectories(t *testing.T) {
	catalog, worldsDir := newTestCatalog(t)

	addLevel(t, worldsDir, "Bedrock level", nil)
	addLevel(t, worldsDir, "creative", nil)
	require.NoError(t, ioutil.WriteFile(filepath.Join(worldsDir, "stray.txt"), []byte("x"), 0o644))

	levels, err := catalog.listLevels()
	require.NoError(t, err)
	require.Len(t, levels, 2)

	names := []string{levels[0].Name, levels[1].Name}
	assert.Contains(t, names, "Bedrock level")
	assert.Contains(t, names, "creative")
}

func TestListLevelsMissingWorldsDir(t *testing.T) {
	catalog := newLevelCatalog(t.TempDir())

	_, err := catalog.listLevels()
	require.Error(t, err)
}

func TestGetLevelParsesPackLists(t *testing.T) {
	catalog, worldsDir := newTestCatalog(t)

	addLevel(t, worldsDir, "survival", map[string]string{
		behaviorPacksFileName: `[{"pack_id": "` + testPackID + `", "version": [1, 0, 0]}]`,
		resourcePacksFileName: `[{"uuid": "` + otherTestPackID + `", "version": [2, 1, 3], "name": "textures"}]`,
	})

	level, err := catalog.getLevel("survival")
	require.NoError(t, err)

	require.Equal(t, "survival", level.Name)

	require.Len(t, level.BehaviorPacks, 1)
	assert.Equal(t, testPackID, level.BehaviorPacks[0].UUID)
	assert.Equal(t, []int{1, 0, 0}, level.BehaviorPacks[0].Version)

	// "uuid" is the legacy key for "pack_id"
	require.Len(t, level.ResourcePacks, 1)
	assert.Equal(t, otherTestPackID, level.ResourcePacks[0].UUID)
	assert.Equal(t, "textures", level.ResourcePacks[0].Name)
	assert.Equal(t, []int{2, 1, 3}, level.ResourcePacks[0].Version)
}

func TestGetLevelMissingPackFiles(t *testing.T) {
	catalog, worldsDir := newTestCatalog(t)

	addLevel(t, worldsDir, "fresh", nil)

	level, err := catalog.getLevel("fresh")
	require.NoError(t, err)

	assert.Empty(t, level.BehaviorPacks)
	assert.Empty(t, level.ResourcePacks)
}

func TestGetLevelNotFound(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	_, err := catalog.getLevel("ghost")
	require.Equal(t, errLevelNotFound, err)
}

func TestGetLevelInvalidName(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	for _, levelName := range []string{"", ".", "..", "../etc", "a/b", `a\b`} {
		_, err := catalog.getLevel(levelName)
		assert.Equal(t, errInvalidLevelName, err, "name %q", levelName)
	}
}

func TestGetLevelBadPackUUID(t *testing.T) {
	catalog, worldsDir := newTestCatalog(t)

	addLevel(t, worldsDir, "broken", map[string]string{
		behaviorPacksFileName: `[{"pack_id": "not-a-uuid", "version": [1, 0, 0]}]`,
	})

	_, err := catalog.getLevel("broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid uuid")
}

func TestGetLevelBadPackVersion(t *testing.T) {
	catalog, worldsDir := newTestCatalog(t)

	addLevel(t, worldsDir, "broken", map[string]string{
		resourcePacksFileName: `[{"pack_id": "` + testPackID + `", "version": [1, 0]}]`,
	})

	_, err := catalog.getLevel("broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid version")
}

func TestGetLevelMalformedPackFile(t *testing.T) {
	catalog, worldsDir := newTestCatalog(t)

	addLevel(t, worldsDir, "broken", map[string]string{
		behaviorPacksFileName: `{"not": "an array"}`,
	})

	_, err := catalog.getLevel("broken")
	require.Error(t, err)
}
