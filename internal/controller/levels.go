package controller

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	api "github.com/bedrock-ops/mc-controller-api/api/controller"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	worldsDirName = "worlds"

	behaviorPacksFileName = "world_behavior_packs.json"
	resourcePacksFileName = "world_resource_packs.json"

	packVersionLen = 3
)

var (
	errLevelNotFound    = errors.New("level not found")
	errInvalidLevelName = errors.New("invalid level name")
)

type levelCatalog struct {
	worldsDir string
}

func newLevelCatalog(dataDir string) *levelCatalog {
	return &levelCatalog{
		worldsDir: filepath.Join(dataDir, worldsDirName),
	}
}

func (lc *levelCatalog) listLevels() ([]*api.LevelDTO, error) {
	entries, err := ioutil.ReadDir(lc.worldsDir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing worlds dir %s", lc.worldsDir)
	}

	levels := make([]*api.LevelDTO, 0, len(entries))

	for _, entry := range entries {
		if !entry.IsDir() {
			log.Debugf("skipping non-directory entry %s in worlds dir", entry.Name())

			continue
		}

		level, err := lc.getLevel(entry.Name())
		if err != nil {
			return nil, err
		}

		levels = append(levels, level)
	}

	return levels, nil
}

func (lc *levelCatalog) getLevel(levelName string) (*api.LevelDTO, error) {
	if !validLevelName(levelName) {
		return nil, errInvalidLevelName
	}

	levelDir := filepath.Join(lc.worldsDir, levelName)

	info, err := os.Stat(levelDir)
	if err != nil || !info.IsDir() {
		return nil, errLevelNotFound
	}

	behaviorPacks, err := readPackList(filepath.Join(levelDir, behaviorPacksFileName))
	if err != nil {
		return nil, err
	}

	resourcePacks, err := readPackList(filepath.Join(levelDir, resourcePacksFileName))
	if err != nil {
		return nil, err
	}

	return &api.LevelDTO{
		Name:          levelName,
		BehaviorPacks: behaviorPacks,
		ResourcePacks: resourcePacks,
	}, nil
}

// validLevelName rejects names that could escape the worlds directory.
func validLevelName(levelName string) bool {
	if levelName == "" || levelName == "." || levelName == ".." {
		return false
	}

	return !strings.ContainsAny(levelName, "/\\")
}

// readPackList parses a world pack list file. The file is a JSON array of
// loose objects, so it is decoded into generic maps first and then into
// typed DTOs.
func readPackList(path string) ([]*api.PackDTO, error) {
	fileBytes, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*api.PackDTO{}, nil
		}

		return nil, errors.Wrapf(err, "reading pack list %s", path)
	}

	var rawPacks []map[string]interface{}

	err = json.Unmarshal(fileBytes, &rawPacks)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing pack list %s", path)
	}

	packs := make([]*api.PackDTO, 0, len(rawPacks))

	for _, rawPack := range rawPacks {
		// Older worlds name the pack id "uuid" instead of "pack_id".
		if id, ok := rawPack["uuid"]; ok {
			rawPack["pack_id"] = id
		}

		pack := &api.PackDTO{}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           pack,
		})
		if err != nil {
			panic(err)
		}

		err = decoder.Decode(rawPack)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding pack entry in %s", path)
		}

		if _, err = uuid.Parse(pack.UUID); err != nil {
			return nil, errors.Errorf("pack in %s has invalid uuid %q", path, pack.UUID)
		}

		if len(pack.Version) != packVersionLen {
			return nil, errors.Errorf("pack %s in %s has invalid version %v", pack.UUID, path, pack.Version)
		}

		packs = append(packs, pack)
	}

	return packs, nil
}
