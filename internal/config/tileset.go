package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// TilesetManifest describes a tile catalog: the square tile size, the tile
// declarations, and the neighbor rules between tile variants.
type TilesetManifest struct {
	TileSize  int                 `yaml:"tilesize"`
	Tiles     []TileDecl          `yaml:"tiles"`
	Neighbors []NeighborDecl      `yaml:"neighbors"`
	Subsets   map[string][]string `yaml:"subsets"`
}

// TileDecl declares one canonical tile. Image is the path of the tile's
// bitmap relative to the manifest file.
type TileDecl struct {
	Name     string  `yaml:"name"`
	Symmetry string  `yaml:"symmetry"`
	Weight   float64 `yaml:"weight"`
	Image    string  `yaml:"image"`
}

// NeighborDecl pairs a left and a right tile reference, each written as
// "name" or "name variant".
type NeighborDecl struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// ParseTileRef splits a "name variant" reference into its parts; a bare name
// means variant 0.
func ParseTileRef(ref string) (string, int, error) {
	fields := strings.Fields(ref)
	switch len(fields) {
	case 1:
		return fields[0], 0, nil
	case 2:
		v, err := strconv.Atoi(fields[1])
		if err != nil || v < 0 {
			return "", 0, fmt.Errorf("bad variant in tile reference %q", ref)
		}
		return fields[0], v, nil
	}
	return "", 0, fmt.Errorf("bad tile reference %q", ref)
}

// LoadTileset reads a tileset manifest from a YAML file.
func LoadTileset(path string) (TilesetManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TilesetManifest{}, fmt.Errorf("reading tileset: %w", err)
	}
	var m TilesetManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return TilesetManifest{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if m.TileSize <= 0 {
		return TilesetManifest{}, fmt.Errorf("%s: tilesize must be positive", path)
	}
	if len(m.Tiles) == 0 {
		return TilesetManifest{}, fmt.Errorf("%s: no tiles declared", path)
	}
	for i := range m.Tiles {
		if m.Tiles[i].Weight == 0 {
			m.Tiles[i].Weight = 1
		}
	}
	return m, nil
}
