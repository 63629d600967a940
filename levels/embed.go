// Package levels loads tile maps from YAML.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var levelsFS embed.FS

// MaxTileID is the largest tile type ID a map may contain.
const MaxTileID = 2

type Level struct {
	Name  string  `yaml:"name"`
	Tiles [][]int `yaml:"tiles"`
}

// Width returns the number of columns.
func (l *Level) Width() int {
	if len(l.Tiles) == 0 {
		return 0
	}
	return len(l.Tiles[0])
}

// Height returns the number of rows.
func (l *Level) Height() int { return len(l.Tiles) }

// Validate checks that the grid is non-empty, rectangular and only holds
// known tile IDs.
func (l *Level) Validate() error {
	if len(l.Tiles) == 0 || len(l.Tiles[0]) == 0 {
		return errors.New("levels: empty tile grid")
	}
	w := len(l.Tiles[0])
	for y, row := range l.Tiles {
		if len(row) != w {
			return fmt.Errorf("levels: row %d has %d tiles, want %d", y, len(row), w)
		}
		for x, id := range row {
			if id < 0 || id > MaxTileID {
				return fmt.Errorf("levels: tile (%d,%d) has id %d outside 0..%d", x, y, id, MaxTileID)
			}
		}
	}
	return nil
}

// Load reads a level from disk. A bare name that is not on disk is looked
// up in the embedded levels; the .yaml extension is optional.
func Load(name string) (*Level, error) {
	data, err := read(name)
	if err != nil {
		return nil, err
	}
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return &lvl, nil
}

func read(name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("levels: empty level name")
	}
	data, err := os.ReadFile(name)
	if err == nil {
		return data, nil
	}
	embedded, ok := embeddedName(name)
	if !ok || !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	data, err = levelsFS.ReadFile(embedded)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return data, nil
}

// embeddedName maps a bare level name, optionally prefixed with
// "levels/", to its file in the embedded FS. Paths into other
// directories have no embedded counterpart.
func embeddedName(name string) (string, bool) {
	s := strings.TrimPrefix(filepath.ToSlash(name), "levels/")
	if s == "" || strings.Contains(s, "/") {
		return "", false
	}
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return s, true
}
