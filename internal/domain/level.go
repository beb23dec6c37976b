package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Level is a CEFR proficiency level identifier
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// AllLevels returns every known level in ascending order
func AllLevels() []Level {
	return []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}
}

// ParseLevel accepts a level identifier in any letter case
func ParseLevel(s string) (Level, error) {
	candidate := Level(strings.ToUpper(strings.TrimSpace(s)))
	for _, l := range AllLevels() {
		if l == candidate {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q", s)
}

// DefaultFileName returns the conventional word list file name for a level
func (l Level) DefaultFileName() string {
	return fmt.Sprintf("cefr_%s_word_list.csv", strings.ToLower(string(l)))
}

// LevelCatalog maps levels to word list file paths. It is built once at
// startup and never modified afterwards.
type LevelCatalog struct {
	paths map[Level]string
}

// NewLevelCatalog copies the given mapping into a read-only catalog
func NewLevelCatalog(paths map[Level]string) LevelCatalog {
	copied := make(map[Level]string, len(paths))
	for level, path := range paths {
		copied[level] = path
	}
	return LevelCatalog{paths: copied}
}

// Path resolves a level to its file path
func (c LevelCatalog) Path(level Level) (string, bool) {
	path, ok := c.paths[level]
	if !ok || path == "" {
		return "", false
	}
	return path, true
}

// Levels returns the catalogued levels in ascending order
func (c LevelCatalog) Levels() []Level {
	levels := make([]Level, 0, len(c.paths))
	for level := range c.paths {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	return levels
}
