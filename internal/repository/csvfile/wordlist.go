package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"vocabdrill/internal/domain"
	"vocabdrill/internal/repository"
)

const delimiter = ';'

// Header substrings identifying the language of a column
var (
	sourceIndicators = []string{"english", "anglicky"}
	targetIndicators = []string{"czech", "česky"}
)

// WordListRepo implements repository.WordListRepository over
// semicolon-delimited UTF-8 files
type WordListRepo struct {
	catalog domain.LevelCatalog
}

// NewWordListRepo creates a new word list repository
func NewWordListRepo(catalog domain.LevelCatalog) *WordListRepo {
	return &WordListRepo{catalog: catalog}
}

// LoadLevel resolves the level through the catalog and parses its file
func (r *WordListRepo) LoadLevel(level domain.Level) ([]domain.WordPair, error) {
	path, ok := r.catalog.Path(level)
	if !ok {
		return nil, fmt.Errorf("level %s: %w", level, repository.ErrFileNotFound)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("level %s (%s): %w", level, path, repository.ErrFileNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	pairs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return pairs, nil
}

// Parse reads word pairs from r. The first row is a header when one of its
// cells names a language; otherwise it is data. Rows that are too short or
// have an empty term are skipped.
func Parse(r io.Reader) ([]domain.WordPair, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	pairs := []domain.WordPair{}
	cols := columns{source: 0, target: 1}
	first := true

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if first {
			first = false
			if len(row) > 0 {
				row[0] = strings.TrimPrefix(row[0], "\ufeff")
			}
			if detected, ok := detectColumns(row); ok {
				cols = detected
				continue
			}
		}

		if pair, ok := cols.pair(row); ok {
			pairs = append(pairs, pair)
		}
	}

	return pairs, nil
}

type columns struct {
	source int
	target int
}

func (c columns) pair(row []string) (domain.WordPair, bool) {
	if len(row) <= max(c.source, c.target) {
		return domain.WordPair{}, false
	}
	source := strings.TrimSpace(row[c.source])
	target := strings.TrimSpace(row[c.target])
	if source == "" || target == "" {
		return domain.WordPair{}, false
	}
	return domain.NewWordPair(source, target), true
}

// detectColumns looks for language names in a header row. Languages without
// a matching cell keep their positional default.
func detectColumns(header []string) (columns, bool) {
	cols := columns{source: 0, target: 1}
	found := false

	for i, cell := range header {
		cell = strings.ToLower(cell)
		if containsAny(cell, sourceIndicators) {
			cols.source = i
			found = true
		}
		if containsAny(cell, targetIndicators) {
			cols.target = i
			found = true
		}
	}

	return cols, found
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
