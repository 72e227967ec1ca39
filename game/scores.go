package game

import (
	"bufio"
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// HighScore is one row of the high score table
type HighScore struct {
	Name  string
	Score int
}

// InsertHighScore adds an entry to a table, sorts it by descending score and keeps the top limit rows.
// Ties keep their existing order, so an older entry stays ahead of a new one with the same score.
func InsertHighScore(table []HighScore, entry HighScore, limit int) []HighScore {
	out := append(slices.Clone(table), entry)
	sortHighScores(out)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sortHighScores(table []HighScore) {
	slices.SortStableFunc(table, func(a, b HighScore) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

// Store persists the high score table
type Store interface {
	Load() ([]HighScore, error)
	Save(table []HighScore) error
}

// FileStore keeps the table in a text file, one "name,score" line per row.
// Names are written as is, so a comma inside a name makes the file unreadable.
type FileStore struct {
	Path  string
	Limit int
}

// NewFileStore creates a file store for path keeping at most limit rows
func NewFileStore(path string, limit int) *FileStore {
	return &FileStore{Path: path, Limit: limit}
}

// Load reads the table. A missing file is an empty table; any malformed line fails the whole load.
func (s *FileStore) Load() ([]HighScore, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read high scores: %w", err)
	}

	var table []HighScore
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entry, err := parseHighScore(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", s.Path, n, err)
		}
		table = append(table, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan high scores: %w", err)
	}

	sortHighScores(table)
	if s.Limit >= 0 && len(table) > s.Limit {
		table = table[:s.Limit]
	}
	return table, nil
}

// ErrMalformedLine is returned for a line that is not "name,score"
var ErrMalformedLine = errors.New("malformed high score line")

func parseHighScore(line string) (HighScore, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return HighScore{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	score, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return HighScore{}, fmt.Errorf("%w: %q: %w", ErrMalformedLine, line, err)
	}
	return HighScore{Name: fields[0], Score: score}, nil
}

// Save overwrites the file with the table. It writes a temporary file next to the target and
// renames it into place.
func (s *FileStore) Save(table []HighScore) error {
	var buf bytes.Buffer
	for _, e := range table {
		fmt.Fprintf(&buf, "%s,%d\n", e.Name, e.Score)
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".high_scores-*")
	if err != nil {
		return fmt.Errorf("create temp high scores: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write high scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close high scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replace high scores: %w", err)
	}
	return nil
}

// MemoryStore keeps the table in memory. It backs headless runs that must not touch disk.
type MemoryStore struct {
	Table []HighScore

	// Saves counts successful Save calls
	Saves int
}

// Load returns a copy of the stored table
func (s *MemoryStore) Load() ([]HighScore, error) {
	return slices.Clone(s.Table), nil
}

// Save replaces the stored table
func (s *MemoryStore) Save(table []HighScore) error {
	s.Table = slices.Clone(table)
	s.Saves++
	return nil
}
