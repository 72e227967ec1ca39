package game

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestInsertHighScore(t *testing.T) {
	var table []HighScore
	table = InsertHighScore(table, HighScore{"Ann", 50}, 5)
	table = InsertHighScore(table, HighScore{"Bob", 70}, 5)

	want := []HighScore{{"Bob", 70}, {"Ann", 50}}
	if !slices.Equal(table, want) {
		t.Fatalf("got %v, want %v", table, want)
	}
}

func TestInsertHighScoreCapsAndKeepsTies(t *testing.T) {
	table := []HighScore{{"A", 90}, {"B", 80}, {"C", 70}, {"D", 60}, {"E", 50}}

	got := InsertHighScore(table, HighScore{"F", 70}, 5)
	want := []HighScore{{"A", 90}, {"B", 80}, {"C", 70}, {"F", 70}, {"D", 60}}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	got = InsertHighScore(table, HighScore{"G", 10}, 5)
	if !slices.Equal(got, table) {
		t.Fatalf("low score entered a full table: %v", got)
	}
	if table[4] != (HighScore{"E", 50}) {
		t.Fatalf("input table was modified: %v", table)
	}
}

func TestInsertHighScoreExtremeScores(t *testing.T) {
	table := []HighScore{{"Low", -5}, {"Min", math.MinInt}}
	table = InsertHighScore(table, HighScore{"Max", math.MaxInt}, 5)

	want := []HighScore{{"Max", math.MaxInt}, {"Low", -5}, {"Min", math.MinInt}}
	if !slices.Equal(table, want) {
		t.Fatalf("got %v, want %v", table, want)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_scores.txt")
	s := NewFileStore(path, 5)
	table := []HighScore{{"Bob", 70}, {"Ann", 50}}

	if err := s.Save(table); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := string(data); got != "Bob,70\nAnn,50\n" {
		t.Fatalf("got file %q", got)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !slices.Equal(got, table) {
		t.Fatalf("got %v, want %v", got, table)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "none.txt"), 5)
	got, err := s.Load()
	if err != nil || len(got) != 0 {
		t.Fatalf("got %v, %v, want an empty table", got, err)
	}
}

func TestFileStoreSortsAndCaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_scores.txt")
	content := "a,1\nb,6\n\nc,3\nd,5\ne,2\nf,4\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewFileStore(path, 5).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []HighScore{{"b", 6}, {"d", 5}, {"f", 4}, {"c", 3}, {"e", 2}}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFileStoreMalformedLine(t *testing.T) {
	tests := map[string]string{
		"no separator":  "Ann 50\n",
		"bad score":     "Ann,fifty\n",
		"comma in name": "A,nn,50\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "high_scores.txt")
			if err := os.WriteFile(path, []byte("Bob,70\n"+content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := NewFileStore(path, 5).Load()
			if !errors.Is(err, ErrMalformedLine) {
				t.Fatalf("got error %v, want ErrMalformedLine", err)
			}
		})
	}
}

func TestFileStoreSaveToMissingDir(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "missing", "high_scores.txt"), 5)
	if err := s.Save([]HighScore{{"Ann", 50}}); err == nil {
		t.Fatalf("save into a missing directory succeeded")
	}
}
