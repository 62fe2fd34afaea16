package jsonstore

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type record struct {
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Count int      `json:"count"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	s := New(t.TempDir())

	want := []record{
		{Name: "one", Tags: []string{"a", "b"}, Count: 2},
		{Name: "two", Count: 0},
	}
	if err := s.Save("records", want); err != nil {
		t.Fatalf("save: %v", err)
	}

	var got []record
	if !s.Load("records", &got) {
		t.Fatal("expected load to find saved value")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestLoadAbsentKey(t *testing.T) {
	t.Parallel()
	s := New(t.TempDir())

	var got []record
	if s.Load("missing", &got) {
		t.Error("expected load of absent key to report not found")
	}
	if got != nil {
		t.Errorf("expected destination untouched, got %+v", got)
	}
}

func TestLoadCorruptData(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	s := New(dir)

	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	var got []record
	if s.Load("bad", &got) {
		t.Error("expected corrupt data to report not found, not to error or crash")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(dir)

	if err := s.Save("k", record{Name: "x"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "k.json")); err != nil {
		t.Errorf("expected file on disk: %v", err)
	}
}

func TestSaveOverwrites(t *testing.T) {
	t.Parallel()
	s := New(t.TempDir())

	if err := s.Save("k", record{Name: "first"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save("k", record{Name: "second"}); err != nil {
		t.Fatal(err)
	}

	var got record
	if !s.Load("k", &got) {
		t.Fatal("expected value")
	}
	if got.Name != "second" {
		t.Errorf("expected latest value, got %q", got.Name)
	}
}
