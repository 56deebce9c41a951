package neatjson

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDumpLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	v := Object(
		Field("name", String("level-1")),
		Field("tiles", Array(Number(0), Number(1), Number(2))),
	)
	if err := Dump(v, path); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if mustDumps(t, loaded) != mustDumps(t, v) {
		t.Fatalf("round trip changed the document")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	expected := `{
  "name": "level-1",
  "tiles": [0, 1, 2]
}`
	if string(data) != expected {
		t.Fatalf("unexpected file contents\nexpected:\n%q\nactual:\n%q", expected, data)
	}
}

func TestDump_FailureLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keep.json")
	if err := os.WriteFile(path, []byte(`{"keep": true}`), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	err := Dump(Array(Number(math.NaN())), path)
	if !errors.Is(err, ErrNonFiniteNumber) {
		t.Fatalf("expected ErrNonFiniteNumber, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != `{"keep": true}` {
		t.Fatalf("failed Dump corrupted the file: %q", data)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{oops"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatalf("expected parse error")
	}
}
