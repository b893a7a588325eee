package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindProjectRoot(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("module example.com/demo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(tmp, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, nested)

	root, err := findProjectRoot()
	if err != nil {
		t.Fatalf("findProjectRoot: %v", err)
	}
	// TempDir may sit behind a symlink, so compare resolved paths.
	wantRoot, _ := filepath.EvalSymlinks(tmp)
	gotRoot, _ := filepath.EvalSymlinks(root)
	if gotRoot != wantRoot {
		t.Errorf("root = %q, want %q", gotRoot, wantRoot)
	}
}

func TestReadModulePath(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("module example.com/demo\n\ngo 1.24.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	path, err := readModulePath(tmp)
	if err != nil {
		t.Fatalf("readModulePath: %v", err)
	}
	if path != "example.com/demo" {
		t.Errorf("module path = %q, want %q", path, "example.com/demo")
	}
}

func TestReadModulePath_Malformed(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "go.mod"), []byte("not a modfile"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := readModulePath(tmp); err == nil {
		t.Fatal("expected error for malformed go.mod")
	}
}
