package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryFileSystem_CreateAndRead(t *testing.T) {
	fs := NewMemoryFileSystem()

	f, err := fs.Create("out/data.csv")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := f.Write([]byte("a,b\n1,2\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := fs.ReadFile("out/data.csv")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "a,b\n1,2\n" {
		t.Errorf("ReadFile = %q", data)
	}

	if !fs.Exists("out/data.csv") {
		t.Error("expected file to exist")
	}
	if fs.Exists("out/missing.csv") {
		t.Error("expected missing file to not exist")
	}
}

func TestMemoryFileSystem_ContentFixedAtClose(t *testing.T) {
	fs := NewMemoryFileSystem()

	f, _ := fs.Create("late.txt")
	f.Write([]byte("first"))
	if fs.Exists("late.txt") {
		t.Error("file should not exist before Close")
	}
	f.Close()

	data, err := fs.ReadFile("late.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "first" {
		t.Errorf("ReadFile = %q, want %q", data, "first")
	}
}

func TestMemoryFileSystem_MkdirAll(t *testing.T) {
	fs := NewMemoryFileSystem()

	if err := fs.MkdirAll("a/b/c", 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	for _, dir := range []string{"a", "a/b", "a/b/c"} {
		if !fs.Exists(dir) {
			t.Errorf("expected directory %s to exist", dir)
		}
	}
}

func TestMemoryFileSystem_Files(t *testing.T) {
	fs := NewMemoryFileSystem()
	for _, name := range []string{"b.csv", "a.csv"} {
		f, _ := fs.Create(name)
		f.Close()
	}

	files := fs.Files()
	if len(files) != 2 || files[0] != "a.csv" || files[1] != "b.csv" {
		t.Errorf("Files() = %v, want sorted [a.csv b.csv]", files)
	}
}

func TestOSFileSystem_RoundTrip(t *testing.T) {
	fs := OSFileSystem{}
	dir := t.TempDir()

	if err := fs.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	path := filepath.Join(dir, "nested", "out.txt")
	f, err := fs.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := f.Write([]byte("hello")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("ReadFile = %q", data)
	}
	if !fs.Exists(path) {
		t.Error("expected file to exist")
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
}
