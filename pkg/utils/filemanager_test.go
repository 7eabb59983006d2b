package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomic_New(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	if err := WriteFileAtomic(path, []byte("hello")); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("content = %q, want %q", got, "hello")
	}

	assertNoTempFiles(t, dir)
}

func TestWriteFileAtomic_Overwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xlf")
	if err := os.WriteFile(path, []byte("a much longer previous content"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := WriteFileAtomic(path, []byte("short")); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "short" {
		t.Errorf("content = %q, want %q", got, "short")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}

	assertNoTempFiles(t, dir)
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	if err := WriteFileAtomic(path, []byte("x")); err == nil {
		t.Fatal("WriteFileAtomic() error = nil, want error")
	}
	if FileExists(path) {
		t.Error("destination exists after failed write")
	}
}

func TestWriteFileAtomic_Directory(t *testing.T) {
	dir := t.TempDir()

	if err := WriteFileAtomic(dir, []byte("x")); err == nil {
		t.Fatal("WriteFileAtomic(dir) error = nil, want error")
	}
}

func TestTempFileName(t *testing.T) {
	path := filepath.Join("out", "strings.csv")

	first := TempFileName(path)
	second := TempFileName(path)

	if first == second {
		t.Errorf("TempFileName() returned %q twice", first)
	}
	if filepath.Dir(first) != "out" {
		t.Errorf("TempFileName(%q) dir = %q, want %q", path, filepath.Dir(first), "out")
	}

	base := filepath.Base(first)
	if !strings.HasPrefix(base, ".strings.csv.") || !strings.HasSuffix(base, ".tmp") {
		t.Errorf("TempFileName(%q) = %q", path, first)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil || string(got) != "data" {
		t.Errorf("ReadFile() = %q, %v, want %q", got, err, "data")
	}

	if _, err := ReadFile(path + ".missing"); err == nil {
		t.Error("ReadFile(missing) error = nil")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.xlf")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"regular file", path, true},
		{"missing", filepath.Join(dir, "absent.xlf"), false},
		{"directory", dir, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteFileAtomic(path, []byte("12345")); err != nil {
		t.Fatal(err)
	}

	size, err := FileSize(path)
	if err != nil || size != 5 {
		t.Errorf("FileSize() = %d, %v, want 5", size, err)
	}

	_, err = FileSize(path + ".missing")
	if err == nil || !strings.Contains(err.Error(), "out.csv.missing") {
		t.Errorf("FileSize(missing) error = %v, want error naming the path", err)
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("leftover temporary file %s", entry.Name())
		}
	}
}
