package move

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "incoming", "movie.mkv")

	existingDir := filepath.Join(dir, "library")
	if err := os.Mkdir(existingDir, 0755); err != nil {
		t.Fatal(err)
	}
	slashDir := filepath.Join(dir, "shelf")
	if err := os.Mkdir(slashDir, 0755); err != nil {
		t.Fatal(err)
	}
	existingFile := filepath.Join(dir, "taken.mkv")
	writeFile(t, existingFile, "taken")

	cases := []struct {
		name       string
		dst        string
		wantTarget string
		wantErr    string
	}{
		{"new file", filepath.Join(dir, "new.mkv"), filepath.Join(dir, "new.mkv"), ""},
		{"directory", existingDir, filepath.Join(existingDir, "movie.mkv"), ""},
		{"directory with trailing slash", slashDir + "/", filepath.Join(slashDir, "movie.mkv"), ""},
		{"existing file", existingFile, existingFile, "refusing to overwrite " + existingFile},
		{"parent is a file", filepath.Join(existingFile, "child"), filepath.Join(existingFile, "child"), "failed to create " + filepath.Join(existingFile, "child") + ": not a directory"},
		{"parent missing", filepath.Join(dir, "nowhere", "x.mkv"), filepath.Join(dir, "nowhere", "x.mkv"), "failed to create " + filepath.Join(dir, "nowhere", "x.mkv") + ": no such file or directory"},
	}

	for _, c := range cases {
		f, target, err := OpenDestination(src, c.dst)
		if target != c.wantTarget {
			t.Errorf("%s: target = %q, want %q", c.name, target, c.wantTarget)
		}

		if c.wantErr != "" {
			if err == nil || err.Error() != c.wantErr {
				t.Errorf("%s: error = %v, want %q", c.name, err, c.wantErr)
			}
			if f != nil {
				t.Errorf("%s: expected no file on error", c.name)
			}
			continue
		}

		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
			continue
		}
		info, err := f.Stat()
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() != 0 || !info.Mode().IsRegular() {
			t.Errorf("%s: expected a new empty regular file", c.name)
		}
		if info.Mode().Perm()&^0644 != 0 {
			t.Errorf("%s: permissions %v exceed 0644", c.name, info.Mode().Perm())
		}
		f.Close()
	}
}

func TestOpenDestinationLeavesExistingContents(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "keep.txt")
	writeFile(t, dst, "original")

	if _, _, err := OpenDestination(filepath.Join(dir, "src.txt"), dst); !errors.Is(err, ErrRefuseOverwrite) {
		t.Fatalf("expected refusal, got %v", err)
	}
	if readFile(t, dst) != "original" {
		t.Fatal("existing destination was modified")
	}
}
