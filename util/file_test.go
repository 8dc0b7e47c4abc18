package util

import (
	"os"
	"path"
	"testing"
)

func TestWriteToFileCreatesParents(t *testing.T) {
	file := path.Join(t.TempDir(), "nested", "dir", "out.txt")
	if err := WriteToFile(file, "a", "b"); err != nil {
		t.Fatal(err)
	}
	bs, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if string(bs) != "a\nb" {
		t.Errorf("wrote %q", string(bs))
	}
}

func TestAppendToFile(t *testing.T) {
	file := path.Join(t.TempDir(), "out.txt")
	if err := AppendToFile(file, "first"); err != nil {
		t.Fatal(err)
	}
	if err := AppendToFile(file, "second"); err != nil {
		t.Fatal(err)
	}
	bs, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if string(bs) != "first\nsecond\n" {
		t.Errorf("wrote %q", string(bs))
	}
}
