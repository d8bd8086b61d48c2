package logs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scriptdesk.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestLastReturnsTrailingLines(t *testing.T) {
	path := writeLog(t, "one\ntwo\nthree\nfour\n")

	got, err := Last(path, 2)
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if want := []string{"three", "four"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}

	got, err = Last(path, 10)
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if len(got) != 4 || got[0] != "one" {
		t.Fatalf("expected all lines in order, got %v", got)
	}

	got, err = Last(path, 0)
	if err != nil || len(got) != 4 {
		t.Fatalf("expected every line for zero limit, got %v, %v", got, err)
	}
}

func TestLastMissingFile(t *testing.T) {
	got, err := Last(filepath.Join(t.TempDir(), "absent.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("expected nil lines for missing file, got %v, %v", got, err)
	}
}

func TestLastRejectsDirectory(t *testing.T) {
	if _, err := Last(t.TempDir(), 5); err == nil {
		t.Fatal("expected error for directory path")
	}
}
