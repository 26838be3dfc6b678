package remux

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

func TestBuildArgs(t *testing.T) {
	got := buildArgs("/rec/session.mkv", "/rec/session.mp4")
	want := []string{
		"-y",
		"-i", "/rec/session.mkv",
		"-c:v", "copy",
		"-c:a", "aac",
		"-b:a", "128k",
		"-movflags", "+faststart",
		"/rec/session.mp4",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildArgs() = %v, want %v", got, want)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"/rec/a.mkv", "/rec/a.mp4"},
		{"clip.with.dots.mkv", "clip.with.dots.mp4"},
		{"noext", "noext.mp4"},
		// A recording saved under an .mp4 name must convert to a sibling,
		// never to itself.
		{"/rec/session.mp4", "/rec/session.remux.mp4"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.src); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestRemuxFailureKeepsMP4NamedSource(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the converter stub")
	}
	binDir := t.TempDir()
	stub := filepath.Join(binDir, DefaultBinary)
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 1\n"), 0700); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	rec := filepath.Join(t.TempDir(), "session.mp4")
	if err := os.WriteFile(rec, []byte("frames"), 0600); err != nil {
		t.Fatalf("write recording: %v", err)
	}

	if _, err := New().Remux(rec); err == nil {
		t.Fatal("expected the conversion to fail")
	}
	if _, err := os.Stat(rec); err != nil {
		t.Fatalf("original recording gone after failed conversion: %v", err)
	}
}
