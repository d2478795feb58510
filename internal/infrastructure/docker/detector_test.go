package docker

import (
	"net"
	"os"
	"path/filepath"
	"testing"
)

func TestDetectMissingPath(t *testing.T) {
	detector := NewDetector()

	uri, found := detector.Detect(filepath.Join(t.TempDir(), "docker.sock"))
	if found {
		t.Fatalf("expected absence, got %q", uri)
	}
}

func TestDetectRegularFileIsNotASocket(t *testing.T) {
	detector := NewDetector()
	path := filepath.Join(t.TempDir(), "docker.sock")
	if err := os.WriteFile(path, []byte("not a socket"), 0o644); err != nil {
		t.Fatal(err)
	}

	if uri, found := detector.Detect(path); found {
		t.Fatalf("regular file detected as socket: %q", uri)
	}
}

func TestDetectSocket(t *testing.T) {
	// Socket paths have a short kernel limit; keep the name tiny.
	dir, err := os.MkdirTemp("", "d")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "s.sock")
	listener, err := net.Listen("unix", path)
	if err != nil {
		t.Skipf("cannot create unix socket: %v", err)
	}
	defer listener.Close()

	detector := NewDetector()
	uri, found := detector.Detect(path)
	if !found {
		t.Fatal("expected socket to be detected")
	}
	if want := "unix://" + path; uri != want {
		t.Errorf("uri = %q, want %q", uri, want)
	}
}
