// Package docker probes for a local Docker daemon socket.
package docker

import (
	"os"

	"shellrig/internal/ports"
)

// Scheme prefixes the socket path when forming the DOCKER_HOST URI.
const Scheme = "unix://"

// DefaultSocketPath is where dockerd listens on most Linux/WSL setups.
const DefaultSocketPath = "/var/run/docker.sock"

// Detector checks for a socket special file at a fixed path.
type Detector struct{}

// NewDetector builds a Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect reports the DOCKER_HOST URI when a socket exists at path.
// Any stat failure, permission errors included, counts as absence.
func (d *Detector) Detect(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	if info.Mode()&os.ModeSocket == 0 {
		return "", false
	}
	return Scheme + path, true
}

var _ ports.SocketDetector = (*Detector)(nil)
