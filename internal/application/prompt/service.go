// Package prompt composes the left and right prompt strings. The host
// shell's pre-command hook calls back into the binary once per command
// cycle; Refresh is that hook's body and must run before Right.
package prompt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/ncruces/go-strftime"

	"shellrig/internal/domain"
	"shellrig/internal/ports"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dirStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	clockStyle   = lipgloss.NewStyle().Faint(true)
)

// Service renders prompt strings from a version-control snapshot plus
// host state. The snapshot is recomputed by Refresh, never cached across
// command cycles.
type Service struct {
	VCS      ports.VCSCollector
	Settings domain.PromptSettings

	// Injectable for tests; zero values use the process state.
	Clock func() time.Time
	Euid  func() int
	Getwd func() (string, error)

	snapshot domain.VCSStatus
}

// Refresh takes a fresh version-control snapshot of the working directory.
// It blocks until the query completes; a failed query leaves an empty
// snapshot and is never surfaced to the user.
func (s *Service) Refresh(ctx context.Context) {
	wd, err := s.getwd()
	if err != nil {
		s.snapshot = domain.VCSStatus{}
		return
	}
	s.snapshot = s.VCS.Snapshot(ctx, wd)
}

// Left renders the left prompt: exit-status glyph, working-directory tail,
// privilege indicator.
func (s *Service) Left(status int) string {
	glyph := successStyle.Render(s.Settings.SuccessGlyph)
	if status != 0 {
		glyph = failureStyle.Render(fmt.Sprintf("%s %d", s.Settings.FailureGlyph, status))
	}

	dir := "?"
	if wd, err := s.getwd(); err == nil {
		dir = filepath.Base(wd)
	}

	privilege := ">"
	if s.euid() == 0 {
		privilege = "#"
	}

	return fmt.Sprintf("%s %s %s", glyph, dirStyle.Render(dir), privilege)
}

// Right renders the right prompt: branch segment (empty outside a
// repository) and the wall-clock time.
func (s *Service) Right() string {
	var parts []string
	if branch := s.branchSegment(); branch != "" {
		parts = append(parts, branchStyle.Render(branch))
	}
	clock := strftime.Format(s.Settings.TimeFormat, s.now())
	parts = append(parts, clockStyle.Render(clock))
	return strings.Join(parts, " ")
}

// BranchSegment exposes the raw branch text for diagnostics.
func (s *Service) BranchSegment() string {
	return s.branchSegment()
}

func (s *Service) branchSegment() string {
	if !s.snapshot.InRepo() {
		return ""
	}
	if s.snapshot.Dirty {
		return "(" + s.snapshot.Branch + "*)"
	}
	return "(" + s.snapshot.Branch + ")"
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *Service) euid() int {
	if s.Euid != nil {
		return s.Euid()
	}
	return os.Geteuid()
}

func (s *Service) getwd() (string, error) {
	if s.Getwd != nil {
		return s.Getwd()
	}
	return os.Getwd()
}
