package client

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"uplink/internal/domain"
)

const progressBarWidth = 30

// TerminalRenderer writes upload state and health reports as text. It is
// safe for use by an upload and a health monitor at the same time.
type TerminalRenderer struct {
	mu      sync.Mutex
	out     io.Writer
	enabled bool
	inBar   bool
}

// NewTerminalRenderer creates a TerminalRenderer writing to out.
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out, enabled: true}
}

// SubmitEnabled reports whether a new upload may be started.
func (t *TerminalRenderer) SubmitEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled
}

func (t *TerminalRenderer) SetSubmitEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = enabled
}

func (t *TerminalRenderer) ResetProgress() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inBar = false
}

func (t *TerminalRenderer) ShowPreview(p Preview) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.endBar()
	if p.DataURL != "" {
		fmt.Fprintf(t.out, "Preview: %s (%s, %d byte data URL)\n", p.Name, p.ContentType, len(p.DataURL))
		return
	}
	fmt.Fprintf(t.out, "Preview: [%s] %s\n", p.Icon, p.Name)
}

func (t *TerminalRenderer) SetProgress(percent int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	filled := percent * progressBarWidth / 100
	fmt.Fprintf(t.out, "\r[%s%s] %3d%%",
		strings.Repeat("#", filled), strings.Repeat(" ", progressBarWidth-filled), percent)
	t.inBar = true
	if percent >= 100 {
		t.endBar()
	}
}

func (t *TerminalRenderer) ShowResult(r *domain.UploadResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.endBar()
	fmt.Fprintln(t.out, "Upload successful!")
	fmt.Fprintf(t.out, "File: %s\n", r.OriginalName)
	fmt.Fprintf(t.out, "Type: %s\n", r.FileType)
	fmt.Fprintf(t.out, "CDN URL: %s\n", r.URL)
	if r.ProjectID != "" {
		fmt.Fprintf(t.out, "Project: %s\n", r.ProjectID)
	}
	fmt.Fprintf(t.out, "Uploaded: %s\n", r.UploadedAt.Format(time.RFC3339))
	if kind := MediaKindOf(r.FileType); kind != MediaNone {
		fmt.Fprintf(t.out, "Media: %s\n", kind)
	}
}

func (t *TerminalRenderer) ShowError(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.endBar()
	fmt.Fprintf(t.out, "Upload failed: %s\n", msg)
}

// ReportHealth prints the outcome of a health probe.
func (t *TerminalRenderer) ReportHealth(s HealthStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.endBar()
	ts := s.CheckedAt.Format(time.RFC3339)
	if s.Healthy {
		fmt.Fprintf(t.out, "%s server healthy\n", ts)
		return
	}
	fmt.Fprintf(t.out, "%s server unhealthy: %v\n", ts, s.Err)
}

// endBar terminates an open progress line. Callers hold mu.
func (t *TerminalRenderer) endBar() {
	if t.inBar {
		fmt.Fprintln(t.out)
		t.inBar = false
	}
}
