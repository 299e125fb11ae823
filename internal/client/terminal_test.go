package client_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"uplink/internal/client"
	"uplink/internal/domain"
)

func TestTerminalRenderer_SuccessFlow(t *testing.T) {
	var buf bytes.Buffer
	r := client.NewTerminalRenderer(&buf)

	r.SetSubmitEnabled(false)
	assert.False(t, r.SubmitEnabled())
	r.ResetProgress()
	r.ShowPreview(client.Preview{Name: "report.pdf", ContentType: "application/pdf", Icon: "file-pdf"})
	r.SetProgress(0)
	r.SetProgress(50)
	r.SetProgress(100)
	r.ShowResult(&domain.UploadResult{
		URL:          "https://cdn.example.com/documents/k.pdf",
		Key:          "documents/k.pdf",
		FileType:     "application/pdf",
		OriginalName: "report.pdf",
		ProjectID:    "p1",
		UploadedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	r.SetSubmitEnabled(true)
	assert.True(t, r.SubmitEnabled())

	out := buf.String()
	assert.Contains(t, out, "Preview: [file-pdf] report.pdf\n")
	assert.Contains(t, out, "\r["+strings.Repeat("#", 15)+strings.Repeat(" ", 15)+"]  50%")
	assert.Contains(t, out, "] 100%\n")
	assert.Contains(t, out, "Upload successful!\n")
	assert.Contains(t, out, "CDN URL: https://cdn.example.com/documents/k.pdf\n")
	assert.Contains(t, out, "Project: p1\n")
	assert.Contains(t, out, "Uploaded: 2024-05-01T12:00:00Z\n")
	assert.NotContains(t, out, "Media:")
}

func TestTerminalRenderer_ImageResultShowsMedia(t *testing.T) {
	var buf bytes.Buffer
	r := client.NewTerminalRenderer(&buf)

	r.ShowResult(&domain.UploadResult{FileType: "image/png", OriginalName: "cat.png", URL: "u"})

	assert.Contains(t, buf.String(), "Media: image\n")
	assert.NotContains(t, buf.String(), "Project:")
}

func TestTerminalRenderer_ErrorEndsProgressLine(t *testing.T) {
	var buf bytes.Buffer
	r := client.NewTerminalRenderer(&buf)

	r.SetProgress(10)
	r.ShowError("Network error during upload")

	assert.True(t, strings.HasSuffix(buf.String(), "  10%\nUpload failed: Network error during upload\n"))
}

func TestTerminalRenderer_ReportHealth(t *testing.T) {
	var buf bytes.Buffer
	r := client.NewTerminalRenderer(&buf)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	r.ReportHealth(client.HealthStatus{Healthy: true, CheckedAt: at})
	r.ReportHealth(client.HealthStatus{Err: errors.New("status 503"), CheckedAt: at})

	assert.Equal(t, "2024-05-01T12:00:00Z server healthy\n2024-05-01T12:00:00Z server unhealthy: status 503\n", buf.String())
}
