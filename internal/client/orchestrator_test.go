package client_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uplink/internal/client"
	"uplink/internal/domain"
)

// recordingRenderer logs every call it receives.
type recordingRenderer struct {
	events  []string
	preview client.Preview
	result  *domain.UploadResult
}

func (r *recordingRenderer) SetSubmitEnabled(enabled bool) {
	r.events = append(r.events, fmt.Sprintf("enabled=%t", enabled))
}
func (r *recordingRenderer) ResetProgress() { r.events = append(r.events, "reset") }
func (r *recordingRenderer) ShowPreview(p client.Preview) {
	r.preview = p
	r.events = append(r.events, "preview")
}
func (r *recordingRenderer) SetProgress(p int) { r.events = append(r.events, fmt.Sprintf("progress=%d", p)) }
func (r *recordingRenderer) ShowResult(res *domain.UploadResult) {
	r.result = res
	r.events = append(r.events, "result")
}
func (r *recordingRenderer) ShowError(msg string) { r.events = append(r.events, "error="+msg) }

type fakeUploader struct {
	result *domain.UploadResult
	err    error
	calls  int
}

func (f *fakeUploader) Upload(_ context.Context, _ *client.File, onProgress client.ProgressFunc) (*domain.UploadResult, error) {
	f.calls++
	onProgress(0)
	if f.err != nil {
		return nil, f.err
	}
	onProgress(100)
	return f.result, nil
}

func TestOrchestrator_Success(t *testing.T) {
	res := &domain.UploadResult{
		URL:          "https://cdn.example.com/images/k.png",
		Key:          "images/k.png",
		FileType:     "image/png",
		OriginalName: "cat.png",
		UploadedAt:   time.Now().UTC(),
	}
	up := &fakeUploader{result: res}
	r := &recordingRenderer{}

	got, err := client.NewOrchestrator(up, r).Submit(context.Background(),
		&client.File{Name: "cat.png", ContentType: "image/png", Content: []byte{0x89, 'P'}})

	require.NoError(t, err)
	assert.Same(t, res, got)
	assert.Equal(t, []string{"enabled=false", "reset", "preview", "progress=0", "progress=100", "result", "enabled=true"}, r.events)
	assert.Equal(t, "data:image/png;base64,iVA=", r.preview.DataURL)
	assert.Same(t, res, r.result)
}

func TestOrchestrator_UploadError(t *testing.T) {
	up := &fakeUploader{err: &client.ServerError{Status: 400, Message: "File type not allowed"}}
	r := &recordingRenderer{}

	_, err := client.NewOrchestrator(up, r).Submit(context.Background(),
		&client.File{Name: "a.exe", ContentType: "application/x-msdownload", Content: []byte("MZ")})

	require.Error(t, err)
	assert.Equal(t, []string{"enabled=false", "reset", "preview", "progress=0", "error=File type not allowed", "enabled=true"}, r.events)
	assert.Equal(t, "file", r.preview.Icon)
}

func TestOrchestrator_TooLargeSkipsUpload(t *testing.T) {
	up := &fakeUploader{}
	r := &recordingRenderer{}

	_, err := client.NewOrchestrator(up, r).Submit(context.Background(),
		&client.File{Name: "big.pdf", ContentType: "application/pdf", Content: make([]byte, domain.MaxFileSizeBytes+1)})

	assert.ErrorIs(t, err, client.ErrFileTooLarge)
	assert.Equal(t, 0, up.calls)
	assert.Equal(t, []string{"enabled=false", "error=File size exceeds the limit of 10MB", "enabled=true"}, r.events)
}

func TestOrchestrator_AbortReenablesSubmit(t *testing.T) {
	up := &fakeUploader{err: fmt.Errorf("%w: %v", client.ErrAborted, context.Canceled)}
	r := &recordingRenderer{}

	_, err := client.NewOrchestrator(up, r).Submit(context.Background(),
		&client.File{Name: "a.txt", ContentType: "text/plain", Content: []byte("a")})

	assert.True(t, errors.Is(err, client.ErrAborted))
	assert.Contains(t, r.events, "error=Upload aborted")
	assert.Equal(t, "enabled=true", r.events[len(r.events)-1])
}

func TestNewPreview(t *testing.T) {
	tests := []struct {
		contentType string
		wantIcon    string
	}{
		{"application/pdf", "file-pdf"},
		{"text/plain", "file-alt"},
		{"application/zip", "file"},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			p := client.NewPreview(&client.File{Name: "x", ContentType: tt.contentType, Content: []byte("x")})
			assert.Equal(t, tt.wantIcon, p.Icon)
			assert.Empty(t, p.DataURL)
			assert.Equal(t, "x", p.Name)
		})
	}
}

func TestMediaKindOf(t *testing.T) {
	assert.Equal(t, client.MediaImage, client.MediaKindOf("image/jpeg"))
	assert.Equal(t, client.MediaVideo, client.MediaKindOf("video/mp4"))
	assert.Equal(t, client.MediaAudio, client.MediaKindOf("audio/mpeg"))
	assert.Equal(t, client.MediaNone, client.MediaKindOf("application/pdf"))
}
