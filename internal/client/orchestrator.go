package client

import (
	"context"

	"uplink/internal/domain"
)

// Renderer displays the state of an upload attempt.
type Renderer interface {
	SetSubmitEnabled(enabled bool)
	ResetProgress()
	ShowPreview(p Preview)
	SetProgress(percent int)
	ShowResult(result *domain.UploadResult)
	ShowError(msg string)
}

// Uploader sends one file to the service.
type Uploader interface {
	Upload(ctx context.Context, f *File, onProgress ProgressFunc) (*domain.UploadResult, error)
}

// Orchestrator drives a single upload attempt against a Renderer.
type Orchestrator struct {
	uploader Uploader
	renderer Renderer
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(uploader Uploader, renderer Renderer) *Orchestrator {
	return &Orchestrator{uploader: uploader, renderer: renderer}
}

// Submit uploads f. The submit control is disabled for the duration of the
// attempt and always re-enabled afterwards. Cancelling ctx aborts the upload.
func (o *Orchestrator) Submit(ctx context.Context, f *File) (*domain.UploadResult, error) {
	o.renderer.SetSubmitEnabled(false)
	defer o.renderer.SetSubmitEnabled(true)

	if err := CheckFile(f); err != nil {
		o.renderer.ShowError(Message(err))
		return nil, err
	}

	o.renderer.ResetProgress()
	o.renderer.ShowPreview(NewPreview(f))

	result, err := o.uploader.Upload(ctx, f, o.renderer.SetProgress)
	if err != nil {
		o.renderer.ShowError(Message(err))
		return nil, err
	}

	o.renderer.ShowResult(result)
	return result, nil
}
