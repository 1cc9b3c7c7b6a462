package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/prateek/brandpost-api/pkg/dto"
)

// ErrNoImages is returned when a create-flow save carries no usable image at
// all - neither a fresh attachment nor a pre-existing URL.
var ErrNoImages = errors.New("at least one image is required")

// Saver runs one save operation end to end: extract, upload, rewrite,
// normalize. Each invocation owns its attachments and URL mapping; nothing
// is retried and nothing is persisted unless every upload succeeded.
type Saver struct {
	orchestrator *Orchestrator
	log          *logrus.Logger
}

func NewSaver(uploader Uploader, maxBytes int64, log *logrus.Logger) *Saver {
	return &Saver{
		orchestrator: NewOrchestrator(uploader, maxBytes),
		log:          log,
	}
}

// SaveCreate produces the normalized create payload for an authored form.
func (s *Saver) SaveCreate(ctx context.Context, form *TemplateForm) (dto.CreateTemplateRequest, error) {
	attachments := Extract(form)

	if !hasAnyImage(form, attachments) {
		return dto.CreateTemplateRequest{}, ErrNoImages
	}

	rewritten, err := s.uploadAndRewrite(ctx, form, attachments)
	if err != nil {
		return dto.CreateTemplateRequest{}, err
	}
	return NormalizeCreate(rewritten), nil
}

// SaveUpdate produces the normalized partial-update payload. An update with
// zero new attachments is a no-op on the image fields: existing URLs pass
// through untouched.
func (s *Saver) SaveUpdate(ctx context.Context, form *TemplateForm) (dto.UpdateTemplateRequest, error) {
	attachments := Extract(form)

	rewritten, err := s.uploadAndRewrite(ctx, form, attachments)
	if err != nil {
		return dto.UpdateTemplateRequest{}, err
	}
	return NormalizeUpdate(rewritten), nil
}

func (s *Saver) uploadAndRewrite(ctx context.Context, form *TemplateForm, attachments []Attachment) (*TemplateForm, error) {
	if len(attachments) == 0 {
		return Rewrite(form, nil), nil
	}

	start := time.Now()
	result := s.orchestrator.UploadAll(ctx, attachments)
	if !result.Success {
		s.log.WithFields(logrus.Fields{
			"attachments": len(attachments),
			"errors":      len(result.Errors),
		}).Warn("template save aborted: upload failures")
		return nil, errors.New(strings.Join(result.Errors, "; "))
	}

	s.log.WithFields(logrus.Fields{
		"attachments": len(attachments),
		"duration":    time.Since(start).String(),
	}).Info("uploaded template attachments")

	return Rewrite(form, result.SlotURLs(attachments)), nil
}

func hasAnyImage(form *TemplateForm, attachments []Attachment) bool {
	if len(attachments) > 0 {
		return true
	}
	if form.HeadImageURL != "" || form.TitleBackgroundImageURL != "" {
		return true
	}
	for i := range form.Items {
		if form.Items[i].ImageURL != "" {
			return true
		}
	}
	return false
}
