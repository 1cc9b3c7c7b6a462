package pipeline

import (
	"context"
	"fmt"
	"sync"
)

// Uploader is the asset-host edge. *assets.Client satisfies it.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

// Result aggregates one orchestration. URLs is index-aligned with the input
// attachments; Success is true iff every attachment uploaded cleanly. On
// failure the caller must abort the whole save - no partial submission.
type Result struct {
	Success bool
	URLs    []string
	Errors  []string
}

// SlotURLs re-keys the ordered URLs by slot. Only meaningful on success.
func (r Result) SlotURLs(attachments []Attachment) map[Slot]string {
	urls := make(map[Slot]string, len(r.URLs))
	for i, url := range r.URLs {
		if i < len(attachments) && url != "" {
			urls[attachments[i].Slot] = url
		}
	}
	return urls
}

// Orchestrator fans uploads out concurrently and reassembles results in the
// original attachment order regardless of completion order.
type Orchestrator struct {
	uploader Uploader
	maxBytes int64
}

func NewOrchestrator(uploader Uploader, maxBytes int64) *Orchestrator {
	return &Orchestrator{uploader: uploader, maxBytes: maxBytes}
}

// UploadAll validates every attachment before any network dispatch: a wrong
// media type or an oversize file fails the batch without a single request
// going out. Valid batches upload concurrently, one goroutine per file; the
// per-template count is small so no cap is needed.
func (o *Orchestrator) UploadAll(ctx context.Context, attachments []Attachment) Result {
	errs := make([]string, len(attachments))
	invalid := false

	for i, att := range attachments {
		if !att.File.IsImage() {
			errs[i] = "File must be an image"
			invalid = true
			continue
		}
		if att.File.Size > o.maxBytes {
			errs[i] = fmt.Sprintf("File exceeds the %d MB size limit", o.maxBytes>>20)
			invalid = true
		}
	}

	if invalid {
		return Result{Success: false, Errors: labelErrors(errs)}
	}

	urls := make([]string, len(attachments))
	var wg sync.WaitGroup

	for i, att := range attachments {
		wg.Add(1)
		go func(i int, att Attachment) {
			defer wg.Done()
			url, err := o.uploader.Upload(ctx, att.File.Name, att.File.effectiveContentType(), att.File.Data)
			if err != nil {
				errs[i] = err.Error()
				return
			}
			urls[i] = url
		}(i, att)
	}
	wg.Wait()

	labeled := labelErrors(errs)
	if len(labeled) > 0 {
		return Result{Success: false, URLs: urls, Errors: labeled}
	}
	return Result{Success: true, URLs: urls}
}

// labelErrors keeps only the failed positions, labeled 1-based so the
// operator can tell which attachment broke.
func labelErrors(errs []string) []string {
	var labeled []string
	for i, msg := range errs {
		if msg != "" {
			labeled = append(labeled, fmt.Sprintf("File %d: %s", i+1, msg))
		}
	}
	return labeled
}
