package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	calls  atomic.Int32
	upload func(filename string) (string, error)
}

func (f *fakeUploader) Upload(_ context.Context, filename, _ string, _ []byte) (string, error) {
	f.calls.Add(1)
	return f.upload(filename)
}

const testMaxBytes = 20 << 20

func TestUploadAll_OrderPreservedUnderOutOfOrderCompletion(t *testing.T) {
	// Earlier attachments finish last; the result slice must still follow
	// attachment order, not completion order.
	uploader := &fakeUploader{upload: func(filename string) (string, error) {
		switch filename {
		case "first.png":
			time.Sleep(30 * time.Millisecond)
		case "second.png":
			time.Sleep(10 * time.Millisecond)
		}
		return "https://cdn.example.com/" + filename, nil
	}}
	o := NewOrchestrator(uploader, testMaxBytes)

	attachments := []Attachment{
		{Slot: HeadSlot(), File: pngFile("first.png")},
		{Slot: ItemImageSlot(0), File: pngFile("second.png")},
		{Slot: ItemImageSlot(1), File: pngFile("third.png")},
	}

	result := o.UploadAll(context.Background(), attachments)

	require.True(t, result.Success)
	require.Equal(t, []string{
		"https://cdn.example.com/first.png",
		"https://cdn.example.com/second.png",
		"https://cdn.example.com/third.png",
	}, result.URLs)

	urls := result.SlotURLs(attachments)
	assert.Equal(t, "https://cdn.example.com/first.png", urls[HeadSlot()])
	assert.Equal(t, "https://cdn.example.com/second.png", urls[ItemImageSlot(0)])
	assert.Equal(t, "https://cdn.example.com/third.png", urls[ItemImageSlot(1)])
}

func TestUploadAll_PartialFailure(t *testing.T) {
	uploader := &fakeUploader{upload: func(filename string) (string, error) {
		if filename == "bad.png" {
			return "", errors.New("connection reset")
		}
		return "https://cdn.example.com/" + filename, nil
	}}
	o := NewOrchestrator(uploader, testMaxBytes)

	result := o.UploadAll(context.Background(), []Attachment{
		{Slot: HeadSlot(), File: pngFile("good.png")},
		{Slot: ItemImageSlot(0), File: pngFile("bad.png")},
	})

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "File 2: connection reset", result.Errors[0])
}

func TestUploadAll_RejectsNonImageBeforeDispatch(t *testing.T) {
	uploader := &fakeUploader{upload: func(string) (string, error) {
		return "https://cdn.example.com/x", nil
	}}
	o := NewOrchestrator(uploader, testMaxBytes)

	pdf := &File{Name: "doc.pdf", ContentType: "application/pdf", Size: 8, Data: []byte("%PDF-1.4")}
	result := o.UploadAll(context.Background(), []Attachment{
		{Slot: HeadSlot(), File: pdf},
	})

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "File 1: File must be an image", result.Errors[0])
	assert.Zero(t, uploader.calls.Load(), "no network dispatch may happen for an invalid batch")
}

func TestUploadAll_RejectsOversizeBeforeDispatch(t *testing.T) {
	uploader := &fakeUploader{upload: func(string) (string, error) {
		return "https://cdn.example.com/x", nil
	}}
	o := NewOrchestrator(uploader, testMaxBytes)

	big := pngFile("big.png")
	big.Size = 25 << 20

	result := o.UploadAll(context.Background(), []Attachment{
		{Slot: HeadSlot(), File: pngFile("ok.png")},
		{Slot: ItemImageSlot(0), File: big},
	})

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, fmt.Sprintf("File 2: File exceeds the %d MB size limit", testMaxBytes>>20), result.Errors[0])
	assert.Zero(t, uploader.calls.Load())
}

func TestUploadAll_MultipleFailuresAllReported(t *testing.T) {
	uploader := &fakeUploader{upload: func(filename string) (string, error) {
		return "", errors.New("boom")
	}}
	o := NewOrchestrator(uploader, testMaxBytes)

	result := o.UploadAll(context.Background(), []Attachment{
		{Slot: HeadSlot(), File: pngFile("a.png")},
		{Slot: ItemImageSlot(0), File: pngFile("b.png")},
	})

	assert.False(t, result.Success)
	assert.Equal(t, []string{"File 1: boom", "File 2: boom"}, result.Errors)
}
