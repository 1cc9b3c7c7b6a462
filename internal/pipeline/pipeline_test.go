package pipeline

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSaveCreate_AllOrNothing(t *testing.T) {
	// One failing upload must abort the whole save; the returned request is
	// the zero value so nothing half-rewritten can reach the backend.
	uploader := &fakeUploader{upload: func(filename string) (string, error) {
		if filename == "b.png" {
			return "", errors.New("connection reset")
		}
		return "https://cdn.example.com/" + filename, nil
	}}
	saver := NewSaver(uploader, testMaxBytes, testLogger())

	form := &TemplateForm{
		TemplateType: "story",
		Category:     "festival",
		HeadImage:    pngFile("a.png"),
		Items: []ItemForm{
			{Image: pngFile("b.png")},
		},
	}

	req, err := saver.SaveCreate(context.Background(), form)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "File 2: connection reset")
	assert.Empty(t, req.Templates)
	assert.Empty(t, req.HeadImageURL)
}

func TestSaveCreate_RewritesUploadedURLs(t *testing.T) {
	uploader := &fakeUploader{upload: func(filename string) (string, error) {
		return "https://cdn.example.com/" + filename, nil
	}}
	saver := NewSaver(uploader, testMaxBytes, testLogger())

	form := &TemplateForm{
		TemplateType: "story",
		Category:     "festival",
		HeadImage:    pngFile("head.png"),
		Items: []ItemForm{
			{Image: pngFile("slide.png")},
			{TemplateItemPayload: itemPayload("https://x/old.png")},
		},
	}

	req, err := saver.SaveCreate(context.Background(), form)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/head.png", req.HeadImageURL)
	require.Len(t, req.Templates, 2)
	assert.Equal(t, "https://cdn.example.com/slide.png", req.Templates[0].ImageURL)
	assert.Equal(t, "https://x/old.png", req.Templates[1].ImageURL)
}

func TestSaveCreate_NoImagesRejected(t *testing.T) {
	uploader := &fakeUploader{upload: func(filename string) (string, error) {
		return "https://cdn.example.com/" + filename, nil
	}}
	saver := NewSaver(uploader, testMaxBytes, testLogger())

	form := &TemplateForm{
		TemplateType: "story",
		Category:     "festival",
		Items:        []ItemForm{{}},
	}

	_, err := saver.SaveCreate(context.Background(), form)

	require.ErrorIs(t, err, ErrNoImages)
	assert.Equal(t, int32(0), uploader.calls.Load())
}

func TestSaveCreate_ExistingURLSatisfiesImageRequirement(t *testing.T) {
	saver := NewSaver(&fakeUploader{}, testMaxBytes, testLogger())

	form := &TemplateForm{
		TemplateType: "story",
		Category:     "festival",
		Items:        []ItemForm{{TemplateItemPayload: itemPayload("https://x/kept.png")}},
	}

	req, err := saver.SaveCreate(context.Background(), form)

	require.NoError(t, err)
	assert.Equal(t, "https://x/kept.png", req.Templates[0].ImageURL)
}

func TestSaveUpdate_NoAttachmentsPassesThrough(t *testing.T) {
	// An update with no new files must not touch the uploader at all.
	uploader := &fakeUploader{upload: func(string) (string, error) {
		return "", errors.New("must not be called")
	}}
	saver := NewSaver(uploader, testMaxBytes, testLogger())

	form := &TemplateForm{
		Title: "Renamed",
		Items: []ItemForm{{TemplateItemPayload: itemPayload("https://x/old.png")}},
	}

	req, err := saver.SaveUpdate(context.Background(), form)

	require.NoError(t, err)
	assert.Equal(t, int32(0), uploader.calls.Load())
	assert.Equal(t, "Renamed", req.Title)
	assert.Equal(t, "https://x/old.png", req.Templates[0].ImageURL)
}

func TestSaveUpdate_UploadFailureAborts(t *testing.T) {
	uploader := &fakeUploader{upload: func(string) (string, error) {
		return "", errors.New("boom")
	}}
	saver := NewSaver(uploader, testMaxBytes, testLogger())

	form := &TemplateForm{
		Items: []ItemForm{{Image: pngFile("a.png")}},
	}

	_, err := saver.SaveUpdate(context.Background(), form)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "File 1: boom")
}
