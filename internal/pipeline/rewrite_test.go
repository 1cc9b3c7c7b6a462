package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewrite_SubstitutesUploadedURLs(t *testing.T) {
	form := &TemplateForm{
		HeadImage: pngFile("head.png"),
		Items: []ItemForm{
			{Image: pngFile("a.png")},
			{TemplateItemPayload: itemPayload("https://x/old.png")},
		},
	}

	urls := map[Slot]string{
		HeadSlot():      "https://x/new-head.png",
		ItemImageSlot(0): "https://x/new-0.png",
	}

	out := Rewrite(form, urls)

	assert.Equal(t, "https://x/new-head.png", out.HeadImageURL)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "https://x/new-0.png", out.Items[0].ImageURL)
	// item 1 had no new upload; its stored URL survives untouched
	assert.Equal(t, "https://x/old.png", out.Items[1].ImageURL)

	assert.Nil(t, out.HeadImage)
	assert.Nil(t, out.Items[0].Image)
}

func TestRewrite_NoOpIdempotence(t *testing.T) {
	form := &TemplateForm{
		HeadImageURL:            "https://x/head.png",
		TitleBackgroundImageURL: "https://x/bg.png",
		Items: []ItemForm{
			{TemplateItemPayload: itemPayload("https://x/0.png")},
			{TemplateItemPayload: itemPayload("https://x/1.png")},
		},
	}

	out := Rewrite(form, nil)

	assert.Equal(t, form.HeadImageURL, out.HeadImageURL)
	assert.Equal(t, form.TitleBackgroundImageURL, out.TitleBackgroundImageURL)
	for i := range form.Items {
		assert.Equal(t, form.Items[i].ImageURL, out.Items[i].ImageURL)
	}
}

func TestRewrite_SecondImage(t *testing.T) {
	form := &TemplateForm{
		Items: []ItemForm{
			{Image: pngFile("a.png"), SecondImage: pngFile("a2.png")},
		},
	}
	form.Items[0].IsLayered = true

	out := Rewrite(form, map[Slot]string{
		ItemImageSlot(0):       "https://x/a.png",
		ItemSecondImageSlot(0): "https://x/a2.png",
	})

	assert.Equal(t, "https://x/a.png", out.Items[0].ImageURL)
	assert.Equal(t, "https://x/a2.png", out.Items[0].SecondImageURL)
	assert.True(t, out.Items[0].IsLayered)
}

func TestRewrite_DoesNotMutateInput(t *testing.T) {
	form := &TemplateForm{
		HeadImage: pngFile("head.png"),
		Items:     []ItemForm{{Image: pngFile("a.png")}},
	}

	_ = Rewrite(form, map[Slot]string{HeadSlot(): "https://x/h.png"})

	assert.NotNil(t, form.HeadImage)
	assert.NotNil(t, form.Items[0].Image)
	assert.Empty(t, form.HeadImageURL)
}
