package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek/brandpost-api/pkg/dto"
)

func itemPayload(url string) dto.TemplateItemPayload {
	return dto.TemplateItemPayload{ImageURL: url}
}

func pngFile(name string) *File {
	data := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	return &File{Name: name, ContentType: "image/png", Size: int64(len(data)), Data: data}
}

func TestExtract_Order(t *testing.T) {
	form := &TemplateForm{
		TemplateType:         "story",
		HeadImage:            pngFile("head.png"),
		TitleBackgroundImage: pngFile("bg.png"),
		Items: []ItemForm{
			{Image: pngFile("a.png"), SecondImage: pngFile("a2.png")},
			{},
			{Image: pngFile("c.png")},
		},
		Extra: []ExtraFile{{Key: "bannerImageAlt", File: pngFile("x.png")}},
	}

	attachments := Extract(form)

	require.Len(t, attachments, 6)
	assert.Equal(t, "head", attachments[0].Slot.String())
	assert.Equal(t, "titleBackground", attachments[1].Slot.String())
	assert.Equal(t, "templateImage:0", attachments[2].Slot.String())
	assert.Equal(t, "templateSecondImage:0", attachments[3].Slot.String())
	assert.Equal(t, "templateImage:2", attachments[4].Slot.String())
	assert.Equal(t, "extra:bannerImageAlt", attachments[5].Slot.String())
	assert.Equal(t, "c.png", attachments[4].File.Name)
}

func TestExtract_SecondaryFollowsPrimaryPerItem(t *testing.T) {
	form := &TemplateForm{
		Items: []ItemForm{
			{Image: pngFile("a.png")},
			{Image: pngFile("b.png"), SecondImage: pngFile("b2.png")},
		},
	}

	attachments := Extract(form)

	require.Len(t, attachments, 3)
	assert.Equal(t, ItemImageSlot(0), attachments[0].Slot)
	assert.Equal(t, ItemImageSlot(1), attachments[1].Slot)
	assert.Equal(t, ItemSecondImageSlot(1), attachments[2].Slot)
}

func TestExtract_URLsAreNotAttachments(t *testing.T) {
	// Already-uploaded URLs and previews live in the string fields; only
	// real File refs may be extracted.
	form := &TemplateForm{
		HeadImageURL: "https://cdn.example.com/head.png",
		Items: []ItemForm{
			{TemplateItemPayload: itemPayload("https://cdn.example.com/old.png")},
		},
	}

	assert.Empty(t, Extract(form))
}

func TestExtract_Empty(t *testing.T) {
	attachments := Extract(&TemplateForm{})
	assert.Empty(t, attachments)
}
