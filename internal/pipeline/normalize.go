package pipeline

import "github.com/prateek/brandpost-api/pkg/dto"

// NormalizeCreate maps a rewritten form into the create request shape.
// Optional text fields ride on omitempty; item imageUrl is always present,
// falling back to an explicit empty string because the backend rejects a
// missing field but accepts an empty one.
func NormalizeCreate(form *TemplateForm) dto.CreateTemplateRequest {
	return dto.CreateTemplateRequest{
		TemplateType:            form.TemplateType,
		Category:                form.Category,
		Title:                   form.Title,
		Subtitle:                form.Subtitle,
		HeadImageURL:            form.HeadImageURL,
		TitleBackgroundImageURL: form.TitleBackgroundImageURL,
		IsPinned:                form.IsPinned,
		EditType:                form.EditType,
		TitleText:               form.TitleText,
		Templates:               normalizeItems(form.Items),
	}
}

// NormalizeUpdate maps a rewritten form into the partial-update shape.
// Booleans and item image URLs are always carried (see dto tags) so a
// partial update can never regress a stored flag to undefined.
func NormalizeUpdate(form *TemplateForm) dto.UpdateTemplateRequest {
	return dto.UpdateTemplateRequest{
		TemplateType:            form.TemplateType,
		Category:                form.Category,
		Title:                   form.Title,
		Subtitle:                form.Subtitle,
		HeadImageURL:            form.HeadImageURL,
		TitleBackgroundImageURL: form.TitleBackgroundImageURL,
		IsPinned:                form.IsPinned,
		EditType:                form.EditType,
		TitleText:               form.TitleText,
		Templates:               normalizeItems(form.Items),
	}
}

func normalizeItems(items []ItemForm) []dto.TemplateItemPayload {
	if len(items) == 0 {
		return nil
	}
	out := make([]dto.TemplateItemPayload, len(items))
	for i, item := range items {
		out[i] = item.TemplateItemPayload
	}
	return out
}
