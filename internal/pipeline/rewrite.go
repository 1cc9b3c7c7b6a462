package pipeline

// Rewrite returns a copy of the form with uploaded URLs substituted into
// their slots and the transient File refs cleared. A slot with no mapping
// keeps whatever URL it already had, so re-saving an unchanged template
// never blanks out an image.
func Rewrite(form *TemplateForm, urls map[Slot]string) *TemplateForm {
	out := *form

	if url, ok := urls[HeadSlot()]; ok {
		out.HeadImageURL = url
	}
	if url, ok := urls[TitleBackgroundSlot()]; ok {
		out.TitleBackgroundImageURL = url
	}
	out.HeadImage = nil
	out.TitleBackgroundImage = nil
	out.Extra = nil

	out.Items = make([]ItemForm, len(form.Items))
	for i, item := range form.Items {
		rewritten := item
		if url, ok := urls[ItemImageSlot(i)]; ok {
			rewritten.ImageURL = url
		}
		if url, ok := urls[ItemSecondImageSlot(i)]; ok {
			rewritten.SecondImageURL = url
		}
		rewritten.Image = nil
		rewritten.SecondImage = nil
		out.Items[i] = rewritten
	}

	return &out
}
