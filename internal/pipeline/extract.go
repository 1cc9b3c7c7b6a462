package pipeline

// Attachment pairs one binary with the slot it was authored into.
type Attachment struct {
	Slot Slot
	File *File
}

// Extract walks the form and returns its binaries in a fixed order: head
// image, title-background image, then each item's primary and secondary
// image in item order, then any extras. Downstream URL correspondence
// depends on this order, so it must not change.
//
// Zero binaries is not an error here; the save driver decides whether an
// imageless save is acceptable.
func Extract(form *TemplateForm) []Attachment {
	var attachments []Attachment

	if form.HeadImage != nil {
		attachments = append(attachments, Attachment{Slot: HeadSlot(), File: form.HeadImage})
	}
	if form.TitleBackgroundImage != nil {
		attachments = append(attachments, Attachment{Slot: TitleBackgroundSlot(), File: form.TitleBackgroundImage})
	}

	for i := range form.Items {
		if form.Items[i].Image != nil {
			attachments = append(attachments, Attachment{Slot: ItemImageSlot(i), File: form.Items[i].Image})
		}
		if form.Items[i].SecondImage != nil {
			attachments = append(attachments, Attachment{Slot: ItemSecondImageSlot(i), File: form.Items[i].SecondImage})
		}
	}

	for _, extra := range form.Extra {
		if extra.File != nil {
			attachments = append(attachments, Attachment{Slot: ExtraSlot(extra.Key), File: extra.File})
		}
	}

	return attachments
}
