package dto

// TemplateItemPayload is one slide/frame as the backend expects it. ImageURL
// deliberately has no omitempty: the backend rejects a missing imageUrl but
// accepts an explicit empty string. The booleans likewise stay present so a
// partial update can never silently drop a previously-true flag.
type TemplateItemPayload struct {
	ImageURL       string `json:"imageUrl"`
	SecondImageURL string `json:"secondImageUrl,omitempty"`
	IsLayered      bool   `json:"isLayered"`
	Title          string `json:"title,omitempty"`
	Subtitle       string `json:"subtitle,omitempty"`

	Price           string `json:"price,omitempty"`
	Category        string `json:"category,omitempty"`
	ProfileImagePos string `json:"profileImagePosition,omitempty"`
	UserDetailPos   string `json:"userDetailPosition,omitempty"`
	ExpirationDate  string `json:"expirationDate,omitempty"`
	EventDate       string `json:"eventDate,omitempty"`

	TargetURL         string `json:"targetUrl,omitempty"`
	ShortDescription  string `json:"shortDescription,omitempty"`
	LongDescription   string `json:"longDescription,omitempty"`
	ExpiryDate        string `json:"expiryDate,omitempty"`
	IsVisible         bool   `json:"isVisible"`
	OfferType         string `json:"offerType,omitempty"`
	DiscountText      string `json:"discountText,omitempty"`
	TermsText         string `json:"termsText,omitempty"`
	ButtonText        string `json:"buttonText,omitempty"`
	IsBannerClickable bool   `json:"isBannerClickable"`
}

type CreateTemplateRequest struct {
	TemplateType            string                `json:"templateType" validate:"required,oneof=story banner"`
	Category                string                `json:"category" validate:"required"`
	Title                   string                `json:"title,omitempty"`
	Subtitle                string                `json:"subtitle,omitempty"`
	HeadImageURL            string                `json:"headImageUrl,omitempty"`
	TitleBackgroundImageURL string                `json:"titleBackgroundImageUrl,omitempty"`
	IsPinned                bool                  `json:"isPinned"`
	EditType                string                `json:"editType,omitempty" validate:"omitempty,oneof='Single Page Edit' 'Frames Edit' 'Meetings Edit'"`
	TitleText               string                `json:"titleText,omitempty"`
	Templates               []TemplateItemPayload `json:"templates" validate:"required,min=1,dive"`
}

// UpdateTemplateRequest carries only the fields being changed; empty strings
// are omitted from the wire form. Booleans and item image URLs are the
// exception and are always present.
type UpdateTemplateRequest struct {
	TemplateType            string                `json:"templateType,omitempty" validate:"omitempty,oneof=story banner"`
	Category                string                `json:"category,omitempty"`
	Title                   string                `json:"title,omitempty"`
	Subtitle                string                `json:"subtitle,omitempty"`
	HeadImageURL            string                `json:"headImageUrl,omitempty"`
	TitleBackgroundImageURL string                `json:"titleBackgroundImageUrl,omitempty"`
	IsPinned                bool                  `json:"isPinned"`
	EditType                string                `json:"editType,omitempty"`
	TitleText               string                `json:"titleText,omitempty"`
	Templates               []TemplateItemPayload `json:"templates,omitempty" validate:"omitempty,dive"`
}
