package models

import (
	"time"

	"github.com/google/uuid"
)

// Template types. The type discriminates which item fields are meaningful.
const (
	TemplateTypeStory  = "story"
	TemplateTypeBanner = "banner"
)

// Edit layout modes carried over from the authoring console.
const (
	EditTypeSinglePage = "Single Page Edit"
	EditTypeFrames     = "Frames Edit"
	EditTypeMeetings   = "Meetings Edit"
)

type Template struct {
	ID                      uuid.UUID      `json:"id"`
	TemplateType            string         `json:"templateType"`
	Category                string         `json:"category"`
	Title                   string         `json:"title,omitempty"`
	Subtitle                string         `json:"subtitle,omitempty"`
	HeadImageURL            string         `json:"headImageUrl,omitempty"`
	TitleBackgroundImageURL string         `json:"titleBackgroundImageUrl,omitempty"`
	IsPinned                bool           `json:"isPinned"`
	EditType                string         `json:"editType,omitempty"`
	TitleText               string         `json:"titleText,omitempty"`
	Items                   []TemplateItem `json:"templates"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
}

// TemplateItem is one slide/frame. Story and banner items share the image
// fields; the remaining fields are a tagged union over the parent's
// templateType.
type TemplateItem struct {
	ImageURL       string `json:"imageUrl"`
	SecondImageURL string `json:"secondImageUrl,omitempty"`
	IsLayered      bool   `json:"isLayered"`
	Title          string `json:"title,omitempty"`
	Subtitle       string `json:"subtitle,omitempty"`

	// story fields
	Price              string `json:"price,omitempty"`
	Category           string `json:"category,omitempty"`
	ProfileImagePos    string `json:"profileImagePosition,omitempty"`
	UserDetailPos      string `json:"userDetailPosition,omitempty"`
	ExpirationDate     string `json:"expirationDate,omitempty"`
	EventDate          string `json:"eventDate,omitempty"`

	// banner fields
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
