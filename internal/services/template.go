package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/prateek/brandpost-api/internal/database"
	"github.com/prateek/brandpost-api/internal/models"
	"github.com/prateek/brandpost-api/pkg/dto"
)

type TemplateService struct {
	db *database.DB
}

func NewTemplateService(db *database.DB) *TemplateService {
	return &TemplateService{db: db}
}

const templateColumns = `id, template_type, category, title, subtitle, head_image_url,
	title_background_image_url, is_pinned, edit_type, title_text, items, created_at, updated_at`

func (s *TemplateService) List(ctx context.Context, templateType, category string) ([]models.Template, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+templateColumns+`
		FROM templates
		WHERE ($1 = '' OR template_type = $1)
		  AND ($2 = '' OR category = $2)
		ORDER BY is_pinned DESC, created_at DESC
	`, templateType, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, *t)
	}
	return templates, rows.Err()
}

func (s *TemplateService) GetByID(ctx context.Context, id uuid.UUID) (*models.Template, error) {
	row := s.db.Pool.QueryRow(ctx, `
		SELECT `+templateColumns+`
		FROM templates WHERE id = $1
	`, id)
	return scanTemplate(row)
}

func (s *TemplateService) Create(ctx context.Context, req dto.CreateTemplateRequest) (*models.Template, error) {
	items, err := json.Marshal(payloadItems(req.Templates))
	if err != nil {
		return nil, fmt.Errorf("failed to encode template items: %w", err)
	}

	row := s.db.Pool.QueryRow(ctx, `
		INSERT INTO templates (template_type, category, title, subtitle, head_image_url,
			title_background_image_url, is_pinned, edit_type, title_text, items)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+templateColumns+`
	`, req.TemplateType, req.Category, req.Title, req.Subtitle, req.HeadImageURL,
		req.TitleBackgroundImageURL, req.IsPinned, req.EditType, req.TitleText, items)
	return scanTemplate(row)
}

// Update is partial: empty strings leave the stored value alone, booleans
// are always written, and the items array is only replaced when the request
// carries one.
func (s *TemplateService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTemplateRequest) (*models.Template, error) {
	var items []byte
	if req.Templates != nil {
		encoded, err := json.Marshal(payloadItems(req.Templates))
		if err != nil {
			return nil, fmt.Errorf("failed to encode template items: %w", err)
		}
		items = encoded
	}

	row := s.db.Pool.QueryRow(ctx, `
		UPDATE templates SET
			template_type = COALESCE(NULLIF($2, ''), template_type),
			category = COALESCE(NULLIF($3, ''), category),
			title = COALESCE(NULLIF($4, ''), title),
			subtitle = COALESCE(NULLIF($5, ''), subtitle),
			head_image_url = COALESCE(NULLIF($6, ''), head_image_url),
			title_background_image_url = COALESCE(NULLIF($7, ''), title_background_image_url),
			is_pinned = $8,
			edit_type = COALESCE(NULLIF($9, ''), edit_type),
			title_text = COALESCE(NULLIF($10, ''), title_text),
			items = COALESCE($11, items),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+templateColumns+`
	`, id, req.TemplateType, req.Category, req.Title, req.Subtitle, req.HeadImageURL,
		req.TitleBackgroundImageURL, req.IsPinned, req.EditType, req.TitleText, items)
	return scanTemplate(row)
}

func (s *TemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM templates WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (*models.Template, error) {
	var t models.Template
	var title, subtitle, headImageURL, titleBackgroundImageURL, editType, titleText *string
	var items []byte

	err := row.Scan(&t.ID, &t.TemplateType, &t.Category, &title, &subtitle, &headImageURL,
		&titleBackgroundImageURL, &t.IsPinned, &editType, &titleText, &items, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	t.Title = deref(title)
	t.Subtitle = deref(subtitle)
	t.HeadImageURL = deref(headImageURL)
	t.TitleBackgroundImageURL = deref(titleBackgroundImageURL)
	t.EditType = deref(editType)
	t.TitleText = deref(titleText)

	if len(items) > 0 {
		if err := json.Unmarshal(items, &t.Items); err != nil {
			return nil, fmt.Errorf("failed to decode template items: %w", err)
		}
	}
	return &t, nil
}

func payloadItems(payloads []dto.TemplateItemPayload) []models.TemplateItem {
	items := make([]models.TemplateItem, len(payloads))
	for i, p := range payloads {
		items[i] = models.TemplateItem{
			ImageURL:          p.ImageURL,
			SecondImageURL:    p.SecondImageURL,
			IsLayered:         p.IsLayered,
			Title:             p.Title,
			Subtitle:          p.Subtitle,
			Price:             p.Price,
			Category:          p.Category,
			ProfileImagePos:   p.ProfileImagePos,
			UserDetailPos:     p.UserDetailPos,
			ExpirationDate:    p.ExpirationDate,
			EventDate:         p.EventDate,
			TargetURL:         p.TargetURL,
			ShortDescription:  p.ShortDescription,
			LongDescription:   p.LongDescription,
			ExpiryDate:        p.ExpiryDate,
			IsVisible:         p.IsVisible,
			OfferType:         p.OfferType,
			DiscountText:      p.DiscountText,
			TermsText:         p.TermsText,
			ButtonText:        p.ButtonText,
			IsBannerClickable: p.IsBannerClickable,
		}
	}
	return items
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
