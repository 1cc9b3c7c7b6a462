package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/prateek/brandpost-api/pkg/dto"
)

// File is a binary attachment taken from a multipart part. A string URL or
// data-URL preview never becomes a File; only real file parts do.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// IsImage reports whether the declared (or sniffed) media type is an image.
func (f *File) IsImage() bool {
	return strings.HasPrefix(f.effectiveContentType(), "image/")
}

func (f *File) effectiveContentType() string {
	if f.ContentType != "" && f.ContentType != "application/octet-stream" {
		return f.ContentType
	}
	return http.DetectContentType(f.Data)
}

// ItemForm is one slide/frame as authored. The wire fields come from the
// JSON payload part; the File refs are attached from multipart parts.
type ItemForm struct {
	dto.TemplateItemPayload
	Image       *File `json:"-"`
	SecondImage *File `json:"-"`
}

// ExtraFile is a stray file part the console sent under a field name the
// form does not model. Carried through so the safety-net extraction rule
// still applies.
type ExtraFile struct {
	Key  string
	File *File
}

// TemplateForm is the authored form state for either template type.
type TemplateForm struct {
	TemplateType            string     `json:"templateType"`
	Category                string     `json:"category"`
	Title                   string     `json:"title"`
	Subtitle                string     `json:"subtitle"`
	HeadImageURL            string     `json:"headImageUrl"`
	TitleBackgroundImageURL string     `json:"titleBackgroundImageUrl"`
	IsPinned                bool       `json:"isPinned"`
	EditType                string     `json:"editType"`
	TitleText               string     `json:"titleText"`
	Items                   []ItemForm `json:"templates"`

	HeadImage            *File       `json:"-"`
	TitleBackgroundImage *File       `json:"-"`
	Extra                []ExtraFile `json:"-"`
}

const (
	payloadField          = "payload"
	headImageField        = "headImage"
	titleBackgroundField  = "titleBackgroundImage"
	itemImagePrefix       = "itemImage:"
	itemSecondImagePrefix = "itemSecondImage:"
	multipartMemoryLimit  = 32 << 20
)

// BindMultipart decodes the JSON payload part into a TemplateForm and
// attaches binary parts to their slots. Unrecognized file parts whose field
// name contains "image" or "file" are kept as extras, in sorted field order.
func BindMultipart(r *http.Request) (*TemplateForm, error) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		return nil, fmt.Errorf("invalid multipart request: %w", err)
	}

	payload := r.FormValue(payloadField)
	if payload == "" {
		return nil, fmt.Errorf("missing payload field")
	}

	var form TemplateForm
	if err := json.Unmarshal([]byte(payload), &form); err != nil {
		return nil, fmt.Errorf("invalid payload json: %w", err)
	}

	if r.MultipartForm == nil {
		return &form, nil
	}

	fields := make([]string, 0, len(r.MultipartForm.File))
	for field := range r.MultipartForm.File {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		headers := r.MultipartForm.File[field]
		if len(headers) == 0 {
			continue
		}
		file, err := readPart(headers[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read file part %q: %w", field, err)
		}

		switch {
		case field == headImageField:
			form.HeadImage = file
		case field == titleBackgroundField:
			form.TitleBackgroundImage = file
		case strings.HasPrefix(field, itemImagePrefix):
			i, err := itemIndex(field, itemImagePrefix, len(form.Items))
			if err != nil {
				return nil, err
			}
			form.Items[i].Image = file
		case strings.HasPrefix(field, itemSecondImagePrefix):
			i, err := itemIndex(field, itemSecondImagePrefix, len(form.Items))
			if err != nil {
				return nil, err
			}
			form.Items[i].SecondImage = file
		default:
			lower := strings.ToLower(field)
			if strings.Contains(lower, "image") || strings.Contains(lower, "file") {
				form.Extra = append(form.Extra, ExtraFile{Key: field, File: file})
			}
		}
	}

	return &form, nil
}

func itemIndex(field, prefix string, n int) (int, error) {
	i, err := strconv.Atoi(strings.TrimPrefix(field, prefix))
	if err != nil || i < 0 {
		return 0, fmt.Errorf("invalid item file field %q", field)
	}
	if i >= n {
		return 0, fmt.Errorf("file part %q references a missing item", field)
	}
	return i, nil
}

func readPart(header *multipart.FileHeader) (*File, error) {
	part, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		return nil, err
	}

	return &File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}
