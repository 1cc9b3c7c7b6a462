package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/prateek/brandpost-api/internal/config"
)

// User-facing messages for the two transport failures worth distinguishing:
// a stalled/aborted upload versus the host falling over.
const (
	MsgUploadTimeout   = "upload timed out - the file may be too large or the connection too slow"
	MsgHostUnavailable = "asset host error - please try again later"
)

// Client uploads media to the asset host and returns hosted URLs. Uploads of
// large media get a generous timeout; callers pass a context on top of that.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
	log     *logrus.Logger
}

type uploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
}

func NewClient(cfg config.AssetHostConfig, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		key:     cfg.Key,
		http:    &http.Client{Timeout: cfg.UploadTimeout},
		log:     log,
	}
}

// Upload sends one file as multipart form data. The object key is a fresh
// ulid with the original extension so repeated uploads never collide.
func (c *Client) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	objectKey := ulid.Make().String() + path.Ext(filename)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", objectKey)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.log.WithField("file", filename).Warn("asset upload timed out")
			return "", errors.New(MsgUploadTimeout)
		}
		c.log.WithField("file", filename).WithError(err).Error("asset upload failed")
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		c.log.WithFields(logrus.Fields{"file": filename, "status": resp.StatusCode}).Error("asset host returned server error")
		return "", errors.New(MsgHostUnavailable)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unexpected upload response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated || !parsed.Success {
		if parsed.Message != "" {
			return "", errors.New(parsed.Message)
		}
		return "", fmt.Errorf("upload failed with status %d", resp.StatusCode)
	}

	if parsed.Data.URL == "" {
		return "", errors.New("asset host returned no url")
	}

	c.log.WithFields(logrus.Fields{"file": filename, "url": parsed.Data.URL, "bytes": len(data)}).Info("uploaded asset")
	return parsed.Data.URL, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
