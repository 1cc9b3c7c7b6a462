package assets

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateek/brandpost-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	client := NewClient(config.AssetHostConfig{
		URL:           server.URL,
		Key:           "test-key",
		UploadTimeout: timeout,
	}, log)
	return client, server
}

func TestUpload_Success(t *testing.T) {
	var gotAuth, gotField, gotFilename string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseMultipartForm(32<<20))
		for field, headers := range r.MultipartForm.File {
			gotField = field
			gotFilename = headers[0].Filename
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"url": "https://cdn.example.com/abc.png"}}`))
	}, 5*time.Second)

	url, err := client.Upload(context.Background(), "photo.png", "image/png", []byte{0x89, 'P', 'N', 'G'})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/abc.png", url)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "file", gotField)
	// object key is a fresh ulid keeping the original extension
	assert.True(t, strings.HasSuffix(gotFilename, ".png"), "got %q", gotFilename)
	assert.NotEqual(t, "photo.png", gotFilename)
}

func TestUpload_ServerErrorMapsToFriendlyMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, 5*time.Second)

	_, err := client.Upload(context.Background(), "photo.png", "image/png", []byte{1})

	require.Error(t, err)
	assert.Equal(t, MsgHostUnavailable, err.Error())
}

func TestUpload_HostMessagePassesThrough(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success": false, "message": "unsupported media type"}`))
	}, 5*time.Second)

	_, err := client.Upload(context.Background(), "photo.png", "image/png", []byte{1})

	require.Error(t, err)
	assert.Equal(t, "unsupported media type", err.Error())
}

func TestUpload_TimeoutMapsToFriendlyMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}, 50*time.Millisecond)

	_, err := client.Upload(context.Background(), "photo.png", "image/png", []byte{1})

	require.Error(t, err)
	assert.Equal(t, MsgUploadTimeout, err.Error())
}

func TestUpload_ContextDeadlineMapsToTimeout(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Upload(ctx, "photo.png", "image/png", []byte{1})

	require.Error(t, err)
	assert.Equal(t, MsgUploadTimeout, err.Error())
}

func TestUpload_MissingURLRejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": {}}`))
	}, 5*time.Second)

	_, err := client.Upload(context.Background(), "photo.png", "image/png", []byte{1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no url")
}
