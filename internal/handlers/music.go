package handlers

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/prateek/brandpost-api/pkg/dto"
)

type MusicHandler struct {
	musicService MusicServiceInterface
	uploader     AssetUploaderInterface
	maxBytes     int64
}

func NewMusicHandler(musicService MusicServiceInterface, uploader AssetUploaderInterface, maxBytes int64) *MusicHandler {
	return &MusicHandler{
		musicService: musicService,
		uploader:     uploader,
		maxBytes:     maxBytes,
	}
}

func (h *MusicHandler) List(c *drift.Context) {
	assets, err := h.musicService.List(context.Background(), c.QueryParam("category"))
	if err != nil {
		c.InternalServerError("failed to list music assets")
		return
	}

	_ = c.JSON(200, dto.OK(assets))
}

// Upload accepts one audio file plus metadata fields, pushes the file to the
// asset host, and persists the resulting URL.
func (h *MusicHandler) Upload(c *drift.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		_ = c.JSON(400, dto.Fail("missing audio file"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "audio/") {
		_ = c.JSON(400, dto.Fail("File must be an audio track"))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		_ = c.JSON(500, dto.Fail("failed to read audio file"))
		return
	}
	if int64(len(data)) > h.maxBytes {
		_ = c.JSON(400, dto.Fail("audio file exceeds the size limit"))
		return
	}

	name := c.Request.FormValue("name")
	if name == "" {
		name = header.Filename
	}
	duration, _ := strconv.Atoi(c.Request.FormValue("duration"))

	ctx := c.Request.Context()

	url, err := h.uploader.Upload(ctx, header.Filename, contentType, data)
	if err != nil {
		_ = c.JSON(400, dto.Fail(err.Error()))
		return
	}

	asset, err := h.musicService.Create(ctx, name, url, c.Request.FormValue("category"), duration)
	if err != nil {
		_ = c.JSON(500, dto.Fail("failed to save music asset"))
		return
	}

	_ = c.JSON(201, dto.OKMessage("music asset uploaded", asset))
}

func (h *MusicHandler) Delete(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid music asset id")
		return
	}

	if err := h.musicService.Delete(context.Background(), id); err != nil {
		c.InternalServerError("failed to delete music asset")
		return
	}

	_ = c.JSON(200, dto.OKMessage("music asset deleted", nil))
}
