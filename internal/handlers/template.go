package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/prateek/brandpost-api/internal/pipeline"
	"github.com/prateek/brandpost-api/pkg/dto"
)

type TemplateHandler struct {
	templateService TemplateServiceInterface
	saver           TemplateSaverInterface
	validate        *validator.Validate
}

func NewTemplateHandler(templateService TemplateServiceInterface, saver TemplateSaverInterface) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		saver:           saver,
		validate:        validator.New(),
	}
}

func (h *TemplateHandler) List(c *drift.Context) {
	templateType := c.QueryParam("templateType")
	category := c.QueryParam("category")

	templates, err := h.templateService.List(context.Background(), templateType, category)
	if err != nil {
		c.InternalServerError("failed to list templates")
		return
	}

	_ = c.JSON(200, dto.OK(templates))
}

func (h *TemplateHandler) Get(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	template, err := h.templateService.GetByID(context.Background(), id)
	if err != nil {
		c.NotFound("template not found")
		return
	}

	_ = c.JSON(200, dto.OK(template))
}

// Create runs the full save pipeline: bind the multipart form, extract and
// upload attachments, rewrite the form with hosted URLs, normalize, persist.
// Any upload failure aborts the whole save; nothing is persisted.
func (h *TemplateHandler) Create(c *drift.Context) {
	form, err := pipeline.BindMultipart(c.Request)
	if err != nil {
		_ = c.JSON(400, dto.Fail(err.Error()))
		return
	}

	ctx := c.Request.Context()

	req, err := h.saver.SaveCreate(ctx, form)
	if err != nil {
		// Validation, extraction, and upload failures all surface to the
		// operator as a single message; the form stays populated client-side.
		_ = c.JSON(400, dto.Fail(err.Error()))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		_ = c.JSON(400, dto.Fail("invalid template: "+err.Error()))
		return
	}

	template, err := h.templateService.Create(ctx, req)
	if err != nil {
		_ = c.JSON(500, dto.Fail("failed to create template"))
		return
	}

	_ = c.JSON(201, dto.OKMessage("template created", template))
}

// Update mirrors Create but with partial-update semantics: fields the form
// leaves empty keep their stored values, and a save with no new attachments
// leaves every image URL untouched.
func (h *TemplateHandler) Update(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	ctx := c.Request.Context()

	if _, err := h.templateService.GetByID(ctx, id); err != nil {
		c.NotFound("template not found")
		return
	}

	form, err := pipeline.BindMultipart(c.Request)
	if err != nil {
		_ = c.JSON(400, dto.Fail(err.Error()))
		return
	}

	req, err := h.saver.SaveUpdate(ctx, form)
	if err != nil {
		_ = c.JSON(400, dto.Fail(err.Error()))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		_ = c.JSON(400, dto.Fail("invalid template: "+err.Error()))
		return
	}

	template, err := h.templateService.Update(ctx, id, req)
	if err != nil {
		_ = c.JSON(500, dto.Fail("failed to update template"))
		return
	}

	_ = c.JSON(200, dto.OKMessage("template updated", template))
}

func (h *TemplateHandler) Delete(c *drift.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	if err := h.templateService.Delete(context.Background(), id); err != nil {
		c.InternalServerError("failed to delete template")
		return
	}

	_ = c.JSON(200, dto.OKMessage("template deleted", nil))
}
