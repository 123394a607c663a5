package handlers

import (
	"fmt"
	"net/http"

	"personal-finance-backend/internal/apierror"
	"personal-finance-backend/internal/models"
	"personal-finance-backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type TagService interface {
	Count(term string) (int64, error)
	ListAll(page, size int, term string) ([]models.Tag, error)
	GetByID(id int64) (*models.Tag, error)
	Create(tag *models.Tag) (*models.Tag, error)
	Update(id int64, tag *models.Tag) (*models.Tag, error)
	Delete(id int64) error
}

type TagHandler struct {
	service TagService
}

func NewTagHandler(service TagService) *TagHandler {
	return &TagHandler{service: service}
}

// maxColor is the top of the unsigned 32-bit RGBA range.
const maxColor = 0xFFFFFFFF

type tagInput struct {
	Name  *string `json:"name"`
	Color jsonInt `json:"color"`
}

func (in *tagInput) validate(prefix string) validation.Violations {
	color := prefix + ".body.color"

	var v validation.Violations
	v.NotBlank(prefix+".body.name", in.Name)
	v.SizeBetween(prefix+".body.name", in.Name, 1, 255)
	switch {
	case !in.Color.valid:
		v.Add(color, "not_blank")
	case in.Color.value < 0:
		v.Add(color, "positive_or_zero")
	case in.Color.value > maxColor:
		v.Add(color, fmt.Sprintf("size_between:0:%d", int64(maxColor)))
	}
	return v
}

func (in *tagInput) toModel() *models.Tag {
	tag := &models.Tag{Color: in.Color.value}
	if in.Name != nil {
		tag.Name = *in.Name
	}
	return tag
}

func (h *TagHandler) Count(c *gin.Context) {
	n, err := h.service.Count(c.Query("term"))
	if err != nil {
		respondError(c, err)
		return
	}
	countResponse(c, n)
}

func (h *TagHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	tags, err := h.service.ListAll(page, size, c.Query("term"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "Tag")
	if !ok {
		return
	}
	tag, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) Create(c *gin.Context) {
	var in tagInput
	if !decodeBody(c, &in) {
		return
	}
	if v := in.validate("create"); len(v) > 0 {
		respondError(c, apierror.Invalid(v))
		return
	}
	tag, err := h.service.Create(in.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/tags/%d", tag.ID))
	c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Tag")
	if !ok {
		return
	}
	var in tagInput
	if !decodeBody(c, &in) {
		return
	}
	if v := in.validate("update"); len(v) > 0 {
		respondError(c, apierror.Invalid(v))
		return
	}
	tag, err := h.service.Update(id, in.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Tag")
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
