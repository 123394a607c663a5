package handlers

import (
	"fmt"
	"net/http"

	"personal-finance-backend/internal/apierror"
	"personal-finance-backend/internal/models"
	"personal-finance-backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type HistoryService interface {
	Count(term string) (int64, error)
	ListAll(page, size int, term string) ([]models.HistoryProjection, error)
	GetByID(id int64) (*models.History, error)
	Create(history *models.History, account models.Ref, tags []models.Ref) (*models.History, error)
	Update(id int64, history *models.History, account models.Ref, tags []models.Ref) (*models.History, error)
	Delete(id int64) error
}

type HistoryHandler struct {
	service HistoryService
}

func NewHistoryHandler(service HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

type historyInput struct {
	Name        *string      `json:"name"`
	PaymentDate jsonTime     `json:"paymentDate"`
	Amount      jsonInt      `json:"amount"`
	Account     models.Ref   `json:"account"`
	Tags        []models.Ref `json:"tags"`
}

func (in *historyInput) validate(prefix string) validation.Violations {
	var v validation.Violations
	v.NotBlank(prefix+".body.name", in.Name)
	v.SizeBetween(prefix+".body.name", in.Name, 1, 255)
	v.NotNull(prefix+".body.paymentDate", in.PaymentDate.valid)
	v.NotNull(prefix+".body.amount", in.Amount.valid)
	return v
}

func (in *historyInput) toModel() *models.History {
	history := &models.History{
		PaymentDate: in.PaymentDate.value,
		Amount:      int(in.Amount.value),
	}
	if in.Name != nil {
		history.Name = *in.Name
	}
	return history
}

func (h *HistoryHandler) Count(c *gin.Context) {
	n, err := h.service.Count(c.Query("term"))
	if err != nil {
		respondError(c, err)
		return
	}
	countResponse(c, n)
}

// List serves the joined projection, not the full entity.
func (h *HistoryHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	histories, err := h.service.ListAll(page, size, c.Query("term"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, histories)
}

func (h *HistoryHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "History")
	if !ok {
		return
	}
	history, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *HistoryHandler) Create(c *gin.Context) {
	var in historyInput
	if !decodeBody(c, &in) {
		return
	}
	if v := in.validate("create"); len(v) > 0 {
		respondError(c, apierror.Invalid(v))
		return
	}
	history, err := h.service.Create(in.toModel(), in.Account, in.Tags)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/histories/%d", history.ID))
	c.JSON(http.StatusCreated, history)
}

func (h *HistoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "History")
	if !ok {
		return
	}
	var in historyInput
	if !decodeBody(c, &in) {
		return
	}
	if v := in.validate("update"); len(v) > 0 {
		respondError(c, apierror.Invalid(v))
		return
	}
	history, err := h.service.Update(id, in.toModel(), in.Account, in.Tags)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *HistoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "History")
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
