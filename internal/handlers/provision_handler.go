package handlers

import (
	"fmt"
	"net/http"

	"personal-finance-backend/internal/apierror"
	"personal-finance-backend/internal/models"
	"personal-finance-backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type ProvisionService interface {
	Count(term string) (int64, error)
	ListAll(page, size int, term string) ([]models.Provision, error)
	GetByID(id int64) (*models.Provision, error)
	Create(provision *models.Provision) (*models.Provision, error)
	Update(id int64, provision *models.Provision) (*models.Provision, error)
	Delete(id int64) error
}

type ProvisionHandler struct {
	service ProvisionService
}

func NewProvisionHandler(service ProvisionService) *ProvisionHandler {
	return &ProvisionHandler{service: service}
}

type provisionInput struct {
	Name        *string  `json:"name"`
	InitialDate jsonTime `json:"initialDate"`
	FinalDate   jsonTime `json:"finalDate"`
	Amount      jsonInt  `json:"amount"`
}

func (in *provisionInput) validate(prefix string) validation.Violations {
	var v validation.Violations
	v.NotBlank(prefix+".body.name", in.Name)
	v.SizeBetween(prefix+".body.name", in.Name, 1, 255)
	v.NotNull(prefix+".body.initialDate", in.InitialDate.valid)
	v.NotNull(prefix+".body.amount", in.Amount.valid)
	return v
}

func (in *provisionInput) toModel() *models.Provision {
	provision := &models.Provision{
		InitialDate: in.InitialDate.value,
		FinalDate:   in.FinalDate.ptr(),
		Amount:      int(in.Amount.value),
	}
	if in.Name != nil {
		provision.Name = *in.Name
	}
	return provision
}

func (h *ProvisionHandler) Count(c *gin.Context) {
	n, err := h.service.Count(c.Query("term"))
	if err != nil {
		respondError(c, err)
		return
	}
	countResponse(c, n)
}

func (h *ProvisionHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	provisions, err := h.service.ListAll(page, size, c.Query("term"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, provisions)
}

func (h *ProvisionHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "Provision")
	if !ok {
		return
	}
	provision, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, provision)
}

func (h *ProvisionHandler) Create(c *gin.Context) {
	var in provisionInput
	if !decodeBody(c, &in) {
		return
	}
	if v := in.validate("create"); len(v) > 0 {
		respondError(c, apierror.Invalid(v))
		return
	}
	provision, err := h.service.Create(in.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/provisions/%d", provision.ID))
	c.JSON(http.StatusCreated, provision)
}

func (h *ProvisionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Provision")
	if !ok {
		return
	}
	var in provisionInput
	if !decodeBody(c, &in) {
		return
	}
	if v := in.validate("update"); len(v) > 0 {
		respondError(c, apierror.Invalid(v))
		return
	}
	provision, err := h.service.Update(id, in.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, provision)
}

func (h *ProvisionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Provision")
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
