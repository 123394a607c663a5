package handlers

import (
	"fmt"
	"net/http"
	"regexp"

	"personal-finance-backend/internal/apierror"
	"personal-finance-backend/internal/models"
	"personal-finance-backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type BankService interface {
	Count(term string) (int64, error)
	ListAll(page, size int, term string) ([]models.Bank, error)
	GetByID(id int64) (*models.Bank, error)
	Create(bank *models.Bank) (*models.Bank, error)
	Update(id int64, bank *models.Bank) (*models.Bank, error)
	Delete(id int64) error
}

type BankHandler struct {
	service BankService
}

func NewBankHandler(service BankService) *BankHandler {
	return &BankHandler{service: service}
}

var bankCodePattern = regexp.MustCompile(`^[0-9]{3}$`)

type bankInput struct {
	Code *string `json:"code"`
	Name *string `json:"name"`
}

func (in *bankInput) validate(prefix string) validation.Violations {
	name := prefix + ".body.name"
	code := prefix + ".body.code"

	var v validation.Violations
	v.NotBlank(name, in.Name)
	v.SizeBetween(name, in.Name, 1, 150)
	v.NotBlank(code, in.Code)
	v.SizeBetween(code, in.Code, 3, 3)
	v.Matches(code, in.Code, bankCodePattern, "only_numbers")
	return v
}

func (in *bankInput) toModel() *models.Bank {
	bank := &models.Bank{}
	if in.Code != nil {
		bank.Code = *in.Code
	}
	if in.Name != nil {
		bank.Name = *in.Name
	}
	return bank
}

func (h *BankHandler) Count(c *gin.Context) {
	n, err := h.service.Count(c.Query("term"))
	if err != nil {
		respondError(c, err)
		return
	}
	countResponse(c, n)
}

func (h *BankHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	banks, err := h.service.ListAll(page, size, c.Query("term"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, banks)
}

func (h *BankHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "Bank")
	if !ok {
		return
	}
	bank, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bank)
}

func (h *BankHandler) Create(c *gin.Context) {
	var in bankInput
	if !decodeBody(c, &in) {
		return
	}
	if v := in.validate("create"); len(v) > 0 {
		respondError(c, apierror.Invalid(v))
		return
	}
	bank, err := h.service.Create(in.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/banks/%d", bank.ID))
	c.JSON(http.StatusCreated, bank)
}

func (h *BankHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Bank")
	if !ok {
		return
	}
	var in bankInput
	if !decodeBody(c, &in) {
		return
	}
	if v := in.validate("update"); len(v) > 0 {
		respondError(c, apierror.Invalid(v))
		return
	}
	bank, err := h.service.Update(id, in.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bank)
}

func (h *BankHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Bank")
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
