package handlers

import (
	"fmt"
	"net/http"

	"personal-finance-backend/internal/apierror"
	"personal-finance-backend/internal/models"
	"personal-finance-backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type AccountService interface {
	Count(term string) (int64, error)
	ListAll(page, size int, term string) ([]models.Account, error)
	GetByID(id int64) (*models.Account, error)
	Create(account *models.Account, bank models.Ref) (*models.Account, error)
	Update(id int64, account *models.Account, bank models.Ref) (*models.Account, error)
	Delete(id int64) error
}

type AccountHandler struct {
	service AccountService
}

func NewAccountHandler(service AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

type accountInput struct {
	Name        *string             `json:"name"`
	Type        *models.AccountType `json:"type"`
	Bank        models.Ref          `json:"bank"`
	Branch      *string             `json:"branch"`
	Number      *string             `json:"number"`
	CreditLimit jsonInt             `json:"creditLimit"`
}

func (in *accountInput) validate(prefix string) validation.Violations {
	var v validation.Violations
	v.NotBlank(prefix+".body.name", in.Name)
	v.SizeBetween(prefix+".body.name", in.Name, 1, 255)
	v.NotNull(prefix+".body.type", in.Type != nil)
	v.SizeBetween(prefix+".body.branch", in.Branch, 1, 255)
	v.SizeBetween(prefix+".body.number", in.Number, 1, 255)
	v.PositiveOrZero(prefix+".body.creditLimit", in.CreditLimit.ptr())
	return v
}

func (in *accountInput) toModel() *models.Account {
	account := &models.Account{
		Branch: in.Branch,
		Number: in.Number,
	}
	if in.Name != nil {
		account.Name = *in.Name
	}
	if in.Type != nil {
		account.Type = *in.Type
	}
	if in.CreditLimit.valid {
		account.CreditLimit = int(in.CreditLimit.value)
	}
	return account
}

func (h *AccountHandler) Count(c *gin.Context) {
	n, err := h.service.Count(c.Query("term"))
	if err != nil {
		respondError(c, err)
		return
	}
	countResponse(c, n)
}

func (h *AccountHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	accounts, err := h.service.ListAll(page, size, c.Query("term"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *AccountHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "Account")
	if !ok {
		return
	}
	account, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) Create(c *gin.Context) {
	var in accountInput
	if !decodeBody(c, &in) {
		return
	}
	if v := in.validate("create"); len(v) > 0 {
		respondError(c, apierror.Invalid(v))
		return
	}
	account, err := h.service.Create(in.toModel(), in.Bank)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/accounts/%d", account.ID))
	c.JSON(http.StatusCreated, account)
}

func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "Account")
	if !ok {
		return
	}
	var in accountInput
	if !decodeBody(c, &in) {
		return
	}
	if v := in.validate("update"); len(v) > 0 {
		respondError(c, apierror.Invalid(v))
		return
	}
	account, err := h.service.Update(id, in.toModel(), in.Bank)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "Account")
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
