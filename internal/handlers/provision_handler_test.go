package handlers

import (
	"net/http"
	"strings"
	"testing"

	"personal-finance-backend/internal/apierror"
	"personal-finance-backend/internal/models"
	"personal-finance-backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type fakeProvisionService struct {
	provisions map[int64]*models.Provision
	nextID     int64
}

var _ ProvisionService = (*fakeProvisionService)(nil)

func newFakeProvisionService() *fakeProvisionService {
	return &fakeProvisionService{provisions: map[int64]*models.Provision{}}
}

func (s *fakeProvisionService) Count(term string) (int64, error) {
	return int64(len(s.provisions)), nil
}

func (s *fakeProvisionService) ListAll(page, size int, term string) ([]models.Provision, error) {
	out := make([]models.Provision, 0)
	for _, p := range s.provisions {
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakeProvisionService) GetByID(id int64) (*models.Provision, error) {
	if p, ok := s.provisions[id]; ok {
		return p, nil
	}
	return nil, apierror.IDNotFound("Provision", id)
}

func (s *fakeProvisionService) Create(provision *models.Provision) (*models.Provision, error) {
	s.nextID++
	provision.ID = s.nextID
	provision.CreatedAt, provision.UpdatedAt = testTime, testTime
	s.provisions[provision.ID] = provision
	return provision, nil
}

func (s *fakeProvisionService) Update(id int64, provision *models.Provision) (*models.Provision, error) {
	persisted, ok := s.provisions[id]
	if !ok {
		return nil, apierror.IDNotFound("Provision", id)
	}
	persisted.Name = provision.Name
	persisted.InitialDate = provision.InitialDate
	persisted.FinalDate = provision.FinalDate
	persisted.Amount = provision.Amount
	return persisted, nil
}

func (s *fakeProvisionService) Delete(id int64) error {
	if _, ok := s.provisions[id]; !ok {
		return apierror.IDNotFound("Provision", id)
	}
	delete(s.provisions, id)
	return nil
}

func provisionRouter(s ProvisionService) *gin.Engine {
	r := gin.New()
	h := NewProvisionHandler(s)
	crudRoutes(r.Group("/provisions"), h.Count, h.List, h.GetByID, h.Create, h.Update, h.Delete)
	return r
}

func TestProvisionCreateValidation(t *testing.T) {
	long := strings.Repeat("A", 256)
	cases := []struct {
		name string
		body string
		want []string
	}{
		{
			"empty object", `{}`,
			[]string{"name=not_blank", "initialDate=not_null", "amount=not_null"},
		},
		{
			"null values",
			`{"name":null,"initialDate":null,"finalDate":null,"amount":null}`,
			[]string{"name=not_blank", "initialDate=not_null", "amount=not_null"},
		},
		{
			"empty values",
			`{"name":"","initialDate":"","finalDate":"","amount":""}`,
			[]string{
				"name=not_blank", "name=size_between:1:255",
				"initialDate=not_null", "amount=not_null",
			},
		},
		{
			"long name",
			`{"name":"` + long + `","initialDate":"2025-03-01T00:00:00Z","amount":1000}`,
			[]string{"name=size_between:1:255"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := provisionRouter(newFakeProvisionService())
			w := perform(t, r, http.MethodPost, "/provisions", tc.body)
			want := make([]validation.Violation, len(tc.want))
			for i, pair := range tc.want {
				field, message, _ := strings.Cut(pair, "=")
				want[i] = violation("create.body."+field, message)
			}
			checkError(t, w, 400, want...)
		})
	}
}

func TestProvisionCreateSuccess(t *testing.T) {
	r := provisionRouter(newFakeProvisionService())

	// finalDate is optional and stays null when omitted
	w := perform(t, r, http.MethodPost, "/provisions",
		`{"name":"Rent","initialDate":"2025-01-01T00:00:00Z","amount":-150000}`)
	if w.Code != 201 {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/provisions/1" {
		t.Fatalf("location=%q", loc)
	}
	var provision map[string]any
	decodeJSON(t, w, &provision)
	if provision["finalDate"] != nil {
		t.Fatalf("finalDate=%v want null", provision["finalDate"])
	}
	if provision["amount"] != float64(-150000) {
		t.Fatalf("amount=%v", provision["amount"])
	}
}

func TestProvisionUpdate(t *testing.T) {
	r := provisionRouter(newFakeProvisionService())

	w := perform(t, r, http.MethodPost, "/provisions",
		`{"name":"Rent","initialDate":"2025-01-01T00:00:00Z","amount":-150000}`)
	if w.Code != 201 {
		t.Fatalf("create code=%d", w.Code)
	}

	w = perform(t, r, http.MethodPut, "/provisions/1",
		`{"name":"Rent","initialDate":"2025-01-01T00:00:00Z","finalDate":"2025-12-31T00:00:00Z","amount":-160000}`)
	if w.Code != 200 {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
	var provision map[string]any
	decodeJSON(t, w, &provision)
	if provision["finalDate"] != "2025-12-31T00:00:00Z" {
		t.Fatalf("finalDate=%v", provision["finalDate"])
	}

	w = perform(t, r, http.MethodPut, "/provisions/99",
		`{"name":"Rent","initialDate":"2025-01-01T00:00:00Z","amount":0}`)
	checkError(t, w, 404, violation("Provision", "id_not_found:99"))
}

func TestProvisionDelete(t *testing.T) {
	r := provisionRouter(newFakeProvisionService())

	w := perform(t, r, http.MethodPost, "/provisions",
		`{"name":"Rent","initialDate":"2025-01-01T00:00:00Z","amount":0}`)
	if w.Code != 201 {
		t.Fatalf("create code=%d", w.Code)
	}
	if w = perform(t, r, http.MethodDelete, "/provisions/1", ""); w.Code != 204 {
		t.Fatalf("code=%d", w.Code)
	}
	w = perform(t, r, http.MethodDelete, "/provisions/1", "")
	checkError(t, w, 404, violation("Provision", "id_not_found:1"))
}
