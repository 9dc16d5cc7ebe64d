package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storekit/commerce-api/internal/core/domain"
	"github.com/storekit/commerce-api/internal/core/ports"
)

type stubProductService struct {
	listFn   func(ctx context.Context) ([]*domain.Product, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	createFn func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
	updateFn func(ctx context.Context, id string, update ports.ProductUpdate) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) Update(ctx context.Context, id string, update ports.ProductUpdate) (*domain.Product, error) {
	return s.updateFn(ctx, id, update)
}

func (s *stubProductService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	return ve.Fields
}

func TestProductHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(_ context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			if input.Name != "Keyboard" || input.Price != 59.9 || input.Stock != 12 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Product{
				ID: "prod_1", Name: input.Name, Description: input.Description,
				Price: input.Price, Stock: input.Stock, CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/api/products", `{"name":"Keyboard","description":"mechanical","price":59.9,"stock":12}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "prod_1" || resp["name"] != "Keyboard" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp["description"] != "mechanical" {
		t.Fatalf("expected description in payload, got %v", resp["description"])
	}
}

func TestProductHandler_Create_ZeroValuesAccepted(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(_ context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			if input.Price != 0 || input.Stock != 0 {
				t.Fatalf("zero values must pass through, got %+v", input)
			}
			return &domain.Product{ID: "prod_1", Name: input.Name}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/api/products", `{"name":"Freebie","price":0,"stock":0}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(context.Context, ports.CreateProductInput) (*domain.Product, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	c, _ := jsonContext(e, http.MethodPost, "/api/products", `{}`)
	fields := validationFields(t, h.Create(c))

	for _, f := range []string{"name", "price", "stock"} {
		if _, ok := fields[f]; !ok {
			t.Errorf("expected a message for %q, got %v", f, fields)
		}
	}
	if fields["name"] != "name is required" {
		t.Errorf("name message: got %q", fields["name"])
	}
}

func TestProductHandler_Create_NegativePrice(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{}
	h := NewProductHandler(stub)

	c, _ := jsonContext(e, http.MethodPost, "/api/products", `{"name":"Keyboard","price":-1,"stock":5}`)
	fields := validationFields(t, h.Create(c))

	if fields["price"] != "price must be at least 0" {
		t.Errorf("price message: got %q", fields["price"])
	}
}

func TestProductHandler_Create_WrongFieldType(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{}
	h := NewProductHandler(stub)

	// A string where a number belongs is a field-level problem, not a 400.
	c, _ := jsonContext(e, http.MethodPost, "/api/products", `{"name":"Keyboard","price":"cheap","stock":5}`)
	fields := validationFields(t, h.Create(c))

	if fields["price"] != "price must be a number" {
		t.Errorf("price message: got %q", fields["price"])
	}
}

func TestProductHandler_Create_MalformedJSON(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{}
	h := NewProductHandler(stub)

	c, _ := jsonContext(e, http.MethodPost, "/api/products", `not-json`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected a 400, got %v", err)
	}
}

func TestProductHandler_Update_PartialPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		updateFn: func(_ context.Context, id string, update ports.ProductUpdate) (*domain.Product, error) {
			if id != "prod_1" {
				t.Fatalf("unexpected id: %q", id)
			}
			if update.Stock == nil || *update.Stock != 3 {
				t.Fatalf("expected stock=3 in update, got %+v", update)
			}
			if update.Name != nil || update.Description != nil || update.Price != nil {
				t.Fatalf("absent fields must stay nil, got %+v", update)
			}
			return &domain.Product{ID: id, Name: "Keyboard", Stock: 3}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := jsonContext(e, http.MethodPut, "/api/products/prod_1", `{"stock":3}`)
	c.SetParamNames("id")
	c.SetParamValues("prod_1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Update_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		updateFn: func(context.Context, string, ports.ProductUpdate) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, _ := jsonContext(e, http.MethodPut, "/api/products/missing", `{"stock":3}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Update(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		getFn: func(context.Context, string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, _ := jsonContext(e, http.MethodGet, "/api/products/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_List_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		listFn: func(context.Context) ([]*domain.Product, error) {
			return []*domain.Product{
				{ID: "prod_1", Name: "Keyboard"},
				{ID: "prod_2", Name: "Mouse"},
			}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := jsonContext(e, http.MethodGet, "/api/products", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 products, got %d", len(resp))
	}
}

func TestProductHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	called := false
	stub := &stubProductService{
		deleteFn: func(_ context.Context, id string) error {
			called = true
			if id != "prod_1" {
				t.Fatalf("unexpected id: %q", id)
			}
			return nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := jsonContext(e, http.MethodDelete, "/api/products/prod_1", "")
	c.SetParamNames("id")
	c.SetParamValues("prod_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("service was not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Product deleted successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestProductHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		deleteFn: func(context.Context, string) error {
			return domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, _ := jsonContext(e, http.MethodDelete, "/api/products/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
