package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	catalogsvc "github.com/martinvega/sneakhub-backend/internal/catalog"
	pkgerrors "github.com/martinvega/sneakhub-backend/pkg/errors"
)

type stubCatalogService struct {
	page       *catalogsvc.SneakerPage
	listing    *catalogsvc.Listing
	listingErr error
	home       *catalogsvc.Home
	lastParams catalogsvc.ListParams
	lastID     string
}

func (s *stubCatalogService) ListSneakers(ctx context.Context, params catalogsvc.ListParams) *catalogsvc.SneakerPage {
	s.lastParams = params
	return s.page
}

func (s *stubCatalogService) FlashSales(ctx context.Context) []catalogsvc.Sneaker {
	return []catalogsvc.Sneaker{}
}

func (s *stubCatalogService) Featured(ctx context.Context) []catalogsvc.Sneaker {
	return []catalogsvc.Sneaker{}
}

func (s *stubCatalogService) Brands(ctx context.Context) []string {
	return []string{"Nike"}
}

func (s *stubCatalogService) Categories(ctx context.Context) []string {
	return []string{"running"}
}

func (s *stubCatalogService) GetListing(ctx context.Context, productID string) (*catalogsvc.Listing, error) {
	s.lastID = productID
	return s.listing, s.listingErr
}

func (s *stubCatalogService) Home(ctx context.Context) *catalogsvc.Home {
	return s.home
}

func withProductParam(req *http.Request, productID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("productId", productID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestListSneakersForwardsParams(t *testing.T) {
	service := &stubCatalogService{page: &catalogsvc.SneakerPage{Sneakers: []catalogsvc.Sneaker{}, Page: 2, PerPage: 10, TotalPages: 1}}
	handler := ListSneakers(service, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/sneakers?page=2&per_page=10&search=zoom&brand=Nike&category=running", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if service.lastParams.Page != 2 || service.lastParams.PerPage != 10 {
		t.Fatalf("pagination did not flow through: %+v", service.lastParams)
	}
	if service.lastParams.Search != "zoom" || service.lastParams.Brand != "Nike" || service.lastParams.Category != "running" {
		t.Fatalf("filters did not flow through: %+v", service.lastParams)
	}
}

func TestListSneakersRejectsBadPagination(t *testing.T) {
	handler := ListSneakers(&stubCatalogService{page: &catalogsvc.SneakerPage{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/sneakers?page=abc", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestProductListingSuccess(t *testing.T) {
	listing := &catalogsvc.Listing{
		Product:      catalogsvc.Product{ID: "p-1", Name: "Air Zoom"},
		TotalStock:   3,
		MinPrice:     decimal.RequireFromString("40"),
		VariantCount: 1,
	}
	service := &stubCatalogService{listing: listing}
	handler := ProductListing(service, nil)

	req := withProductParam(httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/p-1", nil), "p-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if service.lastID != "p-1" {
		t.Fatalf("expected product id to flow through, got %q", service.lastID)
	}

	var envelope struct {
		Data catalogsvc.Listing `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Product.ID != "p-1" || envelope.Data.TotalStock != 3 {
		t.Fatalf("unexpected listing: %+v", envelope.Data)
	}
}

func TestProductListingNotFound(t *testing.T) {
	service := &stubCatalogService{listingErr: pkgerrors.New(pkgerrors.CodeNotFound, "product has no available variants")}
	handler := ProductListing(service, nil)

	req := withProductParam(httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/p-404", nil), "p-404")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestHomeServesAggregate(t *testing.T) {
	service := &stubCatalogService{home: &catalogsvc.Home{
		FlashSales: []catalogsvc.Sneaker{},
		Featured:   []catalogsvc.Sneaker{},
		Brands:     []string{"Nike"},
		Categories: []string{"running"},
	}}
	handler := Home(service, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/home", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data catalogsvc.Home `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Brands) != 1 || envelope.Data.Brands[0] != "Nike" {
		t.Fatalf("unexpected home payload: %+v", envelope.Data)
	}
}

func TestBrandsAndCategoriesServeSections(t *testing.T) {
	service := &stubCatalogService{}

	rec := httptest.NewRecorder()
	Brands(service, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/brands", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("brands: expected 200 got %d", rec.Code)
	}

	var brandsEnvelope struct {
		Data struct {
			Brands []string `json:"brands"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&brandsEnvelope); err != nil {
		t.Fatalf("decode brands: %v", err)
	}
	if len(brandsEnvelope.Data.Brands) != 1 {
		t.Fatalf("unexpected brands: %+v", brandsEnvelope.Data.Brands)
	}

	rec = httptest.NewRecorder()
	Categories(service, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/categories", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("categories: expected 200 got %d", rec.Code)
	}
}
