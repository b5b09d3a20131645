package catalog

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/martinvega/sneakhub-backend/pkg/errors"
)

type stubFetcher struct {
	page       *SneakerPage
	pageErr    error
	flash      []Sneaker
	flashErr   error
	featured   []Sneaker
	featErr    error
	brands     []string
	brandsErr  error
	categories []string
	catErr     error
	product    *Product
	productErr error
}

func (s *stubFetcher) ListSneakers(ctx context.Context, params ListParams) (*SneakerPage, error) {
	return s.page, s.pageErr
}

func (s *stubFetcher) FlashSales(ctx context.Context) ([]Sneaker, error) {
	return s.flash, s.flashErr
}

func (s *stubFetcher) Featured(ctx context.Context) ([]Sneaker, error) {
	return s.featured, s.featErr
}

func (s *stubFetcher) Brands(ctx context.Context) ([]string, error) {
	return s.brands, s.brandsErr
}

func (s *stubFetcher) Categories(ctx context.Context) ([]string, error) {
	return s.categories, s.catErr
}

func (s *stubFetcher) GetProduct(ctx context.Context, productID string) (*Product, error) {
	return s.product, s.productErr
}

func TestListSneakersDegradesToEmptyPage(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubFetcher{pageErr: errors.New("connection refused")}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page := svc.ListSneakers(context.Background(), ListParams{Page: 3, PerPage: 10})
	if page == nil || page.Sneakers == nil {
		t.Fatal("expected a non-nil empty page")
	}
	if len(page.Sneakers) != 0 {
		t.Fatalf("expected empty sneakers, got %d", len(page.Sneakers))
	}
	if page.Page != 3 || page.PerPage != 10 {
		t.Fatalf("expected requested pagination echoed back, got page=%d per_page=%d", page.Page, page.PerPage)
	}
}

func TestHomeSectionsDegradeIndependently(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubFetcher{
		flash:     []Sneaker{{ID: "f-1"}},
		featErr:   errors.New("featured down"),
		brands:    []string{"Nike"},
		brandsErr: nil,
		catErr:    errors.New("categories down"),
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	home := svc.Home(context.Background())
	if len(home.FlashSales) != 1 {
		t.Fatalf("expected flash sales to survive, got %d", len(home.FlashSales))
	}
	if len(home.Featured) != 0 || home.Featured == nil {
		t.Fatalf("expected featured degraded to empty, got %v", home.Featured)
	}
	if len(home.Brands) != 1 {
		t.Fatalf("expected brands to survive, got %v", home.Brands)
	}
	if len(home.Categories) != 0 || home.Categories == nil {
		t.Fatalf("expected categories degraded to empty, got %v", home.Categories)
	}
}

func TestSectionsDegradeToEmptyOnFailure(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubFetcher{
		flashErr:  errors.New("flash down"),
		featured:  []Sneaker{{ID: "s-1"}},
		brandsErr: errors.New("brands down"),
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if flash := svc.FlashSales(context.Background()); flash == nil || len(flash) != 0 {
		t.Fatalf("expected empty flash sales, got %v", flash)
	}
	if featured := svc.Featured(context.Background()); len(featured) != 1 {
		t.Fatalf("expected featured to pass through, got %v", featured)
	}
	if brands := svc.Brands(context.Background()); brands == nil || len(brands) != 0 {
		t.Fatalf("expected empty brands, got %v", brands)
	}
	if categories := svc.Categories(context.Background()); categories == nil {
		t.Fatal("expected non-nil categories")
	}
}

func TestGetListingAppliesStockContract(t *testing.T) {
	t.Parallel()

	product := testProduct()
	svc, err := NewService(&stubFetcher{product: product}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listing, err := svc.GetListing(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listing.VariantCount != 2 {
		t.Fatalf("expected 2 available variants, got %d", listing.VariantCount)
	}
}

func TestGetListingExcludesOutOfStockProduct(t *testing.T) {
	t.Parallel()

	product := testProduct()
	for i := range product.Variants {
		product.Variants[i].StockAvailable = 0
	}
	svc, err := NewService(&stubFetcher{product: product}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.GetListing(context.Background(), product.ID)
	if err == nil {
		t.Fatal("expected error for fully out-of-stock product")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestNewServiceRequiresClient(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil, nil); err == nil {
		t.Fatal("expected error for nil client")
	}
}
