package catalog

import (
	"context"
	"fmt"
	"sync"

	pkgerrors "github.com/martinvega/sneakhub-backend/pkg/errors"
	"github.com/martinvega/sneakhub-backend/pkg/logger"
	"github.com/martinvega/sneakhub-backend/pkg/pagination"
	"go.uber.org/multierr"
)

// Fetcher is the catalog read surface the service depends on.
type Fetcher interface {
	ListSneakers(ctx context.Context, params ListParams) (*SneakerPage, error)
	FlashSales(ctx context.Context) ([]Sneaker, error)
	Featured(ctx context.Context) ([]Sneaker, error)
	Brands(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
	GetProduct(ctx context.Context, productID string) (*Product, error)
}

// Service wraps the catalog client with the storefront's degrade-to-empty
// policy: a failed fetch logs and returns an empty collection so the rest of
// the page keeps rendering, and never touches cart state.
type Service interface {
	ListSneakers(ctx context.Context, params ListParams) *SneakerPage
	FlashSales(ctx context.Context) []Sneaker
	Featured(ctx context.Context) []Sneaker
	Brands(ctx context.Context) []string
	Categories(ctx context.Context) []string
	GetListing(ctx context.Context, productID string) (*Listing, error)
	Home(ctx context.Context) *Home
}

type service struct {
	client Fetcher
	logg   *logger.Logger
}

// NewService builds the catalog service backed by the provided client.
func NewService(client Fetcher, logg *logger.Logger) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("catalog client required")
	}
	return &service{client: client, logg: logg}, nil
}

// ListSneakers returns one page of listings, or an empty page on failure.
func (s *service) ListSneakers(ctx context.Context, params ListParams) *SneakerPage {
	result, err := s.client.ListSneakers(ctx, params)
	if err != nil {
		s.logError(ctx, "catalog.list_sneakers.failed", err)
		normalized := pagination.Normalize(pagination.Params{Page: params.Page, PerPage: params.PerPage})
		return &SneakerPage{
			Sneakers:   []Sneaker{},
			Page:       normalized.Page,
			PerPage:    normalized.PerPage,
			TotalPages: 1,
		}
	}
	return result
}

// FlashSales returns the active flash-sale rows, or empty on failure.
func (s *service) FlashSales(ctx context.Context) []Sneaker {
	rows, err := s.client.FlashSales(ctx)
	if err != nil {
		s.logError(ctx, "catalog.flash_sales.failed", err)
		return []Sneaker{}
	}
	if rows == nil {
		return []Sneaker{}
	}
	return rows
}

// Featured returns the featured rows, or empty on failure.
func (s *service) Featured(ctx context.Context) []Sneaker {
	rows, err := s.client.Featured(ctx)
	if err != nil {
		s.logError(ctx, "catalog.featured.failed", err)
		return []Sneaker{}
	}
	if rows == nil {
		return []Sneaker{}
	}
	return rows
}

// Brands returns the distinct brand names, or empty on failure.
func (s *service) Brands(ctx context.Context) []string {
	rows, err := s.client.Brands(ctx)
	if err != nil {
		s.logError(ctx, "catalog.brands.failed", err)
		return []string{}
	}
	if rows == nil {
		return []string{}
	}
	return rows
}

// Categories returns the distinct category names, or empty on failure.
func (s *service) Categories(ctx context.Context) []string {
	rows, err := s.client.Categories(ctx)
	if err != nil {
		s.logError(ctx, "catalog.categories.failed", err)
		return []string{}
	}
	if rows == nil {
		return []string{}
	}
	return rows
}

// GetListing fetches a product and applies the stock-aware aggregation
// contract. Products whose variants are all out of stock resolve to not found.
func (s *service) GetListing(ctx context.Context, productID string) (*Listing, error) {
	product, err := s.client.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	listing, ok := BuildListing(*product)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product has no available variants")
	}
	return &listing, nil
}

// Home fetches the independent storefront sections concurrently. Each section
// degrades to empty on its own failure; ordering between fetches is
// irrelevant because each populates a separate field.
func (s *service) Home(ctx context.Context) *Home {
	home := &Home{
		FlashSales: []Sneaker{},
		Featured:   []Sneaker{},
		Brands:     []string{},
		Categories: []string{},
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)

	fetch := func(section string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", section, err))
				mu.Unlock()
			}
		}()
	}

	fetch("flash_sales", func(ctx context.Context) error {
		rows, err := s.client.FlashSales(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		if rows != nil {
			home.FlashSales = rows
		}
		mu.Unlock()
		return nil
	})
	fetch("featured", func(ctx context.Context) error {
		rows, err := s.client.Featured(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		if rows != nil {
			home.Featured = rows
		}
		mu.Unlock()
		return nil
	})
	fetch("brands", func(ctx context.Context) error {
		rows, err := s.client.Brands(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		if rows != nil {
			home.Brands = rows
		}
		mu.Unlock()
		return nil
	})
	fetch("categories", func(ctx context.Context) error {
		rows, err := s.client.Categories(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		if rows != nil {
			home.Categories = rows
		}
		mu.Unlock()
		return nil
	})

	wg.Wait()

	if errs != nil {
		s.logError(ctx, "catalog.home.partial_failure", errs)
	}

	return home
}

func (s *service) logError(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	s.logg.Error(ctx, msg, err)
}
