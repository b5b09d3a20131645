package catalog

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/martinvega/sneakhub-backend/api/responses"
	"github.com/martinvega/sneakhub-backend/api/validators"
	catalogsvc "github.com/martinvega/sneakhub-backend/internal/catalog"
	"github.com/martinvega/sneakhub-backend/pkg/logger"
	"github.com/martinvega/sneakhub-backend/pkg/pagination"
)

// ListSneakers serves one page of in-stock listing rows with the supported
// search/filter parameters.
func ListSneakers(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 100000)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		perPage, err := validators.ParseQueryInt(r, "per_page", pagination.DefaultPerPage, 1, pagination.MaxPerPage)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		params := catalogsvc.ListParams{
			Search:   strings.TrimSpace(r.URL.Query().Get("search")),
			Brand:    strings.TrimSpace(r.URL.Query().Get("brand")),
			Category: strings.TrimSpace(r.URL.Query().Get("category")),
			Page:     page,
			PerPage:  perPage,
		}

		responses.WriteSuccess(w, svc.ListSneakers(ctx, params))
	}
}

// FlashSales serves the active flash-sale rows.
func FlashSales(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"flash_sales": svc.FlashSales(r.Context())})
	}
}

// Featured serves the featured listing rows.
func Featured(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"featured": svc.Featured(r.Context())})
	}
}

// Brands serves the distinct brand names.
func Brands(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"brands": svc.Brands(r.Context())})
	}
}

// Categories serves the distinct category names.
func Categories(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"categories": svc.Categories(r.Context())})
	}
}

// Home serves the aggregated storefront warm fetch.
func Home(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Home(r.Context()))
	}
}

// ProductListing serves the stock-aware aggregation for a single product.
func ProductListing(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID := chi.URLParam(r, "productId")
		listing, err := svc.GetListing(ctx, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, listing)
	}
}
