package cart

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/martinvega/sneakhub-backend/api/middleware"
	"github.com/martinvega/sneakhub-backend/api/responses"
	"github.com/martinvega/sneakhub-backend/api/validators"
	"github.com/martinvega/sneakhub-backend/internal/catalog"
	cartsvc "github.com/martinvega/sneakhub-backend/internal/cart"
	pkgerrors "github.com/martinvega/sneakhub-backend/pkg/errors"
	"github.com/martinvega/sneakhub-backend/pkg/logger"
)

// ProductFetcher is the slice of the catalog surface the add flow needs.
type ProductFetcher interface {
	GetProduct(ctx context.Context, productID string) (*catalog.Product, error)
}

// Fetch returns the session's cart with freshly computed totals.
func Fetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sessionID := middleware.SessionIDFromContext(ctx)
		quote, err := svc.GetCart(ctx, sessionID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}

// AddItem resolves the requested variant against the catalog and merges it
// into the session cart with its price snapshotted.
func AddItem(svc cartsvc.Service, products ProductFetcher, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req AddItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := products.GetProduct(ctx, req.ProductID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		variant, ok := catalog.ResolveVariant(product, req.Size, req.ColorCode)
		if !ok {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "no variant matches the requested size and color"))
			return
		}
		if !variant.Purchasable() {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeConflict, "variant is out of stock"))
			return
		}

		if logg != nil {
			ctx = logg.WithVariantID(ctx, variant.ID)
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		quote, err := svc.AddItem(ctx, sessionID, cartsvc.AddInput{
			VariantID:     variant.ID,
			Name:          product.Name,
			Category:      product.Category,
			UnitPrice:     variant.Price,
			SaleUnitPrice: variant.SalePrice,
			ImageURL:      product.Images.Main,
			Size:          variant.Size,
			Color:         variant.ColorName,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}

// SetQuantity replaces the stored quantity for a line item; zero removes it.
func SetQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req SetQuantityRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		variantID := chi.URLParam(r, "variantId")

		quote, err := svc.SetQuantity(ctx, sessionID, variantID, *req.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}

// RemoveItem deletes the line item for the variant; absent ids are a no-op.
func RemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sessionID := middleware.SessionIDFromContext(ctx)
		variantID := chi.URLParam(r, "variantId")

		quote, err := svc.RemoveItem(ctx, sessionID, variantID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}

// ApplyPromo validates the submitted code against the allow-list.
func ApplyPromo(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req ApplyPromoRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(ctx)
		quote, err := svc.ApplyPromo(ctx, sessionID, req.Code)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}

// RemovePromo clears the applied promo; totals recompute without the discount.
func RemovePromo(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sessionID := middleware.SessionIDFromContext(ctx)
		quote, err := svc.RemovePromo(ctx, sessionID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}
