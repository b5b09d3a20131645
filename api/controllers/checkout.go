package controllers

import (
	"net/http"

	"github.com/martinvega/sneakhub-backend/api/middleware"
	"github.com/martinvega/sneakhub-backend/api/responses"
	"github.com/martinvega/sneakhub-backend/internal/cart"
	"github.com/martinvega/sneakhub-backend/internal/checkout"
	"github.com/martinvega/sneakhub-backend/pkg/logger"
)

// Checkout submits the session cart to the order endpoint. The submitter
// resolves every attempt to the same fixed failure, so this handler's success
// path is unreachable in the current deployment; it stays in place for when
// the order endpoint starts accepting orders.
func Checkout(cartSvc cart.Service, checkoutSvc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sessionID := middleware.SessionIDFromContext(ctx)
		quote, err := cartSvc.GetCart(ctx, sessionID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := checkoutSvc.Submit(ctx, quote); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "accepted"})
	}
}
