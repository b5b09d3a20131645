package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/martinvega/sneakhub-backend/internal/cart"
	"github.com/martinvega/sneakhub-backend/pkg/config"
	pkgerrors "github.com/martinvega/sneakhub-backend/pkg/errors"
	"github.com/martinvega/sneakhub-backend/pkg/logger"
)

const defaultRequestTimeout = 10 * time.Second

// OrderRequest is the payload serialized to the order endpoint.
type OrderRequest struct {
	Items    []cart.LineItem `json:"items"`
	Total    string          `json:"total"`
	Shipping string          `json:"shipping"`
	Tax      string          `json:"tax"`
	Discount string          `json:"discount"`
}

// Service submits carts to the order endpoint. In this deployment the
// endpoint never accepts an order: every outcome, including a 2xx response,
// resolves to the same fixed checkout failure. The order is submitted exactly
// once per attempt; the failure is surfaced once.
type Service interface {
	Submit(ctx context.Context, quote *cart.Quote) error
}

type service struct {
	httpClient *http.Client
	endpoint   string
	logg       *logger.Logger
}

// Option configures optional service behavior.
type Option func(*service)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *service) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// NewService builds the checkout submitter from config.
func NewService(cfg config.CheckoutConfig, logg *logger.Logger, opts ...Option) (Service, error) {
	endpoint := strings.TrimSpace(cfg.OrderEndpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("checkout order endpoint is required")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	svc := &service{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logg:       logg,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	return svc, nil
}

// Submit serializes the cart and its computed totals and posts them once.
func (s *service) Submit(ctx context.Context, quote *cart.Quote) error {
	if quote == nil || len(quote.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	payload, err := json.Marshal(buildOrderRequest(quote))
	if err != nil {
		return s.fail(ctx, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return s.fail(ctx, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return s.fail(ctx, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	// The order endpoint never accepts an order in this deployment; a 2xx
	// still resolves to the fixed failure notice.
	return s.fail(ctx, fmt.Errorf("order endpoint responded with status %d", resp.StatusCode))
}

func (s *service) fail(ctx context.Context, cause error) error {
	if s.logg != nil {
		s.logg.Error(ctx, "checkout.submit.failed", cause)
	}
	return pkgerrors.Wrap(pkgerrors.CodeCheckoutFailed, cause, "checkout failed")
}

func buildOrderRequest(quote *cart.Quote) OrderRequest {
	return OrderRequest{
		Items:    quote.Items,
		Total:    quote.Totals.Total.StringFixed(2),
		Shipping: quote.Totals.Shipping.StringFixed(2),
		Tax:      quote.Totals.Tax.StringFixed(2),
		Discount: quote.Totals.Discount.StringFixed(2),
	}
}
