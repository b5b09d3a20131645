package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/martinvega/sneakhub-backend/pkg/config"
	pkgerrors "github.com/martinvega/sneakhub-backend/pkg/errors"
	"github.com/martinvega/sneakhub-backend/pkg/pagination"
)

const defaultRequestTimeout = 10 * time.Second

// Client issues read-only queries against the remote catalog service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	perPage    int
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient builds the catalog client from the catalog config section.
func NewClient(cfg config.CatalogConfig, opts ...Option) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("catalog base url is required")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := &Client{
		baseURL:    baseURL,
		perPage:    pagination.NormalizePerPage(cfg.DefaultPerPage),
		httpClient: &http.Client{Timeout: timeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// ListParams captures the supported search/filter/paginate inputs.
type ListParams struct {
	Search   string
	Brand    string
	Category string
	Page     int
	PerPage  int
}

// ListSneakers fetches one page of in-stock listing rows.
func (c *Client) ListSneakers(ctx context.Context, params ListParams) (*SneakerPage, error) {
	query := url.Values{}
	page := pagination.NormalizePage(params.Page)
	perPage := params.PerPage
	if perPage <= 0 {
		perPage = c.perPage
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(pagination.NormalizePerPage(perPage)))
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Brand != "" {
		query.Set("brand", params.Brand)
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}

	var result SneakerPage
	if err := c.getJSON(ctx, "/sneakers", query, &result); err != nil {
		return nil, err
	}
	if result.Sneakers == nil {
		result.Sneakers = []Sneaker{}
	}
	return &result, nil
}

// FlashSales fetches the active flash-sale rows.
func (c *Client) FlashSales(ctx context.Context) ([]Sneaker, error) {
	var payload struct {
		FlashSales []Sneaker `json:"flash_sales"`
	}
	if err := c.getJSON(ctx, "/flash-sales", nil, &payload); err != nil {
		return nil, err
	}
	return payload.FlashSales, nil
}

// Featured fetches the featured listing rows.
func (c *Client) Featured(ctx context.Context) ([]Sneaker, error) {
	var payload struct {
		Featured []Sneaker `json:"featured"`
	}
	if err := c.getJSON(ctx, "/featured", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Featured, nil
}

// Brands fetches the distinct brand names.
func (c *Client) Brands(ctx context.Context) ([]string, error) {
	var payload struct {
		Brands []string `json:"brands"`
	}
	if err := c.getJSON(ctx, "/brands", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Brands, nil
}

// Categories fetches the distinct category names.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var payload struct {
		Categories []string `json:"categories"`
	}
	if err := c.getJSON(ctx, "/categories", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Categories, nil
}

// GetProduct fetches a single product with its full variant set.
func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	id := strings.TrimSpace(productID)
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	var product Product
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dest any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return pkgerrors.New(pkgerrors.CodeNotFound, "catalog resource not found")
	}
	if resp.StatusCode != http.StatusOK {
		return pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("catalog returned status %d", resp.StatusCode)).
			WithDetails(map[string]any{"path": path, "status": resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode catalog response")
	}
	return nil
}
