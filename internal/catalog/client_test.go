package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/martinvega/sneakhub-backend/pkg/config"
	pkgerrors "github.com/martinvega/sneakhub-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.CatalogConfig{BaseURL: server.URL, DefaultPerPage: 20})
	require.NoError(t, err)
	return client
}

func TestListSneakersBuildsQuery(t *testing.T) {
	var gotQuery map[string]string
	client := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sneakers", r.URL.Path)
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sneakers":[{"id":"s-1","sku":"AZ-9-BLK","name":"Air Zoom","price":120}],"total":1,"page":2,"per_page":10,"total_pages":1}`))
	}))

	page, err := client.ListSneakers(context.Background(), ListParams{
		Search:   "zoom",
		Brand:    "Nike",
		Category: "running",
		Page:     2,
		PerPage:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, "zoom", gotQuery["search"])
	assert.Equal(t, "Nike", gotQuery["brand"])
	assert.Equal(t, "running", gotQuery["category"])
	assert.Equal(t, "2", gotQuery["page"])
	assert.Equal(t, "10", gotQuery["per_page"])

	require.Len(t, page.Sneakers, 1)
	assert.Equal(t, "s-1", page.Sneakers[0].ID)
}

func TestListSneakersDefaultsPagination(t *testing.T) {
	client := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("per_page"))
		w.Write([]byte(`{"sneakers":null,"total":0,"page":1,"per_page":20,"total_pages":1}`))
	}))

	page, err := client.ListSneakers(context.Background(), ListParams{Page: -1})
	require.NoError(t, err)
	require.NotNil(t, page.Sneakers, "nil sneakers must decode to an empty slice")
	assert.Empty(t, page.Sneakers)
}

func TestSectionFetchers(t *testing.T) {
	client := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/flash-sales":
			w.Write([]byte(`{"flash_sales":[{"id":"f-1"}]}`))
		case "/featured":
			w.Write([]byte(`{"featured":[{"id":"ft-1"},{"id":"ft-2"}]}`))
		case "/brands":
			w.Write([]byte(`{"brands":["Adidas","Nike"]}`))
		case "/categories":
			w.Write([]byte(`{"categories":["basketball","running"]}`))
		default:
			http.NotFound(w, r)
		}
	}))

	ctx := context.Background()

	flash, err := client.FlashSales(ctx)
	require.NoError(t, err)
	require.Len(t, flash, 1)

	featured, err := client.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 2)

	brands, err := client.Brands(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Adidas", "Nike"}, brands)

	categories, err := client.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"basketball", "running"}, categories)
}

func TestGetProductNotFound(t *testing.T) {
	client := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.GetProduct(context.Background(), "missing")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestGetProductRequiresID(t *testing.T) {
	client := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not be issued")
	}))

	_, err := client.GetProduct(context.Background(), "  ")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestUpstreamFailureMapsToDependencyError(t *testing.T) {
	client := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Brands(context.Background())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
}

func TestMalformedBodyMapsToDependencyError(t *testing.T) {
	client := newTestCatalog(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))

	_, err := client.Categories(context.Background())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(config.CatalogConfig{})
	require.Error(t, err)
}
