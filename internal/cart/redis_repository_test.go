package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	pkgredis "github.com/martinvega/sneakhub-backend/pkg/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	raw := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { raw.Close() })

	repo, err := NewRedisRepository(pkgredis.NewFromClient(raw), 24*time.Hour)
	require.NoError(t, err)
	return repo, mr
}

func sampleSnapshot() Snapshot {
	sale := decimal.NewFromInt(90)
	return Snapshot{
		Items: []LineItem{
			{
				VariantID:     "v-1",
				Name:          "Air Zoom",
				Category:      "running",
				UnitPrice:     decimal.NewFromInt(120),
				SaleUnitPrice: &sale,
				Quantity:      2,
				ImageURL:      "https://img.example.com/az.jpg",
				Sizes:         []string{"9"},
				Colors:        []string{"Black"},
			},
		},
		AppliedPromo: "SAVE10",
	}
}

func TestRedisRepositoryRoundTrip(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "sess-1", sampleSnapshot()))

	loaded, err := repo.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	require.Len(t, loaded.Items, 1)
	item := loaded.Items[0]
	assert.Equal(t, "v-1", item.VariantID)
	assert.Equal(t, 2, item.Quantity)
	require.NotNil(t, item.SaleUnitPrice)
	assert.True(t, item.SaleUnitPrice.Equal(decimal.NewFromInt(90)))
	assert.Equal(t, []string{"9"}, item.Sizes)
	assert.Equal(t, "SAVE10", loaded.AppliedPromo)
}

func TestRedisRepositoryLoadMissingReturnsNil(t *testing.T) {
	repo, _ := setupRepo(t)

	loaded, err := repo.Load(context.Background(), "sess-unknown")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisRepositoryCorruptSnapshotSurfacesError(t *testing.T) {
	repo, mr := setupRepo(t)

	require.NoError(t, mr.Set("sh:cart:sess-1", "{corrupt"))

	_, err := repo.Load(context.Background(), "sess-1")
	require.Error(t, err)
}

func TestRedisRepositorySaveClearsRemovedPromo(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "sess-1", sampleSnapshot()))

	cleared := sampleSnapshot()
	cleared.AppliedPromo = ""
	require.NoError(t, repo.Save(ctx, "sess-1", cleared))

	loaded, err := repo.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.AppliedPromo)
}

func TestRedisRepositorySaveEmptyCart(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "sess-1", Snapshot{}))

	loaded, err := repo.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.Items)
}

func TestNewRedisRepositoryRequiresClient(t *testing.T) {
	_, err := NewRedisRepository(nil, time.Hour)
	require.Error(t, err)
}
