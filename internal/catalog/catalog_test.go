package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Luchito30/ShopCart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestStore_SetAndGet(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Products(), "empty catalog is a served state, not an error")

	s.SetProducts([]domain.Product{
		{ID: 1, Title: "Shirt", Price: 10},
		{ID: 2, Title: "Mug", Price: 5.5},
	})

	assert.Equal(t, 2, s.Len())

	p, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Mug", p.Title)

	_, ok = s.Get(999)
	assert.False(t, ok)
}

func TestStore_ProductsReturnsSnapshot(t *testing.T) {
	s := NewStore()
	s.SetProducts([]domain.Product{{ID: 1, Title: "Shirt"}})

	products := s.Products()
	products[0].Title = "mutated"

	assert.Equal(t, "Shirt", s.Products()[0].Title)
}

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Shirt","price":10.0,"image":"http://img/1.png","description":"a shirt"}]`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, time.Second)

	products, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Shirt", products[0].Title)
	assert.Equal(t, 10.0, products[0].Price)
}

func TestClient_Fetch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, time.Second)

	_, err := c.Fetch(context.Background())
	assert.Error(t, err)
}

func TestClient_Fetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, time.Second)

	_, err := c.Fetch(context.Background())
	assert.Error(t, err)
}

type countingFetcher struct {
	calls    atomic.Int32
	products []domain.Product
	err      error
}

func (f *countingFetcher) Fetch(ctx context.Context) ([]domain.Product, error) {
	f.calls.Add(1)
	return f.products, f.err
}

func TestLoader_Ensure_FetchesOnce(t *testing.T) {
	f := &countingFetcher{products: []domain.Product{{ID: 1}}}
	store := NewStore()
	l := NewLoader(f, store, testLogger)

	require.NoError(t, l.Ensure(context.Background()))
	require.NoError(t, l.Ensure(context.Background()))

	assert.Equal(t, int32(1), f.calls.Load(), "a filled store must not refetch")
	assert.Equal(t, 1, store.Len())
}

func TestLoader_Ensure_FailureLeavesStoreEmpty(t *testing.T) {
	f := &countingFetcher{err: errors.New("upstream down")}
	store := NewStore()
	l := NewLoader(f, store, testLogger)

	err := l.Ensure(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())

	// A later attempt may succeed; the loader is not latched by failure.
	f.err = nil
	f.products = []domain.Product{{ID: 1}}
	require.NoError(t, l.Ensure(context.Background()))
	assert.Equal(t, 1, store.Len())
}

func TestLoader_LoadAsync_DoesNotBlock(t *testing.T) {
	f := &countingFetcher{products: []domain.Product{{ID: 1}}}
	store := NewStore()
	l := NewLoader(f, store, testLogger)

	l.LoadAsync(context.Background())

	assert.Eventually(t, func() bool { return store.Len() == 1 }, time.Second, time.Millisecond)
}
