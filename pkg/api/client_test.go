package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weblarek/weblarek/pkg/errors"
	"github.com/weblarek/weblarek/pkg/logging"
	"github.com/weblarek/weblarek/pkg/shop"
)

const productListBody = `{
	"total": 3,
	"items": [
		{"id": "1", "title": "+1 час в сутках", "description": "d1",
		 "image": "/5_Dots.svg", "category": "софт-скил", "price": 750},
		{"id": "2", "title": "HEX-леденец", "category": "другое", "price": 1450},
		{"id": "3", "title": "Мамка-таймер", "category": "софт-скил", "price": null}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts = append(opts, WithLogger(logging.NewNopLogger()))
	return New(srv.URL, opts...)
}

func TestProducts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/product/", r.URL.Path)
		_, _ = w.Write([]byte(productListBody))
	}, WithCDN("https://cdn.larek.ru/content"))

	products, err := client.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)

	first := products[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "+1 час в сутках", first.Title)
	assert.Equal(t, shop.CategorySoftSkill, first.Category)
	require.NotNil(t, first.Price)
	assert.Equal(t, 750, *first.Price)
	// Relative image references are absolutized against the CDN root.
	assert.Equal(t, "https://cdn.larek.ru/content/5_Dots.svg", first.Image)

	// A JSON null price stays nil.
	assert.Nil(t, products[2].Price)
}

func TestProductsNon2xx(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error": "upstream down"}`))
	})

	_, err := client.Products(context.Background())
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream down", apiErr.Message)
	assert.ErrorIs(t, err, errors.ErrShopUnavailable)
}

func TestProductsMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>gateway error</html>`},
		{"items missing", `{"total": 0}`},
		{"items not a list", `{"items": "oops"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := client.Products(context.Background())
			assert.Error(t, err)
		})
	}
}

// The boot path fails open: any boundary problem yields an empty catalog.
func TestCatalogOrEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	products := client.CatalogOrEmpty(context.Background())
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestSubmitOrder(t *testing.T) {
	order := shop.Order{
		Payment: shop.PaymentNonCash,
		Address: "Спб, Невский 1",
		Email:   "a@b.ru",
		Phone:   "+79990000000",
		Items:   []string{"1", "2"},
		Total:   2200,
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/order", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got shop.Order
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, order, got)

		_, _ = w.Write([]byte(`{"id": "28c57cb4-3002-4445-8aa1-2a06a5055ae5", "total": 2200}`))
	})

	result, err := client.SubmitOrder(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, "28c57cb4-3002-4445-8aa1-2a06a5055ae5", result.ID)
	assert.Equal(t, 2200, result.Total)
}

func TestSubmitOrderRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "address required"}`))
	})

	_, err := client.SubmitOrder(context.Background(), shop.Order{})
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "address required", apiErr.Message)
}

func TestSubmitOrderMissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.SubmitOrder(context.Background(), shop.Order{})
	assert.Error(t, err)
}

func TestAbsolutize(t *testing.T) {
	c := New("http://shop", WithCDN("http://cdn/content/"))

	assert.Equal(t, "http://cdn/content/a.svg", c.absolutize("/a.svg"))
	assert.Equal(t, "http://cdn/content/a.svg", c.absolutize("a.svg"))
	assert.Equal(t, "https://elsewhere/a.svg", c.absolutize("https://elsewhere/a.svg"))
	assert.Empty(t, c.absolutize(""))
}
