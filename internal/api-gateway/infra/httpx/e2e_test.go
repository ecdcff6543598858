package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/bookstore-cart/internal/api-gateway/infra/adapters/service"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/adapters/memory"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/app"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/domain"
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/promo"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/cache"
)

// storefront wires the router to a real cart service in process.
func storefront(t *testing.T) http.Handler {
	t.Helper()
	svc, err := app.NewCartService(app.Deps{
		Catalog:   memory.NewStorefrontCatalog(),
		Promos:    promo.Default(),
		Pricing:   domain.DefaultPricingConfig(),
		Snapshots: memory.NewSnapshotRepository(),
		Replays:   cache.NewMemoryCache("cart"),
	})
	require.NoError(t, err)
	client := service.NewLocalCartClient(app.NewCartServer(svc))
	return NewRouter(NewHandler(service.NewGRPCCartService(client), 0))
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, CartResponse, ErrorResponse) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var cart CartResponse
	var apiErr ErrorResponse
	if rec.Code < 300 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	} else {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	}
	return rec.Code, cart, apiErr
}

func TestStorefront_CheckoutSummary(t *testing.T) {
	h := storefront(t)

	code, cart, _ := do(t, h, http.MethodPost, "/carts", `{"customer_id":"reader-1"}`)
	require.Equal(t, http.StatusCreated, code)
	base := "/carts/" + cart.ID

	_, _, _ = do(t, h, http.MethodPost, base+"/items", `{"item_id":"1"}`)
	code, cart, _ = do(t, h, http.MethodPost, base+"/items", `{"item_id":"2","quantity":2}`)
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, SummaryResponse{
		Subtotal: "62.97", Savings: "17.00", Discount: "0.00",
		Shipping: "0.00", Tax: "5.04", Total: "68.01",
		AmountToFreeShipping: "0.00",
	}, cart.Summary)
	assert.Equal(t, 3, cart.ItemCount)

	code, cart, _ = do(t, h, http.MethodPut, base+"/promo", `{"code":"save10"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "SAVE10", cart.Promo.Code)
	assert.Equal(t, "6.30", cart.Summary.Discount)
	assert.Equal(t, "61.21", cart.Summary.Total)
}

func TestStorefront_QuantityEdits(t *testing.T) {
	h := storefront(t)
	_, cart, _ := do(t, h, http.MethodPost, "/carts", "")
	base := "/carts/" + cart.ID
	_, _, _ = do(t, h, http.MethodPost, base+"/items", `{"item_id":"5"}`)

	code, _, apiErr := do(t, h, http.MethodPut, base+"/items/5", `{"quantity":1.5}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_quantity", apiErr.Error)

	code, cart, _ = do(t, h, http.MethodPut, base+"/items/5", `{"quantity":0}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "REMOVED", cart.Outcome)
	assert.Empty(t, cart.Items)

	code, cart, _ = do(t, h, http.MethodPut, base+"/items/5", `{"quantity":3}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "NOT_FOUND", cart.Outcome)
}

func TestStorefront_FreeShippingHint(t *testing.T) {
	h := storefront(t)
	_, cart, _ := do(t, h, http.MethodPost, "/carts", "")
	base := "/carts/" + cart.ID

	code, cart, _ := do(t, h, http.MethodPost, base+"/items", `{"item_id":"1"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "24.99", cart.Summary.Subtotal)
	assert.Equal(t, "5.99", cart.Summary.Shipping)
	assert.Equal(t, "0.01", cart.Summary.AmountToFreeShipping)

	code, cart, _ = do(t, h, http.MethodPut, base+"/items/1", `{"quantity":2}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "0.00", cart.Summary.Shipping)
	assert.Equal(t, "0.00", cart.Summary.AmountToFreeShipping)
}

func TestStorefront_HugeExponentQuantityIsRejected(t *testing.T) {
	h := storefront(t)
	_, cart, _ := do(t, h, http.MethodPost, "/carts", "")
	base := "/carts/" + cart.ID
	_, _, _ = do(t, h, http.MethodPost, base+"/items", `{"item_id":"5"}`)

	for _, body := range []string{`{"quantity":1e1000000000}`, `{"quantity":0.5e-1000000000}`} {
		code, _, apiErr := do(t, h, http.MethodPut, base+"/items/5", body)
		assert.Equal(t, http.StatusBadRequest, code, body)
		assert.Equal(t, "invalid_quantity", apiErr.Error, body)
	}

	code, cart, _ := do(t, h, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestStorefront_Errors(t *testing.T) {
	h := storefront(t)
	_, cart, _ := do(t, h, http.MethodPost, "/carts", "")
	base := "/carts/" + cart.ID

	code, _, apiErr := do(t, h, http.MethodPut, base+"/promo", `{"code":"SAVE1"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "unknown_promo_code", apiErr.Error)

	code, _, apiErr = do(t, h, http.MethodGet, "/carts/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "cart_not_found", apiErr.Error)

	code, _, apiErr = do(t, h, http.MethodPost, base+"/items", `{"item_id":"404"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "item_not_found", apiErr.Error)
}
