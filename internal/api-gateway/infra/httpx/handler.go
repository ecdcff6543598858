package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/bookstore-cart/internal/api-gateway/core/domain/entity"
	"github.com/jcmexdev/bookstore-cart/internal/api-gateway/core/ports"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/currency"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/interceptors"
	"github.com/jcmexdev/bookstore-cart/internal/pkg/interceptors/constants"
)

// Handler serves the cart HTTP API on top of the cart service port.
type Handler struct {
	carts   ports.CartService
	timeout time.Duration
}

// NewHandler bounds every upstream call by timeout; zero means no bound
// beyond the request's own context.
func NewHandler(carts ports.CartService, timeout time.Duration) *Handler {
	return &Handler{carts: carts, timeout: timeout}
}

func (h *Handler) CreateCart(w http.ResponseWriter, r *http.Request) {
	var req CreateCartRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	ctx, cancel := h.upstream(r)
	defer cancel()

	slog.InfoContext(ctx, "creating cart", "request_id", interceptors.RequestID(ctx), "customer_id", req.CustomerID)
	cart, err := h.carts.CreateCart(ctx, req.CustomerID)
	h.respond(w, r, http.StatusCreated, cart, err)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.upstream(r)
	defer cancel()

	cart, err := h.carts.GetCart(ctx, chi.URLParam(r, "id"))
	h.respond(w, r, http.StatusOK, cart, err)
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "item_id is required")
		return
	}

	qty := 1
	if req.Quantity != "" {
		n, err := strconv.Atoi(req.Quantity.String())
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be a positive whole number")
			return
		}
		qty = n
	}

	ctx, cancel := h.upstream(r)
	defer cancel()

	cart, err := h.carts.AddItem(ctx, chi.URLParam(r, "id"), req.ItemID, qty)
	h.respond(w, r, http.StatusOK, cart, err)
}

// SetQuantity passes the number through untouched; whole numbers below 1
// remove the line and anything fractional is rejected upstream.
func (h *Handler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req SetQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Quantity == "" {
		writeError(w, http.StatusBadRequest, "invalid_quantity", "quantity is required")
		return
	}

	ctx, cancel := h.upstream(r)
	defer cancel()

	cart, err := h.carts.SetQuantity(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "itemID"), req.Quantity)
	h.respond(w, r, http.StatusOK, cart, err)
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.upstream(r)
	defer cancel()

	cart, err := h.carts.RemoveItem(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "itemID"))
	h.respond(w, r, http.StatusOK, cart, err)
}

func (h *Handler) ApplyPromoCode(w http.ResponseWriter, r *http.Request) {
	var req ApplyPromoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	ctx, cancel := h.upstream(r)
	defer cancel()

	cart, err := h.carts.ApplyPromoCode(ctx, chi.URLParam(r, "id"), req.Code)
	h.respond(w, r, http.StatusOK, cart, err)
}

func (h *Handler) ClearPromoCode(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.upstream(r)
	defer cancel()

	cart, err := h.carts.ClearPromoCode(ctx, chi.URLParam(r, "id"))
	h.respond(w, r, http.StatusOK, cart, err)
}

func (h *Handler) upstream(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.timeout)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, okStatus int, cart *entity.Cart, err error) {
	if err != nil {
		status, code := errorStatus(err)
		if status >= http.StatusInternalServerError {
			slog.ErrorContext(r.Context(), "cart request failed", "path", r.URL.Path, "error", err)
		}
		writeError(w, status, code, err.Error())
		return
	}
	if cart.Replayed {
		w.Header().Set(constants.HeaderXIdempotentReplay, "true")
	}
	writeJSON(w, okStatus, mapCartToResponse(cart))
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrInvalidQuantity):
		return http.StatusBadRequest, "invalid_quantity"
	case errors.Is(err, entity.ErrUnknownPromoCode):
		return http.StatusUnprocessableEntity, "unknown_promo_code"
	case errors.Is(err, entity.ErrCartNotFound):
		return http.StatusNotFound, "cart_not_found"
	case errors.Is(err, entity.ErrItemNotFound):
		return http.StatusNotFound, "item_not_found"
	case errors.Is(err, entity.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, entity.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "cart_service_unavailable"
	}
	return http.StatusBadGateway, "cart_service_error"
}

func mapCartToResponse(c *entity.Cart) CartResponse {
	res := CartResponse{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		Version:    c.Version,
		Items:      make([]LineItemResponse, len(c.Items)),
		ItemCount:  c.ItemCount(),
		Summary: SummaryResponse{
			Subtotal: currency.Format(c.Summary.Subtotal),
			Savings:  currency.Format(c.Summary.Savings),
			Discount: currency.Format(c.Summary.Discount),
			Shipping: currency.Format(c.Summary.Shipping),
			Tax:      currency.Format(c.Summary.Tax),
			Total:    currency.Format(c.Summary.Total),

			AmountToFreeShipping: currency.Format(c.Summary.AmountToFreeShipping),
		},
		Outcome: c.Outcome,
	}
	for i, it := range c.Items {
		res.Items[i] = LineItemResponse{
			ItemID:    it.ItemID,
			Title:     it.Title,
			Author:    it.Author,
			Format:    it.Format,
			UnitPrice: currency.Format(it.UnitPrice),
			Quantity:  it.Quantity,
			Available: it.Available,
			LineTotal: currency.Format(it.LineTotal),
		}
		if it.ListPrice.Valid {
			res.Items[i].ListPrice = currency.Format(it.ListPrice.Decimal)
		}
	}
	if c.Promo != nil {
		res.Promo = &PromoResponse{Code: c.Promo.Code, Kind: c.Promo.Kind, Value: c.Promo.Value.String()}
	}
	return res
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
