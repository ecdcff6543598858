package httpx

import "encoding/json"

type CreateCartRequest struct {
	CustomerID string `json:"customer_id"`
}

// AddItemRequest.Quantity is optional and defaults to 1.
type AddItemRequest struct {
	ItemID   string      `json:"item_id"`
	Quantity json.Number `json:"quantity,omitempty"`
}

type SetQuantityRequest struct {
	Quantity json.Number `json:"quantity"`
}

type ApplyPromoRequest struct {
	Code string `json:"code"`
}

// CartResponse carries money as strings rounded half-up to two decimals.
type CartResponse struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id,omitempty"`
	Version    int64              `json:"version"`
	Items      []LineItemResponse `json:"items"`
	ItemCount  int                `json:"item_count"`
	Promo      *PromoResponse     `json:"promo,omitempty"`
	Summary    SummaryResponse    `json:"summary"`
	Outcome    string             `json:"outcome,omitempty"`
}

type LineItemResponse struct {
	ItemID    string `json:"item_id"`
	Title     string `json:"title,omitempty"`
	Author    string `json:"author,omitempty"`
	Format    string `json:"format,omitempty"`
	UnitPrice string `json:"unit_price"`
	ListPrice string `json:"list_price,omitempty"`
	Quantity  int    `json:"quantity"`
	Available bool   `json:"available"`
	LineTotal string `json:"line_total"`
}

type PromoResponse struct {
	Code  string `json:"code"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type SummaryResponse struct {
	Subtotal string `json:"subtotal"`
	Savings  string `json:"savings"`
	Discount string `json:"discount"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`

	// AmountToFreeShipping backs the "add $X more for free shipping" hint.
	AmountToFreeShipping string `json:"amount_to_free_shipping"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
