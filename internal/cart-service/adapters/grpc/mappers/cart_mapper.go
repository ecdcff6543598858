package mappers

import (
	"github.com/jcmexdev/bookstore-cart/internal/cart-service/domain"
	cartv1 "github.com/jcmexdev/bookstore-cart/internal/genproto/cart/v1"
)

// CartToRPC maps a snapshot and its breakdown onto the wire message. Money
// is sent exact; rounding is left to the presentation layer.
func CartToRPC(snap domain.Snapshot, b domain.Breakdown) *cartv1.CartInfo {
	info := &cartv1.CartInfo{
		Id:         snap.ID,
		CustomerId: snap.CustomerID,
		Version:    snap.Version,
		Items:      mapItemsToRPC(snap.Items),
		Pricing:    BreakdownToRPC(b),
	}
	if snap.Promo != nil {
		info.Promo = &cartv1.Promo{
			Code:  snap.Promo.Code,
			Kind:  string(snap.Promo.Kind),
			Value: snap.Promo.Value.String(),
		}
	}
	return info
}

func BreakdownToRPC(b domain.Breakdown) *cartv1.Pricing {
	return &cartv1.Pricing{
		Subtotal:    b.Subtotal.String(),
		Savings:     b.Savings.String(),
		Discount:    b.Discount.String(),
		Shipping:    b.Shipping.String(),
		TaxableBase: b.TaxableBase.String(),
		Tax:         b.Tax.String(),
		Total:       b.Total.String(),

		AmountToFreeShipping: b.AmountToFreeShipping.String(),
	}
}

func mapItemsToRPC(items []domain.LineItem) []*cartv1.LineItem {
	out := make([]*cartv1.LineItem, len(items))
	for i, it := range items {
		li := &cartv1.LineItem{
			ItemId:    it.ID,
			Title:     it.Title,
			Author:    it.Author,
			Format:    it.Format,
			UnitPrice: it.UnitPrice.String(),
			Quantity:  int64(it.Quantity),
			Available: it.Available,
			LineTotal: it.LineTotal().String(),
		}
		if it.ListPrice.Valid {
			li.ListPrice = it.ListPrice.Decimal.String()
		}
		out[i] = li
	}
	return out
}
