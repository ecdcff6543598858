// Package currency formats exact amounts for display. Every surface that
// shows money to shoppers rounds through Format.
package currency

import "github.com/shopspring/decimal"

// DisplayPlaces is the number of fractional digits shown to shoppers.
const DisplayPlaces = 2

// Format rounds half-up to cents. Cart amounts are never negative, so
// shopspring's half-away-from-zero rounding is half-up here.
func Format(d decimal.Decimal) string {
	return d.StringFixed(DisplayPlaces)
}
