package domain

import "github.com/shopspring/decimal"

func quantityDecimal(q int) decimal.Decimal {
	return decimal.NewFromInt(int64(q))
}
