package catalog

import "github.com/shopspring/decimal"

// UnitPrice parses the product's price string.
func (p Product) UnitPrice() (decimal.Decimal, error) {
	return decimal.NewFromString(p.Price)
}

// Discounted reports whether the original price is set and numerically above
// the current price. OnSale is a separate display flag and does not factor in.
func (p Product) Discounted() bool {
	if p.OriginalPrice == nil {
		return false
	}

	orig, err := decimal.NewFromString(*p.OriginalPrice)
	if err != nil {
		return false
	}
	price, err := p.UnitPrice()
	if err != nil {
		return false
	}

	return orig.GreaterThan(price)
}

// DiscountPercent is round((original - price) / original * 100), or 0 when the
// product is not discounted.
func (p Product) DiscountPercent() int {
	if !p.Discounted() {
		return 0
	}

	orig, _ := decimal.NewFromString(*p.OriginalPrice)
	price, _ := p.UnitPrice()

	pct := orig.Sub(price).
		Div(orig).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return int(pct.IntPart())
}
