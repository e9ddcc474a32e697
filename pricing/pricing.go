// Package pricing computes line-item prices and cart totals. All
// functions are pure; stores call them and keep the results.
package pricing

import "github.com/pizzahub/pizzahub-api/models"

const (
	// DeliveryFee is charged once per non-empty cart.
	DeliveryFee = 2.99
	// TaxRate applies to subtotal plus delivery fee.
	TaxRate = 0.10
)

var sizeMultipliers = map[models.PizzaSize]float64{
	models.SizeSmall:  0.8,
	models.SizeMedium: 1.0,
	models.SizeLarge:  1.2,
	models.SizeXLarge: 1.4,
}

var crustAddends = map[models.CrustType]float64{
	models.CrustThin:       0,
	models.CrustHandTossed: 0,
	models.CrustPan:        1.5,
	models.CrustStuffed:    2.0,
}

// SizeMultiplier returns the price multiplier for a size. Unknown sizes
// price as medium.
func SizeMultiplier(size models.PizzaSize) float64 {
	if m, ok := sizeMultipliers[size]; ok {
		return m
	}
	return 1.0
}

// CrustAddend returns the flat surcharge for a crust. Unknown crusts add
// nothing.
func CrustAddend(crust models.CrustType) float64 {
	return crustAddends[crust]
}

// Quote prices one configured pizza. Duplicate topping selections count
// once. The caller guarantees quantity >= 1.
func Quote(pizza models.Pizza, size models.PizzaSize, crust models.CrustType, toppings []models.ToppingSelection, quantity int) (unitPrice, totalPrice float64) {
	unitPrice = pizza.BasePrice * SizeMultiplier(size)
	unitPrice += CrustAddend(crust)

	seen := make(map[int]bool, len(toppings))
	for _, t := range toppings {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		unitPrice += t.Price
	}

	totalPrice = unitPrice * float64(quantity)
	return unitPrice, totalPrice
}

// Totals is the money breakdown of a cart or order.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// Summarize computes cart totals. The delivery fee applies only when the
// cart has items; tax covers subtotal plus fee. Values are kept unrounded,
// rounding is a display concern.
func Summarize(items []models.CartItem) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.TotalPrice
	}

	fee := 0.0
	if len(items) > 0 {
		fee = DeliveryFee
	}

	tax := (subtotal + fee) * TaxRate
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal + fee + tax,
	}
}
