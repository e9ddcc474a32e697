package models

import "time"

// ToppingSelection is a topping as chosen on a cart item, with the price
// captured at selection time.
type ToppingSelection struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CartItem is one configured pizza in the cart. TotalPrice is always
// UnitPrice * Quantity.
type CartItem struct {
	ID         string             `json:"id"`
	PizzaID    int                `json:"pizza_id"`
	Name       string             `json:"name"`
	Size       PizzaSize          `json:"size"`
	Crust      CrustType          `json:"crust"`
	Toppings   []ToppingSelection `json:"toppings"`
	Quantity   int                `json:"quantity"`
	UnitPrice  float64            `json:"unit_price"`
	TotalPrice float64            `json:"total_price"`
	AddedAt    time.Time          `json:"added_at"`
}

// Clone returns a deep copy so order snapshots stay independent of the
// live cart.
func (i CartItem) Clone() CartItem {
	out := i
	if i.Toppings != nil {
		out.Toppings = make([]ToppingSelection, len(i.Toppings))
		copy(out.Toppings, i.Toppings)
	}
	return out
}
