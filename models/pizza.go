package models

type PizzaCategory string

const (
	CategoryVegetarian PizzaCategory = "vegetarian"
	CategoryMeat       PizzaCategory = "meat"
	CategorySpecial    PizzaCategory = "special"
)

type PizzaSize string

const (
	SizeSmall  PizzaSize = "small"
	SizeMedium PizzaSize = "medium"
	SizeLarge  PizzaSize = "large"
	SizeXLarge PizzaSize = "xlarge"
)

type CrustType string

const (
	CrustThin       CrustType = "thin"
	CrustHandTossed CrustType = "hand_tossed"
	CrustPan        CrustType = "pan"
	CrustStuffed    CrustType = "stuffed"
)

// Pizza is an immutable menu entry. The catalog is seeded at startup;
// admin edits are session-scoped and never persisted.
type Pizza struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	BasePrice   float64       `json:"base_price"`
	Category    PizzaCategory `json:"category"`
	Rating      float64       `json:"rating"`
}

type Topping struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
