package store

import (
	"strings"
	"sync"

	"github.com/pizzahub/pizzahub-api/models"
)

// The fixed menu. Admin edits and deletes apply to the in-memory copy
// only and are gone after a restart.
var defaultPizzas = []models.Pizza{
	{ID: 1, Name: "Margherita", Description: "Classic pizza with fresh tomato, mozzarella and basil", BasePrice: 9.99, Category: models.CategoryVegetarian, Rating: 4.8},
	{ID: 2, Name: "Pepperoni", Description: "Loaded with pepperoni and mozzarella cheese", BasePrice: 11.99, Category: models.CategoryMeat, Rating: 4.9},
	{ID: 3, Name: "Vegetarian Delight", Description: "Bell peppers, mushrooms, olives and onions", BasePrice: 10.99, Category: models.CategoryVegetarian, Rating: 4.6},
	{ID: 4, Name: "BBQ Chicken", Description: "Grilled chicken with BBQ sauce and cheddar", BasePrice: 12.99, Category: models.CategoryMeat, Rating: 4.7},
	{ID: 5, Name: "Meat Lovers", Description: "Pepperoni, sausage, ham and bacon", BasePrice: 13.99, Category: models.CategoryMeat, Rating: 4.8},
	{ID: 6, Name: "Supreme Special", Description: "Everything you love combined in one pizza", BasePrice: 14.99, Category: models.CategorySpecial, Rating: 4.9},
	{ID: 7, Name: "Hawaiian", Description: "Ham and pineapple on a delicious base", BasePrice: 11.99, Category: models.CategoryMeat, Rating: 4.5},
	{ID: 8, Name: "Veggie Paradise", Description: "Spinach, garlic, roasted vegetables", BasePrice: 10.99, Category: models.CategoryVegetarian, Rating: 4.7},
}

var defaultToppings = []models.Topping{
	{ID: 1, Name: "Extra Cheese", Price: 1.50},
	{ID: 2, Name: "Mushrooms", Price: 0.75},
	{ID: 3, Name: "Pepperoni", Price: 1.00},
	{ID: 4, Name: "Onions", Price: 0.50},
	{ID: 5, Name: "Bell Peppers", Price: 0.75},
	{ID: 6, Name: "Bacon", Price: 1.25},
}

// Catalog holds the session-scoped menu.
type Catalog struct {
	mu       sync.RWMutex
	pizzas   []models.Pizza
	toppings []models.Topping
}

func NewCatalog() *Catalog {
	c := &Catalog{
		pizzas:   make([]models.Pizza, len(defaultPizzas)),
		toppings: make([]models.Topping, len(defaultToppings)),
	}
	copy(c.pizzas, defaultPizzas)
	copy(c.toppings, defaultToppings)
	return c
}

// Pizzas lists the menu, optionally filtered by category and by a
// case-insensitive search over name and description.
func (c *Catalog) Pizzas(category, search string) []models.Pizza {
	c.mu.RLock()
	defer c.mu.RUnlock()

	search = strings.ToLower(search)
	out := make([]models.Pizza, 0, len(c.pizzas))
	for _, p := range c.pizzas {
		if category != "" && category != "all" && string(p.Category) != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Pizza returns the menu entry with the given id.
func (c *Catalog) Pizza(id int) (models.Pizza, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.pizzas {
		if p.ID == id {
			return p, true
		}
	}
	return models.Pizza{}, false
}

func (c *Catalog) Toppings() []models.Topping {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Topping, len(c.toppings))
	copy(out, c.toppings)
	return out
}

// ToppingSelections resolves topping ids to selections with captured
// prices. Unknown ids are skipped.
func (c *Catalog) ToppingSelections(ids []int) []models.ToppingSelection {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.ToppingSelection, 0, len(ids))
	for _, id := range ids {
		for _, t := range c.toppings {
			if t.ID == id {
				out = append(out, models.ToppingSelection{ID: t.ID, Name: t.Name, Price: t.Price})
				break
			}
		}
	}
	return out
}

// PizzaUpdate carries the editable fields; nil means leave unchanged.
type PizzaUpdate struct {
	Name        *string
	Description *string
	BasePrice   *float64
}

// UpdatePizza applies an admin edit to the in-memory menu entry.
func (c *Catalog) UpdatePizza(id int, update PizzaUpdate) (models.Pizza, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.pizzas {
		if c.pizzas[i].ID != id {
			continue
		}
		if update.Name != nil {
			c.pizzas[i].Name = *update.Name
		}
		if update.Description != nil {
			c.pizzas[i].Description = *update.Description
		}
		if update.BasePrice != nil {
			c.pizzas[i].BasePrice = *update.BasePrice
		}
		return c.pizzas[i], true
	}
	return models.Pizza{}, false
}

// DeletePizza removes a pizza from the in-memory menu.
func (c *Catalog) DeletePizza(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.pizzas {
		if p.ID == id {
			c.pizzas = append(c.pizzas[:i], c.pizzas[i+1:]...)
			return true
		}
	}
	return false
}
