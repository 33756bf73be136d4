package cart

import (
	"sevasetu/models"
)

// Cart is an ordered list of selected services, deduplicated by name.
type Cart struct {
	ID    string            `json:"id"`
	Items []models.CartItem `json:"items"`
}

// Add appends item unless an item with the same name is already present.
// It reports whether the cart changed.
func (c *Cart) Add(item models.CartItem) bool {
	for _, existing := range c.Items {
		if existing.Name == item.Name {
			return false
		}
	}
	c.Items = append(c.Items, item)
	return true
}

// Remove deletes the item with the given name and reports whether one was found.
func (c *Cart) Remove(name string) bool {
	for i, existing := range c.Items {
		if existing.Name == name {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total sums item prices. Items without a price count as zero.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}

func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

// Category is the category of the first item, "General" when unknown.
// Only the first item's category drives provider matching.
func (c *Cart) Category() string {
	if len(c.Items) > 0 && c.Items[0].Category != "" {
		return c.Items[0].Category
	}
	return "General"
}
