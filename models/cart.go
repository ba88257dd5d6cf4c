package models

// CartItem is a snapshot of a product taken at add-time. Price and weight
// are copied, not referenced, so later catalog edits do not change lines
// already in a cart.
type CartItem struct {
	ID       int     `json:"id"`
	Code     string  `json:"codigo"`
	Name     string  `json:"nombre"`
	Price    int     `json:"precio"`
	Weight   float64 `json:"peso"`
	Image    string  `json:"imagen"`
	Quantity int     `json:"cantidad"`
}

// ShippingQuote is the estimate computed from the cart weight and a
// submitted postal code.
type ShippingQuote struct {
	Cost int    `json:"envio"`
	Zone string `json:"zona"`
}

// CartTotal is the monetary total of the given lines.
func CartTotal(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Price * item.Quantity
	}
	return total
}

// CartWeight is the total weight in kg of the given lines.
func CartWeight(items []CartItem) float64 {
	weight := 0.0
	for _, item := range items {
		weight += item.Weight * float64(item.Quantity)
	}
	return weight
}

// CartCount is the number of units across all lines, the badge number
// shown next to the cart icon.
func CartCount(items []CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
