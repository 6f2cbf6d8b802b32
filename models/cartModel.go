package models

// CartLine is one menu item in the cart. The json keys match the persisted
// record layout, which carries the menu item fields plus a quantity.
type CartLine struct {
	ItemID   int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartRestaurant is the restaurant the cart is bound to. A cart holds items
// from at most one restaurant at a time.
type CartRestaurant struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}
