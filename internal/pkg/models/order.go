package models

import "strings"

// CartItem is one cart entry: a product plus the selected quantity.
// Quantity is always >= 1; setting quantity to zero removes the entry.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart maps product ids to cart entries. The cart is owned by the UI
// layer; order assembly only reads it.
type Cart map[string]CartItem

// Add inserts a product or increments its quantity
func (c Cart) Add(product Product) {
	item, ok := c[product.ID]
	if ok {
		item.Quantity++
		c[product.ID] = item
		return
	}
	c[product.ID] = CartItem{Product: product, Quantity: 1}
}

// SetQuantity updates the quantity of a product; zero (or less) removes it
func (c Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		delete(c, productID)
		return
	}
	item, ok := c[productID]
	if !ok {
		return
	}
	item.Quantity = quantity
	c[productID] = item
}

// Remove deletes a product from the cart
func (c Cart) Remove(productID string) {
	delete(c, productID)
}

// TotalPrice returns the sum of price * quantity over all entries
func (c Cart) TotalPrice() int64 {
	var total int64
	for _, item := range c {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}

// OrderItem is one line of an order request with its correlation id
type OrderItem struct {
	OrderItemID string `json:"orderItemId" validate:"required"`
	ProductID   string `json:"productId" validate:"required"`
	ProductName string `json:"productName" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gte=1"`
	Price       int64  `json:"price" validate:"gte=0"`
}

// OrderRequest is the immutable order payload sent to the order boundary
type OrderRequest struct {
	CustomerID string      `json:"customerId" validate:"required"`
	VenueID    string      `json:"venuesId" validate:"required"`
	Address    string      `json:"address" validate:"required"`
	OrderItems []OrderItem `json:"orderItems" validate:"required,min=1,dive"`
}

// TotalPrice returns the order total
func (r OrderRequest) TotalPrice() int64 {
	var total int64
	for _, item := range r.OrderItems {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// FallbackOrderIDPrefix marks order ids synthesized locally when the
// order boundary is unreachable
const FallbackOrderIDPrefix = "mock-order-"

// OrderResponse is the order boundary's reply (real or synthesized)
type OrderResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Fallback reports whether the response was synthesized locally
func (r OrderResponse) Fallback() bool {
	return strings.HasPrefix(r.OrderID, FallbackOrderIDPrefix)
}
