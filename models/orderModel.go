package models

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderPickedUp  OrderStatus = "PICKED_UP"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// Order is the order service's view of a placed order. The client never
// mutates it locally; status fields change only through re-fetch.
type Order struct {
	ID                  int64         `json:"id"`
	CustomerID          int64         `json:"customerId"`
	RestaurantID        int64         `json:"restaurantId"`
	OrderStatus         OrderStatus   `json:"orderStatus"`
	PaymentStatus       PaymentStatus `json:"paymentStatus"`
	TotalAmount         float64       `json:"totalAmount"`
	DeliveryAddress     string        `json:"deliveryAddress"`
	SpecialInstructions string        `json:"specialInstructions,omitempty"`
	CreatedAt           string        `json:"createdAt"`
	UpdatedAt           string        `json:"updatedAt"`
	Items               []OrderItem   `json:"items"`
}

type OrderItem struct {
	ID           int64   `json:"id"`
	MenuItemID   int64   `json:"menuItemId"`
	MenuItemName string  `json:"menuItemName"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	Subtotal     float64 `json:"subtotal"`
}

type CreateOrderRequest struct {
	CustomerID          int64             `json:"customerId"`
	RestaurantID        int64             `json:"restaurantId"`
	DeliveryAddress     string            `json:"deliveryAddress"`
	SpecialInstructions string            `json:"specialInstructions,omitempty"`
	Items               []CreateOrderItem `json:"items"`
}

type CreateOrderItem struct {
	MenuItemID int64 `json:"menuItemId"`
	Quantity   int   `json:"quantity"`
}

// RazorpayOrder is the provider session descriptor returned when a payment
// is initiated for an order.
type RazorpayOrder struct {
	RazorpayOrderID string  `json:"razorpayOrderId"`
	KeyID           string  `json:"keyId"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

type CreatePaymentRequest struct {
	OrderID       int64   `json:"orderId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

type VerifyPaymentRequest struct {
	OrderID           int64  `json:"orderId"`
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

type VerifyPaymentResponse struct {
	Verified bool `json:"verified"`
}

type Payment struct {
	ID            int64         `json:"id"`
	OrderID       int64         `json:"orderId"`
	Amount        float64       `json:"amount"`
	PaymentMethod string        `json:"paymentMethod"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     string        `json:"createdAt"`
}
