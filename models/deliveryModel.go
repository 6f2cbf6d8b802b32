package models

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliveryAssigned  DeliveryStatus = "ASSIGNED"
	DeliveryPickedUp  DeliveryStatus = "PICKED_UP"
	DeliveryInTransit DeliveryStatus = "IN_TRANSIT"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryCancelled DeliveryStatus = "CANCELLED"
	DeliveryFailed    DeliveryStatus = "FAILED"
)

// NextDeliveryStatus returns the step an agent moves an active delivery to,
// or "" when the current status has no forward step.
func NextDeliveryStatus(current DeliveryStatus) DeliveryStatus {
	switch current {
	case DeliveryAssigned:
		return DeliveryPickedUp
	case DeliveryPickedUp:
		return DeliveryInTransit
	case DeliveryInTransit:
		return DeliveryDelivered
	}
	return ""
}

// Delivery exists server-side only once an agent has been assigned to an
// order; until then lookups by order id report not found.
type Delivery struct {
	ID                    int64          `json:"id"`
	OrderID               int64          `json:"orderId"`
	RestaurantID          int64          `json:"restaurantId"`
	CustomerID            int64          `json:"customerId"`
	PickupAddress         string         `json:"pickupAddress"`
	PickupLatitude        float64        `json:"pickupLatitude"`
	PickupLongitude       float64        `json:"pickupLongitude"`
	DeliveryAddress       string         `json:"deliveryAddress"`
	DeliveryLatitude      float64        `json:"deliveryLatitude"`
	DeliveryLongitude     float64        `json:"deliveryLongitude"`
	Status                DeliveryStatus `json:"status"`
	DeliveryAgent         *DeliveryAgent `json:"deliveryAgent,omitempty"`
	AssignedAt            string         `json:"assignedAt,omitempty"`
	PickedUpAt            string         `json:"pickedUpAt,omitempty"`
	DeliveredAt           string         `json:"deliveredAt,omitempty"`
	EstimatedDeliveryTime string         `json:"estimatedDeliveryTime,omitempty"`
	DeliveryInstructions  string         `json:"deliveryInstructions,omitempty"`
	DeliveryFee           float64        `json:"deliveryFee"`
	CreatedAt             string         `json:"createdAt"`
}

// Active reports whether the delivery is still in a courier's hands.
func (d Delivery) Active() bool {
	switch d.Status {
	case DeliveryAssigned, DeliveryPickedUp, DeliveryInTransit:
		return true
	}
	return false
}

// TrackingSample is one entry of a delivery's tracking history, returned
// oldest-first. The last sample is the authoritative current location.
type TrackingSample struct {
	ID           int64          `json:"id"`
	DeliveryID   int64          `json:"deliveryId"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	StatusUpdate DeliveryStatus `json:"statusUpdate"`
	Remarks      string         `json:"remarks,omitempty"`
	Timestamp    string         `json:"timestamp"`
}

// AgentLocation is the current courier position projected from the last
// sample of a tracking response.
type AgentLocation struct {
	Latitude  float64
	Longitude float64
	Timestamp string
	Status    DeliveryStatus
}

type UpdateDeliveryStatusRequest struct {
	Status  DeliveryStatus `json:"status"`
	Remarks string         `json:"remarks,omitempty"`
}

type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Remarks   string  `json:"remarks,omitempty"`
}
