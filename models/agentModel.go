package models

type AgentStatus string

const (
	AgentAvailable AgentStatus = "AVAILABLE"
	AgentBusy      AgentStatus = "BUSY"
	AgentOffline   AgentStatus = "OFFLINE"
)

// DeliveryAgent is a courier with an authentication and status lifecycle
// independent from customers.
type DeliveryAgent struct {
	ID               int64       `json:"id"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	PhoneNumber      string      `json:"phoneNumber"`
	VehicleType      string      `json:"vehicleType"`
	VehicleNumber    string      `json:"vehicleNumber"`
	Status           AgentStatus `json:"status"`
	CurrentLatitude  float64     `json:"currentLatitude"`
	CurrentLongitude float64     `json:"currentLongitude"`
	City             string      `json:"city,omitempty"`
	LicenseNumber    string      `json:"licenseNumber,omitempty"`
	Rating           float64     `json:"rating"`
	TotalDeliveries  int         `json:"totalDeliveries"`
}

type AgentRegisterRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	PhoneNumber   string `json:"phoneNumber"`
	VehicleType   string `json:"vehicleType"`
	VehicleNumber string `json:"vehicleNumber"`
	City          string `json:"city,omitempty"`
	LicenseNumber string `json:"licenseNumber,omitempty"`
}

type UpdateAgentStatusRequest struct {
	Status AgentStatus `json:"status"`
}

// AgentAuthResponse is the flat token-plus-profile payload the delivery
// service returns from agent register and login.
type AgentAuthResponse struct {
	Token string        `json:"token"`
	Agent DeliveryAgent `json:"agent"`
}
