package models

type Restaurant struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CuisineType string  `json:"cuisineType,omitempty"`
	Rating      float64 `json:"rating"`
	IsOpen      bool    `json:"isOpen"`
}

type MenuItem struct {
	ID           int64   `json:"id"`
	RestaurantID int64   `json:"restaurantId"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Category     string  `json:"category,omitempty"`
	Available    bool    `json:"available"`
}
