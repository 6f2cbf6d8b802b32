package models

type Notification struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	UserType  string `json:"userType"`
	Title     string `json:"title,omitempty"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}
