package models

import "encoding/json"

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// AuthResponse is the user service's login/signup payload: a token plus the
// user fields inlined at the top level.
type AuthResponse struct {
	Token string
	User  User
}

func (a *AuthResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		Token string `json:"token"`
		User
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.Token = raw.Token
	a.User = raw.User
	return nil
}
